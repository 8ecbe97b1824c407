package service

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/cultivatecmx-maker/cultivatec-school/internal/config"
	"github.com/cultivatecmx-maker/cultivatec-school/pkg/logger"
	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"go.uber.org/zap"
)

// StorageService stores uploaded images (school logos, user avatars)
// on local disk or MinIO depending on configuration, and returns the
// public URL to persist on the owning record.
type StorageService struct {
	cfg    config.StorageConfig
	client *minio.Client
}

func NewStorageService(cfg config.StorageConfig) (*StorageService, error) {
	s := &StorageService{cfg: cfg}

	if cfg.Type == "minio" {
		client, err := minio.New(cfg.MinioEndpoint, &minio.Options{
			Creds: credentials.NewStaticV4(cfg.MinioAccessID, cfg.MinioSecret, ""),
		})
		if err != nil {
			return nil, fmt.Errorf("minio client: %w", err)
		}
		s.client = client

		ctx := context.Background()
		exists, err := client.BucketExists(ctx, cfg.MinioBucket)
		if err != nil {
			return nil, fmt.Errorf("minio bucket check: %w", err)
		}
		if !exists {
			if err := client.MakeBucket(ctx, cfg.MinioBucket, minio.MakeBucketOptions{}); err != nil {
				return nil, fmt.Errorf("minio bucket create: %w", err)
			}
		}
	}
	return s, nil
}

var allowedImageExt = map[string]bool{
	".png": true, ".jpg": true, ".jpeg": true, ".gif": true, ".webp": true, ".svg": true,
}

// SaveImage writes one uploaded image under the given folder and
// returns its URL. The stored name is a UUID so uploads never collide
// or overwrite each other.
func (s *StorageService) SaveImage(ctx context.Context, folder string, file *multipart.FileHeader) (string, error) {
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedImageExt[ext] {
		return "", fmt.Errorf("unsupported image type %q", ext)
	}

	name := fmt.Sprintf("%s/%s%s", folder, uuid.New().String(), ext)

	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	if s.client != nil {
		contentType := file.Header.Get("Content-Type")
		_, err := s.client.PutObject(ctx, s.cfg.MinioBucket, name, src, file.Size,
			minio.PutObjectOptions{ContentType: contentType})
		if err != nil {
			return "", fmt.Errorf("minio upload: %w", err)
		}
		logger.Log.Info("image uploaded to minio", zap.String("object", name))
		return fmt.Sprintf("http://%s/%s/%s", s.cfg.MinioEndpoint, s.cfg.MinioBucket, name), nil
	}

	localPath := filepath.Join(s.cfg.LocalPath, filepath.FromSlash(name))
	if err := os.MkdirAll(filepath.Dir(localPath), 0o755); err != nil {
		return "", err
	}
	dst, err := os.Create(localPath)
	if err != nil {
		return "", err
	}
	defer dst.Close()
	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}

	logger.Log.Info("image saved locally", zap.String("path", localPath))
	return "/uploads/" + name, nil
}
