package service

import (
	"errors"
	"strings"

	"github.com/cultivatecmx-maker/cultivatec-school/internal/config"
	"github.com/cultivatecmx-maker/cultivatec-school/internal/model"
	"github.com/cultivatecmx-maker/cultivatec-school/internal/store"
	"github.com/cultivatecmx-maker/cultivatec-school/internal/util"
	"github.com/cultivatecmx-maker/cultivatec-school/pkg/logger"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService struct {
	Config    *config.Config
	Store     *store.Store
	Persister *Persister

	// demoHash is the bcrypt hash of the configured demo password,
	// computed once so login never compares plaintext.
	demoHash []byte
}

func NewAuthService(cfg *config.Config, st *store.Store, persister *Persister) *AuthService {
	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.Auth.DemoPassword), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Fatal("failed to hash demo password", zap.Error(err))
	}
	return &AuthService{Config: cfg, Store: st, Persister: persister, demoHash: hash}
}

// Login validates credentials and returns the authenticated user plus
// a signed token. Database-backed users take precedence when the
// persistence layer is enabled; the configured demo account always
// works so the dashboard stays reachable without a database.
func (s *AuthService) Login(email, password string) (model.User, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	if s.Persister.enabled() {
		dbUser, err := s.Persister.Users.FindByEmail(email)
		switch {
		case err == nil:
			if bcrypt.CompareHashAndPassword([]byte(dbUser.Password), []byte(password)) != nil {
				return model.User{}, "", util.ErrInvalidCredentials
			}
			return s.issue(*dbUser)
		case errors.Is(err, gorm.ErrRecordNotFound):
			// fall through to the demo account
		default:
			logger.Log.Error("user lookup failed", zap.String("email", email), zap.Error(err))
		}
	}

	if email != strings.ToLower(s.Config.Auth.DemoEmail) {
		return model.User{}, "", util.ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword(s.demoHash, []byte(password)) != nil {
		return model.User{}, "", util.ErrInvalidCredentials
	}
	return s.issue(s.Store.User())
}

func (s *AuthService) issue(user model.User) (model.User, string, error) {
	token, err := util.GenerateJWT(&user, s.Config.JWT.Secret, s.Config.JWT.ExpireTime)
	if err != nil {
		return model.User{}, "", err
	}
	logger.Log.Info("user logged in", zap.String("uid", user.UID), zap.String("role", string(user.Role)))
	return user, token, nil
}
