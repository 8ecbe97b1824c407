package service

import (
	"context"
	"mime/multipart"

	"github.com/cultivatecmx-maker/cultivatec-school/internal/model"
	"github.com/cultivatecmx-maker/cultivatec-school/internal/store"
	"github.com/cultivatecmx-maker/cultivatec-school/pkg/monitoring"
)

// AccountService covers the settings page: the teacher profile and the
// school record, including logo and avatar uploads.
type AccountService struct {
	Store     *store.Store
	Persister *Persister
	Storage   *StorageService
}

func NewAccountService(st *store.Store, persister *Persister, storage *StorageService) *AccountService {
	return &AccountService{Store: st, Persister: persister, Storage: storage}
}

func (s *AccountService) User() model.User {
	return s.Store.User()
}

func (s *AccountService) School() model.School {
	return s.Store.School()
}

func (s *AccountService) UpdateUser(data model.UserUpdate) model.User {
	user := s.Store.UpdateUser(data)
	monitoring.ObserveMutation("user", "update", nil)

	s.Persister.async("user.update", func() error {
		u := user
		return s.Persister.Users.Save(&u)
	})
	return user
}

func (s *AccountService) UpdateSchool(data model.SchoolUpdate) model.School {
	school := s.Store.UpdateSchool(data)
	monitoring.ObserveMutation("school", "update", nil)

	s.Persister.async("school.update", func() error {
		sc := school
		return s.Persister.Schools.Save(&sc)
	})
	return school
}

func (s *AccountService) UploadAvatar(ctx context.Context, file *multipart.FileHeader) (model.User, error) {
	url, err := s.Storage.SaveImage(ctx, "avatars", file)
	if err != nil {
		return model.User{}, err
	}
	return s.UpdateUser(model.UserUpdate{AvatarURL: &url}), nil
}

func (s *AccountService) UploadLogo(ctx context.Context, file *multipart.FileHeader) (model.School, error) {
	url, err := s.Storage.SaveImage(ctx, "logos", file)
	if err != nil {
		return model.School{}, err
	}
	return s.UpdateSchool(model.SchoolUpdate{LogoURL: &url}), nil
}
