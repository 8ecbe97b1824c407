package service

import (
	"errors"
	"testing"
	"time"

	"github.com/cultivatecmx-maker/cultivatec-school/internal/config"
	"github.com/cultivatecmx-maker/cultivatec-school/internal/notify"
	"github.com/cultivatecmx-maker/cultivatec-school/internal/seed"
	"github.com/cultivatecmx-maker/cultivatec-school/internal/store"
	"github.com/cultivatecmx-maker/cultivatec-school/internal/util"
)

func newAuthService(t *testing.T) *AuthService {
	t.Helper()
	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret-test-secret-test-1234"
	cfg.JWT.ExpireTime = time.Hour
	cfg.Auth.DemoEmail = "abraham.donastes@roboticschool.edu"
	cfg.Auth.DemoPassword = "cultivatec2026"

	st := store.New(store.Seed{User: seed.User()}, notify.NewCenter(time.Hour, 64))
	return NewAuthService(cfg, st, nil)
}

func TestLoginSuccess(t *testing.T) {
	svc := newAuthService(t)

	user, token, err := svc.Login("abraham.donastes@roboticschool.edu", "cultivatec2026")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if token == "" {
		t.Error("empty token")
	}
	if user.UID != seed.User().UID {
		t.Errorf("UID = %q, want %q", user.UID, seed.User().UID)
	}

	claims, err := util.ParseJWT(token, "test-secret-test-secret-test-1234")
	if err != nil {
		t.Fatalf("ParseJWT: %v", err)
	}
	if claims.UID != user.UID {
		t.Errorf("claims UID = %q, want %q", claims.UID, user.UID)
	}
}

func TestLoginEmailCaseInsensitive(t *testing.T) {
	svc := newAuthService(t)
	if _, _, err := svc.Login("Abraham.Donastes@RoboticSchool.edu", "cultivatec2026"); err != nil {
		t.Fatalf("Login with mixed-case email: %v", err)
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc := newAuthService(t)

	_, _, err := svc.Login("abraham.donastes@roboticschool.edu", "wrong")
	if !errors.Is(err, util.ErrInvalidCredentials) {
		t.Fatalf("wrong password err = %v", err)
	}

	_, _, err = svc.Login("nobody@roboticschool.edu", "cultivatec2026")
	if !errors.Is(err, util.ErrInvalidCredentials) {
		t.Fatalf("unknown email err = %v", err)
	}
}
