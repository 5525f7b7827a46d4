package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"bp_analytics/internal/domain/entities"
	mock_interfaces "bp_analytics/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestAuthUseCase_Login(t *testing.T) {
	t.Run("missing input", func(t *testing.T) {
		uc := NewAuthUseCase(nil, 0)
		if _, err := uc.Login(context.Background(), "  ", "secret"); !errors.Is(err, ErrInvalidLoginInput) {
			t.Fatalf("expected ErrInvalidLoginInput, got %v", err)
		}
		if _, err := uc.Login(context.Background(), "ana", ""); !errors.Is(err, ErrInvalidLoginInput) {
			t.Fatalf("expected ErrInvalidLoginInput, got %v", err)
		}
	})

	t.Run("provider error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		provider := mock_interfaces.NewMockICredentialProvider(ctrl)
		uc := NewAuthUseCase(provider, 0)

		provider.EXPECT().Validate(gomock.Any(), "ana", "secret").Return(entities.User{}, errors.New("dynamo"))

		if _, err := uc.Login(context.Background(), "ana", "secret"); err == nil || err.Error() != "dynamo" {
			t.Fatalf("expected dynamo error, got %v", err)
		}
	})

	t.Run("rejected credentials", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		provider := mock_interfaces.NewMockICredentialProvider(ctrl)
		uc := NewAuthUseCase(provider, 0)

		provider.EXPECT().Validate(gomock.Any(), "ana", "wrong").Return(entities.User{}, nil)

		if _, err := uc.Login(context.Background(), "ana", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("success lowercases the username and opens a session", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		provider := mock_interfaces.NewMockICredentialProvider(ctrl)
		uc := NewAuthUseCase(provider, time.Hour)

		provider.EXPECT().Validate(gomock.Any(), "ana", "secret").
			Return(entities.User{Username: "ana", Name: "Ana López", Role: "admin"}, nil)

		session, err := uc.Login(context.Background(), " ANA ", "secret")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if session.Token == "" || session.Username != "ana" || session.Role != "admin" {
			t.Fatalf("unexpected session: %+v", session)
		}
		if session.ExpiresAt.Before(time.Now().UTC().Add(55 * time.Minute)) {
			t.Fatalf("expected ~1h expiry, got %v", session.ExpiresAt)
		}

		got, err := uc.Authenticate(context.Background(), session.Token)
		if err != nil {
			t.Fatalf("expected live session: %v", err)
		}
		if got.Username != "ana" {
			t.Fatalf("unexpected session user: %+v", got)
		}
	})
}

func TestAuthUseCase_Authenticate(t *testing.T) {
	t.Run("blank token", func(t *testing.T) {
		uc := NewAuthUseCase(nil, 0)
		if _, err := uc.Authenticate(context.Background(), "  "); !errors.Is(err, ErrInvalidToken) {
			t.Fatalf("expected ErrInvalidToken, got %v", err)
		}
	})

	t.Run("unknown token", func(t *testing.T) {
		uc := NewAuthUseCase(nil, 0)
		if _, err := uc.Authenticate(context.Background(), "nope"); !errors.Is(err, ErrInvalidToken) {
			t.Fatalf("expected ErrInvalidToken, got %v", err)
		}
	})

	t.Run("expired session is evicted", func(t *testing.T) {
		uc := NewAuthUseCase(nil, 0)
		uc.sessions["tok"] = entities.Session{
			Token:     "tok",
			Username:  "ana",
			ExpiresAt: time.Now().UTC().Add(-time.Minute),
		}

		if _, err := uc.Authenticate(context.Background(), "tok"); !errors.Is(err, ErrInvalidToken) {
			t.Fatalf("expected ErrInvalidToken, got %v", err)
		}
		if _, ok := uc.sessions["tok"]; ok {
			t.Fatalf("expected expired session to be removed")
		}
	})
}

func TestAuthUseCase_Logout(t *testing.T) {
	uc := NewAuthUseCase(nil, 0)
	uc.sessions["tok"] = entities.Session{Token: "tok", ExpiresAt: time.Now().UTC().Add(time.Hour)}

	if err := uc.Logout(context.Background(), " tok "); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := uc.Authenticate(context.Background(), "tok"); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected session to be gone, got %v", err)
	}
}
