package auth

import (
	"context"
	"errors"
	"testing"
)

func TestNewStaticProvider(t *testing.T) {
	t.Run("empty spec", func(t *testing.T) {
		if _, err := NewStaticProvider("  "); !errors.Is(err, ErrNoConfiguredUsers) {
			t.Fatalf("expected ErrNoConfiguredUsers, got %v", err)
		}
	})

	t.Run("malformed entry", func(t *testing.T) {
		if _, err := NewStaticProvider("ana:secret"); !errors.Is(err, ErrMalformedUserSpec) {
			t.Fatalf("expected ErrMalformedUserSpec, got %v", err)
		}
	})

	t.Run("blank password", func(t *testing.T) {
		if _, err := NewStaticProvider("ana::Ana:admin"); !errors.Is(err, ErrMalformedUserSpec) {
			t.Fatalf("expected ErrMalformedUserSpec, got %v", err)
		}
	})
}

func TestStaticProvider_Validate(t *testing.T) {
	p, err := NewStaticProvider("Ana:secret:Ana López:admin, luis:clave123:Luis Mora:viewer")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ctx := context.Background()

	t.Run("valid credentials, case-insensitive username", func(t *testing.T) {
		user, err := p.Validate(ctx, "ANA", "secret")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if user.Username != "ana" || user.Name != "Ana López" || user.Role != "admin" {
			t.Fatalf("unexpected user: %+v", user)
		}
	})

	t.Run("second entry", func(t *testing.T) {
		user, err := p.Validate(ctx, "luis", "clave123")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if user.Role != "viewer" {
			t.Fatalf("unexpected user: %+v", user)
		}
	})

	t.Run("wrong password is a zero user without error", func(t *testing.T) {
		user, err := p.Validate(ctx, "ana", "nope")
		if err != nil {
			t.Fatalf("mismatch must not error: %v", err)
		}
		if user.Username != "" {
			t.Fatalf("expected zero user, got %+v", user)
		}
	})

	t.Run("unknown user", func(t *testing.T) {
		user, err := p.Validate(ctx, "eve", "secret")
		if err != nil || user.Username != "" {
			t.Fatalf("expected zero user without error, got %+v %v", user, err)
		}
	})
}
