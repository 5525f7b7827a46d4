package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"sync"
	"time"

	"bp_analytics/internal/domain/entities"
	"bp_analytics/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidLoginInput  = errors.New("missing username or password")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid or expired session")
)

const DefaultSessionTTL = 8 * time.Hour

// IAuthUseCase is the login gate: credential validation is delegated to
// an injected provider, sessions are bearer tokens held in memory.
type IAuthUseCase interface {
	Login(ctx context.Context, username, password string) (entities.Session, error)
	Authenticate(ctx context.Context, token string) (entities.Session, error)
	Logout(ctx context.Context, token string) error
}

type AuthUseCase struct {
	provider interfaces.ICredentialProvider
	ttl      time.Duration

	mu       sync.Mutex
	sessions map[string]entities.Session
}

var _ IAuthUseCase = (*AuthUseCase)(nil)

func NewAuthUseCase(provider interfaces.ICredentialProvider, ttl time.Duration) *AuthUseCase {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &AuthUseCase{
		provider: provider,
		ttl:      ttl,
		sessions: make(map[string]entities.Session),
	}
}

func (u *AuthUseCase) Login(ctx context.Context, username, password string) (entities.Session, error) {
	username = strings.ToLower(strings.TrimSpace(username))
	if username == "" || password == "" {
		return entities.Session{}, ErrInvalidLoginInput
	}

	user, err := u.provider.Validate(ctx, username, password)
	if err != nil {
		return entities.Session{}, err
	}
	if user.Username == "" {
		return entities.Session{}, ErrInvalidCredentials
	}

	session := entities.Session{
		Token:     uuid.NewString(),
		Username:  user.Username,
		Name:      user.Name,
		Role:      user.Role,
		ExpiresAt: time.Now().UTC().Add(u.ttl),
	}

	u.mu.Lock()
	u.sessions[session.Token] = session
	u.mu.Unlock()

	log.Printf("[auth] login user=%s role=%s", user.Username, user.Role)
	return session, nil
}

func (u *AuthUseCase) Authenticate(ctx context.Context, token string) (entities.Session, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return entities.Session{}, ErrInvalidToken
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	session, ok := u.sessions[token]
	if !ok {
		return entities.Session{}, ErrInvalidToken
	}
	if session.Expired(time.Now().UTC()) {
		delete(u.sessions, token)
		return entities.Session{}, ErrInvalidToken
	}
	return session, nil
}

func (u *AuthUseCase) Logout(ctx context.Context, token string) error {
	u.mu.Lock()
	delete(u.sessions, strings.TrimSpace(token))
	u.mu.Unlock()
	return nil
}
