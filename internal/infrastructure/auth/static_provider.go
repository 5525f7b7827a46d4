package auth

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"os"
	"strings"

	"bp_analytics/internal/domain/entities"
	"bp_analytics/internal/usecase/interfaces"
)

var (
	ErrNoConfiguredUsers = errors.New("AUTH_USERS is not configured")
	ErrMalformedUserSpec = errors.New("malformed AUTH_USERS entry")
)

// StaticProvider validates credentials against the AUTH_USERS env var:
// comma-separated "username:password:display name:role" entries. It is
// the injected replacement for an inline credential table — the service
// carries no literals.
type StaticProvider struct {
	users     map[string]entities.User
	passwords map[string]string
}

var _ interfaces.ICredentialProvider = (*StaticProvider)(nil)

func NewStaticProviderFromEnv() (*StaticProvider, error) {
	return NewStaticProvider(os.Getenv("AUTH_USERS"))
}

func NewStaticProvider(spec string) (*StaticProvider, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return nil, ErrNoConfiguredUsers
	}

	p := &StaticProvider{
		users:     make(map[string]entities.User),
		passwords: make(map[string]string),
	}
	for _, entry := range strings.Split(spec, ",") {
		parts := strings.Split(strings.TrimSpace(entry), ":")
		if len(parts) != 4 {
			return nil, fmt.Errorf("%w: %q", ErrMalformedUserSpec, entry)
		}
		username := strings.ToLower(strings.TrimSpace(parts[0]))
		if username == "" || parts[1] == "" {
			return nil, fmt.Errorf("%w: %q", ErrMalformedUserSpec, entry)
		}
		p.users[username] = entities.User{
			Username: username,
			Name:     strings.TrimSpace(parts[2]),
			Role:     strings.TrimSpace(parts[3]),
		}
		p.passwords[username] = parts[1]
	}
	return p, nil
}

func (p *StaticProvider) Validate(ctx context.Context, username, password string) (entities.User, error) {
	username = strings.ToLower(strings.TrimSpace(username))
	stored, ok := p.passwords[username]
	if !ok {
		return entities.User{}, nil
	}
	if subtle.ConstantTimeCompare([]byte(stored), []byte(password)) != 1 {
		return entities.User{}, nil
	}
	return p.users[username], nil
}
