package interfaces

import (
	"context"

	"bp_analytics/internal/domain/entities"
)

// ICredentialProvider validates operator credentials against an
// externally configured store (env config, DynamoDB users table, ...).
// A failed match returns a zero-value User with a nil error; errors are
// reserved for the store itself being unreachable.
type ICredentialProvider interface {
	Validate(ctx context.Context, username, password string) (entities.User, error)
}
