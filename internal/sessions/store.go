package sessions

import (
	"context"
	"errors"
)

// Store issues, resolves and revokes opaque session tokens for users.
type Store interface {
	Issue(ctx context.Context, userID string) (string, error)

	Resolve(ctx context.Context, token string) (string, error)

	Revoke(ctx context.Context, token string) error
}

var ErrNoSession = errors.New("no active session for token")
