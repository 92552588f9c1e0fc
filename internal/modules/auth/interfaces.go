package auth

import (
	"context"

	"gymadmin/internal/domain"
)

// UserStore is the slice of the user repository the auth service needs.
type UserStore interface {
	Create(ctx context.Context, u *domain.User) error
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByLogin(ctx context.Context, login string) (*domain.User, error)
	UsernameExists(ctx context.Context, username string, excludeID int64) (bool, error)
	EmailExists(ctx context.Context, email string, excludeID int64) (bool, error)
	TouchLastLogin(ctx context.Context, id int64) error
}

// RefreshTokenStore holds the server-side session records.
type RefreshTokenStore interface {
	Create(ctx context.Context, t *domain.RefreshToken) error
	GetByHash(ctx context.Context, hash string) (*domain.RefreshToken, error)
	Revoke(ctx context.Context, id int64) error
	RevokeByUser(ctx context.Context, userID int64) error
}

type TokenIssuer interface {
	GenerateToken(userID int64, username, role string) (string, error)
}
