package ports

import (
	"context"

	"github.com/authkit/api/internal/core/domain"
)

// UserRepository is the user directory. Lookups return (nil, nil) when no
// user matches. Create fails with domain.ErrEmailTaken when the normalized
// email is already registered; UpdateRefreshTokenHash is the only mutation
// path for the stored refresh-token hash.
type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) error
	UpdateRefreshTokenHash(ctx context.Context, id string, hash string) error
}
