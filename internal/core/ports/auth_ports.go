package ports

import (
	"context"

	"github.com/authkit/api/internal/core/domain"
)

type SignupInput struct {
	Email    string
	Password string
	Name     *string
}

type AuthService interface {
	// ValidateUser returns domain.ErrInvalidCredentials for unknown email and
	// wrong password alike. Read-only.
	ValidateUser(ctx context.Context, creds domain.Credentials) (*domain.User, error)

	// Login mints a token pair for an already-validated user and rotates the
	// stored refresh-token hash.
	Login(ctx context.Context, user *domain.User) (*domain.TokenPair, error)

	// Signup creates the account, then mints and rotates like Login.
	Signup(ctx context.Context, input SignupInput) (*domain.User, *domain.TokenPair, error)

	// Refresh verifies and rotates a presented refresh token. Each issued
	// refresh token is good for exactly one Refresh call.
	Refresh(ctx context.Context, refreshToken string) (*domain.User, *domain.TokenPair, error)
}

// TokenSigner signs and verifies the two token classes with distinct secrets,
// so a leaked access-token secret cannot forge refresh tokens or vice versa.
// Verify methods return the token subject (the user ID).
type TokenSigner interface {
	SignAccess(userID, email string) (string, error)
	SignRefresh(userID, email string) (string, error)
	VerifyAccess(token string) (string, error)
	VerifyRefresh(token string) (string, error)
}

// PasswordHasher abstracts the one-way salted hash used for both passwords
// and stored refresh tokens.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Check(password, hash string) bool
}
