package services

import (
	"context"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"log"

	"github.com/authkit/api/internal/core/domain"
	"github.com/authkit/api/internal/core/ports"
	"github.com/google/uuid"
)

// dummyPasswordHash is compared against when no account matches the email,
// keeping the unknown-email path on the same cost profile as a real compare.
const dummyPasswordHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

type authService struct {
	users  ports.UserRepository
	signer ports.TokenSigner
	hasher ports.PasswordHasher
}

func NewAuthService(users ports.UserRepository, signer ports.TokenSigner, hasher ports.PasswordHasher) ports.AuthService {
	return &authService{
		users:  users,
		signer: signer,
		hasher: hasher,
	}
}

func (s *authService) ValidateUser(ctx context.Context, creds domain.Credentials) (*domain.User, error) {
	if creds.Email == "" || creds.Password == "" {
		return nil, domain.ErrInvalidInput
	}

	user, err := s.users.GetByEmail(ctx, domain.NormalizeEmail(creds.Email))
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		s.hasher.Check(creds.Password, dummyPasswordHash)
		return nil, domain.ErrInvalidCredentials
	}
	if !s.hasher.Check(creds.Password, user.PasswordHash) {
		return nil, domain.ErrInvalidCredentials
	}

	return user, nil
}

func (s *authService) Login(ctx context.Context, user *domain.User) (*domain.TokenPair, error) {
	if user == nil {
		return nil, domain.ErrInvalidInput
	}
	return s.issueAndRotate(ctx, user)
}

func (s *authService) Signup(ctx context.Context, input ports.SignupInput) (*domain.User, *domain.TokenPair, error) {
	if input.Email == "" || input.Password == "" {
		return nil, nil, domain.ErrInvalidInput
	}

	passwordHash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &domain.User{
		Email:        domain.NormalizeEmail(input.Email),
		Name:         input.Name,
		PasswordHash: passwordHash,
	}
	if err := s.users.Create(ctx, user); err != nil {
		// domain.ErrEmailTaken passes through untranslated
		return nil, nil, err
	}

	log.Printf("new user registered with email: %s", user.Email)

	tokens, err := s.issueAndRotate(ctx, user)
	if err != nil {
		return nil, nil, err
	}
	return user, tokens, nil
}

func (s *authService) Refresh(ctx context.Context, refreshToken string) (*domain.User, *domain.TokenPair, error) {
	if refreshToken == "" {
		return nil, nil, domain.ErrInvalidInput
	}

	sub, err := s.signer.VerifyRefresh(refreshToken)
	if err != nil {
		return nil, nil, domain.ErrInvalidCredentials
	}
	userID, err := uuid.Parse(sub)
	if err != nil {
		return nil, nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.GetByID(ctx, userID.String())
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil || user.RefreshTokenHash == nil {
		return nil, nil, domain.ErrInvalidCredentials
	}

	// A rotated-away token still carries a valid signature; the stored hash
	// is what makes each refresh token single-use.
	if !s.hasher.Check(digestToken(refreshToken), *user.RefreshTokenHash) {
		return nil, nil, domain.ErrInvalidCredentials
	}

	tokens, err := s.issueAndRotate(ctx, user)
	if err != nil {
		return nil, nil, err
	}
	return user, tokens, nil
}

// issueAndRotate mints a token pair and overwrites the stored refresh-token
// hash. The pair is withheld unless the overwrite succeeds; a failed rotation
// would otherwise leave a stale refresh token valid alongside the new one.
func (s *authService) issueAndRotate(ctx context.Context, user *domain.User) (*domain.TokenPair, error) {
	accessToken, err := s.signer.SignAccess(user.ID.String(), user.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to sign access token: %w", err)
	}
	refreshToken, err := s.signer.SignRefresh(user.ID.String(), user.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to sign refresh token: %w", err)
	}

	refreshTokenHash, err := s.hasher.Hash(digestToken(refreshToken))
	if err != nil {
		return nil, fmt.Errorf("failed to hash refresh token: %w", err)
	}
	if err := s.users.UpdateRefreshTokenHash(ctx, user.ID.String(), refreshTokenHash); err != nil {
		return nil, fmt.Errorf("failed to store refresh token hash: %w", err)
	}
	user.RefreshTokenHash = &refreshTokenHash

	return &domain.TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// digestToken reduces a signed token to a fixed-size digest so it fits
// bcrypt's 72-byte input limit before hashing or comparing.
func digestToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return base64.RawStdEncoding.EncodeToString(sum[:])
}
