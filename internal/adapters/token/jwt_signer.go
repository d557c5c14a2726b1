package token

import (
	"errors"
	"time"

	"github.com/authkit/api/internal/core/ports"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	DefaultAccessTTL  = 15 * time.Minute
	DefaultRefreshTTL = 7 * 24 * time.Hour
)

type Config struct {
	AccessSecret  []byte
	RefreshSecret []byte
	AccessTTL     time.Duration
	RefreshTTL    time.Duration
}

type claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// JWTSigner signs HS256 tokens with one secret per token class.
type JWTSigner struct {
	config Config
}

func NewJWTSigner(cfg Config) (ports.TokenSigner, error) {
	if len(cfg.AccessSecret) == 0 || len(cfg.RefreshSecret) == 0 {
		return nil, errors.New("token secrets must not be empty")
	}
	if cfg.AccessTTL == 0 {
		cfg.AccessTTL = DefaultAccessTTL
	}
	if cfg.RefreshTTL == 0 {
		cfg.RefreshTTL = DefaultRefreshTTL
	}
	return &JWTSigner{config: cfg}, nil
}

func (s *JWTSigner) SignAccess(userID, email string) (string, error) {
	return sign(userID, email, s.config.AccessSecret, s.config.AccessTTL)
}

func (s *JWTSigner) SignRefresh(userID, email string) (string, error) {
	return sign(userID, email, s.config.RefreshSecret, s.config.RefreshTTL)
}

func (s *JWTSigner) VerifyAccess(tokenString string) (string, error) {
	return verify(tokenString, s.config.AccessSecret)
}

func (s *JWTSigner) VerifyRefresh(tokenString string) (string, error) {
	return verify(tokenString, s.config.RefreshSecret)
}

func sign(userID, email string, secret []byte, ttl time.Duration) (string, error) {
	now := time.Now()
	c := claims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			// jti keeps back-to-back issuances for the same user distinct
			ID: uuid.NewString(),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString(secret)
}

func verify(tokenString string, secret []byte) (string, error) {
	c := &claims{}
	parsed, err := jwt.ParseWithClaims(tokenString, c, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secret, nil
	})
	if err != nil {
		return "", err
	}
	if !parsed.Valid || c.Subject == "" {
		return "", errors.New("invalid token")
	}
	return c.Subject, nil
}
