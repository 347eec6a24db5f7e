// Package auth signs bearer tokens with HMAC-SHA256 JWTs and hashes
// passwords with bcrypt.
package auth

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/jsamuelsen11/task-tracker/internal/domain"
	"github.com/jsamuelsen11/task-tracker/internal/domain/user"
	"github.com/jsamuelsen11/task-tracker/internal/platform/config"
	"github.com/jsamuelsen11/task-tracker/internal/ports"
)

var _ ports.TokenIssuer = (*JWTIssuer)(nil)

// claims is the token body. The subject carries the user id.
type claims struct {
	Admin bool            `json:"adm,omitempty"`
	Kind  ports.TokenKind `json:"typ"`
	jwt.RegisteredClaims
}

// JWTIssuer issues and verifies access/refresh token pairs.
type JWTIssuer struct {
	secret     []byte
	issuer     string
	accessTTL  time.Duration
	refreshTTL time.Duration
	now        func() time.Time
}

// Option configures a JWTIssuer.
type Option func(*JWTIssuer)

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) Option {
	return func(j *JWTIssuer) { j.now = now }
}

// NewJWTIssuer builds an issuer from the auth config.
func NewJWTIssuer(cfg config.AuthConfig, opts ...Option) *JWTIssuer {
	j := &JWTIssuer{
		secret:     []byte(cfg.JWTSecret),
		issuer:     cfg.Issuer,
		accessTTL:  cfg.AccessTTL,
		refreshTTL: cfg.RefreshTTL,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(j)
	}
	return j
}

// IssuePair signs a fresh access and refresh token for u.
func (j *JWTIssuer) IssuePair(u *user.User) (*ports.TokenPair, error) {
	access, err := j.sign(u, ports.TokenAccess, j.accessTTL)
	if err != nil {
		return nil, err
	}
	refresh, err := j.sign(u, ports.TokenRefresh, j.refreshTTL)
	if err != nil {
		return nil, err
	}
	return &ports.TokenPair{
		AccessToken:  access,
		RefreshToken: refresh,
		TokenType:    "Bearer",
		ExpiresIn:    j.accessTTL,
	}, nil
}

func (j *JWTIssuer) sign(u *user.User, kind ports.TokenKind, ttl time.Duration) (string, error) {
	now := j.now()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		Admin: u.IsAdmin,
		Kind:  kind,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    j.issuer,
			Subject:   strconv.FormatInt(u.ID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	})
	signed, err := tok.SignedString(j.secret)
	if err != nil {
		return "", fmt.Errorf("signing %s token: %w", kind, err)
	}
	return signed, nil
}

// Verify checks the signature, issuer, expiry and kind of token.
func (j *JWTIssuer) Verify(token string, kind ports.TokenKind) (*ports.TokenClaims, error) {
	var c claims
	_, err := jwt.ParseWithClaims(token, &c,
		func(*jwt.Token) (any, error) { return j.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(j.issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(j.now),
	)
	if err != nil {
		reason := "invalid token"
		if errors.Is(err, jwt.ErrTokenExpired) {
			reason = "token expired"
		}
		return nil, &domain.AuthenticationError{Reason: reason}
	}

	if c.Kind != kind {
		return nil, &domain.AuthenticationError{Reason: fmt.Sprintf("expected %s token", kind)}
	}
	id, err := strconv.ParseInt(c.Subject, 10, 64)
	if err != nil || id <= 0 {
		return nil, &domain.AuthenticationError{Reason: "invalid token subject"}
	}
	return &ports.TokenClaims{UserID: id, IsAdmin: c.Admin, Kind: c.Kind}, nil
}
