package ports

import (
	"context"
	"time"

	"github.com/jsamuelsen11/task-tracker/internal/domain/user"
)

// Actor is the authenticated user on whose behalf a request runs.
type Actor struct {
	UserID  int64
	IsAdmin bool
}

type actorKey struct{}

// WithActor returns a copy of ctx carrying the actor.
func WithActor(ctx context.Context, a Actor) context.Context {
	return context.WithValue(ctx, actorKey{}, a)
}

// ActorFromContext returns the actor stored by WithActor.
func ActorFromContext(ctx context.Context) (Actor, bool) {
	a, ok := ctx.Value(actorKey{}).(Actor)
	return a, ok
}

// TokenKind distinguishes access tokens from refresh tokens.
type TokenKind string

const (
	TokenAccess  TokenKind = "access"
	TokenRefresh TokenKind = "refresh"
)

// TokenPair is the result of a successful login or refresh.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
	TokenType    string
	ExpiresIn    time.Duration
}

// TokenClaims is what a verified token says about its bearer.
type TokenClaims struct {
	UserID  int64
	IsAdmin bool
	Kind    TokenKind
}

// TokenIssuer signs and verifies bearer tokens.
type TokenIssuer interface {
	IssuePair(u *user.User) (*TokenPair, error)

	// Verify checks signature, expiry and kind. Returns an error wrapping
	// domain.ErrUnauthenticated for any token that is not acceptable.
	Verify(token string, kind TokenKind) (*TokenClaims, error)
}

// PasswordHasher hashes and checks passwords. Plaintext never leaves the
// application layer.
type PasswordHasher interface {
	Hash(password string) (string, error)

	// Verify returns an error wrapping domain.ErrUnauthenticated on mismatch.
	Verify(hash, password string) error
}

// ActorResolver turns a bearer access token into the acting user.
// Implemented by the user service; called by the authentication middleware.
type ActorResolver interface {
	ResolveActor(ctx context.Context, accessToken string) (Actor, error)
}
