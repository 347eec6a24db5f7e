package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	appctx "github.com/jsamuelsen11/task-tracker/internal/app/context"
	"github.com/jsamuelsen11/task-tracker/internal/domain"
	"github.com/jsamuelsen11/task-tracker/internal/domain/user"
	"github.com/jsamuelsen11/task-tracker/internal/ports"
)

// Compile-time check that UserService implements ports.UserService.
var _ ports.UserService = (*UserService)(nil)

// Listing bounds for ListUsers.
const (
	defaultUserPage = 50
	maxUserPage     = 200
)

// errBadCredentials hides whether the username or the password was wrong.
var errBadCredentials = &domain.AuthenticationError{Reason: "invalid username or password"}

// UserService implements ports.UserService.
type UserService struct {
	users  ports.UserRepository
	hasher ports.PasswordHasher
	tokens ports.TokenIssuer
	logger *slog.Logger
	now    func() time.Time
}

// NewUserService creates a UserService. A nil logger discards output.
func NewUserService(users ports.UserRepository, hasher ports.PasswordHasher, tokens ports.TokenIssuer, logger *slog.Logger) *UserService {
	return &UserService{
		users:  users,
		hasher: hasher,
		tokens: tokens,
		logger: orDiscard(logger),
		now:    utcNow,
	}
}

// Register validates the registration, hashes the password and creates the
// account.
func (s *UserService) Register(ctx context.Context, in ports.Registration) (*user.User, error) {
	s.logger.InfoContext(ctx, "registering user", slog.String("username", in.Username))

	if err := user.ValidatePassword(in.Password); err != nil {
		return nil, err
	}
	// Validate the rest before paying for the hash.
	if _, err := user.New(in.Username, in.Email, "-", s.now()); err != nil {
		return nil, err
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to hash password",
			slog.String("operation", "Register"),
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	u, err := user.New(in.Username, in.Email, hash, s.now())
	if err != nil {
		return nil, err
	}
	u.IsAdmin = in.IsAdmin

	created, err := s.users.CreateUser(ctx, u)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to create user",
			slog.String("operation", "Register"),
			slog.String("username", u.Username),
			slog.Any("error", err),
		)
		return nil, err
	}
	return created, nil
}

// Authenticate checks the credentials, records the login and issues a
// token pair.
func (s *UserService) Authenticate(ctx context.Context, username, password string) (*ports.TokenPair, error) {
	s.logger.InfoContext(ctx, "authenticating user", slog.String("username", username))

	u, err := s.users.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, errBadCredentials
		}
		s.logger.ErrorContext(ctx, "failed to load user",
			slog.String("operation", "Authenticate"),
			slog.Any("error", err),
		)
		return nil, err
	}
	if err := s.hasher.Verify(u.PasswordHash, password); err != nil {
		return nil, errBadCredentials
	}

	u.RecordLogin(s.now())
	if _, err := s.users.UpdateUser(ctx, u); err != nil {
		s.logger.ErrorContext(ctx, "failed to record login",
			slog.String("operation", "Authenticate"),
			slog.Int64("user_id", u.ID),
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("recording login: %w", err)
	}

	return s.issue(ctx, u)
}

// Refresh exchanges a refresh token for a new pair. The user is reloaded so
// a demoted admin does not keep elevated tokens.
func (s *UserService) Refresh(ctx context.Context, refreshToken string) (*ports.TokenPair, error) {
	claims, err := s.tokens.Verify(refreshToken, ports.TokenRefresh)
	if err != nil {
		return nil, err
	}
	s.logger.InfoContext(ctx, "refreshing tokens", slog.Int64("user_id", claims.UserID))

	u, err := s.users.GetUser(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, &domain.AuthenticationError{Reason: "user no longer exists"}
		}
		return nil, err
	}
	return s.issue(ctx, u)
}

func (s *UserService) issue(ctx context.Context, u *user.User) (*ports.TokenPair, error) {
	pair, err := s.tokens.IssuePair(u)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to issue tokens",
			slog.String("operation", "IssueTokens"),
			slog.Int64("user_id", u.ID),
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("issuing tokens: %w", err)
	}
	return pair, nil
}

// ResolveActor verifies an access token and returns the acting user with
// the admin flag as currently stored.
func (s *UserService) ResolveActor(ctx context.Context, accessToken string) (ports.Actor, error) {
	claims, err := s.tokens.Verify(accessToken, ports.TokenAccess)
	if err != nil {
		return ports.Actor{}, err
	}

	u, err := s.loadUser(appctx.FromContext(ctx), claims.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return ports.Actor{}, &domain.AuthenticationError{Reason: "user no longer exists"}
		}
		return ports.Actor{}, err
	}
	return ports.Actor{UserID: u.ID, IsAdmin: u.IsAdmin}, nil
}

// GetUser returns a user by ID.
func (s *UserService) GetUser(ctx context.Context, id int64) (*user.User, error) {
	if _, err := actorFrom(ctx); err != nil {
		return nil, err
	}
	s.logger.InfoContext(ctx, "fetching user", slog.Int64("user_id", id))

	u, err := s.loadUser(appctx.FromContext(ctx), id)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to fetch user",
			slog.String("operation", "GetUser"),
			slog.Int64("user_id", id),
			slog.Any("error", err),
		)
		return nil, err
	}
	return u, nil
}

// ListUsers returns a page of users.
func (s *UserService) ListUsers(ctx context.Context, limit, offset int) ([]user.User, error) {
	if _, err := actorFrom(ctx); err != nil {
		return nil, err
	}
	s.logger.InfoContext(ctx, "listing users", slog.Int("limit", limit), slog.Int("offset", offset))

	if limit < 0 || limit > maxUserPage {
		return nil, domain.NewValidationError("limit", fmt.Sprintf("must be 0-%d, got %d", maxUserPage, limit))
	}
	if offset < 0 {
		return nil, domain.NewValidationError("offset", "must not be negative")
	}
	if limit == 0 {
		limit = defaultUserPage
	}

	users, err := s.users.ListUsers(ctx, limit, offset)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list users",
			slog.String("operation", "ListUsers"),
			slog.Any("error", err),
		)
		return nil, err
	}
	return users, nil
}

// UpdateUser applies a partial update. Users may update themselves; admins
// may update anyone.
func (s *UserService) UpdateUser(ctx context.Context, id int64, patch user.Patch) (*user.User, error) {
	actor, err := actorFrom(ctx)
	if err != nil {
		return nil, err
	}
	s.logger.InfoContext(ctx, "updating user", slog.Int64("user_id", id))

	if actor.UserID != id && !actor.IsAdmin {
		return nil, &domain.PermissionDeniedError{Action: "update", Resource: fmt.Sprintf("user %d", id)}
	}
	if patch.IsEmpty() {
		return nil, domain.NewValidationError("body", "at least one field must be provided")
	}

	current, err := s.loadUser(appctx.FromContext(ctx), id)
	if err != nil {
		return nil, err
	}
	next, err := patch.Apply(current)
	if err != nil {
		return nil, err
	}

	updated, err := s.users.UpdateUser(ctx, next)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to update user",
			slog.String("operation", "UpdateUser"),
			slog.Int64("user_id", id),
			slog.Any("error", err),
		)
		return nil, err
	}
	return updated, nil
}

func (s *UserService) loadUser(rc *appctx.RequestContext, id int64) (*user.User, error) {
	return s.userProvider(id).Get(rc)
}

func (s *UserService) userProvider(id int64) *appctx.DataProvider[*user.User] {
	return appctx.NewDataProvider(fmt.Sprintf("user:%d", id), func(ctx context.Context) (*user.User, error) {
		return s.users.GetUser(ctx, id)
	})
}
