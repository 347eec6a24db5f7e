package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/task-tracker/internal/domain"
	"github.com/jsamuelsen11/task-tracker/internal/domain/user"
	"github.com/jsamuelsen11/task-tracker/internal/ports"
	"github.com/jsamuelsen11/task-tracker/mocks"
)

type userMocks struct {
	users  *mocks.MockUserRepository
	hasher *mocks.MockPasswordHasher
	tokens *mocks.MockTokenIssuer
}

func newTestUserService(t *testing.T) (*UserService, userMocks) {
	t.Helper()
	m := userMocks{
		users:  mocks.NewMockUserRepository(t),
		hasher: mocks.NewMockPasswordHasher(t),
		tokens: mocks.NewMockTokenIssuer(t),
	}
	svc := NewUserService(m.users, m.hasher, m.tokens, discardLogger())
	svc.now = fixedNow
	return svc, m
}

func storedUser(id int64, isAdmin bool) *user.User {
	return &user.User{
		ID:           id,
		Username:     "alice",
		Email:        user.MustEmail("alice@example.com"),
		PasswordHash: "$2a$10$hash",
		IsAdmin:      isAdmin,
		CreatedAt:    testNow.Add(-24 * time.Hour),
	}
}

func testPair() *ports.TokenPair {
	return &ports.TokenPair{AccessToken: "access", RefreshToken: "refresh", TokenType: "Bearer", ExpiresIn: 15 * time.Minute}
}

// --- Register ---

func TestUserService_Register(t *testing.T) {
	t.Parallel()

	t.Run("hashes password and creates user", func(t *testing.T) {
		t.Parallel()
		svc, m := newTestUserService(t)

		m.hasher.EXPECT().Hash("s3cret!!").Return("$2a$10$hash", nil).Once()
		m.users.EXPECT().CreateUser(mock.Anything, mock.MatchedBy(func(u *user.User) bool {
			return u.Username == "alice" && u.PasswordHash == "$2a$10$hash" && !u.IsAdmin
		})).RunAndReturn(func(_ context.Context, u *user.User) (*user.User, error) {
			saved := *u
			saved.ID = 5
			return &saved, nil
		}).Once()

		got, err := svc.Register(context.Background(), ports.Registration{
			Username: "  alice ",
			Email:    user.MustEmail("alice@example.com"),
			Password: "s3cret!!",
		})
		if err != nil {
			t.Fatalf("Register() error = %v, want nil", err)
		}
		if got.ID != 5 {
			t.Errorf("Register().ID = %d, want 5", got.ID)
		}
	})

	tests := []struct {
		name string
		in   ports.Registration
	}{
		{name: "short password", in: ports.Registration{Username: "alice", Email: user.MustEmail("a@example.com"), Password: "abc"}},
		{name: "short username", in: ports.Registration{Username: "al", Email: user.MustEmail("a@example.com"), Password: "s3cret!!"}},
		{name: "missing email", in: ports.Registration{Username: "alice", Password: "s3cret!!"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			svc, _ := newTestUserService(t)

			_, err := svc.Register(context.Background(), tt.in)
			if !errors.Is(err, domain.ErrValidation) {
				t.Errorf("Register() error = %v, want ErrValidation", err)
			}
		})
	}

	t.Run("duplicate username surfaces conflict", func(t *testing.T) {
		t.Parallel()
		svc, m := newTestUserService(t)

		m.hasher.EXPECT().Hash(mock.Anything).Return("h", nil).Once()
		m.users.EXPECT().CreateUser(mock.Anything, mock.Anything).Return(nil, domain.ErrConflict).Once()

		_, err := svc.Register(context.Background(), ports.Registration{
			Username: "alice",
			Email:    user.MustEmail("alice@example.com"),
			Password: "s3cret!!",
		})
		if !errors.Is(err, domain.ErrConflict) {
			t.Errorf("Register() error = %v, want ErrConflict", err)
		}
	})
}

// --- Authenticate / Refresh ---

func TestUserService_Authenticate(t *testing.T) {
	t.Parallel()

	t.Run("records login and issues tokens", func(t *testing.T) {
		t.Parallel()
		svc, m := newTestUserService(t)

		u := storedUser(5, false)
		m.users.EXPECT().GetUserByUsername(mock.Anything, "alice").Return(u, nil).Once()
		m.hasher.EXPECT().Verify(u.PasswordHash, "s3cret!!").Return(nil).Once()
		m.users.EXPECT().UpdateUser(mock.Anything, mock.MatchedBy(func(u *user.User) bool {
			return u.LastLoginAt != nil && u.LastLoginAt.Equal(testNow)
		})).RunAndReturn(func(_ context.Context, u *user.User) (*user.User, error) { return u, nil }).Once()
		m.tokens.EXPECT().IssuePair(u).Return(testPair(), nil).Once()

		got, err := svc.Authenticate(context.Background(), "alice", "s3cret!!")
		if err != nil {
			t.Fatalf("Authenticate() error = %v, want nil", err)
		}
		if got.AccessToken != "access" {
			t.Errorf("Authenticate().AccessToken = %q, want access", got.AccessToken)
		}
	})

	t.Run("unknown user and wrong password look the same", func(t *testing.T) {
		t.Parallel()
		svc, m := newTestUserService(t)

		m.users.EXPECT().GetUserByUsername(mock.Anything, "ghost").Return(nil, domain.ErrNotFound).Once()
		u := storedUser(5, false)
		m.users.EXPECT().GetUserByUsername(mock.Anything, "alice").Return(u, nil).Once()
		m.hasher.EXPECT().Verify(u.PasswordHash, "wrong").Return(errors.New("mismatch")).Once()

		_, errUnknown := svc.Authenticate(context.Background(), "ghost", "whatever")
		_, errWrong := svc.Authenticate(context.Background(), "alice", "wrong")
		for _, err := range []error{errUnknown, errWrong} {
			if !errors.Is(err, domain.ErrUnauthenticated) {
				t.Errorf("Authenticate() error = %v, want ErrUnauthenticated", err)
			}
		}
		if errUnknown.Error() != errWrong.Error() {
			t.Errorf("messages differ: %q vs %q", errUnknown, errWrong)
		}
	})
}

func TestUserService_Refresh(t *testing.T) {
	t.Parallel()

	t.Run("reissues for the stored user", func(t *testing.T) {
		t.Parallel()
		svc, m := newTestUserService(t)

		u := storedUser(5, true)
		m.tokens.EXPECT().Verify("refresh-token", ports.TokenRefresh).
			Return(&ports.TokenClaims{UserID: 5, Kind: ports.TokenRefresh}, nil).Once()
		m.users.EXPECT().GetUser(mock.Anything, int64(5)).Return(u, nil).Once()
		m.tokens.EXPECT().IssuePair(u).Return(testPair(), nil).Once()

		if _, err := svc.Refresh(context.Background(), "refresh-token"); err != nil {
			t.Fatalf("Refresh() error = %v, want nil", err)
		}
	})

	t.Run("deleted user cannot refresh", func(t *testing.T) {
		t.Parallel()
		svc, m := newTestUserService(t)

		m.tokens.EXPECT().Verify("refresh-token", ports.TokenRefresh).
			Return(&ports.TokenClaims{UserID: 5, Kind: ports.TokenRefresh}, nil).Once()
		m.users.EXPECT().GetUser(mock.Anything, int64(5)).Return(nil, domain.ErrNotFound).Once()

		_, err := svc.Refresh(context.Background(), "refresh-token")
		if !errors.Is(err, domain.ErrUnauthenticated) {
			t.Errorf("Refresh() error = %v, want ErrUnauthenticated", err)
		}
	})
}

// --- ResolveActor ---

func TestUserService_ResolveActor(t *testing.T) {
	t.Parallel()

	t.Run("uses the stored admin flag", func(t *testing.T) {
		t.Parallel()
		svc, m := newTestUserService(t)

		m.tokens.EXPECT().Verify("tok", ports.TokenAccess).
			Return(&ports.TokenClaims{UserID: 5, IsAdmin: true, Kind: ports.TokenAccess}, nil).Once()
		m.users.EXPECT().GetUser(mock.Anything, int64(5)).Return(storedUser(5, false), nil).Once()

		got, err := svc.ResolveActor(context.Background(), "tok")
		if err != nil {
			t.Fatalf("ResolveActor() error = %v, want nil", err)
		}
		if got != (ports.Actor{UserID: 5, IsAdmin: false}) {
			t.Errorf("ResolveActor() = %+v, want non-admin user 5", got)
		}
	})

	t.Run("invalid token", func(t *testing.T) {
		t.Parallel()
		svc, m := newTestUserService(t)

		m.tokens.EXPECT().Verify("tok", ports.TokenAccess).
			Return(nil, &domain.AuthenticationError{Reason: "token expired"}).Once()

		_, err := svc.ResolveActor(context.Background(), "tok")
		if !errors.Is(err, domain.ErrUnauthenticated) {
			t.Errorf("ResolveActor() error = %v, want ErrUnauthenticated", err)
		}
	})
}

// --- ListUsers / UpdateUser ---

func TestUserService_ListUsers(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		limit     int
		offset    int
		wantLimit int
		wantErr   bool
	}{
		{name: "default limit", limit: 0, wantLimit: defaultUserPage},
		{name: "explicit limit", limit: 10, offset: 20, wantLimit: 10},
		{name: "limit too large", limit: maxUserPage + 1, wantErr: true},
		{name: "negative offset", limit: 10, offset: -1, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			svc, m := newTestUserService(t)

			if !tt.wantErr {
				m.users.EXPECT().ListUsers(mock.Anything, tt.wantLimit, tt.offset).Return([]user.User{*storedUser(1, false)}, nil).Once()
			}

			_, err := svc.ListUsers(ctxAs(creatorID, false), tt.limit, tt.offset)
			if tt.wantErr {
				if !errors.Is(err, domain.ErrValidation) {
					t.Errorf("ListUsers() error = %v, want ErrValidation", err)
				}
				return
			}
			if err != nil {
				t.Errorf("ListUsers() error = %v, want nil", err)
			}
		})
	}
}

func TestUserService_UpdateUser(t *testing.T) {
	t.Parallel()

	t.Run("user renames self", func(t *testing.T) {
		t.Parallel()
		svc, m := newTestUserService(t)

		m.users.EXPECT().GetUser(mock.Anything, int64(5)).Return(storedUser(5, false), nil).Once()
		m.users.EXPECT().UpdateUser(mock.Anything, mock.MatchedBy(func(u *user.User) bool {
			return u.Username == "alicia"
		})).RunAndReturn(func(_ context.Context, u *user.User) (*user.User, error) { return u, nil }).Once()

		name := "alicia"
		got, err := svc.UpdateUser(ctxAs(5, false), 5, user.Patch{Username: &name})
		if err != nil {
			t.Fatalf("UpdateUser() error = %v, want nil", err)
		}
		if got.Username != "alicia" {
			t.Errorf("UpdateUser().Username = %q, want alicia", got.Username)
		}
	})

	t.Run("other user is refused", func(t *testing.T) {
		t.Parallel()
		svc, _ := newTestUserService(t)

		name := "mallory"
		_, err := svc.UpdateUser(ctxAs(6, false), 5, user.Patch{Username: &name})
		if !errors.Is(err, domain.ErrForbidden) {
			t.Errorf("UpdateUser() error = %v, want ErrForbidden", err)
		}
	})

	t.Run("empty patch", func(t *testing.T) {
		t.Parallel()
		svc, _ := newTestUserService(t)

		_, err := svc.UpdateUser(ctxAs(adminID, true), 5, user.Patch{})
		if !errors.Is(err, domain.ErrValidation) {
			t.Errorf("UpdateUser() error = %v, want ErrValidation", err)
		}
	})
}
