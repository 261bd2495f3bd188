package usecases

import (
	"context"
	"encoding/hex"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"sdp-site.backend/internal/domain/entities"
	domainerrors "sdp-site.backend/internal/domain/errors"
	"sdp-site.backend/pkg/crypto"
	"sdp-site.backend/pkg/jwt"
)

func newTestAuthUsecase(t *testing.T, userRepo *userRepoStub) (*AuthUsecase, *memSessionStore) {
	t.Helper()
	jwtService := jwt.NewJWTService("test-secret", time.Hour, 24*time.Hour)
	store := newMemSessionStore()
	return NewAuthUsecase(userRepo, jwtService, store, time.Hour), store
}

func TestAuthUsecase_LoginSuccess(t *testing.T) {
	hash, err := crypto.HashPassword("admin123")
	require.NoError(t, err)

	admin := &entities.User{
		ID:           1,
		Email:        "admin@sdp.com",
		Name:         "Admin",
		PasswordHash: hash,
		Role:         entities.UserRoleAdmin,
	}
	userRepo := &userRepoStub{
		getByEmailFn: func(ctx context.Context, email string) (*entities.User, error) {
			if email == admin.Email {
				return admin, nil
			}
			return nil, domainerrors.ErrNotFound
		},
		getByIDFn: func(ctx context.Context, id uint) (*entities.User, error) {
			if id == admin.ID {
				return admin, nil
			}
			return nil, domainerrors.ErrNotFound
		},
	}
	usecase, store := newTestAuthUsecase(t, userRepo)
	ctx := context.Background()

	resp, err := usecase.Login(ctx, &entities.LoginInput{Email: "admin@sdp.com", Password: "admin123"})
	require.NoError(t, err)
	require.NotEmpty(t, resp.SessionID)

	// Session ids are 32 random bytes, hex encoded.
	require.Len(t, resp.SessionID, 64)
	_, err = hex.DecodeString(resp.SessionID)
	require.NoError(t, err)
	require.Equal(t, entities.UserRoleAdmin, resp.User.Role)
	require.Contains(t, store.sessions, resp.SessionID)

	claims, err := usecase.ResolveSession(ctx, resp.SessionID)
	require.NoError(t, err)
	require.Equal(t, uint(1), claims.UserID)
	require.Equal(t, "admin", claims.Role)

	current, err := usecase.CurrentUser(ctx, resp.SessionID)
	require.NoError(t, err)
	require.Equal(t, "admin@sdp.com", current.Email)

	require.NoError(t, usecase.Logout(ctx, resp.SessionID))
	_, err = usecase.ResolveSession(ctx, resp.SessionID)
	require.ErrorIs(t, err, domainerrors.ErrUnauthorized)
}

func TestAuthUsecase_LoginInvalidCredentials(t *testing.T) {
	hash, err := crypto.HashPassword("admin123")
	require.NoError(t, err)

	userRepo := &userRepoStub{
		getByEmailFn: func(ctx context.Context, email string) (*entities.User, error) {
			if email == "admin@sdp.com" {
				return &entities.User{ID: 1, Email: email, PasswordHash: hash, Role: entities.UserRoleAdmin}, nil
			}
			return nil, domainerrors.ErrNotFound
		},
	}
	usecase, _ := newTestAuthUsecase(t, userRepo)
	ctx := context.Background()

	// Unknown email and wrong password map to the same error.
	_, err = usecase.Login(ctx, &entities.LoginInput{Email: "nobody@sdp.com", Password: "admin123"})
	require.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)

	_, err = usecase.Login(ctx, &entities.LoginInput{Email: "admin@sdp.com", Password: "wrong"})
	require.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthUsecase_ResolveSessionRejectsMissingOrUnknown(t *testing.T) {
	usecase, _ := newTestAuthUsecase(t, &userRepoStub{})
	ctx := context.Background()

	_, err := usecase.ResolveSession(ctx, "")
	require.ErrorIs(t, err, domainerrors.ErrUnauthorized)

	_, err = usecase.ResolveSession(ctx, "no-such-session")
	require.ErrorIs(t, err, domainerrors.ErrUnauthorized)
}

func TestAuthUsecase_EnsureAdminUser(t *testing.T) {
	var created *entities.User
	userRepo := &userRepoStub{
		getByEmailFn: func(ctx context.Context, email string) (*entities.User, error) {
			if created != nil && created.Email == email {
				return created, nil
			}
			return nil, domainerrors.ErrNotFound
		},
		createFn: func(ctx context.Context, user *entities.User) error {
			user.ID = 1
			created = user
			return nil
		},
	}
	usecase, _ := newTestAuthUsecase(t, userRepo)
	ctx := context.Background()

	madeNew, err := usecase.EnsureAdminUser(ctx, "admin@sdp.com", "admin123", "Admin")
	require.NoError(t, err)
	require.True(t, madeNew)
	require.Equal(t, entities.UserRoleAdmin, created.Role)
	require.NotEqual(t, "admin123", created.PasswordHash)
	require.True(t, crypto.CheckPassword("admin123", created.PasswordHash))

	// Second run is a no-op.
	madeNew, err = usecase.EnsureAdminUser(ctx, "admin@sdp.com", "admin123", "Admin")
	require.NoError(t, err)
	require.False(t, madeNew)
}
