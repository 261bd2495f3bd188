package usecases

import (
	"context"
	"errors"
	"time"

	"sdp-site.backend/internal/domain/entities"
	domainerrors "sdp-site.backend/internal/domain/errors"
	"sdp-site.backend/internal/domain/repositories"
	"sdp-site.backend/pkg/crypto"
	"sdp-site.backend/pkg/jwt"
	"sdp-site.backend/pkg/logger"
	"sdp-site.backend/pkg/redis"
)

// SessionStore abstracts the Redis-backed session store so the usecase can be
// tested against miniredis or a stub.
type SessionStore interface {
	CreateSession(ctx context.Context, sessionID string, data *redis.SessionData, expiration time.Duration) error
	GetSession(ctx context.Context, sessionID string) (*redis.SessionData, error)
	DeleteSession(ctx context.Context, sessionID string) error
}

// AuthUsecase handles admin console authentication
type AuthUsecase struct {
	userRepo     repositories.UserRepository
	jwtService   *jwt.JWTService
	sessionStore SessionStore
	sessionTTL   time.Duration
}

// NewAuthUsecase creates a new auth usecase
func NewAuthUsecase(
	userRepo repositories.UserRepository,
	jwtService *jwt.JWTService,
	sessionStore SessionStore,
	sessionTTL time.Duration,
) *AuthUsecase {
	return &AuthUsecase{
		userRepo:     userRepo,
		jwtService:   jwtService,
		sessionStore: sessionStore,
		sessionTTL:   sessionTTL,
	}
}

// Login verifies credentials and opens a session. Unknown email and wrong
// password both return ErrInvalidCredentials so the response never reveals
// which part failed.
func (u *AuthUsecase) Login(ctx context.Context, input *entities.LoginInput) (*entities.AuthResponse, error) {
	user, err := u.userRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !crypto.CheckPassword(input.Password, user.PasswordHash) {
		return nil, domainerrors.ErrInvalidCredentials
	}

	tokens, err := u.jwtService.GenerateTokenPair(user.ID, user.Email, string(user.Role))
	if err != nil {
		return nil, err
	}

	// 32 random bytes, hex encoded. The session id is the only secret the
	// browser holds, so it comes from crypto/rand rather than a uuid.
	sessionID, err := crypto.GenerateRandomToken(32)
	if err != nil {
		return nil, err
	}
	sessionData := &redis.SessionData{
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
	}
	if err := u.sessionStore.CreateSession(ctx, sessionID, sessionData, u.sessionTTL); err != nil {
		return nil, err
	}

	logger.Info(ctx, "admin login: "+user.Email)

	return &entities.AuthResponse{
		SessionID: sessionID,
		User:      user,
	}, nil
}

// Logout closes the session. Deleting an already-expired session is not an
// error.
func (u *AuthUsecase) Logout(ctx context.Context, sessionID string) error {
	return u.sessionStore.DeleteSession(ctx, sessionID)
}

// ResolveSession maps a session cookie value to the JWT claims stored for it.
// Returns ErrUnauthorized when the session is missing, expired or carries a
// stale token.
func (u *AuthUsecase) ResolveSession(ctx context.Context, sessionID string) (*jwt.Claims, error) {
	if sessionID == "" {
		return nil, domainerrors.ErrUnauthorized
	}

	session, err := u.sessionStore.GetSession(ctx, sessionID)
	if err != nil {
		return nil, domainerrors.ErrUnauthorized
	}

	claims, err := u.jwtService.ValidateToken(session.AccessToken)
	if err != nil {
		return nil, domainerrors.ErrUnauthorized
	}

	return claims, nil
}

// CurrentUser returns the account behind a session.
func (u *AuthUsecase) CurrentUser(ctx context.Context, sessionID string) (*entities.User, error) {
	claims, err := u.ResolveSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	user, err := u.userRepo.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.ErrUnauthorized
		}
		return nil, err
	}

	return user, nil
}

// EnsureAdminUser creates the initial admin account if no user with the
// given email exists yet. Returns true when a new account was created.
func (u *AuthUsecase) EnsureAdminUser(ctx context.Context, email, password, name string) (bool, error) {
	_, err := u.userRepo.GetByEmail(ctx, email)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, domainerrors.ErrNotFound) {
		return false, err
	}

	passwordHash, err := crypto.HashPassword(password)
	if err != nil {
		return false, err
	}

	admin := &entities.User{
		Email:        email,
		Name:         name,
		PasswordHash: passwordHash,
		Role:         entities.UserRoleAdmin,
	}
	if err := u.userRepo.Create(ctx, admin); err != nil {
		return false, err
	}

	logger.Info(ctx, "admin account created: "+email)
	return true, nil
}
