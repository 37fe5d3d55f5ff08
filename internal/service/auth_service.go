package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/buildzy/be-workforce/internal/apperr"
	"github.com/buildzy/be-workforce/internal/auth"
	"github.com/buildzy/be-workforce/internal/repository"
	jwtpkg "github.com/buildzy/be-workforce/pkg/jwt"
	"github.com/buildzy/be-workforce/pkg/password"
)

// AuthService authenticates identities and issues bearer tokens.
type AuthService struct {
	userRepo *repository.UserRepository
	tokens   *jwtpkg.Manager
	log      zerolog.Logger
}

func NewAuthService(userRepo *repository.UserRepository, tokens *jwtpkg.Manager, log zerolog.Logger) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		tokens:   tokens,
		log:      log,
	}
}

// Login verifies a username/password pair and returns a signed token plus the
// identity. Lookup and verification failures are reported identically so the
// response does not reveal which usernames exist.
func (s *AuthService) Login(ctx context.Context, username, plainPassword string) (string, *repository.User, error) {
	if username == "" || plainPassword == "" {
		return "", nil, apperr.Validation("Username and password are required")
	}

	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		s.log.Warn().Str("username", username).Msg("Login failed: unknown user")
		return "", nil, apperr.Unauthorized("Invalid username or password")
	}

	valid, err := password.Verify(plainPassword, user.PasswordHash)
	if err != nil {
		s.log.Error().Err(err).Str("user_id", user.ID).Msg("Password verification failed")
		return "", nil, fmt.Errorf("password verification error: %w", err)
	}
	if !valid {
		s.log.Warn().Str("user_id", user.ID).Msg("Login failed: invalid password")
		return "", nil, apperr.Unauthorized("Invalid username or password")
	}

	token, err := s.tokens.GenerateToken(user.ID, user.Username, user.Role)
	if err != nil {
		return "", nil, fmt.Errorf("failed to generate token: %w", err)
	}

	s.log.Info().Str("user_id", user.ID).Str("role", user.Role).Msg("Login successful")
	return token, user, nil
}

// Me returns the identity behind the current principal.
func (s *AuthService) Me(ctx context.Context, p auth.Principal) (*repository.User, error) {
	return s.userRepo.GetByID(ctx, p.ID)
}
