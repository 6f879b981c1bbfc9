package auth

import (
	"context"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/gudangapp/gudang-api/internal/application/dto"
	"github.com/gudangapp/gudang-api/internal/domain"
	"github.com/gudangapp/gudang-api/internal/domain/entity"
	"github.com/gudangapp/gudang-api/internal/domain/repository"
	"github.com/gudangapp/gudang-api/pkg/jwt"
)

// JWTConfig token generation settings.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase covers login, user creation and the default-admin bootstrap.
// Deliberately thin: no roles, no lockouts, single tenant.
type AuthUseCase struct {
	users  repository.UserRepository
	jwtCfg JWTConfig
}

// NewAuthUseCase builds the use case.
func NewAuthUseCase(users repository.UserRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{users: users, jwtCfg: jwtCfg}
}

// Login verifies username/password and returns a signed token.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	if in.Username == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	user, err := uc.users.GetByUsername(ctx, in.Username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.Username, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Token: token, Username: user.Username}, nil
}

// Register creates an account with a bcrypt-hashed password.
func (uc *AuthUseCase) Register(ctx context.Context, in dto.RegisterRequest) error {
	username := strings.TrimSpace(in.Username)
	if username == "" || in.Password == "" {
		return domain.ErrInvalidInput
	}
	existing, err := uc.users.GetByUsername(ctx, username)
	if err != nil {
		return err
	}
	if existing != nil {
		return domain.ErrDuplicate
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return uc.users.Create(ctx, &entity.User{Username: username, PasswordHash: string(hash)})
}

// EnsureDefaultAdmin seeds the configured admin account when the users table
// is empty, so a fresh deployment is reachable.
func (uc *AuthUseCase) EnsureDefaultAdmin(ctx context.Context, username, password string) error {
	n, err := uc.users.Count(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return uc.users.Create(ctx, &entity.User{Username: username, PasswordHash: string(hash)})
}
