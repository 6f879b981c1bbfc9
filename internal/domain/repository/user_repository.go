package repository

import (
	"context"

	"github.com/gudangapp/gudang-api/internal/domain/entity"
)

// UserRepository is the persistence port for accounts.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	// GetByUsername returns nil (no error) when the account does not exist.
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
	Count(ctx context.Context) (int, error)
}
