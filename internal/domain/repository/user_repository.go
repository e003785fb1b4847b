package repository

import (
	"context"

	"github.com/invorya/inventario-lite/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP).
// La API solo lee usuarios; el alta vive en la herramienta de seed.
type UserRepository interface {
	// FindByUsername devuelve (nil, nil) si el usuario no existe.
	FindByUsername(ctx context.Context, username string) (*entity.User, error)
	// Create se usa únicamente desde cmd/seed para aprovisionar usuarios.
	Create(ctx context.Context, user *entity.User) error
}
