package repository

import (
	"context"

	"github.com/invorya/inventario-lite/internal/domain/entity"
)

// ItemRepository define el puerto de persistencia para Item (DIP).
// Cada operación es una única sentencia atómica contra la tabla items.
type ItemRepository interface {
	FindAll(ctx context.Context) ([]*entity.Item, error)
	// FindByNameFold busca por la clave case-folded del nombre. Devuelve (nil, nil) si no existe.
	FindByNameFold(ctx context.Context, nameKey string) (*entity.Item, error)
	Insert(ctx context.Context, item *entity.Item) error
	// UpdateByName sobreescribe quantity y location del item cuya clave coincide.
	// Devuelve cuántas filas tocó (0 = no existe).
	UpdateByName(ctx context.Context, nameKey string, quantity int, location string) (int64, error)
	// DeleteByName elimina por clave case-folded. Borrar algo inexistente no es error.
	DeleteByName(ctx context.Context, nameKey string) error
}
