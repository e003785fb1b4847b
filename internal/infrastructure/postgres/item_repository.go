package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/invorya/inventario-lite/internal/domain"
	"github.com/invorya/inventario-lite/internal/domain/entity"
	"github.com/invorya/inventario-lite/internal/domain/repository"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var _ repository.ItemRepository = (*ItemRepo)(nil)

// ItemRepo implementación del puerto ItemRepository sobre PostgreSQL.
// Cada método es una sola sentencia; la unicidad la garantiza la constraint
// sobre name_key.
type ItemRepo struct {
	pool *pgxpool.Pool
}

// NewItemRepository construye el adaptador de persistencia para items.
func NewItemRepository(pool *pgxpool.Pool) *ItemRepo {
	return &ItemRepo{pool: pool}
}

// FindAll devuelve el inventario completo ordenado por nombre.
func (r *ItemRepo) FindAll(ctx context.Context) ([]*entity.Item, error) {
	query := `
		SELECT id, name, name_key, quantity, location, created_at, updated_at
		FROM items ORDER BY name`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()
	var list []*entity.Item
	for rows.Next() {
		var it entity.Item
		if err := rows.Scan(&it.ID, &it.Name, &it.NameKey, &it.Quantity, &it.Location, &it.CreatedAt, &it.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		list = append(list, &it)
	}
	return list, rows.Err()
}

// FindByNameFold obtiene un item por su clave case-folded. Devuelve (nil, nil) si no existe.
func (r *ItemRepo) FindByNameFold(ctx context.Context, nameKey string) (*entity.Item, error) {
	query := `
		SELECT id, name, name_key, quantity, location, created_at, updated_at
		FROM items WHERE name_key = $1`
	var it entity.Item
	err := r.pool.QueryRow(ctx, query, nameKey).Scan(
		&it.ID, &it.Name, &it.NameKey, &it.Quantity, &it.Location, &it.CreatedAt, &it.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get item by name: %w", err)
	}
	return &it, nil
}

// Insert persiste un item nuevo. Mapea la violación de unicidad a ErrDuplicate.
func (r *ItemRepo) Insert(ctx context.Context, item *entity.Item) error {
	query := `
		INSERT INTO items (id, name, name_key, quantity, location, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.pool.Exec(ctx, query,
		item.ID, item.Name, item.NameKey, item.Quantity, item.Location,
		item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert item: %w", err)
	}
	return nil
}

// UpdateByName sobreescribe quantity y location del item con esa clave.
// Devuelve cuántas filas tocó (0 = no existía).
func (r *ItemRepo) UpdateByName(ctx context.Context, nameKey string, quantity int, location string) (int64, error) {
	query := `
		UPDATE items SET quantity = $2, location = $3, updated_at = now()
		WHERE name_key = $1`
	tag, err := r.pool.Exec(ctx, query, nameKey, quantity, location)
	if err != nil {
		return 0, fmt.Errorf("update item: %w", err)
	}
	return tag.RowsAffected(), nil
}

// DeleteByName elimina el item con esa clave. Borrar algo inexistente no es error.
func (r *ItemRepo) DeleteByName(ctx context.Context, nameKey string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM items WHERE name_key = $1`, nameKey)
	if err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	return nil
}
