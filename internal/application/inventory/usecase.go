package inventory

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/invorya/inventario-lite/internal/application/dto"
	"github.com/invorya/inventario-lite/internal/domain"
	"github.com/invorya/inventario-lite/internal/domain/entity"
	"github.com/invorya/inventario-lite/internal/domain/repository"
)

// InventoryUseCase reglas de negocio del inventario compartido: unicidad
// case-insensitive del nombre, gating por rol y normalización de entrada.
// El rol se toma siempre de la sesión explícita del invocador.
type InventoryUseCase struct {
	repo repository.ItemRepository
}

// NewInventoryUseCase construye el caso de uso.
func NewInventoryUseCase(repo repository.ItemRepository) *InventoryUseCase {
	return &InventoryUseCase{repo: repo}
}

// List devuelve el snapshot completo del inventario. Cualquier usuario
// autenticado puede listar; no se pagina (la tabla es pequeña por diseño).
func (uc *InventoryUseCase) List(ctx context.Context) (*dto.ItemListResponse, error) {
	list, err := uc.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ItemResponse, 0, len(list))
	for _, it := range list {
		items = append(items, *toItemResponse(it))
	}
	return &dto.ItemListResponse{Items: items, Total: len(items)}, nil
}

// FindExact busca un item por nombre completo, case-insensitive.
// "widget" encuentra "Widget"; "widget" NO encuentra "widgetX" (no es substring).
// Devuelve (nil, nil) si no existe.
func (uc *InventoryUseCase) FindExact(ctx context.Context, name string) (*dto.ItemResponse, error) {
	key := entity.FoldName(name)
	if key == "" {
		return nil, domain.ErrInvalidInput
	}
	item, err := uc.repo.FindByNameFold(ctx, key)
	if err != nil {
		return nil, err
	}
	return toItemResponse(item), nil
}

// Add crea un item nuevo. Solo admin. El nombre se recorta; vacío tras el trim
// es ErrInvalidInput, cantidad negativa también. Un nombre ya existente bajo
// case folding devuelve ErrDuplicate y deja el store intacto.
func (uc *InventoryUseCase) Add(ctx context.Context, session entity.Session, in dto.CreateItemRequest) (*dto.ItemResponse, error) {
	if !session.IsAdmin() {
		return nil, domain.ErrForbidden
	}
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Quantity < 0 {
		return nil, domain.ErrInvalidInput
	}
	key := entity.FoldName(name)
	existing, err := uc.repo.FindByNameFold(ctx, key)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	item := &entity.Item{
		ID:        uuid.New().String(),
		Name:      name,
		NameKey:   key,
		Quantity:  in.Quantity,
		Location:  strings.TrimSpace(in.Location),
		CreatedAt: now,
		UpdatedAt: now,
	}
	// La constraint única sobre name_key cubre la carrera entre el check y el insert.
	if err := uc.repo.Insert(ctx, item); err != nil {
		return nil, err
	}
	return toItemResponse(item), nil
}

// Update sobreescribe quantity y location del item con ese nombre (match
// case-insensitive). Solo admin. El nombre nunca cambia. Si el item no existe
// devuelve ErrNotFound en lugar del no-op silencioso.
func (uc *InventoryUseCase) Update(ctx context.Context, session entity.Session, name string, in dto.UpdateItemRequest) (*dto.ItemResponse, error) {
	if !session.IsAdmin() {
		return nil, domain.ErrForbidden
	}
	key := entity.FoldName(name)
	if key == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Quantity < 0 {
		return nil, domain.ErrInvalidInput
	}
	affected, err := uc.repo.UpdateByName(ctx, key, in.Quantity, strings.TrimSpace(in.Location))
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, domain.ErrNotFound
	}
	item, err := uc.repo.FindByNameFold(ctx, key)
	if err != nil {
		return nil, err
	}
	return toItemResponse(item), nil
}

// Delete elimina el item con ese nombre (match case-insensitive, misma regla
// que Update). Solo admin. Borrar un nombre inexistente no es error.
func (uc *InventoryUseCase) Delete(ctx context.Context, session entity.Session, name string) error {
	if !session.IsAdmin() {
		return domain.ErrForbidden
	}
	key := entity.FoldName(name)
	if key == "" {
		return domain.ErrInvalidInput
	}
	return uc.repo.DeleteByName(ctx, key)
}

func toItemResponse(it *entity.Item) *dto.ItemResponse {
	if it == nil {
		return nil
	}
	return &dto.ItemResponse{
		Name:      it.Name,
		Quantity:  it.Quantity,
		Location:  it.Location,
		CreatedAt: it.CreatedAt,
		UpdatedAt: it.UpdatedAt,
	}
}
