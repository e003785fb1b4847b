package inventory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/invorya/inventario-lite/internal/application/dto"
	"github.com/invorya/inventario-lite/internal/application/inventory"
	"github.com/invorya/inventario-lite/internal/domain"
	"github.com/invorya/inventario-lite/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fake del repositorio en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeItemRepo struct {
	items map[string]*entity.Item // clave: NameKey
}

func newFakeItemRepo() *fakeItemRepo {
	return &fakeItemRepo{items: map[string]*entity.Item{}}
}

func (f *fakeItemRepo) FindAll(ctx context.Context) ([]*entity.Item, error) {
	var list []*entity.Item
	for _, it := range f.items {
		copied := *it
		list = append(list, &copied)
	}
	return list, nil
}

func (f *fakeItemRepo) FindByNameFold(ctx context.Context, nameKey string) (*entity.Item, error) {
	it, ok := f.items[nameKey]
	if !ok {
		return nil, nil
	}
	copied := *it
	return &copied, nil
}

func (f *fakeItemRepo) Insert(ctx context.Context, item *entity.Item) error {
	if _, ok := f.items[item.NameKey]; ok {
		return domain.ErrDuplicate
	}
	copied := *item
	f.items[item.NameKey] = &copied
	return nil
}

func (f *fakeItemRepo) UpdateByName(ctx context.Context, nameKey string, quantity int, location string) (int64, error) {
	it, ok := f.items[nameKey]
	if !ok {
		return 0, nil
	}
	it.Quantity = quantity
	it.Location = location
	return 1, nil
}

func (f *fakeItemRepo) DeleteByName(ctx context.Context, nameKey string) error {
	delete(f.items, nameKey)
	return nil
}

var (
	adminSession = entity.AuthenticatedSession("david", entity.RoleAdmin)
	userSession  = entity.AuthenticatedSession("pranat", entity.RoleUser)
)

func setupUC(t *testing.T) (*inventory.InventoryUseCase, *fakeItemRepo) {
	t.Helper()
	repo := newFakeItemRepo()
	return inventory.NewInventoryUseCase(repo), repo
}

// ──────────────────────────────────────────────────────────────────────────────
// Unicidad case-insensitive
// ──────────────────────────────────────────────────────────────────────────────

func TestAdd_NombreDuplicadoCaseInsensitive_RetornaDuplicate(t *testing.T) {
	uc, repo := setupUC(t)
	ctx := context.Background()

	_, err := uc.Add(ctx, adminSession, dto.CreateItemRequest{Name: "Widget", Quantity: 3, Location: "Bin 1"})
	require.NoError(t, err)

	// Segundo add con otra capitalización debe fallar y no tocar el store.
	_, err = uc.Add(ctx, adminSession, dto.CreateItemRequest{Name: "wIDGET", Quantity: 9, Location: "Bin 2"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	require.Len(t, repo.items, 1)
	stored := repo.items[entity.FoldName("Widget")]
	require.NotNil(t, stored)
	assert.Equal(t, "Widget", stored.Name, "el item original no debe cambiar")
	assert.Equal(t, 3, stored.Quantity)
}

func TestAdd_NombreVacioTrasTrim_RetornaInvalidInput(t *testing.T) {
	uc, repo := setupUC(t)

	_, err := uc.Add(context.Background(), adminSession, dto.CreateItemRequest{Name: "   ", Quantity: 1})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, repo.items)
}

func TestAdd_CantidadNegativa_RetornaInvalidInput(t *testing.T) {
	uc, _ := setupUC(t)

	_, err := uc.Add(context.Background(), adminSession, dto.CreateItemRequest{Name: "Bolt", Quantity: -1})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestAdd_RecortaNombreYUbicacion(t *testing.T) {
	uc, _ := setupUC(t)

	out, err := uc.Add(context.Background(), adminSession, dto.CreateItemRequest{
		Name: "  Gloves  ", Quantity: 10, Location: " Bin 3 ",
	})
	require.NoError(t, err)
	assert.Equal(t, "Gloves", out.Name)
	assert.Equal(t, "Bin 3", out.Location)
}

// ──────────────────────────────────────────────────────────────────────────────
// Gating por rol: user nunca muta, admin nunca es bloqueado por rol
// ──────────────────────────────────────────────────────────────────────────────

func TestMutaciones_RolUser_RetornaForbiddenYNoTocaStore(t *testing.T) {
	uc, repo := setupUC(t)
	ctx := context.Background()

	_, err := uc.Add(ctx, adminSession, dto.CreateItemRequest{Name: "Widget", Quantity: 3})
	require.NoError(t, err)

	_, err = uc.Add(ctx, userSession, dto.CreateItemRequest{Name: "Bolt", Quantity: 1})
	assert.ErrorIs(t, err, domain.ErrForbidden)

	_, err = uc.Update(ctx, userSession, "Widget", dto.UpdateItemRequest{Quantity: 99})
	assert.ErrorIs(t, err, domain.ErrForbidden)

	err = uc.Delete(ctx, userSession, "Widget")
	assert.ErrorIs(t, err, domain.ErrForbidden)

	// El store queda exactamente como lo dejó el admin.
	require.Len(t, repo.items, 1)
	assert.Equal(t, 3, repo.items[entity.FoldName("Widget")].Quantity)
}

func TestMutaciones_SesionAnonima_RetornaForbidden(t *testing.T) {
	uc, _ := setupUC(t)
	anon := entity.NewSession()

	_, err := uc.Add(context.Background(), anon, dto.CreateItemRequest{Name: "Bolt", Quantity: 1})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

// ──────────────────────────────────────────────────────────────────────────────
// Búsqueda exacta case-insensitive (no substring)
// ──────────────────────────────────────────────────────────────────────────────

func TestFindExact_CaseInsensitive(t *testing.T) {
	uc, _ := setupUC(t)
	ctx := context.Background()

	_, err := uc.Add(ctx, adminSession, dto.CreateItemRequest{Name: "widget", Quantity: 2})
	require.NoError(t, err)

	out, err := uc.FindExact(ctx, "Widget")
	require.NoError(t, err)
	require.NotNil(t, out, "Widget debe encontrar widget")
	assert.Equal(t, "widget", out.Name)
}

func TestFindExact_NoHaceMatchDeSubstring(t *testing.T) {
	uc, _ := setupUC(t)
	ctx := context.Background()

	_, err := uc.Add(ctx, adminSession, dto.CreateItemRequest{Name: "widgetX", Quantity: 2})
	require.NoError(t, err)

	out, err := uc.FindExact(ctx, "widget")
	require.NoError(t, err)
	assert.Nil(t, out, "solo existe widgetX; widget no debe aparecer")
}

// ──────────────────────────────────────────────────────────────────────────────
// Update: sobreescribe quantity/location, nombre inmutable, NotFound si no existe
// ──────────────────────────────────────────────────────────────────────────────

func TestUpdate_SobreescribeYConservaNombre(t *testing.T) {
	uc, _ := setupUC(t)
	ctx := context.Background()

	_, err := uc.Add(ctx, adminSession, dto.CreateItemRequest{Name: "Bolt", Quantity: 1, Location: "Bin 1"})
	require.NoError(t, err)

	out, err := uc.Update(ctx, adminSession, "bolt", dto.UpdateItemRequest{Quantity: 5, Location: " Shelf A "})
	require.NoError(t, err)
	assert.Equal(t, "Bolt", out.Name, "el nombre nunca cambia en update")
	assert.Equal(t, 5, out.Quantity)
	assert.Equal(t, "Shelf A", out.Location)
}

func TestUpdate_ItemInexistente_RetornaNotFound(t *testing.T) {
	uc, _ := setupUC(t)

	_, err := uc.Update(context.Background(), adminSession, "Bolt", dto.UpdateItemRequest{Quantity: 5})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Delete: case-insensitive, inexistente no es error
// ──────────────────────────────────────────────────────────────────────────────

func TestDelete_CaseInsensitive(t *testing.T) {
	uc, repo := setupUC(t)
	ctx := context.Background()

	_, err := uc.Add(ctx, adminSession, dto.CreateItemRequest{Name: "Gloves", Quantity: 10})
	require.NoError(t, err)

	require.NoError(t, uc.Delete(ctx, adminSession, "GLOVES"))
	assert.Empty(t, repo.items)
}

func TestDelete_ItemInexistente_NoEsError(t *testing.T) {
	uc, _ := setupUC(t)

	assert.NoError(t, uc.Delete(context.Background(), adminSession, "Fantasma"))
}

// ──────────────────────────────────────────────────────────────────────────────
// Escenario end-to-end: add → list → delete → list
// ──────────────────────────────────────────────────────────────────────────────

func TestEscenario_AddListDeleteList(t *testing.T) {
	uc, _ := setupUC(t)
	ctx := context.Background()

	_, err := uc.Add(ctx, adminSession, dto.CreateItemRequest{Name: "Gloves", Quantity: 10, Location: "Bin 3"})
	require.NoError(t, err)

	list, err := uc.List(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, list.Total)
	assert.Equal(t, "Gloves", list.Items[0].Name)
	assert.Equal(t, 10, list.Items[0].Quantity)
	assert.Equal(t, "Bin 3", list.Items[0].Location)

	require.NoError(t, uc.Delete(ctx, adminSession, "Gloves"))

	list, err = uc.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, list.Total)
	assert.Empty(t, list.Items)
}
