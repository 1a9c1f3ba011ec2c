package inventory

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sitedesk/sitedesk/internal/shared"
)

type mockRepository struct {
	items  map[string]*Item
	nextID int
}

func newMockRepository() *mockRepository {
	return &mockRepository{items: make(map[string]*Item), nextID: 1}
}

func (m *mockRepository) List(ctx context.Context) ([]Item, error) {
	out := make([]Item, 0, len(m.items))
	for _, item := range m.items {
		out = append(out, *item)
	}
	return out, nil
}

func (m *mockRepository) ListBelowMin(ctx context.Context) ([]Item, error) {
	var out []Item
	for _, item := range m.items {
		if item.BelowMin() {
			out = append(out, *item)
		}
	}
	return out, nil
}

func (m *mockRepository) Get(ctx context.Context, id string) (*Item, error) {
	item, ok := m.items[id]
	if !ok {
		return nil, shared.ErrNotFound
	}
	return item, nil
}

func (m *mockRepository) Create(ctx context.Context, item Item) (*Item, error) {
	for _, existing := range m.items {
		if existing.SKU == item.SKU {
			return nil, &shared.ConflictError{Constraint: "inventory_items_sku_key"}
		}
	}
	item.ID = fmt.Sprintf("i-%d", m.nextID)
	m.nextID++
	stored := item
	m.items[item.ID] = &stored
	return &stored, nil
}

func (m *mockRepository) Update(ctx context.Context, input UpdateInput) (*Item, error) {
	item, ok := m.items[input.ID]
	if !ok {
		return nil, shared.ErrNotFound
	}
	if input.OnHand != nil {
		item.OnHand = *input.OnHand
	}
	if input.MinQty != nil {
		item.MinQty = *input.MinQty
	}
	if input.Name != nil {
		item.Name = *input.Name
	}
	return item, nil
}

func (m *mockRepository) Delete(ctx context.Context, id string) (string, error) {
	if _, ok := m.items[id]; !ok {
		return "", shared.ErrNotFound
	}
	delete(m.items, id)
	return id, nil
}

var _ Repository = (*mockRepository)(nil)

func TestItemBelowMin(t *testing.T) {
	require.True(t, Item{OnHand: 10, MinQty: 50}.BelowMin())
	require.False(t, Item{OnHand: 50, MinQty: 50}.BelowMin())
	require.False(t, Item{OnHand: 100, MinQty: 50}.BelowMin())
}

func TestLowStockOnlyReturnsItemsBelowMin(t *testing.T) {
	repo := newMockRepository()
	svc := NewService(repo, nil)

	_, err := svc.Create(context.Background(), CreateInput{
		SKU: "CONC-001", Name: "Concrete Mix", UOM: "kg", OnHand: 1000, MinQty: 100,
	}, "u-actor")
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), CreateInput{
		SKU: "STEEL-001", Name: "Steel Rebar", UOM: "m", OnHand: 20, MinQty: 50,
	}, "u-actor")
	require.NoError(t, err)

	low, err := svc.LowStock(context.Background())
	require.NoError(t, err)
	require.Len(t, low, 1)
	require.Equal(t, "STEEL-001", low[0].SKU)
}

func TestCreateDuplicateSKUConflicts(t *testing.T) {
	repo := newMockRepository()
	svc := NewService(repo, nil)

	_, err := svc.Create(context.Background(), CreateInput{
		SKU: "CONC-001", Name: "Concrete Mix", UOM: "kg",
	}, "u-actor")
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), CreateInput{
		SKU: "CONC-001", Name: "Concrete Mix Duplicate", UOM: "kg",
	}, "u-actor")
	var conflict *shared.ConflictError
	require.ErrorAs(t, err, &conflict)
	require.Equal(t, "inventory_items_sku_key", conflict.Constraint)
}

func TestUpdateMovesItemAcrossThreshold(t *testing.T) {
	repo := newMockRepository()
	svc := NewService(repo, nil)

	created, err := svc.Create(context.Background(), CreateInput{
		SKU: "CONC-001", Name: "Concrete Mix", UOM: "kg", OnHand: 1000, MinQty: 100,
	}, "u-actor")
	require.NoError(t, err)

	onHand := 40.0
	updated, err := svc.Update(context.Background(), UpdateInput{ID: created.ID, OnHand: &onHand}, "u-actor")
	require.NoError(t, err)
	require.True(t, updated.BelowMin())

	low, err := svc.LowStock(context.Background())
	require.NoError(t, err)
	require.Len(t, low, 1)
}
