package application

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dentalcare360/storefront/internal/domain/entity"
	kvinfra "github.com/dentalcare360/storefront/internal/infrastructure/kv"
)

var (
	toothbrush = entity.Product{ID: 1, Name: "Escova Dental Profissional", Price: 29.90, Category: "Higiene"}
	toothpaste = entity.Product{ID: 2, Name: "Creme Dental Branqueador", Price: 24.90, DiscountPrice: 19.90, Category: "Higiene"}
	floss      = entity.Product{ID: 4, Name: "Fio Dental Premium", Price: 15.90, Category: "Higiene"}
)

func newCart(t *testing.T) (*CartStore, *kvinfra.MemoryStore) {
	t.Helper()
	store := kvinfra.NewMemoryStore()
	return NewCartStore(context.Background(), store, nil), store
}

func TestAddItemMergesLinesByProduct(t *testing.T) {
	ctx := context.Background()
	cart, _ := newCart(t)

	cart.AddItem(ctx, toothbrush, 1)
	cart.AddItem(ctx, toothpaste, 2)
	cart.AddItem(ctx, toothbrush, 3)

	lines := cart.Lines()
	require.Len(t, lines, 2)
	assert.Equal(t, toothbrush.ID, lines[0].Product.ID)
	assert.Equal(t, 4, lines[0].Quantity)
	assert.Equal(t, 6, cart.ItemCount())
	assert.True(t, cart.IsOpen(), "adding an item opens the drawer")
}

func TestUpdateQuantityRemovesAtZeroOrBelow(t *testing.T) {
	ctx := context.Background()
	cart, _ := newCart(t)

	cart.AddItem(ctx, toothbrush, 2)
	cart.AddItem(ctx, floss, 1)

	cart.UpdateQuantity(ctx, toothbrush.ID, 5)
	require.Equal(t, 5, cart.Lines()[0].Quantity)

	cart.UpdateQuantity(ctx, floss.ID, 0)
	require.Len(t, cart.Lines(), 1)

	cart.UpdateQuantity(ctx, toothbrush.ID, -3)
	assert.Empty(t, cart.Lines())
}

func TestCartLinesAlwaysPositiveAndUnique(t *testing.T) {
	ctx := context.Background()
	cart, _ := newCart(t)

	cart.AddItem(ctx, toothbrush, 0) // below one counts as one
	cart.AddItem(ctx, toothbrush, 1)
	cart.AddItem(ctx, toothpaste, 2)
	cart.UpdateQuantity(ctx, toothpaste.ID, 1)
	cart.RemoveItem(ctx, 99) // unknown id is a no-op

	seen := map[int]bool{}
	for _, l := range cart.Lines() {
		assert.False(t, seen[l.Product.ID], "duplicate line for product %d", l.Product.ID)
		seen[l.Product.ID] = true
		assert.GreaterOrEqual(t, l.Quantity, 1)
	}
	assert.Equal(t, 2, cart.Lines()[0].Quantity)
}

func TestTotalUsesDiscountPrice(t *testing.T) {
	ctx := context.Background()
	cart, _ := newCart(t)

	cart.AddItem(ctx, toothbrush, 1) // 29.90
	cart.AddItem(ctx, toothpaste, 2) // 2 x 19.90 discounted

	assert.InDelta(t, 69.70, cart.Total(), 0.001)
}

func TestTotalRoundTrip(t *testing.T) {
	ctx := context.Background()
	cart, _ := newCart(t)

	cart.AddItem(ctx, toothbrush, 1)
	before := cart.Total()

	cart.AddItem(ctx, toothpaste, 3)
	cart.RemoveItem(ctx, toothpaste.ID)

	assert.InDelta(t, before, cart.Total(), 0.001)
}

func TestCartHydratesFromStorage(t *testing.T) {
	ctx := context.Background()
	store := kvinfra.NewMemoryStore()

	first := NewCartStore(ctx, store, nil)
	first.AddItem(ctx, toothpaste, 2)

	second := NewCartStore(ctx, store, nil)
	lines := second.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, toothpaste.ID, lines[0].Product.ID)
	assert.Equal(t, 2, lines[0].Quantity)
	assert.False(t, second.IsOpen(), "drawer flag is not persisted")
}

func TestCartHydrationRecoversFromMalformedRecord(t *testing.T) {
	ctx := context.Background()
	store := kvinfra.NewMemoryStore()
	require.NoError(t, store.Set(ctx, keyCart, "{not json"))

	cart := NewCartStore(ctx, store, nil)
	assert.Empty(t, cart.Lines())
	assert.Zero(t, cart.Total())
}

func TestClearPersistsEmptyCart(t *testing.T) {
	ctx := context.Background()
	cart, store := newCart(t)

	cart.AddItem(ctx, toothbrush, 2)
	cart.Clear(ctx)

	assert.Empty(t, cart.Lines())
	raw, ok := store.Get(ctx, keyCart)
	require.True(t, ok)
	var persisted []entity.CartLine
	require.NoError(t, json.Unmarshal([]byte(raw), &persisted))
	assert.Empty(t, persisted)
}
