package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	kvinfra "github.com/dentalcare360/storefront/internal/infrastructure/kv"
)

func newCheckout(t *testing.T) (*Checkout, *CartStore, *AccountStore) {
	t.Helper()
	ctx := context.Background()
	cart := NewCartStore(ctx, kvinfra.NewMemoryStore(), nil)
	accounts := NewAccountStore(ctx, kvinfra.NewMemoryStore(), nil, 0)
	return NewCheckout(cart, accounts, nil), cart, accounts
}

func advanceToPayment(t *testing.T, co *Checkout) {
	t.Helper()
	_, err := co.Advance()
	require.NoError(t, err)
	_, err = co.Advance()
	require.NoError(t, err)
	stage, _ := co.State()
	require.Equal(t, StagePayment, stage)
}

func TestCheckoutStageFlow(t *testing.T) {
	co, _, _ := newCheckout(t)

	stage, _ := co.State()
	require.Equal(t, StageDetails, stage)

	stage, err := co.Advance()
	require.NoError(t, err)
	assert.Equal(t, StageShipping, stage)

	stage, err = co.Advance()
	require.NoError(t, err)
	assert.Equal(t, StagePayment, stage)

	// The payment stage only advances by placing the order.
	stage, err = co.Advance()
	assert.ErrorIs(t, err, ErrOrderRequired)
	assert.Equal(t, StagePayment, stage)

	assert.Equal(t, StageShipping, co.Back())
	assert.Equal(t, StageDetails, co.Back())
	assert.Equal(t, StageDetails, co.Back(), "details has nothing before it")
}

func TestPlaceOrderRequiresPaymentStage(t *testing.T) {
	ctx := context.Background()
	co, cart, _ := newCheckout(t)
	cart.AddItem(ctx, toothbrush, 1)

	_, err := co.PlaceOrder(ctx, PlaceOrderInput{})
	assert.ErrorIs(t, err, ErrPaymentStageRequired)
	stage, _ := co.State()
	assert.Equal(t, StageDetails, stage, "a rejected placement does not move the stage")

	_, err = co.Advance()
	require.NoError(t, err)
	_, err = co.PlaceOrder(ctx, PlaceOrderInput{})
	assert.ErrorIs(t, err, ErrPaymentStageRequired)
	stage, _ = co.State()
	assert.Equal(t, StageShipping, stage)

	assert.Len(t, cart.Lines(), 1, "a rejected placement leaves the cart intact")
}

func TestPlaceOrderEmptyCart(t *testing.T) {
	co, _, _ := newCheckout(t)
	advanceToPayment(t, co)
	_, err := co.PlaceOrder(context.Background(), PlaceOrderInput{})
	assert.ErrorIs(t, err, ErrCartEmpty)
}

func TestPlaceOrderRecordsHistoryForSessionUser(t *testing.T) {
	ctx := context.Background()
	co, cart, accounts := newCheckout(t)

	_, err := accounts.Register(ctx, "Ana", "ana@x.com", "pw")
	require.NoError(t, err)

	cart.AddItem(ctx, toothbrush, 1) // 29.90
	cart.AddItem(ctx, toothpaste, 1) // 19.90 discounted
	advanceToPayment(t, co)

	order, err := co.PlaceOrder(ctx, PlaceOrderInput{
		Street:        "Rua das Flores",
		Number:        "12",
		City:          "São Paulo",
		State:         "SP",
		ZipCode:       "01000-000",
		PaymentMethod: "pix",
	})
	require.NoError(t, err)
	assert.InDelta(t, 49.80, order.Total, 0.001)
	require.Len(t, order.Items, 2)
	assert.InDelta(t, 19.90, order.Items[1].Price, 0.001, "snapshot takes the effective price")
	assert.NotEmpty(t, order.ShippingAddress.ID, "a fresh shipping address gets an id")

	stage, orderID := co.State()
	assert.Equal(t, StageComplete, stage)
	assert.Equal(t, order.ID, orderID)
	assert.Empty(t, cart.Lines(), "cart cleared on completion")

	orders, err := accounts.Orders()
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, order.ID, orders[0].ID)
}

func TestOrderTotalDerivesFromItemSnapshots(t *testing.T) {
	ctx := context.Background()
	co, cart, _ := newCheckout(t)

	cart.AddItem(ctx, toothbrush, 3)
	cart.AddItem(ctx, toothpaste, 2)
	advanceToPayment(t, co)

	order, err := co.PlaceOrder(ctx, PlaceOrderInput{PaymentMethod: "pix"})
	require.NoError(t, err)

	sum := 0.0
	for _, it := range order.Items {
		sum += it.Price * float64(it.Quantity)
	}
	assert.InDelta(t, sum, order.Total, 0.001, "total is the sum of the frozen items")
	assert.Zero(t, cart.Total(), "live cart no longer backs the order total")
}

func TestPlaceOrderUsesSelectedAddressID(t *testing.T) {
	ctx := context.Background()
	co, cart, accounts := newCheckout(t)

	_, err := accounts.Register(ctx, "Ana", "ana@x.com", "pw")
	require.NoError(t, err)
	addr, err := accounts.AddAddress(ctx, AddressInput{Street: "Rua A"})
	require.NoError(t, err)

	cart.AddItem(ctx, floss, 1)
	advanceToPayment(t, co)
	order, err := co.PlaceOrder(ctx, PlaceOrderInput{SelectedAddressID: addr.ID, PaymentMethod: "card"})
	require.NoError(t, err)
	assert.Equal(t, addr.ID, order.ShippingAddress.ID)
}

func TestGuestCheckoutCompletesWithoutHistory(t *testing.T) {
	ctx := context.Background()
	co, cart, accounts := newCheckout(t)

	cart.AddItem(ctx, toothbrush, 2)
	advanceToPayment(t, co)
	order, err := co.PlaceOrder(ctx, PlaceOrderInput{PaymentMethod: "boleto"})
	require.NoError(t, err)
	assert.NotEmpty(t, order.ID)

	stage, _ := co.State()
	assert.Equal(t, StageComplete, stage)
	assert.Empty(t, cart.Lines())
	assert.False(t, accounts.IsAuthenticated())
}

func TestCompletedCheckoutIsTerminalUntilReset(t *testing.T) {
	ctx := context.Background()
	co, cart, _ := newCheckout(t)

	cart.AddItem(ctx, toothbrush, 1)
	advanceToPayment(t, co)
	_, err := co.PlaceOrder(ctx, PlaceOrderInput{})
	require.NoError(t, err)

	_, err = co.Advance()
	assert.ErrorIs(t, err, ErrCheckoutComplete)

	cart.AddItem(ctx, floss, 1)
	_, err = co.PlaceOrder(ctx, PlaceOrderInput{})
	assert.ErrorIs(t, err, ErrCheckoutComplete)

	assert.Equal(t, StageComplete, co.Back(), "complete is terminal")

	co.Reset()
	stage, orderID := co.State()
	assert.Equal(t, StageDetails, stage)
	assert.Empty(t, orderID)
}
