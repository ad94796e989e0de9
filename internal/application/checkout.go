package application

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/dentalcare360/storefront/internal/domain/entity"
	"github.com/dentalcare360/storefront/pkg/helpers"
)

// Stage is one step of the strictly linear checkout flow.
type Stage string

const (
	StageDetails  Stage = "details"
	StageShipping Stage = "shipping"
	StagePayment  Stage = "payment"
	StageComplete Stage = "complete"
)

// PlaceOrderInput carries the shipping and payment form at the final stage.
// SelectedAddressID references an existing address of the session user; when
// empty the frozen shipping address gets a fresh identifier.
type PlaceOrderInput struct {
	SelectedAddressID string
	Street            string
	Number            string
	Complement        string
	Neighborhood      string
	City              string
	State             string
	ZipCode           string
	PaymentMethod     string
}

// Checkout composes the cart and account stores into the order flow:
// Details -> Shipping -> Payment -> Complete, no skipping, back retreats one
// stage, and placing the order from the payment stage materializes it.
type Checkout struct {
	mu       sync.Mutex
	cart     *CartStore
	accounts *AccountStore
	logger   *logrus.Logger
	stage    Stage
	orderID  string
}

func NewCheckout(cart *CartStore, accounts *AccountStore, logger *logrus.Logger) *Checkout {
	return &Checkout{cart: cart, accounts: accounts, logger: logger, stage: StageDetails}
}

// State returns the current stage and, once complete, the order id.
func (c *Checkout) State() (Stage, string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stage, c.orderID
}

// Advance moves one stage forward. The payment stage only advances through
// PlaceOrder, and a completed flow stays terminal until Reset.
func (c *Checkout) Advance() (Stage, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	switch c.stage {
	case StageDetails:
		c.stage = StageShipping
	case StageShipping:
		c.stage = StagePayment
	case StagePayment:
		return c.stage, ErrOrderRequired
	case StageComplete:
		return c.stage, ErrCheckoutComplete
	}
	return c.stage, nil
}

// Back retreats one stage. Details has nothing before it and Complete is
// terminal; both are no-ops.
func (c *Checkout) Back() Stage {
	c.mu.Lock()
	defer c.mu.Unlock()
	switch c.stage {
	case StageShipping:
		c.stage = StageDetails
	case StagePayment:
		c.stage = StageShipping
	}
	return c.stage
}

// Reset starts a fresh flow after a completed (or abandoned) one.
func (c *Checkout) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stage = StageDetails
	c.orderID = ""
}

// PlaceOrder materializes an order from the current cart and form input, as
// one logical transaction: freeze the shipping address, snapshot every cart
// line at its effective price, append the order to the session user's
// history, clear the cart, and land on Complete carrying the order id.
// Only the payment stage may place an order; earlier stages must be
// traversed through Advance.
//
// A guest checkout (or a failed history append) still completes and returns
// the order; it is simply not recorded anywhere.
func (c *Checkout) PlaceOrder(ctx context.Context, in PlaceOrderInput) (*entity.Order, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.stage == StageComplete {
		return nil, ErrCheckoutComplete
	}
	if c.stage != StagePayment {
		return nil, ErrPaymentStageRequired
	}
	lines := c.cart.Lines()
	if len(lines) == 0 {
		return nil, ErrCartEmpty
	}

	addressID := in.SelectedAddressID
	if addressID == "" {
		addressID = helpers.NewEntityID()
	}
	shipping := entity.Address{
		ID:           addressID,
		Street:       in.Street,
		Number:       in.Number,
		Complement:   in.Complement,
		Neighborhood: in.Neighborhood,
		City:         in.City,
		State:        in.State,
		ZipCode:      in.ZipCode,
	}

	items := make([]entity.OrderItem, 0, len(lines))
	total := 0.0
	for _, l := range lines {
		items = append(items, entity.OrderItem{
			ProductID:   l.Product.ID,
			ProductName: l.Product.Name,
			Quantity:    l.Quantity,
			Price:       l.Product.EffectivePrice(),
		})
		total += l.Subtotal()
	}

	order := entity.Order{
		ID:              helpers.NewEntityID(),
		Date:            time.Now().UTC(),
		Status:          entity.OrderPending,
		Items:           items,
		Total:           total,
		ShippingAddress: shipping,
		PaymentMethod:   in.PaymentMethod,
	}

	if c.accounts.IsAuthenticated() {
		if err := c.accounts.AppendOrder(ctx, order); err != nil && c.logger != nil {
			c.logger.WithError(err).WithField("order_id", order.ID).Warn("order not recorded in history")
		}
	}

	c.cart.Clear(ctx)
	c.stage = StageComplete
	c.orderID = order.ID
	return &order, nil
}
