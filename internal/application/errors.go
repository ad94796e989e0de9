package application

import "errors"

var (
	// ErrNoSession is returned by account mutations that need a logged-in user.
	ErrNoSession = errors.New("no active session")
	// ErrEmailInUse is returned by Register when the email already has an account.
	ErrEmailInUse = errors.New("email already in use")
	// ErrUserNotFound is returned by Login when no account matches the email.
	ErrUserNotFound = errors.New("user not found")
	// ErrNotFound is returned when a referenced address or order id does not exist.
	ErrNotFound = errors.New("not found")
	// ErrCartEmpty blocks order placement on an empty cart.
	ErrCartEmpty = errors.New("cart is empty")
	// ErrCheckoutComplete is returned once a checkout flow reached its terminal stage.
	ErrCheckoutComplete = errors.New("checkout already complete")
	// ErrOrderRequired is returned when advancing past the payment stage without
	// placing the order.
	ErrOrderRequired = errors.New("order placement required to advance")
	// ErrPaymentStageRequired is returned when placing an order from any stage
	// before payment.
	ErrPaymentStageRequired = errors.New("payment stage required to place an order")
)
