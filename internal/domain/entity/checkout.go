// Package entity contains the core business objects of the project.
package entity

import "errors"

// Checkout transition errors. These are domain sentinels; the usecase layer
// maps them onto user-visible validation failures.
var (
	// ErrNoModeSelected is returned when proceeding without choosing
	// dine-in or pickup first.
	ErrNoModeSelected = errors.New("no order mode selected")
	// ErrNotAwaitingPayment is returned when payment is submitted outside
	// the pickup payment step.
	ErrNotAwaitingPayment = errors.New("checkout is not awaiting payment")
	// ErrNotReady is returned when finalizing before a ticket was issued.
	ErrNotReady = errors.New("checkout is not ready to finalize")
)

// CheckoutStage is the explicit state of the two-step checkout flow.
type CheckoutStage string

const (
	// StageReview is the initial stage: the user is still editing the cart
	// or has not completed the pickup payment form.
	StageReview CheckoutStage = "review"
	// StageReady means a ticket has been issued and the next checkout
	// action finalizes the order.
	StageReady CheckoutStage = "ready"
)

// ButtonLabel returns the contextual label of the single checkout button.
func (s CheckoutStage) ButtonLabel() string {
	if s == StageReady {
		return "Checkout"
	}

	return "Proceed to checkout"
}

// Checkout is the pure state machine behind the cart panel's checkout flow.
// All transitions reject invalid call orders instead of relying on the
// caller sequencing; validation that needs the cart (emptiness, total) is
// performed by the usecase before driving the machine.
type Checkout struct {
	Stage   CheckoutStage
	Mode    OrderMode
	Pending *PendingOrder

	// awaitingPayment marks the pickup window between ticket generation
	// and payment completion, during which the stage stays Review.
	awaitingPayment bool
}

// NewCheckout returns a machine in the initial Review stage with no mode
// selected.
func NewCheckout() *Checkout {
	return &Checkout{Stage: StageReview}
}

// SelectMode records the order mode. Selecting a mode always discards any
// pending ticket and returns the machine to Review; the user must generate
// a fresh ticket after changing their mind.
func (c *Checkout) SelectMode(mode OrderMode) {
	c.Mode = mode
	c.Reset()
}

// Proceed issues a ticket for the given total. Dine-in tickets are issued
// immediately and the machine becomes Ready. Pickup tickets are
// pre-computed but held back until CompletePayment; the machine stays in
// Review meanwhile.
func (c *Checkout) Proceed(ticketCode string, total float64) error {
	if !c.Mode.Valid() {
		return ErrNoModeSelected
	}

	c.Pending = &PendingOrder{TicketCode: ticketCode, Total: total, Mode: c.Mode}

	if c.Mode == ModeDineIn {
		c.Stage = StageReady
		c.awaitingPayment = false

		return nil
	}

	c.awaitingPayment = true

	return nil
}

// AwaitingPayment reports whether a pickup ticket is waiting on the
// simulated payment form.
func (c *Checkout) AwaitingPayment() bool {
	return c.awaitingPayment
}

// CompletePayment issues the held-back pickup ticket after the payment
// form was accepted.
func (c *Checkout) CompletePayment() error {
	if !c.awaitingPayment || c.Pending == nil {
		return ErrNotAwaitingPayment
	}

	c.awaitingPayment = false
	c.Stage = StageReady

	return nil
}

// Finalize consumes the pending order and returns the machine to Review.
func (c *Checkout) Finalize() (*PendingOrder, error) {
	if c.Stage != StageReady || c.Pending == nil {
		return nil, ErrNotReady
	}

	done := c.Pending
	c.Reset()

	return done, nil
}

// Reset discards any pending ticket and returns to Review. The selected
// mode is kept; only an explicit re-selection changes it.
func (c *Checkout) Reset() {
	c.Stage = StageReview
	c.Pending = nil
	c.awaitingPayment = false
}
