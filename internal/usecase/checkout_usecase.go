package usecase

import (
	"context"
)

// CheckoutView is the state of the checkout flow as shown in the cart
// panel.
type CheckoutView struct {
	Stage           string  `json:"stage"`
	ButtonLabel     string  `json:"button_label"`
	Mode            string  `json:"mode,omitempty"`
	AwaitingPayment bool    `json:"awaiting_payment"`
	Ticket          string  `json:"ticket,omitempty"`
	Total           float64 `json:"total,omitempty"`
}

// SelectModeInput chooses between dine-in and pickup.
type SelectModeInput struct {
	Mode string `json:"mode" validate:"required,oneof=dinein pickup"`
}

// PaymentInput is the simulated pickup card form. All fields must be
// non-empty after trimming; no real card validation happens.
type PaymentInput struct {
	CardName   string `json:"cardName" validate:"required"`
	CardNumber string `json:"cardNumber" validate:"required"`
	Expiry     string `json:"expiry" validate:"required"`
	CVV        string `json:"cvv" validate:"required"`
}

// OrderConfirmation is the final ticket panel payload.
type OrderConfirmation struct {
	Ticket    string  `json:"ticket"`
	Mode      string  `json:"mode"`
	ModeLabel string  `json:"mode_label"`
	Total     float64 `json:"total"`
	TotalText string  `json:"total_text"`
	UserName  string  `json:"user_name,omitempty"`
	GWID      string  `json:"gwid,omitempty"`
}

// CheckoutUsecase drives the two-step checkout flow. The flow is
// single-tenant in-memory state; only finalized orders touch persistence.
type CheckoutUsecase interface {
	GetState(ctx context.Context) (*CheckoutView, error)
	SelectMode(ctx context.Context, input *SelectModeInput) (*CheckoutView, error)

	// Proceed validates the cart and mode, then issues a ticket. Dine-in
	// becomes Ready; pickup stays in Review awaiting payment.
	Proceed(ctx context.Context) (*CheckoutView, error)

	// SubmitPayment completes the simulated pickup payment form.
	SubmitPayment(ctx context.Context, input *PaymentInput) (*CheckoutView, error)

	// Finalize confirms a Ready checkout: records the order on the
	// session (when present), clears the cart, and returns the ticket.
	Finalize(ctx context.Context) (*OrderConfirmation, error)

	// Reopen unconditionally returns the flow to Review, discarding any
	// pending ticket. Reopening the cart panel and mutating the cart both
	// route here.
	Reopen(ctx context.Context) error

	// TicketQR renders the pending ticket as a PNG for scanning.
	TicketQR(ctx context.Context) ([]byte, error)
}
