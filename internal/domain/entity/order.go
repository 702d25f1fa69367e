// Package entity contains the core business objects of the project.
package entity

import (
	"fmt"
	"time"
)

// OrderMode distinguishes the two ways an order is handed over.
type OrderMode string

const (
	// ModeDineIn means the order is paid at the cashier and eaten on site.
	ModeDineIn OrderMode = "dinein"
	// ModePickup means the order is paid online and collected at the counter.
	ModePickup OrderMode = "pickup"
)

// Valid reports whether the mode is one of the two supported values.
func (m OrderMode) Valid() bool {
	return m == ModeDineIn || m == ModePickup
}

// TicketPrefix returns the single-letter prefix used in ticket codes.
func (m OrderMode) TicketPrefix() string {
	if m == ModePickup {
		return "P"
	}

	return "D"
}

// Label returns the human-readable form shown in order history.
func (m OrderMode) Label() string {
	if m == ModePickup {
		return "Pickup"
	}

	return "Dine-In"
}

// PendingOrder is the transient order between ticket generation and the
// final checkout confirmation. It is never persisted; abandoning or
// changing the cart discards it.
type PendingOrder struct {
	TicketCode string    `json:"ticket"`
	Total      float64   `json:"total"`
	Mode       OrderMode `json:"mode"`
}

// OrderRecord is a completed order appended to a user's history at
// finalize time.
type OrderRecord struct {
	TicketCode string    `json:"ticket"`
	Mode       OrderMode `json:"mode"`
	Total      float64   `json:"total"`
	Date       time.Time `json:"date"`
}

// NewTicketCode builds a ticket code from the mode prefix, the last four
// digits of the millisecond timestamp, and a two-digit random pad.
// randPad must be in [10, 99]; now and randPad are parameters so code
// generation stays deterministic under test.
func NewTicketCode(mode OrderMode, now time.Time, randPad int) string {
	millis := fmt.Sprintf("%d", now.UnixMilli())
	if len(millis) > 4 {
		millis = millis[len(millis)-4:]
	}

	return fmt.Sprintf("%s%s%02d", mode.TicketPrefix(), millis, randPad)
}
