package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckoutInitialState(t *testing.T) {
	c := NewCheckout()

	assert.Equal(t, StageReview, c.Stage)
	assert.False(t, c.Mode.Valid())
	assert.Nil(t, c.Pending)
	assert.Equal(t, "Proceed to checkout", c.Stage.ButtonLabel())
}

func TestProceedRequiresMode(t *testing.T) {
	c := NewCheckout()

	err := c.Proceed("D123456", 10)
	assert.ErrorIs(t, err, ErrNoModeSelected)
	assert.Equal(t, StageReview, c.Stage)
}

func TestDineInProceedBecomesReady(t *testing.T) {
	c := NewCheckout()
	c.SelectMode(ModeDineIn)

	require.NoError(t, c.Proceed("D123456", 17.5))
	assert.Equal(t, StageReady, c.Stage)
	assert.Equal(t, "Checkout", c.Stage.ButtonLabel())
	assert.False(t, c.AwaitingPayment())
	require.NotNil(t, c.Pending)
	assert.Equal(t, "D123456", c.Pending.TicketCode)
}

func TestPickupProceedHoldsTicket(t *testing.T) {
	c := NewCheckout()
	c.SelectMode(ModePickup)

	require.NoError(t, c.Proceed("P123456", 9.5))
	assert.Equal(t, StageReview, c.Stage)
	assert.True(t, c.AwaitingPayment())

	// Finalize is rejected until payment completes.
	_, err := c.Finalize()
	assert.ErrorIs(t, err, ErrNotReady)

	require.NoError(t, c.CompletePayment())
	assert.Equal(t, StageReady, c.Stage)

	done, err := c.Finalize()
	require.NoError(t, err)
	assert.Equal(t, "P123456", done.TicketCode)
	assert.Equal(t, ModePickup, done.Mode)
}

func TestCompletePaymentOutsidePickupWindow(t *testing.T) {
	c := NewCheckout()
	assert.ErrorIs(t, c.CompletePayment(), ErrNotAwaitingPayment)

	c.SelectMode(ModeDineIn)
	require.NoError(t, c.Proceed("D123456", 5))
	assert.ErrorIs(t, c.CompletePayment(), ErrNotAwaitingPayment)
}

func TestFinalizeResetsToReview(t *testing.T) {
	c := NewCheckout()
	c.SelectMode(ModeDineIn)
	require.NoError(t, c.Proceed("D123456", 5))

	_, err := c.Finalize()
	require.NoError(t, err)
	assert.Equal(t, StageReview, c.Stage)
	assert.Nil(t, c.Pending)
	assert.Equal(t, ModeDineIn, c.Mode, "mode survives finalize")

	// A second finalize has nothing to consume.
	_, err = c.Finalize()
	assert.ErrorIs(t, err, ErrNotReady)
}

func TestSelectModeDiscardsPending(t *testing.T) {
	c := NewCheckout()
	c.SelectMode(ModeDineIn)
	require.NoError(t, c.Proceed("D123456", 5))

	c.SelectMode(ModePickup)
	assert.Equal(t, StageReview, c.Stage)
	assert.Nil(t, c.Pending)
	assert.Equal(t, ModePickup, c.Mode)
}

func TestResetKeepsMode(t *testing.T) {
	c := NewCheckout()
	c.SelectMode(ModePickup)
	require.NoError(t, c.Proceed("P123456", 5))

	c.Reset()
	assert.Equal(t, StageReview, c.Stage)
	assert.Nil(t, c.Pending)
	assert.False(t, c.AwaitingPayment())
	assert.Equal(t, ModePickup, c.Mode)
}
