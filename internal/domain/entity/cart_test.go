package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCartAddMergesByName(t *testing.T) {
	cart := &Cart{}
	cart.Add("Veggie Bowl", 8.75)
	cart.Add("Chicken Wrap", 6.5)
	cart.Add("Veggie Bowl", 8.75)

	assert.Len(t, cart.Lines, 2)
	assert.Equal(t, 2, cart.Lines[0].Quantity)
	assert.Equal(t, "Veggie Bowl", cart.Lines[0].Name)
	assert.Equal(t, 3, cart.Count())
	assert.InDelta(t, 24.0, cart.Total(), 1e-9)
}

func TestCartPreservesInsertionOrder(t *testing.T) {
	cart := &Cart{}
	cart.Add("A", 1)
	cart.Add("B", 2)
	cart.Add("C", 3)
	cart.AdjustQuantity("B", 5)

	names := []string{cart.Lines[0].Name, cart.Lines[1].Name, cart.Lines[2].Name}
	assert.Equal(t, []string{"A", "B", "C"}, names)
}

func TestAdjustQuantityRemovesAtZeroOrBelow(t *testing.T) {
	cart := &Cart{}
	cart.Add("A", 1)
	cart.Add("A", 1)

	cart.AdjustQuantity("A", -1)
	assert.Equal(t, 1, cart.Lines[0].Quantity)

	cart.AdjustQuantity("A", -3)
	assert.True(t, cart.IsEmpty())
}

func TestAdjustQuantityAbsentNameIsNoop(t *testing.T) {
	cart := &Cart{}
	cart.Add("A", 1)
	cart.AdjustQuantity("B", 2)

	assert.Len(t, cart.Lines, 1)
	assert.Equal(t, 1, cart.Count())
}

func TestRemoveAndClear(t *testing.T) {
	cart := &Cart{}
	cart.Add("A", 1)
	cart.Add("B", 2)
	cart.Add("B", 2)

	cart.Remove("B")
	assert.Len(t, cart.Lines, 1)

	cart.Clear()
	assert.True(t, cart.IsEmpty())
	assert.Equal(t, 0.0, cart.Total())
}
