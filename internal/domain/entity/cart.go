// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

// CartLine is a single line of the shopping cart. The item name is the
// unique key within a cart; adding the same name again bumps the quantity
// instead of creating a second line.
type CartLine struct {
	Name      string  `json:"name"`
	UnitPrice float64 `json:"price"`
	Quantity  int     `json:"qty"`
}

// Cart is an ordered collection of cart lines. Line order is insertion
// order and survives quantity adjustments. All methods are pure state
// manipulation; persistence and rendering live elsewhere.
type Cart struct {
	Lines []CartLine `json:"lines"`
}

// Add increments the quantity of an existing line by one, or appends a new
// line with quantity one.
func (c *Cart) Add(name string, unitPrice float64) {
	for i := range c.Lines {
		if c.Lines[i].Name == name {
			c.Lines[i].Quantity++

			return
		}
	}

	c.Lines = append(c.Lines, CartLine{Name: name, UnitPrice: unitPrice, Quantity: 1})
}

// AdjustQuantity applies delta to the named line's quantity. The line is
// removed entirely once the quantity drops to zero or below. Adjusting an
// absent name is a no-op.
func (c *Cart) AdjustQuantity(name string, delta int) {
	for i := range c.Lines {
		if c.Lines[i].Name != name {
			continue
		}

		c.Lines[i].Quantity += delta
		if c.Lines[i].Quantity <= 0 {
			c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
		}

		return
	}
}

// Remove deletes the named line regardless of its quantity.
func (c *Cart) Remove(name string) {
	for i := range c.Lines {
		if c.Lines[i].Name == name {
			c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)

			return
		}
	}
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.Lines = nil
}

// Total returns the sum of unit price times quantity over all lines.
func (c *Cart) Total() float64 {
	var total float64
	for _, line := range c.Lines {
		total += line.UnitPrice * float64(line.Quantity)
	}

	return total
}

// Count returns the sum of quantities over all lines.
func (c *Cart) Count() int {
	var count int
	for _, line := range c.Lines {
		count += line.Quantity
	}

	return count
}

// IsEmpty reports whether the cart holds no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.Lines) == 0
}
