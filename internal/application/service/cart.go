package service

import "github.com/kanakraj/jewelpos-api/pkg/apperror"

// CartLine is one selected item with the price snapshot taken at lookup time.
type CartLine struct {
	OrnamentID   string `json:"ornament_id"`
	SellingPrice int64  `json:"selling_price"`
}

// Cart is a caller-held accumulation of scanned items, keyed by ornament id.
// It lives for a single checkout session and is never persisted; removing an
// item is a purely local operation with no backend effect. Insertion order is
// preserved for display but carries no meaning.
type Cart struct {
	lines []CartLine
	index map[string]struct{}
}

// NewCart creates an empty cart.
func NewCart() *Cart {
	return &Cart{index: make(map[string]struct{})}
}

// Add appends an item. Adding an ornament id already in the cart is rejected;
// a serialized item cannot be selected twice.
func (c *Cart) Add(ornamentID string, sellingPrice int64) error {
	if _, ok := c.index[ornamentID]; ok {
		return apperror.NewDuplicateItemError(ornamentID)
	}
	c.lines = append(c.lines, CartLine{OrnamentID: ornamentID, SellingPrice: sellingPrice})
	c.index[ornamentID] = struct{}{}
	return nil
}

// Remove drops an item by ornament id. Removing an absent id is a no-op.
func (c *Cart) Remove(ornamentID string) {
	if _, ok := c.index[ornamentID]; !ok {
		return
	}
	delete(c.index, ornamentID)
	for i, line := range c.lines {
		if line.OrnamentID == ornamentID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			break
		}
	}
}

// Lines returns a copy of the cart contents in insertion order.
func (c *Cart) Lines() []CartLine {
	out := make([]CartLine, len(c.lines))
	copy(out, c.lines)
	return out
}

// Len returns the number of items in the cart.
func (c *Cart) Len() int {
	return len(c.lines)
}

// Subtotal sums the locked-in selling prices.
func (c *Cart) Subtotal() int64 {
	var sum int64
	for _, line := range c.lines {
		sum += line.SellingPrice
	}
	return sum
}
