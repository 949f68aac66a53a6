package domain

import (
	"github.com/google/uuid"
	"golang.org/x/text/currency"
)

// LineKey identifies a cart line: the same product in two sizes is two lines.
type LineKey struct {
	ProductID string
	Size      int
}

type CartLine struct {
	Product  Product
	Size     int
	Quantity int
}

func (l CartLine) Key() LineKey {
	return LineKey{ProductID: l.Product.ID, Size: l.Size}
}

func (l CartLine) Subtotal() Money {
	return l.Product.Price.Mul(l.Quantity)
}

// Cart is a point-in-time snapshot of a cart. Lines keep insertion order.
type Cart struct {
	ID    uuid.UUID
	Lines []CartLine
	Total Money
}

// LineCount is the number of distinct (product, size) lines.
func (c Cart) LineCount() int {
	return len(c.Lines)
}

func (c Cart) ItemCount() int {
	var n int
	for _, l := range c.Lines {
		n += l.Quantity
	}

	return n
}

// Recompute sums line subtotals. The currency is taken from Total, or from
// the first line when Total is unset. Lines in mixed currencies panic.
func (c Cart) Recompute() Money {
	unit := c.Total.Currency
	if unit == (currency.Unit{}) && len(c.Lines) > 0 {
		unit = c.Lines[0].Product.Price.Currency
	}

	total := Zero(unit)
	for _, l := range c.Lines {
		total = total.Add(l.Subtotal())
	}

	return total
}
