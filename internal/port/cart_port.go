package port

import (
	"github.com/nikolayk812/shoecart/internal/domain"
)

// CartStore owns one session's cart. Implementations are not required to be
// safe for concurrent use.
type CartStore interface {
	AddItem(product domain.Product, size, quantity int) error
	RemoveItem(productID string, size int) bool
	UpdateQuantity(productID string, size, quantity int) (bool, error)
	Snapshot() domain.Cart
}
