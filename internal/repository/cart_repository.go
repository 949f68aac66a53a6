package repository

import (
	"fmt"
	"slices"
	"github.com/google/uuid"
	"github.com/nikolayk812/shoecart/internal/domain"
	"github.com/nikolayk812/shoecart/internal/port"
	"go.uber.org/zap"
	"golang.org/x/text/currency"
)

// cartRepository keeps a single cart in memory. Adding grows the total by
// the added amount; removing and updating recompute it from the lines.
type cartRepository struct {
	id         uuid.UUID
	currency   currency.Unit
	permissive bool
	log        *zap.Logger

	lines []domain.CartLine
	total domain.Money
}

func NewCart(opts ...Option) port.CartStore {
	r := &cartRepository{
		id:       uuid.New(),
		currency: currency.USD,
		log:      zap.NewNop(),
	}

	for _, opt := range opts {
		opt(r)
	}

	r.total = domain.Zero(r.currency)
	r.log = r.log.With(zap.Stringer("cart_id", r.id))

	return r
}

func (r *cartRepository) AddItem(product domain.Product, size, quantity int) error {
	if err := r.validateAdd(product, size, quantity); err != nil {
		r.log.Warn("add item rejected",
			zap.String("product_id", product.ID),
			zap.Int("size", size),
			zap.Int("quantity", quantity),
			zap.Error(err))
		return err
	}

	i := r.find(product.ID, size)
	if i < 0 {
		r.lines = append(r.lines, domain.CartLine{
			Product:  product.Clone(),
			Size:     size,
			Quantity: quantity,
		})
		i = len(r.lines) - 1
	} else {
		r.lines[i].Quantity += quantity
	}

	// merged lines keep the product they were created with, so the increment
	// is priced from the line
	r.total = r.total.Add(r.lines[i].Product.Price.Mul(quantity))

	r.log.Debug("item added",
		zap.String("product_id", product.ID),
		zap.Int("size", size),
		zap.Int("quantity", r.lines[i].Quantity),
		zap.Stringer("total", r.total))

	return nil
}

func (r *cartRepository) RemoveItem(productID string, size int) bool {
	i := r.find(productID, size)
	if i < 0 {
		r.log.Debug("remove item: no such line", zap.String("product_id", productID), zap.Int("size", size))
		return false
	}

	r.lines = slices.Delete(r.lines, i, i+1)
	r.total = r.recompute()

	r.log.Debug("item removed",
		zap.String("product_id", productID),
		zap.Int("size", size),
		zap.Stringer("total", r.total))

	return true
}

func (r *cartRepository) UpdateQuantity(productID string, size, quantity int) (bool, error) {
	if !r.permissive && quantity < 1 {
		err := fmt.Errorf("quantity[%d]: %w", quantity, domain.ErrInvalidQuantity)
		r.log.Warn("update quantity rejected",
			zap.String("product_id", productID),
			zap.Int("size", size),
			zap.Error(err))
		return false, err
	}

	i := r.find(productID, size)
	if i < 0 {
		r.log.Debug("update quantity: no such line", zap.String("product_id", productID), zap.Int("size", size))
		return false, nil
	}

	r.lines[i].Quantity = quantity
	r.total = r.recompute()

	r.log.Debug("quantity updated",
		zap.String("product_id", productID),
		zap.Int("size", size),
		zap.Int("quantity", quantity),
		zap.Stringer("total", r.total))

	return true, nil
}

func (r *cartRepository) Snapshot() domain.Cart {
	lines := make([]domain.CartLine, len(r.lines))
	for i, l := range r.lines {
		l.Product = l.Product.Clone()
		lines[i] = l
	}

	return domain.Cart{
		ID:    r.id,
		Lines: lines,
		Total: r.total,
	}
}

func (r *cartRepository) validateAdd(product domain.Product, size, quantity int) error {
	if product.Price.Currency.String() != r.currency.String() {
		return fmt.Errorf("product[%s] priced in %s, cart in %s: %w",
			product.ID, product.Price.Currency, r.currency, domain.ErrCurrencyMismatch)
	}

	if r.permissive {
		return nil
	}

	if quantity < 1 {
		return fmt.Errorf("quantity[%d]: %w", quantity, domain.ErrInvalidQuantity)
	}

	if !product.HasSize(size) {
		return fmt.Errorf("size[%d] of product[%s]: %w", size, product.ID, domain.ErrInvalidSize)
	}

	return nil
}

func (r *cartRepository) find(productID string, size int) int {
	key := domain.LineKey{ProductID: productID, Size: size}

	return slices.IndexFunc(r.lines, func(l domain.CartLine) bool {
		return l.Key() == key
	})
}

func (r *cartRepository) recompute() domain.Money {
	return domain.Cart{Lines: r.lines, Total: domain.Zero(r.currency)}.Recompute()
}
