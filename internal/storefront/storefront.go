// Package storefront is the single entry point views use: it owns one cart
// per session and resolves products against the catalog before they reach
// the cart.
package storefront

import (
	"fmt"
	"github.com/google/uuid"
	"github.com/nikolayk812/shoecart/internal/catalog"
	"github.com/nikolayk812/shoecart/internal/config"
	"github.com/nikolayk812/shoecart/internal/domain"
	"github.com/nikolayk812/shoecart/internal/logger"
	"github.com/nikolayk812/shoecart/internal/port"
	"github.com/nikolayk812/shoecart/internal/repository"
	"go.uber.org/zap"
)

type Storefront struct {
	catalog port.ProductCatalog
	cart    port.CartStore
	log     *zap.Logger
}

// Open builds a storefront over the embedded catalog with a logger configured
// from cfg.
func Open(cfg config.Config) (*Storefront, error) {
	log, err := logger.New(logger.Options{
		Service: "shoecart",
		Env:     cfg.Env,
		Level:   cfg.LogLevel,
	})
	if err != nil {
		return nil, fmt.Errorf("logger.New: %w", err)
	}

	c, err := catalog.Default()
	if err != nil {
		return nil, fmt.Errorf("catalog.Default: %w", err)
	}

	return New(cfg, c, log)
}

func New(cfg config.Config, products port.ProductCatalog, log *zap.Logger) (*Storefront, error) {
	if products == nil {
		return nil, fmt.Errorf("catalog is nil")
	}
	if log == nil {
		log = zap.NewNop()
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("cfg.Validate: %w", err)
	}

	unit, err := cfg.CurrencyUnit()
	if err != nil {
		return nil, fmt.Errorf("cfg.CurrencyUnit: %w", err)
	}

	if unit.String() != products.Currency().String() {
		return nil, fmt.Errorf("config currency %s, catalog priced in %s: %w",
			unit, products.Currency(), domain.ErrCurrencyMismatch)
	}

	sessionID := uuid.New()

	opts := []repository.Option{
		repository.WithID(sessionID),
		repository.WithCurrency(unit),
		repository.WithLogger(log),
	}
	if cfg.Permissive() {
		opts = append(opts, repository.WithPermissive())
	}

	log.Info("session started",
		zap.Stringer("session_id", sessionID),
		zap.String("currency", unit.String()),
		zap.String("validation", cfg.Validation))

	return &Storefront{
		catalog: products,
		cart:    repository.NewCart(opts...),
		log:     log,
	}, nil
}

func (s *Storefront) Products(filter port.ProductFilter) []domain.Product {
	return s.catalog.List(filter)
}

func (s *Storefront) Product(id string) (domain.Product, error) {
	p, err := s.catalog.Get(id)
	if err != nil {
		return domain.Product{}, fmt.Errorf("catalog.Get: %w", err)
	}

	return p, nil
}

func (s *Storefront) AddToCart(productID string, size, quantity int) error {
	p, err := s.catalog.Get(productID)
	if err != nil {
		return fmt.Errorf("catalog.Get: %w", err)
	}

	if err := s.cart.AddItem(p, size, quantity); err != nil {
		return fmt.Errorf("cart.AddItem: %w", err)
	}

	return nil
}

func (s *Storefront) RemoveFromCart(productID string, size int) bool {
	return s.cart.RemoveItem(productID, size)
}

func (s *Storefront) UpdateQuantity(productID string, size, quantity int) (bool, error) {
	updated, err := s.cart.UpdateQuantity(productID, size, quantity)
	if err != nil {
		return false, fmt.Errorf("cart.UpdateQuantity: %w", err)
	}

	return updated, nil
}

func (s *Storefront) Cart() domain.Cart {
	return s.cart.Snapshot()
}

// BadgeCount is the number shown on the cart icon: distinct lines, not units.
func (s *Storefront) BadgeCount() int {
	return s.cart.Snapshot().LineCount()
}
