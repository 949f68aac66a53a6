package repository

import (
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/text/currency"
)

type Option func(*cartRepository)

// WithID sets the cart ID. A random one is generated otherwise.
func WithID(id uuid.UUID) Option {
	return func(r *cartRepository) {
		r.id = id
	}
}

// WithCurrency sets the cart currency, USD by default. Products priced in any
// other currency are rejected.
func WithCurrency(unit currency.Unit) Option {
	return func(r *cartRepository) {
		r.currency = unit
	}
}

func WithLogger(log *zap.Logger) Option {
	return func(r *cartRepository) {
		if log != nil {
			r.log = log
		}
	}
}

// WithPermissive disables size and quantity checks: any size is accepted and
// quantities are stored as given, zero and negative included.
func WithPermissive() Option {
	return func(r *cartRepository) {
		r.permissive = true
	}
}
