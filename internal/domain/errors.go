package domain

import "errors"

var (
	ErrInvalidQuantity  = errors.New("quantity must be positive")
	ErrInvalidSize      = errors.New("size is not offered for product")
	ErrCurrencyMismatch = errors.New("currency does not match cart currency")
	ErrProductNotFound  = errors.New("product not found")
)
