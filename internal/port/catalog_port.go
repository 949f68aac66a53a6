package port

import (
	"github.com/nikolayk812/shoecart/internal/domain"
	"golang.org/x/text/currency"
)

type ProductFilter struct {
	Category domain.Category
	Type     domain.StyleType
}

type ProductCatalog interface {
	Currency() currency.Unit
	Get(id string) (domain.Product, error)
	List(filter ProductFilter) []domain.Product
}
