// Package catalog serves the static product list the storefront renders and
// the cart prices against.
package catalog

import (
	_ "embed"
	"fmt"
	"slices"
	"time"
	"github.com/go-playground/validator/v10"
	"github.com/nikolayk812/shoecart/internal/domain"
	"github.com/nikolayk812/shoecart/internal/port"
	"golang.org/x/text/currency"
	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var defaultCatalog []byte

const reviewDateLayout = "2006-01-02"

var validate = validator.New()

type catalogFile struct {
	Currency string       `yaml:"currency" validate:"required,iso4217"`
	Products []productRow `yaml:"products" validate:"dive"`
}

type productRow struct {
	ID          string      `yaml:"id" validate:"required"`
	Name        string      `yaml:"name" validate:"required"`
	Price       string      `yaml:"price" validate:"required,numeric"`
	Category    string      `yaml:"category" validate:"oneof=men women"`
	Type        string      `yaml:"type" validate:"oneof=formal casual sport"`
	Image       string      `yaml:"image" validate:"omitempty,url"`
	Description string      `yaml:"description"`
	Sizes       []int       `yaml:"sizes" validate:"min=1,unique,dive,gt=0"`
	Rating      float64     `yaml:"rating" validate:"gte=0,lte=5"`
	Reviews     []reviewRow `yaml:"reviews" validate:"dive"`
}

type reviewRow struct {
	ID       string `yaml:"id" validate:"required"`
	UserName string `yaml:"user_name" validate:"required"`
	Rating   int    `yaml:"rating" validate:"gte=1,lte=5"`
	Comment  string `yaml:"comment"`
	Date     string `yaml:"date" validate:"required,datetime=2006-01-02"`
}

type Catalog struct {
	currency currency.Unit
	products []domain.Product
	byID     map[string]int
}

// Default loads the catalog embedded in the binary.
func Default() (*Catalog, error) {
	return Load(defaultCatalog)
}

func Load(data []byte) (*Catalog, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("yaml.Unmarshal: %w", err)
	}

	if err := validate.Struct(file); err != nil {
		return nil, fmt.Errorf("validate.Struct: %w", err)
	}

	unit, err := currency.ParseISO(file.Currency)
	if err != nil {
		return nil, fmt.Errorf("currency[%s] is not valid: %w", file.Currency, err)
	}

	c := &Catalog{
		currency: unit,
		byID:     make(map[string]int, len(file.Products)),
	}

	for _, row := range file.Products {
		if _, ok := c.byID[row.ID]; ok {
			return nil, fmt.Errorf("product[%s] is declared twice", row.ID)
		}

		product, err := mapProductRowToDomain(row, file.Currency)
		if err != nil {
			return nil, fmt.Errorf("mapProductRowToDomain: %w", err)
		}

		c.byID[row.ID] = len(c.products)
		c.products = append(c.products, product)
	}

	return c, nil
}

// Currency is the currency every product in the catalog is priced in.
func (c *Catalog) Currency() currency.Unit {
	return c.currency
}

func (c *Catalog) Get(id string) (domain.Product, error) {
	i, ok := c.byID[id]
	if !ok {
		return domain.Product{}, fmt.Errorf("product[%s]: %w", id, domain.ErrProductNotFound)
	}

	return c.products[i].Clone(), nil
}

// List returns products in declaration order. Zero filter fields match all.
func (c *Catalog) List(filter port.ProductFilter) []domain.Product {
	result := make([]domain.Product, 0, len(c.products))

	for _, p := range c.products {
		if filter.Category != "" && p.Category != filter.Category {
			continue
		}
		if filter.Type != "" && p.Type != filter.Type {
			continue
		}

		result = append(result, p.Clone())
	}

	return result
}

var _ port.ProductCatalog = (*Catalog)(nil)

func mapProductRowToDomain(row productRow, iso string) (domain.Product, error) {
	price, err := domain.NewMoney(row.Price, iso)
	if err != nil {
		return domain.Product{}, fmt.Errorf("product[%s] price: %w", row.ID, err)
	}
	if price.Amount.IsNegative() {
		return domain.Product{}, fmt.Errorf("product[%s] price[%s] is negative", row.ID, row.Price)
	}

	reviews := make([]domain.Review, 0, len(row.Reviews))
	for _, r := range row.Reviews {
		date, err := time.Parse(reviewDateLayout, r.Date)
		if err != nil {
			return domain.Product{}, fmt.Errorf("review[%s] date[%s] is not valid: %w", r.ID, r.Date, err)
		}

		reviews = append(reviews, domain.Review{
			ID:       r.ID,
			UserName: r.UserName,
			Rating:   r.Rating,
			Comment:  r.Comment,
			Date:     date,
		})
	}

	return domain.Product{
		ID:          row.ID,
		Name:        row.Name,
		Description: row.Description,
		Image:       row.Image,
		Price:       price,
		Category:    domain.Category(row.Category),
		Type:        domain.StyleType(row.Type),
		Sizes:       slices.Clone(row.Sizes),
		Rating:      row.Rating,
		Reviews:     reviews,
	}, nil
}
