package domain

import (
	"slices"
	"time"
)

type Category string

const (
	CategoryMen   Category = "men"
	CategoryWomen Category = "women"
)

type StyleType string

const (
	StyleFormal StyleType = "formal"
	StyleCasual StyleType = "casual"
	StyleSport  StyleType = "sport"
)

// Product is catalog data. The cart shares it read-only and never mutates it.
type Product struct {
	ID          string
	Name        string
	Description string
	Image       string
	Price       Money
	Category    Category
	Type        StyleType
	Sizes       []int
	Rating      float64
	Reviews     []Review
}

type Review struct {
	ID       string
	UserName string
	Rating   int
	Comment  string
	Date     time.Time
}

// Clone copies the product so the copy shares no slices with p.
func (p Product) Clone() Product {
	p.Sizes = slices.Clone(p.Sizes)
	p.Reviews = slices.Clone(p.Reviews)
	return p
}

func (p Product) HasSize(size int) bool {
	return slices.Contains(p.Sizes, size)
}
