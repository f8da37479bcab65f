package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product represents a catalog item. CategorySlug is a soft reference: it
// may point at a category that does not exist.
type Product struct {
	ID             int64           `db:"id" json:"id"`
	Name           string          `db:"name" json:"name"`
	CategorySlug   *string         `db:"category_slug" json:"category_slug"`
	Price          decimal.Decimal `db:"price" json:"price"`
	Description    *string         `db:"description" json:"description"`
	ImageURL       *string         `db:"image_url" json:"image_url"`
	InStock        bool            `db:"in_stock" json:"in_stock"`
	SortOrder      int             `db:"sort_order" json:"sort_order"`
	IsActive       bool            `db:"is_active" json:"is_active"`
	SKU            *string         `db:"sku" json:"sku"`
	Specifications JSONMap         `db:"specifications" json:"specifications"`
	CreatedAt      time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time       `db:"updated_at" json:"updated_at"`

	// Joined from categories in list queries.
	CategoryName *string `db:"category_name" json:"category_name"`
}

// PublicProduct is the storefront view of an active product.
type PublicProduct struct {
	ID             int64           `db:"id" json:"id"`
	Name           string          `db:"name" json:"name"`
	CategorySlug   *string         `db:"category_slug" json:"category_slug"`
	CategoryName   *string         `db:"category_name" json:"category_name"`
	Price          decimal.Decimal `db:"price" json:"price"`
	Description    *string         `db:"description" json:"description"`
	ImageURL       *string         `db:"image_url" json:"image_url"`
	InStock        bool            `db:"in_stock" json:"in_stock"`
	SKU            *string         `db:"sku" json:"sku"`
	Specifications JSONMap         `db:"specifications" json:"specifications"`
}
