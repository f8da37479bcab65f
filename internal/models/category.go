package models

// Category groups products by slug. Categories are never hard-deleted; they
// are hidden by clearing IsActive.
type Category struct {
	ID        int64   `db:"id" json:"id"`
	Slug      string  `db:"slug" json:"slug"`
	Name      string  `db:"name" json:"name"`
	Icon      string  `db:"icon" json:"icon"`
	ImageURL  *string `db:"image_url" json:"image_url"`
	SortOrder int     `db:"sort_order" json:"sort_order"`
	IsActive  bool    `db:"is_active" json:"is_active"`

	// Count of active products referencing the slug (populated by list queries).
	ProductCount int `db:"product_count" json:"product_count"`
}

// PublicCategory is the storefront view of an active category.
type PublicCategory struct {
	ID           int64   `db:"id" json:"id"`
	Slug         string  `db:"slug" json:"slug"`
	Name         string  `db:"name" json:"name"`
	Icon         string  `db:"icon" json:"icon"`
	ImageURL     *string `db:"image_url" json:"image_url"`
	ProductCount int     `db:"product_count" json:"product_count"`
}
