package models

// Promotion is a storefront offer card. ExpiresAt is free text shown to
// customers ("until March 31"), not a machine timestamp.
type Promotion struct {
	ID          int64   `db:"id" json:"id"`
	Title       string  `db:"title" json:"title"`
	Description *string `db:"description" json:"description"`
	Badge       *string `db:"badge" json:"badge"`
	BadgeValue  *string `db:"badge_value" json:"badge_value"`
	ButtonText  *string `db:"button_text" json:"button_text"`
	ButtonURL   *string `db:"button_url" json:"button_url"`
	ExpiresAt   *string `db:"expires_at" json:"expires_at"`
	IsActive    bool    `db:"is_active" json:"is_active"`
	SortOrder   int     `db:"sort_order" json:"sort_order"`
}
