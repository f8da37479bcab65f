package models

// Banner is a homepage news slide.
type Banner struct {
	ID          int64   `db:"id" json:"id"`
	Title       string  `db:"title" json:"title"`
	Description *string `db:"description" json:"description"`
	ImageURL    *string `db:"image_url" json:"image_url"`
	Badge       *string `db:"badge" json:"badge"`
	ButtonText  *string `db:"button_text" json:"button_text"`
	ButtonURL   *string `db:"button_url" json:"button_url"`
	Gradient    *string `db:"gradient" json:"gradient"`
	IsActive    bool    `db:"is_active" json:"is_active"`
	SortOrder   int     `db:"sort_order" json:"sort_order"`
}
