package models

import "time"

// Article is a blog post. Only published articles are visible publicly.
type Article struct {
	ID          int64     `db:"id" json:"id"`
	Slug        string    `db:"slug" json:"slug"`
	Title       string    `db:"title" json:"title"`
	Excerpt     *string   `db:"excerpt" json:"excerpt"`
	Content     *string   `db:"content" json:"content"`
	ImageURL    *string   `db:"image_url" json:"image_url"`
	Category    *string   `db:"category" json:"category"`
	ReadTime    *string   `db:"read_time" json:"read_time"`
	IsPublished bool      `db:"is_published" json:"is_published"`
	SortOrder   int       `db:"sort_order" json:"sort_order"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}

// ArticleSummary is the public blog listing entry, without the body.
type ArticleSummary struct {
	ID        int64     `db:"id" json:"id"`
	Slug      string    `db:"slug" json:"slug"`
	Title     string    `db:"title" json:"title"`
	Excerpt   *string   `db:"excerpt" json:"excerpt"`
	ImageURL  *string   `db:"image_url" json:"image_url"`
	Category  *string   `db:"category" json:"category"`
	ReadTime  *string   `db:"read_time" json:"read_time"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
