package models

// SiteSetting is one editable storefront contact value (phone, address, bank details).
type SiteSetting struct {
	Key       string `db:"key" json:"-"`
	Value     string `db:"value" json:"value"`
	Label     string `db:"label" json:"label"`
	SortOrder int    `db:"sort_order" json:"-"`
}
