package repository

import (
	"github.com/shopspring/decimal"

	"github.com/tkexclusiv/catalog_api/internal/models"
)

// Schema configures a ResourceRepository for one table.
type Schema struct {
	Table    string
	Singular string // JSON key for a single record, e.g. "category"
	Plural   string // resource selector and JSON key for lists, e.g. "categories"
	Label    string // human name used in error messages

	// Fields is the closed allow-list of mutable columns, in insert order.
	Fields []Field
	// Touch sets updated_at on every update.
	Touch bool
	// Deletable enables hard delete.
	Deletable bool
	// ListQuery overrides the default SELECT used by List.
	ListQuery string
	// OrderBy is used by the default list query.
	OrderBy string
}

// FieldNames returns the allow-list as column names.
func (s Schema) FieldNames() []string {
	names := make([]string, len(s.Fields))
	for i, f := range s.Fields {
		names[i] = f.Name
	}
	return names
}

func text(name string, def any) Field {
	return Field{Name: name, Kind: KindText, Nullable: true, Default: def}
}

func required(name string) Field {
	return Field{Name: name, Kind: KindText, Required: true}
}

func integer(name string) Field {
	return Field{Name: name, Kind: KindInt, Default: int64(0)}
}

func boolean(name string, def bool) Field {
	return Field{Name: name, Kind: KindBool, Default: def}
}

var CategorySchema = Schema{
	Table:    "categories",
	Singular: "category",
	Plural:   "categories",
	Label:    "Category",
	Fields: []Field{
		required("slug"),
		required("name"),
		{Name: "icon", Kind: KindText, Default: "Package"},
		text("image_url", nil),
		integer("sort_order"),
		boolean("is_active", true),
	},
	ListQuery: `
		SELECT c.*, COUNT(p.id) AS product_count
		FROM categories c
		LEFT JOIN products p ON p.category_slug = c.slug AND p.is_active = TRUE
		GROUP BY c.id
		ORDER BY c.sort_order, c.id`,
}

var ProductSchema = Schema{
	Table:    "products",
	Singular: "product",
	Plural:   "products",
	Label:    "Product",
	Fields: []Field{
		required("name"),
		text("category_slug", nil),
		{Name: "price", Kind: KindDecimal, Default: decimal.Zero},
		text("description", nil),
		text("image_url", nil),
		boolean("in_stock", true),
		integer("sort_order"),
		boolean("is_active", true),
		{Name: "sku", Kind: KindText, Nullable: true, EmptyAsNull: true},
		{Name: "specifications", Kind: KindObject, Default: models.JSONMap{}},
	},
	Touch: true,
	ListQuery: `
		SELECT p.*, c.name AS category_name
		FROM products p
		LEFT JOIN categories c ON c.slug = p.category_slug
		ORDER BY p.category_slug, p.sort_order, p.id`,
}

var BannerSchema = Schema{
	Table:    "banners",
	Singular: "banner",
	Plural:   "banners",
	Label:    "Banner",
	Fields: []Field{
		required("title"),
		text("description", nil),
		text("image_url", nil),
		text("badge", "Новость"),
		text("button_text", "Подробнее"),
		text("button_url", "/catalog"),
		text("gradient", "from-secondary/95 to-muted/90"),
		boolean("is_active", true),
		integer("sort_order"),
	},
	Deletable: true,
	OrderBy:   "sort_order, id",
}

var PromotionSchema = Schema{
	Table:    "promotions",
	Singular: "promotion",
	Plural:   "promotions",
	Label:    "Promotion",
	Fields: []Field{
		required("title"),
		text("description", nil),
		text("badge", "СКИДКА"),
		text("badge_value", ""),
		text("button_text", "Смотреть товары"),
		text("button_url", "/catalog"),
		text("expires_at", nil),
		boolean("is_active", true),
		integer("sort_order"),
	},
	Deletable: true,
	OrderBy:   "sort_order, id",
}

var ArticleSchema = Schema{
	Table:    "articles",
	Singular: "article",
	Plural:   "articles",
	Label:    "Article",
	Fields: []Field{
		required("slug"),
		required("title"),
		text("excerpt", nil),
		text("content", nil),
		text("image_url", nil),
		text("category", "Статья"),
		text("read_time", "5 мин"),
		boolean("is_published", true),
		integer("sort_order"),
	},
	Touch:     true,
	Deletable: true,
	OrderBy:   "sort_order, created_at DESC",
}
