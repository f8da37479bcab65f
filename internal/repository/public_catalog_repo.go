package repository

import (
	"context"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/tkexclusiv/catalog_api/internal/models"
)

// PublicCatalogRepository serves the storefront read surface. Only active
// categories, products, banners, promotions and published articles are visible.
type PublicCatalogRepository struct {
	db *sqlx.DB
}

// NewPublicCatalogRepository creates a new PublicCatalogRepository.
func NewPublicCatalogRepository(db *sqlx.DB) *PublicCatalogRepository {
	return &PublicCatalogRepository{db: db}
}

// ProductFilter narrows the public product list. Empty fields are ignored.
type ProductFilter struct {
	CategorySlug string
	Search       string
}

// ListCategories returns active categories with their active product counts.
func (r *PublicCatalogRepository) ListCategories(ctx context.Context) ([]models.PublicCategory, error) {
	const q = `
		SELECT c.id, c.slug, c.name, c.icon, c.image_url, COUNT(p.id) AS product_count
		FROM categories c
		LEFT JOIN products p ON p.category_slug = c.slug AND p.is_active = TRUE
		WHERE c.is_active = TRUE
		GROUP BY c.id, c.slug, c.name, c.icon, c.image_url, c.sort_order
		ORDER BY c.sort_order, c.id`

	categories := []models.PublicCategory{}
	if err := r.db.SelectContext(ctx, &categories, q); err != nil {
		return nil, err
	}
	return categories, nil
}

// ListProducts returns active products, optionally filtered by category slug
// and a case-insensitive name substring.
func (r *PublicCatalogRepository) ListProducts(ctx context.Context, filter ProductFilter) ([]models.PublicProduct, error) {
	conditions := []string{"p.is_active = TRUE"}
	args := []any{}

	if filter.CategorySlug != "" {
		conditions = append(conditions, "p.category_slug = ?")
		args = append(args, filter.CategorySlug)
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		conditions = append(conditions, "LOWER(p.name) LIKE ?")
		args = append(args, "%"+strings.ToLower(search)+"%")
	}

	q := `
		SELECT p.id, p.name, p.category_slug, p.price, p.description, p.image_url,
		       p.in_stock, p.sku, p.specifications, c.name AS category_name
		FROM products p
		LEFT JOIN categories c ON c.slug = p.category_slug
		WHERE ` + strings.Join(conditions, " AND ") + `
		ORDER BY p.category_slug, p.sort_order, p.id`

	products := []models.PublicProduct{}
	if err := r.db.SelectContext(ctx, &products, r.db.Rebind(q), args...); err != nil {
		return nil, err
	}
	return products, nil
}

// ListArticles returns summaries of published articles.
func (r *PublicCatalogRepository) ListArticles(ctx context.Context) ([]models.ArticleSummary, error) {
	const q = `
		SELECT id, slug, title, excerpt, image_url, category, read_time, created_at
		FROM articles
		WHERE is_published = TRUE
		ORDER BY sort_order, created_at DESC`

	articles := []models.ArticleSummary{}
	if err := r.db.SelectContext(ctx, &articles, q); err != nil {
		return nil, err
	}
	return articles, nil
}

// GetArticle returns one published article or sql.ErrNoRows.
func (r *PublicCatalogRepository) GetArticle(ctx context.Context, id int64) (*models.Article, error) {
	var a models.Article
	q := r.db.Rebind(`SELECT * FROM articles WHERE id = ? AND is_published = TRUE`)
	if err := r.db.GetContext(ctx, &a, q, id); err != nil {
		return nil, err
	}
	return &a, nil
}

// ListBanners returns active banners.
func (r *PublicCatalogRepository) ListBanners(ctx context.Context) ([]models.Banner, error) {
	banners := []models.Banner{}
	if err := r.db.SelectContext(ctx, &banners, `SELECT * FROM banners WHERE is_active = TRUE ORDER BY sort_order, id`); err != nil {
		return nil, err
	}
	return banners, nil
}

// ListPromotions returns active promotions.
func (r *PublicCatalogRepository) ListPromotions(ctx context.Context) ([]models.Promotion, error) {
	promotions := []models.Promotion{}
	if err := r.db.SelectContext(ctx, &promotions, `SELECT * FROM promotions WHERE is_active = TRUE ORDER BY sort_order, id`); err != nil {
		return nil, err
	}
	return promotions, nil
}
