package service

import (
	"context"
	"database/sql"
	"errors"

	"github.com/tkexclusiv/catalog_api/internal/models"
	"github.com/tkexclusiv/catalog_api/internal/repository"
	"github.com/tkexclusiv/catalog_api/internal/utils"
)

// CatalogService is the read-only storefront view of the catalog.
type CatalogService struct {
	repo *repository.PublicCatalogRepository
}

func NewCatalogService(repo *repository.PublicCatalogRepository) *CatalogService {
	return &CatalogService{repo: repo}
}

func (s *CatalogService) Categories(ctx context.Context) ([]models.PublicCategory, error) {
	return s.repo.ListCategories(ctx)
}

func (s *CatalogService) Products(ctx context.Context, filter repository.ProductFilter) ([]models.PublicProduct, error) {
	return s.repo.ListProducts(ctx, filter)
}

func (s *CatalogService) Articles(ctx context.Context) ([]models.ArticleSummary, error) {
	return s.repo.ListArticles(ctx)
}

// Article returns one published article.
func (s *CatalogService) Article(ctx context.Context, id int64) (*models.Article, error) {
	a, err := s.repo.GetArticle(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, utils.NewNotFoundError("Article not found")
		}
		return nil, err
	}
	return a, nil
}

func (s *CatalogService) Banners(ctx context.Context) ([]models.Banner, error) {
	return s.repo.ListBanners(ctx)
}

func (s *CatalogService) Promotions(ctx context.Context) ([]models.Promotion, error) {
	return s.repo.ListPromotions(ctx)
}
