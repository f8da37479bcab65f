package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tkexclusiv/catalog_api/internal/repository"
	"github.com/tkexclusiv/catalog_api/internal/service"
	"github.com/tkexclusiv/catalog_api/internal/utils"
)

// PublicCatalogHandler serves the storefront's read-only catalog.
type PublicCatalogHandler struct {
	catalog  *service.CatalogService
	settings *service.SettingsService
}

func NewPublicCatalogHandler(catalog *service.CatalogService, settings *service.SettingsService) *PublicCatalogHandler {
	return &PublicCatalogHandler{catalog: catalog, settings: settings}
}

// Get handles GET /catalog?resource=...
func (h *PublicCatalogHandler) Get(c *gin.Context) {
	ctx := c.Request.Context()

	var (
		body gin.H
		err  error
	)
	switch c.Query("resource") {
	case "categories":
		categories, e := h.catalog.Categories(ctx)
		body, err = gin.H{"categories": categories}, e

	case "products":
		products, e := h.catalog.Products(ctx, repository.ProductFilter{
			CategorySlug: c.Query("category"),
			Search:       c.Query("search"),
		})
		body, err = gin.H{"products": products}, e

	case "articles":
		if raw := c.Query("id"); raw != "" {
			id, e := parseID(raw)
			if e != nil {
				utils.Fail(c, e)
				return
			}
			article, e := h.catalog.Article(ctx, id)
			body, err = gin.H{"article": article}, e
			break
		}
		articles, e := h.catalog.Articles(ctx)
		body, err = gin.H{"articles": articles}, e

	case "banners":
		banners, e := h.catalog.Banners(ctx)
		body, err = gin.H{"banners": banners}, e

	case "promotions":
		promotions, e := h.catalog.Promotions(ctx)
		body, err = gin.H{"promotions": promotions}, e

	case "settings":
		settings, e := h.settings.PublicList(ctx)
		body, err = gin.H{"settings": settings}, e

	default:
		notFound(c)
		return
	}

	if err != nil {
		utils.Fail(c, err)
		return
	}
	utils.Success(c, http.StatusOK, body)
}
