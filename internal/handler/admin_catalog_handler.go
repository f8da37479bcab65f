package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tkexclusiv/catalog_api/internal/models"
	"github.com/tkexclusiv/catalog_api/internal/repository"
	"github.com/tkexclusiv/catalog_api/internal/service"
	"github.com/tkexclusiv/catalog_api/internal/utils"
)

// resourceRoutes erases the record type of a ResourceService so one
// dispatcher can serve every resource.
type resourceRoutes struct {
	schema  repository.Schema
	list    func(ctx context.Context) (any, error)
	create  func(ctx context.Context, in map[string]json.RawMessage) (any, error)
	replace func(ctx context.Context, id int64, in map[string]json.RawMessage) (any, error)
	patch   func(ctx context.Context, id int64, in map[string]json.RawMessage) (any, error)
	remove  func(ctx context.Context, id int64) error
}

func routesFor[T any](svc *service.ResourceService[T]) resourceRoutes {
	return resourceRoutes{
		schema: svc.Schema(),
		list: func(ctx context.Context) (any, error) {
			return svc.List(ctx)
		},
		create: func(ctx context.Context, in map[string]json.RawMessage) (any, error) {
			return svc.Create(ctx, in)
		},
		replace: func(ctx context.Context, id int64, in map[string]json.RawMessage) (any, error) {
			return svc.Replace(ctx, id, in)
		},
		patch: func(ctx context.Context, id int64, in map[string]json.RawMessage) (any, error) {
			return svc.Patch(ctx, id, in)
		},
		remove: svc.Delete,
	}
}

// CatalogServices bundles the five admin-editable resources.
type CatalogServices struct {
	Categories *service.ResourceService[models.Category]
	Products   *service.ResourceService[models.Product]
	Banners    *service.ResourceService[models.Banner]
	Promotions *service.ResourceService[models.Promotion]
	Articles   *service.ResourceService[models.Article]
}

// AdminCatalogHandler dispatches /admin/catalog by HTTP method and the
// resource and id query parameters. The admin key is checked by middleware.
type AdminCatalogHandler struct {
	resources map[string]resourceRoutes
	settings  *service.SettingsService
}

func NewAdminCatalogHandler(svcs CatalogServices, settings *service.SettingsService) *AdminCatalogHandler {
	h := &AdminCatalogHandler{resources: map[string]resourceRoutes{}, settings: settings}
	for _, r := range []resourceRoutes{
		routesFor(svcs.Categories),
		routesFor(svcs.Products),
		routesFor(svcs.Banners),
		routesFor(svcs.Promotions),
		routesFor(svcs.Articles),
	} {
		h.resources[r.schema.Plural] = r
	}
	return h
}

// Handle serves every method on /admin/catalog.
func (h *AdminCatalogHandler) Handle(c *gin.Context) {
	resource := c.Query("resource")
	if resource == "settings" {
		h.handleSettings(c)
		return
	}

	routes, ok := h.resources[resource]
	if !ok {
		notFound(c)
		return
	}
	ctx := c.Request.Context()

	switch c.Request.Method {
	case http.MethodGet:
		items, err := routes.list(ctx)
		if err != nil {
			utils.Fail(c, err)
			return
		}
		utils.Success(c, http.StatusOK, gin.H{routes.schema.Plural: items})

	case http.MethodPost:
		input, err := readJSONObject(c)
		if err != nil {
			utils.Fail(c, err)
			return
		}
		item, err := routes.create(ctx, input)
		if err != nil {
			utils.Fail(c, err)
			return
		}
		utils.Success(c, http.StatusCreated, gin.H{routes.schema.Singular: item})

	case http.MethodPut, http.MethodPatch, http.MethodDelete:
		h.handleByID(c, routes)

	default:
		notFound(c)
	}
}

func (h *AdminCatalogHandler) handleByID(c *gin.Context, routes resourceRoutes) {
	raw := c.Query("id")
	if raw == "" {
		notFound(c)
		return
	}
	if c.Request.Method == http.MethodDelete && !routes.schema.Deletable {
		notFound(c)
		return
	}
	id, err := parseID(raw)
	if err != nil {
		utils.Fail(c, err)
		return
	}
	ctx := c.Request.Context()

	if c.Request.Method == http.MethodDelete {
		if err := routes.remove(ctx, id); err != nil {
			utils.Fail(c, err)
			return
		}
		utils.Success(c, http.StatusOK, gin.H{"deleted": id})
		return
	}

	input, err := readJSONObject(c)
	if err != nil {
		utils.Fail(c, err)
		return
	}
	var item any
	if c.Request.Method == http.MethodPut {
		item, err = routes.replace(ctx, id, input)
	} else {
		item, err = routes.patch(ctx, id, input)
	}
	if err != nil {
		utils.Fail(c, err)
		return
	}
	utils.Success(c, http.StatusOK, gin.H{routes.schema.Singular: item})
}

func (h *AdminCatalogHandler) handleSettings(c *gin.Context) {
	switch c.Request.Method {
	case http.MethodGet:
		settings, err := h.settings.AdminList(c.Request.Context())
		if err != nil {
			utils.Fail(c, err)
			return
		}
		utils.Success(c, http.StatusOK, gin.H{"settings": settings})

	case http.MethodPost:
		var req struct {
			Settings map[string]string `json:"settings"`
		}
		if err := bindJSON(c, &req); err != nil {
			utils.Fail(c, err)
			return
		}
		if err := h.settings.Save(c.Request.Context(), req.Settings); err != nil {
			utils.Fail(c, err)
			return
		}
		utils.Success(c, http.StatusOK, gin.H{"saved": true})

	default:
		notFound(c)
	}
}
