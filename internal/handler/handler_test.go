package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
	"github.com/wneessen/go-mail"

	"github.com/tkexclusiv/catalog_api/internal/config"
	"github.com/tkexclusiv/catalog_api/internal/middleware"
	"github.com/tkexclusiv/catalog_api/internal/models"
	"github.com/tkexclusiv/catalog_api/internal/repository"
	"github.com/tkexclusiv/catalog_api/internal/service"
	"github.com/tkexclusiv/catalog_api/internal/testutil"
)

const testAdminKey = "test-admin-key"

type recordingStorage struct {
	keys []string
}

func (s *recordingStorage) PutObject(_ context.Context, key string, _ []byte, _ string) error {
	s.keys = append(s.keys, key)
	return nil
}

type failingMailer struct {
	attempts int
}

func (m *failingMailer) Send(context.Context, *mail.Msg) error {
	m.attempts++
	return errors.New("smtp: connection refused")
}

type testServer struct {
	router  *gin.Engine
	db      *sqlx.DB
	storage *recordingStorage
	mailer  *failingMailer
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := testutil.NewDB(t)
	storage := &recordingStorage{}
	mailer := &failingMailer{}
	mailCfg := &config.MailConfig{From: "noreply@example.com", Recipients: []string{"info@example.com"}}
	settings := service.NewSettingsService(repository.NewSettingRepository(db))

	handlers := &Handlers{
		Health: NewHealthHandler(db),
		AdminCatalog: NewAdminCatalogHandler(CatalogServices{
			Categories: service.NewResourceService(repository.NewResourceRepository[models.Category](db, repository.CategorySchema)),
			Products:   service.NewResourceService(repository.NewResourceRepository[models.Product](db, repository.ProductSchema)),
			Banners:    service.NewResourceService(repository.NewResourceRepository[models.Banner](db, repository.BannerSchema)),
			Promotions: service.NewResourceService(repository.NewResourceRepository[models.Promotion](db, repository.PromotionSchema)),
			Articles:   service.NewResourceService(repository.NewResourceRepository[models.Article](db, repository.ArticleSchema)),
		}, settings),
		PublicCatalog: NewPublicCatalogHandler(service.NewCatalogService(repository.NewPublicCatalogRepository(db)), settings),
		Auth:          NewAuthHandler(service.NewAuthService(db, &config.AuthConfig{SessionTTL: 720 * time.Hour})),
		Upload:        NewUploadHandler(service.NewUploadService(storage, "https://cdn.example.com/files")),
		Notify:        NewNotifyHandler(service.NewNotifyService(mailer, mailCfg)),
	}

	router := gin.New()
	router.Use(middleware.CORSMiddleware())
	SetupRoutes(router, handlers, testAdminKey)

	return &testServer{router: router, db: db, storage: storage, mailer: mailer}
}

type request struct {
	method  string
	target  string
	body    string
	headers map[string]string
}

func (s *testServer) do(t *testing.T, r request) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(r.method, r.target, bytes.NewBufferString(r.body))
	if r.body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range r.headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

// admin sends a request carrying the admin key.
func (s *testServer) admin(t *testing.T, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	return s.do(t, request{method: method, target: target, body: body, headers: map[string]string{"X-Admin-Key": testAdminKey}})
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var m map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &m), w.Body.String())
	return m
}
