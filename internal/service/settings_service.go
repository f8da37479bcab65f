package service

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"

	"github.com/tkexclusiv/catalog_api/internal/models"
	"github.com/tkexclusiv/catalog_api/internal/repository"
	"github.com/tkexclusiv/catalog_api/internal/utils"
)

// SettingsMap renders settings as a JSON object keyed by setting key, in
// display order.
type SettingsMap []models.SiteSetting

func (m SettingsMap) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, s := range m {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(s.Key)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(s)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// SettingsService manages the storefront contact settings.
type SettingsService struct {
	repo *repository.SettingRepository
}

func NewSettingsService(repo *repository.SettingRepository) *SettingsService {
	return &SettingsService{repo: repo}
}

// AdminList returns every setting with its label.
func (s *SettingsService) AdminList(ctx context.Context) (SettingsMap, error) {
	settings, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return SettingsMap(settings), nil
}

// PublicList returns key to value only.
func (s *SettingsService) PublicList(ctx context.Context) (map[string]string, error) {
	settings, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make(map[string]string, len(settings))
	for _, st := range settings {
		out[st.Key] = st.Value
	}
	return out, nil
}

// Save upserts all values in one transaction.
func (s *SettingsService) Save(ctx context.Context, values map[string]string) error {
	if len(values) == 0 {
		return utils.NewValidationError("settings are required")
	}
	for key := range values {
		if strings.TrimSpace(key) == "" {
			return utils.NewValidationError("setting key cannot be empty")
		}
	}
	return s.repo.Upsert(ctx, values)
}
