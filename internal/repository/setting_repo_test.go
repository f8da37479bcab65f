package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tkexclusiv/catalog_api/internal/testutil"
)

func TestSettingRepositoryUpsert(t *testing.T) {
	db := testutil.NewDB(t)
	testutil.MustExec(t, db, `INSERT INTO site_settings (key, value, label, sort_order) VALUES ('phone', '+7 000', 'Телефон', 1)`)
	repo := NewSettingRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Upsert(ctx, map[string]string{"phone": "+7 111", "email": "shop@example.com"}))

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)

	byKey := map[string]string{}
	for _, s := range list {
		byKey[s.Key] = s.Value
		if s.Key == "phone" {
			assert.Equal(t, "Телефон", s.Label)
		}
	}
	assert.Equal(t, "+7 111", byKey["phone"])
	assert.Equal(t, "shop@example.com", byKey["email"])
}
