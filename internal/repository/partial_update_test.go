package repository

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tkexclusiv/catalog_api/internal/models"
	"github.com/tkexclusiv/catalog_api/internal/utils"
)

func rawInput(t *testing.T, body string) map[string]json.RawMessage {
	t.Helper()
	var m map[string]json.RawMessage
	require.NoError(t, json.Unmarshal([]byte(body), &m))
	return m
}

func columns(set []Assignment) []string {
	out := make([]string, len(set))
	for i, a := range set {
		out[i] = a.Column
	}
	return out
}

func TestBuildPartialUpdateIgnoresUnknownKeys(t *testing.T) {
	input := rawInput(t, `{"name":"New","id":99,"password_hash":"x","is_active":false,"name; DROP TABLE":"1"}`)

	set, err := BuildPartialUpdate(CategorySchema.Fields, input)
	require.NoError(t, err)
	assert.Equal(t, []string{"name", "is_active"}, columns(set))
	assert.Equal(t, "New", set[0].Value)
	assert.Equal(t, false, set[1].Value)
}

func TestBuildPartialUpdateNoFields(t *testing.T) {
	_, err := BuildPartialUpdate(BannerSchema.Fields, rawInput(t, `{"unknown":1}`))
	require.ErrorIs(t, err, ErrNoFieldsToUpdate)
	assert.ErrorIs(t, err, utils.ErrValidation)
	assert.Equal(t, "No fields to update", err.Error())

	_, err = BuildPartialUpdate(BannerSchema.Fields, map[string]json.RawMessage{})
	assert.ErrorIs(t, err, ErrNoFieldsToUpdate)
}

func TestBuildPartialUpdateFollowsAllowListOrder(t *testing.T) {
	input := rawInput(t, `{"sort_order":3,"title":"T","badge":"NEW"}`)

	set, err := BuildPartialUpdate(BannerSchema.Fields, input)
	require.NoError(t, err)
	assert.Equal(t, []string{"title", "badge", "sort_order"}, columns(set))
	assert.Equal(t, int64(3), set[2].Value)
}

func TestBuildPartialUpdateRejectsBlankRequired(t *testing.T) {
	_, err := BuildPartialUpdate(CategorySchema.Fields, rawInput(t, `{"name":"   "}`))
	assert.ErrorIs(t, err, utils.ErrValidation)
}

func TestBuildPartialUpdateNullableFields(t *testing.T) {
	set, err := BuildPartialUpdate(ProductSchema.Fields, rawInput(t, `{"image_url":null,"sku":""}`))
	require.NoError(t, err)
	assert.Equal(t, []string{"image_url", "sku"}, columns(set))
	assert.Nil(t, set[0].Value)
	assert.Nil(t, set[1].Value)

	_, err = BuildPartialUpdate(ProductSchema.Fields, rawInput(t, `{"in_stock":null}`))
	assert.ErrorIs(t, err, utils.ErrValidation)
}

func TestFieldDecode(t *testing.T) {
	price := Field{Name: "price", Kind: KindDecimal}
	v, err := price.Decode(json.RawMessage(`1290.50`))
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("1290.5").Equal(v.(decimal.Decimal)))

	v, err = price.Decode(json.RawMessage(`"99.90"`))
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("99.9").Equal(v.(decimal.Decimal)))

	_, err = price.Decode(json.RawMessage(`"abc"`))
	assert.ErrorIs(t, err, utils.ErrValidation)

	order := Field{Name: "sort_order", Kind: KindInt}
	v, err = order.Decode(json.RawMessage(`"7"`))
	require.NoError(t, err)
	assert.Equal(t, int64(7), v)

	_, err = order.Decode(json.RawMessage(`1.5`))
	assert.ErrorIs(t, err, utils.ErrValidation)

	v, err = order.Decode(json.RawMessage(`2147483647`))
	require.NoError(t, err)
	assert.Equal(t, int64(2147483647), v)

	_, err = order.Decode(json.RawMessage(`2147483648`))
	assert.ErrorIs(t, err, utils.ErrValidation)

	_, err = order.Decode(json.RawMessage(`"-2147483649"`))
	assert.ErrorIs(t, err, utils.ErrValidation)

	specs := Field{Name: "specifications", Kind: KindObject}
	v, err = specs.Decode(json.RawMessage(`{"Мощность":"1.5 кВт"}`))
	require.NoError(t, err)
	assert.Equal(t, models.JSONMap{"Мощность": "1.5 кВт"}, v)

	v, err = specs.Decode(json.RawMessage(`"{\"Вес\":\"2 кг\"}"`))
	require.NoError(t, err)
	assert.Equal(t, models.JSONMap{"Вес": "2 кг"}, v)

	_, err = specs.Decode(json.RawMessage(`"not json"`))
	assert.ErrorIs(t, err, utils.ErrValidation)

	_, err = specs.Decode(json.RawMessage(`[1,2]`))
	assert.ErrorIs(t, err, utils.ErrValidation)
}

func TestBuildAssignmentsDefaultsAndRequired(t *testing.T) {
	set, err := BuildAssignments(CategorySchema.Fields, rawInput(t, `{"slug":"  valves ","name":"Valves"}`))
	require.NoError(t, err)

	values := map[string]any{}
	for _, a := range set {
		values[a.Column] = a.Value
	}
	assert.Equal(t, "valves", values["slug"])
	assert.Equal(t, "Package", values["icon"])
	assert.Nil(t, values["image_url"])
	assert.Equal(t, int64(0), values["sort_order"])
	assert.Equal(t, true, values["is_active"])

	_, err = BuildAssignments(CategorySchema.Fields, rawInput(t, `{"name":"Valves"}`))
	require.ErrorIs(t, err, utils.ErrValidation)
	assert.Equal(t, "slug is required", err.Error())

	_, err = BuildAssignments(CategorySchema.Fields, rawInput(t, `{"slug":" ","name":null}`))
	require.ErrorIs(t, err, utils.ErrValidation)
	assert.Equal(t, "slug and name are required", err.Error())
}
