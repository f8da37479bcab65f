package repository

import (
	"encoding/json"

	"github.com/tkexclusiv/catalog_api/internal/utils"
)

// ErrNoFieldsToUpdate is returned when a patch names no allowed field.
var ErrNoFieldsToUpdate = utils.NewValidationError("No fields to update")

// BuildPartialUpdate selects the allowed fields present in input, in allow-list
// order. Keys in input that are not in allowed are ignored; columns are only
// ever taken from allowed. An empty result is ErrNoFieldsToUpdate.
func BuildPartialUpdate(allowed []Field, input map[string]json.RawMessage) ([]Assignment, error) {
	var set []Assignment
	for _, f := range allowed {
		raw, ok := input[f.Name]
		if !ok {
			continue
		}
		v, err := f.Decode(raw)
		if err != nil {
			return nil, err
		}
		set = append(set, Assignment{Column: f.Name, Value: v})
	}
	if len(set) == 0 {
		return nil, ErrNoFieldsToUpdate
	}
	return set, nil
}
