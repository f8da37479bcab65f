package repository

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/tkexclusiv/catalog_api/internal/models"
	"github.com/tkexclusiv/catalog_api/internal/utils"
)

// FieldKind is the value type a column accepts from request bodies.
type FieldKind int

const (
	KindText FieldKind = iota
	KindInt
	KindBool
	KindDecimal
	KindObject
)

// Field describes one mutable column of a resource table.
type Field struct {
	Name     string
	Kind     FieldKind
	Required bool
	Nullable bool
	// EmptyAsNull stores blank strings as NULL (optional unique columns such as sku).
	EmptyAsNull bool
	// Default is written by create and replace when the field is omitted.
	Default any
}

// Assignment is a column/value pair destined for an INSERT or UPDATE.
// Column always comes from a Field name, never from request input.
type Assignment struct {
	Column string
	Value  any
}

// Decode converts a raw JSON value into a driver value for the column.
func (f Field) Decode(raw json.RawMessage) (any, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || string(raw) == "null" {
		if f.Nullable {
			return nil, nil
		}
		return nil, utils.NewValidationError("%s cannot be null", f.Name)
	}

	switch f.Kind {
	case KindText:
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return nil, utils.NewValidationError("%s must be a string", f.Name)
		}
		if f.Required {
			s = strings.TrimSpace(s)
			if s == "" {
				return nil, utils.NewValidationError("%s cannot be empty", f.Name)
			}
		}
		if f.EmptyAsNull && strings.TrimSpace(s) == "" {
			return nil, nil
		}
		return s, nil

	case KindInt:
		dec := json.NewDecoder(bytes.NewReader(raw))
		dec.UseNumber()
		var v any
		if err := dec.Decode(&v); err != nil {
			return nil, utils.NewValidationError("%s must be an integer", f.Name)
		}
		var (
			n   int64
			err error
		)
		switch t := v.(type) {
		case json.Number:
			n, err = t.Int64()
		case string:
			n, err = strconv.ParseInt(strings.TrimSpace(t), 10, 64)
		default:
			err = strconv.ErrSyntax
		}
		if err != nil {
			return nil, utils.NewValidationError("%s must be an integer", f.Name)
		}
		// integer columns are 32-bit
		if n > math.MaxInt32 || n < math.MinInt32 {
			return nil, utils.NewValidationError("%s is out of range", f.Name)
		}
		return n, nil

	case KindBool:
		var b bool
		if err := json.Unmarshal(raw, &b); err != nil {
			return nil, utils.NewValidationError("%s must be a boolean", f.Name)
		}
		return b, nil

	case KindDecimal:
		var d decimal.Decimal
		if err := d.UnmarshalJSON(raw); err != nil {
			return nil, utils.NewValidationError("%s must be a number", f.Name)
		}
		return d, nil

	case KindObject:
		// Admin forms send specifications either as an object or as its JSON text.
		if raw[0] == '"' {
			var s string
			if err := json.Unmarshal(raw, &s); err != nil {
				return nil, utils.NewValidationError("%s must be a JSON object", f.Name)
			}
			if strings.TrimSpace(s) == "" {
				return models.JSONMap{}, nil
			}
			raw = []byte(s)
		}
		var m map[string]any
		if err := json.Unmarshal(raw, &m); err != nil || m == nil {
			return nil, utils.NewValidationError("%s must be a JSON object", f.Name)
		}
		return models.JSONMap(m), nil
	}

	return nil, utils.NewValidationError("%s has an unsupported type", f.Name)
}

// BuildAssignments produces a value for every field: decoded from input when
// present, the field default otherwise. Required text fields must be non-blank
// after trimming. Used by create and full replace.
func BuildAssignments(fields []Field, input map[string]json.RawMessage) ([]Assignment, error) {
	set := make([]Assignment, 0, len(fields))
	var missing []string
	for _, f := range fields {
		raw, ok := input[f.Name]
		if !ok {
			if f.Required {
				missing = append(missing, f.Name)
				continue
			}
			set = append(set, Assignment{Column: f.Name, Value: f.Default})
			continue
		}

		v, err := f.Decode(raw)
		if err != nil {
			if f.Required && isBlankInput(raw) {
				missing = append(missing, f.Name)
				continue
			}
			return nil, err
		}
		set = append(set, Assignment{Column: f.Name, Value: v})
	}

	if len(missing) > 0 {
		verb := "is"
		if len(missing) > 1 {
			verb = "are"
		}
		return nil, utils.NewValidationError("%s %s required", joinNames(missing), verb)
	}
	return set, nil
}

// isBlankInput reports whether raw is null or a whitespace-only string.
func isBlankInput(raw json.RawMessage) bool {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || string(raw) == "null" {
		return true
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return false
	}
	return strings.TrimSpace(s) == ""
}

func joinNames(names []string) string {
	switch len(names) {
	case 0:
		return ""
	case 1:
		return names[0]
	default:
		return strings.Join(names[:len(names)-1], ", ") + " and " + names[len(names)-1]
	}
}
