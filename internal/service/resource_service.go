package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/tkexclusiv/catalog_api/internal/repository"
	"github.com/tkexclusiv/catalog_api/internal/utils"
)

// ResourceService applies catalog write rules to one resource table.
type ResourceService[T any] struct {
	repo   *repository.ResourceRepository[T]
	schema repository.Schema
}

// NewResourceService creates a service over repo.
func NewResourceService[T any](repo *repository.ResourceRepository[T]) *ResourceService[T] {
	return &ResourceService[T]{repo: repo, schema: repo.Schema()}
}

// Schema returns the resource description (names, deletability).
func (s *ResourceService[T]) Schema() repository.Schema {
	return s.schema
}

func (s *ResourceService[T]) List(ctx context.Context) ([]T, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", s.schema.Plural, err)
	}
	return items, nil
}

// Create validates required fields, fills defaults for the rest and inserts.
func (s *ResourceService[T]) Create(ctx context.Context, input map[string]json.RawMessage) (*T, error) {
	set, err := repository.BuildAssignments(s.schema.Fields, input)
	if err != nil {
		return nil, err
	}
	item, err := s.repo.Insert(ctx, set)
	if err != nil {
		return nil, s.translate(err)
	}
	log.Info().Str("resource", s.schema.Plural).Msg("Record created")
	return item, nil
}

// Replace overwrites every mutable column of id. Omitted optional fields are
// reset to their defaults.
func (s *ResourceService[T]) Replace(ctx context.Context, id int64, input map[string]json.RawMessage) (*T, error) {
	set, err := repository.BuildAssignments(s.schema.Fields, input)
	if err != nil {
		return nil, err
	}
	item, err := s.repo.Update(ctx, id, set)
	if err != nil {
		return nil, s.translate(err)
	}
	return item, nil
}

// Patch writes only the allowed fields present in input.
func (s *ResourceService[T]) Patch(ctx context.Context, id int64, input map[string]json.RawMessage) (*T, error) {
	set, err := repository.BuildPartialUpdate(s.schema.Fields, input)
	if err != nil {
		return nil, err
	}
	item, err := s.repo.Update(ctx, id, set)
	if err != nil {
		return nil, s.translate(err)
	}
	return item, nil
}

func (s *ResourceService[T]) Delete(ctx context.Context, id int64) error {
	if !s.schema.Deletable {
		return utils.NewMethodNotAllowedError()
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return s.translate(err)
	}
	log.Info().Str("resource", s.schema.Plural).Int64("id", id).Msg("Record deleted")
	return nil
}

// translate maps storage errors onto client-facing ones.
func (s *ResourceService[T]) translate(err error) error {
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return utils.NewNotFoundError(s.schema.Label + " not found")
	case repository.IsUniqueViolation(err):
		return utils.NewConflictError(s.schema.Label + " already exists")
	default:
		return err
	}
}
