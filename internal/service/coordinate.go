// Package service contains the business logic for the Coordinates API.
// Services validate inputs, enforce business rules, and orchestrate repo calls.
// No SQL lives here — services depend on repo interfaces, not implementations.
package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/geodepot/coordinates-api/internal/domain"
	"github.com/geodepot/coordinates-api/internal/repo"
)

// CoordinateService implements business logic for Coordinate operations.
// Its primary responsibility is range validation: no out-of-range latitude
// or longitude ever reaches the repo layer.
type CoordinateService struct {
	repo repo.CoordinateRepo
}

// NewCoordinateService constructs a CoordinateService backed by the provided repo.
func NewCoordinateService(r repo.CoordinateRepo) *CoordinateService {
	return &CoordinateService{repo: r}
}

// Create validates and persists a new coordinate.
// Returns domain.ErrValidation (wrapped) when latitude or longitude is out of
// range or the name is empty; no repo call is made in that case.
func (s *CoordinateService) Create(ctx context.Context, c domain.Coordinate) (domain.Coordinate, error) {
	if err := validate(c); err != nil {
		return domain.Coordinate{}, fmt.Errorf("service.CoordinateService.Create: %w", err)
	}

	created, err := s.repo.Create(ctx, c)
	if err != nil {
		return domain.Coordinate{}, fmt.Errorf("service.CoordinateService.Create: %w", err)
	}
	return created, nil
}

// List returns all coordinates. The result is never nil — an empty store
// yields an empty slice so the HTTP layer serializes it as [].
func (s *CoordinateService) List(ctx context.Context) ([]domain.Coordinate, error) {
	coords, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.CoordinateService.List: %w", err)
	}
	if coords == nil {
		coords = []domain.Coordinate{}
	}
	return coords, nil
}

// Delete removes a coordinate by ID.
// Returns domain.ErrNotFound (wrapped) if no such coordinate exists.
func (s *CoordinateService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("service.CoordinateService.Delete: %w", err)
	}
	return nil
}

// validate checks the business rules for a coordinate.
// Violations are reported as wrapped domain.ErrValidation values so handlers
// can map them to HTTP 422 without inspecting message text.
func validate(c domain.Coordinate) error {
	if c.Latitude < domain.MinLatitude || c.Latitude > domain.MaxLatitude {
		return fmt.Errorf("%w: latitude must be between -90 and 90", domain.ErrValidation)
	}
	if c.Longitude < domain.MinLongitude || c.Longitude > domain.MaxLongitude {
		return fmt.Errorf("%w: longitude must be between -180 and 180", domain.ErrValidation)
	}
	if strings.TrimSpace(c.Name) == "" {
		return fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	return nil
}
