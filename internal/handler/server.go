// Package handler implements the HTTP handlers for the Coordinates API.
// All handlers are methods on Server. Methods are split into route-specific
// files (health.go, coordinate.go) but all share the same Server struct so
// they can access its dependencies.
package handler

import (
	"context"

	"github.com/go-chi/chi/v5"

	"github.com/geodepot/coordinates-api/internal/domain"
)

// CoordinateServicer defines the business operations the coordinate handler
// depends on. Defining the interface here (in the consumer package) follows
// the Go convention: "accept interfaces, return concrete types". It lets
// handler tests inject a mock without touching the database or service layer.
type CoordinateServicer interface {
	Create(ctx context.Context, c domain.Coordinate) (domain.Coordinate, error)
	List(ctx context.Context) ([]domain.Coordinate, error)
	Delete(ctx context.Context, id int64) error
}

// Server holds the dependencies for all API endpoints.
// Wire it in main.go via Routes().
type Server struct {
	coordinates CoordinateServicer
}

// NewServer constructs the Server with all its dependencies.
func NewServer(coordinates CoordinateServicer) *Server {
	return &Server{coordinates: coordinates}
}

// Routes returns a chi router with every API endpoint registered.
// Middleware is applied by the caller (main.go) so tests can exercise the
// routes without the production middleware chain.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/", s.GetRoot)
	r.Route("/coordinates", func(r chi.Router) {
		r.Post("/", s.CreateCoordinate)
		r.Get("/", s.ListCoordinates)
		r.Delete("/{id}", s.DeleteCoordinate)
	})

	return r
}
