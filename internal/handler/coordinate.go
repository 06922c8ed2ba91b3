package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/geodepot/coordinates-api/internal/domain"
)

// createCoordinateRequest is the expected body for POST /coordinates.
// Fields are pointers so that a missing field can be distinguished from a
// zero value — latitude 0 and longitude 0 are perfectly valid coordinates.
type createCoordinateRequest struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	Name      *string  `json:"name"`
}

// coordinateResponse is the record shape on the wire:
// {"id", "latitude", "longitude", "name"}.
type coordinateResponse struct {
	ID        int64   `json:"id"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Name      string  `json:"name"`
}

// CreateCoordinate handles POST /coordinates.
func (s *Server) CreateCoordinate(w http.ResponseWriter, r *http.Request) {
	c, err := decodeCreateRequest(r)
	if err != nil {
		unprocessable(w, r, err.Error())
		return
	}

	created, err := s.coordinates.Create(r.Context(), c)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			unprocessable(w, r, unwrapMessage(err))
			return
		}
		internalError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusCreated, toResponse(created))
}

// ListCoordinates handles GET /coordinates.
// The body is always a JSON array — [] when the store is empty.
func (s *Server) ListCoordinates(w http.ResponseWriter, r *http.Request) {
	coords, err := s.coordinates.List(r.Context())
	if err != nil {
		internalError(w, r, err)
		return
	}

	data := make([]coordinateResponse, len(coords))
	for i, c := range coords {
		data[i] = toResponse(c)
	}
	writeJSON(w, r, http.StatusOK, data)
}

// DeleteCoordinate handles DELETE /coordinates/{id}.
func (s *Server) DeleteCoordinate(w http.ResponseWriter, r *http.Request) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		notFound(w, r, fmt.Sprintf("coordinate with id %s not found", raw))
		return
	}

	if err := s.coordinates.Delete(r.Context(), id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			notFound(w, r, fmt.Sprintf("coordinate with id %d not found", id))
			return
		}
		internalError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// --- mapping helpers --------------------------------------------------------

// decodeCreateRequest parses and checks the POST body for required fields.
// Range validation belongs to the service layer; this only rejects bodies
// that are malformed or structurally incomplete.
func decodeCreateRequest(r *http.Request) (domain.Coordinate, error) {
	var body createCoordinateRequest

	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		return domain.Coordinate{}, errors.New("request body must be valid JSON")
	}

	if body.Latitude == nil {
		return domain.Coordinate{}, errors.New("latitude is required")
	}
	if body.Longitude == nil {
		return domain.Coordinate{}, errors.New("longitude is required")
	}
	if body.Name == nil {
		return domain.Coordinate{}, errors.New("name is required")
	}

	return domain.Coordinate{
		Latitude:  *body.Latitude,
		Longitude: *body.Longitude,
		Name:      *body.Name,
	}, nil
}

// toResponse converts a domain.Coordinate into the wire record shape.
func toResponse(c domain.Coordinate) coordinateResponse {
	return coordinateResponse{
		ID:        c.ID,
		Latitude:  c.Latitude,
		Longitude: c.Longitude,
		Name:      c.Name,
	}
}
