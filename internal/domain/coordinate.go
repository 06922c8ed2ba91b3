// Package domain contains the core data types for the Coordinates API.
// This package has zero external dependencies and is imported by every other
// internal package (repo, service, handler).
package domain

import "time"

// Latitude and longitude bounds in decimal degrees.
// Values outside these ranges are rejected before they reach the database.
const (
	MinLatitude  = -90.0
	MaxLatitude  = 90.0
	MinLongitude = -180.0
	MaxLongitude = 180.0
)

// Coordinate represents a named geographic point stored as one row.
// ID is assigned by the database on insert and is immutable afterwards;
// there is no update operation in the API.
type Coordinate struct {
	ID        int64     `json:"id"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"-"` // set by the DB, not part of the API record shape
}
