// Package repo contains all database access logic for the Coordinates API.
// No business logic lives here — only SQL and type mapping.
package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/geodepot/coordinates-api/internal/domain"
)

// db is the minimal interface satisfied by *pgxpool.Pool, pgx.Conn, and pgx.Tx.
// Accepting this interface instead of *pgxpool.Pool directly allows integration
// tests to pass a transaction that is rolled back after each test, giving free
// per-test isolation without any manual cleanup.
type db interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// CoordinateRepo defines the persistence operations for Coordinates.
// The service layer depends on this interface, not the concrete Postgres
// implementation, which allows the service to be unit-tested with a mock.
type CoordinateRepo interface {
	// Create inserts a new coordinate and returns the persisted record
	// (with DB-generated id and created_at populated).
	Create(ctx context.Context, c domain.Coordinate) (domain.Coordinate, error)

	// List returns all coordinates ordered by id ascending.
	// An empty table yields an empty slice, never an error.
	List(ctx context.Context) ([]domain.Coordinate, error)

	// Delete removes a coordinate by ID.
	// Returns domain.ErrNotFound if no coordinate with that ID exists.
	Delete(ctx context.Context, id int64) error
}

// pgCoordinateRepo is the Postgres implementation of CoordinateRepo.
type pgCoordinateRepo struct {
	db db
}

// NewCoordinateRepo constructs a CoordinateRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewCoordinateRepo(db db) CoordinateRepo {
	return &pgCoordinateRepo{db: db}
}

// Create inserts a new coordinate row and returns the full persisted record.
func (r *pgCoordinateRepo) Create(ctx context.Context, c domain.Coordinate) (domain.Coordinate, error) {
	const q = `
		INSERT INTO coordinates (latitude, longitude, name)
		VALUES (@latitude, @longitude, @name)
		RETURNING id, latitude, longitude, name, created_at`

	args := pgx.NamedArgs{
		"latitude":  c.Latitude,
		"longitude": c.Longitude,
		"name":      c.Name,
	}

	row := r.db.QueryRow(ctx, q, args)
	result, err := scanCoordinate(row)
	if err != nil {
		return domain.Coordinate{}, fmt.Errorf("repo.CoordinateRepo.Create: %w", err)
	}
	return result, nil
}

// List returns all coordinates ordered by id (insertion order).
func (r *pgCoordinateRepo) List(ctx context.Context) ([]domain.Coordinate, error) {
	const q = `
		SELECT id, latitude, longitude, name, created_at
		FROM coordinates
		ORDER BY id`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("repo.CoordinateRepo.List: %w", err)
	}
	defer rows.Close()

	coords := []domain.Coordinate{}
	for rows.Next() {
		c, err := scanCoordinate(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.CoordinateRepo.List: scan: %w", err)
		}
		coords = append(coords, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.CoordinateRepo.List: rows: %w", err)
	}

	return coords, nil
}

// Delete removes a coordinate by primary key.
func (r *pgCoordinateRepo) Delete(ctx context.Context, id int64) error {
	const q = `DELETE FROM coordinates WHERE id = @id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": id})
	if err != nil {
		return fmt.Errorf("repo.CoordinateRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.CoordinateRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

// scanner is satisfied by both pgx.Row and pgx.Rows, allowing scanCoordinate
// to be reused for both QueryRow and Query calls.
type scanner interface {
	Scan(dest ...any) error
}

// scanCoordinate maps a single database row into a domain.Coordinate.
func scanCoordinate(s scanner) (domain.Coordinate, error) {
	var c domain.Coordinate
	err := s.Scan(&c.ID, &c.Latitude, &c.Longitude, &c.Name, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Coordinate{}, domain.ErrNotFound
		}
		return domain.Coordinate{}, err
	}
	return c, nil
}
