package tradedb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// Locations returns every trading hall ordered by name.
func (s *Store) Locations(ctx context.Context) ([]Location, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT location, x_coord, z_coord FROM locations ORDER BY location`)
	if err != nil {
		return nil, fmt.Errorf("list locations: %w", err)
	}
	defer rows.Close()

	var locations []Location
	for rows.Next() {
		var loc Location
		if err := rows.Scan(&loc.Name, &loc.XCoord, &loc.ZCoord); err != nil {
			return nil, fmt.Errorf("scan location: %w", err)
		}
		locations = append(locations, loc)
	}
	return locations, rows.Err()
}

// GetLocation fetches a trading hall by name. Returns nil when absent.
func (s *Store) GetLocation(ctx context.Context, name string) (*Location, error) {
	row := s.db.QueryRowContext(ctx, `SELECT location, x_coord, z_coord FROM locations WHERE location = ?`, name)
	var loc Location
	err := row.Scan(&loc.Name, &loc.XCoord, &loc.ZCoord)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get location: %w", err)
	}
	return &loc, nil
}

// InsertLocation persists a new trading hall. Locations are never updated or
// deleted after creation.
func (s *Store) InsertLocation(ctx context.Context, loc Location) error {
	_, err := s.db.ExecContext(
		ctx,
		`INSERT INTO locations (location, x_coord, z_coord) VALUES (?, ?, ?)`,
		loc.Name, loc.XCoord, loc.ZCoord,
	)
	if err != nil {
		return fmt.Errorf("insert location: %w", err)
	}
	return nil
}
