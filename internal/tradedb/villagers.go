package tradedb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// GetVillager fetches a villager by identifier. Returns nil when absent.
func (s *Store) GetVillager(ctx context.Context, id string) (*Villager, error) {
	row := s.db.QueryRowContext(ctx, `SELECT villager_id, location, job FROM villagers WHERE villager_id = ?`, id)
	var v Villager
	err := row.Scan(&v.ID, &v.Location, &v.Job)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get villager: %w", err)
	}
	return &v, nil
}

// InsertVillager registers a new villager.
func (s *Store) InsertVillager(ctx context.Context, v Villager) error {
	_, err := s.db.ExecContext(
		ctx,
		`INSERT INTO villagers (villager_id, location, job) VALUES (?, ?, ?)`,
		v.ID, v.Location, v.Job,
	)
	if err != nil {
		return fmt.Errorf("insert villager: %w", err)
	}
	return nil
}

// UpdateVillagerLocation moves a villager to a different trading hall.
// Location is the only villager field the workflow may change.
func (s *Store) UpdateVillagerLocation(ctx context.Context, id, location string) error {
	res, err := s.db.ExecContext(
		ctx,
		`UPDATE villagers SET location = ? WHERE villager_id = ?`,
		location, id,
	)
	if err != nil {
		return fmt.Errorf("update villager location: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("villager %q not found", id)
	}
	return nil
}

// Villagers returns every registered villager ordered by identifier.
func (s *Store) Villagers(ctx context.Context) ([]Villager, error) {
	return s.queryVillagers(ctx, `SELECT villager_id, location, job FROM villagers ORDER BY villager_id`)
}

// VillagersAt returns the villagers registered at a trading hall.
func (s *Store) VillagersAt(ctx context.Context, location string) ([]Villager, error) {
	return s.queryVillagers(ctx, `SELECT villager_id, location, job FROM villagers WHERE location = ? ORDER BY villager_id`, location)
}

func (s *Store) queryVillagers(ctx context.Context, query string, args ...any) ([]Villager, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list villagers: %w", err)
	}
	defer rows.Close()

	var villagers []Villager
	for rows.Next() {
		var v Villager
		if err := rows.Scan(&v.ID, &v.Location, &v.Job); err != nil {
			return nil, fmt.Errorf("scan villager: %w", err)
		}
		villagers = append(villagers, v)
	}
	return villagers, rows.Err()
}
