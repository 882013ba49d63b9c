package tradedb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// GetEnchantment fetches reference data for an enchantment. Returns nil when
// the enchantment is unknown or not tradeable.
func (s *Store) GetEnchantment(ctx context.Context, name string) (*Enchantment, error) {
	row := s.db.QueryRowContext(
		ctx,
		`SELECT enchantment, max_level, supported_items FROM enchantments WHERE enchantment = ?`,
		name,
	)
	var (
		ench  Enchantment
		items sql.NullString
	)
	err := row.Scan(&ench.Name, &ench.MaxLevel, &items)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get enchantment: %w", err)
	}
	ench.SupportedItems = items.String
	return &ench, nil
}

// Enchantments returns the full reference table ordered by name.
func (s *Store) Enchantments(ctx context.Context) ([]Enchantment, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT enchantment, max_level, supported_items FROM enchantments ORDER BY enchantment`)
	if err != nil {
		return nil, fmt.Errorf("list enchantments: %w", err)
	}
	defer rows.Close()

	var enchantments []Enchantment
	for rows.Next() {
		var (
			ench  Enchantment
			items sql.NullString
		)
		if err := rows.Scan(&ench.Name, &ench.MaxLevel, &items); err != nil {
			return nil, fmt.Errorf("scan enchantment: %w", err)
		}
		ench.SupportedItems = items.String
		enchantments = append(enchantments, ench)
	}
	return enchantments, rows.Err()
}

// Jobs returns the valid villager job identifiers ordered by name.
func (s *Store) Jobs(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT job FROM jobs ORDER BY job`)
	if err != nil {
		return nil, fmt.Errorf("list jobs: %w", err)
	}
	defer rows.Close()

	var jobs []string
	for rows.Next() {
		var job string
		if err := rows.Scan(&job); err != nil {
			return nil, fmt.Errorf("scan job: %w", err)
		}
		jobs = append(jobs, job)
	}
	return jobs, rows.Err()
}

// ReplaceReferenceData swaps the loader-owned tables in a single transaction
// and records the sync in ref_loads. Existing enchantment and job rows are
// removed regardless of whether the new set still contains them.
func (s *Store) ReplaceReferenceData(ctx context.Context, load RefLoad, enchantments []Enchantment, jobs []string) error {
	if len(enchantments) == 0 || len(jobs) == 0 {
		return errors.New("refusing to replace reference data with an empty set")
	}
	for _, ench := range enchantments {
		if ench.MaxLevel < 1 {
			return fmt.Errorf("enchantment %q has invalid max level %d", ench.Name, ench.MaxLevel)
		}
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin reference tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM enchantments`); err != nil {
		return fmt.Errorf("clear enchantments: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM jobs`); err != nil {
		return fmt.Errorf("clear jobs: %w", err)
	}

	for _, ench := range enchantments {
		if _, err := tx.ExecContext(
			ctx,
			`INSERT INTO enchantments (enchantment, max_level, supported_items) VALUES (?, ?, ?)`,
			ench.Name, ench.MaxLevel, nullableString(ench.SupportedItems),
		); err != nil {
			return fmt.Errorf("insert enchantment %q: %w", ench.Name, err)
		}
	}
	for _, job := range jobs {
		if _, err := tx.ExecContext(ctx, `INSERT INTO jobs (job) VALUES (?)`, job); err != nil {
			return fmt.Errorf("insert job %q: %w", job, err)
		}
	}

	loadedAt := load.LoadedAt
	if loadedAt.IsZero() {
		loadedAt = time.Now().UTC()
	}
	if _, err := tx.ExecContext(
		ctx,
		`INSERT INTO ref_loads (run_id, game_version, enchantment_count, job_count, loaded_at)
         VALUES (?, ?, ?, ?, ?)`,
		load.RunID, load.GameVersion, len(enchantments), len(jobs),
		loadedAt.Format(time.RFC3339Nano),
	); err != nil {
		return fmt.Errorf("record reference load: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit reference data: %w", err)
	}
	return nil
}

// LastRefLoad returns the most recent sync record, or nil when the loader has
// never run against this database.
func (s *Store) LastRefLoad(ctx context.Context) (*RefLoad, error) {
	row := s.db.QueryRowContext(
		ctx,
		`SELECT run_id, game_version, enchantment_count, job_count, loaded_at
         FROM ref_loads ORDER BY loaded_at DESC LIMIT 1`,
	)
	var (
		load      RefLoad
		loadedRaw string
	)
	err := row.Scan(&load.RunID, &load.GameVersion, &load.EnchantmentCount, &load.JobCount, &loadedRaw)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("last reference load: %w", err)
	}
	if loadedAt, err := parseTimeString(loadedRaw); err == nil {
		load.LoadedAt = loadedAt
	}
	return &load, nil
}

func nullableString(value string) any {
	if value == "" {
		return nil
	}
	return value
}
