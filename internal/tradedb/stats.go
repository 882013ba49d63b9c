package tradedb

import (
	"context"
	"fmt"
)

// Stats returns row counts for every table plus the most recent sync record.
func (s *Store) Stats(ctx context.Context) (StatsSummary, error) {
	var summary StatsSummary
	counts := []struct {
		table string
		dest  *int
	}{
		{"locations", &summary.Locations},
		{"villagers", &summary.Villagers},
		{"enchantments", &summary.Enchantments},
		{"jobs", &summary.Jobs},
		{"librarian_trades", &summary.Trades},
	}
	for _, c := range counts {
		row := s.db.QueryRowContext(ctx, `SELECT COUNT(1) FROM `+c.table)
		if err := row.Scan(c.dest); err != nil {
			return StatsSummary{}, fmt.Errorf("count %s: %w", c.table, err)
		}
	}

	load, err := s.LastRefLoad(ctx)
	if err != nil {
		return StatsSummary{}, err
	}
	summary.LastLoad = load
	return summary, nil
}
