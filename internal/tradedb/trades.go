package tradedb

import (
	"context"
	"fmt"
	"time"
)

// TradeCount returns the number of offers recorded for a villager.
func (s *Store) TradeCount(ctx context.Context, villagerID string) (int, error) {
	var count int
	row := s.db.QueryRowContext(ctx, `SELECT COUNT(1) FROM librarian_trades WHERE villager_id = ?`, villagerID)
	if err := row.Scan(&count); err != nil {
		return 0, fmt.Errorf("count trades: %w", err)
	}
	return count, nil
}

// HasTrade reports whether an identical offer (villager, enchantment, level,
// cost) already exists.
func (s *Store) HasTrade(ctx context.Context, t Trade) (bool, error) {
	var one int
	row := s.db.QueryRowContext(
		ctx,
		`SELECT COUNT(1) FROM librarian_trades
         WHERE villager_id = ? AND enchantment = ? AND enchantment_level = ? AND cost_emeralds = ?`,
		t.VillagerID, t.Enchantment, t.Level, t.Cost,
	)
	if err := row.Scan(&one); err != nil {
		return false, fmt.Errorf("find duplicate trade: %w", err)
	}
	return one > 0, nil
}

// InsertTrade appends a new offer.
func (s *Store) InsertTrade(ctx context.Context, t Trade) error {
	_, err := s.db.ExecContext(
		ctx,
		`INSERT INTO librarian_trades (villager_id, enchantment, enchantment_level, cost_emeralds, created_at)
         VALUES (?, ?, ?, ?, ?)`,
		t.VillagerID, t.Enchantment, t.Level, t.Cost,
		time.Now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("insert trade: %w", err)
	}
	return nil
}

// TradesFor returns a villager's offers in insertion order.
func (s *Store) TradesFor(ctx context.Context, villagerID string) ([]Trade, error) {
	return s.queryTrades(
		ctx,
		`SELECT id, villager_id, enchantment, enchantment_level, cost_emeralds, created_at
         FROM librarian_trades WHERE villager_id = ? ORDER BY id`,
		villagerID,
	)
}

// Trades returns every recorded offer ordered by villager, then insertion.
func (s *Store) Trades(ctx context.Context) ([]Trade, error) {
	return s.queryTrades(
		ctx,
		`SELECT id, villager_id, enchantment, enchantment_level, cost_emeralds, created_at
         FROM librarian_trades ORDER BY villager_id, id`,
	)
}

func (s *Store) queryTrades(ctx context.Context, query string, args ...any) ([]Trade, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list trades: %w", err)
	}
	defer rows.Close()

	var trades []Trade
	for rows.Next() {
		var (
			t          Trade
			createdRaw string
		)
		if err := rows.Scan(&t.ID, &t.VillagerID, &t.Enchantment, &t.Level, &t.Cost, &createdRaw); err != nil {
			return nil, fmt.Errorf("scan trade: %w", err)
		}
		if created, err := parseTimeString(createdRaw); err == nil {
			t.CreatedAt = created
		}
		trades = append(trades, t)
	}
	return trades, rows.Err()
}
