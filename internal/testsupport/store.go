package testsupport

import (
	"context"
	"testing"
	"time"

	"tradehall/internal/config"
	"tradehall/internal/tradedb"
)

// MustOpenStore opens a tradedb.Store for tests and registers cleanup.
func MustOpenStore(t testing.TB, cfg *config.Config) *tradedb.Store {
	t.Helper()

	store, err := tradedb.Open(cfg)
	if err != nil {
		t.Fatalf("tradedb.Open: %v", err)
	}
	t.Cleanup(func() {
		store.Close()
	})
	return store
}

// SeedReference loads a small enchantment and job reference set so entry
// workflow tests have lookup data without running the loader.
func SeedReference(t testing.TB, store *tradedb.Store) {
	t.Helper()

	enchantments := []tradedb.Enchantment{
		{Name: "efficiency", MaxLevel: 5, SupportedItems: "mining_loot"},
		{Name: "mending", MaxLevel: 1, SupportedItems: "durability"},
		{Name: "sharpness", MaxLevel: 5, SupportedItems: "sword"},
		{Name: "unbreaking", MaxLevel: 3, SupportedItems: "durability"},
	}
	jobs := []string{"cartographer", "cleric", "librarian", "toolsmith"}
	load := tradedb.RefLoad{
		RunID:       "test-seed",
		GameVersion: "1.21.4",
		LoadedAt:    time.Now().UTC(),
	}
	if err := store.ReplaceReferenceData(context.Background(), load, enchantments, jobs); err != nil {
		t.Fatalf("seed reference data: %v", err)
	}
}

// MustInsertLocation adds a trading hall for tests.
func MustInsertLocation(t testing.TB, store *tradedb.Store, name string, x, z int) {
	t.Helper()
	if err := store.InsertLocation(context.Background(), tradedb.Location{Name: name, XCoord: x, ZCoord: z}); err != nil {
		t.Fatalf("insert location %q: %v", name, err)
	}
}

// MustInsertVillager registers a villager for tests.
func MustInsertVillager(t testing.TB, store *tradedb.Store, id, location, job string) {
	t.Helper()
	if err := store.InsertVillager(context.Background(), tradedb.Villager{ID: id, Location: location, Job: job}); err != nil {
		t.Fatalf("insert villager %q: %v", id, err)
	}
}

// MustInsertTrade appends an offer for tests.
func MustInsertTrade(t testing.TB, store *tradedb.Store, villagerID, enchantment string, level, cost int) {
	t.Helper()
	trade := tradedb.Trade{VillagerID: villagerID, Enchantment: enchantment, Level: level, Cost: cost}
	if err := store.InsertTrade(context.Background(), trade); err != nil {
		t.Fatalf("insert trade for %q: %v", villagerID, err)
	}
}
