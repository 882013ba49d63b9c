package tradedb

import "time"

// JobLibrarian is the only villager profession the entry workflow manages.
const JobLibrarian = "librarian"

// MaxTradeSlots is the number of concurrent offers a single villager can hold.
const MaxTradeSlots = 4

// Location is a named trading hall with in-game coordinates.
type Location struct {
	Name   string
	XCoord int
	ZCoord int
}

// Villager is a registered villager. Location is the only field the entry
// workflow ever mutates after creation.
type Villager struct {
	ID       string
	Location string
	Job      string
}

// Enchantment is loader-owned reference data. MaxLevel is always >= 1 for
// rows the loader accepts.
type Enchantment struct {
	Name           string
	MaxLevel       int
	SupportedItems string
}

// Trade is a single librarian offer. Rows are append-only.
type Trade struct {
	ID          int64
	VillagerID  string
	Enchantment string
	Level       int
	Cost        int
	CreatedAt   time.Time
}

// RefLoad records one completed reference sync.
type RefLoad struct {
	RunID            string
	GameVersion      string
	EnchantmentCount int
	JobCount         int
	LoadedAt         time.Time
}

// StatsSummary aggregates row counts for diagnostic output.
type StatsSummary struct {
	Locations    int
	Villagers    int
	Enchantments int
	Jobs         int
	Trades       int
	LastLoad     *RefLoad
}
