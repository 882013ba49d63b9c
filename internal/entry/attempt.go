package entry

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"tradehall/internal/tradedb"
)

// attempt runs one full trade entry: resolve location and villager (unless
// carried over from the previous attempt), gate on capacity, collect terms,
// guard against duplicates, and insert. Storage failures are reported to the
// user and collapse into OutcomeError; only input-stream exhaustion is
// returned as an error.
func (s *Session) attempt(ctx context.Context, preLoc, preVillager string) (string, string, Outcome, error) {
	s.prompt.Printf("\n--- New Librarian Trade Entry ---")

	location := preLoc
	if location != "" {
		s.prompt.Printf("Location: %s", location)
	} else {
		var err error
		location, err = s.resolveLocation(ctx)
		if err != nil {
			return s.attemptFailed(err)
		}
	}

	villagerID := preVillager
	if villagerID != "" {
		s.prompt.Printf("Villager ID: %s", villagerID)
	} else {
		var err error
		villagerID, err = s.resolveVillager(ctx, location)
		if err != nil {
			return s.attemptFailed(err)
		}
	}

	count, err := s.store.TradeCount(ctx, villagerID)
	if err != nil {
		return s.attemptFailed(err)
	}
	if count >= tradedb.MaxTradeSlots {
		s.prompt.Errorf("Villager %q already has %d out of %d trades.", villagerID, count, tradedb.MaxTradeSlots)
		return location, villagerID, OutcomeFull, nil
	}

	ench, err := s.resolveEnchantment(ctx)
	if err != nil {
		return s.attemptFailed(err)
	}

	var level int
	if ench.MaxLevel == 1 {
		s.prompt.Printf("Setting enchantment level for %q to 1 (max level).", ench.Name)
		level = 1
	} else {
		level, err = s.prompt.IntUntilValid(
			s.levelLabel(ench.MaxLevel),
			func(raw string) (int, error) { return ParseLevel(raw, ench.MaxLevel) },
		)
		if err != nil {
			return s.attemptFailed(err)
		}
	}

	cost, err := s.prompt.IntUntilValid("\nCost in emeralds (1-64):", ParseCost)
	if err != nil {
		return s.attemptFailed(err)
	}

	trade := tradedb.Trade{VillagerID: villagerID, Enchantment: ench.Name, Level: level, Cost: cost}
	duplicate, err := s.store.HasTrade(ctx, trade)
	if err != nil {
		return s.attemptFailed(err)
	}
	if duplicate {
		s.prompt.Warnf("This exact trade for villager %q already exists.", villagerID)
		override, err := s.prompt.Confirm("Add duplicate trade anyway? (y/n):")
		if err != nil {
			return s.attemptFailed(err)
		}
		if !override {
			s.prompt.Errorf("Action cancelled. Trade not added.")
			return location, villagerID, OutcomeCancelled, nil
		}
	}

	if err := s.store.InsertTrade(ctx, trade); err != nil {
		return s.attemptFailed(err)
	}

	s.prompt.Successf("Saved: villager %q sells %q %d for %d emeralds.", villagerID, ench.Name, level, cost)
	s.logger.Info("trade recorded",
		"villager", villagerID,
		"enchantment", ench.Name,
		"level", level,
		"cost", cost,
	)
	return location, villagerID, OutcomeSuccess, nil
}

// attemptFailed maps a resolver error to an attempt result. Input exhaustion
// propagates so the session can end; everything else is a storage failure
// that clears remembered context.
func (s *Session) attemptFailed(err error) (string, string, Outcome, error) {
	if errors.Is(err, ErrInputClosed) {
		return "", "", OutcomeError, err
	}
	s.prompt.Errorf("%v", err)
	s.logger.Error("entry attempt failed", "error", err)
	return "", "", OutcomeError, nil
}

// resolveLocation loops until the user names an existing trading hall or
// confirms creating a new one. Creation commits immediately.
func (s *Session) resolveLocation(ctx context.Context) (string, error) {
	for {
		existing, err := s.store.Locations(ctx)
		if err != nil {
			return "", err
		}
		names := make([]string, 0, len(existing))
		for _, loc := range existing {
			names = append(names, loc.Name)
		}
		if len(names) == 0 {
			s.prompt.Printf("\nExisting locations: none")
		} else {
			s.prompt.Printf("\nExisting locations: %s", strings.Join(names, ", "))
		}

		raw, err := s.prompt.Line(`Trading hall location (e.g. "spawn"):`)
		if err != nil {
			return "", err
		}
		name, parseErr := NormalizeName(raw)
		if parseErr != nil {
			s.prompt.Errorf("Location cannot be empty. Try again.")
			continue
		}

		loc, err := s.store.GetLocation(ctx, name)
		if err != nil {
			return "", err
		}
		if loc != nil {
			return name, nil
		}

		s.prompt.Printf("\nLocation %q not found.", name)
		create, err := s.prompt.Confirm("Add " + name + " as a new location? (y/n):")
		if err != nil {
			return "", err
		}
		if !create {
			s.prompt.Errorf("Action cancelled. Please enter a different location.")
			continue
		}

		x, err := s.prompt.IntUntilValid("X coordinate of the "+name+" trading hall:", ParseCoordinate)
		if err != nil {
			return "", err
		}
		z, err := s.prompt.IntUntilValid("Z coordinate of the "+name+" trading hall:", ParseCoordinate)
		if err != nil {
			return "", err
		}

		if err := s.store.InsertLocation(ctx, tradedb.Location{Name: name, XCoord: x, ZCoord: z}); err != nil {
			return "", err
		}
		s.prompt.Successf("Added new location %q with coordinates (%d, %d).", name, x, z)
		s.logger.Info("location created", "location", name, "x", x, "z", z)
		return name, nil
	}
}

// resolveVillager loops until the user names a librarian registered at the
// current location, confirming creation or relocation along the way.
func (s *Session) resolveVillager(ctx context.Context, location string) (string, error) {
	for {
		raw, err := s.prompt.Line("\nVillager ID (e.g. \"spa001\"):")
		if err != nil {
			return "", err
		}
		id, parseErr := NormalizeName(raw)
		if parseErr != nil {
			s.prompt.Errorf("Villager ID cannot be empty. Try again.")
			continue
		}

		villager, err := s.store.GetVillager(ctx, id)
		if err != nil {
			return "", err
		}

		if villager != nil {
			if villager.Job != tradedb.JobLibrarian {
				s.prompt.Errorf("Villager %q is a %q, not a librarian. Try again.", id, villager.Job)
				continue
			}
			if villager.Location != location {
				s.prompt.Warnf("Villager %q is currently registered at %q.", id, villager.Location)
				move, err := s.prompt.Confirm("Move them to " + location + "? (y/n):")
				if err != nil {
					return "", err
				}
				if !move {
					s.prompt.Errorf("Villager mismatch. Please enter a different villager ID.")
					continue
				}
				if err := s.store.UpdateVillagerLocation(ctx, id, location); err != nil {
					return "", err
				}
				s.prompt.Successf("Moved %q to %q.", id, location)
				s.logger.Info("villager relocated", "villager", id, "location", location)
			}
			return id, nil
		}

		create, err := s.prompt.Confirm("\nVillager ID " + id + " not found. Add new librarian at " + location + "? (y/n):")
		if err != nil {
			return "", err
		}
		if !create {
			s.prompt.Errorf("Action cancelled. Please enter a different villager ID.")
			continue
		}

		newVillager := tradedb.Villager{ID: id, Location: location, Job: tradedb.JobLibrarian}
		if err := s.store.InsertVillager(ctx, newVillager); err != nil {
			return "", err
		}
		s.prompt.Successf("Added new librarian %q at %q.", id, location)
		s.logger.Info("villager created", "villager", id, "location", location)
		return id, nil
	}
}

// resolveEnchantment loops until the user names an enchantment present in the
// loader-owned reference table. There is no creation path.
func (s *Session) resolveEnchantment(ctx context.Context) (*tradedb.Enchantment, error) {
	for {
		raw, err := s.prompt.Line("\nEnchantment (e.g. \"mending\"):")
		if err != nil {
			return nil, err
		}
		name, parseErr := NormalizeName(raw)
		if parseErr != nil {
			s.prompt.Errorf("Enchantment cannot be empty. Try again.")
			continue
		}

		ench, err := s.store.GetEnchantment(ctx, name)
		if err != nil {
			return nil, err
		}
		if ench == nil {
			s.prompt.Errorf("The enchantment %q is not in the database (or is not tradeable). Try again.", name)
			continue
		}
		return ench, nil
	}
}

func (s *Session) levelLabel(max int) string {
	return "\nEnchantment level (1-" + strconv.Itoa(max) + "):"
}
