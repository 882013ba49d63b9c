package main

import (
	"strings"
	"testing"
)

func TestShowAndStatsOnEmptyDatabase(t *testing.T) {
	env := setupCLIEnv(t)

	out, _, err := runCLI(t, env, "", "show", "locations")
	if err != nil {
		t.Fatalf("show locations: %v", err)
	}
	requireContains(t, out, "No locations recorded")

	out, _, err = runCLI(t, env, "", "show", "trades")
	if err != nil {
		t.Fatalf("show trades: %v", err)
	}
	requireContains(t, out, "No trades recorded")

	out, _, err = runCLI(t, env, "", "stats")
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	requireContains(t, out, "Reference data never loaded")
}

func TestSyncLoadsReferenceData(t *testing.T) {
	env := setupCLIEnv(t)
	server := newManifestServer(t)
	writeTestConfig(t, env.configPath, env.dataDir, server.URL+"/manifest.json")

	out, _, err := runCLI(t, env, "", "sync")
	if err != nil {
		t.Fatalf("sync: %v", err)
	}
	requireContains(t, out, "Loaded reference data for version 1.21.4")
	requireContains(t, out, "Enchantments: 2")
	requireContains(t, out, "Jobs:         2")

	out, _, err = runCLI(t, env, "", "show", "enchantments")
	if err != nil {
		t.Fatalf("show enchantments: %v", err)
	}
	requireContains(t, out, "Mending")
	requireContains(t, out, "Sharpness")

	out, _, err = runCLI(t, env, "", "show", "jobs")
	if err != nil {
		t.Fatalf("show jobs: %v", err)
	}
	requireContains(t, out, "librarian")

	out, _, err = runCLI(t, env, "", "stats")
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	requireContains(t, out, "Last sync: version 1.21.4")
}

func TestAddRequiresReferenceData(t *testing.T) {
	env := setupCLIEnv(t)

	if _, _, err := runCLI(t, env, "", "add"); err == nil {
		t.Fatal("expected error when no reference data is loaded")
	}
}

func TestAddRecordsTradeEndToEnd(t *testing.T) {
	env := setupCLIEnv(t)
	server := newManifestServer(t)
	writeTestConfig(t, env.configPath, env.dataDir, server.URL+"/manifest.json")

	if _, _, err := runCLI(t, env, "", "sync"); err != nil {
		t.Fatalf("sync: %v", err)
	}

	script := strings.Join([]string{
		"spawn",  // location name
		"y",      // create it
		"120",    // x
		"-340",   // z
		"spa001", // villager id
		"y",      // create librarian
		"mending",
		"32",   // cost; level is forced to 1 for mending
		"exit", // continuation prompt
	}, "\n") + "\n"

	out, _, err := runCLI(t, env, script, "add", "--plain")
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	requireContains(t, out, `Added new location "spawn" with coordinates (120, -340).`)
	requireContains(t, out, `Added new librarian "spa001" at "spawn".`)
	requireContains(t, out, `Saved: villager "spa001" sells "mending" 1 for 32 emeralds.`)

	out, _, err = runCLI(t, env, "", "show", "trades", "spa001")
	if err != nil {
		t.Fatalf("show trades: %v", err)
	}
	requireContains(t, out, "Mending")
	requireContains(t, out, "32")

	out, _, err = runCLI(t, env, "", "show", "villagers", "--location", "spawn")
	if err != nil {
		t.Fatalf("show villagers: %v", err)
	}
	requireContains(t, out, "spa001")
	requireContains(t, out, "1/4")
}
