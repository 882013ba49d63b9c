package preflight

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"tradehall/internal/testsupport"
)

func TestCheckDirectoryAccess_OK(t *testing.T) {
	dir := t.TempDir()
	result := CheckDirectoryAccess("test", dir)
	if !result.Passed {
		t.Fatalf("expected pass for temp dir, got: %s", result.Detail)
	}
}

func TestCheckDirectoryAccess_NotExist(t *testing.T) {
	result := CheckDirectoryAccess("test", filepath.Join(t.TempDir(), "nope"))
	if result.Passed {
		t.Fatal("expected failure for missing dir")
	}
	if result.Detail == "" {
		t.Fatal("expected non-empty detail")
	}
}

func TestCheckDirectoryAccess_NotDir(t *testing.T) {
	f := filepath.Join(t.TempDir(), "file.txt")
	if err := os.WriteFile(f, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	result := CheckDirectoryAccess("test", f)
	if result.Passed {
		t.Fatal("expected failure for file path")
	}
}

func TestCheckManifest_OK(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	result := CheckManifest(context.Background(), srv.URL)
	if !result.Passed {
		t.Fatalf("expected pass, got: %s", result.Detail)
	}
}

func TestCheckManifest_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	result := CheckManifest(context.Background(), srv.URL)
	if result.Passed {
		t.Fatal("expected failure for 500 response")
	}
}

func TestCheckManifest_MissingURL(t *testing.T) {
	result := CheckManifest(context.Background(), "  ")
	if result.Passed {
		t.Fatal("expected failure for blank url")
	}
}

func TestRunLocalCreatesDirectories(t *testing.T) {
	cfg := testsupport.NewConfig(t)

	results := RunLocal(cfg)
	if len(results) == 0 {
		t.Fatal("expected results")
	}
	if err := FirstFailure(results); err != nil {
		t.Fatalf("expected all local checks to pass: %v", err)
	}
	if _, err := os.Stat(cfg.Paths.DataDir); err != nil {
		t.Fatalf("data directory was not created: %v", err)
	}
}

func TestCheckDatabaseLockHeld(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)

	result := CheckDatabaseLock(cfg.LockPath())
	if result.Passed {
		t.Fatal("expected failure while the store holds the lock")
	}

	if err := store.Close(); err != nil {
		t.Fatalf("close store: %v", err)
	}
	result = CheckDatabaseLock(cfg.LockPath())
	if !result.Passed {
		t.Fatalf("expected released lock to pass: %s", result.Detail)
	}
}

func TestFirstFailure(t *testing.T) {
	results := []Result{
		{Name: "a", Passed: true},
		{Name: "b", Passed: false, Detail: "broken"},
	}
	if err := FirstFailure(results); err == nil {
		t.Fatal("expected error for failed check")
	}
	if err := FirstFailure(results[:1]); err != nil {
		t.Fatalf("expected nil for passing checks: %v", err)
	}
}
