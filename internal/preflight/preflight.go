package preflight

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gofrs/flock"
	"golang.org/x/sys/unix"

	"tradehall/internal/config"
)

// Result reports the outcome of a single preflight check.
type Result struct {
	Name   string
	Passed bool
	Detail string
}

// RunLocal executes the filesystem checks needed before any command that
// opens the trading database. Missing directories are created first so a
// fresh install passes.
func RunLocal(cfg *config.Config) []Result {
	if cfg == nil {
		return nil
	}
	if err := cfg.EnsureDirectories(); err != nil {
		return []Result{{Name: "Data directory", Detail: fmt.Sprintf("%s (error: %v)", cfg.Paths.DataDir, err)}}
	}
	return []Result{
		CheckDirectoryAccess("Data directory", cfg.Paths.DataDir),
		CheckDirectoryAccess("Log directory", cfg.LogDir()),
		CheckDatabaseLock(cfg.LockPath()),
	}
}

// CheckDatabaseLock reports whether the database lock is free. A lock file
// left behind by a dead process still locks cleanly and passes.
func CheckDatabaseLock(lockPath string) Result {
	const name = "Database lock"

	if _, err := os.Stat(lockPath); err != nil {
		if os.IsNotExist(err) {
			return Result{Name: name, Passed: true, Detail: "not held"}
		}
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: stat: %v)", lockPath, err)}
	}

	lock := flock.New(lockPath)
	ok, err := lock.TryLock()
	if err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: %v)", lockPath, err)}
	}
	if !ok {
		return Result{Name: name, Detail: "held by another tradehall process"}
	}
	_ = lock.Unlock()
	return Result{Name: name, Passed: true, Detail: "stale lock file is releasable"}
}

// RunSync executes every check the sync command needs: the local checks
// plus manifest endpoint reachability.
func RunSync(ctx context.Context, cfg *config.Config) []Result {
	if cfg == nil {
		return nil
	}
	results := RunLocal(cfg)
	results = append(results, CheckManifest(ctx, cfg.Loader.ManifestURL))
	return results
}

// CheckDirectoryAccess verifies that the directory exists and is readable,
// writable, and traversable.
func CheckDirectoryAccess(name, path string) Result {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Result{Name: name, Detail: fmt.Sprintf("%s (error: does not exist)", path)}
		}
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: stat: %v)", path, err)}
	}
	if !info.IsDir() {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: is not a directory)", path)}
	}
	if err := unix.Access(path, unix.R_OK|unix.W_OK|unix.X_OK); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: insufficient permissions: %v)", path, err)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (read/write ok)", path)}
}

// CheckManifest verifies that the version manifest endpoint answers.
// It uses a 10-second timeout and a single attempt.
func CheckManifest(ctx context.Context, manifestURL string) Result {
	const name = "Version manifest"

	url := strings.TrimSpace(manifestURL)
	if url == "" {
		return Result{Name: name, Detail: "missing url"}
	}

	checkCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client := &http.Client{Timeout: 10 * time.Second}
	req, err := http.NewRequestWithContext(checkCtx, http.MethodHead, url, nil)
	if err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("reachability check failed (%v)", err)}
	}

	resp, err := client.Do(req)
	if err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("reachability check failed (%v)", err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Result{Name: name, Detail: fmt.Sprintf("reachability check failed (%d)", resp.StatusCode)}
	}
	return Result{Name: name, Passed: true, Detail: "Reachable"}
}

// FirstFailure returns an error describing the first failed check, or nil
// when every check passed.
func FirstFailure(results []Result) error {
	for _, result := range results {
		if !result.Passed {
			return errors.New(result.Name + ": " + result.Detail)
		}
	}
	return nil
}
