package refdata

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"tradehall/internal/tradedb"
)

// Summary reports the result of one completed sync.
type Summary struct {
	RunID        string
	GameVersion  string
	Enchantments int
	Jobs         int
	Duration     time.Duration
}

// Loader drives a full reference sync against the trading database.
type Loader struct {
	client *Client
	store  *tradedb.Store
	logger *slog.Logger
}

// NewLoader wires a loader. A nil logger falls back to slog.Default.
func NewLoader(client *Client, store *tradedb.Store, logger *slog.Logger) (*Loader, error) {
	if client == nil || store == nil {
		return nil, errors.New("loader requires client and store")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{client: client, store: store, logger: logger}, nil
}

// Sync replaces the enchantment and job reference tables with data extracted
// from the latest release's client archive.
func (l *Loader) Sync(ctx context.Context) (Summary, error) {
	runID := uuid.NewString()
	logger := l.logger.With("run_id", runID)
	started := time.Now()

	logger.Info("resolving latest release")
	version, versionURL, err := l.client.LatestRelease(ctx)
	if err != nil {
		return Summary{}, err
	}
	logger.Info("found latest release", "version", version)

	download, err := l.client.ClientDownload(ctx, versionURL)
	if err != nil {
		return Summary{}, err
	}

	logger.Info("downloading client archive", "url", download.URL, "size", download.Size)
	archive, err := l.client.DownloadArchive(ctx, download)
	if err != nil {
		return Summary{}, err
	}

	logger.Info("extracting reference data")
	enchantments, jobs, err := ExtractReference(archive)
	if err != nil {
		return Summary{}, err
	}
	if len(enchantments) == 0 || len(jobs) == 0 {
		return Summary{}, fmt.Errorf("no reference data extracted from version %s; database not updated", version)
	}

	load := tradedb.RefLoad{
		RunID:       runID,
		GameVersion: version,
		LoadedAt:    time.Now().UTC(),
	}
	if err := l.store.ReplaceReferenceData(ctx, load, enchantments, jobs); err != nil {
		return Summary{}, err
	}

	summary := Summary{
		RunID:        runID,
		GameVersion:  version,
		Enchantments: len(enchantments),
		Jobs:         len(jobs),
		Duration:     time.Since(started),
	}
	logger.Info("reference data loaded",
		"version", summary.GameVersion,
		"enchantments", summary.Enchantments,
		"jobs", summary.Jobs,
		"duration", summary.Duration,
	)
	return summary, nil
}
