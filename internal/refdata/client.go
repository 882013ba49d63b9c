package refdata

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"tradehall/internal/config"
)

// Manifest models the piston-meta version manifest.
type Manifest struct {
	Latest struct {
		Release  string `json:"release"`
		Snapshot string `json:"snapshot"`
	} `json:"latest"`
	Versions []ManifestVersion `json:"versions"`
}

// ManifestVersion is one entry in the manifest's version list.
type ManifestVersion struct {
	ID   string `json:"id"`
	Type string `json:"type"`
	URL  string `json:"url"`
}

// ClientDownload describes a release's client archive.
type ClientDownload struct {
	URL  string `json:"url"`
	SHA1 string `json:"sha1"`
	Size int64  `json:"size"`
}

// Client fetches version metadata and the game client archive.
type Client struct {
	manifestURL    string
	httpClient     *http.Client
	downloadClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the client used for manifest and metadata requests.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// WithDownloadClient overrides the client used for the archive download,
// which needs a far longer timeout than the metadata requests.
func WithDownloadClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.downloadClient = client
		}
	}
}

// New creates a piston-meta client.
func New(manifestURL string, opts ...Option) (*Client, error) {
	manifestURL = strings.TrimSpace(manifestURL)
	if manifestURL == "" {
		return nil, errors.New("manifest url required")
	}
	client := &Client{
		manifestURL:    manifestURL,
		httpClient:     &http.Client{Timeout: 30 * time.Second},
		downloadClient: &http.Client{Timeout: 5 * time.Minute},
	}
	for _, opt := range opts {
		opt(client)
	}
	return client, nil
}

// NewFromConfig creates a client honoring the configured timeouts.
func NewFromConfig(cfg *config.Config) (*Client, error) {
	return New(
		cfg.Loader.ManifestURL,
		WithHTTPClient(&http.Client{Timeout: time.Duration(cfg.Loader.RequestTimeout) * time.Second}),
		WithDownloadClient(&http.Client{Timeout: time.Duration(cfg.Loader.DownloadTimeout) * time.Second}),
	)
}

// LatestRelease fetches the manifest and returns the latest release version
// id along with the URL of its version metadata document.
func (c *Client) LatestRelease(ctx context.Context) (string, string, error) {
	var manifest Manifest
	if err := c.getJSON(ctx, c.manifestURL, &manifest); err != nil {
		return "", "", fmt.Errorf("fetch manifest: %w", err)
	}

	release := manifest.Latest.Release
	if release == "" {
		return "", "", errors.New("manifest has no latest release")
	}
	for _, version := range manifest.Versions {
		if version.ID == release {
			return release, version.URL, nil
		}
	}
	return "", "", fmt.Errorf("version %q missing from manifest version list", release)
}

// ClientDownload fetches a version metadata document and returns its client
// archive coordinates.
func (c *Client) ClientDownload(ctx context.Context, versionURL string) (ClientDownload, error) {
	var meta struct {
		Downloads struct {
			Client ClientDownload `json:"client"`
		} `json:"downloads"`
	}
	if err := c.getJSON(ctx, versionURL, &meta); err != nil {
		return ClientDownload{}, fmt.Errorf("fetch version metadata: %w", err)
	}
	if meta.Downloads.Client.URL == "" {
		return ClientDownload{}, errors.New("version metadata has no client download")
	}
	return meta.Downloads.Client, nil
}

// DownloadArchive fetches the client archive into memory and verifies its
// size and SHA-1 digest when the metadata provides them.
func (c *Client) DownloadArchive(ctx context.Context, download ClientDownload) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, download.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	resp, err := c.downloadClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("download archive: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("archive download returned %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read archive: %w", err)
	}

	if download.Size > 0 && int64(len(data)) != download.Size {
		return nil, fmt.Errorf("archive size mismatch: got %d bytes, expected %d", len(data), download.Size)
	}
	if download.SHA1 != "" {
		sum := sha1.Sum(data)
		if !strings.EqualFold(hex.EncodeToString(sum[:]), download.SHA1) {
			return nil, errors.New("archive SHA-1 mismatch")
		}
	}
	return data, nil
}

func (c *Client) getJSON(ctx context.Context, url string, dest any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("request to %s returned %d", url, resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
