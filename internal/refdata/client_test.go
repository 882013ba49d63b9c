package refdata_test

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"tradehall/internal/refdata"
)

// newMetaServer serves a piston-meta style manifest, a version metadata
// document, and the archive bytes at fixed paths.
func newMetaServer(t *testing.T, archive []byte, sha1Hex string) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	mux.HandleFunc("/mc/game/version_manifest.json", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, `{
			"latest": {"release": "1.21.4", "snapshot": "25w07a"},
			"versions": [
				{"id": "25w07a", "type": "snapshot", "url": "%s/v1/25w07a.json"},
				{"id": "1.21.4", "type": "release", "url": "%s/v1/1.21.4.json"}
			]
		}`, server.URL, server.URL)
	})
	mux.HandleFunc("/v1/1.21.4.json", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, `{
			"downloads": {
				"client": {"url": "%s/objects/client.jar", "sha1": "%s", "size": %d}
			}
		}`, server.URL, sha1Hex, len(archive))
	})
	mux.HandleFunc("/objects/client.jar", func(w http.ResponseWriter, r *http.Request) {
		w.Write(archive)
	})
	return server
}

func TestClientFetchPipeline(t *testing.T) {
	archive := buildArchive(t, fixtureFiles())
	sum := sha1.Sum(archive)
	server := newMetaServer(t, archive, hex.EncodeToString(sum[:]))

	client, err := refdata.New(server.URL + "/mc/game/version_manifest.json")
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	ctx := context.Background()

	version, versionURL, err := client.LatestRelease(ctx)
	if err != nil {
		t.Fatalf("LatestRelease failed: %v", err)
	}
	if version != "1.21.4" {
		t.Fatalf("expected release 1.21.4, got %q", version)
	}

	download, err := client.ClientDownload(ctx, versionURL)
	if err != nil {
		t.Fatalf("ClientDownload failed: %v", err)
	}
	if download.Size != int64(len(archive)) {
		t.Fatalf("expected download size %d, got %d", len(archive), download.Size)
	}

	data, err := client.DownloadArchive(ctx, download)
	if err != nil {
		t.Fatalf("DownloadArchive failed: %v", err)
	}
	if len(data) != len(archive) {
		t.Fatalf("expected %d archive bytes, got %d", len(archive), len(data))
	}
}

func TestDownloadArchiveChecksumMismatch(t *testing.T) {
	archive := buildArchive(t, fixtureFiles())
	server := newMetaServer(t, archive, "0000000000000000000000000000000000000000")

	client, err := refdata.New(server.URL + "/mc/game/version_manifest.json")
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	download := refdata.ClientDownload{
		URL:  server.URL + "/objects/client.jar",
		SHA1: "0000000000000000000000000000000000000000",
		Size: int64(len(archive)),
	}
	if _, err := client.DownloadArchive(context.Background(), download); err == nil {
		t.Fatal("expected SHA-1 mismatch error")
	}
}

func TestLatestReleaseMissingFromVersionList(t *testing.T) {
	mux := http.NewServeMux()
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	mux.HandleFunc("/manifest.json", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"latest": {"release": "1.21.4"}, "versions": []}`)
	})

	client, err := refdata.New(server.URL + "/manifest.json")
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if _, _, err := client.LatestRelease(context.Background()); err == nil {
		t.Fatal("expected error when release is missing from version list")
	}
}

func TestNewRequiresManifestURL(t *testing.T) {
	if _, err := refdata.New("   "); err == nil {
		t.Fatal("expected error for blank manifest url")
	}
}
