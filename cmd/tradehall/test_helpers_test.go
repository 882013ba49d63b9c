package main

import (
	"archive/zip"
	"bytes"
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

type cliTestEnv struct {
	configPath string
	dataDir    string
}

// setupCLIEnv isolates HOME and writes a config.toml pointing at a temp
// data directory. The returned env's configPath flows in via --config.
func setupCLIEnv(t *testing.T) *cliTestEnv {
	t.Helper()

	base := t.TempDir()
	homeDir := filepath.Join(base, "home")
	if err := os.MkdirAll(homeDir, 0o755); err != nil {
		t.Fatalf("mkdir home: %v", err)
	}
	t.Setenv("HOME", homeDir)

	dataDir := filepath.Join(base, "data")
	configPath := filepath.Join(base, "config.toml")
	writeTestConfig(t, configPath, dataDir, "")

	return &cliTestEnv{configPath: configPath, dataDir: dataDir}
}

func writeTestConfig(t *testing.T, path, dataDir, manifestURL string) {
	t.Helper()
	content := fmt.Sprintf("[paths]\ndata_dir = %q\n", dataDir)
	if manifestURL != "" {
		content += fmt.Sprintf("\n[loader]\nmanifest_url = %q\n", manifestURL)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
}

func runCLI(t *testing.T, env *cliTestEnv, stdin string, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(append([]string{"--config", env.configPath}, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func requireContains(t *testing.T, output, substr string) {
	t.Helper()
	if !strings.Contains(output, substr) {
		t.Fatalf("expected %q to contain %q", output, substr)
	}
}

// newManifestServer serves a minimal piston-meta tree whose client archive
// declares mending, sharpness, and the librarian and cleric jobs.
func newManifestServer(t *testing.T) *httptest.Server {
	t.Helper()

	archive := buildClientArchive(t)
	sum := sha1.Sum(archive)
	shaHex := hex.EncodeToString(sum[:])

	mux := http.NewServeMux()
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	mux.HandleFunc("/manifest.json", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, `{
			"latest": {"release": "1.21.4"},
			"versions": [{"id": "1.21.4", "type": "release", "url": "%s/1.21.4.json"}]
		}`, server.URL)
	})
	mux.HandleFunc("/1.21.4.json", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, `{
			"downloads": {"client": {"url": "%s/client.jar", "sha1": "%s", "size": %d}}
		}`, server.URL, shaHex, len(archive))
	})
	mux.HandleFunc("/client.jar", func(w http.ResponseWriter, r *http.Request) {
		w.Write(archive)
	})
	return server
}

func buildClientArchive(t *testing.T) []byte {
	t.Helper()

	files := map[string]string{
		"data/minecraft/tags/enchantment/tradeable.json": `{
			"values": ["minecraft:mending", "minecraft:sharpness"]
		}`,
		"data/minecraft/enchantment/mending.json": `{
			"description": {"translate": "enchantment.minecraft.mending"},
			"max_level": 1,
			"supported_items": "#minecraft:enchantable/durability"
		}`,
		"data/minecraft/enchantment/sharpness.json": `{
			"description": {"translate": "enchantment.minecraft.sharpness"},
			"max_level": 5,
			"supported_items": "#minecraft:enchantable/sword"
		}`,
		"data/minecraft/tags/point_of_interest_type/acquirable_job_site.json": `{
			"values": ["minecraft:librarian", "minecraft:cleric"]
		}`,
	}

	var buf bytes.Buffer
	writer := zip.NewWriter(&buf)
	for name, body := range files {
		entry, err := writer.Create(name)
		if err != nil {
			t.Fatalf("create %s: %v", name, err)
		}
		if _, err := entry.Write([]byte(body)); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close archive: %v", err)
	}
	return buf.Bytes()
}
