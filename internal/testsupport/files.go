package testsupport

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

// WriteFile writes data to path, creating parent directories.
func WriteFile(t testing.TB, path string, data []byte) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

// WritePayload encodes payload as JSON and writes it to path.
func WritePayload(t testing.TB, path string, payload any) {
	t.Helper()

	data, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal payload for %s: %v", path, err)
	}
	WriteFile(t, path, data)
}

// Record builds a raw catalog record with the common fields set.
func Record(id, title, kind string) map[string]any {
	rec := map[string]any{"title": title, "type": kind}
	if id != "" {
		rec["id"] = id
	}
	return rec
}
