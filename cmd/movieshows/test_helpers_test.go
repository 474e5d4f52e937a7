package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"movieshows/internal/testsupport"
)

type cliTestEnv struct {
	configPath string
	siteDir    string
	stateDir   string
	logDir     string
}

func clearSourceEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"MOVIESHOWS_SOURCE", "MOVIESHOWS_CONTENT_FILE", "MOVIESHOWS_CONTENT"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func setupCLITestEnv(t *testing.T, backend string) *cliTestEnv {
	t.Helper()
	clearSourceEnv(t)

	base := t.TempDir()
	t.Setenv("HOME", filepath.Join(base, "home"))
	env := &cliTestEnv{
		configPath: filepath.Join(base, "movieshows.toml"),
		siteDir:    filepath.Join(base, "site"),
		stateDir:   filepath.Join(base, "state"),
		logDir:     filepath.Join(base, "logs"),
	}
	content := fmt.Sprintf(
		"[paths]\nstate_dir = %q\nlog_dir = %q\n\n[source]\nbase = %q\n\n[state]\nbackend = %q\n",
		env.stateDir, env.logDir, env.siteDir, backend,
	)
	testsupport.WriteFile(t, env.configPath, []byte(content))
	return env
}

// writeCatalog publishes a payload at site/data/content.json.
func (e *cliTestEnv) writeCatalog(t *testing.T) {
	t.Helper()
	testsupport.WritePayload(t, filepath.Join(e.siteDir, "data", "content.json"), map[string]any{
		"movies": []any{
			map[string]any{"id": "m1", "title": "The Matrix", "year": 1999, "videoUrl": "https://video/matrix.mp4"},
			map[string]any{"id": "m2", "title": "Dune", "status": "Coming Soon"},
		},
		"tv": []any{
			map[string]any{"id": "t1", "name": "Breaking Bad", "number_of_seasons": 5},
		},
	})
}

func runCLI(t *testing.T, args []string, configPath string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	var flags []string
	if configPath != "" {
		flags = append(flags, "--config", configPath)
	}
	cmd.SetArgs(append(flags, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func mustRunCLI(t *testing.T, env *cliTestEnv, args ...string) string {
	t.Helper()
	out, _, err := runCLI(t, args, env.configPath)
	if err != nil {
		t.Fatalf("movieshows %s: %v", strings.Join(args, " "), err)
	}
	return out
}

func requireContains(t *testing.T, output, substr string) {
	t.Helper()
	if !strings.Contains(output, substr) {
		t.Fatalf("expected %q to contain %q", output, substr)
	}
}

func requireNotContains(t *testing.T, output, substr string) {
	t.Helper()
	if strings.Contains(output, substr) {
		t.Fatalf("expected %q not to contain %q", output, substr)
	}
}
