package main

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"movieshows/internal/config"
	"movieshows/internal/media"
	"movieshows/internal/testsupport"
)

func TestCatalogListRendersTable(t *testing.T) {
	env := setupCLITestEnv(t, config.BackendSQLite)
	env.writeCatalog(t)

	out := mustRunCLI(t, env, "catalog", "list")
	requireContains(t, out, "The Matrix")
	requireContains(t, out, "Breaking Bad")
	requireContains(t, out, "3 of 3 items")
}

func TestCatalogListFilterAndSearch(t *testing.T) {
	env := setupCLITestEnv(t, config.BackendSQLite)
	env.writeCatalog(t)

	out := mustRunCLI(t, env, "catalog", "list", "--filter", "tv")
	requireContains(t, out, "Breaking Bad")
	requireNotContains(t, out, "The Matrix")

	out = mustRunCLI(t, env, "catalog", "list", "--filter", "coming-soon")
	requireContains(t, out, "Dune")
	requireNotContains(t, out, "Breaking Bad")

	out = mustRunCLI(t, env, "catalog", "list", "--search", "MATRIX")
	requireContains(t, out, "1 of 3 items")

	out = mustRunCLI(t, env, "catalog", "list", "--filter", "tv", "--search", "matrix")
	requireContains(t, out, "No content matches your filters.")
}

func TestCatalogListRejectsUnknownFilter(t *testing.T) {
	env := setupCLITestEnv(t, config.BackendMemory)
	if _, _, err := runCLI(t, []string{"catalog", "list", "--filter", "anime"}, env.configPath); err == nil {
		t.Fatal("expected error for unknown filter")
	}
}

func TestCatalogListJSON(t *testing.T) {
	env := setupCLITestEnv(t, config.BackendMemory)
	env.writeCatalog(t)

	out := mustRunCLI(t, env, "catalog", "list", "--json")
	var items []media.Item
	if err := json.Unmarshal([]byte(out), &items); err != nil {
		t.Fatalf("decode json output: %v\n%s", err, out)
	}
	if len(items) != 3 || items[0].ID != "m1" || items[2].Type != media.KindTV {
		t.Fatalf("unexpected items: %+v", items)
	}
	if items[0].Raw != nil {
		t.Fatal("expected raw records to be stripped from JSON output")
	}
}

func TestCatalogEmptyStateMessage(t *testing.T) {
	env := setupCLITestEnv(t, config.BackendMemory)
	out := mustRunCLI(t, env, "catalog", "list")
	requireContains(t, out, "No content loaded")
}

func TestCatalogShow(t *testing.T) {
	env := setupCLITestEnv(t, config.BackendMemory)
	env.writeCatalog(t)

	out := mustRunCLI(t, env, "catalog", "show", "t1")
	requireContains(t, out, "Breaking Bad")
	requireContains(t, out, "TV Show")
	requireContains(t, out, media.PlaceholderThumbnail)

	if _, _, err := runCLI(t, []string{"catalog", "show", "missing"}, env.configPath); err == nil {
		t.Fatal("expected error for unknown id")
	}
}

func TestSourceFlagOverridesCandidates(t *testing.T) {
	env := setupCLITestEnv(t, config.BackendMemory)
	env.writeCatalog(t)
	custom := filepath.Join(env.siteDir, "custom.json")
	testsupport.WritePayload(t, custom, []any{map[string]any{"id": "x1", "title": "Override Only"}})

	out := mustRunCLI(t, env, "--source", custom, "catalog", "list")
	requireContains(t, out, "Override Only")
	requireNotContains(t, out, "The Matrix")
}

func TestSourcesReportsAttempts(t *testing.T) {
	env := setupCLITestEnv(t, config.BackendMemory)
	env.writeCatalog(t)

	out := mustRunCLI(t, env, "sources", "--json")
	var attempts []attemptJSON
	if err := json.Unmarshal([]byte(out), &attempts); err != nil {
		t.Fatalf("decode json output: %v\n%s", err, out)
	}
	// content.json, catalog.json, data.json fail; data/content.json loads.
	if len(attempts) != 4 {
		t.Fatalf("expected 4 attempts, got %+v", attempts)
	}
	last := attempts[len(attempts)-1]
	if last.Outcome != "loaded" || last.Items != 3 || last.Name != "./data/content.json" {
		t.Fatalf("unexpected final attempt %+v", last)
	}
	for _, attempt := range attempts[:3] {
		if attempt.Outcome != "failed" || attempt.Error == "" {
			t.Fatalf("expected failed attempt, got %+v", attempt)
		}
	}

	out = mustRunCLI(t, env, "sources")
	requireContains(t, out, "Loaded 3 items from")
}

func TestCatalogListHelpNamesFilters(t *testing.T) {
	env := setupCLITestEnv(t, config.BackendMemory)
	out := mustRunCLI(t, env, "catalog", "list", "--help")
	requireContains(t, out, "Filter: all, movie, tv, comingSoon")

	out = mustRunCLI(t, env, "catalog", "list", "--filter", "comingSoon")
	requireContains(t, out, "No content loaded")
}
