package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("writing config file: %v", err)
	}
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Storage.Path == "" {
		t.Error("Default() storage path is empty")
	}
	if !strings.HasSuffix(cfg.Storage.Path, filepath.Join(".prepscope", "prepscope.db")) {
		t.Errorf("Default() storage path = %q, want ~/.prepscope/prepscope.db", cfg.Storage.Path)
	}
	if cfg.Taxonomy.Path != "" {
		t.Errorf("Default() taxonomy path = %q, want built-in (empty)", cfg.Taxonomy.Path)
	}
	if cfg.Analyze.ShortJDWarning != 200 {
		t.Errorf("Default() short JD warning = %d, want 200", cfg.Analyze.ShortJDWarning)
	}
}

func TestLoad_FullConfig(t *testing.T) {
	path := writeConfig(t, `
storage:
  path: /tmp/custom.db
taxonomy:
  path: /tmp/skills.yaml
analyze:
  short_jd_warning: 500
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Storage.Path != "/tmp/custom.db" {
		t.Errorf("storage path = %q, want /tmp/custom.db", cfg.Storage.Path)
	}
	if cfg.Taxonomy.Path != "/tmp/skills.yaml" {
		t.Errorf("taxonomy path = %q, want /tmp/skills.yaml", cfg.Taxonomy.Path)
	}
	if cfg.Analyze.ShortJDWarning != 500 {
		t.Errorf("short JD warning = %d, want 500", cfg.Analyze.ShortJDWarning)
	}
}

func TestLoad_AbsentFieldsFallBackToDefaults(t *testing.T) {
	path := writeConfig(t, `
storage:
  path: /tmp/custom.db
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Analyze.ShortJDWarning != 200 {
		t.Errorf("short JD warning = %d, want default 200", cfg.Analyze.ShortJDWarning)
	}
	if cfg.Taxonomy.Path != "" {
		t.Errorf("taxonomy path = %q, want empty", cfg.Taxonomy.Path)
	}
}

func TestLoad_ExpandsEnvVars(t *testing.T) {
	t.Setenv("PREPSCOPE_TEST_DIR", "/data/prepscope")
	path := writeConfig(t, `
storage:
  path: ${PREPSCOPE_TEST_DIR}/state.db
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Storage.Path != "/data/prepscope/state.db" {
		t.Errorf("storage path = %q, want /data/prepscope/state.db", cfg.Storage.Path)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Load() error = nil for missing file")
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := writeConfig(t, "storage: [not: valid")
	if _, err := Load(path); err == nil {
		t.Error("Load() error = nil for invalid YAML")
	}
}

func TestLoad_NegativeWarningThreshold(t *testing.T) {
	path := writeConfig(t, `
analyze:
  short_jd_warning: -5
`)
	if _, err := Load(path); err == nil {
		t.Error("Load() error = nil for negative short_jd_warning")
	}
}
