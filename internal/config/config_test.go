package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("STAGE", StageDev)
	t.Setenv("PORT", "7272")
	t.Setenv("GRID_SIZE", "8")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("MIGRATION_DIR", "")
	os.Unsetenv("MIGRATION_DIR")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != 7272 {
		t.Fatalf("expected port: %d\tgot: %d", 7272, cfg.Port)
	}
	if cfg.GridSize != 8 {
		t.Fatalf("expected grid size: %d\tgot: %d", 8, cfg.GridSize)
	}
	if cfg.MigrationDir != "file://db/migration" {
		t.Fatalf("unexpected migration dir: %s", cfg.MigrationDir)
	}
	if cfg.AnalyticsEnabled() {
		t.Fatal("expected analytics to be disabled without DATABASE_URL")
	}
}

func TestLoadFromEnvFile(t *testing.T) {
	for _, key := range []string{"STAGE", "DATABASE_URL", "PORT", "GRID_SIZE"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	envFile := filepath.Join(t.TempDir(), ".env")
	content := "STAGE=dev\nDATABASE_URL=postgres://localhost:5432/placement?sslmode=disable\n"
	if err := os.WriteFile(envFile, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	// godotenv does not override, so clean up what it sets
	t.Cleanup(func() {
		os.Unsetenv("STAGE")
		os.Unsetenv("DATABASE_URL")
	})

	cfg, err := Load(envFile)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Stage != StageDev {
		t.Fatalf("expected stage: %s\tgot: %s", StageDev, cfg.Stage)
	}
	if !cfg.AnalyticsEnabled() {
		t.Fatal("expected analytics to be enabled")
	}
	if cfg.Port != 9191 {
		t.Fatalf("expected default port: %d\tgot: %d", 9191, cfg.Port)
	}
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name     string
		stage    string
		gridSize string
	}{
		{name: "invalid stage", stage: "staging", gridSize: "10"},
		{name: "zero grid size", stage: StageDev, gridSize: "0"},
		{name: "grid size not a number", stage: StageDev, gridSize: "ten"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Setenv("STAGE", test.stage)
			t.Setenv("GRID_SIZE", test.gridSize)

			if _, err := Load(filepath.Join(t.TempDir(), "missing.env")); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}
