package config

import (
	"os"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.UI.MinLoadMillis != 800 {
		t.Errorf("min load = %d, expected 800", cfg.UI.MinLoadMillis)
	}
	if cfg.UI.KeywordLimit != 20 {
		t.Errorf("keyword limit = %d, expected 20", cfg.UI.KeywordLimit)
	}
	if cfg.UI.CompactMode {
		t.Error("compact mode should default off")
	}
	if cfg.DataFile != "" {
		t.Errorf("data file should default empty, got %q", cfg.DataFile)
	}
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("WARROOM_DATA", "/tmp/custom.json")

	cfg := DefaultConfig()
	cfg.ApplyEnv()

	if cfg.DataFile != "/tmp/custom.json" {
		t.Errorf("data file = %q, expected env override", cfg.DataFile)
	}
}

func TestApplyEnvEmptyKeepsExisting(t *testing.T) {
	os.Unsetenv("WARROOM_DATA")

	cfg := DefaultConfig()
	cfg.DataFile = "configured.json"
	cfg.ApplyEnv()

	if cfg.DataFile != "configured.json" {
		t.Errorf("data file = %q, expected configured value kept", cfg.DataFile)
	}
}
