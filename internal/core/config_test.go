package core

import (
	"os"
	"path/filepath"
	"testing"
)

func TestConfigurationManager_Defaults(t *testing.T) {
	cfg, err := NewConfigurationManager(t.TempDir()).Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.LLM.Model != "gpt-4o-mini" {
		t.Errorf("model = %q", cfg.LLM.Model)
	}
	if cfg.LLM.APIKeyEnv != "OPENAI_API_KEY" {
		t.Errorf("api key env = %q", cfg.LLM.APIKeyEnv)
	}
	if cfg.OfflineMode {
		t.Error("offline mode should default off")
	}
	if cfg.DataDir != "data" {
		t.Errorf("data dir = %q", cfg.DataDir)
	}
	if cfg.FollowUpHorizonDays != DefaultFollowUpHorizonDays {
		t.Errorf("horizon = %d", cfg.FollowUpHorizonDays)
	}
}

func TestConfigurationManager_FileOverrides(t *testing.T) {
	dir := t.TempDir()
	content := `llm:
  model: gpt-4o
  base_url: http://localhost:8080/v1
offline_mode: true
data:
  dir: fixtures
follow_up:
  horizon_days: 14
`
	if err := os.WriteFile(filepath.Join(dir, ".stewardconfig"), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := NewConfigurationManager(dir).Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.LLM.Model != "gpt-4o" {
		t.Errorf("model = %q", cfg.LLM.Model)
	}
	if cfg.LLM.BaseURL != "http://localhost:8080/v1" {
		t.Errorf("base url = %q", cfg.LLM.BaseURL)
	}
	if cfg.LLM.APIKeyEnv != "OPENAI_API_KEY" {
		t.Errorf("unset keys keep their defaults, got %q", cfg.LLM.APIKeyEnv)
	}
	if !cfg.OfflineMode {
		t.Error("offline mode not applied")
	}
	if cfg.DataDir != "fixtures" {
		t.Errorf("data dir = %q", cfg.DataDir)
	}
	if cfg.FollowUpHorizonDays != 14 {
		t.Errorf("horizon = %d", cfg.FollowUpHorizonDays)
	}
}

func TestConfigurationManager_InvalidFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ".stewardconfig"), []byte("llm: [broken"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := NewConfigurationManager(dir).Load(); err == nil {
		t.Fatal("expected a parse error")
	}
}
