package models

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadBatchConfig(t *testing.T) {
	content := `urls:
  - https://example.com/a
  - https://example.com/b
worker_count: 8
cache_dir: /tmp/webtriage-cache
cache_max_age: 12h
llm:
  enabled: true
  api_key: sk-test
  model: gpt-4o-mini
`
	path := filepath.Join(t.TempDir(), "batch.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	config, err := LoadBatchConfig(path)
	if err != nil {
		t.Fatalf("LoadBatchConfig() error = %v", err)
	}

	if len(config.URLs) != 2 {
		t.Errorf("URLs count = %d, want 2", len(config.URLs))
	}
	if config.WorkerCount != 8 {
		t.Errorf("WorkerCount = %d, want 8", config.WorkerCount)
	}
	if config.CacheMaxAge != "12h" {
		t.Errorf("CacheMaxAge = %q, want %q", config.CacheMaxAge, "12h")
	}
	if !config.LLM.Enabled {
		t.Error("LLM.Enabled = false, want true")
	}
	if config.LLM.APIKey != "sk-test" {
		t.Errorf("LLM.APIKey = %q, want %q", config.LLM.APIKey, "sk-test")
	}
}

func TestLoadBatchConfig_Defaults(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-from-env")

	path := filepath.Join(t.TempDir(), "batch.yaml")
	if err := os.WriteFile(path, []byte("urls:\n  - https://example.com\n"), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	config, err := LoadBatchConfig(path)
	if err != nil {
		t.Fatalf("LoadBatchConfig() error = %v", err)
	}

	if config.WorkerCount != 4 {
		t.Errorf("WorkerCount = %d, want default 4", config.WorkerCount)
	}
	if config.LLM.APIKey != "sk-from-env" {
		t.Errorf("LLM.APIKey = %q, want env fallback", config.LLM.APIKey)
	}
}

func TestLoadBatchConfig_MissingFile(t *testing.T) {
	if _, err := LoadBatchConfig(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("LoadBatchConfig() with missing file should return error")
	}
}
