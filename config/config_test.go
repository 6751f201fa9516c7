package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestLoad_FromFile(t *testing.T) {
	path := writeConfig(t, `{
		"llm": {"provider": "openai", "model": "gpt-4o-mini", "api_key": "sk-file"},
		"wikipedia": {"contact": "ops@example.com"},
		"min_words": 400,
		"server_addr": ":9090"
	}`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.LLM == nil || cfg.LLM.APIKey != "sk-file" {
		t.Errorf("llm config not loaded: %+v", cfg.LLM)
	}
	if cfg.Wikipedia.Contact != "ops@example.com" {
		t.Errorf("contact = %q", cfg.Wikipedia.Contact)
	}
	if cfg.MinWords != 400 {
		t.Errorf("min_words = %d", cfg.MinWords)
	}
	if cfg.ServerAddr != ":9090" {
		t.Errorf("server_addr = %q", cfg.ServerAddr)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, `{
		"llm": {"provider": "openai", "model": "gpt-4o-mini", "api_key": "sk-file"},
		"wikipedia": {"contact": "file@example.com"},
		"min_words": 400
	}`)
	t.Setenv("OPENAI_API_KEY", "sk-env")
	t.Setenv("WIKIPEDIA_CONTACT", "env@example.com")
	t.Setenv("MIN_WORDS", "500")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.LLM.APIKey != "sk-env" {
		t.Errorf("api key = %q, want env override", cfg.LLM.APIKey)
	}
	if cfg.Wikipedia.Contact != "env@example.com" {
		t.Errorf("contact = %q, want env override", cfg.Wikipedia.Contact)
	}
	if cfg.MinWords != 500 {
		t.Errorf("min_words = %d, want 500", cfg.MinWords)
	}
}

func TestLoad_MissingFileFallsBackToEnv(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-env")
	t.Setenv("OPENAI_MODEL", "gpt-4o-mini")

	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.json"))
	if err != nil {
		t.Fatalf("missing file should not be fatal: %v", err)
	}
	if cfg.LLM == nil || cfg.LLM.APIKey != "sk-env" || cfg.LLM.Model != "gpt-4o-mini" {
		t.Errorf("env-only config not applied: %+v", cfg.LLM)
	}
	if cfg.LLM.Provider != "openai" {
		t.Errorf("provider = %q, want openai default", cfg.LLM.Provider)
	}
}

func TestLoad_BadMinWordsIgnored(t *testing.T) {
	path := writeConfig(t, `{"min_words": 300}`)
	t.Setenv("MIN_WORDS", "not-a-number")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.MinWords != 300 {
		t.Errorf("min_words = %d, want file value kept", cfg.MinWords)
	}
}
