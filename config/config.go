package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds everything the process needs, built once at startup and passed
// into the adapters. Nothing reads the environment after Load returns.
type Config struct {
	LLM        *LLMConfig      `json:"llm,omitempty"`
	Wikipedia  WikipediaConfig `json:"wikipedia,omitempty"`
	MinWords   int             `json:"min_words,omitempty"`
	ServerAddr string          `json:"server_addr,omitempty"`
}

// LLMConfig configures the generation model (OpenAI-compatible endpoints).
type LLMConfig struct {
	Provider string `json:"provider,omitempty"`
	Model    string `json:"model,omitempty"`
	APIKey   string `json:"api_key,omitempty"`
	BaseURL  string `json:"base_url,omitempty"`
}

// WikipediaConfig configures the research lookup.
type WikipediaConfig struct {
	BaseURL string `json:"base_url,omitempty"`
	// Contact is required by the Wikimedia API usage policy (an email or URL
	// identifying the operator).
	Contact string `json:"contact,omitempty"`
}

// Load reads JSON config from disk and applies environment overrides.
// Env files are loaded first: .env.local (highest) → .env → system environment.
func Load(path string) (Config, error) {
	for _, file := range []string{".env.local", ".env"} {
		if err := godotenv.Load(file); err != nil && !os.IsNotExist(err) {
			return Config{}, fmt.Errorf("failed to load %s: %w", file, err)
		}
	}

	var cfg Config
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return Config{}, err
		}
		// Config file is optional; environment alone can carry everything.
	} else if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse %s: %w", path, err)
	}

	applyEnv(&cfg)
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("OPENAI_API_KEY"); v != "" {
		if cfg.LLM == nil {
			cfg.LLM = &LLMConfig{Provider: "openai"}
		}
		cfg.LLM.APIKey = v
	}
	if cfg.LLM != nil {
		if v := os.Getenv("OPENAI_MODEL"); v != "" {
			cfg.LLM.Model = v
		}
		if v := os.Getenv("OPENAI_BASE_URL"); v != "" {
			cfg.LLM.BaseURL = v
		}
	}
	if v := os.Getenv("WIKIPEDIA_CONTACT"); v != "" {
		cfg.Wikipedia.Contact = v
	}
	if v := os.Getenv("WIKIPEDIA_BASE_URL"); v != "" {
		cfg.Wikipedia.BaseURL = v
	}
	if v := os.Getenv("MIN_WORDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.MinWords = n
		}
	}
	if v := os.Getenv("SERVER_ADDR"); v != "" {
		cfg.ServerAddr = v
	}
}
