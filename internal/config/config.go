// Package config loads user preferences for the document generator from a
// JSON config file with environment-variable overrides.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Config holds user preferences.
type Config struct {
	Provider string `json:"provider"`           // "deepseek", "openai", or "gemini"
	APIKey   string `json:"api_key"`
	BaseURL  string `json:"base_url,omitempty"` // completion endpoint override
	Model    string `json:"model,omitempty"`    // model override

	RAGServerURL string `json:"rag_server_url"` // retrieval collaborator endpoint
	QueryMode    string `json:"query_mode"`     // retrieval query mode
	CorpusDir    string `json:"corpus_dir"`     // directory of reference documents

	Timeouts Timeouts `json:"timeouts"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Provider:     "deepseek",
		RAGServerURL: "http://localhost:9621",
		QueryMode:    "naive",
		CorpusDir:    "./corpus",
		Timeouts:     DefaultTimeouts(),
	}
}

// ConfigDir returns the directory where config is stored. A project-local
// .sarabun directory wins over the home-level one.
func ConfigDir() (string, error) {
	if cwd, err := os.Getwd(); err == nil {
		localDir := filepath.Join(cwd, ".sarabun")
		if stat, err := os.Stat(localDir); (err == nil && stat.IsDir()) || os.IsNotExist(err) {
			return localDir, nil
		}
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".sarabun"), nil
}

// ConfigFile returns the full path to the config file.
func ConfigFile() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// Load reads the configuration from disk and applies environment
// overrides. A missing file yields the defaults, not an error.
func Load() (Config, error) {
	cfg := DefaultConfig()

	path, err := ConfigFile()
	if err != nil {
		return applyEnv(cfg), err
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return applyEnv(cfg), nil
	}
	if err != nil {
		return applyEnv(cfg), err
	}

	if err := json.Unmarshal(data, &cfg); err != nil {
		return applyEnv(DefaultConfig()), err
	}
	if cfg.Timeouts == (Timeouts{}) {
		cfg.Timeouts = DefaultTimeouts()
	}

	return applyEnv(cfg), nil
}

// applyEnv lets environment variables override file values.
func applyEnv(cfg Config) Config {
	if v := os.Getenv("DEEPSEEK_API_KEY"); v != "" && cfg.APIKey == "" {
		cfg.Provider = "deepseek"
		cfg.APIKey = v
	}
	if v := os.Getenv("SARABUN_RAG_URL"); v != "" {
		cfg.RAGServerURL = v
	}
	if v := os.Getenv("SARABUN_CORPUS_DIR"); v != "" {
		cfg.CorpusDir = v
	}
	return cfg
}

// Save writes the configuration to disk.
func Save(cfg Config) error {
	dir, err := ConfigDir()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}

	path := filepath.Join(dir, "config.json")
	return os.WriteFile(path, data, 0600)
}
