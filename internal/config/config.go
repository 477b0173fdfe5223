// Package config provides configuration loading and structs for the Kotae server.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the application.
type Config struct {
	Debug      bool             `yaml:"debug"`
	Server     ServerConfig     `yaml:"server"`
	Embedding  EmbeddingConfig  `yaml:"embedding"`
	Generation GenerationConfig `yaml:"generation"`
	Retrieval  RetrievalConfig  `yaml:"retrieval"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// EmbeddingConfig holds settings for the embedding collaborator (an
// OpenAI-compatible /embeddings endpoint).
type EmbeddingConfig struct {
	BaseURL            string `yaml:"base_url"`
	Model              string `yaml:"model"`
	APIKeyEnv          string `yaml:"api_key_env"`
	TimeoutSecs        int    `yaml:"timeout_secs"`
	ConnectTimeoutSecs int    `yaml:"connect_timeout_secs"`
	CacheSize          int    `yaml:"cache_size"`
}

// GenerationConfig holds settings for the text generation collaborator
// (an OpenAI-compatible chat completions endpoint).
type GenerationConfig struct {
	URL                string `yaml:"url"`
	Model              string `yaml:"model"`
	APIKeyEnv          string `yaml:"api_key_env"`
	TimeoutSecs        int    `yaml:"timeout_secs"`
	ConnectTimeoutSecs int    `yaml:"connect_timeout_secs"`
}

// RetrievalConfig holds chunking and retrieval settings.
type RetrievalConfig struct {
	ChunkSize             int     `yaml:"chunk_size"`
	ChunkOverlap          int     `yaml:"chunk_overlap"`
	TopK                  int     `yaml:"top_k"`
	KeywordTopK           int     `yaml:"keyword_top_k"`
	MinSimilarity         float64 `yaml:"min_similarity"`
	SemanticHistoryWindow int     `yaml:"semantic_history_window"`
	KeywordHistoryWindow  int     `yaml:"keyword_history_window"`
}

// Load reads and parses the config file at path and applies defaults.
// Returns an error if the file cannot be read or parsed.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	ApplyDefaults(&cfg)
	return &cfg, nil
}

// Default returns a config with all defaults applied, for running without a config file.
func Default() *Config {
	cfg := &Config{}
	ApplyDefaults(cfg)
	return cfg
}
