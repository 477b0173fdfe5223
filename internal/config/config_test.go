package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Server.Port != 8080 {
		t.Errorf("Port=%d", cfg.Server.Port)
	}
	if cfg.Retrieval.ChunkSize != 500 || cfg.Retrieval.ChunkOverlap != 100 {
		t.Errorf("chunking defaults: size=%d overlap=%d", cfg.Retrieval.ChunkSize, cfg.Retrieval.ChunkOverlap)
	}
	if cfg.Retrieval.TopK != 4 || cfg.Retrieval.MinSimilarity != 0.2 {
		t.Errorf("retrieval defaults: topK=%d minSim=%f", cfg.Retrieval.TopK, cfg.Retrieval.MinSimilarity)
	}
	if cfg.Retrieval.SemanticHistoryWindow != 8 || cfg.Retrieval.KeywordHistoryWindow != 6 {
		t.Errorf("history windows: %d/%d", cfg.Retrieval.SemanticHistoryWindow, cfg.Retrieval.KeywordHistoryWindow)
	}
	if cfg.Generation.APIKeyEnv != "GROQ_API_KEY" {
		t.Errorf("APIKeyEnv=%s", cfg.Generation.APIKeyEnv)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
debug: true
server:
  port: 9090
retrieval:
  chunk_size: 200
  top_k: 2
`
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if !cfg.Debug {
		t.Error("Debug should be true")
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("Port=%d", cfg.Server.Port)
	}
	if cfg.Retrieval.ChunkSize != 200 || cfg.Retrieval.TopK != 2 {
		t.Errorf("overrides not applied: size=%d topK=%d", cfg.Retrieval.ChunkSize, cfg.Retrieval.TopK)
	}
	// Unset values still get defaults.
	if cfg.Server.Host != "localhost" {
		t.Errorf("Host=%s", cfg.Server.Host)
	}
	if cfg.Retrieval.ChunkOverlap != 100 {
		t.Errorf("ChunkOverlap=%d", cfg.Retrieval.ChunkOverlap)
	}
}

func TestLoad_Missing(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing config file")
	}
}
