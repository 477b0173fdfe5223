package config

// ApplyDefaults sets default values for any zero values in cfg.
func ApplyDefaults(cfg *Config) {
	if cfg.Server.Host == "" {
		cfg.Server.Host = "localhost"
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Embedding.BaseURL == "" {
		cfg.Embedding.BaseURL = "https://api.openai.com/v1"
	}
	if cfg.Embedding.Model == "" {
		cfg.Embedding.Model = "text-embedding-3-small"
	}
	if cfg.Embedding.APIKeyEnv == "" {
		cfg.Embedding.APIKeyEnv = "OPENAI_API_KEY"
	}
	if cfg.Embedding.TimeoutSecs == 0 {
		cfg.Embedding.TimeoutSecs = 30
	}
	if cfg.Embedding.ConnectTimeoutSecs == 0 {
		cfg.Embedding.ConnectTimeoutSecs = 10
	}
	if cfg.Embedding.CacheSize == 0 {
		cfg.Embedding.CacheSize = 10000
	}
	if cfg.Generation.URL == "" {
		cfg.Generation.URL = "https://api.groq.com/openai/v1/chat/completions"
	}
	if cfg.Generation.Model == "" {
		cfg.Generation.Model = "llama3-70b-8192"
	}
	if cfg.Generation.APIKeyEnv == "" {
		cfg.Generation.APIKeyEnv = "GROQ_API_KEY"
	}
	if cfg.Generation.TimeoutSecs == 0 {
		cfg.Generation.TimeoutSecs = 60
	}
	if cfg.Generation.ConnectTimeoutSecs == 0 {
		cfg.Generation.ConnectTimeoutSecs = 10
	}
	if cfg.Retrieval.ChunkSize == 0 {
		cfg.Retrieval.ChunkSize = 500
	}
	if cfg.Retrieval.ChunkOverlap == 0 {
		cfg.Retrieval.ChunkOverlap = 100
	}
	if cfg.Retrieval.TopK == 0 {
		cfg.Retrieval.TopK = 4
	}
	if cfg.Retrieval.KeywordTopK == 0 {
		cfg.Retrieval.KeywordTopK = 3
	}
	if cfg.Retrieval.MinSimilarity == 0 {
		cfg.Retrieval.MinSimilarity = 0.2
	}
	if cfg.Retrieval.SemanticHistoryWindow == 0 {
		cfg.Retrieval.SemanticHistoryWindow = 8
	}
	if cfg.Retrieval.KeywordHistoryWindow == 0 {
		cfg.Retrieval.KeywordHistoryWindow = 6
	}
}
