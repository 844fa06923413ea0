// Package config loads server configuration from the environment. All
// secrets (the S.P.I.D.E.R. key, the credential pair that trades for it, the
// provider API key) enter the process here and nowhere else.
package config

import (
	"os"
	"strings"
)

type Config struct {
	Host    string
	Port    string
	DataDir string

	// S.P.I.D.E.R. clearance domain. The key gates the agent-lookup
	// endpoints; the agent_id/clearance pair is exchanged for it.
	SpiderKey       string
	SpiderAgentID   string
	SpiderClearance string

	// Chat-completion provider. An empty API key leaves the proxy offline.
	OpenAIAPIKey  string
	OpenAIBaseURL string
}

func Load() Config {
	return Config{
		Host:            envOr("ARACHNID_HOST", "127.0.0.1"),
		Port:            envOr("ARACHNID_PORT", "8080"),
		DataDir:         envOr("ARACHNID_DATA_DIR", ".data"),
		SpiderKey:       envOr("ARACHNID_SPIDER_KEY", "SPIDER-CLEARANCE-OMEGA-7"),
		SpiderAgentID:   envOr("ARACHNID_SPIDER_AGENT_ID", "investigation_team"),
		SpiderClearance: envOr("ARACHNID_SPIDER_CLEARANCE", "omega"),
		OpenAIAPIKey:    strings.TrimSpace(os.Getenv("OPENAI_API_KEY")),
		OpenAIBaseURL:   strings.TrimSpace(os.Getenv("OPENAI_BASE_URL")),
	}
}

func envOr(key, fallback string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	return v
}
