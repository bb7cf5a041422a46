package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	TipsPath      string // optional YAML file overriding the embedded tip catalog
	PromptCatalog string // template catalog variant: prompt, prompt1
}

func Load() *Config {
	_ = godotenv.Load() // ignore error if no .env

	return &Config{
		TipsPath:      os.Getenv("HEALTH_TIPS_PATH"),
		PromptCatalog: envOr("PROMPT_CATALOG", "prompt"),
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
