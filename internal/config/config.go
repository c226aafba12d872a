package config

import (
	"log"
	"os"
	"strconv"

	"gopkg.in/yaml.v2"
)

type Config struct {
	Server struct {
		Host string `yaml:"host"`
		Port int    `yaml:"port"`
		Env  string `yaml:"env"`
	} `yaml:"server"`

	Recommendation struct {
		TopN             int     `yaml:"top_n"`              // candidates returned per request
		ReasonLimit      int     `yaml:"reason_limit"`       // reasons per candidate
		MinCombinedScore float64 `yaml:"min_combined_score"` // 0 disables the filter
	} `yaml:"recommendation"`
}

var AppConfig *Config

// LoadConfig populates AppConfig. When SERVER_PORT is set the config comes
// entirely from environment variables (test/container mode); otherwise it
// is read from config/config.yaml or CONFIG_PATH.
func LoadConfig() {
	var cfg Config

	if portStr := os.Getenv("SERVER_PORT"); portStr != "" {
		cfg.Server.Port, _ = strconv.Atoi(portStr)
		cfg.Server.Host = os.Getenv("SERVER_HOST")
		cfg.Server.Env = os.Getenv("SERVER_ENV")

		cfg.Recommendation.TopN = envInt("RECOMMEND_TOP_N", 5)
		cfg.Recommendation.ReasonLimit = envInt("RECOMMEND_REASON_LIMIT", 3)
		cfg.Recommendation.MinCombinedScore = envFloat("RECOMMEND_MIN_SCORE", 0)

		AppConfig = &cfg
		return
	}

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/config.yaml"
	}

	f, err := os.Open(configPath)
	if err != nil {
		log.Fatalf("Failed to open config file at %s: %v", configPath, err)
	}
	defer f.Close()

	decoder := yaml.NewDecoder(f)
	if err := decoder.Decode(&cfg); err != nil {
		log.Fatalf("Failed to parse config file at %s: %v", configPath, err)
	}

	applyDefaults(&cfg)
	AppConfig = &cfg
}

func applyDefaults(cfg *Config) {
	if cfg.Recommendation.TopN <= 0 {
		cfg.Recommendation.TopN = 5
	}
	if cfg.Recommendation.ReasonLimit <= 0 {
		cfg.Recommendation.ReasonLimit = 3
	}
}

func envInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return fallback
}

func envFloat(key string, fallback float64) float64 {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseFloat(value, 64); err == nil {
			return parsed
		}
	}
	return fallback
}

func GetConfig() *Config {
	if AppConfig == nil {
		LoadConfig()
	}
	return AppConfig
}
