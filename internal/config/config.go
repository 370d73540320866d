package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/eduassist/eduassist-backend/internal/logger"
	"github.com/eduassist/eduassist-backend/internal/utils"
)

type GatewayConfig struct {
	BaseURL        string  `yaml:"base_url"`
	APIKey         string  `yaml:"api_key"`
	Model          string  `yaml:"model"`
	MaxTokens      int     `yaml:"max_tokens"`
	Temperature    float64 `yaml:"temperature"`
	TimeoutSeconds int     `yaml:"timeout_seconds"`
}

type Config struct {
	Port         string        `yaml:"port"`
	LogMode      string        `yaml:"log_mode"`
	AllowOrigins []string      `yaml:"allow_origins"`
	Gateway      GatewayConfig `yaml:"gateway"`
}

// Load reads an optional YAML config file (CONFIG_PATH) and then applies
// environment overrides on top, so a plain env-only deployment works
// without any file present.
func Load(log *logger.Logger) (*Config, error) {
	cfg := &Config{
		Port:    "8080",
		LogMode: "development",
		AllowOrigins: []string{
			"http://localhost:3000",
			"http://localhost:5173",
		},
		Gateway: GatewayConfig{
			Model:          "gpt-4",
			MaxTokens:      4000,
			Temperature:    0.7,
			TimeoutSeconds: 60,
		},
	}

	if path := os.Getenv("CONFIG_PATH"); path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config file %s: %w", path, err)
		}
		if err := yaml.Unmarshal(raw, cfg); err != nil {
			return nil, fmt.Errorf("parse config file %s: %w", path, err)
		}
		if log != nil {
			log.Info("Loaded config file", "path", path)
		}
	}

	cfg.Port = utils.GetEnv("PORT", cfg.Port, log)
	cfg.LogMode = utils.GetEnv("LOG_MODE", cfg.LogMode, log)
	cfg.Gateway.BaseURL = utils.GetEnv("AI_GATEWAY_BASE_URL", cfg.Gateway.BaseURL, log)
	cfg.Gateway.APIKey = utils.GetEnv("AI_GATEWAY_API_KEY", cfg.Gateway.APIKey, log)
	cfg.Gateway.Model = utils.GetEnv("AI_GATEWAY_MODEL", cfg.Gateway.Model, log)
	cfg.Gateway.MaxTokens = utils.GetEnvAsInt("AI_GATEWAY_MAX_TOKENS", cfg.Gateway.MaxTokens, log)
	cfg.Gateway.Temperature = utils.GetEnvAsFloat("AI_GATEWAY_TEMPERATURE", cfg.Gateway.Temperature, log)
	cfg.Gateway.TimeoutSeconds = utils.GetEnvAsInt("AI_GATEWAY_TIMEOUT_SECONDS", cfg.Gateway.TimeoutSeconds, log)

	if cfg.Gateway.BaseURL == "" {
		return nil, fmt.Errorf("AI_GATEWAY_BASE_URL is not set")
	}
	if cfg.Gateway.APIKey == "" {
		return nil, fmt.Errorf("AI_GATEWAY_API_KEY is not set")
	}
	return cfg, nil
}
