package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server struct {
		Port int `yaml:"port"`
	} `yaml:"server"`

	LLM struct {
		// Provider selects the vision backend: "workersai" (default) or
		// "openai". The gateway answers in demo mode when the selected
		// provider has no credentials.
		Provider string `yaml:"provider"`

		CFAccountID string `yaml:"cfAccountId"`
		CFAPIToken  string `yaml:"cfApiToken"`
		CFModel     string `yaml:"cfModel"`

		OpenAIAPIKey string `yaml:"openaiApiKey"`
		OpenAIModel  string `yaml:"openaiModel"`

		// TimeoutSeconds bounds the upstream call; yaml carries plain
		// seconds, Timeout is the derived duration.
		TimeoutSeconds int           `yaml:"timeoutSeconds"`
		Timeout        time.Duration `yaml:"-"`
	} `yaml:"llm"`

	CORS struct {
		AllowedOrigins []string `yaml:"allowedOrigins"`
	} `yaml:"cors"`

	Client struct {
		ServerURL string `yaml:"serverUrl"`
		DBPath    string `yaml:"dbPath"`
	} `yaml:"client"`
}

// Load reads an optional config.yaml and applies environment overrides on
// top. A missing file is fine; everything can come from the environment.
func Load(path string) (*Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	if err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, err
	}

	cfg.applyEnv()
	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("PORT"); v != "" {
		fmt.Sscanf(v, "%d", &c.Server.Port)
	}
	c.LLM.Provider = getEnv("LLM_PROVIDER", c.LLM.Provider)
	c.LLM.CFAccountID = getEnv("CF_ACCOUNT_ID", c.LLM.CFAccountID)
	c.LLM.CFAPIToken = getEnv("CF_API_TOKEN", c.LLM.CFAPIToken)
	c.LLM.CFModel = getEnv("CF_MODEL", c.LLM.CFModel)
	c.LLM.OpenAIAPIKey = getEnv("OPENAI_API_KEY", c.LLM.OpenAIAPIKey)
	c.LLM.OpenAIModel = getEnv("OPENAI_MODEL", c.LLM.OpenAIModel)
	if v := os.Getenv("LLM_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			c.LLM.Timeout = d
		}
	}
	c.Client.ServerURL = getEnv("CHECKMYCAR_SERVER_URL", c.Client.ServerURL)
	c.Client.DBPath = getEnv("CHECKMYCAR_DB", c.Client.DBPath)
}

func (c *Config) applyDefaults() {
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.LLM.Provider == "" {
		c.LLM.Provider = "workersai"
	}
	if c.LLM.Timeout == 0 && c.LLM.TimeoutSeconds > 0 {
		c.LLM.Timeout = time.Duration(c.LLM.TimeoutSeconds) * time.Second
	}
	if c.LLM.Timeout == 0 {
		c.LLM.Timeout = 60 * time.Second
	}
	if c.Client.ServerURL == "" {
		c.Client.ServerURL = "http://localhost:8080"
	}
	if c.Client.DBPath == "" {
		c.Client.DBPath = defaultDBPath()
	}
}

// ProviderConfigured reports whether the selected provider has the secrets
// it needs. Missing secrets are not an error: the gateway degrades to demo
// responses instead.
func (c *Config) ProviderConfigured() bool {
	switch c.LLM.Provider {
	case "openai":
		return c.LLM.OpenAIAPIKey != ""
	default:
		return c.LLM.CFAccountID != "" && c.LLM.CFAPIToken != ""
	}
}

func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "checkmycar.db"
	}
	return filepath.Join(home, ".checkmycar", "checkmycar.db")
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
