// Package config loads service settings from .env files and the environment.
//
// Order of precedence (lowest first): built-in defaults, .env files, process environment.
// Missing credentials are not an error; the provider reports them on first use.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

const (
	ProviderGroq   = "groq"
	ProviderGemini = "gemini"
)

// DefaultEnvFiles are tried in order; files that don't exist are skipped.
var DefaultEnvFiles = []string{".env", "../.env"}

type Config struct {
	Server  ServerConfig  `koanf:"server"`
	LLM     LLMConfig     `koanf:"llm"`
	Groq    GroqConfig    `koanf:"groq"`
	Gemini  GeminiConfig  `koanf:"gemini"`
	CORS    CORSConfig    `koanf:"cors"`
	Logging LoggingConfig `koanf:"logging"`
}

type ServerConfig struct {
	Host    string `koanf:"host"`
	Port    int    `koanf:"port"`
	AppName string `koanf:"app_name"`
}

type LLMConfig struct {
	Provider string        `koanf:"provider"`
	Timeout  time.Duration `koanf:"timeout"` // 0 disables the client-side timeout
}

type GroqConfig struct {
	APIKey  string `koanf:"api_key"`
	Model   string `koanf:"model"`
	BaseURL string `koanf:"base_url"`
}

type GeminiConfig struct {
	APIKey   string `koanf:"api_key"`
	Model    string `koanf:"model"`
	Project  string `koanf:"project"`  // set to use the Vertex AI backend
	Location string `koanf:"location"`
	BaseURL  string `koanf:"base_url"`
}

type CORSConfig struct {
	Origins string `koanf:"origins"` // comma separated
}

type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host:    "0.0.0.0",
			Port:    8000,
			AppName: "Steam Game Matchmaker API",
		},
		LLM: LLMConfig{
			Provider: ProviderGroq,
		},
		Groq: GroqConfig{
			Model:   "llama-3.3-70b-versatile",
			BaseURL: "https://api.groq.com/openai/v1",
		},
		Gemini: GeminiConfig{
			Model:    "gemini-2.5-flash",
			Location: "us-central1",
		},
		CORS: CORSConfig{
			Origins: "http://localhost:3000,http://127.0.0.1:3000",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// envMappings maps environment variable names (lowercased) to config paths.
// Anything not listed is ignored.
var envMappings = map[string]string{
	"host":                  "server.host",
	"port":                  "server.port",
	"llm_provider":          "llm.provider",
	"llm_timeout":           "llm.timeout",
	"groq_api_key":          "groq.api_key",
	"groq_model":            "groq.model",
	"groq_base_url":         "groq.base_url",
	"gemini_api_key":        "gemini.api_key",
	"gemini_model":          "gemini.model",
	"gemini_base_url":       "gemini.base_url",
	"google_cloud_project":  "gemini.project",
	"google_cloud_location": "gemini.location",
	"cors_origins":          "cors.origins",
	"log_level":             "logging.level",
	"log_format":            "logging.format",
}

func envTransformFunc(key string) string {
	return envMappings[strings.ToLower(key)]
}

// LoadDotEnv loads the given files into the process environment without
// overriding variables that are already set. It returns the files it loaded.
func LoadDotEnv(paths ...string) []string {
	var loaded []string
	for _, p := range paths {
		if err := godotenv.Load(p); err == nil {
			loaded = append(loaded, p)
		}
	}
	return loaded
}

// Load builds a Config from defaults and the environment.
func Load() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}
	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}
	cfg.LLM.Provider = strings.ToLower(strings.TrimSpace(cfg.LLM.Provider))

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	var errs []error
	switch c.LLM.Provider {
	case ProviderGroq, ProviderGemini:
	default:
		errs = append(errs, fmt.Errorf("LLM_PROVIDER must be %q or %q, got %q", ProviderGroq, ProviderGemini, c.LLM.Provider))
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Errorf("PORT must be between 1 and 65535, got %d", c.Server.Port))
	}
	if c.LLM.Timeout < 0 {
		errs = append(errs, fmt.Errorf("LLM_TIMEOUT must not be negative"))
	}
	return errors.Join(errs...)
}

// Addr is the listen address.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// AllowedOrigins returns the trimmed CORS origin list.
func (c *Config) AllowedOrigins() []string {
	var out []string
	for _, o := range strings.Split(c.CORS.Origins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}
