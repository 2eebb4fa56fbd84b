package common

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Config represents the application configuration
type Config struct {
	Environment string        `toml:"environment"` // "development" or "production"
	Server      ServerConfig  `toml:"server"`
	Logging     LoggingConfig `toml:"logging"`
	Storage     StorageConfig `toml:"storage"`
	Gemini      GeminiConfig  `toml:"gemini"`
	Claude      ClaudeConfig  `toml:"claude"`
	LLM         LLMConfig     `toml:"llm"`
	Speech      SpeechConfig  `toml:"speech"`
}

type ServerConfig struct {
	Port int    `toml:"port"`
	Host string `toml:"host"`
}

type LoggingConfig struct {
	Level      string   `toml:"level"`       // "debug", "info", "warn", "error"
	Output     []string `toml:"output"`      // "stdout", "file"
	TimeFormat string   `toml:"time_format"` // Time format for logs (default: "15:04:05")
}

type StorageConfig struct {
	Badger BadgerConfig `toml:"badger"`
}

// BadgerConfig represents BadgerDB-specific configuration
type BadgerConfig struct {
	Path           string `toml:"path"`             // Database directory path
	ResetOnStartup bool   `toml:"reset_on_startup"` // Delete database on startup for clean test runs
}

// GeminiConfig contains Google Gemini API configuration
type GeminiConfig struct {
	APIKey      string  `toml:"api_key"` // User must provide API key (GEMINI_API_KEY or config)
	Model       string  `toml:"model"`
	Temperature float32 `toml:"temperature"`
}

// ClaudeConfig contains Anthropic Claude API configuration
type ClaudeConfig struct {
	APIKey      string  `toml:"api_key"` // User must provide API key (ANTHROPIC_API_KEY or config)
	Model       string  `toml:"model"`
	MaxTokens   int     `toml:"max_tokens"`
	Temperature float32 `toml:"temperature"`
}

// LLMProvider constants for LLMConfig.DefaultProvider
const (
	LLMProviderGemini = "gemini"
	LLMProviderClaude = "claude"
)

// LLMConfig contains provider-agnostic generation settings
type LLMConfig struct {
	DefaultProvider   string `toml:"default_provider"`    // "gemini" or "claude"
	Timeout           string `toml:"timeout"`             // Per-call timeout, e.g. "90s"
	RequestsPerMinute int    `toml:"requests_per_minute"` // Outbound rate limit across providers
}

// SpeechConfig contains text-to-speech configuration
type SpeechConfig struct {
	Model      string `toml:"model"`       // TTS-capable Gemini model
	Voice      string `toml:"voice"`       // Prebuilt voice name
	SampleRate int    `toml:"sample_rate"` // PCM sample rate returned by the model
}

// NewDefaultConfig returns a Config populated with sensible defaults
func NewDefaultConfig() *Config {
	return &Config{
		Environment: "development",
		Server: ServerConfig{
			Port: 8780,
			Host: "localhost",
		},
		Logging: LoggingConfig{
			Level:      "info",
			Output:     []string{"stdout"},
			TimeFormat: "15:04:05",
		},
		Storage: StorageConfig{
			Badger: BadgerConfig{
				Path:           "./data/neerhub",
				ResetOnStartup: false,
			},
		},
		Gemini: GeminiConfig{
			APIKey:      "", // User must provide API key (no fallback)
			Model:       "gemini-2.0-flash",
			Temperature: 0.2,
		},
		Claude: ClaudeConfig{
			APIKey:      "",
			Model:       "claude-haiku-3-5-20241022",
			MaxTokens:   8192,
			Temperature: 0.7,
		},
		LLM: LLMConfig{
			DefaultProvider:   LLMProviderGemini,
			Timeout:           "90s",
			RequestsPerMinute: 15, // Free-tier Gemini quota
		},
		Speech: SpeechConfig{
			Model:      "gemini-2.5-flash-preview-tts",
			Voice:      "Algenib",
			SampleRate: 24000,
		},
	}
}

// LoadFromFile loads configuration with priority: defaults -> file -> env
func LoadFromFile(path string) (*Config, error) {
	if path == "" {
		return LoadFromFiles()
	}
	return LoadFromFiles(path)
}

// LoadFromFiles loads configuration from multiple files. Later files override
// earlier files; environment variables override all files.
func LoadFromFiles(paths ...string) (*Config, error) {
	config := NewDefaultConfig()

	for i, path := range paths {
		if path == "" {
			continue
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}

		if err := toml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s (file %d of %d): %w", path, i+1, len(paths), err)
		}
	}

	applyEnvOverrides(config)

	return config, nil
}

// applyEnvOverrides applies NEERHUB_* environment variables on top of the
// loaded configuration. Provider API keys also accept the vendor-standard
// variable names.
func applyEnvOverrides(config *Config) {
	if env := os.Getenv("NEERHUB_ENV"); env != "" {
		config.Environment = env
	}

	if port := os.Getenv("NEERHUB_SERVER_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			config.Server.Port = p
		}
	}
	if host := os.Getenv("NEERHUB_SERVER_HOST"); host != "" {
		config.Server.Host = host
	}

	if level := os.Getenv("NEERHUB_LOG_LEVEL"); level != "" {
		config.Logging.Level = level
	}
	if output := os.Getenv("NEERHUB_LOG_OUTPUT"); output != "" {
		config.Logging.Output = strings.Split(output, ",")
	}

	if badgerPath := os.Getenv("NEERHUB_BADGER_PATH"); badgerPath != "" {
		config.Storage.Badger.Path = badgerPath
	}

	if key := os.Getenv("NEERHUB_GEMINI_API_KEY"); key != "" {
		config.Gemini.APIKey = key
	} else if key := os.Getenv("GEMINI_API_KEY"); key != "" && config.Gemini.APIKey == "" {
		config.Gemini.APIKey = key
	}
	if model := os.Getenv("NEERHUB_GEMINI_MODEL"); model != "" {
		config.Gemini.Model = model
	}

	if key := os.Getenv("NEERHUB_CLAUDE_API_KEY"); key != "" {
		config.Claude.APIKey = key
	} else if key := os.Getenv("ANTHROPIC_API_KEY"); key != "" && config.Claude.APIKey == "" {
		config.Claude.APIKey = key
	}

	if provider := os.Getenv("NEERHUB_LLM_PROVIDER"); provider != "" {
		config.LLM.DefaultProvider = provider
	}
	if timeout := os.Getenv("NEERHUB_LLM_TIMEOUT"); timeout != "" {
		config.LLM.Timeout = timeout
	}
}
