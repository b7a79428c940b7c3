package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/mikey/email-triage/internal/domainlist"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of every environment override (EMAIL_TRIAGE_TRIAGE_THRESHOLD, ...)
const EnvPrefix = "EMAIL_TRIAGE"

// Config represents the application configuration
type Config struct {
	v *viper.Viper
}

// New creates a new configuration instance. An empty path searches the default locations.
func New(path string) (*Config, error) {
	v := viper.New()
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("/etc/email-triage/")
		v.AddConfigPath("$HOME/.email-triage")
		v.AddConfigPath("./configs")
		v.AddConfigPath(".")
	}

	// Set defaults
	setDefaults(v)

	// Environment variables
	v.AutomaticEnv()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	if err := v.BindEnv("huggingface.api_key", EnvPrefix+"_HUGGINGFACE_API_KEY", "HF_TOKEN"); err != nil {
		return nil, fmt.Errorf("failed to bind HF_TOKEN: %w", err)
	}

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// Config file not found, using defaults
	}

	return &Config{v: v}, nil
}

// NewFromViper creates a new configuration instance from an existing Viper instance
func NewFromViper(v *viper.Viper) *Config {
	return &Config{v: v}
}

// NewEmptyViper creates a new Viper instance with defaults
func NewEmptyViper() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	return v
}

// setDefaults sets the default configuration values
func setDefaults(v *viper.Viper) {
	// Triage defaults
	v.SetDefault("triage.threshold", 0.6)
	v.SetDefault("triage.demo_mode", false)
	v.SetDefault("triage.max_content_chars", 1000)

	// Remote classifier defaults
	v.SetDefault("classifier.provider", "huggingface")
	v.SetDefault("classifier.timeout", "30s")
	v.SetDefault("classifier.max_retries", 2)
	v.SetDefault("classifier.retry_backoff", "3s")
	v.SetDefault("classifier.min_confidence", 0.5)

	// HuggingFace defaults
	v.SetDefault("huggingface.api_key", "")
	v.SetDefault("huggingface.base_url", "https://router.huggingface.co/hf-inference/models")
	v.SetDefault("huggingface.classification_model", "typeform/distilbert-base-uncased-mnli")
	v.SetDefault("huggingface.summarization_model", "sshleifer/distilbart-cnn-12-6")
	v.SetDefault("huggingface.max_input_chars", 1000)

	// Bedrock defaults
	v.SetDefault("bedrock.region", "us-east-1")
	v.SetDefault("bedrock.model_id", "anthropic.claude-v2")
	v.SetDefault("bedrock.max_tokens", 300)
	v.SetDefault("bedrock.temperature", 0.1)
	v.SetDefault("bedrock.top_p", 0.9)
	v.SetDefault("bedrock.max_body_size", 4096)

	// Gemini defaults
	v.SetDefault("gemini.api_key", "")
	v.SetDefault("gemini.model_name", "gemini-pro")
	v.SetDefault("gemini.max_tokens", 300)
	v.SetDefault("gemini.temperature", 0.1)
	v.SetDefault("gemini.top_p", 0.9)
	v.SetDefault("gemini.max_body_size", 4096)

	// OpenAI defaults
	v.SetDefault("openai.api_key", "")
	v.SetDefault("openai.model_name", "gpt-4o-mini")
	v.SetDefault("openai.max_tokens", 300)
	v.SetDefault("openai.temperature", 0.1)
	v.SetDefault("openai.top_p", 0.9)
	v.SetDefault("openai.max_body_size", 4096)

	// Cache defaults
	v.SetDefault("cache.enabled", true)
	v.SetDefault("cache.max_entries", 100)

	// NLP defaults
	v.SetDefault("nlp.lemma_dictionary", "")

	// Scoring thresholds
	v.SetDefault("scoring.phishing_pattern", 80)
	v.SetDefault("scoring.phishing_heuristic", 3)
	v.SetDefault("scoring.resume", 3)
	v.SetDefault("scoring.resume_override", 5)
	v.SetDefault("scoring.resume_override_with_closing", 3)
	v.SetDefault("scoring.education", 3)
	v.SetDefault("scoring.finance", 3)
	v.SetDefault("scoring.spam", 3)
	v.SetDefault("scoring.urgent", 2)
	v.SetDefault("scoring.professional", 2)

	// Phishing defaults
	v.SetDefault("phishing.blocked_domains", domainlist.DefaultBlocked)

	// Server defaults
	v.SetDefault("server.listen_address", "0.0.0.0:5000")
	v.SetDefault("server.max_upload_bytes", 10<<20)
	v.SetDefault("server.read_timeout", "60s")
	v.SetDefault("server.write_timeout", "90s")

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")
}

// Set overrides a value, used for command line flags
func (c *Config) Set(key string, value interface{}) {
	c.v.Set(key, value)
}

// GetString gets a string value from the configuration
func (c *Config) GetString(key string) string {
	return c.v.GetString(key)
}

// GetInt gets an integer value from the configuration
func (c *Config) GetInt(key string) int {
	return c.v.GetInt(key)
}

// GetInt64 gets an int64 value from the configuration
func (c *Config) GetInt64(key string) int64 {
	return c.v.GetInt64(key)
}

// GetFloat64 gets a float64 value from the configuration
func (c *Config) GetFloat64(key string) float64 {
	return c.v.GetFloat64(key)
}

// GetBool gets a boolean value from the configuration
func (c *Config) GetBool(key string) bool {
	return c.v.GetBool(key)
}

// GetStringSlice gets a string slice value from the configuration
func (c *Config) GetStringSlice(key string) []string {
	return c.v.GetStringSlice(key)
}

// GetDuration gets a duration value from the configuration
func (c *Config) GetDuration(key string) (time.Duration, error) {
	d, err := time.ParseDuration(c.GetString(key))
	if err != nil {
		return 0, fmt.Errorf("invalid duration for %s: %w", key, err)
	}
	return d, nil
}

// GetViper returns the underlying Viper instance
func (c *Config) GetViper() *viper.Viper {
	return c.v
}
