package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/mikey/email-triage/internal/scoring"
)

// TriageConfig holds the analysis knobs
type TriageConfig struct {
	Threshold       float64 `validate:"gte=0,lte=1"`
	DemoMode        bool
	MaxContentChars int `validate:"gt=0"`
}

// ClassifierConfig represents the remote classification policy
type ClassifierConfig struct {
	Provider      string        `validate:"oneof=huggingface openai gemini bedrock none"`
	Timeout       time.Duration `validate:"gt=0"`
	MaxRetries    int           `validate:"gte=0,lte=10"`
	RetryBackoff  time.Duration `validate:"gte=0"`
	MinConfidence float64       `validate:"gte=0,lte=1"`
}

// HuggingFaceConfig represents the configuration for the HuggingFace inference API
type HuggingFaceConfig struct {
	APIKey              string
	BaseURL             string `validate:"required,url"`
	ClassificationModel string `validate:"required"`
	SummarizationModel  string
	MaxInputChars       int `validate:"gt=0"`
}

// BedrockConfig represents the configuration for Amazon Bedrock
type BedrockConfig struct {
	Region      string `validate:"required"`
	ModelID     string `validate:"required"`
	MaxTokens   int    `validate:"gt=0"`
	Temperature float32
	TopP        float32
	MaxBodySize int
}

// GeminiConfig represents the configuration for Google Gemini
type GeminiConfig struct {
	APIKey      string
	ModelName   string `validate:"required"`
	MaxTokens   int    `validate:"gt=0"`
	Temperature float32
	TopP        float32
	MaxBodySize int
}

// OpenAIConfig represents the configuration for OpenAI
type OpenAIConfig struct {
	APIKey      string
	ModelName   string `validate:"required"`
	MaxTokens   int    `validate:"gt=0"`
	Temperature float32
	TopP        float32
	MaxBodySize int
}

// CacheConfig represents the classifier cache configuration
type CacheConfig struct {
	Enabled    bool
	MaxEntries int `validate:"gte=1"`
}

// NLPConfig selects the token normalization strategy
type NLPConfig struct {
	LemmaDictionary string
}

// ServerConfig represents the HTTP intake configuration
type ServerConfig struct {
	ListenAddress  string        `validate:"required"`
	MaxUploadBytes int64         `validate:"gt=0"`
	ReadTimeout    time.Duration `validate:"gt=0"`
	WriteTimeout   time.Duration `validate:"gt=0"`
}

// LoggingConfig represents the logger configuration
type LoggingConfig struct {
	Level  string `validate:"oneof=debug info warn error"`
	Format string `validate:"oneof=json console"`
}

// GetTriage returns the triage configuration
func (c *Config) GetTriage() TriageConfig {
	return TriageConfig{
		Threshold:       c.GetFloat64("triage.threshold"),
		DemoMode:        c.GetBool("triage.demo_mode"),
		MaxContentChars: c.GetInt("triage.max_content_chars"),
	}
}

// GetClassifier returns the remote classifier configuration
func (c *Config) GetClassifier() (ClassifierConfig, error) {
	timeout, err := c.GetDuration("classifier.timeout")
	if err != nil {
		return ClassifierConfig{}, err
	}
	backoff, err := c.GetDuration("classifier.retry_backoff")
	if err != nil {
		return ClassifierConfig{}, err
	}
	return ClassifierConfig{
		Provider:      c.GetString("classifier.provider"),
		Timeout:       timeout,
		MaxRetries:    c.GetInt("classifier.max_retries"),
		RetryBackoff:  backoff,
		MinConfidence: c.GetFloat64("classifier.min_confidence"),
	}, nil
}

// GetHuggingFace returns the HuggingFace configuration
func (c *Config) GetHuggingFace() HuggingFaceConfig {
	return HuggingFaceConfig{
		APIKey:              c.GetString("huggingface.api_key"),
		BaseURL:             c.GetString("huggingface.base_url"),
		ClassificationModel: c.GetString("huggingface.classification_model"),
		SummarizationModel:  c.GetString("huggingface.summarization_model"),
		MaxInputChars:       c.GetInt("huggingface.max_input_chars"),
	}
}

// GetBedrock returns the Bedrock configuration
func (c *Config) GetBedrock() BedrockConfig {
	return BedrockConfig{
		Region:      c.GetString("bedrock.region"),
		ModelID:     c.GetString("bedrock.model_id"),
		MaxTokens:   c.GetInt("bedrock.max_tokens"),
		Temperature: float32(c.GetFloat64("bedrock.temperature")),
		TopP:        float32(c.GetFloat64("bedrock.top_p")),
		MaxBodySize: c.GetInt("bedrock.max_body_size"),
	}
}

// GetGemini returns the Gemini configuration
func (c *Config) GetGemini() GeminiConfig {
	return GeminiConfig{
		APIKey:      c.GetString("gemini.api_key"),
		ModelName:   c.GetString("gemini.model_name"),
		MaxTokens:   c.GetInt("gemini.max_tokens"),
		Temperature: float32(c.GetFloat64("gemini.temperature")),
		TopP:        float32(c.GetFloat64("gemini.top_p")),
		MaxBodySize: c.GetInt("gemini.max_body_size"),
	}
}

// GetOpenAI returns the OpenAI configuration
func (c *Config) GetOpenAI() OpenAIConfig {
	return OpenAIConfig{
		APIKey:      c.GetString("openai.api_key"),
		ModelName:   c.GetString("openai.model_name"),
		MaxTokens:   c.GetInt("openai.max_tokens"),
		Temperature: float32(c.GetFloat64("openai.temperature")),
		TopP:        float32(c.GetFloat64("openai.top_p")),
		MaxBodySize: c.GetInt("openai.max_body_size"),
	}
}

// GetCache returns the cache configuration
func (c *Config) GetCache() CacheConfig {
	return CacheConfig{
		Enabled:    c.GetBool("cache.enabled"),
		MaxEntries: c.GetInt("cache.max_entries"),
	}
}

// GetNLP returns the normalizer configuration
func (c *Config) GetNLP() NLPConfig {
	return NLPConfig{
		LemmaDictionary: c.GetString("nlp.lemma_dictionary"),
	}
}

// GetScoring returns the tunable scorer thresholds
func (c *Config) GetScoring() scoring.Thresholds {
	return scoring.Thresholds{
		PhishingPattern:           c.GetFloat64("scoring.phishing_pattern"),
		PhishingHeuristic:         c.GetFloat64("scoring.phishing_heuristic"),
		Resume:                    c.GetFloat64("scoring.resume"),
		ResumeOverride:            c.GetFloat64("scoring.resume_override"),
		ResumeOverrideWithClosing: c.GetFloat64("scoring.resume_override_with_closing"),
		Education:                 c.GetFloat64("scoring.education"),
		Finance:                   c.GetFloat64("scoring.finance"),
		Spam:                      c.GetFloat64("scoring.spam"),
		Urgent:                    c.GetFloat64("scoring.urgent"),
		Professional:              c.GetFloat64("scoring.professional"),
	}
}

// GetBlockedDomains returns the domains that mark a message as phishing
func (c *Config) GetBlockedDomains() []string {
	return c.GetStringSlice("phishing.blocked_domains")
}

// GetServer returns the HTTP intake configuration
func (c *Config) GetServer() (ServerConfig, error) {
	read, err := c.GetDuration("server.read_timeout")
	if err != nil {
		return ServerConfig{}, err
	}
	write, err := c.GetDuration("server.write_timeout")
	if err != nil {
		return ServerConfig{}, err
	}
	return ServerConfig{
		ListenAddress:  c.GetString("server.listen_address"),
		MaxUploadBytes: c.GetInt64("server.max_upload_bytes"),
		ReadTimeout:    read,
		WriteTimeout:   write,
	}, nil
}

// GetLogging returns the logger configuration
func (c *Config) GetLogging() LoggingConfig {
	return LoggingConfig{
		Level:  c.GetString("logging.level"),
		Format: c.GetString("logging.format"),
	}
}

type section struct {
	name  string
	value interface{}
}

// Validate checks every section and reports the first invalid field
func (c *Config) Validate() error {
	validate := validator.New()

	classifier, err := c.GetClassifier()
	if err != nil {
		return err
	}
	server, err := c.GetServer()
	if err != nil {
		return err
	}

	sections := []section{
		{"triage", c.GetTriage()},
		{"classifier", classifier},
		{"cache", c.GetCache()},
		{"scoring", c.GetScoring()},
		{"server", server},
		{"logging", c.GetLogging()},
	}
	switch classifier.Provider {
	case "huggingface":
		sections = append(sections, section{"huggingface", c.GetHuggingFace()})
	case "openai":
		sections = append(sections, section{"openai", c.GetOpenAI()})
	case "gemini":
		sections = append(sections, section{"gemini", c.GetGemini()})
	case "bedrock":
		sections = append(sections, section{"bedrock", c.GetBedrock()})
	}

	for _, s := range sections {
		if err := validate.Struct(s.value); err != nil {
			return fmt.Errorf("invalid %s configuration: %w", s.name, err)
		}
	}
	return nil
}
