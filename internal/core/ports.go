package core

//go:generate mockgen -destination=mocks/mock_ports.go -package=mocks github.com/mikey/email-triage/internal/core ClassifierBackend,Summarizer,RemoteClassifier

import (
	"context"
)

// ClassifierBackend is a zero-shot classification oracle (HuggingFace, OpenAI, Gemini, Bedrock)
type ClassifierBackend interface {
	// Model identifies the model used, part of the cache key
	Model() string

	// Classify scores the candidate labels for the text
	Classify(ctx context.Context, text string, labels []string) (*Prediction, error)
}

// Summarizer is implemented by backends that can also summarize text
type Summarizer interface {
	Summarize(ctx context.Context, text string) (string, error)
}

// ResponseCache stores oracle predictions keyed by a content hash
type ResponseCache interface {
	// Get returns the cached prediction for key
	Get(key string) (*Prediction, bool)

	// Set stores a prediction, evicting the oldest entry when full
	Set(key string, prediction *Prediction)

	// Clear drops every entry
	Clear()

	// Len returns the number of entries
	Len() int
}

// RemoteClassifier is the best-effort remote classification boundary
type RemoteClassifier interface {
	// Classify returns nil when no confident answer is available
	Classify(ctx context.Context, text string, labels []string) *RemoteResult

	// Summarize returns false when no remote summary is available
	Summarize(ctx context.Context, text string) (string, bool)

	// Available reports whether remote calls are still attempted
	Available() bool

	// ClearCache drops cached predictions
	ClearCache()
}

// TokenNormalizer reduces tokens to a canonical form (lemmas or stems)
type TokenNormalizer interface {
	Name() string
	NormalizeTokens(tokens []string) []string
}
