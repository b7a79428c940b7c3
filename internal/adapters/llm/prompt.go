// Package llm holds the prompt and answer format shared by the chat-model backends
// (OpenAI, Gemini, Bedrock) used as zero-shot classifiers.
package llm

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mikey/email-triage/internal/core"
)

const promptFormat = `You are an email triage system for a Brazilian company. Classify the email below
into exactly one of the candidate labels.

Candidate labels:
%s

Respond with a JSON object containing:
- label: string (one of the candidate labels, copied exactly)
- confidence: number between 0 and 1 (how confident you are in your choice)

Email:
%s

Respond only with the JSON object and nothing else.`

// SystemPrompt is sent as the system message where the API supports one
const SystemPrompt = "You are an email classification system. Respond only with JSON."

// Answer is the JSON object the model is asked to produce
type Answer struct {
	Label      string  `json:"label"`
	Confidence float64 `json:"confidence"`
}

// BuildPrompt formats the classification prompt
func BuildPrompt(text string, labels []string) string {
	var b strings.Builder
	for _, label := range labels {
		b.WriteString("- ")
		b.WriteString(label)
		b.WriteByte('\n')
	}
	return fmt.Sprintf(promptFormat, strings.TrimRight(b.String(), "\n"), text)
}

// ParseAnswer extracts the JSON answer from the model output, tolerating text around it
func ParseAnswer(output string) (*core.Prediction, error) {
	var answer Answer
	if err := json.Unmarshal([]byte(output), &answer); err != nil {
		start := strings.IndexByte(output, '{')
		end := strings.LastIndexByte(output, '}')
		if start < 0 || end <= start {
			return nil, fmt.Errorf("no JSON object in model output: %w", core.ErrMalformedResponse)
		}
		if err := json.Unmarshal([]byte(output[start:end+1]), &answer); err != nil {
			return nil, fmt.Errorf("failed to parse model output as JSON: %v: %w", err, core.ErrMalformedResponse)
		}
	}

	label := strings.TrimSpace(answer.Label)
	if label == "" || answer.Confidence < 0 || answer.Confidence > 1 {
		return nil, fmt.Errorf("invalid answer %+v: %w", answer, core.ErrMalformedResponse)
	}

	return &core.Prediction{
		Labels: []string{label},
		Scores: []float64{answer.Confidence},
	}, nil
}
