package openai

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/mikey/email-triage/internal/adapters/llm"
	"github.com/mikey/email-triage/internal/core"
	"github.com/mikey/email-triage/internal/utils"
	"github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
)

// OpenAIClient is an implementation of core.ClassifierBackend using OpenAI chat completions
type OpenAIClient struct {
	client        *openai.Client
	modelName     string
	maxTokens     int
	temperature   float32
	topP          float32
	maxBodySize   int
	logger        *zap.Logger
	textProcessor *utils.TextProcessor
}

// NewOpenAIClient creates a new OpenAI client
func NewOpenAIClient(
	client *openai.Client,
	modelName string,
	maxTokens int,
	temperature float32,
	topP float32,
	maxBodySize int,
	logger *zap.Logger,
	textProcessor *utils.TextProcessor,
) *OpenAIClient {
	return &OpenAIClient{
		client:        client,
		modelName:     modelName,
		maxTokens:     maxTokens,
		temperature:   temperature,
		topP:          topP,
		maxBodySize:   maxBodySize,
		logger:        logger,
		textProcessor: textProcessor,
	}
}

// Model returns the chat model name
func (c *OpenAIClient) Model() string {
	return c.modelName
}

// Classify asks the chat model to pick one of the labels
func (c *OpenAIClient) Classify(ctx context.Context, text string, labels []string) (*core.Prediction, error) {
	prompt := llm.BuildPrompt(c.textProcessor.Prepare(text, c.maxBodySize), labels)

	req := openai.ChatCompletionRequest{
		Model: c.modelName,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: llm.SystemPrompt,
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt,
			},
		},
		MaxTokens:   c.maxTokens,
		Temperature: c.temperature,
		TopP:        c.topP,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	}

	resp, err := c.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return nil, classifyError(err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("empty response from OpenAI: %w", core.ErrMalformedResponse)
	}

	c.logger.Debug("OpenAI classification received",
		zap.String("model", c.modelName),
		zap.String("id", resp.ID))

	return llm.ParseAnswer(resp.Choices[0].Message.Content)
}

// classifyError maps API status codes onto the core error kinds
func classifyError(err error) error {
	status := 0
	var apiErr *openai.APIError
	var reqErr *openai.RequestError
	switch {
	case errors.As(err, &apiErr):
		status = apiErr.HTTPStatusCode
	case errors.As(err, &reqErr):
		status = reqErr.HTTPStatusCode
	}

	switch status {
	case http.StatusUnauthorized, http.StatusForbidden:
		return fmt.Errorf("OpenAI rejected the credential: %v: %w", err, core.ErrAuth)
	case http.StatusServiceUnavailable:
		return fmt.Errorf("OpenAI unavailable: %v: %w", err, core.ErrModelLoading)
	default:
		return fmt.Errorf("failed to create chat completion with OpenAI: %v: %w", err, core.ErrTransport)
	}
}
