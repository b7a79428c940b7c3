package huggingface

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/mikey/email-triage/internal/core"
	"github.com/mikey/email-triage/internal/utils"
	"go.uber.org/zap"
)

// maxResponseBytes bounds how much of a response body is read
const maxResponseBytes = 1 << 20

// HuggingFaceClient is an implementation of core.ClassifierBackend and core.Summarizer
// on top of the HuggingFace inference router
type HuggingFaceClient struct {
	httpClient          *http.Client
	baseURL             string
	apiKey              string
	classificationModel string
	summarizationModel  string
	maxInputChars       int
	logger              *zap.Logger
	textProcessor       *utils.TextProcessor
}

// NewHuggingFaceClient creates a new HuggingFace client. An empty summarization model
// disables Summarize.
func NewHuggingFaceClient(
	httpClient *http.Client,
	baseURL string,
	apiKey string,
	classificationModel string,
	summarizationModel string,
	maxInputChars int,
	logger *zap.Logger,
	textProcessor *utils.TextProcessor,
) *HuggingFaceClient {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &HuggingFaceClient{
		httpClient:          httpClient,
		baseURL:             strings.TrimRight(baseURL, "/"),
		apiKey:              apiKey,
		classificationModel: classificationModel,
		summarizationModel:  summarizationModel,
		maxInputChars:       maxInputChars,
		logger:              logger,
		textProcessor:       textProcessor,
	}
}

// Model returns the zero-shot classification model
func (c *HuggingFaceClient) Model() string {
	return c.classificationModel
}

type classifyParameters struct {
	CandidateLabels []string `json:"candidate_labels"`
	MultiLabel      bool     `json:"multi_label"`
}

type summarizeParameters struct {
	MaxLength int `json:"max_length"`
	MinLength int `json:"min_length"`
}

type inferenceRequest struct {
	Inputs     string `json:"inputs"`
	Parameters any    `json:"parameters"`
}

type classifyResponse struct {
	Labels []string  `json:"labels"`
	Scores []float64 `json:"scores"`
}

type summaryResponse struct {
	SummaryText string `json:"summary_text"`
}

// Classify runs zero-shot classification over the candidate labels
func (c *HuggingFaceClient) Classify(ctx context.Context, text string, labels []string) (*core.Prediction, error) {
	body, err := c.post(ctx, c.classificationModel, inferenceRequest{
		Inputs: c.textProcessor.Prepare(text, c.maxInputChars),
		Parameters: classifyParameters{
			CandidateLabels: labels,
			MultiLabel:      false,
		},
	})
	if err != nil {
		return nil, err
	}

	resp, err := decodeClassification(body)
	if err != nil {
		return nil, err
	}

	c.logger.Debug("HuggingFace classification",
		zap.String("model", c.classificationModel),
		zap.Strings("labels", resp.Labels),
		zap.Float64s("scores", resp.Scores))

	return &core.Prediction{Labels: resp.Labels, Scores: resp.Scores}, nil
}

// Summarize produces an abstractive summary with the summarization model
func (c *HuggingFaceClient) Summarize(ctx context.Context, text string) (string, error) {
	if c.summarizationModel == "" {
		return "", fmt.Errorf("%w: no summarization model configured", core.ErrTransport)
	}

	body, err := c.post(ctx, c.summarizationModel, inferenceRequest{
		Inputs:     c.textProcessor.Prepare(text, c.maxInputChars),
		Parameters: summarizeParameters{MaxLength: 150, MinLength: 50},
	})
	if err != nil {
		return "", err
	}
	return decodeSummary(body)
}

func (c *HuggingFaceClient) post(ctx context.Context, model string, payload inferenceRequest) ([]byte, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("could not encode request: %w", err)
	}

	url := c.baseURL + "/" + model
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: could not create request: %v", core.ErrTransport, err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", core.ErrTransport, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: could not read response: %v", core.ErrTransport, err)
	}

	c.logger.Debug("HuggingFace response",
		zap.String("model", model),
		zap.Int("status", resp.StatusCode))

	if err := statusError(resp.StatusCode, body); err != nil {
		return nil, err
	}
	return body, nil
}

func statusError(status int, body []byte) error {
	switch {
	case status == http.StatusOK:
		return nil
	case status == http.StatusServiceUnavailable:
		return fmt.Errorf("%w: status %d", core.ErrModelLoading, status)
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return fmt.Errorf("%w: status %d", core.ErrAuth, status)
	default:
		snippet := string(body)
		if len(snippet) > 200 {
			snippet = snippet[:200]
		}
		return fmt.Errorf("%w: unexpected status %d: %s", core.ErrTransport, status, snippet)
	}
}

// decodeClassification accepts either a single object or a list holding one
func decodeClassification(body []byte) (*classifyResponse, error) {
	var resp classifyResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		var list []classifyResponse
		if listErr := json.Unmarshal(body, &list); listErr != nil {
			return nil, fmt.Errorf("%w: %v", core.ErrMalformedResponse, err)
		}
		if len(list) == 0 {
			return nil, fmt.Errorf("%w: empty list", core.ErrMalformedResponse)
		}
		resp = list[0]
	}

	if len(resp.Labels) == 0 || len(resp.Labels) != len(resp.Scores) {
		return nil, fmt.Errorf("%w: %d labels for %d scores", core.ErrMalformedResponse, len(resp.Labels), len(resp.Scores))
	}
	return &resp, nil
}

// decodeSummary accepts a list of objects, a single object or a bare string
func decodeSummary(body []byte) (string, error) {
	var list []summaryResponse
	if err := json.Unmarshal(body, &list); err == nil {
		if len(list) == 0 {
			return "", fmt.Errorf("%w: empty list", core.ErrMalformedResponse)
		}
		return list[0].SummaryText, nil
	}

	var single summaryResponse
	if err := json.Unmarshal(body, &single); err == nil {
		return single.SummaryText, nil
	}

	var text string
	if err := json.Unmarshal(body, &text); err == nil {
		return text, nil
	}

	return "", fmt.Errorf("%w: unexpected summary payload", core.ErrMalformedResponse)
}
