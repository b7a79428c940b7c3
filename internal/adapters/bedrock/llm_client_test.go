package bedrock

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
	"github.com/aws/smithy-go"
	"github.com/mikey/email-triage/internal/core"
	"github.com/mikey/email-triage/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeInvoker struct {
	input *bedrockruntime.InvokeModelInput
	body  string
	err   error
}

func (f *fakeInvoker) InvokeModel(_ context.Context, params *bedrockruntime.InvokeModelInput, _ ...func(*bedrockruntime.Options)) (*bedrockruntime.InvokeModelOutput, error) {
	f.input = params
	if f.err != nil {
		return nil, f.err
	}
	return &bedrockruntime.InvokeModelOutput{Body: []byte(f.body)}, nil
}

func newClient(invoker ModelInvoker, model string) *BedrockClient {
	return NewBedrockClient(invoker, model, 300, 0.1, 0.9, 4096, zap.NewNop(), utils.NewTextProcessor(nil))
}

func TestClassifyModelFamilies(t *testing.T) {
	tests := []struct {
		name     string
		model    string
		body     string
		bodyKey  string
		expected string
	}{
		{
			name:     "claude",
			model:    "anthropic.claude-3-haiku-20240307-v1:0",
			body:     `{"content":[{"type":"text","text":"{\"label\":\"spam\",\"confidence\":0.9}"}]}`,
			bodyKey:  "messages",
			expected: "spam",
		},
		{
			name:     "titan",
			model:    "amazon.titan-text-express-v1",
			body:     `{"results":[{"outputText":"{\"label\":\"financeiro\",\"confidence\":0.7}"}]}`,
			bodyKey:  "inputText",
			expected: "financeiro",
		},
		{
			name:     "generic",
			model:    "meta.llama3-8b-instruct-v1:0",
			body:     `{"output":"{\"label\":\"rotina\",\"confidence\":0.6}"}`,
			bodyKey:  "prompt",
			expected: "rotina",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			invoker := &fakeInvoker{body: tt.body}
			c := newClient(invoker, tt.model)

			p, err := c.Classify(context.Background(), "texto", []string{"spam", "financeiro", "rotina"})
			require.NoError(t, err)
			assert.Equal(t, []string{tt.expected}, p.Labels)

			var sent map[string]interface{}
			require.NoError(t, json.Unmarshal(invoker.input.Body, &sent))
			assert.Contains(t, sent, tt.bodyKey)
			assert.Equal(t, tt.model, *invoker.input.ModelId)
		})
	}
}

func TestClassifyErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{"denied", &smithy.GenericAPIError{Code: "AccessDeniedException"}, core.ErrAuth},
		{"not ready", &smithy.GenericAPIError{Code: "ModelNotReadyException"}, core.ErrModelLoading},
		{"throttled", &smithy.GenericAPIError{Code: "ThrottlingException"}, core.ErrTransport},
		{"network", errors.New("dial tcp: timeout"), core.ErrTransport},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newClient(&fakeInvoker{err: tt.err}, "anthropic.claude-v2")
			_, err := c.Classify(context.Background(), "texto", []string{"a"})
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestClassifyMalformedBody(t *testing.T) {
	c := newClient(&fakeInvoker{body: `{"content":[]}`}, "anthropic.claude-v2")
	_, err := c.Classify(context.Background(), "texto", []string{"a"})
	assert.ErrorIs(t, err, core.ErrMalformedResponse)

	c = newClient(&fakeInvoker{body: `not json`}, "amazon.titan-text-lite-v1")
	_, err = c.Classify(context.Background(), "texto", []string{"a"})
	assert.ErrorIs(t, err, core.ErrMalformedResponse)
}
