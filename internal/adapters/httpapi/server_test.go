package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/mikey/email-triage/internal/adapters/extract"
	"github.com/mikey/email-triage/internal/config"
	"github.com/mikey/email-triage/internal/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeAnalyzer struct {
	docs    []core.RawDocument
	cleared bool
}

func (f *fakeAnalyzer) Analyze(_ context.Context, doc core.RawDocument) (*core.AnalysisResult, error) {
	if strings.TrimSpace(doc.Body) == "" && strings.TrimSpace(doc.AttachmentText) == "" {
		return nil, core.ErrEmptyInput
	}
	f.docs = append(f.docs, doc)
	return &core.AnalysisResult{
		Category: core.Financeiro,
		Utility:  0.86,
		Useful:   true,
		Reply:    "Prezado(a),",
		Source:   core.SourceLocal,
	}, nil
}

func (f *fakeAnalyzer) RemoteAvailable() bool { return true }

func (f *fakeAnalyzer) ClearCache() { f.cleared = true }

func newTestServer(t *testing.T, maxUpload int64) (*Server, *fakeAnalyzer) {
	t.Helper()
	analyzer := &fakeAnalyzer{}
	cfg := config.ServerConfig{
		ListenAddress:  "127.0.0.1:0",
		MaxUploadBytes: maxUpload,
		ReadTimeout:    time.Second,
		WriteTimeout:   time.Second,
	}
	return NewServer(analyzer, extract.NewExtractor(maxUpload, t.TempDir(), zap.NewNop()), cfg, zap.NewNop()), analyzer
}

func multipartBody(t *testing.T, text, filename string, content []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("email_text", text))
	if filename != "" {
		fw, err := mw.CreateFormFile("file", filename)
		require.NoError(t, err)
		_, err = fw.Write(content)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())
	return &buf, mw.FormDataContentType()
}

func TestAnalyzeForm(t *testing.T) {
	s, analyzer := newTestServer(t, 1024)

	form := url.Values{"email_text": {"  Segue o boleto  "}}
	req := httptest.NewRequest(http.MethodPost, "/analyze", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp Response
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.True(t, resp.IsUseful)
	assert.Equal(t, core.SourceLocal, resp.AnalysisSource)
	assert.Equal(t, "Prezado(a),", resp.AutoResponse)
	assert.Equal(t, core.Financeiro, resp.Analysis.Category)

	require.Len(t, analyzer.docs, 1)
	assert.Equal(t, "Segue o boleto", analyzer.docs[0].Body)
}

func TestAnalyzeUpload(t *testing.T) {
	s, analyzer := newTestServer(t, 1024)

	body, contentType := multipartBody(t, "Olá", "nota.txt", []byte("Nota fiscal 123"))
	req := httptest.NewRequest(http.MethodPost, "/analyze", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, analyzer.docs, 1)
	assert.Equal(t, "Olá", analyzer.docs[0].Body)
	assert.Equal(t, "Nota fiscal 123", analyzer.docs[0].AttachmentText)
}

func TestAnalyzeRejects(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		filename string
		content  []byte
	}{
		{"empty", "   ", "", nil},
		{"unsupported", "texto", "planilha.docx", []byte("x")},
		{"too large", "texto", "grande.txt", bytes.Repeat([]byte("a"), 64)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, analyzer := newTestServer(t, 32)

			body, contentType := multipartBody(t, tt.text, tt.filename, tt.content)
			req := httptest.NewRequest(http.MethodPost, "/analyze", body)
			req.Header.Set("Content-Type", contentType)
			rec := httptest.NewRecorder()
			s.Router().ServeHTTP(rec, req)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			var resp map[string]string
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
			assert.NotEmpty(t, resp["error"])
			assert.Empty(t, analyzer.docs)
		})
	}
}

func TestHealthTestAndCache(t *testing.T) {
	s, analyzer := newTestServer(t, 1024)
	router := s.Router()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	var health map[string]any
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&health))
	assert.Equal(t, "ok", health["status"])
	assert.Equal(t, true, health["remote_available"])

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/test", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, analyzer.docs, 1)
	assert.Equal(t, sampleEmail, analyzer.docs[0].Body)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/cache", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, analyzer.cleared)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/analyze", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestStartStop(t *testing.T) {
	s, _ := newTestServer(t, 1024)
	require.NoError(t, s.Start())
	require.NoError(t, s.Stop())

	stopped, _ := newTestServer(t, 1024)
	assert.NoError(t, stopped.Stop())
}
