package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/mikey/email-triage/internal/adapters/extract"
	"github.com/mikey/email-triage/internal/config"
	"github.com/mikey/email-triage/internal/core"
	"go.uber.org/zap"
)

const (
	shutdownTimeout = 10 * time.Second
	// formOverhead is allowed on top of the upload limit for the other form fields
	formOverhead = 1 << 20

	sampleEmail = "Prezados, segue em anexo meu currículo para a vaga de desenvolvedor. " +
		"Tenho experiência com Python, React e Node. Atenciosamente, Maria Oliveira"
)

// Analyzer is the triage service as seen by the HTTP intake
type Analyzer interface {
	Analyze(ctx context.Context, doc core.RawDocument) (*core.AnalysisResult, error)
	RemoteAvailable() bool
	ClearCache()
}

// FileExtractor turns an upload into document text
type FileExtractor interface {
	Extract(filename string, r io.Reader) (core.RawDocument, error)
}

// Response is the body of a successful analysis
type Response struct {
	IsUseful       bool                 `json:"is_useful"`
	Analysis       *core.AnalysisResult `json:"analysis"`
	AutoResponse   string               `json:"auto_response"`
	AnalysisSource core.Source          `json:"analysis_source"`
}

// Server implements ports.Frontend over HTTP
type Server struct {
	analyzer   Analyzer
	extractor  FileExtractor
	cfg        config.ServerConfig
	logger     *zap.Logger
	httpServer *http.Server
}

// NewServer creates a new HTTP intake
func NewServer(analyzer Analyzer, extractor FileExtractor, cfg config.ServerConfig, logger *zap.Logger) *Server {
	return &Server{
		analyzer:  analyzer,
		extractor: extractor,
		cfg:       cfg,
		logger:    logger,
	}
}

// Router builds the route table
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.requestLogger)

	r.Post("/analyze", s.handleAnalyze)
	r.Get("/health", s.handleHealth)
	r.Get("/test", s.handleTest)
	r.Delete("/cache", s.handleClearCache)

	return r
}

// Start starts listening and serves in the background
func (s *Server) Start() error {
	ln, err := net.Listen("tcp", s.cfg.ListenAddress)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.cfg.ListenAddress, err)
	}

	s.httpServer = &http.Server{
		Handler:      s.Router(),
		ReadTimeout:  s.cfg.ReadTimeout,
		WriteTimeout: s.cfg.WriteTimeout,
	}

	s.logger.Info("HTTP intake started", zap.String("address", ln.Addr().String()))

	go func() {
		if err := s.httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("HTTP server error", zap.Error(err))
		}
	}()

	return nil
}

// Stop gracefully shuts the server down
func (s *Server) Stop() error {
	if s.httpServer == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return s.httpServer.Shutdown(ctx)
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes+formOverhead)

	doc, err := s.readDocument(r)
	if err != nil {
		s.logger.Debug("Rejected upload", zap.Error(err))
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	s.analyze(r.Context(), w, doc)
}

func (s *Server) handleTest(w http.ResponseWriter, r *http.Request) {
	s.analyze(r.Context(), w, core.RawDocument{Body: sampleEmail})
}

func (s *Server) analyze(ctx context.Context, w http.ResponseWriter, doc core.RawDocument) {
	result, err := s.analyzer.Analyze(ctx, doc)
	if errors.Is(err, core.ErrEmptyInput) {
		writeError(w, http.StatusBadRequest, "Insira texto ou arquivo.")
		return
	}
	if err != nil {
		s.logger.Error("Analysis failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Erro interno no servidor. Tente novamente.")
		return
	}

	writeJSON(w, http.StatusOK, Response{
		IsUseful:       result.Useful,
		Analysis:       result,
		AutoResponse:   result.Reply,
		AnalysisSource: result.Source,
	})
}

// readDocument merges the email_text field with the optional uploaded file
func (s *Server) readDocument(r *http.Request) (core.RawDocument, error) {
	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/") {
		if err := r.ParseMultipartForm(formOverhead); err != nil {
			return core.RawDocument{}, fmt.Errorf("invalid form: %w", err)
		}
	}
	doc := core.RawDocument{Body: strings.TrimSpace(r.FormValue("email_text"))}

	file, header, err := r.FormFile("file")
	if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
		return doc, nil
	}
	if err != nil {
		return doc, fmt.Errorf("invalid upload: %w", err)
	}
	defer file.Close()

	if header.Size > s.cfg.MaxUploadBytes {
		return doc, fmt.Errorf("%w: limit is %d bytes", extract.ErrFileTooLarge, s.cfg.MaxUploadBytes)
	}

	extracted, err := s.extractor.Extract(header.Filename, file)
	if err != nil {
		return doc, err
	}

	doc.Body = strings.TrimSpace(doc.Body + "\n" + extracted.Body)
	doc.AttachmentText = extracted.AttachmentText
	return doc, nil
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":           "ok",
		"remote_available": s.analyzer.RemoteAvailable(),
	})
}

func (s *Server) handleClearCache(w http.ResponseWriter, r *http.Request) {
	s.analyzer.ClearCache()
	s.logger.Info("Classifier cache cleared")
	writeJSON(w, http.StatusOK, map[string]string{"status": "cleared"})
}

func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.logger.Debug("HTTP request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", ww.Status()),
			zap.Duration("duration", time.Since(start)),
			zap.String("request_id", middleware.GetReqID(r.Context())))
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
