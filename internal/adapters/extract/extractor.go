package extract

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/ledongthuc/pdf"
	"github.com/mikey/email-triage/internal/core"
	"go.uber.org/zap"
)

// DefaultMaxBytes is the largest upload accepted
const DefaultMaxBytes = 10 << 20

var (
	// ErrUnsupportedFile is returned for extensions or contents other than txt, pdf and eml
	ErrUnsupportedFile = errors.New("unsupported file type")
	// ErrFileTooLarge is returned when the upload exceeds the size limit
	ErrFileTooLarge = errors.New("file too large")
)

// Extractor turns uploaded files into document text. Every upload goes through a temp file
// that is removed before Extract returns.
type Extractor struct {
	maxBytes int64
	tempDir  string
	logger   *zap.Logger
}

// NewExtractor creates an extractor. tempDir may be empty for the system default.
func NewExtractor(maxBytes int64, tempDir string, logger *zap.Logger) *Extractor {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBytes
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Extractor{maxBytes: maxBytes, tempDir: tempDir, logger: logger}
}

// Supported reports whether the file name has an accepted extension
func Supported(filename string) bool {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".txt", ".pdf", ".eml":
		return true
	}
	return false
}

// Extract reads an upload. Plain text and PDF files become attachment text, e-mail
// messages yield their body and the text of their attachments.
func (e *Extractor) Extract(filename string, r io.Reader) (doc core.RawDocument, err error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if !Supported(filename) {
		return doc, fmt.Errorf("%w: %q", ErrUnsupportedFile, filename)
	}

	path, err := e.spool(r, ext)
	if path != "" {
		defer func() {
			if rmErr := os.Remove(path); rmErr != nil && !errors.Is(rmErr, os.ErrNotExist) {
				e.logger.Warn("Failed to remove temp file", zap.String("path", path), zap.Error(rmErr))
			}
		}()
	}
	if err != nil {
		return doc, err
	}

	mtype, err := mimetype.DetectFile(path)
	if err != nil {
		return doc, fmt.Errorf("could not detect file type: %w", err)
	}
	e.logger.Debug("Upload received",
		zap.String("filename", filename),
		zap.String("mime", mtype.String()))

	switch ext {
	case ".txt":
		if !mtype.Is("text/plain") {
			return doc, fmt.Errorf("%w: %s content in %q", ErrUnsupportedFile, mtype.String(), filename)
		}
		doc.AttachmentText, err = readText(path)
	case ".pdf":
		if !mtype.Is("application/pdf") {
			return doc, fmt.Errorf("%w: %s content in %q", ErrUnsupportedFile, mtype.String(), filename)
		}
		doc.AttachmentText, err = pdfText(path)
	case ".eml":
		if !mtype.Is("message/rfc822") && !mtype.Is("text/plain") {
			return doc, fmt.Errorf("%w: %s content in %q", ErrUnsupportedFile, mtype.String(), filename)
		}
		doc, err = e.message(path)
	}
	if err != nil {
		return core.RawDocument{}, err
	}

	doc.Body = strings.TrimSpace(doc.Body)
	doc.AttachmentText = strings.TrimSpace(doc.AttachmentText)
	return doc, nil
}

// spool copies r into a temp file, enforcing the size limit
func (e *Extractor) spool(r io.Reader, ext string) (string, error) {
	f, err := os.CreateTemp(e.tempDir, "triage-*"+ext)
	if err != nil {
		return "", fmt.Errorf("could not create temp file: %w", err)
	}
	defer f.Close()

	n, err := io.Copy(f, io.LimitReader(r, e.maxBytes+1))
	if err != nil {
		return f.Name(), fmt.Errorf("could not store upload: %w", err)
	}
	if n > e.maxBytes {
		return f.Name(), fmt.Errorf("%w: limit is %d bytes", ErrFileTooLarge, e.maxBytes)
	}
	return f.Name(), nil
}

func readText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("could not read text file: %w", err)
	}
	return strings.ToValidUTF8(string(data), ""), nil
}

func pdfText(path string) (string, error) {
	f, reader, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("could not open pdf: %w", err)
	}
	defer f.Close()

	plain, err := reader.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("could not extract pdf text: %w", err)
	}

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(plain); err != nil {
		return "", fmt.Errorf("could not read pdf text: %w", err)
	}
	return buf.String(), nil
}
