package extract

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	_ "github.com/emersion/go-message/charset"
	"github.com/emersion/go-message/mail"
	"github.com/mikey/email-triage/internal/core"
	"go.uber.org/zap"
)

// message reads an RFC 822 file. The first text/plain part (or text/html when there is none)
// is the body; text and PDF attachments are appended to the attachment text.
func (e *Extractor) message(path string) (core.RawDocument, error) {
	f, err := os.Open(path)
	if err != nil {
		return core.RawDocument{}, fmt.Errorf("could not open message: %w", err)
	}
	defer f.Close()

	mr, err := mail.CreateReader(f)
	if err != nil {
		return core.RawDocument{}, fmt.Errorf("could not parse message: %w", err)
	}
	defer mr.Close()

	var (
		plain, html string
		attachments []string
	)
	if subject, err := mr.Header.Subject(); err == nil && subject != "" {
		e.logger.Debug("Parsing message", zap.String("subject", subject))
	}

	for {
		p, err := mr.NextPart()
		if err == io.EOF {
			break
		}
		if err != nil {
			e.logger.Warn("Stopped reading message parts", zap.Error(err))
			break
		}

		switch h := p.Header.(type) {
		case *mail.InlineHeader:
			ct, _, _ := h.ContentType()
			body, err := io.ReadAll(io.LimitReader(p.Body, e.maxBytes))
			if err != nil {
				continue
			}
			if strings.HasPrefix(ct, "text/plain") && plain == "" {
				plain = string(body)
			} else if strings.HasPrefix(ct, "text/html") && html == "" {
				html = string(body)
			}
		case *mail.AttachmentHeader:
			name, _ := h.Filename()
			text, err := e.attachment(name, p.Body)
			if err != nil {
				e.logger.Debug("Skipping attachment", zap.String("filename", name), zap.Error(err))
				continue
			}
			attachments = append(attachments, text)
		}
	}

	body := plain
	if body == "" {
		body = html
	}
	return core.RawDocument{Body: body, AttachmentText: strings.Join(attachments, "\n")}, nil
}

func (e *Extractor) attachment(name string, r io.Reader) (string, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".txt":
		data, err := io.ReadAll(io.LimitReader(r, e.maxBytes))
		if err != nil {
			return "", err
		}
		return string(bytes.ToValidUTF8(data, nil)), nil
	case ".pdf":
		doc, err := e.Extract(name, r)
		if err != nil {
			return "", err
		}
		return doc.AttachmentText, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFile, name)
}
