package extract

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const sampleMessage = "From: Ana Souza <ana@example.com>\r\n" +
	"To: rh@example.com\r\n" +
	"Subject: Candidatura\r\n" +
	"MIME-Version: 1.0\r\n" +
	"Content-Type: multipart/mixed; boundary=\"XYZ\"\r\n" +
	"\r\n" +
	"--XYZ\r\n" +
	"Content-Type: text/plain; charset=utf-8\r\n" +
	"\r\n" +
	"Segue meu currículo em anexo.\r\n" +
	"--XYZ\r\n" +
	"Content-Type: text/plain; charset=utf-8\r\n" +
	"Content-Disposition: attachment; filename=\"cv.txt\"\r\n" +
	"\r\n" +
	"Experiência com Python e Go.\r\n" +
	"--XYZ\r\n" +
	"Content-Type: image/png\r\n" +
	"Content-Disposition: attachment; filename=\"foto.png\"\r\n" +
	"\r\n" +
	"not really a png\r\n" +
	"--XYZ--\r\n"

func newTestExtractor(t *testing.T, maxBytes int64) (*Extractor, string) {
	t.Helper()
	dir := t.TempDir()
	return NewExtractor(maxBytes, dir, zap.NewNop()), dir
}

func assertNoTempFiles(t *testing.T, dir string) {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestExtractText(t *testing.T) {
	e, dir := newTestExtractor(t, 0)

	doc, err := e.Extract("nota.TXT", strings.NewReader("  Segue a nota fiscal.\n"))
	require.NoError(t, err)
	assert.Equal(t, "", doc.Body)
	assert.Equal(t, "Segue a nota fiscal.", doc.AttachmentText)
	assertNoTempFiles(t, dir)
}

func TestExtractMessage(t *testing.T) {
	e, dir := newTestExtractor(t, 0)

	doc, err := e.Extract("mensagem.eml", strings.NewReader(sampleMessage))
	require.NoError(t, err)
	assert.Equal(t, "Segue meu currículo em anexo.", doc.Body)
	assert.Equal(t, "Experiência com Python e Go.", doc.AttachmentText)
	assertNoTempFiles(t, dir)
}

func TestExtractErrors(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		content  []byte
		maxBytes int64
		want     error
	}{
		{"extension", "planilha.xlsx", []byte("x"), 0, ErrUnsupportedFile},
		{"no extension", "README", []byte("x"), 0, ErrUnsupportedFile},
		{"too large", "grande.txt", bytes.Repeat([]byte("a"), 64), 32, ErrFileTooLarge},
		{"fake pdf", "nota.pdf", []byte("apenas texto, nao e pdf"), 0, ErrUnsupportedFile},
		{"binary txt", "nota.txt", []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR"), 0, ErrUnsupportedFile},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, dir := newTestExtractor(t, tt.maxBytes)
			_, err := e.Extract(tt.filename, bytes.NewReader(tt.content))
			assert.ErrorIs(t, err, tt.want)
			assertNoTempFiles(t, dir)
		})
	}
}

func TestSupported(t *testing.T) {
	assert.True(t, Supported("a.txt"))
	assert.True(t, Supported("a.PDF"))
	assert.True(t, Supported("a.eml"))
	assert.False(t, Supported("a.docx"))
	assert.False(t, Supported(""))
}
