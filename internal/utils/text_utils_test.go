package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruncate(t *testing.T) {
	tp := NewTextProcessor(nil)

	assert.Equal(t, "ação", tp.Truncate("ação", 10))
	assert.Equal(t, "aç", tp.Truncate("ação", 2))
	assert.Equal(t, "ação", tp.Truncate("ação", 0))
}

func TestEllipsize(t *testing.T) {
	tp := NewTextProcessor(nil)

	assert.Equal(t, "curto", tp.Ellipsize("curto", 10))
	assert.Equal(t, "uma frase...", tp.Ellipsize("uma frase longa", 10))
}

func TestSanitizeAndPrepare(t *testing.T) {
	tp := NewTextProcessor(nil)

	assert.Equal(t, "ok", tp.SanitizeUTF8("o\xffk"))
	assert.Equal(t, "válido", tp.SanitizeUTF8("válido"))
	assert.Equal(t, "ok", tp.Prepare("o\xffk!", 2))
}
