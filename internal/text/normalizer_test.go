package text

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestNormalizer() *Normalizer {
	return NewNormalizer(NewSnowballStemmer(), zap.NewNop())
}

func TestFold(t *testing.T) {
	assert.Equal(t, "curriculo acao", Fold("Currículo Ação"))
	assert.Equal(t, "", Fold(""))
}

func TestClean(t *testing.T) {
	n := newTestNormalizer()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"blank", "   \n\t", ""},
		{
			"placeholders",
			"Acesse https://x.com/a ou escreva para joao@x.com ou ligue (11) 98765-4321",
			"Acesse [URL] ou escreva para [EMAIL] ou ligue [TELEFONE]",
		},
		{"html", "<p>Olá <b>mundo</b></p><script>alert(1)</script>", "Olá mundo"},
		{"symbols", "Preço: R$ 10 ★★★  ok", "Preço: R 10 ok"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, n.Clean(tt.in))
		})
	}
}

func TestNormalize(t *testing.T) {
	n := newTestNormalizer()
	assert.Equal(t, "reuniao as horas", n.Normalize("Reunião às 10 horas"))
	assert.Equal(t, "", n.Normalize(""))
}

func TestTokenize(t *testing.T) {
	n := newTestNormalizer()
	in := "Olá, meu nome é João! Tenho experiência em Python."

	assert.Equal(t, []string{"nome", "joao", "experiencia", "python"}, n.Tokenize(in, true))

	all := n.Tokenize(in, false)
	assert.Contains(t, all, "e")
	assert.Contains(t, all, "meu")
	assert.Len(t, all, 9)

	assert.Empty(t, n.Tokenize("", true))
	assert.NotNil(t, n.Tokenize("", true))
}

func TestIsStopWord(t *testing.T) {
	n := newTestNormalizer()
	assert.True(t, n.IsStopWord("Você"))
	assert.True(t, n.IsStopWord("atenciosamente"))
	assert.False(t, n.IsStopWord("boleto"))
}

func TestExtractKeywords(t *testing.T) {
	n := newTestNormalizer()

	got := n.ExtractKeywords("relatório relatório projeto projeto projeto prazo", 10)
	assert.Equal(t, []string{"projeto", "relatorio", "prazo"}, got)

	assert.Equal(t, []string{"projeto"}, n.ExtractKeywords("relatório projeto projeto", 1))
	assert.Empty(t, n.ExtractKeywords("", 5))
	assert.Empty(t, n.ExtractKeywords("o a de", 5))
}

func TestProcess(t *testing.T) {
	n := NewNormalizer(NewDictionaryLemmatizer(map[string]string{
		"reunioes": "reuniao",
		"marcadas": "marcar",
	}), zap.NewNop())

	out := n.Process("Reuniões marcadas para amanhã")
	assert.Equal(t, "Reuniões marcadas para amanhã", out.Cleaned)
	assert.Equal(t, "reunioes marcadas para amanha", out.Normalized)
	assert.Equal(t, []string{"reunioes", "marcadas", "amanha"}, out.Tokens)
	assert.Equal(t, []string{"reuniao", "marcar", "amanha"}, out.Lemmas)

	empty := n.Process("")
	assert.Empty(t, empty.Cleaned)
	assert.Empty(t, empty.Tokens)
	assert.Empty(t, empty.Lemmas)
}

func TestSnowballStemmer(t *testing.T) {
	s := NewSnowballStemmer()
	out := s.NormalizeTokens([]string{"reunioes", "", "reuniao"})
	require.Len(t, out, 2)
	assert.NotEmpty(t, out[0])
	assert.NotEmpty(t, out[1])
	assert.Equal(t, "snowball-portuguese", s.Name())
}

func TestLoadLemmaDictionary(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "lemmas.tsv")
	require.NoError(t, os.WriteFile(path, []byte("# form\tlemma\nenviados\tenviar\nReuniões\treunião\n\nbroken\n"), 0o600))

	l, err := LoadLemmaDictionary(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"enviar", "reuniao", "desconhecida"}, l.NormalizeTokens([]string{"enviados", "reunioes", "desconhecida"}))

	_, err = LoadLemmaDictionary(filepath.Join(dir, "missing.tsv"))
	assert.Error(t, err)

	emptyPath := filepath.Join(dir, "empty.tsv")
	require.NoError(t, os.WriteFile(emptyPath, []byte("# nothing\n"), 0o600))
	_, err = LoadLemmaDictionary(emptyPath)
	assert.Error(t, err)
}
