package respond

import (
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/mikey/email-triage/internal/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedTech []string

func (f fixedTech) TechStack(string) []string { return f }

func TestSummarize(t *testing.T) {
	g := NewGenerator(nil, nil, nil)

	tests := []struct {
		name   string
		in     string
		remote bool
		want   string
	}{
		{
			name: "local keeps two long sentences",
			in:   "Olá. Segue em anexo o relatório mensal de vendas. Favor revisar os números do trimestre. Obrigado.",
			want: "Segue em anexo o relatório mensal de vendas. Favor revisar os números do trimestre.",
		},
		{
			name:   "remote accepts three word sentences",
			in:     "Reunião amanhã cedo. Traga o relatório. Confirme presença hoje. Obrigado a todos.",
			remote: true,
			want:   "Reunião amanhã cedo. Traga o relatório. Confirme presença hoje.",
		},
		{
			name: "falls back to the leading characters",
			in:   "Reunião amanhã cedo. Traga o relatório. Confirme presença hoje. Obrigado a todos.",
			want: "Reunião amanhã cedo. Traga o relatório. Confirme presença hoje. Obrigado a todos...",
		},
		{
			name: "short text is kept",
			in:   "Oi, tudo bem?",
			want: "Oi, tudo bem?",
		},
		{
			name: "whitespace only",
			in:   " \n\t ",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, g.Summarize(tt.in, tt.remote))
		})
	}
}

func TestSummarizeBudget(t *testing.T) {
	g := NewGenerator(nil, nil, nil)
	in := "Gostaria de agendar uma reunião para discutir o novo projeto de integração com a equipe financeira. " +
		"Também precisamos revisar o cronograma das entregas previstas para o próximo trimestre. Aguardo retorno."

	got := g.Summarize(in, false)
	assert.True(t, strings.HasSuffix(got, "..."))
	assert.LessOrEqual(t, utf8.RuneCountInString(got), 103)
	assert.True(t, strings.HasPrefix(got, "Gostaria de agendar"))
}

func TestTags(t *testing.T) {
	g := NewGenerator(fixedTech{"python", "react", "node", "docker", "aws"}, nil, nil)

	t.Run("resume", func(t *testing.T) {
		tags := g.Tags("", core.Curriculo, core.EmailMetadata{WordCount: 20}, []string{"curriculo", "experiencia", "sql"})
		assert.Equal(t, []string{"curriculo", "python", "react", "node", "docker", "profissional", "experiencia", "curto"}, tags)
	})

	t.Run("metadata", func(t *testing.T) {
		tags := g.Tags("", core.Rotina, core.EmailMetadata{HasAttachments: true, HasLinks: true, WordCount: 250}, nil)
		assert.Equal(t, []string{"rotina", "com_anexo", "com_links", "longo"}, tags)
	})

	t.Run("medium length gets no length tag", func(t *testing.T) {
		tags := g.Tags("", core.Financeiro, core.EmailMetadata{WordCount: 100}, []string{"boleto"})
		assert.Equal(t, []string{"financeiro", "documento_financeiro", "boleto"}, tags)
	})

	t.Run("cap and dedupe", func(t *testing.T) {
		keywords := []string{"alpha", "bravo", "charlie", "delta", "alpha", "echo", "foxtrot", "golf", "hotel", "india", "juliet"}
		tags := g.Tags("", core.Spam, core.EmailMetadata{HasLinks: true}, keywords)
		require.Len(t, tags, MaxTags)
		assert.Equal(t, "spam", tags[0])
		assert.Equal(t, "promocional", tags[1])
		assert.Len(t, uniq(tags), len(tags))
	})

	t.Run("no technologies outside resumes", func(t *testing.T) {
		tags := g.Tags("", core.Profissional, core.EmailMetadata{WordCount: 60}, nil)
		assert.Equal(t, []string{"profissional", "comercial"}, tags)
	})
}

func uniq(tags []string) map[string]struct{} {
	seen := make(map[string]struct{}, len(tags))
	for _, tag := range tags {
		seen[tag] = struct{}{}
	}
	return seen
}

func TestReply(t *testing.T) {
	g := NewGenerator(nil, nil, nil)
	now := time.Date(2024, time.March, 5, 10, 0, 0, 0, time.UTC)

	t.Run("phishing is a warning", func(t *testing.T) {
		reply := g.Reply(core.Phishing, "NLP-12345", core.Contact{}, now)
		assert.True(t, strings.HasPrefix(reply, SecurityAlert))
		assert.Contains(t, reply, "Não clique em links")
		assert.NotContains(t, reply, "Confirmamos")
	})

	t.Run("named salutation", func(t *testing.T) {
		reply := g.Reply(core.Curriculo, "IA-54321", core.Contact{Name: "João Silva"}, now)
		assert.True(t, strings.HasPrefix(reply, "Prezado(a) João Silva,"))
		assert.Contains(t, reply, "Protocolo: IA-54321")
		assert.Contains(t, reply, "Data: 05/03/2024")
		assert.True(t, strings.HasSuffix(reply, "RH"))
	})

	t.Run("every category has a template", func(t *testing.T) {
		for _, c := range core.Categories {
			reply := g.Reply(c, "NLP-1", core.Contact{}, now)
			assert.NotEmpty(t, reply)
			if c != core.Phishing {
				assert.True(t, strings.HasPrefix(reply, "Prezado(a),"), c)
			}
		}
	})

	t.Run("unknown category", func(t *testing.T) {
		reply := g.Reply(core.Category("OUTRO"), "NLP-1", core.Contact{}, now)
		assert.Contains(t, reply, "Confirmamos o recebimento da sua mensagem.")
	})

	t.Run("error reply", func(t *testing.T) {
		reply := g.ErrorReply("ERR-1234", now)
		assert.Contains(t, reply, "Protocolo: ERR-1234")
		assert.Contains(t, reply, "tente novamente")
	})
}
