package scoring

import (
	"strings"

	"github.com/mikey/email-triage/internal/core"
	"github.com/mikey/email-triage/internal/text"
)

// Descriptive labels, one per category, sent to zero-shot oracles
const (
	LabelCurriculo    = "currículo profissional candidatura emprego vaga trabalho"
	LabelFinanceiro   = "financeiro nota fiscal boleto pagamento fatura cobrança"
	LabelImportante   = "urgente importante prioridade crítico diretoria"
	LabelEducacional  = "educacional curso ensino treinamento aprendizado"
	LabelProfissional = "profissional negócios reunião projeto parceria"
	LabelSpam         = "spam promoção marketing publicidade oferta desconto"
	LabelPhishing     = "phishing fraude golpe segurança suspeito perigoso banco senha"
	LabelRotina       = "email normal rotina comunicação mensagem contato"
)

// CandidateLabels is the label set offered to the remote classifier
var CandidateLabels = []string{
	LabelCurriculo,
	LabelFinanceiro,
	LabelImportante,
	LabelEducacional,
	LabelProfissional,
	LabelSpam,
	LabelPhishing,
	LabelRotina,
}

// labelMapping is checked in order, the first category with a matching fragment wins
var labelMapping = []struct {
	category  core.Category
	fragments []string
}{
	{core.Curriculo, []string{"curriculo", "candidatura", "resume"}},
	{core.Financeiro, []string{"financeiro", "fiscal", "boleto", "pagamento", "fatura"}},
	{core.Importante, []string{"urgente", "importante", "prioridade"}},
	{core.Educacional, []string{"educacional", "curso", "ensino", "treinamento"}},
	{core.Profissional, []string{"profissional", "negocio", "reuniao", "projeto"}},
	{core.Spam, []string{"spam", "promocao", "marketing", "publicidade"}},
	{core.Phishing, []string{"phishing", "fraude", "golpe"}},
}

// MapLabel maps an oracle label (descriptive phrase or category name) to a category
func MapLabel(label string) core.Category {
	folded := text.Fold(label)
	for _, m := range labelMapping {
		for _, fragment := range m.fragments {
			if strings.Contains(folded, fragment) {
				return m.category
			}
		}
	}
	return core.Rotina
}

// LabelFor returns the descriptive label of a category
func LabelFor(c core.Category) string {
	switch c {
	case core.Phishing:
		return LabelPhishing
	case core.Curriculo:
		return LabelCurriculo
	case core.Financeiro:
		return LabelFinanceiro
	case core.Importante:
		return LabelImportante
	case core.Educacional:
		return LabelEducacional
	case core.Profissional:
		return LabelProfissional
	case core.Spam:
		return LabelSpam
	default:
		return LabelRotina
	}
}

var formalClosings = []string{
	"atenciosamente", "cordialmente", "respeitosamente", "grato pela", "grata pela",
	"agradeco a atencao", "agradeco desde ja", "sem mais", "cumprimentos", "saudacoes",
}

// HasFormalClosing reports whether the text ends a letter with a formal sign-off
func HasFormalClosing(s string) bool {
	folded := text.Fold(s)
	for _, closing := range formalClosings {
		if strings.Contains(folded, closing) {
			return true
		}
	}
	return false
}
