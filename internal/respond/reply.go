package respond

import (
	"fmt"
	"time"

	"github.com/mikey/email-triage/internal/core"
	"go.uber.org/zap"
)

const dateLayout = "02/01/2006"

type template struct {
	body      string
	signature string
}

var replies = map[core.Category]template{
	core.Curriculo: {
		body:      "Confirmamos o recebimento do seu currículo. Analisaremos suas qualificações e entraremos em contato em breve.",
		signature: "RH",
	},
	core.Financeiro: {
		body:      "Confirmamos o recebimento do documento financeiro. Nossa equipe fará a análise e retornará em até 48 horas úteis.",
		signature: "Financeiro",
	},
	core.Importante: {
		body:      "Recebemos sua mensagem importante. Daremos prioridade ao assunto e retornaremos o mais breve possível.",
		signature: "Diretoria",
	},
	core.Educacional: {
		body:      "Confirmamos o recebimento da sua comunicação educacional. Retornaremos em breve.",
		signature: "Secretaria Acadêmica",
	},
	core.Profissional: {
		body:      "Agradecemos seu contato. Analisaremos o conteúdo e retornaremos dentro do prazo de 24 horas úteis.",
		signature: "Comercial",
	},
	core.Spam: {
		body:      "Esta mensagem foi classificada como material promocional e encaminhada ao filtro.",
		signature: "Filtragem",
	},
	core.Rotina: {
		body:      "Recebemos sua mensagem. Agradecemos o contato e retornaremos em breve.",
		signature: "Atendimento",
	},
}

var genericReply = template{body: "Confirmamos o recebimento da sua mensagem.", signature: "Atendimento"}

// SecurityAlert opens every phishing reply
const SecurityAlert = "ALERTA DE SEGURANÇA"

// Reply renders the canned reply of a category
func (g *Generator) Reply(category core.Category, reference string, sender core.Contact, now time.Time) string {
	if category == core.Phishing {
		return fmt.Sprintf("%s: possível phishing detectado.\n\n%s\n\n"+
			"Não clique em links, não forneça informações pessoais e exclua esta mensagem.\n\n%s\n\nAtenciosamente,\nSegurança",
			SecurityAlert, salutation(sender), stamp(reference, now))
	}

	t, ok := replies[category]
	if !ok {
		g.logger.Warn("No reply template for category, using generic reply", zap.String("category", string(category)))
		t = genericReply
	}
	return fmt.Sprintf("%s\n\n%s\n\n%s\n\nAtenciosamente,\n%s", salutation(sender), t.body, stamp(reference, now), t.signature)
}

// ErrorReply is sent when the analysis could not be completed
func (g *Generator) ErrorReply(reference string, now time.Time) string {
	return fmt.Sprintf("Prezado(a),\n\nNão foi possível processar sua mensagem.\n\n%s\n\nPor favor, tente novamente.\n\nAtenciosamente,\nSistema",
		stamp(reference, now))
}

func salutation(sender core.Contact) string {
	if sender.Name != "" {
		return "Prezado(a) " + sender.Name + ","
	}
	return "Prezado(a),"
}

func stamp(reference string, now time.Time) string {
	return fmt.Sprintf("Protocolo: %s\nData: %s", reference, now.Format(dateLayout))
}
