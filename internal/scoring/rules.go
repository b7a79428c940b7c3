package scoring

import (
	"github.com/mikey/email-triage/internal/core"
)

var techKeywords = []Keyword{
	kw("python"), kw("javascript"), word("java"), prefix("react"), word("node"), kw("nodejs"),
	kw("typescript"), kw("django"), kw("flask"), kw("docker"), kw("sql"), word("aws"),
	kw("kubernetes"), prefix("angular"), word("vue"), kw("golang"),
}

var resumeKeywords = append([]Keyword{
	kw("curriculo"), kw("curriculum vitae"), word("cv"), word("resume"), kw("linkedin"),
	kw("experiencia"), kw("formacao"), kw("habilidades"),
	kw("competencias"), kw("candidatura"), prefix("candidato"), kw("graduacao"),
	kw("especializacao"), kw("mestrado"), kw("doutorado"), kw("portfolio"), kw("github"),
	kw("desenvolvedor"), kw("full stack"), kw("fullstack"), word("junior"), word("pleno"),
	word("senior"), prefix("vaga"), kw("emprego"), kw("entrevista"), kw("objetivo profissional"),
	kw("resumo profissional"), kw("perfil profissional"), kw("historico profissional"),
	kw("pretensao salarial"), kw("idiomas"), kw("realizacoes"), kw("atribuicoes"),
}, techKeywords...)

var educationKeywords = []Keyword{
	prefix("curso"), kw("treinamento"), kw("capacitacao"), kw("workshop"), kw("webinar"),
	prefix("aula"), kw("modulo"), kw("certificado"), kw("certificacao"), kw("diploma"),
	kw("aprendizado"), prefix("ensino"), kw("educacao"), kw("matricula"), prefix("aluno"),
	kw("secretaria academica"), kw("universidade"), kw("faculdade"), kw("disciplina"),
	kw("semestre"), kw("inscricao"),
}

var financeKeywords = []Keyword{
	weighted("nota fiscal", 2), weighted("boleto", 2), weighted("fatura", 2), weighted("danfe", 2),
	weighted("recibo fiscal", 2), weighted("comprovante de pagamento", 2),
	weighted("demonstracao financeira", 2), weighted("balanco patrimonial", 2),
	weighted("conciliacao bancaria", 2), weighted("chave de acesso", 2),
	word("nf"), word("nfe"), word("nf-e"), kw("pagamento"), prefix("financeir"), word("icms"),
	word("ipi"), word("iss"), word("pis"), kw("cofins"), word("cnpj"), word("cpf"), word("dre"),
	kw("inscricao estadual"), kw("livro caixa"), kw("vencimento"), kw("duplicata"),
	kw("reembolso"), kw("tesouraria"), prefix("contabil"), kw("imposto"),
}

var phishingKeywords = []Keyword{
	weighted("sua conta foi", 3), weighted("conta comprometida", 3),
	weighted("confirmar identidade", 3), weighted("validar conta", 3), weighted("ativar conta", 3),
	weighted("reenviar senha", 3), weighted("resetar senha", 3),
	weighted("verificar suas informacoes", 3), weighted("transacao nao autorizada", 3),
	weighted("atividade suspeita", 3), weighted("departamento fraude", 3),
	weighted("banco-seguro", 3), weighted("security-bank", 3), weighted("atualizacao-conta", 3),
	weighted("verificacao-online", 3), weighted("central-cliente", 3), weighted("suporte-online", 3),
	weighted("bloqueada", 2), weighted("suspensa", 2), weighted("encerrada", 2),
	weighted("risco de fechamento", 2), weighted("cancelamento definitivo", 2),
	weighted("perda de acesso", 2), weighted("acesso revogado", 2),
	weighted("clique para verificar", 2), weighted("clique para confirmar", 2),
	weighted("clique no link", 2), weighted("link seguro", 2), weighted("atualizar dados", 2),
	weighted("prazo de 24 horas", 2), weighted("prazo 24h", 2), weighted("suporte bancario", 2),
	weighted("central seguranca", 2), weighted("seguranca da conta", 2),
	weighted("tentativa acesso", 2),
	kw("urgente"), kw("imediatamente"), kw("agora mesmo"), kw("ultima chance"),
	kw("acao necessaria"), kw("acao imediata"), kw("tempo limitado"), kw("clique aqui"),
	kw("acesse o link"), kw("!!!"), kw("urgentissimo"), kw("importantissimo"),
	kw("confidencial"), word("restrito"),
}

var phishingPatterns = []Pattern{
	pattern(`sua conta.*foi.*(bloqueada|suspensa|comprometida)`, 3),
	pattern(`conta.*comprometida`, 2),
	pattern(`clique.*aqui.*verificar`, 2),
	pattern(`a[cç][aã]o.*necess[aá]ria.*imediata`, 2),
	pattern(`prazo.*24.*horas`, 2),
	pattern(`[uú]ltima.*chance.*acesso`, 2),
}

var spamKeywords = []Keyword{
	kw("promocao"), kw("desconto"), prefix("oferta"), kw("black friday"), kw("cyber monday"),
	kw("cashback"), word("gratis"), kw("gratuito"), kw("cupom"), kw("codigo promocional"),
	kw("newsletter"), kw("marketing"), kw("mailing"), kw("compre agora"), kw("adquira ja"),
	kw("apenas hoje"), kw("por tempo limitado"), kw("promocao relampago"), kw("imperdivel"),
	kw("frete gratis"), kw("liquidacao"), kw("nao quer mais receber"), kw("descadastrar"),
	kw("unsubscribe"), kw("mensagem automatica"), kw("por apenas r$"), kw("12x de"),
	kw("parcelamento"), kw("sorteio"), kw("brinde"),
}

var urgentKeywords = []Keyword{
	prefix("urgente"), prefix("urgencia"), kw("prioridade maxima"), kw("prioridade alta"),
	prefix("critico"), kw("atencao imediata"), kw("acao necessaria"), prefix("emergencia"),
	kw("o quanto antes"), word("asap"), kw("prazo final"), kw("imediatamente"),
}

var professionalKeywords = []Keyword{
	prefix("reuniao"), prefix("reunioes"), prefix("projeto"), prefix("relatorio"),
	prefix("contrato"), kw("proposta"), kw("orcamento"), prefix("cliente"), prefix("parceria"),
	kw("cronograma"), kw("planejamento"), kw("estrategia"), word("equipe"), kw("processo seletivo"),
	kw("recrutamento"), kw("estagio"), kw("trainee"), kw("carreira"), word("clt"),
	word("remoto"), kw("hibrido"), kw("presencial"), kw("servico"), kw("prazo de entrega"),
	kw("auditoria"), kw("compliance"), kw("juridico"), kw("gestao"),
}

// DefaultRules builds the category ladder in evaluation order. ROTINA is the implicit fallback.
func DefaultRules(th Thresholds) []Rule {
	return []Rule{
		{
			Category:  core.Phishing,
			Label:     LabelPhishing,
			Keywords:  phishingKeywords,
			Patterns:  phishingPatterns,
			Measure:   WeightedPoints,
			Threshold: th.PhishingHeuristic,
			Base:      0.7,
			Increment: 0.05,
		},
		{
			Category:  core.Curriculo,
			Label:     LabelCurriculo,
			Keywords:  resumeKeywords,
			Measure:   DistinctTerms,
			Threshold: th.Resume,
			Base:      0.65,
			Increment: 0.05,
		},
		{
			Category:  core.Educacional,
			Label:     LabelEducacional,
			Keywords:  educationKeywords,
			Measure:   DistinctTerms,
			Threshold: th.Education,
			Base:      0.6,
			Increment: 0.05,
		},
		{
			Category:  core.Financeiro,
			Label:     LabelFinanceiro,
			Keywords:  financeKeywords,
			Measure:   WeightedPoints,
			Threshold: th.Finance,
			Base:      0.6,
			Increment: 0.05,
		},
		{
			Category:  core.Spam,
			Label:     LabelSpam,
			Keywords:  spamKeywords,
			Measure:   DistinctTerms,
			Threshold: th.Spam,
			Base:      0.6,
			Increment: 0.04,
		},
		{
			Category:  core.Importante,
			Label:     LabelImportante,
			Keywords:  urgentKeywords,
			Measure:   DistinctTerms,
			Threshold: th.Urgent,
			Base:      0.6,
			Increment: 0.1,
		},
		{
			Category:  core.Profissional,
			Label:     LabelProfissional,
			Keywords:  professionalKeywords,
			Measure:   DistinctTerms,
			Threshold: th.Professional,
			Base:      0.55,
			Increment: 0.05,
		},
	}
}

// techAliases maps a tag to the terms that reveal the technology
var techAliases = []struct {
	tag      string
	keywords []Keyword
}{
	{"python", []Keyword{kw("python")}},
	{"javascript", []Keyword{kw("javascript"), word("js")}},
	{"typescript", []Keyword{kw("typescript"), word("ts")}},
	{"java", []Keyword{word("java")}},
	{"react", []Keyword{prefix("react")}},
	{"node", []Keyword{word("node"), kw("nodejs")}},
	{"django", []Keyword{kw("django")}},
	{"flask", []Keyword{kw("flask")}},
	{"html", []Keyword{prefix("html")}},
	{"css", []Keyword{prefix("css")}},
	{"mysql", []Keyword{kw("mysql")}},
	{"postgresql", []Keyword{kw("postgres")}},
	{"mongodb", []Keyword{prefix("mongo")}},
	{"docker", []Keyword{kw("docker")}},
	{"aws", []Keyword{word("aws"), kw("amazon web services")}},
	{"git", []Keyword{word("git"), kw("github")}},
}
