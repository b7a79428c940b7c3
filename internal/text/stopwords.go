package text

// portugueseStopWords is the general-language list, stored folded.
var portugueseStopWords = []string{
	"a", "ao", "aos", "aquela", "aquelas", "aquele", "aqueles", "aquilo", "as", "ate", "com", "como",
	"da", "das", "de", "dela", "delas", "dele", "deles", "depois", "do", "dos", "e", "ela", "elas",
	"ele", "eles", "em", "entre", "era", "eram", "eramos", "essa", "essas", "esse", "esses", "esta",
	"estamos", "estao", "estar", "estas", "estava", "estavam", "estavamos", "este", "esteja",
	"estejam", "estejamos", "estes", "esteve", "estive", "estivemos", "estiver", "estivera",
	"estiveram", "estiverem", "estivermos", "estivesse", "estivessem", "estou", "eu", "foi",
	"fomos", "for", "fora", "foram", "forem", "formos", "fosse", "fossem", "fui", "ha", "haja",
	"hajam", "havemos", "haver", "hei", "houve", "houvemos", "houver", "houvera", "houveram",
	"houverei", "houverem", "houveria", "houvermos", "houvesse", "houvessem", "isso", "isto", "ja",
	"lhe", "lhes", "mais", "mas", "me", "mesmo", "meu", "meus", "minha", "minhas", "muito", "na",
	"nao", "nas", "nem", "no", "nos", "nossa", "nossas", "nosso", "nossos", "num", "numa", "o", "os",
	"ou", "para", "pela", "pelas", "pelo", "pelos", "por", "qual", "quando", "que", "quem", "sao",
	"se", "seja", "sejam", "sejamos", "sem", "ser", "sera", "serao", "seria", "seriam", "seu",
	"seus", "so", "somos", "sou", "sua", "suas", "tambem", "te", "tem", "temos", "tenha", "tenham",
	"tenho", "teu", "teus", "teve", "tinha", "tinham", "tive", "tivemos", "tiver", "tivera",
	"tiveram", "tiverem", "tivermos", "tivesse", "tivessem", "tu", "tua", "tuas", "um", "uma",
	"voce", "voces", "vos", "aqui", "ainda", "assim", "bem", "cada", "onde", "pois", "porque",
	"sobre", "segue", "seguem", "todo", "todos", "toda", "todas",
}

// emailStopWords are salutations, sign-offs and header boilerplate.
var emailStopWords = []string{
	"att", "attach", "attachment", "anexo", "anexado", "encaminhado", "forwarded", "re:", "fw:",
	"de:", "para:", "assunto:", "subject:", "from:", "to:", "date:", "data:", "enviado", "sent",
	"message", "mensagem", "email", "e-mail", "dear", "caro", "cara", "prezado", "prezada",
	"cordiais", "atenciosamente", "sinceramente", "grato", "grata", "obrigado", "obrigada",
	"cumprimentos", "saudacoes", "regards", "best", "thanks", "thank", "ola", "oi",
	// placeholders left by Clean
	"url", "telefone",
}
