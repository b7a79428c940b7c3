package triage

import (
	"context"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/mikey/email-triage/internal/core"
	"github.com/mikey/email-triage/internal/core/mocks"
	"github.com/mikey/email-triage/internal/domainlist"
	"github.com/mikey/email-triage/internal/respond"
	"github.com/mikey/email-triage/internal/scoring"
	"github.com/mikey/email-triage/internal/text"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

const (
	resumeText   = "Meu nome é João Silva. Tenho experiência em Python, React e Node. Atenciosamente, João Silva"
	phishingText = "Sua conta foi bloqueada. Clique aqui para verificar em 24 horas."
	financeText  = "Segue a nota fiscal NF-e referente ao pagamento do boleto."
	meetingText  = "Gostaria de agendar uma reunião para discutir o andamento do projeto com a equipe."
)

var fixedNow = time.Date(2024, time.March, 5, 10, 0, 0, 0, time.UTC)

func newTestService(t *testing.T, remote core.RemoteClassifier, opts Options) *Service {
	t.Helper()
	scorer, err := scoring.NewScorer(scoring.DefaultThresholds(), domainlist.NewChecker(domainlist.DefaultBlocked, nil), zap.NewNop())
	require.NoError(t, err)

	if opts.Threshold == 0 {
		opts.Threshold = 0.6
	}
	if opts.MaxContentChars == 0 {
		opts.MaxContentChars = 1000
	}

	s := NewService(text.NewNormalizer(text.NewSnowballStemmer(), zap.NewNop()), scorer, remote, nil, opts, zap.NewNop())
	s.now = func() time.Time { return fixedNow }
	s.newID = func() string { return "00000000-0000-0000-0000-000000000001" }
	s.reference = func(prefix string, digits int) string {
		return prefix + "-" + strings.Repeat("7", digits)
	}
	return s
}

func TestAnalyzeEmptyInput(t *testing.T) {
	ctrl := gomock.NewController(t)
	s := newTestService(t, mocks.NewMockRemoteClassifier(ctrl), Options{})

	for _, doc := range []core.RawDocument{{}, {Body: "   \n", AttachmentText: "\t"}} {
		result, err := s.Analyze(context.Background(), doc)
		assert.ErrorIs(t, err, core.ErrEmptyInput)
		assert.Nil(t, result)
	}
}

func TestAnalyzeLocalScenarios(t *testing.T) {
	s := newTestService(t, nil, Options{})

	t.Run("resume", func(t *testing.T) {
		result, err := s.Analyze(context.Background(), core.RawDocument{Body: resumeText})
		require.NoError(t, err)

		assert.Equal(t, core.Curriculo, result.Category)
		assert.GreaterOrEqual(t, result.Utility, 0.85)
		assert.True(t, result.Useful)
		assert.True(t, result.RequiresAction)
		assert.Contains(t, result.Tags, "curriculo")
		assert.Contains(t, result.Tags, "python")
		assert.Equal(t, "João Silva", result.Sender.Name)
		assert.True(t, strings.HasPrefix(result.Reply, "Prezado(a) João Silva,"))
		assert.Equal(t, "RH", result.Department)
	})

	t.Run("phishing", func(t *testing.T) {
		result, err := s.Analyze(context.Background(), core.RawDocument{Body: phishingText})
		require.NoError(t, err)

		assert.Equal(t, core.Phishing, result.Category)
		assert.LessOrEqual(t, result.Utility, 0.10)
		assert.False(t, result.Useful)
		assert.True(t, result.RequiresAction)
		assert.True(t, strings.HasPrefix(result.Reply, respond.SecurityAlert))
		assert.Equal(t, "CRÍTICA", result.Priority)
	})

	t.Run("blocked domain", func(t *testing.T) {
		result, err := s.Analyze(context.Background(), core.RawDocument{
			Body: "Olá, atualize sua conta em https://google-workspace-security-update.com/login hoje.",
		})
		require.NoError(t, err)

		assert.Equal(t, core.Phishing, result.Category)
		assert.LessOrEqual(t, result.Utility, 0.10)
		assert.True(t, strings.HasPrefix(result.Reply, respond.SecurityAlert))
	})

	t.Run("finance", func(t *testing.T) {
		result, err := s.Analyze(context.Background(), core.RawDocument{Body: financeText})
		require.NoError(t, err)

		assert.Equal(t, core.Financeiro, result.Category)
		assert.GreaterOrEqual(t, result.Utility, 0.80)
		assert.Equal(t, core.SourceLocal, result.Source)
		assert.Equal(t, "NLP-77777", result.Reference)
		assert.Contains(t, result.Reply, "Protocolo: NLP-77777")
		assert.Contains(t, result.Reply, "Data: 05/03/2024")
		assert.Equal(t, fixedNow, result.AnalyzedAt)
		assert.Equal(t, "00000000-0000-0000-0000-000000000001", result.ID)
	})

	t.Run("attachment only", func(t *testing.T) {
		result, err := s.Analyze(context.Background(), core.RawDocument{AttachmentText: financeText})
		require.NoError(t, err)

		assert.Equal(t, core.Financeiro, result.Category)
		assert.True(t, result.Metadata.HasAttachments)
		assert.Contains(t, result.Tags, "com_anexo")
	})
}

func TestAnalyzeProperties(t *testing.T) {
	s := newTestService(t, nil, Options{})
	inputs := []string{
		resumeText, phishingText, financeText, meetingText,
		"Bom dia",
		"URGENTE!!! Promoção imperdível, desconto de 70%, compre agora, oferta por tempo limitado, clique aqui",
		"Inscrições abertas para o curso de pós-graduação. A matrícula vai até sexta, é urgente e importante.",
		strings.Repeat("palavra diferente outra coisa qualquer ", 80),
		"<html><body><p>Olá</p><script>x()</script></body></html>",
		"12345 67890 !!! ???",
	}

	for _, in := range inputs {
		first, err := s.Analyze(context.Background(), core.RawDocument{Body: in})
		require.NoError(t, err)

		assert.True(t, first.Category.Valid(), in)
		assert.GreaterOrEqual(t, first.Utility, 0.05, in)
		assert.LessOrEqual(t, first.Utility, 0.99, in)
		assert.LessOrEqual(t, len(first.Tags), respond.MaxTags, in)
		assert.Len(t, uniq(first.Tags), len(first.Tags), in)
		assert.Equal(t, core.SourceLocal, first.Source, in)

		second, err := s.Analyze(context.Background(), core.RawDocument{Body: in})
		require.NoError(t, err)
		assert.Equal(t, first.Category, second.Category, in)
		assert.Equal(t, first.Utility, second.Utility, in)
		assert.Equal(t, first.Tags, second.Tags, in)
	}
}

func uniq(tags []string) map[string]struct{} {
	seen := make(map[string]struct{}, len(tags))
	for _, tag := range tags {
		seen[tag] = struct{}{}
	}
	return seen
}

func TestAnalyzeRemote(t *testing.T) {
	t.Run("remote answer adopted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		remote := mocks.NewMockRemoteClassifier(ctrl)
		remote.EXPECT().Available().Return(true)
		remote.EXPECT().Classify(gomock.Any(), gomock.Any(), scoring.CandidateLabels).
			Return(&core.RemoteResult{Label: scoring.LabelProfissional, Category: core.Profissional, Confidence: 0.8, Model: "m"})
		remote.EXPECT().Summarize(gomock.Any(), meetingText).Return("Pedido de reunião sobre o projeto.", true)

		s := newTestService(t, remote, Options{})
		result, err := s.Analyze(context.Background(), core.RawDocument{Body: meetingText})
		require.NoError(t, err)

		assert.Equal(t, core.Profissional, result.Category)
		assert.Equal(t, core.SourceRemote, result.Source)
		assert.Equal(t, 0.72, result.Utility)
		assert.Equal(t, "IA-77777", result.Reference)
		assert.Equal(t, "Pedido de reunião sobre o projeto.", result.Summary)
	})

	t.Run("resume evidence beats remote", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		remote := mocks.NewMockRemoteClassifier(ctrl)
		remote.EXPECT().Available().Return(true)
		remote.EXPECT().Classify(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(&core.RemoteResult{Category: core.Profissional, Confidence: 0.99, Model: "m"})
		remote.EXPECT().Summarize(gomock.Any(), gomock.Any()).Return("", false)

		s := newTestService(t, remote, Options{})
		result, err := s.Analyze(context.Background(), core.RawDocument{Body: resumeText})
		require.NoError(t, err)

		assert.Equal(t, core.Curriculo, result.Category)
		assert.GreaterOrEqual(t, result.Utility, 0.85)
		assert.NotEmpty(t, result.Summary)
	})

	t.Run("no confident answer falls back", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		remote := mocks.NewMockRemoteClassifier(ctrl)
		remote.EXPECT().Available().Return(true)
		remote.EXPECT().Classify(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		s := newTestService(t, remote, Options{})
		result, err := s.Analyze(context.Background(), core.RawDocument{Body: financeText})
		require.NoError(t, err)

		assert.Equal(t, core.Financeiro, result.Category)
		assert.Equal(t, core.SourceLocal, result.Source)
		assert.Equal(t, "NLP-77777", result.Reference)
	})

	t.Run("payload carries normalized attachment", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		remote := mocks.NewMockRemoteClassifier(ctrl)
		remote.EXPECT().Available().Return(true)
		remote.EXPECT().Classify(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, payload string, _ []string) *core.RemoteResult {
				assert.Contains(t, payload, "[ANEXOS]")
				assert.LessOrEqual(t, utf8.RuneCountInString(payload), 40)
				return nil
			})

		s := newTestService(t, remote, Options{MaxContentChars: 40})
		_, err := s.Analyze(context.Background(), core.RawDocument{Body: "Boleto", AttachmentText: financeText})
		require.NoError(t, err)
	})

	t.Run("demo mode never calls remote", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		remote := mocks.NewMockRemoteClassifier(ctrl)

		s := newTestService(t, remote, Options{DemoMode: true})
		result, err := s.Analyze(context.Background(), core.RawDocument{Body: meetingText})
		require.NoError(t, err)
		assert.Equal(t, core.SourceLocal, result.Source)
		assert.False(t, s.RemoteAvailable())
	})

	t.Run("unavailable remote is skipped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		remote := mocks.NewMockRemoteClassifier(ctrl)
		remote.EXPECT().Available().Return(false).AnyTimes()

		s := newTestService(t, remote, Options{})
		result, err := s.Analyze(context.Background(), core.RawDocument{Body: meetingText})
		require.NoError(t, err)
		assert.Equal(t, core.SourceLocal, result.Source)
	})
}

func TestAnalyzeRecoversFromPanic(t *testing.T) {
	ctrl := gomock.NewController(t)
	remote := mocks.NewMockRemoteClassifier(ctrl)
	remote.EXPECT().Available().Return(true)
	remote.EXPECT().Classify(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, string, []string) *core.RemoteResult {
			panic("boom")
		})

	s := newTestService(t, remote, Options{Threshold: 0.4})
	result, err := s.Analyze(context.Background(), core.RawDocument{Body: meetingText})
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.Equal(t, core.Rotina, result.Category)
	assert.Equal(t, 0.5, result.Utility)
	assert.Equal(t, core.SourceError, result.Source)
	assert.Equal(t, "ERR-7777", result.Reference)
	assert.False(t, result.Useful)
	assert.Contains(t, result.Reply, "tente novamente")
}

func TestClearCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	remote := mocks.NewMockRemoteClassifier(ctrl)
	remote.EXPECT().ClearCache()

	newTestService(t, remote, Options{}).ClearCache()
	newTestService(t, nil, Options{}).ClearCache()
}

func TestRandomReference(t *testing.T) {
	for i := 0; i < 50; i++ {
		ref := randomReference("NLP", 5)
		require.Len(t, ref, len("NLP-")+5)
		assert.True(t, strings.HasPrefix(ref, "NLP-"))

		ref = randomReference("ERR", 4)
		require.Len(t, ref, len("ERR-")+4)
	}
}
