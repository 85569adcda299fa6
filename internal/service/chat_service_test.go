package service

import (
	"context"
	"encoding/base64"
	"errors"
	"strings"
	"testing"

	"kounhany-ai-go/internal/config"
	"kounhany-ai-go/internal/model"
	"kounhany-ai-go/internal/session"
	"kounhany-ai-go/pkg/llm"
	"kounhany-ai-go/pkg/vision"
	"kounhany-ai-go/pkg/websearch"
)

type fakeLLM struct {
	reply string
	err   error
	calls int
}

func (f *fakeLLM) Chat(_ context.Context, _ []llm.Message, _ *llm.GenerationParams) (string, error) {
	f.calls++
	return f.reply, f.err
}

func (f *fakeLLM) StreamChat(_ context.Context, _ []llm.Message, _ *llm.GenerationParams, _ llm.MessageWriter) error {
	return nil
}

type fakeVision struct {
	detections []vision.Detection
	err        error
}

func (f *fakeVision) DetectIndicators(_ context.Context, _ []byte) ([]vision.Detection, error) {
	return f.detections, f.err
}

type reinforceCall struct {
	question, answer, category string
}

type fakeKnowledge struct {
	answer     *model.LearnedQA
	trusted    bool
	reinforced []reinforceCall
}

func (f *fakeKnowledge) Lookup(_ string) (*model.LearnedQA, bool) {
	return f.answer, f.trusted
}

func (f *fakeKnowledge) Reinforce(question, answer, category string) {
	f.reinforced = append(f.reinforced, reinforceCall{question, answer, category})
}

func (f *fakeKnowledge) Seed() {}

type fakeAnalytics struct {
	records []ConversationRecord
}

func (f *fakeAnalytics) Record(rec ConversationRecord)                 { f.records = append(f.records, rec) }
func (f *fakeAnalytics) Summary() (*Summary, error)                    { return &Summary{}, nil }
func (f *fakeAnalytics) TopQuestions(int) ([]model.QuestionStat, error) { return nil, nil }
func (f *fakeAnalytics) DailyStats(int) ([]model.DailyStat, error)      { return nil, nil }
func (f *fakeAnalytics) ClearUserHistory(string) (int64, error)         { return 0, nil }

type fakeSearch struct {
	augment string
	used    bool
}

func (f *fakeSearch) Search(_ context.Context, _ string, _ int) ([]websearch.Result, error) {
	return nil, nil
}
func (f *fakeSearch) DetectIntent(_ string) *SearchIntent { return nil }
func (f *fakeSearch) Augment(_ context.Context, _ string) (string, bool) {
	return f.augment, f.used
}
func (f *fakeSearch) PurgeExpiredCache() (int64, error) { return 0, nil }

type testEnv struct {
	svc       ChatService
	memory    session.Store
	llm       *fakeLLM
	vision    *fakeVision
	knowledge *fakeKnowledge
	analytics *fakeAnalytics
	search    *fakeSearch
}

func newTestEnv() *testEnv {
	env := &testEnv{
		memory:    session.NewMemoryStore(10),
		llm:       &fakeLLM{reply: "Une réponse technique complète sur votre question automobile."},
		vision:    &fakeVision{},
		knowledge: &fakeKnowledge{},
		analytics: &fakeAnalytics{},
		search:    &fakeSearch{},
	}
	cfg := &config.Config{}
	cfg.Chat = config.ChatConfig{MemoryLimit: 10, ContextTurns: 4, LearnMinChars: 50, DefaultRating: 5.0}
	cfg.LLM.TimeoutSeconds = 120
	cfg.Vision.TimeoutSeconds = 30
	cfg.Vision.MinConfidence = 0.3

	env.svc = NewChatService(env.memory, env.knowledge, env.analytics, env.search, env.llm, env.vision, cfg)
	return env
}

func textRequest(userID, text string) *model.ChatRequest {
	return &model.ChatRequest{
		UserID: userID,
		Data:   model.ChatData{Text: text},
	}
}

func TestProcessObdCode(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	result, err := env.svc.Process(ctx, textRequest("u1", "mon scanner affiche p0420"))
	if err != nil {
		t.Fatalf("process failed: %v", err)
	}

	if result.ObdCode != "P0420" {
		t.Errorf("ObdCode = %q, want P0420", result.ObdCode)
	}
	if result.ObdData == nil {
		t.Fatal("ObdData missing for a known code")
	}
	if !strings.Contains(result.ResponseText, "P0420") || !strings.Contains(result.ResponseText, "catalyseur") {
		t.Errorf("response does not describe the code: %q", result.ResponseText)
	}
	if env.llm.calls != 0 {
		t.Error("code path must not call the generation engine")
	}

	turns, _ := env.memory.Recent(ctx, "u1", 0)
	if len(turns) != 2 {
		t.Fatalf("memory has %d turns, want 2", len(turns))
	}
	if len(env.analytics.records) != 1 {
		t.Fatalf("analytics has %d records, want 1", len(env.analytics.records))
	}
	rec := env.analytics.records[0]
	if rec.Intent != "obd_code" || rec.ObdCode != "P0420" {
		t.Errorf("analytics record = %+v, want obd_code/P0420", rec)
	}
}

func TestProcessUnknownObdCode(t *testing.T) {
	env := newTestEnv()

	result, err := env.svc.Process(context.Background(), textRequest("u1", "code P1999 au tableau de bord"))
	if err != nil {
		t.Fatalf("process failed: %v", err)
	}
	if result.ObdCode != "P1999" {
		t.Errorf("ObdCode = %q, want P1999", result.ObdCode)
	}
	if result.ObdData != nil {
		t.Error("unknown code must not carry table data")
	}
	if !strings.Contains(result.ResponseText, "base de données") {
		t.Errorf("unexpected unknown-code response: %q", result.ResponseText)
	}
}

func TestProcessOffTopicRejection(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	result, err := env.svc.Process(ctx, textRequest("u1", "il pleut beaucoup dans cette région depuis plusieurs jours"))
	if err != nil {
		t.Fatalf("process failed: %v", err)
	}
	if !strings.Contains(result.ResponseText, "spécialisé uniquement dans les questions automobiles") {
		t.Errorf("expected the refusal message, got %q", result.ResponseText)
	}
	if env.llm.calls != 0 {
		t.Error("rejected messages must not reach the generation engine")
	}

	// Rejections are counted but never open a session.
	turns, _ := env.memory.Recent(ctx, "u1", 0)
	if len(turns) != 0 {
		t.Errorf("memory has %d turns after rejection, want 0", len(turns))
	}
	if len(env.analytics.records) != 1 {
		t.Fatalf("analytics has %d records after rejection, want 1", len(env.analytics.records))
	}
	rec := env.analytics.records[0]
	if rec.AIResponse != result.ResponseText {
		t.Errorf("analytics recorded response %q, want the refusal", rec.AIResponse)
	}
	if rec.Intent != "general" {
		t.Errorf("analytics recorded intent %q, want %q", rec.Intent, "general")
	}

	// A rejected first message must not admit the next off-topic one.
	again, err := env.svc.Process(ctx, textRequest("u1", "raconte moi la fin du dernier film sorti au cinéma"))
	if err != nil {
		t.Fatalf("second process failed: %v", err)
	}
	if !strings.Contains(again.ResponseText, "spécialisé uniquement dans les questions automobiles") {
		t.Errorf("expected a second refusal, got %q", again.ResponseText)
	}
}

func TestProcessRepeatRequest(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	previous := "La pression recommandée est de 2.2 bar pour vos pneus avant."
	err := env.memory.Append(ctx, "u1",
		model.ChatMessage{Role: "user", Content: "quelle pression pour mes pneus"},
		model.ChatMessage{Role: "assistant", Content: previous},
	)
	if err != nil {
		t.Fatalf("seed append failed: %v", err)
	}

	result, err := env.svc.Process(ctx, textRequest("u1", "répète"))
	if err != nil {
		t.Fatalf("process failed: %v", err)
	}
	if result.ResponseText != previous {
		t.Errorf("repeat returned %q, want the previous answer verbatim", result.ResponseText)
	}
	if env.llm.calls != 0 {
		t.Error("repeat path must not call the generation engine")
	}

	turns, _ := env.memory.Recent(ctx, "u1", 0)
	if len(turns) != 4 {
		t.Errorf("memory has %d turns, want 4", len(turns))
	}
}

func TestProcessExplainRequest(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	previous := "Le catalyseur transforme les gaz polluants en gaz moins nocifs."
	_ = env.memory.Append(ctx, "u1",
		model.ChatMessage{Role: "user", Content: "à quoi sert un catalyseur"},
		model.ChatMessage{Role: "assistant", Content: previous},
	)

	result, err := env.svc.Process(ctx, textRequest("u1", "explique ça"))
	if err != nil {
		t.Fatalf("process failed: %v", err)
	}
	if !strings.HasPrefix(result.ResponseText, "Voici l'explication de ma dernière réponse:") {
		t.Errorf("explain variant missing its lead-in: %q", result.ResponseText)
	}
	if !strings.Contains(result.ResponseText, previous) {
		t.Error("explain variant must contain the previous answer")
	}
}

func TestProcessRepeatWithoutHistoryFallsThrough(t *testing.T) {
	env := newTestEnv()

	result, err := env.svc.Process(context.Background(), textRequest("u1", "répète"))
	if err != nil {
		t.Fatalf("process failed: %v", err)
	}
	if env.llm.calls != 1 {
		t.Errorf("expected generation fallback, llm calls = %d", env.llm.calls)
	}
	if result.ResponseText == "" {
		t.Error("expected a generated response")
	}
}

func TestProcessGeneration(t *testing.T) {
	env := newTestEnv()
	env.llm.reply = "Les plaquettes de frein s'usent selon votre conduite et doivent être vérifiées régulièrement"

	result, err := env.svc.Process(context.Background(), textRequest("u1", "quand changer les plaquettes de frein"))
	if err != nil {
		t.Fatalf("process failed: %v", err)
	}
	if env.llm.calls != 1 {
		t.Fatalf("llm calls = %d, want 1", env.llm.calls)
	}
	if !strings.HasSuffix(result.ResponseText, ".") {
		t.Errorf("response should be closed with a period: %q", result.ResponseText)
	}

	if len(env.analytics.records) != 1 {
		t.Fatalf("analytics has %d records, want 1", len(env.analytics.records))
	}
	if env.analytics.records[0].Intent != "technical" {
		t.Errorf("intent = %q, want technical", env.analytics.records[0].Intent)
	}
	if len(env.knowledge.reinforced) != 1 {
		t.Fatalf("reinforce calls = %d, want 1", len(env.knowledge.reinforced))
	}
}

func TestProcessGenerationFailure(t *testing.T) {
	env := newTestEnv()
	env.llm.err = errors.New("upstream unavailable")

	_, err := env.svc.Process(context.Background(), textRequest("u1", "quand changer les plaquettes de frein"))
	if err == nil {
		t.Fatal("expected an error when generation fails")
	}
	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		t.Error("generation failure must not be a validation error")
	}
}

func TestProcessLearnedAnswerShortCircuit(t *testing.T) {
	env := newTestEnv()
	env.knowledge.answer = &model.LearnedQA{
		BestAnswer: "KOUNHANY propose 3 services: forfaits réparation, vente de pièces, assistance 24/7.",
		TimesUsed:  5,
		AvgRating:  4.8,
	}
	env.knowledge.trusted = true

	result, err := env.svc.Process(context.Background(), textRequest("u1", "quels services propose kounhany"))
	if err != nil {
		t.Fatalf("process failed: %v", err)
	}
	if result.ResponseText != env.knowledge.answer.BestAnswer {
		t.Errorf("expected the learned answer, got %q", result.ResponseText)
	}
	if env.llm.calls != 0 {
		t.Error("a trusted learned answer must bypass generation")
	}
}

func TestProcessSearchAugmentation(t *testing.T) {
	env := newTestEnv()
	env.search.augment = "🔍 **Voici ce que j'ai trouvé:**\n\n**1.** La Dacia Sandero démarre à 12 000 euros environ."
	env.search.used = true

	result, err := env.svc.Process(context.Background(), textRequest("u1", "quel est le prix d'une voiture neuve"))
	if err != nil {
		t.Fatalf("process failed: %v", err)
	}
	if !result.WebSearchUsed {
		t.Error("WebSearchUsed should be true")
	}
	if !strings.Contains(result.ResponseText, env.search.augment) {
		t.Error("augmentation block missing from the response")
	}
}

func TestProcessValidation(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	_, err := env.svc.Process(ctx, &model.ChatRequest{UserID: "u1"})
	var validationErr *ValidationError
	if !errors.As(err, &validationErr) {
		t.Errorf("empty payload: got %v, want ValidationError", err)
	}

	_, err = env.svc.Process(ctx, textRequest("u1", "   "))
	if !errors.As(err, &validationErr) {
		t.Errorf("blank text: got %v, want ValidationError", err)
	}

	_, err = env.svc.Process(ctx, &model.ChatRequest{
		UserID: "u1",
		Data:   model.ChatData{Media: &model.Media{Format: "pdf", Data: "Zm9v"}},
	})
	var mediaErr *UnsupportedMediaError
	if !errors.As(err, &mediaErr) {
		t.Errorf("pdf media: got %v, want UnsupportedMediaError", err)
	}
}

func TestProcessImage(t *testing.T) {
	env := newTestEnv()
	env.vision.detections = []vision.Detection{
		{Class: "voyant_moteur", Confidence: 0.91},
		{Class: "voyant_moteur", Confidence: 0.85}, // duplicate class
		{Class: "abs", Confidence: 0.12},           // below threshold
		{Class: "batterie", Confidence: 0.55},
	}
	ctx := context.Background()

	payload := base64.StdEncoding.EncodeToString([]byte("fake-image-bytes"))
	result, err := env.svc.Process(ctx, &model.ChatRequest{
		UserID: "u1",
		Data:   model.ChatData{Media: &model.Media{Format: "jpg", Data: payload}},
	})
	if err != nil {
		t.Fatalf("process failed: %v", err)
	}

	if len(result.Detections) != 2 {
		t.Fatalf("kept %d detections, want 2 (dedupe + threshold)", len(result.Detections))
	}
	if !strings.Contains(result.ResponseText, "voyant_moteur") || !strings.Contains(result.ResponseText, "batterie") {
		t.Errorf("response missing detected classes: %q", result.ResponseText)
	}

	// Detections land in memory for follow-up questions.
	turns, _ := env.memory.Recent(ctx, "u1", 0)
	if len(turns) != 2 {
		t.Fatalf("memory has %d turns, want 2", len(turns))
	}
	if !strings.Contains(turns[0].Content, "voyant_moteur") {
		t.Errorf("memory turn missing detections: %q", turns[0].Content)
	}
}

func TestProcessImageVisionFailureDegrades(t *testing.T) {
	env := newTestEnv()
	env.vision.err = errors.New("model offline")

	payload := base64.StdEncoding.EncodeToString([]byte("fake-image-bytes"))
	result, err := env.svc.Process(context.Background(), &model.ChatRequest{
		UserID: "u1",
		Data:   model.ChatData{Media: &model.Media{Format: "png", Data: payload}},
	})
	if err != nil {
		t.Fatalf("vision failure must degrade, not fail: %v", err)
	}
	if !strings.Contains(result.ResponseText, "pas pu analyser l'image") {
		t.Errorf("unexpected degraded response: %q", result.ResponseText)
	}
}

func TestProcessAudio(t *testing.T) {
	env := newTestEnv()

	result, err := env.svc.Process(context.Background(), &model.ChatRequest{
		UserID: "u1",
		Data:   model.ChatData{Media: &model.Media{Format: "mp3", Data: "Zm9v"}},
	})
	if err != nil {
		t.Fatalf("process failed: %v", err)
	}
	if !strings.Contains(result.ResponseText, "mp3") {
		t.Errorf("audio acknowledgement should echo the format: %q", result.ResponseText)
	}
}

func TestCleanResponse(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"already terminated", "Tout va bien.", "Tout va bien."},
		{"leaked marker stripped", "Réponse correcte.<|im_end|>Utilisateur: suite", "Réponse correcte."},
		{"leaked role prefix stripped", "Voici la réponse.\n\nUtilisateur demande encore", "Voici la réponse."},
		{
			"truncate to late sentence boundary",
			"Une première phrase complète qui couvre la moitié du texte. Puis un fragment",
			"Une première phrase complète qui couvre la moitié du texte.",
		},
		{"close short fragment", "Un fragment sans fin", "Un fragment sans fin."},
		{"empty stays empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := cleanResponse(tt.in)
			if got != tt.want {
				t.Fatalf("cleanResponse(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
