package service

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	"kounhany-ai-go/internal/config"
	"kounhany-ai-go/internal/model"
	"kounhany-ai-go/internal/nlp"
	"kounhany-ai-go/internal/obd"
	"kounhany-ai-go/internal/session"
	"kounhany-ai-go/pkg/llm"
	"kounhany-ai-go/pkg/log"
	"kounhany-ai-go/pkg/storage"
	"kounhany-ai-go/pkg/vision"
)

// ValidationError marks a request the client can fix.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

// UnsupportedMediaError marks a media format outside the recognized image
// and audio categories.
type UnsupportedMediaError struct {
	Format string
}

func (e *UnsupportedMediaError) Error() string {
	return fmt.Sprintf("unsupported media format: %s", e.Format)
}

var imageFormats = map[string]bool{
	"png": true, "jpg": true, "jpeg": true, "gif": true, "bmp": true,
}

var audioFormats = map[string]bool{
	"mp3": true, "wav": true, "ogg": true, "flac": true, "m4a": true,
}

const refusalMessage = "🚫 Désolé, je suis spécialisé uniquement dans les questions automobiles. " +
	"Posez-moi des questions sur les voitures, l'entretien, les voyants du tableau de bord, ou les réparations."

const personaPrompt = `Tu es un assistant automobile français expert et amical pour KOUNHANY.

=== À PROPOS DE KOUNHANY ===
KOUNHANY est une application marocaine d'après-vente automobile offrant transparence et sécurité.

🚗 3 SERVICES PRINCIPAUX:
1. Forfaits Réparation (Particuliers) - Forfaits avec garages audités et pièces certifiées
2. Vente de Pièces Auto (Garagistes) - Pièces certifiées avec livraison
3. Dépannage & Assistance Routière 24/7 - Géolocalisation en temps réel

🔑 ATOUTS CLÉS:
• Forfaits intelligents et pièces certifiées
• Garages audités et notés par clients
• Carnet d'entretien numérique
• Assistance routière géolocalisée 24/7
• Paiement sécurisé via CMI (aucune donnée bancaire stockée)

📱 FONCTIONNALITÉS:
• Identification véhicule par VIN ou manuellement (Marque > Modèle > Version)
• Comparatif garages: tarifs, proximité, audits, avis clients
• Prise de rendez-vous avec choix date/heure
• Code promo et acompte flexible (30% ou 100%)
• Suivi commandes dans onglet "Réservations"

📧 CONTACT KOUNHANY:
• Email: contactkounhany@gmail.com

RÈGLES IMPORTANTES:
- Quand on te pose des questions sur Kounhany, utilise ces informations
- Réponds de manière concise et claire
- Si l'utilisateur dit "repeat", "répète" ou "je n'ai pas compris", reformule plus simplement
- Pour les salutations, réponds brièvement: "Bonjour ! Comment puis-je vous aider ?"
- Ne jamais inventer de prix ou informations non vérifiées
- Reste concentré sur l'automobile et Kounhany
- INTERDIT: Ne JAMAIS inventer de numéros de téléphone, adresses ou coordonnées
- Si on te demande un numéro de téléphone Kounhany, dis: "Pour le numéro de téléphone, veuillez consulter l'application ou envoyer un email à contactkounhany@gmail.com"
- Termine toujours tes phrases complètement`

var stopMarkers = []string{
	"<|im_end|>", "<|im_start|>", "Utilisateur:", "Assistant:", "\n\nUtilisateur", "\n\nQuestion",
}

// Boilerplate that leaks from the generation engine; everything from the
// first occurrence onward is dropped.
var cleanupPatterns = []string{
	"Je n'ai pas compris.",
	"Je n'ai pas compris",
	"Utilisateur:",
	"Assistant:",
	"Question:",
	"Réponse:",
	"<|im_start|>",
	"<|im_end|>",
	"RÈGLES",
	"(Note:",
	"\n\nUtilisateur",
	"\n\nAssistant",
}

// ChatResult is the processed outcome returned to the transport layer.
type ChatResult struct {
	Message        string             `json:"-"`
	ResponseText   string             `json:"response_text"`
	ObdCode        string             `json:"obd_code,omitempty"`
	ObdData        *obd.CodeInfo      `json:"obd_data,omitempty"`
	Detections     []vision.Detection `json:"detections,omitempty"`
	ResponseTimeMs int                `json:"response_time_ms"`
	WebSearchUsed  bool               `json:"web_search_used"`
}

// ChatService runs the full message pipeline: typo correction, diagnostic
// code handling, domain gating, learned-answer reuse, generation, search
// augmentation and persistence.
type ChatService interface {
	Process(ctx context.Context, req *model.ChatRequest) (*ChatResult, error)
	ClearSession(ctx context.Context, userID string) error
}

type chatService struct {
	memory    session.Store
	knowledge KnowledgeService
	analytics AnalyticsService
	search    SearchService
	llm       llm.Client
	vision    vision.Client

	cfg           config.ChatConfig
	llmTimeout    time.Duration
	visionTimeout time.Duration
	minConfidence float64
}

// NewChatService creates a new ChatService instance.
func NewChatService(
	memory session.Store,
	knowledge KnowledgeService,
	analytics AnalyticsService,
	search SearchService,
	llmClient llm.Client,
	visionClient vision.Client,
	cfg *config.Config,
) ChatService {
	return &chatService{
		memory:        memory,
		knowledge:     knowledge,
		analytics:     analytics,
		search:        search,
		llm:           llmClient,
		vision:        visionClient,
		cfg:           cfg.Chat,
		llmTimeout:    time.Duration(cfg.LLM.TimeoutSeconds) * time.Second,
		visionTimeout: time.Duration(cfg.Vision.TimeoutSeconds) * time.Second,
		minConfidence: cfg.Vision.MinConfidence,
	}
}

// Process dispatches on the payload: media routes to the image or audio
// branch, text runs the conversation pipeline.
func (s *chatService) Process(ctx context.Context, req *model.ChatRequest) (*ChatResult, error) {
	data := req.Data
	switch {
	case data.Media != nil && data.Media.Data != "":
		format := strings.ToLower(data.Media.Format)
		if imageFormats[format] {
			return s.processImage(ctx, req.UserID, data.Media)
		}
		if audioFormats[format] {
			return s.processAudio(req.UserID, data.Media)
		}
		return nil, &UnsupportedMediaError{Format: data.Media.Format}
	case data.Text != "":
		return s.processText(ctx, req.UserID, data.Text)
	default:
		return nil, &ValidationError{Msg: "No valid text or media data provided."}
	}
}

func (s *chatService) processText(ctx context.Context, userID, text string) (*ChatResult, error) {
	start := time.Now()

	prompt := nlp.CorrectTypos(strings.TrimSpace(text))
	if prompt == "" {
		return nil, &ValidationError{Msg: "Empty text input."}
	}

	// A recognized diagnostic code takes priority over everything else.
	if code := obd.ExtractCode(prompt); code != "" {
		return s.respondObdCode(ctx, userID, prompt, code, start)
	}

	hasHistory, err := s.memory.HasHistory(ctx, userID)
	if err != nil {
		log.Warnf("session history check failed for %s: %v", userID, err)
	}
	if !nlp.IsOnTopic(prompt, hasHistory) {
		// Off-topic rejections are counted in analytics but stay out of
		// memory: appending the refusal would open a session and admit
		// the user's next message through the non-empty-session rule.
		elapsed := int(time.Since(start).Milliseconds())
		s.analytics.Record(ConversationRecord{
			UserID:         userID,
			UserMessage:    prompt,
			AIResponse:     refusalMessage,
			ResponseTimeMs: elapsed,
			ContentType:    "text",
			Intent:         nlp.DetectIntent(prompt),
		})
		return &ChatResult{
			Message:        "Text processed successfully.",
			ResponseText:   refusalMessage,
			ResponseTimeMs: elapsed,
		}, nil
	}

	learned, trusted := s.knowledge.Lookup(prompt)

	history, err := s.memory.Recent(ctx, userID, 0)
	if err != nil {
		log.Warnf("session read failed for %s: %v", userID, err)
	}

	if result, ok := s.respondRepeat(ctx, userID, prompt, history, start); ok {
		return result, nil
	}

	var responseText string
	if trusted {
		responseText = learned.BestAnswer
	} else {
		responseText, err = s.generate(ctx, prompt, history)
		if err != nil {
			return nil, fmt.Errorf("generation failed: %w", err)
		}
	}

	augmentation, searchUsed := s.search.Augment(ctx, prompt)
	if searchUsed {
		responseText += "\n\n" + augmentation
	}

	s.persistExchange(ctx, userID, prompt, responseText)

	elapsed := int(time.Since(start).Milliseconds())
	intent := nlp.DetectIntent(prompt)
	s.analytics.Record(ConversationRecord{
		UserID:         userID,
		UserMessage:    prompt,
		AIResponse:     responseText,
		ResponseTimeMs: elapsed,
		ContentType:    "text",
		Intent:         intent,
	})
	s.knowledge.Reinforce(prompt, responseText, intent)

	return &ChatResult{
		Message:        "Text processed successfully.",
		ResponseText:   responseText,
		ResponseTimeMs: elapsed,
		WebSearchUsed:  searchUsed,
	}, nil
}

func (s *chatService) respondObdCode(ctx context.Context, userID, prompt, code string, start time.Time) (*ChatResult, error) {
	result := &ChatResult{ObdCode: code}

	if info, ok := obd.Lookup(code); ok {
		result.ResponseText = obd.FormatResponse(code, info)
		result.ObdData = &info
		result.Message = "OBD code processed successfully."
	} else {
		result.ResponseText = obd.FormatUnknownCode(code)
		result.Message = "OBD code not found in database."
	}

	s.persistExchange(ctx, userID, prompt, result.ResponseText)

	result.ResponseTimeMs = int(time.Since(start).Milliseconds())
	s.analytics.Record(ConversationRecord{
		UserID:         userID,
		UserMessage:    prompt,
		AIResponse:     result.ResponseText,
		ResponseTimeMs: result.ResponseTimeMs,
		ContentType:    "text",
		Intent:         nlp.IntentObdCode,
		ObdCode:        code,
	})
	return result, nil
}

// respondRepeat handles "repeat that" style requests by replaying the last
// assistant turn. It reports false when the pipeline should continue,
// including when there is no previous answer to repeat.
func (s *chatService) respondRepeat(ctx context.Context, userID, prompt string, history []model.ChatMessage, start time.Time) (*ChatResult, bool) {
	lower := strings.ToLower(prompt)
	if !nlp.ContainsAny(lower, nlp.RepeatTriggers) {
		return nil, false
	}

	var lastAnswer string
	for i := len(history) - 1; i >= 0; i-- {
		if history[i].Role == "assistant" {
			lastAnswer = history[i].Content
			break
		}
	}
	if lastAnswer == "" {
		return nil, false
	}

	responseText := lastAnswer
	if strings.Contains(lower, "expliqu") || strings.Contains(lower, "explain") {
		responseText = "Voici l'explication de ma dernière réponse:\n\n" + lastAnswer
	}

	s.persistExchange(ctx, userID, prompt, responseText)

	return &ChatResult{
		Message:        "Repeat/explain request processed.",
		ResponseText:   responseText,
		ResponseTimeMs: int(time.Since(start).Milliseconds()),
	}, true
}

func (s *chatService) generate(ctx context.Context, prompt string, history []model.ChatMessage) (string, error) {
	messages := make([]llm.Message, 0, s.cfg.ContextTurns+2)
	messages = append(messages, llm.Message{Role: "system", Content: personaPrompt})

	recent := history
	if len(recent) > s.cfg.ContextTurns {
		recent = recent[len(recent)-s.cfg.ContextTurns:]
	}
	for _, turn := range recent {
		messages = append(messages, llm.Message{Role: turn.Role, Content: turn.Content})
	}
	messages = append(messages, llm.Message{Role: "user", Content: prompt})

	ctx, cancel := context.WithTimeout(ctx, s.llmTimeout)
	defer cancel()
	raw, err := s.llm.Chat(ctx, messages, &llm.GenerationParams{Stop: stopMarkers})
	if err != nil {
		return "", err
	}
	return cleanResponse(raw), nil
}

// cleanResponse strips leaked boilerplate and closes the final sentence.
func cleanResponse(text string) string {
	text = strings.TrimSpace(text)
	for _, pattern := range cleanupPatterns {
		if idx := strings.Index(text, pattern); idx >= 0 {
			text = strings.TrimSpace(text[:idx])
		}
	}

	if text == "" {
		return text
	}
	if strings.HasSuffix(text, ".") || strings.HasSuffix(text, "?") ||
		strings.HasSuffix(text, "!") || strings.HasSuffix(text, ":") {
		return text
	}

	// Cut at the last sentence boundary when it covers at least half the
	// text, otherwise just close the sentence.
	lastEnd := strings.LastIndexAny(text, ".!?")
	if lastEnd > len(text)/2 {
		return text[:lastEnd+1]
	}
	return text + "."
}

func (s *chatService) persistExchange(ctx context.Context, userID, userText, assistantText string) {
	now := time.Now()
	err := s.memory.Append(ctx, userID,
		model.ChatMessage{Role: "user", Content: userText, Timestamp: now},
		model.ChatMessage{Role: "assistant", Content: assistantText, Timestamp: now},
	)
	if err != nil {
		log.Errorf("failed to persist session turns for %s: %v", userID, err)
	}
}

func (s *chatService) processImage(ctx context.Context, userID string, media *model.Media) (*ChatResult, error) {
	imageBytes, err := base64.StdEncoding.DecodeString(media.Data)
	if err != nil {
		return nil, &ValidationError{Msg: "Invalid base64 media payload."}
	}

	if objectName, err := storage.SaveMedia(ctx, userID, media.Format, imageBytes); err != nil {
		log.Warnf("media archive failed for %s: %v", userID, err)
	} else if objectName != "" {
		log.Infof("archived media for %s as %s", userID, objectName)
	}

	visionCtx, cancel := context.WithTimeout(ctx, s.visionTimeout)
	defer cancel()
	detections, err := s.vision.DetectIndicators(visionCtx, imageBytes)
	if err != nil {
		// Degrade instead of failing the request.
		log.Errorf("vision analysis failed for %s: %v", userID, err)
		return &ChatResult{
			Message:      "Image processed successfully.",
			ResponseText: "❌ Désolé, je n'ai pas pu analyser l'image. Veuillez réessayer avec une image plus claire du tableau de bord.",
		}, nil
	}

	kept := dedupeDetections(detections, s.minConfidence)
	if len(kept) == 0 {
		return &ChatResult{
			Message:      "Image processed successfully.",
			ResponseText: "🔍 Aucun indicateur détecté. L'image peut être floue, mal éclairée, ou montrer un tableau de bord éteint.",
		}, nil
	}

	parts := []string{"🚗 **INDICATEURS DÉTECTÉS DANS L'IMAGE:**"}
	classes := make([]string, 0, len(kept))
	for _, d := range kept {
		parts = append(parts, fmt.Sprintf("• %s (%.1f%%)", d.Class, d.Confidence*100))
		classes = append(classes, d.Class)
	}
	parts = append(parts, "", "💡 *Pour plus d'informations sur un indicateur spécifique, posez-moi une question en texte.*")
	responseText := strings.Join(parts, "\n")

	// Remember the detections so follow-up text questions have context.
	indicatorList := strings.Join(classes, ", ")
	s.persistExchange(ctx, userID,
		fmt.Sprintf("[L'utilisateur a envoyé une photo de tableau de bord. Voyants détectés: %s]", indicatorList),
		fmt.Sprintf("J'ai détecté les voyants suivants sur votre tableau de bord: %s. Vous pouvez me demander des explications sur chacun de ces voyants.", indicatorList),
	)

	return &ChatResult{
		Message:      "Image processed successfully.",
		ResponseText: responseText,
		Detections:   kept,
	}, nil
}

// dedupeDetections drops low-confidence hits and keeps the first detection
// per class.
func dedupeDetections(detections []vision.Detection, minConfidence float64) []vision.Detection {
	seen := make(map[string]bool, len(detections))
	kept := make([]vision.Detection, 0, len(detections))
	for _, d := range detections {
		if d.Confidence <= minConfidence || seen[d.Class] {
			continue
		}
		seen[d.Class] = true
		kept = append(kept, d)
	}
	return kept
}

func (s *chatService) processAudio(_ string, media *model.Media) (*ChatResult, error) {
	return &ChatResult{
		Message: "Audio received successfully.",
		ResponseText: fmt.Sprintf(
			"J'ai reçu votre audio en format %s. L'analyse audio sera disponible prochainement.", media.Format),
	}, nil
}

func (s *chatService) ClearSession(ctx context.Context, userID string) error {
	return s.memory.Clear(ctx, userID)
}
