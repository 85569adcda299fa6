package service

import (
	"strings"

	"kounhany-ai-go/internal/config"
	"kounhany-ai-go/internal/model"
	"kounhany-ai-go/internal/nlp"
	"kounhany-ai-go/internal/repository"
	"kounhany-ai-go/pkg/log"
)

// Quality gate: a learned answer is trusted only after enough uses with a
// good enough running rating.
const (
	minTimesUsed = 3
	minAvgRating = 4.0
)

// KnowledgeService wraps the learned question/answer store with the
// normalization and quality rules the chat pipeline relies on.
type KnowledgeService interface {
	// Lookup returns a trusted learned answer for the question, or
	// (nil, false) when none passes the quality gate.
	Lookup(question string) (*model.LearnedQA, bool)
	// Reinforce folds a successful exchange back into the store. Short
	// answers are skipped.
	Reinforce(question, answer, category string)
	// Seed inserts the starter pairs, ignoring ones already present.
	Seed()
}

type knowledgeService struct {
	repo repository.LearnedQARepository
	cfg  config.ChatConfig
}

// NewKnowledgeService creates a new KnowledgeService instance.
func NewKnowledgeService(repo repository.LearnedQARepository, cfg config.ChatConfig) KnowledgeService {
	return &knowledgeService{repo: repo, cfg: cfg}
}

func (s *knowledgeService) Lookup(question string) (*model.LearnedQA, bool) {
	pattern := nlp.Normalize(question)
	tokens := strings.Fields(pattern)
	if len(tokens) == 0 {
		return nil, false
	}

	qa, err := s.repo.FindSimilar(tokens)
	if err != nil {
		log.Errorf("learned answer lookup failed: %v", err)
		return nil, false
	}
	if qa == nil {
		return nil, false
	}
	if qa.TimesUsed < minTimesUsed || qa.AvgRating < minAvgRating {
		return nil, false
	}
	return qa, true
}

func (s *knowledgeService) Reinforce(question, answer, category string) {
	if len(answer) <= s.cfg.LearnMinChars {
		return
	}
	pattern := nlp.Normalize(question)
	if pattern == "" {
		return
	}

	rating := s.cfg.DefaultRating
	qa := &model.LearnedQA{
		QuestionPattern: pattern,
		BestAnswer:      answer,
		Category:        category,
		TimesUsed:       1,
		AvgRating:       rating,
	}
	if err := s.repo.Reinforce(qa, rating); err != nil {
		log.Errorf("failed to reinforce learned answer: %v", err)
	}
}

// Starter pairs covering the most common service and maintenance questions.
var seedPairs = []model.LearnedQA{
	{QuestionPattern: "c'est quoi kounhany", BestAnswer: "KOUNHANY est une application marocaine d'après-vente automobile offrant des forfaits réparation avec garages audités, vente de pièces certifiées, et assistance routière 24/7.", Category: "kounhany"},
	{QuestionPattern: "comment réserver réparation", BestAnswer: "Pour réserver : 1) Identifiez votre véhicule par VIN ou manuellement, 2) Choisissez le service, 3) Comparez les garages, 4) Prenez rendez-vous, 5) Payez l'acompte (30% ou 100%).", Category: "kounhany"},
	{QuestionPattern: "quels services kounhany", BestAnswer: "KOUNHANY propose 3 services: 1) Forfaits Réparation pour particuliers, 2) Vente de pièces pour garagistes, 3) Dépannage et assistance routière 24/7.", Category: "kounhany"},
	{QuestionPattern: "voyant moteur allumé", BestAnswer: "Le voyant moteur peut indiquer plusieurs problèmes. Un diagnostic OBD est recommandé pour identifier le code d'erreur exact. Avec KOUNHANY, trouvez un garage audité pour un diagnostic précis.", Category: "technical"},
	{QuestionPattern: "quand changer huile", BestAnswer: "En général, changez l'huile tous les 10 000 à 15 000 km ou une fois par an. Consultez le manuel de votre véhicule pour les recommandations spécifiques.", Category: "technical"},
	{QuestionPattern: "pression pneus recommandée", BestAnswer: "La pression recommandée se trouve sur l'étiquette dans la portière conducteur ou dans le manuel. En général: 2.0 à 2.5 bar pour les voitures standard.", Category: "technical"},
	{QuestionPattern: "batterie faible symptomes", BestAnswer: "Symptômes d'une batterie faible: démarrage lent, voyant batterie allumé, phares faibles, équipements électriques défaillants. Faites tester votre batterie.", Category: "technical"},
	{QuestionPattern: "entretien vidange", BestAnswer: "La vidange comprend: remplacement huile moteur, filtre à huile, vérification des niveaux. Recommandé tous les 10 000-15 000 km selon le véhicule.", Category: "technical"},
}

func (s *knowledgeService) Seed() {
	pairs := make([]model.LearnedQA, len(seedPairs))
	copy(pairs, seedPairs)
	for i := range pairs {
		pairs[i].TimesUsed = 1
		pairs[i].AvgRating = 5.0
	}
	if err := s.repo.SeedDefaults(pairs); err != nil {
		log.Errorf("failed to seed learned answers: %v", err)
		return
	}
	log.Info("learned answer store seeded")
}
