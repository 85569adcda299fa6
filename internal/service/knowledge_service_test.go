package service

import (
	"testing"

	"kounhany-ai-go/internal/config"
	"kounhany-ai-go/internal/model"
)

type fakeLearnedQARepo struct {
	similar    *model.LearnedQA
	reinforced []*model.LearnedQA
	seeded     []model.LearnedQA
	lastTokens []string
}

func (f *fakeLearnedQARepo) Reinforce(qa *model.LearnedQA, _ float64) error {
	f.reinforced = append(f.reinforced, qa)
	return nil
}

func (f *fakeLearnedQARepo) FindSimilar(tokens []string) (*model.LearnedQA, error) {
	f.lastTokens = tokens
	return f.similar, nil
}

func (f *fakeLearnedQARepo) SeedDefaults(pairs []model.LearnedQA) error {
	f.seeded = pairs
	return nil
}

func (f *fakeLearnedQARepo) Count() (int64, error) { return int64(len(f.seeded)), nil }

func chatCfg() config.ChatConfig {
	return config.ChatConfig{MemoryLimit: 10, ContextTurns: 4, LearnMinChars: 50, DefaultRating: 5.0}
}

func TestKnowledgeLookupQualityGate(t *testing.T) {
	tests := []struct {
		name      string
		timesUsed int
		avgRating float64
		want      bool
	}{
		{"trusted", 3, 4.0, true},
		{"well used and rated", 10, 4.9, true},
		{"too few uses", 2, 5.0, false},
		{"rating too low", 8, 3.9, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeLearnedQARepo{similar: &model.LearnedQA{
				BestAnswer: "une réponse apprise",
				TimesUsed:  tt.timesUsed,
				AvgRating:  tt.avgRating,
			}}
			svc := NewKnowledgeService(repo, chatCfg())

			qa, ok := svc.Lookup("quand changer mon huile moteur")
			if ok != tt.want {
				t.Fatalf("trusted = %v, want %v (uses=%d rating=%.1f)", ok, tt.want, tt.timesUsed, tt.avgRating)
			}
			if tt.want && qa == nil {
				t.Fatal("trusted lookup must return the entry")
			}
		})
	}
}

func TestKnowledgeLookupTokenizesNormalizedQuestion(t *testing.T) {
	repo := &fakeLearnedQARepo{}
	svc := NewKnowledgeService(repo, chatCfg())

	if _, ok := svc.Lookup("Quand changer mon huile ?"); ok {
		t.Error("no candidate should mean not trusted")
	}
	// Stopwords ("mon") are gone before the repository sees the tokens.
	want := []string{"quand", "changer", "huile"}
	if len(repo.lastTokens) != len(want) {
		t.Fatalf("tokens = %v, want %v", repo.lastTokens, want)
	}
	for i := range want {
		if repo.lastTokens[i] != want[i] {
			t.Fatalf("tokens = %v, want %v", repo.lastTokens, want)
		}
	}
}

func TestKnowledgeLookupEmptyQuestion(t *testing.T) {
	repo := &fakeLearnedQARepo{similar: &model.LearnedQA{TimesUsed: 10, AvgRating: 5}}
	svc := NewKnowledgeService(repo, chatCfg())

	if _, ok := svc.Lookup("?!"); ok {
		t.Error("a question with no tokens must not match anything")
	}
	if repo.lastTokens != nil {
		t.Error("repository must not be queried without tokens")
	}
}

func TestKnowledgeReinforce(t *testing.T) {
	repo := &fakeLearnedQARepo{}
	svc := NewKnowledgeService(repo, chatCfg())

	// Too short to learn from.
	svc.Reinforce("quand changer mon huile", "Réponse courte.", "technical")
	if len(repo.reinforced) != 0 {
		t.Fatalf("short answers must not be learned, got %d calls", len(repo.reinforced))
	}

	answer := "Changez l'huile tous les 10 000 à 15 000 km ou une fois par an selon votre usage."
	svc.Reinforce("Quand changer mon huile ?", answer, "technical")
	if len(repo.reinforced) != 1 {
		t.Fatalf("reinforce calls = %d, want 1", len(repo.reinforced))
	}

	qa := repo.reinforced[0]
	if qa.QuestionPattern != "quand changer huile" {
		t.Errorf("pattern = %q, want the normalized question", qa.QuestionPattern)
	}
	if qa.BestAnswer != answer {
		t.Errorf("answer not carried through: %q", qa.BestAnswer)
	}
	if qa.AvgRating != 5.0 || qa.TimesUsed != 1 {
		t.Errorf("new entry defaults wrong: rating=%.1f uses=%d", qa.AvgRating, qa.TimesUsed)
	}
}

func TestKnowledgeSeed(t *testing.T) {
	repo := &fakeLearnedQARepo{}
	svc := NewKnowledgeService(repo, chatCfg())

	svc.Seed()
	if len(repo.seeded) == 0 {
		t.Fatal("seed must insert the starter pairs")
	}
	for _, qa := range repo.seeded {
		if qa.QuestionPattern == "" || qa.BestAnswer == "" {
			t.Errorf("incomplete seed pair: %+v", qa)
		}
		if qa.TimesUsed != 1 || qa.AvgRating != 5.0 {
			t.Errorf("seed pair defaults wrong: %+v", qa)
		}
	}
}
