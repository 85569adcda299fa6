package service

import (
	"strings"
	"testing"

	"kounhany-ai-go/internal/config"
	"kounhany-ai-go/pkg/websearch"
)

func newDetectorService() SearchService {
	return NewSearchService(nil, nil, config.WebSearchConfig{TimeoutSeconds: 10, CacheTTLHours: 24})
}

func TestDetectSearchIntent(t *testing.T) {
	svc := newDetectorService()

	tests := []struct {
		name      string
		in        string
		wantType  string
		wantBrand string
	}{
		{"price with combien", "combien coute une dacia sandero", "price", "dacia"},
		{"price with prix", "prix de la renault clio", "price", "renault"},
		{"recall with brand", "y a-t-il un rappel renault en cours", "recall", "renault"},
		{"general comparison", "différence entre essence et diesel", "general", ""},
		{"general cest quoi", "c'est quoi un turbo", "general", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			intent := svc.DetectIntent(tt.in)
			if intent == nil {
				t.Fatalf("DetectIntent(%q) = nil, want type %q", tt.in, tt.wantType)
			}
			if intent.Type != tt.wantType {
				t.Errorf("type = %q, want %q", intent.Type, tt.wantType)
			}
			if tt.wantBrand != "" && intent.Brand != tt.wantBrand {
				t.Errorf("brand = %q, want %q", intent.Brand, tt.wantBrand)
			}
		})
	}
}

func TestDetectSearchIntentNone(t *testing.T) {
	svc := newDetectorService()
	for _, in := range []string{"bonjour", "mon moteur fait un bruit"} {
		if intent := svc.DetectIntent(in); intent != nil {
			t.Errorf("DetectIntent(%q) = %+v, want nil", in, intent)
		}
	}
}

func TestDetectSearchIntentPriceWinsOverRecall(t *testing.T) {
	svc := newDetectorService()
	intent := svc.DetectIntent("prix de la renault clio après le rappel renault")
	if intent == nil || intent.Type != "price" {
		t.Fatalf("intent = %+v, price must win over recall", intent)
	}
}

func TestFormatSearchResults(t *testing.T) {
	results := []websearch.Result{
		{Title: "A", Snippet: "Premier extrait de résultat avec des détails.", Source: "DuckDuckGo"},
		{Title: "B", Snippet: "Deuxième extrait de résultat.", Source: "Web"},
		{Title: "C", Snippet: "Troisième extrait de résultat.", Source: "Web"},
		{Title: "D", Snippet: "Quatrième extrait qui ne doit pas apparaître.", Source: "Web"},
	}

	out := FormatSearchResults(results)
	if !strings.Contains(out, "Voici ce que j'ai trouvé") {
		t.Error("header missing")
	}
	if !strings.Contains(out, "**1.**") || !strings.Contains(out, "**3.**") {
		t.Error("numbered entries missing")
	}
	if strings.Contains(out, "Quatrième") {
		t.Error("results must be capped at 3")
	}
	if len([]rune(out)) > 500 {
		t.Errorf("formatted block is %d runes, cap is 500", len([]rune(out)))
	}
}

func TestFormatSearchResultsEmpty(t *testing.T) {
	out := FormatSearchResults(nil)
	if !strings.Contains(out, "pas trouvé") {
		t.Errorf("unexpected empty-results message: %q", out)
	}
}
