package nlp

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"lowercase and punctuation", "C'est QUOI, Kounhany ?", "cest quoi kounhany"},
		{"stopwords removed", "le moteur de ma voiture", "moteur voiture"},
		{"whitespace collapsed", "  voyant   moteur  ", "voyant moteur"},
		{"accents preserved", "problème de démarrage", "problème démarrage"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.in)
			if got != tt.want {
				t.Fatalf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"C'est QUOI, Kounhany ?",
		"le moteur de ma voiture fait un bruit",
		"voyant moteur allumé",
	}
	for _, in := range inputs {
		once := Normalize(in)
		twice := Normalize(once)
		if once != twice {
			t.Fatalf("Normalize not idempotent for %q: %q != %q", in, once, twice)
		}
	}
}

func TestCorrectTypos(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"phrase rule", "c est qoi kounhany", "c'est quoi kounhany"},
		{"token near miss", "mon motur fait du bruit", "mon moteur fait du bruit"},
		{"brand misspelling", "kounhani c'est quoi", "kounhany c'est quoi"},
		{"clean text unchanged", "le voyant moteur est allumé", "le voyant moteur est allumé"},
		{"distant word kept", "bonjour tout le monde", "bonjour tout le monde"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CorrectTypos(tt.in)
			if got != tt.want {
				t.Fatalf("CorrectTypos(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestDetectIntentOrder(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"code wins over everything", "bonjour j'ai un code P0420 sur mon moteur", IntentObdCode},
		{"kounhany before technical", "comment réserver une vidange avec kounhany", IntentKounhany},
		{"technical before greeting", "bonjour, mon moteur fait un bruit", IntentTechnical},
		{"greeting", "bonjour !", IntentGreeting},
		{"general fallback", "merci beaucoup", IntentGeneral},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DetectIntent(tt.in)
			if got != tt.want {
				t.Fatalf("DetectIntent(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestIsOnTopic(t *testing.T) {
	tests := []struct {
		name       string
		in         string
		hasHistory bool
		want       bool
	}{
		{"automobile keyword", "ma voiture ne démarre pas du tout ce matin", false, true},
		{"question marker", "pourriez-vous m'aider avec quelque chose de technique ?", false, true},
		{"short message", "ok d'accord merci", false, true},
		{"history admits anything", "il pleut beaucoup dans cette région depuis plusieurs jours", true, true},
		{"off topic rejected", "il pleut beaucoup dans cette région depuis plusieurs jours", false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := IsOnTopic(tt.in, tt.hasHistory)
			if got != tt.want {
				t.Fatalf("IsOnTopic(%q, %v) = %v, want %v", tt.in, tt.hasHistory, got, tt.want)
			}
		})
	}
}
