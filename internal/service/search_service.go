// Package service contains the business logic.
package service

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"time"

	"kounhany-ai-go/internal/config"
	"kounhany-ai-go/internal/repository"
	"kounhany-ai-go/pkg/log"
	"kounhany-ai-go/pkg/websearch"
)

// SearchIntent describes a detected search need.
type SearchIntent struct {
	Type  string // "price", "recall" or "general"
	Brand string
	Model string
	Query string
}

// SearchService runs web searches through the TTL cache and decides when a
// chat message warrants search augmentation.
type SearchService interface {
	// Search runs a cache-backed query and returns up to maxResults hits.
	Search(ctx context.Context, query string, maxResults int) ([]websearch.Result, error)
	// DetectIntent classifies a message as a price, recall or general
	// search request, in that priority order. Nil means no search needed.
	DetectIntent(message string) *SearchIntent
	// Augment produces the text block to append to a chat response, or
	// ("", false) when no augmentation applies.
	Augment(ctx context.Context, message string) (string, bool)
	// PurgeExpiredCache removes stale cache rows, returning how many.
	PurgeExpiredCache() (int64, error)
}

type searchService struct {
	client   websearch.Client
	cache    repository.SearchCacheRepository
	cacheTTL time.Duration
	timeout  time.Duration
}

// NewSearchService creates a new SearchService instance.
func NewSearchService(client websearch.Client, cache repository.SearchCacheRepository, cfg config.WebSearchConfig) SearchService {
	return &searchService{
		client:   client,
		cache:    cache,
		cacheTTL: time.Duration(cfg.CacheTTLHours) * time.Hour,
		timeout:  time.Duration(cfg.TimeoutSeconds) * time.Second,
	}
}

func (s *searchService) Search(ctx context.Context, query string, maxResults int) ([]websearch.Result, error) {
	key := strings.ToLower(strings.TrimSpace(query))

	if entry, err := s.cache.Get(key); err == nil && entry != nil {
		var cached []websearch.Result
		if err := json.Unmarshal([]byte(entry.Results), &cached); err == nil {
			return cached, nil
		}
	} else if err != nil {
		log.Warnf("search cache read failed for %q: %v", key, err)
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	results, err := s.client.Search(ctx, query, maxResults)
	if err != nil {
		return nil, err
	}

	if len(results) > 0 {
		if payload, err := json.Marshal(results); err == nil {
			if err := s.cache.Put(key, string(payload), s.cacheTTL); err != nil {
				log.Warnf("search cache write failed for %q: %v", key, err)
			}
		}
	}
	return results, nil
}

var pricePatterns = []*regexp.Regexp{
	regexp.MustCompile(`prix\s+(?:de\s+)?(?:la\s+)?(\w+)\s+(\w+)`),
	regexp.MustCompile(`combien\s+(?:coûte|coute)\s+(?:une?\s+)?(\w+)\s+(\w+)`),
	regexp.MustCompile(`(\w+)\s+(\w+)\s+(?:prix|coût|cout)`),
}

var recallKeywords = []string{"rappel", "recall", "défaut", "problème connu"}

var searchBrands = []string{
	"dacia", "renault", "peugeot", "citroen", "bmw", "mercedes", "audi",
	"volkswagen", "toyota", "ford", "fiat", "tesla", "hyundai", "kia",
	"opel", "seat", "skoda",
}

var generalSearchTriggers = []string{
	"c'est quoi", "qu'est-ce que", "comment fonctionne",
	"différence entre", "avantages", "inconvénients",
	"meilleur", "comparaison", "avis sur",
}

var newsKeywords = []string{
	"actualité", "actualite", "news", "nouveauté", "nouveau", "dernière", "derniere",
	"latest", "récent", "recent", "2024", "2025", "sortie", "lancement",
}

// DetectIntent applies the price, recall and general detectors in order;
// the first match wins.
func (s *searchService) DetectIntent(message string) *SearchIntent {
	lower := strings.ToLower(message)

	for _, re := range pricePatterns {
		if m := re.FindStringSubmatch(lower); m != nil {
			return &SearchIntent{Type: "price", Brand: m[1], Model: m[2]}
		}
	}

	for _, kw := range recallKeywords {
		if strings.Contains(lower, kw) {
			for _, brand := range searchBrands {
				if strings.Contains(lower, brand) {
					return &SearchIntent{Type: "recall", Brand: brand}
				}
			}
			break
		}
	}

	for _, trigger := range generalSearchTriggers {
		if strings.Contains(lower, trigger) {
			return &SearchIntent{Type: "general", Query: message}
		}
	}
	return nil
}

// newsBrand returns the mentioned brand when the message asks for recent
// news about it.
func newsBrand(lower string) string {
	wantsNews := false
	for _, kw := range newsKeywords {
		if strings.Contains(lower, kw) {
			wantsNews = true
			break
		}
	}
	if !wantsNews {
		return ""
	}
	for _, brand := range searchBrands {
		if strings.Contains(lower, brand) {
			return brand
		}
	}
	return ""
}

func (s *searchService) Augment(ctx context.Context, message string) (string, bool) {
	lower := strings.ToLower(message)

	var block string
	if brand := newsBrand(lower); brand != "" {
		results, err := s.Search(ctx, brand+" car", 3)
		if err != nil {
			log.Warnf("brand news search failed: %v", err)
			return "", false
		}
		if len(results) > 0 {
			block = fmt.Sprintf("📰 **Informations sur %s:**\n", titleCase(brand)) + FormatSearchResults(results)
		}
	} else if intent := s.DetectIntent(message); intent != nil {
		var err error
		block, err = s.performSearch(ctx, intent)
		if err != nil {
			log.Warnf("search augmentation failed: %v", err)
			return "", false
		}
	}

	if len(block) > 50 {
		return block, true
	}
	return "", false
}

func (s *searchService) performSearch(ctx context.Context, intent *SearchIntent) (string, error) {
	switch intent.Type {
	case "price":
		query := fmt.Sprintf("prix %s %s Maroc", intent.Brand, intent.Model)
		results, err := s.Search(ctx, query, 3)
		if err != nil {
			return "", err
		}
		if len(results) == 0 {
			return "Je n'ai pas trouvé d'informations de prix. Pour un prix précis, contactez un concessionnaire.", nil
		}
		return FormatSearchResults(results) +
			"\n\nLes prix sont indicatifs. Contactez un concessionnaire pour le prix exact.", nil

	case "recall":
		query := fmt.Sprintf("rappel %s sécurité", intent.Brand)
		results, err := s.Search(ctx, query, 3)
		if err != nil {
			return "", err
		}
		if len(results) == 0 {
			return "Je n'ai pas trouvé d'informations de rappel pour ce véhicule.", nil
		}
		return FormatSearchResults(results), nil

	default:
		// Automotive context improves relevance for generic questions.
		results, err := s.Search(ctx, intent.Query+" voiture automobile", 3)
		if err != nil {
			return "", err
		}
		if len(results) == 0 {
			return "Je n'ai pas trouvé d'informations pertinentes.", nil
		}
		return FormatSearchResults(results), nil
	}
}

const maxFormattedLength = 500

// FormatSearchResults renders up to three hits as a French markdown block,
// capped at 500 characters.
func FormatSearchResults(results []websearch.Result) string {
	if len(results) == 0 {
		return "Je n'ai pas trouvé d'informations pertinentes sur internet."
	}

	parts := []string{"🔍 **Voici ce que j'ai trouvé:**\n"}
	for i, r := range results {
		if i >= 3 {
			break
		}
		snippet := truncateRunes(r.Snippet, 200)
		if snippet == "" {
			continue
		}
		parts = append(parts, fmt.Sprintf("**%d.** %s", i+1, snippet))
		if r.Source != "" {
			parts = append(parts, fmt.Sprintf("   _(Source: %s)_\n", r.Source))
		}
	}
	parts = append(parts, "\n⚠️ *Ces informations proviennent d'internet et peuvent ne pas être à jour.*")

	return truncateRunes(strings.Join(parts, "\n"), maxFormattedLength)
}

func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func (s *searchService) PurgeExpiredCache() (int64, error) {
	return s.cache.PurgeExpired()
}
