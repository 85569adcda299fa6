// Package websearch queries the DuckDuckGo public endpoints.
package websearch

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"kounhany-ai-go/internal/config"
)

// Result is one web search hit.
type Result struct {
	Title   string `json:"title"`
	Snippet string `json:"snippet"`
	URL     string `json:"url"`
	Source  string `json:"source"`
}

// Client defines the interface for the web search backend.
type Client interface {
	Search(ctx context.Context, query string, maxResults int) ([]Result, error)
}

type duckDuckGoClient struct {
	client *http.Client
}

// NewClient creates a DuckDuckGo-backed search client.
func NewClient(cfg config.WebSearchConfig) Client {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	return &duckDuckGoClient{
		client: &http.Client{Timeout: timeout},
	}
}

type instantAnswer struct {
	Heading       string `json:"Heading"`
	AbstractText  string `json:"AbstractText"`
	AbstractURL   string `json:"AbstractURL"`
	RelatedTopics []struct {
		Text     string `json:"Text"`
		FirstURL string `json:"FirstURL"`
	} `json:"RelatedTopics"`
}

// Search tries the Instant Answer API first and falls back to scraping the
// HTML endpoint when the API yields nothing usable.
func (c *duckDuckGoClient) Search(ctx context.Context, query string, maxResults int) ([]Result, error) {
	results, err := c.instantAnswers(ctx, query, maxResults)
	if err == nil && len(results) > 0 {
		return results, nil
	}
	return c.htmlResults(ctx, query, maxResults)
}

func (c *duckDuckGoClient) instantAnswers(ctx context.Context, query string, maxResults int) ([]Result, error) {
	endpoint := "https://api.duckduckgo.com/?" + url.Values{
		"q":       {query},
		"format":  {"json"},
		"no_html": {"1"},
	}.Encode()

	body, err := c.get(ctx, endpoint)
	if err != nil {
		return nil, err
	}

	var answer instantAnswer
	if err := json.Unmarshal(body, &answer); err != nil {
		return nil, fmt.Errorf("failed to decode instant answer: %w", err)
	}

	var results []Result
	if answer.AbstractText != "" {
		results = append(results, Result{
			Title:   answer.Heading,
			Snippet: answer.AbstractText,
			URL:     answer.AbstractURL,
			Source:  "duckduckgo",
		})
	}
	for _, topic := range answer.RelatedTopics {
		if len(results) >= maxResults {
			break
		}
		if topic.Text == "" {
			continue
		}
		results = append(results, Result{
			Title:   topic.Text,
			Snippet: topic.Text,
			URL:     topic.FirstURL,
			Source:  "duckduckgo",
		})
	}
	return results, nil
}

var (
	htmlResultRe  = regexp.MustCompile(`(?s)<a[^>]+class="result__a"[^>]+href="([^"]+)"[^>]*>(.*?)</a>`)
	htmlSnippetRe = regexp.MustCompile(`(?s)<a[^>]+class="result__snippet"[^>]*>(.*?)</a>`)
	htmlTagRe     = regexp.MustCompile(`<[^>]+>`)
)

func (c *duckDuckGoClient) htmlResults(ctx context.Context, query string, maxResults int) ([]Result, error) {
	endpoint := "https://html.duckduckgo.com/html/?" + url.Values{"q": {query}}.Encode()
	body, err := c.get(ctx, endpoint)
	if err != nil {
		return nil, err
	}

	links := htmlResultRe.FindAllStringSubmatch(string(body), maxResults)
	snippets := htmlSnippetRe.FindAllStringSubmatch(string(body), maxResults)

	results := make([]Result, 0, len(links))
	for i, link := range links {
		snippet := ""
		if i < len(snippets) {
			snippet = stripTags(snippets[i][1])
		}
		results = append(results, Result{
			Title:   stripTags(link[2]),
			Snippet: snippet,
			URL:     link[1],
			Source:  "duckduckgo",
		})
	}
	return results, nil
}

func stripTags(s string) string {
	return strings.TrimSpace(htmlTagRe.ReplaceAllString(s, ""))
}

func (c *duckDuckGoClient) get(ctx context.Context, endpoint string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create search request: %w", err)
	}
	req.Header.Set("User-Agent", "Mozilla/5.0 (compatible; kounhany-bot/1.0)")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call search endpoint: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("search endpoint returned non-200 status: %s", resp.Status)
	}
	return io.ReadAll(resp.Body)
}
