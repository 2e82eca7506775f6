// Package source provides the Tom's Guide scraping strategy.
package source

import (
	"context"
	"fmt"
	"net/http"
	"regexp"
	"time"

	"github.com/rs/zerolog/log"
)

// TomsGuideClient scrapes the Tom's Guide daily hints article. Extraction
// order: headings or strong tags mentioning "answer" first, then a regex
// scan of the full page text.
type TomsGuideClient struct {
	httpClient *http.Client
	baseURL    string
}

// NewTomsGuideClient creates a new Tom's Guide client.
func NewTomsGuideClient() *TomsGuideClient {
	return &TomsGuideClient{
		httpClient: &http.Client{Timeout: 15 * time.Second},
		baseURL:    "https://www.tomsguide.com",
	}
}

// Name returns the strategy name.
func (c *TomsGuideClient) Name() string {
	return "tomsguide"
}

var tomsGuideHeadingTags = map[string]bool{"h2": true, "h3": true, "strong": true}

var tomsGuidePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)the answer to today's wordle is ["'\x{201C}]?([A-Za-z]{5})\b`),
	regexp.MustCompile(`(?i)today's wordle answer\D{0,40}?\b([A-Z]{5})\b`),
	regexp.MustCompile(`(?i)answer is[:\s]+["'\x{201C}]?([A-Za-z]{5})\b`),
}

// Fetch scrapes the article for the query's puzzle number.
func (c *TomsGuideClient) Fetch(ctx context.Context, q Query) (string, error) {
	u := fmt.Sprintf("%s/news/wordle-today-answer-%d", c.baseURL, q.Number)

	body, err := fetchHTML(ctx, c.httpClient, u)
	if err != nil {
		return "", err
	}

	if token := findMarkedToken(body, tomsGuideHeadingTags, "answer"); token != "" {
		log.Debug().Str("token", token).Msg("Tom's Guide heading yielded a candidate")
		return token, nil
	}

	if token := firstMatch(tomsGuidePatterns, pageText(body)); token != "" {
		log.Debug().Str("token", token).Msg("Tom's Guide text scan yielded a candidate")
		return token, nil
	}

	return "", ErrNoCandidate
}
