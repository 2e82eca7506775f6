// Package source provides the review page scraping strategy.
package source

import (
	"context"
	"fmt"
	"net/http"
	"regexp"
	"time"

	"github.com/rs/zerolog/log"
)

// ReviewClient scrapes the human-authored daily review column. The page
// dated X discusses the puzzle of X-1, so the URL is built from the day
// after the target date plus the computed puzzle number.
type ReviewClient struct {
	httpClient *http.Client
	baseURL    string
}

// NewReviewClient creates a new review page client.
func NewReviewClient() *ReviewClient {
	return &ReviewClient{
		httpClient: &http.Client{Timeout: 15 * time.Second},
		baseURL:    "https://www.nytimes.com",
	}
}

// Name returns the strategy name.
func (c *ReviewClient) Name() string {
	return "review-page"
}

// reviewPatterns are applied in order against the rendered page text; the
// first capture wins. Ordered from most to least specific phrasing.
var reviewPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)today['’]?s word is ["'“]?([A-Za-z]{5})\b`),
	regexp.MustCompile(`(?i)the (?:word|answer|solution)(?: today)?,? (?:is|was) ["'“]?([A-Za-z]{5})\b`),
	regexp.MustCompile(`(?i)wordle\s*#?\s*\d+\s*(?:answer|solution)[:\s]+["'“]?([A-Za-z]{5})\b`),
	regexp.MustCompile(`"([A-Z]{5})"`),
	regexp.MustCompile(`“([A-Z]{5})”`),
}

// Fetch scrapes the review page for the query's puzzle.
func (c *ReviewClient) Fetch(ctx context.Context, q Query) (string, error) {
	pub := q.Date.UTC().AddDate(0, 0, 1)
	u := fmt.Sprintf("%s/%04d/%02d/%02d/crosswords/wordle-review-%d.html",
		c.baseURL, pub.Year(), pub.Month(), pub.Day(), q.Number)

	body, err := fetchHTML(ctx, c.httpClient, u)
	if err != nil {
		return "", err
	}

	token := firstMatch(reviewPatterns, pageText(body))
	if token == "" {
		return "", ErrNoCandidate
	}

	log.Debug().Str("token", token).Int("number", q.Number).Msg("Review page yielded a candidate")
	return token, nil
}
