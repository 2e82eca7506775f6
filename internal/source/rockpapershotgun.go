// Package source provides the Rock Paper Shotgun scraping strategy.
package source

import (
	"context"
	"fmt"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

// RockPaperShotgunClient scrapes the Rock Paper Shotgun daily article. Its
// URL is built from formatted date components rather than the puzzle
// number. The answer usually sits inside a strong tag near the word
// "answer"; a regex scan of the page text is the fallback.
type RockPaperShotgunClient struct {
	httpClient *http.Client
	baseURL    string
}

// NewRockPaperShotgunClient creates a new Rock Paper Shotgun client.
func NewRockPaperShotgunClient() *RockPaperShotgunClient {
	return &RockPaperShotgunClient{
		httpClient: &http.Client{Timeout: 15 * time.Second},
		baseURL:    "https://www.rockpapershotgun.com",
	}
}

// Name returns the strategy name.
func (c *RockPaperShotgunClient) Name() string {
	return "rockpapershotgun"
}

var rpsMarkedTags = map[string]bool{"strong": true, "b": true}

var rpsPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)the answer (?:to today's (?:wordle|puzzle) )?is[:.\s]+["'\x{201C}]?([A-Za-z]{5})\b`),
	regexp.MustCompile(`(?i)today's wordle (?:answer|solution)\D{0,30}?\b([A-Z]{5})\b`),
}

// Fetch scrapes the article for the query's date.
func (c *RockPaperShotgunClient) Fetch(ctx context.Context, q Query) (string, error) {
	day := q.Date.UTC()
	slug := strings.ToLower(day.Format("Monday-2-January"))
	u := fmt.Sprintf("%s/wordle-hint-and-answer-today-%s", c.baseURL, slug)

	body, err := fetchHTML(ctx, c.httpClient, u)
	if err != nil {
		return "", err
	}

	if token := findMarkedToken(body, rpsMarkedTags, "answer"); token != "" {
		log.Debug().Str("token", token).Msg("Rock Paper Shotgun strong tag yielded a candidate")
		return token, nil
	}

	if token := firstMatch(rpsPatterns, pageText(body)); token != "" {
		log.Debug().Str("token", token).Msg("Rock Paper Shotgun text scan yielded a candidate")
		return token, nil
	}

	return "", ErrNoCandidate
}
