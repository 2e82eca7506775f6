// Package source provides the TechRadar scraping strategy.
package source

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"regexp"
	"time"

	"github.com/rs/zerolog/log"
)

// TechRadarClient scrapes the TechRadar daily article. The site ships its
// article data as an embedded script-level JSON literal, so that is tried
// first; a regex scan of the rendered text is the fallback.
type TechRadarClient struct {
	httpClient *http.Client
	baseURL    string
}

// NewTechRadarClient creates a new TechRadar client.
func NewTechRadarClient() *TechRadarClient {
	return &TechRadarClient{
		httpClient: &http.Client{Timeout: 15 * time.Second},
		baseURL:    "https://www.techradar.com",
	}
}

// Name returns the strategy name.
func (c *TechRadarClient) Name() string {
	return "techradar"
}

var nextDataPattern = regexp.MustCompile(`(?is)<script[^>]*id="__NEXT_DATA__"[^>]*>(.*?)</script>`)

var techRadarPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)today's wordle answer is[:\s]+["'\x{201C}]?([A-Za-z]{5})\b`),
	regexp.MustCompile(`(?i)the answer is\.{0,3}\s*["'\x{201C}]?([A-Za-z]{5})\b`),
}

// Fetch scrapes the article for the query's puzzle number.
func (c *TechRadarClient) Fetch(ctx context.Context, q Query) (string, error) {
	u := fmt.Sprintf("%s/news/wordle-today-%d", c.baseURL, q.Number)

	body, err := fetchHTML(ctx, c.httpClient, u)
	if err != nil {
		return "", err
	}

	if token := c.extractScriptData(body); token != "" {
		log.Debug().Str("token", token).Msg("TechRadar script data yielded a candidate")
		return token, nil
	}

	if token := firstMatch(techRadarPatterns, pageText(body)); token != "" {
		log.Debug().Str("token", token).Msg("TechRadar text scan yielded a candidate")
		return token, nil
	}

	return "", ErrNoCandidate
}

// extractScriptData parses the embedded JSON literal and searches it for
// an answer-like field.
func (c *TechRadarClient) extractScriptData(body string) string {
	m := nextDataPattern.FindStringSubmatch(body)
	if len(m) < 2 {
		return ""
	}

	var data interface{}
	if err := json.Unmarshal([]byte(m[1]), &data); err != nil {
		return ""
	}
	return findAnswerField(data)
}

// answerKeys are the field names checked, in order, at every level of the
// parsed structure.
var answerKeys = []string{"solution", "answer", "todaysWord", "word"}

// findAnswerField walks an untyped JSON structure looking for a 5-letter
// alphabetic string under a known answer key.
func findAnswerField(v interface{}) string {
	switch t := v.(type) {
	case map[string]interface{}:
		for _, k := range answerKeys {
			if s, ok := t[k].(string); ok && isAlpha5(s) {
				return s
			}
		}
		for _, vv := range t {
			if s := findAnswerField(vv); s != "" {
				return s
			}
		}
	case []interface{}:
		for _, vv := range t {
			if s := findAnswerField(vv); s != "" {
				return s
			}
		}
	}
	return ""
}

func isAlpha5(s string) bool {
	if len(s) != 5 {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !(c >= 'a' && c <= 'z') && !(c >= 'A' && c <= 'Z') {
			return false
		}
	}
	return true
}
