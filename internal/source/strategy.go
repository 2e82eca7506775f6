// Package source provides the answer acquisition strategies, one per
// external data provider. Each strategy fetches raw content for a target
// date and reduces it to a single candidate token; all heuristic parsing
// stays inside the strategy boundary.
package source

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"

	xhtml "golang.org/x/net/html"
)

// Query identifies the puzzle a strategy should resolve.
type Query struct {
	Date   time.Time
	Number int
}

// Strategy is a single method of obtaining a candidate answer. Fetch
// returns the extracted token, or an error when the provider is
// unavailable or no token could be found. Errors never carry pipeline
// significance beyond "not found".
type Strategy interface {
	Fetch(ctx context.Context, q Query) (string, error)
	Name() string
}

// ErrNoCandidate indicates the provider responded but no answer token
// could be extracted.
var ErrNoCandidate = errors.New("no candidate found")

// AllSecondaries returns every scraper strategy in fixed priority order:
// the review page first, then the third-party hint sites. This slice is
// the single source of truth for secondary priority; callers may filter
// it but must not reorder it.
func AllSecondaries() []Strategy {
	return []Strategy{
		NewReviewClient(),
		NewTomsGuideClient(),
		NewTechRadarClient(),
		NewRockPaperShotgunClient(),
	}
}

const (
	userAgent    = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
	maxBodyBytes = 1024 * 1024
)

// fetchHTML retrieves a page with browser-like headers and returns its
// body capped at maxBodyBytes.
func fetchHTML(ctx context.Context, client *http.Client, pageURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")

	resp, err := client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return "", err
	}
	return string(body), nil
}

var (
	scriptPattern  = regexp.MustCompile(`(?is)<script[^>]*>.*?</script>`)
	stylePattern   = regexp.MustCompile(`(?is)<style[^>]*>.*?</style>`)
	commentPattern = regexp.MustCompile(`<!--[\s\S]*?-->`)
	tagPattern     = regexp.MustCompile(`<[^>]+>`)
	spacePattern   = regexp.MustCompile(`\s+`)
)

// pageText reduces HTML to readable text for regex scanning.
func pageText(htmlContent string) string {
	htmlContent = scriptPattern.ReplaceAllString(htmlContent, "")
	htmlContent = stylePattern.ReplaceAllString(htmlContent, "")
	htmlContent = commentPattern.ReplaceAllString(htmlContent, "")
	text := tagPattern.ReplaceAllString(htmlContent, " ")
	text = xhtml.UnescapeString(text)
	return strings.TrimSpace(spacePattern.ReplaceAllString(text, " "))
}

// firstMatch applies patterns in order against text and returns the first
// capture group that hits.
func firstMatch(patterns []*regexp.Regexp, text string) string {
	for _, p := range patterns {
		if m := p.FindStringSubmatch(text); len(m) > 1 {
			return m[1]
		}
	}
	return ""
}

// upperToken matches a standalone run of exactly five capital letters.
var upperToken = regexp.MustCompile(`\b([A-Z]{5})\b`)

// findMarkedToken walks the document looking for elements of the given
// tags whose text contains marker (matched case-insensitively). The token
// is taken from the marked element itself, or from the next few text
// chunks that follow it.
func findMarkedToken(htmlContent string, tags map[string]bool, marker string) string {
	doc, err := xhtml.Parse(strings.NewReader(htmlContent))
	if err != nil {
		return ""
	}

	var result string
	armed := 0
	var walk func(n *xhtml.Node)
	walk = func(n *xhtml.Node) {
		if result != "" {
			return
		}
		if n.Type == xhtml.ElementNode && tags[n.Data] {
			t := nodeText(n)
			if strings.Contains(strings.ToLower(t), marker) {
				if m := upperToken.FindString(t); m != "" {
					result = m
					return
				}
				armed = 6 // scan up to six following text chunks
				return    // descendants already inspected via nodeText
			}
		}
		if armed > 0 && n.Type == xhtml.TextNode {
			if t := strings.TrimSpace(n.Data); t != "" {
				if m := upperToken.FindString(t); m != "" {
					result = m
					return
				}
				armed--
			}
		}
		for c := n.FirstChild; c != nil && result == ""; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return result
}

// nodeText collects the concatenated text content of a node subtree.
func nodeText(n *xhtml.Node) string {
	var b strings.Builder
	var walk func(n *xhtml.Node)
	walk = func(n *xhtml.Node) {
		if n.Type == xhtml.TextNode {
			b.WriteString(n.Data)
			b.WriteByte(' ')
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return b.String()
}
