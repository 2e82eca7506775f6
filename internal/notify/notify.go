// Package notify provides best-effort search-engine announcements of new
// content. Every failure here is logged and swallowed; nothing in this
// package may affect a pipeline's reported outcome.
package notify

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

// pingEndpoints receive the sitemap URL as their single format argument.
var pingEndpoints = []string{
	"https://www.google.com/ping?sitemap=%s",
	"https://www.bing.com/ping?sitemap=%s",
}

// Pinger notifies search engines that the site's sitemap has new content.
type Pinger struct {
	httpClient *http.Client
	siteURL    string
}

// NewPinger creates a pinger for the given public site URL.
func NewPinger(siteURL string) *Pinger {
	return &Pinger{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		siteURL:    strings.TrimRight(siteURL, "/"),
	}
}

// Announce pings each search engine about the updated sitemap. Runs with
// its own timeout so a slow engine cannot hold anything up.
func (p *Pinger) Announce(date string) {
	ctx, cancel := context.WithTimeout(context.Background(), 25*time.Second)
	defer cancel()

	sitemap := url.QueryEscape(p.siteURL + "/sitemap.xml")
	for _, endpoint := range pingEndpoints {
		u := fmt.Sprintf(endpoint, sitemap)

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
		if err != nil {
			log.Warn().Err(err).Str("date", date).Msg("Index ping request failed")
			continue
		}

		resp, err := p.httpClient.Do(req)
		if err != nil {
			log.Warn().Err(err).Str("date", date).Msg("Index ping failed")
			continue
		}
		resp.Body.Close()

		log.Debug().Int("status", resp.StatusCode).Str("date", date).Str("endpoint", u).Msg("Index ping sent")
	}
}
