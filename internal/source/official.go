// Package source provides the official puzzle API strategy.
package source

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
)

// OfficialClient fetches the answer from the publisher's daily JSON
// endpoint. Highest-priority strategy: when it succeeds no scraper runs.
type OfficialClient struct {
	httpClient *http.Client
	baseURL    string
}

// NewOfficialClient creates a new official API client.
func NewOfficialClient() *OfficialClient {
	return &OfficialClient{
		httpClient: &http.Client{Timeout: 15 * time.Second},
		baseURL:    "https://www.nytimes.com",
	}
}

// Name returns the strategy name.
func (c *OfficialClient) Name() string {
	return "official-api"
}

type officialResponse struct {
	ID        int    `json:"id"`
	Solution  string `json:"solution"`
	PrintDate string `json:"print_date"`
	Editor    string `json:"editor"`
}

// Fetch retrieves the solution for the query date. Anything other than a
// 200 with a populated solution field is treated as no candidate.
func (c *OfficialClient) Fetch(ctx context.Context, q Query) (string, error) {
	u := fmt.Sprintf("%s/svc/wordle/v2/%s.json", c.baseURL, q.Date.UTC().Format("2006-01-02"))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("status %d", resp.StatusCode)
	}

	var data officialResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return "", err
	}
	if data.Solution == "" {
		return "", ErrNoCandidate
	}

	log.Debug().Str("date", data.PrintDate).Int("id", data.ID).Msg("Official API returned a solution")
	return data.Solution, nil
}
