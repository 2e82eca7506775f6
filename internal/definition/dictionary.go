// Package definition provides the free Dictionary API implementation of the Provider interface.
package definition

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// DictionaryClient looks up definitions on the free Dictionary API. No
// API key required.
type DictionaryClient struct {
	httpClient *http.Client
	baseURL    string
}

// NewDictionaryClient creates a new Dictionary API client.
func NewDictionaryClient() *DictionaryClient {
	return &DictionaryClient{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		baseURL:    "https://api.dictionaryapi.dev",
	}
}

// Name returns the provider name.
func (c *DictionaryClient) Name() string {
	return "dictionary"
}

type dictionaryEntry struct {
	Word     string `json:"word"`
	Meanings []struct {
		PartOfSpeech string `json:"partOfSpeech"`
		Definitions  []struct {
			Definition string `json:"definition"`
		} `json:"definitions"`
	} `json:"meanings"`
}

// Define returns the first definition listed for the word.
func (c *DictionaryClient) Define(ctx context.Context, word string) (string, error) {
	u := fmt.Sprintf("%s/api/v2/entries/en/%s", c.baseURL, strings.ToLower(word))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return "", err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("dictionary lookup failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("dictionary returned status %d", resp.StatusCode)
	}

	var entries []dictionaryEntry
	if err := json.NewDecoder(resp.Body).Decode(&entries); err != nil {
		return "", fmt.Errorf("failed to decode dictionary response: %w", err)
	}

	for _, entry := range entries {
		for _, meaning := range entry.Meanings {
			for _, def := range meaning.Definitions {
				if def.Definition != "" {
					if meaning.PartOfSpeech != "" {
						return fmt.Sprintf("(%s) %s", meaning.PartOfSpeech, def.Definition), nil
					}
					return def.Definition, nil
				}
			}
		}
	}

	return "", fmt.Errorf("no definition found for %q", word)
}
