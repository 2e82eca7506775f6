package definition

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/puzzlewire/wordled/internal/config"
)

func serveDictionary(t *testing.T, status int, body string) *DictionaryClient {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v2/entries/en/crane", r.URL.Path)
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)

	c := NewDictionaryClient()
	c.baseURL = srv.URL
	return c
}

func TestDictionaryDefine(t *testing.T) {
	c := serveDictionary(t, http.StatusOK, `[{
		"word": "crane",
		"meanings": [
			{"partOfSpeech": "noun", "definitions": [{"definition": "a large lifting machine"}]}
		]
	}]`)

	gloss, err := c.Define(context.Background(), "CRANE")
	require.NoError(t, err)
	assert.Equal(t, "(noun) a large lifting machine", gloss)
}

func TestDictionaryDefineSkipsEmptyDefinitions(t *testing.T) {
	c := serveDictionary(t, http.StatusOK, `[{
		"word": "crane",
		"meanings": [
			{"partOfSpeech": "verb", "definitions": [{"definition": ""}]},
			{"partOfSpeech": "noun", "definitions": [{"definition": "a tall wading bird"}]}
		]
	}]`)

	gloss, err := c.Define(context.Background(), "crane")
	require.NoError(t, err)
	assert.Equal(t, "(noun) a tall wading bird", gloss)
}

func TestDictionaryDefineNoPartOfSpeech(t *testing.T) {
	c := serveDictionary(t, http.StatusOK, `[{
		"word": "crane",
		"meanings": [{"partOfSpeech": "", "definitions": [{"definition": "a machine"}]}]
	}]`)

	gloss, err := c.Define(context.Background(), "crane")
	require.NoError(t, err)
	assert.Equal(t, "a machine", gloss)
}

func TestDictionaryDefineErrors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{"word not found", http.StatusNotFound, `{"title":"No Definitions Found"}`},
		{"server error", http.StatusInternalServerError, ""},
		{"malformed body", http.StatusOK, `{not json`},
		{"empty entries", http.StatusOK, `[]`},
		{"no usable definition", http.StatusOK, `[{"word":"crane","meanings":[]}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := serveDictionary(t, tt.status, tt.body)
			_, err := c.Define(context.Background(), "crane")
			require.Error(t, err)
		})
	}
}

func TestNewProvider(t *testing.T) {
	p, err := NewProvider(config.DefinitionConfig{Provider: "none"})
	require.NoError(t, err)
	assert.Nil(t, p)

	p, err = NewProvider(config.DefinitionConfig{Provider: ""})
	require.NoError(t, err)
	assert.Nil(t, p)

	p, err = NewProvider(config.DefinitionConfig{Provider: "dictionary"})
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, "dictionary", p.Name())

	p, err = NewProvider(config.DefinitionConfig{Provider: "openai", APIKey: "sk-test"})
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, "openai", p.Name())

	_, err = NewProvider(config.DefinitionConfig{Provider: "openai"})
	require.Error(t, err)

	_, err = NewProvider(config.DefinitionConfig{Provider: "webster"})
	require.Error(t, err)
}
