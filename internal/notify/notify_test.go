package notify

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func overrideEndpoints(t *testing.T, endpoints []string) {
	t.Helper()
	saved := pingEndpoints
	pingEndpoints = endpoints
	t.Cleanup(func() { pingEndpoints = saved })
}

func TestAnnouncePingsEveryEndpoint(t *testing.T) {
	var hits atomic.Int32
	var gotSitemap atomic.Value
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		gotSitemap.Store(r.URL.Query().Get("sitemap"))
	}))
	t.Cleanup(srv.Close)

	overrideEndpoints(t, []string{
		srv.URL + "/ping?sitemap=%s",
		srv.URL + "/ping?sitemap=%s",
	})

	p := NewPinger("https://example.com/")
	p.Announce("2025-07-07")

	assert.EqualValues(t, 2, hits.Load())
	// Trailing slash trimmed, sitemap path appended, value arrives decoded.
	require.NotNil(t, gotSitemap.Load())
	assert.Equal(t, "https://example.com/sitemap.xml", gotSitemap.Load().(string))
}

// A failing engine must not stop the remaining pings, and Announce must
// return normally whatever the engines do.
func TestAnnounceContinuesPastFailures(t *testing.T) {
	var hits atomic.Int32
	failing := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		http.Error(w, "go away", http.StatusServiceUnavailable)
	}))
	t.Cleanup(failing.Close)

	healthy := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
	}))
	t.Cleanup(healthy.Close)

	unreachable := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	unreachable.Close()

	overrideEndpoints(t, []string{
		failing.URL + "/ping?sitemap=%s",
		unreachable.URL + "/ping?sitemap=%s",
		healthy.URL + "/ping?sitemap=%s",
	})

	p := NewPinger("https://example.com")
	p.Announce("2025-07-07")

	assert.EqualValues(t, 2, hits.Load())
}
