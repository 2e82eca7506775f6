package resolve

import (
	"context"
	"errors"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/puzzlewire/wordled/internal/database"
	"github.com/puzzlewire/wordled/internal/source"
)

// stubStrategy is a scripted source.Strategy that counts its invocations.
type stubStrategy struct {
	name  string
	token string
	err   error
	delay time.Duration
	calls atomic.Int32
}

func (s *stubStrategy) Name() string { return s.name }

func (s *stubStrategy) Fetch(ctx context.Context, q source.Query) (string, error) {
	s.calls.Add(1)
	if s.delay > 0 {
		select {
		case <-time.After(s.delay):
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}
	if s.err != nil {
		return "", s.err
	}
	return s.token, nil
}

func newTestStore(t *testing.T) database.Store {
	t.Helper()
	store, err := database.NewSQLiteStore(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

var testDate = time.Date(2025, time.July, 7, 0, 0, 0, 0, time.UTC)

func TestResolvePrimaryShortCircuits(t *testing.T) {
	primary := &stubStrategy{name: "official-api", token: "crane"}
	s1 := &stubStrategy{name: "review-page", token: "slate"}
	s2 := &stubStrategy{name: "tomsguide", token: "plumb"}
	store := newTestStore(t)

	p := NewPipeline(primary, []source.Strategy{s1, s2}, store, nil, nil, 2*time.Second)
	record, err := p.Resolve(context.Background(), testDate)
	require.NoError(t, err)

	assert.Equal(t, "CRANE", record.Answer)
	assert.Equal(t, "official-api", record.Source)
	assert.Equal(t, 1479, record.PuzzleNumber)
	assert.Equal(t, "2025-07-07", record.Date)
	assert.NotEmpty(t, record.Hints)

	// No secondary strategy may be consulted when the primary succeeds.
	assert.EqualValues(t, 0, s1.calls.Load())
	assert.EqualValues(t, 0, s2.calls.Load())

	saved, err := store.GetPuzzleByDate(context.Background(), "2025-07-07")
	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, "CRANE", saved.Answer)
}

func TestResolveFallsBackToSecondary(t *testing.T) {
	primary := &stubStrategy{name: "official-api", err: errors.New("status 503")}
	s1 := &stubStrategy{name: "review-page", err: errors.New("status 404")}
	s2 := &stubStrategy{name: "tomsguide", token: "plumb"}
	s3 := &stubStrategy{name: "techradar", err: errors.New("timeout")}
	store := newTestStore(t)

	p := NewPipeline(primary, []source.Strategy{s1, s2, s3}, store, nil, nil, 2*time.Second)
	record, err := p.Resolve(context.Background(), testDate)
	require.NoError(t, err)

	assert.Equal(t, "PLUMB", record.Answer)
	assert.Equal(t, "tomsguide", record.Source)

	saved, err := store.GetPuzzleByDate(context.Background(), "2025-07-07")
	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, "PLUMB", saved.Answer)
}

func TestResolvePriorityBeatsLatency(t *testing.T) {
	primary := &stubStrategy{name: "official-api", err: errors.New("down")}
	slow := &stubStrategy{name: "review-page", token: "crane", delay: 150 * time.Millisecond}
	fast := &stubStrategy{name: "tomsguide", token: "slate"}
	store := newTestStore(t)

	p := NewPipeline(primary, []source.Strategy{slow, fast}, store, nil, nil, 2*time.Second)
	record, err := p.Resolve(context.Background(), testDate)
	require.NoError(t, err)

	// The review page is ranked first, so its answer wins even though the
	// lower-priority source responded earlier.
	assert.Equal(t, "CRANE", record.Answer)
	assert.Equal(t, "review-page", record.Source)
}

func TestResolveRejectedPrimaryFallsThrough(t *testing.T) {
	// "HINTS" passes the shape check but sits on the denylist.
	primary := &stubStrategy{name: "official-api", token: "HINTS"}
	s1 := &stubStrategy{name: "review-page", token: "crane"}
	store := newTestStore(t)

	p := NewPipeline(primary, []source.Strategy{s1}, store, nil, nil, 2*time.Second)
	record, err := p.Resolve(context.Background(), testDate)
	require.NoError(t, err)

	assert.Equal(t, "CRANE", record.Answer)
	assert.Equal(t, "review-page", record.Source)
}

func TestResolveSkipsInvalidSecondaryCandidates(t *testing.T) {
	primary := &stubStrategy{name: "official-api", err: errors.New("down")}
	bad := &stubStrategy{name: "review-page", token: "TODAY"}
	good := &stubStrategy{name: "tomsguide", token: "slate"}
	store := newTestStore(t)

	p := NewPipeline(primary, []source.Strategy{bad, good}, store, nil, nil, 2*time.Second)
	record, err := p.Resolve(context.Background(), testDate)
	require.NoError(t, err)
	assert.Equal(t, "SLATE", record.Answer)
}

func TestResolveExhausted(t *testing.T) {
	primary := &stubStrategy{name: "official-api", err: errors.New("down")}
	s1 := &stubStrategy{name: "review-page", err: errors.New("status 404")}
	s2 := &stubStrategy{name: "tomsguide", token: "not-a-word"}
	store := newTestStore(t)

	p := NewPipeline(primary, []source.Strategy{s1, s2}, store, nil, nil, 2*time.Second)
	record, err := p.Resolve(context.Background(), testDate)
	require.ErrorIs(t, err, ErrExhausted)
	assert.Nil(t, record)

	// Nothing may be written on exhaustion.
	saved, err := store.GetPuzzleByDate(context.Background(), "2025-07-07")
	require.NoError(t, err)
	assert.Nil(t, saved)
}

// stubDefiner is a scripted definition.Provider.
type stubDefiner struct {
	gloss string
	err   error
}

func (s *stubDefiner) Define(ctx context.Context, word string) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	return s.gloss, nil
}

func (s *stubDefiner) Name() string { return "stub-definer" }

// stubNotifier reports each announcement on a channel so tests can wait
// for the fire-and-forget goroutine.
type stubNotifier struct {
	announced chan string
}

func (s *stubNotifier) Announce(date string) {
	s.announced <- date
}

// A failing definition lookup yields an empty gloss, never a pipeline
// failure.
func TestResolveDefinerFailureYieldsEmptyDefinition(t *testing.T) {
	primary := &stubStrategy{name: "official-api", token: "crane"}
	definer := &stubDefiner{err: errors.New("dictionary returned status 503")}
	store := newTestStore(t)

	p := NewPipeline(primary, nil, store, definer, nil, 2*time.Second)
	record, err := p.Resolve(context.Background(), testDate)
	require.NoError(t, err)

	assert.Equal(t, "CRANE", record.Answer)
	assert.Empty(t, record.Definition)

	saved, err := store.GetPuzzleByDate(context.Background(), "2025-07-07")
	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Empty(t, saved.Definition)
}

func TestResolveDefinerGlossPersisted(t *testing.T) {
	primary := &stubStrategy{name: "official-api", token: "crane"}
	definer := &stubDefiner{gloss: "(noun) a large lifting machine"}
	store := newTestStore(t)

	p := NewPipeline(primary, nil, store, definer, nil, 2*time.Second)
	record, err := p.Resolve(context.Background(), testDate)
	require.NoError(t, err)
	assert.Equal(t, "(noun) a large lifting machine", record.Definition)

	saved, err := store.GetPuzzleByDate(context.Background(), "2025-07-07")
	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, "(noun) a large lifting machine", saved.Definition)
}

// The notifier runs after the write, off the request path; whatever it
// does cannot change the resolution result.
func TestResolveNotifierRunsAfterPersist(t *testing.T) {
	primary := &stubStrategy{name: "official-api", token: "crane"}
	notifier := &stubNotifier{announced: make(chan string, 1)}
	store := newTestStore(t)

	p := NewPipeline(primary, nil, store, nil, notifier, 2*time.Second)
	record, err := p.Resolve(context.Background(), testDate)
	require.NoError(t, err)
	assert.Equal(t, "CRANE", record.Answer)

	select {
	case date := <-notifier.announced:
		assert.Equal(t, "2025-07-07", date)
	case <-time.After(2 * time.Second):
		t.Fatal("notifier was never invoked")
	}

	saved, err := store.GetPuzzleByDate(context.Background(), "2025-07-07")
	require.NoError(t, err)
	require.NotNil(t, saved)
}

// A notifier stuck mid-announcement must not delay or fail the resolve
// call that triggered it.
func TestResolveDoesNotWaitForNotifier(t *testing.T) {
	primary := &stubStrategy{name: "official-api", token: "crane"}
	// Unbuffered and not drained until cleanup: Announce stays blocked
	// for the whole test.
	notifier := &stubNotifier{announced: make(chan string)}
	t.Cleanup(func() { <-notifier.announced })
	store := newTestStore(t)

	p := NewPipeline(primary, nil, store, nil, notifier, 2*time.Second)

	done := make(chan struct{})
	go func() {
		defer close(done)
		record, err := p.Resolve(context.Background(), testDate)
		assert.NoError(t, err)
		assert.Equal(t, "CRANE", record.Answer)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("resolve blocked on the notifier")
	}
}

func TestResolveTwiceYieldsOneRecord(t *testing.T) {
	primary := &stubStrategy{name: "official-api", token: "crane"}
	store := newTestStore(t)

	p := NewPipeline(primary, nil, store, nil, nil, 2*time.Second)

	_, err := p.Resolve(context.Background(), testDate)
	require.NoError(t, err)
	_, err = p.Resolve(context.Background(), testDate)
	require.NoError(t, err)

	records, err := store.ListRecentPuzzles(context.Background(), 10)
	require.NoError(t, err)
	assert.Len(t, records, 1)
}
