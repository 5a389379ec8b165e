package store

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/zeptools/findoc-core/db/kvdb"
)

// memKV is a map-backed kvdb.Client for tests; it records TTL refreshes
type memKV struct {
	data    map[string]string
	expires map[string]time.Duration
}

func newMemKV() *memKV {
	return &memKV{data: map[string]string{}, expires: map[string]time.Duration{}}
}

func (m *memKV) Init() error         { return nil }
func (m *memKV) Close() error        { return nil }
func (m *memKV) GetHandle() any      { return nil }
func (m *memKV) GetConf() *kvdb.Conf { return nil }

func (m *memKV) Exists(_ context.Context, key string) (bool, error) {
	_, ok := m.data[key]
	return ok, nil
}

func (m *memKV) Expire(_ context.Context, key string, expiration time.Duration) (bool, error) {
	_, ok := m.data[key]
	if ok {
		m.expires[key] = expiration
	}
	return ok, nil
}

func (m *memKV) Set(_ context.Context, key string, value any, _ time.Duration) error {
	switch v := value.(type) {
	case []byte:
		m.data[key] = string(v)
	case string:
		m.data[key] = v
	}
	return nil
}

func (m *memKV) Get(_ context.Context, key string) (string, bool, error) {
	val, ok := m.data[key]
	return val, ok, nil
}

func TestNewLogoFetcherUsesSharedHTTPClient(t *testing.T) {
	shared := &http.Client{Timeout: time.Second}
	if f := NewLogoFetcher(shared, nil); f.HTTP != shared {
		t.Fatal("injected HTTP client must be used")
	}
	if f := NewLogoFetcher(nil, nil); f.HTTP == nil || f.HTTP.Timeout == 0 {
		t.Fatal("nil client must fall back to a default with a timeout")
	}
}

func TestLogoFetcherCachesAndRefreshesTTL(t *testing.T) {
	hits := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		hits++
		_, _ = w.Write([]byte("png-bytes"))
	}))
	defer srv.Close()

	cache := newMemKV()
	f := NewLogoFetcher(srv.Client(), cache)
	ctx := context.Background()

	if got := f.Fetch(ctx, srv.URL); string(got) != "png-bytes" {
		t.Fatalf("first fetch = %q", got)
	}
	if got := f.Fetch(ctx, srv.URL); string(got) != "png-bytes" {
		t.Fatalf("second fetch = %q", got)
	}
	if hits != 1 {
		t.Fatalf("second fetch must come from the cache, server saw %d requests", hits)
	}
	refreshed := false
	for _, ttl := range cache.expires {
		if ttl == f.TTL {
			refreshed = true
		}
	}
	if !refreshed {
		t.Fatal("a cache hit must refresh the entry's TTL")
	}
}

func TestLogoFetcherBacksOffAfterFailure(t *testing.T) {
	hits := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		hits++
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	f := NewLogoFetcher(srv.Client(), newMemKV())
	ctx := context.Background()

	if got := f.Fetch(ctx, srv.URL); got != nil {
		t.Fatalf("failed fetch must return nil, got %q", got)
	}
	if got := f.Fetch(ctx, srv.URL); got != nil {
		t.Fatalf("backed-off fetch must return nil, got %q", got)
	}
	if hits != 1 {
		t.Fatalf("miss marker must stop the re-fetch, server saw %d requests", hits)
	}
}
