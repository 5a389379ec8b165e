package store

import (
	"context"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/zeptools/findoc-core/db/kvdb"
	"github.com/zeptools/findoc-core/sec"
)

const (
	logoMaxBytes   = 2 << 20 // 2 MiB is plenty for a header logo
	logoCachePfx   = "logo:"
	logoMissPfx    = "logo-miss:"
	logoDefaultTTL = 6 * time.Hour
	logoMissTTL    = 5 * time.Minute // back-off window after a failed fetch
)

// LogoFetcher downloads the company logo over HTTP and caches the bytes in
// the KV database. Failed URLs get a short-lived miss marker so a dead logo
// host is not re-hit on every render. Every failure path returns nil; the
// renderer draws a placeholder instead and the document still ships.
type LogoFetcher struct {
	HTTP  *http.Client
	Cache kvdb.Client // optional
	TTL   time.Duration
}

// NewLogoFetcher wires the fetcher onto the app's shared HTTP client and KV
// cache; a nil client falls back to a private one with a request timeout
func NewLogoFetcher(httpClient *http.Client, cache kvdb.Client) *LogoFetcher {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	return &LogoFetcher{
		HTTP:  httpClient,
		Cache: cache,
		TTL:   logoDefaultTTL,
	}
}

// Fetch returns the logo bytes, or nil when the URL is empty, unreachable,
// oversized or recently failed
func (f *LogoFetcher) Fetch(ctx context.Context, url string) []byte {
	if url == "" {
		return nil
	}
	digest := sec.HashHexBlake2b([]byte(url))
	key := logoCachePfx + digest
	missKey := logoMissPfx + digest
	if f.Cache != nil {
		if val, found, err := f.Cache.Get(ctx, key); err == nil && found {
			// logos change rarely; a hit keeps the entry warm
			if _, err := f.Cache.Expire(ctx, key, f.TTL); err != nil {
				log.Printf("[WARN] logo cache ttl refresh failed: %v", err)
			}
			return []byte(val)
		}
		if hit, err := f.Cache.Exists(ctx, missKey); err == nil && hit {
			return nil // recent failure, still backing off
		}
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		log.Printf("[WARN] logo request build failed: %v", err)
		f.markMiss(ctx, missKey)
		return nil
	}
	resp, err := f.HTTP.Do(req)
	if err != nil {
		log.Printf("[WARN] logo fetch failed: %v", err)
		f.markMiss(ctx, missKey)
		return nil
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	if resp.StatusCode != http.StatusOK {
		log.Printf("[WARN] logo fetch returned %d", resp.StatusCode)
		f.markMiss(ctx, missKey)
		return nil
	}
	data, err := io.ReadAll(io.LimitReader(resp.Body, logoMaxBytes+1))
	if err != nil || len(data) == 0 || len(data) > logoMaxBytes {
		log.Printf("[WARN] logo body rejected (err=%v, size=%d)", err, len(data))
		f.markMiss(ctx, missKey)
		return nil
	}
	if f.Cache != nil {
		if err := f.Cache.Set(ctx, key, data, f.TTL); err != nil {
			log.Printf("[WARN] logo cache write failed: %v", err)
		}
	}
	return data
}

func (f *LogoFetcher) markMiss(ctx context.Context, missKey string) {
	if f.Cache == nil {
		return
	}
	if err := f.Cache.Set(ctx, missKey, "1", logoMissTTL); err != nil {
		log.Printf("[WARN] logo miss marker write failed: %v", err)
	}
}
