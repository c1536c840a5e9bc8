package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/jkhomeclaw/tripview/internal/model"
	"github.com/jkhomeclaw/tripview/internal/source"
	"github.com/jkhomeclaw/tripview/internal/store"
)

// CachedLoadResult is a loaded trip plus cache metadata.
type CachedLoadResult struct {
	Trip     model.Trip
	CacheHit bool
	// Stale is set when a remote fetch failed and the last cached copy was
	// served instead. FetchErr holds the failure.
	Stale    bool
	FetchErr error
}

// LoadWithCache loads location, consulting cache first. Local files are
// re-parsed only when their mtime or size changed. Remote sources are always
// fetched and fall back to the cached copy when the fetch fails.
func LoadWithCache(ctx context.Context, location string, defaults model.Defaults, cache *store.Cache) (*CachedLoadResult, error) {
	if source.IsURL(location) {
		return loadRemote(ctx, location, defaults, cache)
	}
	return loadFile(location, defaults, cache)
}

func loadFile(location string, defaults model.Defaults, cache *store.Cache) (*CachedLoadResult, error) {
	path, err := filepath.Abs(location)
	if err != nil {
		path = location
	}
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", location, err)
	}
	key := cacheKey(path, defaults)

	cached, ok, err := cache.Get(key)
	if err != nil {
		return nil, fmt.Errorf("reading cache: %w", err)
	}
	if ok && cached.MtimeNs == info.ModTime().UnixNano() && cached.SizeBytes == info.Size() {
		return &CachedLoadResult{Trip: cached.Trip, CacheHit: true}, nil
	}

	trip, err := source.ParseFile(path, defaults)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", location, err)
	}
	_ = cache.Put(key, info.ModTime().UnixNano(), info.Size(), trip)
	return &CachedLoadResult{Trip: trip}, nil
}

func loadRemote(ctx context.Context, url string, defaults model.Defaults, cache *store.Cache) (*CachedLoadResult, error) {
	key := cacheKey(url, defaults)

	trip, body, fetchErr := source.Fetch(ctx, url, defaults)
	if fetchErr == nil {
		_ = cache.Put(key, 0, int64(len(body)), trip)
		return &CachedLoadResult{Trip: trip}, nil
	}

	cached, ok, err := cache.Get(key)
	if err != nil || !ok {
		return nil, fmt.Errorf("fetching %s: %w", url, fetchErr)
	}
	return &CachedLoadResult{
		Trip:     cached.Trip,
		CacheHit: true,
		Stale:    true,
		FetchErr: fetchErr,
	}, nil
}

// cacheKey includes the currency defaults a snapshot was normalized with.
func cacheKey(location string, d model.Defaults) string {
	return location + "#" + d.HomeCurrency + "/" + d.DestinationCurrency + "/" +
		strconv.FormatFloat(d.ExchangeRate, 'f', -1, 64)
}

// CacheDir returns the platform-appropriate cache directory.
func CacheDir() string {
	if xdg := os.Getenv("XDG_CACHE_HOME"); xdg != "" {
		return filepath.Join(xdg, "tripview")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".cache", "tripview")
}

// CachePath returns the full path to the cache database.
func CachePath() string {
	return filepath.Join(CacheDir(), "trips.db")
}
