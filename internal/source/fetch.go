package source

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/jkhomeclaw/tripview/internal/model"
)

const (
	requestTimeout = 10 * time.Second
	maxBodySize    = 1 << 20 // 1 MB
)

// ErrResponseTooLarge is returned when a remote body exceeds the size cap.
var ErrResponseTooLarge = errors.New("source: response too large")

// StatusError is returned when a remote data source answers with a non-2xx code.
type StatusError struct {
	URL  string
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("source: %s returned status %d", e.URL, e.Code)
}

// IsURL reports whether location should be fetched over HTTP.
func IsURL(location string) bool {
	l := strings.ToLower(location)
	return strings.HasPrefix(l, "http://") || strings.HasPrefix(l, "https://")
}

// Fetch downloads and parses a remote itinerary. The raw body is returned
// alongside the trip so callers can cache it.
func Fetch(ctx context.Context, url string, defaults model.Defaults) (model.Trip, []byte, error) {
	body, err := FetchRaw(ctx, http.DefaultClient, url)
	if err != nil {
		return model.Trip{}, nil, err
	}
	trip, err := Parse(bytes.NewReader(body), defaults)
	if err != nil {
		return model.Trip{}, nil, err
	}
	return trip, body, nil
}

// FetchRaw performs the GET and returns the capped body.
func FetchRaw(ctx context.Context, client *http.Client, url string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("source: creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "tripview/1.0")

	//nolint:gosec // URL comes from the user's own config
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("source: request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &StatusError{URL: url, Code: resp.StatusCode}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize+1))
	if err != nil {
		return nil, fmt.Errorf("source: reading response: %w", err)
	}
	if len(body) > maxBodySize {
		return nil, fmt.Errorf("%w: %s exceeds %d bytes", ErrResponseTooLarge, url, maxBodySize)
	}
	return body, nil
}
