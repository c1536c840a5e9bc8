// Package web serves the itinerary as a mobile page and a small JSON API.
package web

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/jkhomeclaw/tripview/internal/model"
	"github.com/jkhomeclaw/tripview/internal/pipeline"
	"github.com/jkhomeclaw/tripview/internal/store"
)

// ErrNotLoaded is returned while no trip has been loaded successfully.
var ErrNotLoaded = errors.New("itinerary not loaded yet")

// Config controls the server runtime behavior.
type Config struct {
	Location       string
	Defaults       model.Defaults
	Addr           string
	AllowedOrigins []string
	Interval       time.Duration
	UseCache       bool
}

// Status is served at /api/status.
type Status struct {
	StartedAt         time.Time `json:"started_at"`
	LastLoadAt        time.Time `json:"last_load_at"`
	LastChangeAt      time.Time `json:"last_change_at"`
	ReloadIntervalSec int       `json:"reload_interval_sec"`
	LoadCount         int64     `json:"load_count"`
	Location          string    `json:"location"`
	Title             string    `json:"title,omitempty"`
	Days              int       `json:"days"`
	Stops             int       `json:"stops"`
	Stale             bool      `json:"stale"`
	LastError         string    `json:"last_error,omitempty"`
}

// loadFunc fetches and normalizes the trip. stale reports a cached fallback.
type loadFunc func(ctx context.Context) (trip model.Trip, stale bool, err error)

// Service holds the current trip and serves it over HTTP.
type Service struct {
	cfg  Config
	load loadFunc

	mu           sync.RWMutex
	startedAt    time.Time
	lastLoadAt   time.Time
	lastChangeAt time.Time
	loadCount    int64
	lastError    string
	hasTrip      bool
	stale        bool
	trip         model.Trip
	payload      []byte
}

// New returns a new service with the provided config.
func New(cfg Config) *Service {
	if cfg.Interval < time.Second {
		cfg.Interval = 5 * time.Second
	}
	if cfg.Addr == "" {
		cfg.Addr = "127.0.0.1:8080"
	}

	s := &Service{
		cfg:       cfg,
		startedAt: time.Now(),
	}
	s.load = s.loadTrip
	return s
}

// Run starts the HTTP server and the reload loop until ctx is canceled.
func (s *Service) Run(ctx context.Context) error {
	server := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()
	log.Printf("tripview serve: listening addr=%s location=%s", s.cfg.Addr, s.cfg.Location)

	// Load once up front so the first request has data.
	s.Reload(ctx)

	ticker := time.NewTicker(s.cfg.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		case <-ticker.C:
			s.Reload(ctx)
		case err := <-errCh:
			return fmt.Errorf("http server: %w", err)
		}
	}
}

// Reload loads the trip once and swaps it in when it changed. A failed load
// keeps the previous trip and records the error.
func (s *Service) Reload(ctx context.Context) {
	trip, stale, err := s.load(ctx)
	now := time.Now()
	if err != nil {
		s.mu.Lock()
		s.lastError = err.Error()
		s.lastLoadAt = now
		s.loadCount++
		s.mu.Unlock()
		log.Printf("tripview serve: reload error: %v", err)
		return
	}

	payload, err := json.Marshal(trip)
	if err != nil {
		s.mu.Lock()
		s.lastError = err.Error()
		s.mu.Unlock()
		return
	}

	s.mu.Lock()
	changed := !s.hasTrip || !bytes.Equal(payload, s.payload)
	if changed {
		s.trip = trip
		s.payload = payload
		s.hasTrip = true
		s.lastChangeAt = now
	}
	s.stale = stale
	s.lastLoadAt = now
	s.loadCount++
	s.lastError = ""
	s.mu.Unlock()

	if changed {
		log.Printf("tripview serve: trip loaded title=%q days=%d stops=%d stale=%t",
			trip.Meta.Title, len(trip.Days), trip.StopCount(), stale)
	}
}

// Trip returns the current trip and its JSON encoding.
func (s *Service) Trip() (model.Trip, []byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.hasTrip {
		return model.Trip{}, nil, ErrNotLoaded
	}
	return s.trip, s.payload, nil
}

// Status returns a snapshot of the service state.
func (s *Service) Status() Status {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return Status{
		StartedAt:         s.startedAt,
		LastLoadAt:        s.lastLoadAt,
		LastChangeAt:      s.lastChangeAt,
		ReloadIntervalSec: int(s.cfg.Interval.Seconds()),
		LoadCount:         s.loadCount,
		Location:          s.cfg.Location,
		Title:             s.trip.Meta.Title,
		Days:              len(s.trip.Days),
		Stops:             s.trip.StopCount(),
		Stale:             s.stale,
		LastError:         s.lastError,
	}
}

func (s *Service) loadTrip(ctx context.Context) (model.Trip, bool, error) {
	if s.cfg.UseCache {
		cache, err := store.Open(pipeline.CachePath())
		if err == nil {
			defer func() { _ = cache.Close() }()
			res, loadErr := pipeline.LoadWithCache(ctx, s.cfg.Location, s.cfg.Defaults, cache)
			if loadErr == nil {
				return res.Trip, res.Stale, nil
			}
		}
	}

	trip, err := pipeline.Load(ctx, s.cfg.Location, s.cfg.Defaults)
	return trip, false, err
}
