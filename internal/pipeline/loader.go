// Package pipeline loads itineraries and derives day and budget views from them.
package pipeline

import (
	"context"
	"fmt"

	"github.com/jkhomeclaw/tripview/internal/model"
	"github.com/jkhomeclaw/tripview/internal/source"
)

// Load reads the itinerary at location, which is a file path or an
// http(s) URL, without touching the cache.
func Load(ctx context.Context, location string, defaults model.Defaults) (model.Trip, error) {
	if source.IsURL(location) {
		trip, _, err := source.Fetch(ctx, location, defaults)
		if err != nil {
			return model.Trip{}, fmt.Errorf("fetching %s: %w", location, err)
		}
		return trip, nil
	}

	trip, err := source.ParseFile(location, defaults)
	if err != nil {
		return model.Trip{}, fmt.Errorf("loading %s: %w", location, err)
	}
	return trip, nil
}
