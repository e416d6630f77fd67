package stations

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
)

// FeedSource supplies the raw station master-data text.
type FeedSource interface {
	FetchStationFeed(ctx context.Context) (string, error)
}

// LoadCatalog builds a catalog from the remote feed, falling back to the
// cached local copy when the fetch or the parse fails. A successful remote
// fetch refreshes the cache.
func LoadCatalog(ctx context.Context, source FeedSource, cachePath string, windows HealWindows) (*Catalog, error) {
	feedText, err := source.FetchStationFeed(ctx)
	if err == nil {
		if records, parseErr := ParseFeed(feedText, windows); parseErr == nil {
			if cachePath != "" {
				if writeErr := os.WriteFile(cachePath, []byte(feedText), 0644); writeErr != nil {
					log.Warn().Err(writeErr).Str("path", cachePath).Msg("Failed to refresh station feed cache")
				}
			}
			return NewCatalog(records), nil
		} else {
			err = parseErr
		}
	}

	log.Warn().Err(err).Msg("Remote station feed unavailable, trying cached copy")

	cached, readErr := os.ReadFile(cachePath)
	if readErr != nil {
		return nil, fmt.Errorf("station feed unavailable: remote: %w, cache: %s", err, readErr)
	}

	records, parseErr := ParseFeed(string(cached), windows)
	if parseErr != nil {
		return nil, parseErr
	}

	return NewCatalog(records), nil
}
