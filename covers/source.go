package covers

import (
	"context"
	"strings"

	"github.com/treygoff24/site/models"
)

// Source names, recorded as provenance on each resolved cover and used
// to bucket resolution stats.
const (
	SourceManual      = "manual"
	SourceYouTube     = "youtube"
	SourceITunes      = "itunes"
	SourcePlaceholder = "placeholder"
)

// Source is the adapter interface for cover lookup strategies.
// Implement this to add a new platform source (e.g. Vimeo, Spotify).
type Source interface {
	// Name identifies the source in stats and provenance.
	Name() string
	// Resolve returns a cover URL for the appearance. ok is false when
	// this source has nothing to offer and the next source should be
	// tried. A non-nil error is treated as "not found" by the caller
	// but is logged for observability.
	Resolve(ctx context.Context, app models.Appearance) (url string, ok bool, err error)
}

// ManualSource returns an explicitly supplied artwork URL verbatim.
// Caller-provided, highest trust, always first in the chain.
type ManualSource struct{}

func (ManualSource) Name() string { return SourceManual }

func (ManualSource) Resolve(_ context.Context, app models.Appearance) (string, bool, error) {
	if strings.TrimSpace(app.ShowArtwork) == "" {
		return "", false, nil
	}
	return app.ShowArtwork, true, nil
}
