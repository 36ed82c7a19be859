package covers

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/treygoff24/site/models"
	"golang.org/x/sync/errgroup"
)

const defaultResolveConcurrency = 8

// ResolvedCover is the resolution result for a single appearance. The
// Source field records which strategy produced the URL, so provenance
// never has to be re-derived from the URL's shape.
type ResolvedCover struct {
	URL    string `json:"url"`
	Source string `json:"source"`
}

// Stats counts resolution outcomes by origin for observability.
type Stats struct {
	Manual      int `json:"manual"`
	Platform    int `json:"platform"`
	Placeholder int `json:"placeholder"`
}

func (s Stats) String() string {
	return fmt.Sprintf("manual=%d platform=%d placeholder=%d", s.Manual, s.Platform, s.Placeholder)
}

func (s *Stats) count(source string) {
	switch source {
	case SourceManual:
		s.Manual++
	case SourcePlaceholder:
		s.Placeholder++
	default:
		s.Platform++
	}
}

// Resolver resolves cover images for appearances by trying an ordered
// list of sources until one succeeds. Appearances are independent
// units of work; a failed lookup degrades that one appearance to the
// placeholder and never aborts the batch.
type Resolver struct {
	sources     []Source
	concurrency int
}

// NewResolver creates a Resolver over the given source chain, tried in
// order. Pass DefaultSources(nil) for the standard chain.
func NewResolver(sources ...Source) *Resolver {
	return &Resolver{
		sources:     sources,
		concurrency: defaultResolveConcurrency,
	}
}

// DefaultSources returns the standard chain: manual artwork, YouTube
// thumbnail derivation, iTunes podcast lookup, generated placeholder.
// client configures the iTunes source; nil gets a default client.
func DefaultSources(client *http.Client) []Source {
	return []Source{
		ManualSource{},
		YouTubeSource{},
		NewITunesSource(client, ""),
		PlaceholderSource{},
	}
}

// ResolveAll resolves every appearance with bounded parallelism and
// returns exactly one entry per input ID, each with a non-empty URL.
// It fails only when the input itself is unusable (duplicate IDs).
func (r *Resolver) ResolveAll(ctx context.Context, appearances []models.Appearance) (map[string]ResolvedCover, Stats, error) {
	seen := make(map[string]struct{}, len(appearances))
	for _, app := range appearances {
		if app.ID == "" {
			return nil, Stats{}, fmt.Errorf("appearance %q has an empty ID", app.Title)
		}
		if _, dup := seen[app.ID]; dup {
			return nil, Stats{}, fmt.Errorf("duplicate appearance ID %q", app.ID)
		}
		seen[app.ID] = struct{}{}
	}

	// Each goroutine writes only its own slot; no shared mutable state.
	results := make([]ResolvedCover, len(appearances))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.concurrency)
	for i := range appearances {
		i := i
		g.Go(func() error {
			results[i] = r.resolveOne(gctx, appearances[i])
			return nil
		})
	}
	// Workers never return errors; Wait only synchronizes.
	_ = g.Wait()

	var stats Stats
	resolved := make(map[string]ResolvedCover, len(appearances))
	for i, app := range appearances {
		resolved[app.ID] = results[i]
		stats.count(results[i].Source)
	}
	return resolved, stats, nil
}

// resolveOne walks the source chain for a single appearance. Source
// errors are logged and treated as "not found". If no source produces
// a URL (a chain without the placeholder source), the placeholder is
// synthesized directly so the caller always gets a displayable URL.
func (r *Resolver) resolveOne(ctx context.Context, app models.Appearance) ResolvedCover {
	for _, source := range r.sources {
		url, ok, err := source.Resolve(ctx, app)
		if err != nil {
			log.Printf("WARN (CoverResolver): source %s failed for appearance %s: %v", source.Name(), app.ID, err)
			continue
		}
		if ok && url != "" {
			return ResolvedCover{URL: url, Source: source.Name()}
		}
	}
	return ResolvedCover{URL: PlaceholderDataURL(app), Source: SourcePlaceholder}
}

// CoverMap flattens resolution results into the persisted id → URL form.
func CoverMap(resolved map[string]ResolvedCover) models.CoverMap {
	m := make(models.CoverMap, len(resolved))
	for id, cover := range resolved {
		m[id] = cover.URL
	}
	return m
}
