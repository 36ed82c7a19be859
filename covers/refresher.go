package covers

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/treygoff24/site/models"
	"github.com/treygoff24/site/webutil"
)

// MapWriter persists a regenerated cover map. The write must replace
// the previous file atomically.
type MapWriter interface {
	Write(m models.CoverMap) error
}

// AppearanceLister supplies the appearance collection to resolve.
type AppearanceLister interface {
	Appearances() []models.Appearance
}

// Refresher re-resolves all covers on demand and replaces both the
// persisted map and the render-time cache. Used by the admin refresh
// endpoint; the covergen CLI performs the same generation offline.
type Refresher struct {
	resolver *Resolver
	lister   AppearanceLister
	writer   MapWriter
	cache    *Cache
}

func NewRefresher(resolver *Resolver, lister AppearanceLister, writer MapWriter, cache *Cache) *Refresher {
	return &Refresher{
		resolver: resolver,
		lister:   lister,
		writer:   writer,
		cache:    cache,
	}
}

// HandleRefresh is an HTTP handler that triggers a full cover
// regeneration. Used by a cron hook or manual curl requests.
func (rf *Refresher) HandleRefresh(w http.ResponseWriter, r *http.Request) {
	log.Println("INFO (CoverRefresher): refresh triggered via HTTP")

	stats, entries, err := rf.Refresh(r.Context())
	if err != nil {
		log.Printf("ERROR (CoverRefresher): refresh failed: %v", err)
		webutil.RespondWithError(w, http.StatusInternalServerError, "cover refresh failed")
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, map[string]any{
		"entries": entries,
		"stats":   stats,
	})
}

// Refresh runs a single regeneration cycle: resolves every appearance,
// persists the new map, and swaps it into the cache. Returns the
// per-source stats and the number of entries written.
func (rf *Refresher) Refresh(ctx context.Context) (Stats, int, error) {
	appearances := rf.lister.Appearances()

	resolved, stats, err := rf.resolver.ResolveAll(ctx, appearances)
	if err != nil {
		return Stats{}, 0, fmt.Errorf("failed to resolve covers: %w", err)
	}

	m := CoverMap(resolved)
	if err := rf.writer.Write(m); err != nil {
		return Stats{}, 0, fmt.Errorf("failed to persist cover map: %w", err)
	}
	rf.cache.Replace(m)

	log.Printf("INFO (CoverRefresher): regenerated %d covers (%s)", len(m), stats)
	return stats, len(m), nil
}
