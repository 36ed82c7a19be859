package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	rh "github.com/treygoff24/site/route-handlers"
	"github.com/treygoff24/site/webutil"
)

const (
	apiBasePath         = "/api"
	essaysBasePath      = "/essays"
	notesBasePath       = "/notes"
	libraryBasePath     = "/library"
	appearancesBasePath = "/appearances"

	feedPath    = "/feed.xml"
	sitemapPath = "/sitemap.xml"
	worldPath   = "/world"
)

const (
	paramSlug = "slug"
	paramID   = "id"
)

func SetupRoutes(
	essayHandler *rh.EssayHandler,
	noteHandler *rh.NoteHandler,
	libraryHandler *rh.LibraryHandler,
	appearanceHandler *rh.AppearanceHandler,
	feedHandler *rh.FeedHandler,
	sitemapHandler *rh.SitemapHandler,
	worldHandler *rh.WorldHandler,
) http.Handler {
	r := chi.NewRouter()

	// Middleware stack
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)                    // Log every request
	r.Use(middleware.Recoverer)                 // Recover from panics
	r.Use(middleware.Timeout(60 * time.Second)) // Set a timeout context for requests

	// Content API
	r.Route(apiBasePath, func(r chi.Router) {
		configureEssayRoutes(r, essayHandler)
		configureNoteRoutes(r, noteHandler)
		configureLibraryRoutes(r, libraryHandler)
		configureAppearanceRoutes(r, appearanceHandler)
	})

	// Syndication endpoints
	r.Get(feedPath, webutil.MakeHandler(feedHandler.HandleGetFeed))
	r.Get(sitemapPath, webutil.MakeHandler(sitemapHandler.HandleGetSitemap))

	// Experimental interactive world
	r.Get(worldPath, webutil.MakeHandler(worldHandler.HandleGetWorld))

	// Health check endpoint
	r.Get("/healthz", handleHealthCheck)

	return r
}

// Helper for constructing paths with a parameter
func pathWithParam(basePath string, paramName string) string {
	if basePath == "" {
		return "/{" + paramName + "}"
	}
	return basePath + "/{" + paramName + "}"
}

// --- Essay Routes ---
func configureEssayRoutes(r chi.Router, handler *rh.EssayHandler) {
	specificEssayPath := pathWithParam("", paramSlug) // e.g., "/{slug}"

	r.Route(essaysBasePath, func(r chi.Router) {
		r.Get("/", webutil.MakeHandler(handler.HandleGetEssays))
		r.Get(specificEssayPath, webutil.MakeHandler(handler.HandleGetEssay))
	})
}

// --- Note Routes ---
func configureNoteRoutes(r chi.Router, handler *rh.NoteHandler) {
	r.Get(notesBasePath, webutil.MakeHandler(handler.HandleGetNotes))
}

// --- Library Routes ---
func configureLibraryRoutes(r chi.Router, handler *rh.LibraryHandler) {
	r.Get(libraryBasePath, webutil.MakeHandler(handler.HandleGetLibrary))
}

// --- Appearance Routes ---
func configureAppearanceRoutes(r chi.Router, handler *rh.AppearanceHandler) {
	specificAppearancePath := pathWithParam("", paramID) // e.g., "/{id}"

	r.Route(appearancesBasePath, func(r chi.Router) {
		r.Get("/", webutil.MakeHandler(handler.HandleGetAppearances)) // Query param for featured
		r.Get(specificAppearancePath, webutil.MakeHandler(handler.HandleGetAppearance))
	})
}

// --- Utility Functions ---

// handleHealthCheck responds to a health check request.
func handleHealthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set(webutil.HeaderContentType, webutil.ContentTypeTextPlainUTF8)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}
