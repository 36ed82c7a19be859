package routehandlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/treygoff24/site/content"
	"github.com/treygoff24/site/covers"
	"github.com/treygoff24/site/models"
	"github.com/treygoff24/site/webutil"
)

// Holds dependencies for appearance route handlers.
type AppearanceHandler struct {
	Content      *content.Store
	Covers       *covers.Cache
	DefaultCover string
}

func NewAppearanceHandler(store *content.Store, coverCache *covers.Cache, defaultCover string) *AppearanceHandler {
	return &AppearanceHandler{
		Content:      store,
		Covers:       coverCache,
		DefaultCover: defaultCover,
	}
}

type appearanceResponse struct {
	models.Appearance
	Cover string `json:"cover"`
}

func (h *AppearanceHandler) HandleGetAppearances(w http.ResponseWriter, r *http.Request) error {
	var appearances []models.Appearance
	if r.URL.Query().Get("featured") == "true" {
		appearances = h.Content.FeaturedAppearances()
	} else {
		appearances = h.Content.Appearances()
	}

	response := make([]appearanceResponse, 0, len(appearances))
	for _, app := range appearances {
		response = append(response, appearanceResponse{
			Appearance: app,
			Cover:      h.coverFor(app),
		})
	}
	webutil.RespondWithJSON(w, http.StatusOK, response)
	return nil
}

func (h *AppearanceHandler) HandleGetAppearance(w http.ResponseWriter, r *http.Request) error {
	id := chi.URLParam(r, "id")
	if id == "" {
		return webutil.ErrBadRequest("Missing appearance ID")
	}

	app, ok := h.Content.AppearanceByID(id)
	if !ok {
		return webutil.ErrNotFound("Appearance not found")
	}

	webutil.RespondWithJSON(w, http.StatusOK, appearanceResponse{
		Appearance: app,
		Cover:      h.coverFor(app),
	})
	return nil
}

// coverFor applies the render-time fallback chain: generated cover map
// entry, then the appearance's own artwork, then the generic default.
// Display code never receives an absent image reference.
func (h *AppearanceHandler) coverFor(app models.Appearance) string {
	if url, ok := h.Covers.Get(app.ID); ok && url != "" {
		return url
	}
	if app.ShowArtwork != "" {
		return app.ShowArtwork
	}
	return h.DefaultCover
}
