package routehandlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/treygoff24/site/content"
	"github.com/treygoff24/site/webutil"
)

// Holds dependencies for essay route handlers.
type EssayHandler struct {
	Content    *content.Store
	Production bool
}

// Creates a new EssayHandler. Drafts are hidden when production is true.
func NewEssayHandler(store *content.Store, production bool) *EssayHandler {
	return &EssayHandler{Content: store, Production: production}
}

func (h *EssayHandler) HandleGetEssays(w http.ResponseWriter, r *http.Request) error {
	essays := h.Content.Essays(!h.Production)
	webutil.RespondWithJSON(w, http.StatusOK, essays)
	return nil
}

func (h *EssayHandler) HandleGetEssay(w http.ResponseWriter, r *http.Request) error {
	slug := chi.URLParam(r, "slug")
	if slug == "" {
		return webutil.ErrBadRequest("Missing essay slug")
	}

	essay, ok := h.Content.EssayBySlug(slug, !h.Production)
	if !ok {
		return webutil.ErrNotFound("Essay not found")
	}

	webutil.RespondWithJSON(w, http.StatusOK, essay)
	return nil
}
