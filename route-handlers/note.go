package routehandlers

import (
	"net/http"

	"github.com/treygoff24/site/content"
	"github.com/treygoff24/site/webutil"
)

// Holds dependencies for note route handlers.
type NoteHandler struct {
	Content *content.Store
}

func NewNoteHandler(store *content.Store) *NoteHandler {
	return &NoteHandler{Content: store}
}

func (h *NoteHandler) HandleGetNotes(w http.ResponseWriter, r *http.Request) error {
	webutil.RespondWithJSON(w, http.StatusOK, h.Content.Notes())
	return nil
}
