package routehandlers

import (
	"net/http"

	"github.com/treygoff24/site/content"
	"github.com/treygoff24/site/library"
	"github.com/treygoff24/site/models"
	"github.com/treygoff24/site/webutil"
)

// Holds dependencies for the reading library handler.
type LibraryHandler struct {
	Content *content.Store
}

func NewLibraryHandler(store *content.Store) *LibraryHandler {
	return &LibraryHandler{Content: store}
}

type libraryResponse struct {
	Books          []models.Book          `json:"books"`
	StructuredData library.ItemListSchema `json:"structured_data"`
}

// HandleGetLibrary returns the book collection plus its schema.org
// markup. Goodreads links that fail validation are stripped from the
// book records so display code never renders a spoofed outbound link.
func (h *LibraryHandler) HandleGetLibrary(w http.ResponseWriter, r *http.Request) error {
	books := h.Content.Books()

	sanitized := make([]models.Book, len(books))
	copy(sanitized, books)
	for i := range sanitized {
		if !library.IsValidGoodreadsURL(sanitized[i].GoodreadsURL) {
			sanitized[i].GoodreadsURL = ""
		}
	}

	webutil.RespondWithJSON(w, http.StatusOK, libraryResponse{
		Books:          sanitized,
		StructuredData: library.LibraryStructuredData(books),
	})
	return nil
}
