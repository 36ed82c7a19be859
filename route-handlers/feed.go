package routehandlers

import (
	"net/http"
	"time"

	"github.com/treygoff24/site/content"
	"github.com/treygoff24/site/feedgen"
	"github.com/treygoff24/site/webutil"
)

// Holds dependencies for the RSS feed handler.
type FeedHandler struct {
	Site    feedgen.SiteInfo
	Content *content.Store
	now     func() time.Time
}

func NewFeedHandler(site feedgen.SiteInfo, store *content.Store) *FeedHandler {
	return &FeedHandler{Site: site, Content: store, now: time.Now}
}

// HandleGetFeed serves the RSS 2.0 document, regenerated fully on each
// request from the in-memory note collection.
func (h *FeedHandler) HandleGetFeed(w http.ResponseWriter, r *http.Request) error {
	body, err := feedgen.RenderRSS(h.Site, h.Content.Notes(), h.now().UTC())
	if err != nil {
		return webutil.ErrInternalServerWrap("failed to render feed", err)
	}

	webutil.RespondWithXML(w, http.StatusOK, []byte(body))
	return nil
}
