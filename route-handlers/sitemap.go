package routehandlers

import (
	"net/http"
	"time"

	"github.com/treygoff24/site/content"
	"github.com/treygoff24/site/feedgen"
	"github.com/treygoff24/site/webutil"
)

// Holds dependencies for the sitemap handler.
type SitemapHandler struct {
	Site       feedgen.SiteInfo
	Content    *content.Store
	Production bool
	now        func() time.Time
}

func NewSitemapHandler(site feedgen.SiteInfo, store *content.Store, production bool) *SitemapHandler {
	return &SitemapHandler{Site: site, Content: store, Production: production, now: time.Now}
}

func (h *SitemapHandler) HandleGetSitemap(w http.ResponseWriter, r *http.Request) error {
	entries := feedgen.BuildSitemap(
		h.Site,
		h.Content.Essays(true), // generator applies the draft filter itself
		h.Content.Notes(),
		h.Content.Topics(),
		h.Production,
		h.now().UTC(),
	)

	body, err := feedgen.RenderSitemapXML(entries)
	if err != nil {
		return webutil.ErrInternalServerWrap("failed to render sitemap", err)
	}

	webutil.RespondWithXML(w, http.StatusOK, body)
	return nil
}
