package routehandlers

import (
	"html/template"
	"net/http"

	"github.com/treygoff24/site/webutil"
)

// worldPage is the shell for the experimental interactive world route.
// The 3D renderer itself loads client-side; this handler only serves
// the page scaffold and asset references.
const worldPage = `<!doctype html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Title}} — World</title>
</head>
<body>
<canvas id="world"></canvas>
<script type="module" src="/static/world/main.js"></script>
<noscript>The interactive world needs JavaScript and WebGL.</noscript>
</body>
</html>
`

var worldTemplate = template.Must(template.New("world").Parse(worldPage))

// Holds dependencies for the interactive world route.
type WorldHandler struct {
	SiteTitle string
}

func NewWorldHandler(siteTitle string) *WorldHandler {
	return &WorldHandler{SiteTitle: siteTitle}
}

func (h *WorldHandler) HandleGetWorld(w http.ResponseWriter, r *http.Request) error {
	w.Header().Set(webutil.HeaderContentType, webutil.ContentTypeHTMLUTF8)
	w.WriteHeader(http.StatusOK)
	if err := worldTemplate.Execute(w, struct{ Title string }{Title: h.SiteTitle}); err != nil {
		// Headers are already out; nothing useful left to send.
		return nil
	}
	return nil
}
