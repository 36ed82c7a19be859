package covers

import (
	"context"
	"encoding/base64"
	"fmt"
	"html"
	"strings"

	"github.com/treygoff24/site/models"
	"github.com/treygoff24/site/webutil"
)

// Background palette for generated placeholders. The color is picked
// by hashing the appearance title, so the same title always yields the
// same image.
var placeholderPalette = []string{
	"#1f2937", // slate
	"#312e81", // indigo
	"#14532d", // green
	"#7c2d12", // rust
	"#581c87", // violet
	"#083344", // cyan
}

// PlaceholderSource synthesizes an inline SVG data URL keyed by the
// appearance title and type. It never fails, guaranteeing that every
// appearance receives a displayable URL.
type PlaceholderSource struct{}

func (PlaceholderSource) Name() string { return SourcePlaceholder }

func (PlaceholderSource) Resolve(_ context.Context, app models.Appearance) (string, bool, error) {
	return PlaceholderDataURL(app), true, nil
}

// PlaceholderDataURL builds a self-contained SVG image for the
// appearance and returns it as a base64 data URL. Deterministic for a
// given title and type.
func PlaceholderDataURL(app models.Appearance) string {
	fill := placeholderPalette[0]
	if hash, err := webutil.GenerateHash(app.Title); err == nil && len(hash) > 0 {
		fill = placeholderPalette[int(hash[0])%len(placeholderPalette)]
	}

	title := app.Title
	if len(title) > 48 {
		title = title[:48]
	}

	svg := fmt.Sprintf(
		`<svg xmlns="http://www.w3.org/2000/svg" width="600" height="600" viewBox="0 0 600 600">`+
			`<rect width="600" height="600" fill="%s"/>`+
			`<text x="300" y="280" font-family="sans-serif" font-size="32" fill="#f9fafb" text-anchor="middle">%s</text>`+
			`<text x="300" y="340" font-family="sans-serif" font-size="22" fill="#9ca3af" text-anchor="middle">%s</text>`+
			`</svg>`,
		fill,
		html.EscapeString(title),
		html.EscapeString(strings.ToUpper(string(app.Type))),
	)

	return "data:image/svg+xml;base64," + base64.StdEncoding.EncodeToString([]byte(svg))
}
