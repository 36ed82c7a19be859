package covers

import (
	"context"
	"net/url"
	"regexp"
	"strings"

	"github.com/treygoff24/site/models"
)

// YouTube video IDs are 11 characters from this alphabet.
var youtubeVideoIDPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{11}$`)

// YouTubeSource derives a thumbnail URL from the video ID embedded in
// the appearance URL. No network call is made; an unparseable URL
// falls through to the next source.
type YouTubeSource struct{}

func (YouTubeSource) Name() string { return SourceYouTube }

func (YouTubeSource) Resolve(_ context.Context, app models.Appearance) (string, bool, error) {
	if app.Type != models.AppearanceTypeYouTube {
		return "", false, nil
	}
	id, ok := ParseYouTubeVideoID(app.URL)
	if !ok {
		return "", false, nil
	}
	return "https://i.ytimg.com/vi/" + id + "/hqdefault.jpg", true, nil
}

// ParseYouTubeVideoID extracts the video ID from the common YouTube
// URL shapes: youtube.com/watch?v=<id>, youtu.be/<id>,
// youtube.com/embed/<id>, youtube.com/shorts/<id>, and
// youtube.com/live/<id>. Returns false for anything else.
func ParseYouTubeVideoID(raw string) (string, bool) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", false
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", false
	}

	host := strings.ToLower(u.Hostname())
	host = strings.TrimPrefix(host, "www.")
	host = strings.TrimPrefix(host, "m.")

	var candidate string
	switch host {
	case "youtu.be":
		candidate = firstPathSegment(u.Path)
	case "youtube.com", "youtube-nocookie.com":
		if v := u.Query().Get("v"); v != "" {
			candidate = v
			break
		}
		for _, prefix := range []string{"/embed/", "/shorts/", "/live/"} {
			if strings.HasPrefix(u.Path, prefix) {
				candidate = firstPathSegment(strings.TrimPrefix(u.Path, prefix))
				break
			}
		}
	default:
		return "", false
	}

	if !youtubeVideoIDPattern.MatchString(candidate) {
		return "", false
	}
	return candidate, true
}

func firstPathSegment(p string) string {
	p = strings.TrimPrefix(p, "/")
	if i := strings.IndexByte(p, '/'); i >= 0 {
		p = p[:i]
	}
	return p
}
