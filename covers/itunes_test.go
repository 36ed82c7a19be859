package covers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/treygoff24/site/models"
)

func podcastAppearance(title string) models.Appearance {
	return models.Appearance{
		ID:    "ep-1",
		Type:  models.AppearanceTypePodcast,
		Title: title,
		URL:   "https://podcasts.example.com/ep-1",
	}
}

func newFakeITunes(t *testing.T, handler http.HandlerFunc) *ITunesSource {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewITunesSource(server.Client(), server.URL)
}

func TestITunesSource(t *testing.T) {
	ctx := context.Background()

	t.Run("returns artwork from first matching result", func(t *testing.T) {
		source := newFakeITunes(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "Charter Cities Podcast", r.URL.Query().Get("term"))
			assert.Equal(t, "podcast", r.URL.Query().Get("media"))
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{
				"resultCount": 2,
				"results": [
					{"artworkUrl600": "https://is1.example.com/art600.jpg", "artworkUrl100": "https://is1.example.com/art100.jpg"},
					{"artworkUrl600": "https://is2.example.com/other.jpg"}
				]
			}`))
		})

		url, ok, err := source.Resolve(ctx, podcastAppearance("Charter Cities Podcast"))
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, "https://is1.example.com/art600.jpg", url)
	})

	t.Run("falls back to artworkUrl100", func(t *testing.T) {
		source := newFakeITunes(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"resultCount": 1, "results": [{"artworkUrl100": "https://is1.example.com/art100.jpg"}]}`))
		})

		url, ok, err := source.Resolve(ctx, podcastAppearance("Some Show"))
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, "https://is1.example.com/art100.jpg", url)
	})

	t.Run("no match falls through without error", func(t *testing.T) {
		source := newFakeITunes(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"resultCount": 0, "results": []}`))
		})

		_, ok, err := source.Resolve(ctx, podcastAppearance("Unknown Show"))
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("malformed response is an error", func(t *testing.T) {
		source := newFakeITunes(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"resultCount": `))
		})

		_, ok, err := source.Resolve(ctx, podcastAppearance("Some Show"))
		require.Error(t, err)
		assert.False(t, ok)
	})

	t.Run("server error is an error", func(t *testing.T) {
		source := newFakeITunes(t, func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "upstream broke", http.StatusInternalServerError)
		})

		_, ok, err := source.Resolve(ctx, podcastAppearance("Some Show"))
		require.Error(t, err)
		assert.False(t, ok)
	})

	t.Run("ignores non-podcast appearances without a request", func(t *testing.T) {
		source := newFakeITunes(t, func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("unexpected request for non-podcast appearance")
		})

		app := podcastAppearance("A Talk")
		app.Type = models.AppearanceTypeTalk

		_, ok, err := source.Resolve(ctx, app)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("canceled context is an error", func(t *testing.T) {
		source := newFakeITunes(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"resultCount": 0, "results": []}`))
		})

		canceled, cancel := context.WithCancel(ctx)
		cancel()

		_, ok, err := source.Resolve(canceled, podcastAppearance("Some Show"))
		require.Error(t, err)
		assert.False(t, ok)
	})
}
