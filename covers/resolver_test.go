package covers

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/treygoff24/site/models"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	// Keep-alive connections from the fake iTunes servers park their
	// read/write loops briefly after test cleanup.
	goleak.VerifyTestMain(m,
		goleak.IgnoreTopFunction("net/http.(*persistConn).readLoop"),
		goleak.IgnoreTopFunction("net/http.(*persistConn).writeLoop"),
	)
}

// stubSource lets tests script a source's behavior.
type stubSource struct {
	name string
	fn   func(app models.Appearance) (string, bool, error)
}

func (s stubSource) Name() string { return s.name }

func (s stubSource) Resolve(_ context.Context, app models.Appearance) (string, bool, error) {
	return s.fn(app)
}

func testAppearance(id string, typ models.AppearanceType) models.Appearance {
	return models.Appearance{
		ID:    id,
		Type:  typ,
		Title: "Appearance " + id,
		Date:  time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
		URL:   "https://example.com/" + id,
	}
}

func TestResolveAll(t *testing.T) {
	ctx := context.Background()

	t.Run("one entry per id, every value non-empty", func(t *testing.T) {
		resolver := NewResolver(ManualSource{}, YouTubeSource{}, PlaceholderSource{})

		apps := []models.Appearance{
			testAppearance("a", models.AppearanceTypeTalk),
			testAppearance("b", models.AppearanceTypePodcast),
			testAppearance("c", models.AppearanceTypeInterview),
		}
		apps[0].ShowArtwork = "https://cdn.example.com/a.jpg"

		resolved, _, err := resolver.ResolveAll(ctx, apps)
		require.NoError(t, err)
		require.Len(t, resolved, len(apps))
		for _, app := range apps {
			cover, ok := resolved[app.ID]
			require.True(t, ok, "missing entry for %s", app.ID)
			assert.NotEmpty(t, cover.URL)
			assert.NotEmpty(t, cover.Source)
		}
	})

	t.Run("manual artwork is used verbatim", func(t *testing.T) {
		resolver := NewResolver(DefaultSources(nil)...)

		app := testAppearance("manual", models.AppearanceTypePodcast)
		app.ShowArtwork = "https://cdn.example.com/exact-artwork.png?size=600"

		resolved, stats, err := resolver.ResolveAll(ctx, []models.Appearance{app})
		require.NoError(t, err)
		assert.Equal(t, app.ShowArtwork, resolved["manual"].URL)
		assert.Equal(t, SourceManual, resolved["manual"].Source)
		assert.Equal(t, 1, stats.Manual)
	})

	t.Run("source failure degrades one appearance, not the batch", func(t *testing.T) {
		failing := stubSource{name: "flaky", fn: func(app models.Appearance) (string, bool, error) {
			if app.ID == "bad" {
				return "", false, errors.New("lookup timed out")
			}
			return "https://cdn.example.com/" + app.ID + ".jpg", true, nil
		}}
		resolver := NewResolver(failing, PlaceholderSource{})

		apps := []models.Appearance{
			testAppearance("good", models.AppearanceTypePodcast),
			testAppearance("bad", models.AppearanceTypePodcast),
		}

		resolved, stats, err := resolver.ResolveAll(ctx, apps)
		require.NoError(t, err)
		assert.Equal(t, "https://cdn.example.com/good.jpg", resolved["good"].URL)
		assert.Equal(t, SourcePlaceholder, resolved["bad"].Source)
		assert.True(t, strings.HasPrefix(resolved["bad"].URL, "data:image/svg+xml"))
		assert.Equal(t, 1, stats.Platform)
		assert.Equal(t, 1, stats.Placeholder)
	})

	t.Run("chain without placeholder still never omits an entry", func(t *testing.T) {
		never := stubSource{name: "never", fn: func(models.Appearance) (string, bool, error) {
			return "", false, nil
		}}
		resolver := NewResolver(never)

		resolved, stats, err := resolver.ResolveAll(ctx, []models.Appearance{
			testAppearance("x", models.AppearanceTypeTalk),
		})
		require.NoError(t, err)
		assert.NotEmpty(t, resolved["x"].URL)
		assert.Equal(t, SourcePlaceholder, resolved["x"].Source)
		assert.Equal(t, 1, stats.Placeholder)
	})

	t.Run("duplicate ids are rejected", func(t *testing.T) {
		resolver := NewResolver(PlaceholderSource{})

		_, _, err := resolver.ResolveAll(ctx, []models.Appearance{
			testAppearance("dup", models.AppearanceTypeTalk),
			testAppearance("dup", models.AppearanceTypePodcast),
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "duplicate")
	})

	t.Run("empty id is rejected", func(t *testing.T) {
		resolver := NewResolver(PlaceholderSource{})

		_, _, err := resolver.ResolveAll(ctx, []models.Appearance{{Title: "nameless"}})
		require.Error(t, err)
	})

	t.Run("stats bucket by source", func(t *testing.T) {
		resolver := NewResolver(DefaultSources(nil)...)

		manual := testAppearance("m", models.AppearanceTypeTalk)
		manual.ShowArtwork = "https://cdn.example.com/m.jpg"
		video := testAppearance("v", models.AppearanceTypeYouTube)
		video.URL = "https://www.youtube.com/watch?v=dQw4w9WgXcQ"
		talk := testAppearance("t", models.AppearanceTypeTalk)

		_, stats, err := resolver.ResolveAll(ctx, []models.Appearance{manual, video, talk})
		require.NoError(t, err)
		assert.Equal(t, 1, stats.Manual)
		assert.Equal(t, 1, stats.Platform)
		assert.Equal(t, 1, stats.Placeholder)
	})

	t.Run("resolution is idempotent for fixed inputs", func(t *testing.T) {
		resolver := NewResolver(ManualSource{}, YouTubeSource{}, PlaceholderSource{})

		apps := make([]models.Appearance, 0, 20)
		for i := 0; i < 20; i++ {
			app := testAppearance(fmt.Sprintf("app-%d", i), models.AppearanceTypeTalk)
			if i%3 == 0 {
				app.ShowArtwork = fmt.Sprintf("https://cdn.example.com/%d.jpg", i)
			}
			apps = append(apps, app)
		}

		first, _, err := resolver.ResolveAll(ctx, apps)
		require.NoError(t, err)
		second, _, err := resolver.ResolveAll(ctx, apps)
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})
}

func TestCoverMap(t *testing.T) {
	resolved := map[string]ResolvedCover{
		"a": {URL: "https://cdn.example.com/a.jpg", Source: SourceManual},
		"b": {URL: "data:image/svg+xml;base64,abc", Source: SourcePlaceholder},
	}

	m := CoverMap(resolved)
	require.Len(t, m, 2)
	assert.Equal(t, "https://cdn.example.com/a.jpg", m["a"])
	assert.Equal(t, "data:image/svg+xml;base64,abc", m["b"])
}
