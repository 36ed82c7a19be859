package feedgen

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/treygoff24/site/models"
)

func sitemapFixtures() ([]models.Essay, []models.Note, []string) {
	essays := []models.Essay{
		{
			Slug:   "published-essay",
			Title:  "Published Essay",
			Date:   time.Date(2024, 4, 11, 0, 0, 0, 0, time.UTC),
			Status: models.ContentStatusPublished,
		},
		{
			Slug:   "draft-essay",
			Title:  "Draft Essay",
			Date:   time.Date(2024, 8, 2, 0, 0, 0, 0, time.UTC),
			Status: models.ContentStatusDraft,
		},
	}
	notes := []models.Note{
		{Slug: "a-note", Title: "A Note", Date: time.Date(2024, 7, 19, 0, 0, 0, 0, time.UTC)},
	}
	topics := []string{"governance", "progress"}
	return essays, notes, topics
}

func TestBuildSitemap(t *testing.T) {
	now := time.Date(2024, 8, 20, 0, 0, 0, 0, time.UTC)
	essays, notes, topics := sitemapFixtures()

	t.Run("every url starts with the site origin", func(t *testing.T) {
		entries := BuildSitemap(testSite(), essays, notes, topics, false, now)
		require.NotEmpty(t, entries)
		for _, entry := range entries {
			assert.True(t, strings.HasPrefix(entry.URL, "https://example.com/"),
				"entry %q not under origin", entry.URL)
			assert.False(t, entry.LastModified.IsZero())
			assert.Greater(t, entry.Priority, 0.0)
		}
	})

	t.Run("drafts are excluded in production", func(t *testing.T) {
		entries := BuildSitemap(testSite(), essays, notes, topics, true, now)
		urls := entryURLs(entries)
		assert.Contains(t, urls, "https://example.com/essays/published-essay")
		assert.NotContains(t, urls, "https://example.com/essays/draft-essay")
	})

	t.Run("drafts are included outside production", func(t *testing.T) {
		entries := BuildSitemap(testSite(), essays, notes, topics, false, now)
		urls := entryURLs(entries)
		assert.Contains(t, urls, "https://example.com/essays/draft-essay")
	})

	t.Run("covers static, note anchor, and topic routes", func(t *testing.T) {
		entries := BuildSitemap(testSite(), essays, notes, topics, true, now)
		urls := entryURLs(entries)
		assert.Contains(t, urls, "https://example.com/")
		assert.Contains(t, urls, "https://example.com/world")
		assert.Contains(t, urls, "https://example.com/notes#a-note")
		assert.Contains(t, urls, "https://example.com/topics/governance")
	})

	t.Run("essay pages carry their publish date", func(t *testing.T) {
		entries := BuildSitemap(testSite(), essays, notes, topics, true, now)
		for _, entry := range entries {
			if entry.URL == "https://example.com/essays/published-essay" {
				assert.Equal(t, essays[0].Date, entry.LastModified)
				return
			}
		}
		t.Fatal("published essay entry not found")
	})
}

func entryURLs(entries []SitemapEntry) []string {
	urls := make([]string, 0, len(entries))
	for _, e := range entries {
		urls = append(urls, e.URL)
	}
	return urls
}

func TestRenderSitemapXML(t *testing.T) {
	now := time.Date(2024, 8, 20, 0, 0, 0, 0, time.UTC)
	essays, notes, topics := sitemapFixtures()
	entries := BuildSitemap(testSite(), essays, notes, topics, true, now)

	body, err := RenderSitemapXML(entries)
	require.NoError(t, err)

	out := string(body)
	assert.Contains(t, out, `<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">`)
	assert.Contains(t, out, "<loc>https://example.com/</loc>")
	assert.Contains(t, out, "<lastmod>2024-08-20</lastmod>")
	assert.Contains(t, out, "<changefreq>weekly</changefreq>")
	assert.Contains(t, out, "<priority>1.0</priority>")
}
