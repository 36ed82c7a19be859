package feedgen

import (
	"fmt"
	"sort"
	"time"

	"github.com/gorilla/feeds"
	"github.com/treygoff24/site/models"
)

// BuildFeed assembles the RSS feed from the note collection: channel
// metadata from site, one item per note, sorted by date descending.
// Stateless; regenerated fully on each invocation.
func BuildFeed(site SiteInfo, notes []models.Note, now time.Time) *feeds.Feed {
	sorted := make([]models.Note, len(notes))
	copy(sorted, notes)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.After(sorted[j].Date)
	})

	feed := &feeds.Feed{
		Title:       site.Title,
		Link:        &feeds.Link{Href: site.Origin + "/notes"},
		Description: site.Description,
		Author:      &feeds.Author{Name: site.AuthorName, Email: site.AuthorEmail},
		Copyright:   site.Copyright,
		Created:     now,
	}
	if site.FaviconURL != "" {
		feed.Image = &feeds.Image{
			Url:   site.FaviconURL,
			Title: site.Title,
			Link:  site.Origin,
		}
	}

	for _, note := range sorted {
		link := site.Origin + "/notes#" + note.Slug
		feed.Items = append(feed.Items, &feeds.Item{
			Title:       note.Title,
			Link:        &feeds.Link{Href: link},
			Id:          link,
			Description: note.BodyHTML, // sanitized at load time
			Created:     note.Date,
		})
	}
	return feed
}

// RenderRSS builds the feed and renders it as an RSS 2.0 document.
func RenderRSS(site SiteInfo, notes []models.Note, now time.Time) (string, error) {
	feed := BuildFeed(site, notes, now)

	rss := (&feeds.Rss{Feed: feed}).RssFeed()
	rss.Language = site.Language

	xml, err := feeds.ToXML(rss)
	if err != nil {
		return "", fmt.Errorf("failed to render RSS feed: %w", err)
	}
	return xml, nil
}
