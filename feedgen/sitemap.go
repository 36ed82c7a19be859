package feedgen

import (
	"encoding/xml"
	"fmt"
	"strconv"
	"time"

	"github.com/treygoff24/site/models"
)

// ChangeFreq is the sitemap-protocol change frequency hint.
type ChangeFreq string

const (
	ChangeFreqDaily   ChangeFreq = "daily"
	ChangeFreqWeekly  ChangeFreq = "weekly"
	ChangeFreqMonthly ChangeFreq = "monthly"
)

// SitemapEntry is one sitemap record.
type SitemapEntry struct {
	URL          string
	LastModified time.Time
	ChangeFreq   ChangeFreq
	Priority     float64
}

// staticRoutes are the fixed pages, with their priorities.
var staticRoutes = []struct {
	path     string
	freq     ChangeFreq
	priority float64
}{
	{"/", ChangeFreqWeekly, 1.0},
	{"/essays", ChangeFreqWeekly, 0.9},
	{"/notes", ChangeFreqWeekly, 0.8},
	{"/library", ChangeFreqMonthly, 0.6},
	{"/appearances", ChangeFreqMonthly, 0.6},
	{"/world", ChangeFreqMonthly, 0.5},
}

// BuildSitemap enumerates every route the site serves: static pages,
// essay pages (drafts excluded when production), note anchors, and
// topic pages. Every URL is prefixed with the configured site origin.
func BuildSitemap(site SiteInfo, essays []models.Essay, notes []models.Note, topics []string, production bool, now time.Time) []SitemapEntry {
	entries := make([]SitemapEntry, 0, len(staticRoutes)+len(essays)+len(notes)+len(topics))

	for _, route := range staticRoutes {
		entries = append(entries, SitemapEntry{
			URL:          site.Origin + route.path,
			LastModified: now,
			ChangeFreq:   route.freq,
			Priority:     route.priority,
		})
	}

	for _, essay := range essays {
		if production && essay.IsDraft() {
			continue
		}
		entries = append(entries, SitemapEntry{
			URL:          site.Origin + "/essays/" + essay.Slug,
			LastModified: essay.Date,
			ChangeFreq:   ChangeFreqMonthly,
			Priority:     0.8,
		})
	}

	for _, note := range notes {
		entries = append(entries, SitemapEntry{
			URL:          site.Origin + "/notes#" + note.Slug,
			LastModified: note.Date,
			ChangeFreq:   ChangeFreqMonthly,
			Priority:     0.6,
		})
	}

	for _, topic := range topics {
		entries = append(entries, SitemapEntry{
			URL:          site.Origin + "/topics/" + topic,
			LastModified: now,
			ChangeFreq:   ChangeFreqWeekly,
			Priority:     0.5,
		})
	}

	return entries
}

const sitemapXMLNS = "http://www.sitemaps.org/schemas/sitemap/0.9"

type sitemapURLXML struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod"`
	ChangeFreq string `xml:"changefreq"`
	Priority   string `xml:"priority"`
}

type sitemapURLSetXML struct {
	XMLName xml.Name        `xml:"urlset"`
	XMLNS   string          `xml:"xmlns,attr"`
	URLs    []sitemapURLXML `xml:"url"`
}

// RenderSitemapXML serializes entries as a sitemap-protocol document.
func RenderSitemapXML(entries []SitemapEntry) ([]byte, error) {
	set := sitemapURLSetXML{XMLNS: sitemapXMLNS}
	for _, entry := range entries {
		set.URLs = append(set.URLs, sitemapURLXML{
			Loc:        entry.URL,
			LastMod:    entry.LastModified.UTC().Format("2006-01-02"),
			ChangeFreq: string(entry.ChangeFreq),
			Priority:   strconv.FormatFloat(entry.Priority, 'f', 1, 64),
		})
	}

	body, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal sitemap: %w", err)
	}
	return append([]byte(xml.Header), body...), nil
}
