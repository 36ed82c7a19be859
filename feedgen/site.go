package feedgen

// SiteInfo carries the site-wide metadata the generators need. It is
// passed in explicitly rather than read from ambient process state so
// the generators stay testable in isolation.
type SiteInfo struct {
	Origin      string // scheme + host, no trailing slash
	Title       string
	Description string
	AuthorName  string
	AuthorEmail string
	Language    string
	Copyright   string
	FaviconURL  string
}
