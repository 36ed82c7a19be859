package library

import (
	"net/url"
	"strings"
)

// IsValidGoodreadsURL reports whether candidate is a safe outbound
// Goodreads link. It guards against link spoofing when rendering book
// records: the scheme must be exactly http or https and the host must
// be exactly goodreads.com or www.goodreads.com — lookalike domains
// such as goodreads-books.com are rejected. Pure predicate; never
// panics.
func IsValidGoodreadsURL(candidate string) bool {
	if candidate == "" {
		return false
	}

	u, err := url.Parse(candidate)
	if err != nil {
		return false
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return false
	}

	host := strings.ToLower(u.Hostname())
	return host == "goodreads.com" || host == "www.goodreads.com"
}
