package models

import "time"

// Note is a short-form entry. Notes render on a single page and are
// addressed by anchor (/notes#<slug>) rather than by their own route.
type Note struct {
	Slug     string    `json:"slug"`
	Title    string    `json:"title"`
	Date     time.Time `json:"date"`
	Topics   []string  `json:"topics,omitempty"`
	BodyHTML string    `json:"body_html,omitempty"`
	Excerpt  string    `json:"excerpt,omitempty"`
}
