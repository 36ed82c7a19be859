package models

import "time"

// ContentStatus defines the publication state of an essay.
type ContentStatus string

const (
	ContentStatusDraft     ContentStatus = "draft"
	ContentStatusPublished ContentStatus = "published"
)

// Essay is a long-form piece authored as a Markdown file with YAML
// frontmatter. BodyHTML is the rendered, sanitized body; Excerpt is a
// plain-text summary derived from it.
type Essay struct {
	Slug     string        `json:"slug"`
	Title    string        `json:"title"`
	Date     time.Time     `json:"date"`
	Status   ContentStatus `json:"status"`
	Topics   []string      `json:"topics,omitempty"`
	BodyHTML string        `json:"body_html,omitempty"`
	Excerpt  string        `json:"excerpt,omitempty"`
}

// IsDraft reports whether the essay should be hidden in production.
func (e Essay) IsDraft() bool {
	return e.Status == ContentStatusDraft
}
