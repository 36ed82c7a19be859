package content

import (
	"fmt"
	"log"
	"net/url"
	"strings"

	"github.com/go-shiori/go-readability"
	"github.com/microcosm-cc/bluemonday"
)

// excerptMaxLen bounds the plain-text excerpt used in feed items and
// listing responses.
const excerptMaxLen = 280

// ProcessedBody holds the results of body processing.
type ProcessedBody struct {
	HTML    string // sanitized body HTML
	Text    string // plain-text version of the body
	Excerpt string // word-bounded prefix of Text
}

// Processor handles HTML sanitization and plain-text extraction for
// rendered essay and note bodies.
type Processor struct {
	htmlPolicy      *bluemonday.Policy
	stripTagsPolicy *bluemonday.Policy
}

func NewProcessor() *Processor {
	return &Processor{
		htmlPolicy:      bluemonday.UGCPolicy(),       // For cleaning rendered body HTML
		stripTagsPolicy: bluemonday.StripTagsPolicy(), // For getting plain text from HTML
	}
}

// Process sanitizes the rendered HTML and derives a plain-text body
// and excerpt. Readability extraction is attempted first; short bodies
// it cannot handle fall back to tag stripping.
func (p *Processor) Process(rawHTML string) (*ProcessedBody, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, fmt.Errorf("body HTML is empty")
	}

	cleaned := p.htmlPolicy.Sanitize(rawHTML)
	if strings.TrimSpace(cleaned) == "" {
		return nil, fmt.Errorf("body HTML is empty after sanitization")
	}

	result := &ProcessedBody{HTML: cleaned}

	// Relative links are not expected in authored content; the base URL
	// only satisfies the extractor's interface.
	base, _ := url.Parse("https://localhost/")
	article, err := readability.FromReader(strings.NewReader(cleaned), base)
	if err == nil && strings.TrimSpace(article.TextContent) != "" {
		result.Text = normalizeWhitespace(article.TextContent)
	} else {
		if err != nil {
			log.Printf("WARN (ContentProcessor): readability extraction failed: %v. Falling back to tag stripping.", err)
		}
		result.Text = normalizeWhitespace(p.stripTagsPolicy.Sanitize(cleaned))
	}

	result.Excerpt = excerptFrom(result.Text, excerptMaxLen)
	return result, nil
}

func normalizeWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// excerptFrom cuts text to at most max bytes at a word boundary,
// appending an ellipsis when truncated.
func excerptFrom(text string, max int) string {
	if len(text) <= max {
		return text
	}
	cut := text[:max]
	if i := strings.LastIndexByte(cut, ' '); i > 0 {
		cut = cut[:i]
	}
	return cut + "…"
}
