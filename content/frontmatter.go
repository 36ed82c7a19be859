package content

import (
	"bytes"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

const frontmatterDelimiter = "---"

// frontmatter is the YAML header of an essay or note Markdown file.
type frontmatter struct {
	Title  string    `yaml:"title"`
	Slug   string    `yaml:"slug"`
	Date   time.Time `yaml:"date"`
	Status string    `yaml:"status"`
	Topics []string  `yaml:"topics"`
}

// splitFrontmatter separates the YAML header from the Markdown body.
// The file must start with a "---" line and contain a closing "---"
// line; anything else is a malformed content file.
func splitFrontmatter(data []byte) (frontmatter, []byte, error) {
	var fm frontmatter

	delim := []byte(frontmatterDelimiter + "\n")
	if !bytes.HasPrefix(data, delim) {
		return fm, nil, fmt.Errorf("missing frontmatter opening delimiter")
	}
	rest := data[len(delim):]

	end := bytes.Index(rest, []byte("\n"+frontmatterDelimiter))
	if end < 0 {
		return fm, nil, fmt.Errorf("missing frontmatter closing delimiter")
	}

	header := rest[:end]
	body := rest[end+len(frontmatterDelimiter)+1:]
	if i := bytes.IndexByte(body, '\n'); i >= 0 {
		body = body[i+1:]
	} else {
		body = nil
	}

	if err := yaml.Unmarshal(header, &fm); err != nil {
		return fm, nil, fmt.Errorf("failed to parse frontmatter: %w", err)
	}
	return fm, body, nil
}
