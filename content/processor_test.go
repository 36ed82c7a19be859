package content

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProcessor(t *testing.T) {
	processor := NewProcessor()

	t.Run("sanitizes script tags", func(t *testing.T) {
		body, err := processor.Process(`<p>Fine paragraph.</p><script>alert(1)</script>`)
		require.NoError(t, err)
		assert.Contains(t, body.HTML, "Fine paragraph.")
		assert.NotContains(t, body.HTML, "<script>")
		assert.Contains(t, body.Text, "Fine paragraph.")
	})

	t.Run("plain text strips markup", func(t *testing.T) {
		body, err := processor.Process(`<p>One <em>two</em> three.</p>`)
		require.NoError(t, err)
		assert.NotContains(t, body.Text, "<")
		assert.Contains(t, body.Text, "two")
	})

	t.Run("empty input is an error", func(t *testing.T) {
		_, err := processor.Process("  \n ")
		require.Error(t, err)
	})

	t.Run("excerpt is bounded and word-terminated", func(t *testing.T) {
		long := "<p>" + strings.Repeat("governance legibility progress ", 40) + "</p>"
		body, err := processor.Process(long)
		require.NoError(t, err)
		assert.LessOrEqual(t, len(body.Excerpt), excerptMaxLen+len("…"))
		assert.True(t, strings.HasSuffix(body.Excerpt, "…"))
		assert.False(t, strings.Contains(strings.TrimSuffix(body.Excerpt, "…"), "  "))
	})

	t.Run("short bodies keep the full text as excerpt", func(t *testing.T) {
		body, err := processor.Process("<p>Short and sweet.</p>")
		require.NoError(t, err)
		assert.Equal(t, body.Text, body.Excerpt)
	})
}

func TestExcerptFrom(t *testing.T) {
	t.Run("cuts at a word boundary", func(t *testing.T) {
		got := excerptFrom("alpha beta gamma delta", 12)
		assert.Equal(t, "alpha beta…", got)
	})

	t.Run("returns short input unchanged", func(t *testing.T) {
		assert.Equal(t, "alpha", excerptFrom("alpha", 12))
	})
}
