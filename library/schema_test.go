package library

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/treygoff24/site/models"
)

func TestBookStructuredData(t *testing.T) {
	t.Run("valid goodreads link is carried as sameAs", func(t *testing.T) {
		book := models.Book{
			ID:           "seeing-like-a-state",
			Title:        "Seeing Like a State",
			Author:       "James C. Scott",
			ISBN13:       "9780300078152",
			Status:       models.ReadingStatusRead,
			GoodreadsURL: "https://www.goodreads.com/book/show/768991",
		}

		schema := BookStructuredData(book)
		assert.Equal(t, "Book", schema.Type)
		assert.Equal(t, book.Title, schema.Name)
		assert.Equal(t, "Person", schema.Author.Type)
		assert.Equal(t, book.Author, schema.Author.Name)
		assert.Equal(t, book.ISBN13, schema.ISBN)
		assert.Equal(t, book.GoodreadsURL, schema.SameAs)
	})

	t.Run("spoofed goodreads link is dropped", func(t *testing.T) {
		book := models.Book{
			Title:        "Some Book",
			Author:       "Someone",
			GoodreadsURL: "https://goodreads-books.com/book/1",
		}

		schema := BookStructuredData(book)
		assert.Empty(t, schema.SameAs)
	})
}

func TestLibraryStructuredData(t *testing.T) {
	books := []models.Book{
		{Title: "First", Author: "A"},
		{Title: "Second", Author: "B", ISBN13: "9780000000000"},
	}

	list := LibraryStructuredData(books)
	assert.Equal(t, "https://schema.org", list.Context)
	assert.Equal(t, "ItemList", list.Type)
	require.Len(t, list.Elements, 2)
	assert.Equal(t, 1, list.Elements[0].Position)
	assert.Equal(t, 2, list.Elements[1].Position)
	assert.Equal(t, "First", list.Elements[0].Item.Name)

	// The serialized form matters to consumers: @-prefixed keys.
	data, err := json.Marshal(list)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"@context":"https://schema.org"`)
	assert.Contains(t, string(data), `"@type":"ListItem"`)
}
