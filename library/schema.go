package library

import "github.com/treygoff24/site/models"

// schema.org JSON-LD shapes emitted for the reading library page.

type PersonSchema struct {
	Type string `json:"@type"`
	Name string `json:"name"`
}

type BookSchema struct {
	Context string       `json:"@context,omitempty"`
	Type    string       `json:"@type"`
	Name    string       `json:"name"`
	Author  PersonSchema `json:"author"`
	ISBN    string       `json:"isbn,omitempty"`
	SameAs  string       `json:"sameAs,omitempty"`
}

type ItemListSchema struct {
	Context  string           `json:"@context"`
	Type     string           `json:"@type"`
	Elements []ListItemSchema `json:"itemListElement"`
}

type ListItemSchema struct {
	Type     string     `json:"@type"`
	Position int        `json:"position"`
	Item     BookSchema `json:"item"`
}

// BookStructuredData builds the schema.org Book record for one book.
// The Goodreads link is included only when it passes validation, so
// display code never emits a spoofed outbound link.
func BookStructuredData(book models.Book) BookSchema {
	schema := BookSchema{
		Type:   "Book",
		Name:   book.Title,
		Author: PersonSchema{Type: "Person", Name: book.Author},
		ISBN:   book.ISBN13,
	}
	if IsValidGoodreadsURL(book.GoodreadsURL) {
		schema.SameAs = book.GoodreadsURL
	}
	return schema
}

// LibraryStructuredData builds the schema.org ItemList for the whole
// library, one positioned element per book.
func LibraryStructuredData(books []models.Book) ItemListSchema {
	list := ItemListSchema{
		Context:  "https://schema.org",
		Type:     "ItemList",
		Elements: make([]ListItemSchema, 0, len(books)),
	}
	for i, book := range books {
		list.Elements = append(list.Elements, ListItemSchema{
			Type:     "ListItem",
			Position: i + 1,
			Item:     BookStructuredData(book),
		})
	}
	return list
}
