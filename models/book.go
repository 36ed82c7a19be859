package models

// ReadingStatus defines where a book sits in the library.
type ReadingStatus string

const (
	ReadingStatusRead    ReadingStatus = "read"
	ReadingStatusReading ReadingStatus = "reading"
	ReadingStatusToRead  ReadingStatus = "to-read"
)

// Book is one library entry, used to emit structured-data markup for
// the reading library page.
type Book struct {
	ID           string        `json:"id" yaml:"id"`
	Title        string        `json:"title" yaml:"title"`
	Author       string        `json:"author" yaml:"author"`
	ISBN13       string        `json:"isbn13,omitempty" yaml:"isbn13"`
	Status       ReadingStatus `json:"status" yaml:"status"`
	GoodreadsURL string        `json:"goodreads_url,omitempty" yaml:"goodreads_url"`
}
