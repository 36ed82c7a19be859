package webutil

const (
	// Header Keys
	HeaderContentType  = "Content-Type"
	HeaderCacheControl = "Cache-Control"

	// Content Types
	ContentTypeJSONUTF8      = "application/json; charset=utf-8"
	ContentTypeXMLUTF8       = "application/xml; charset=utf-8"
	ContentTypeTextPlainUTF8 = "text/plain; charset=utf-8"
	ContentTypeHTMLUTF8      = "text/html; charset=utf-8"
)
