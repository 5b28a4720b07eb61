package models

// Raw shapes returned by the WordPress REST API (wp/v2).
// Only the fields the adapter reads are declared; everything else in the
// upstream payload is ignored on decode.

// RenderedField wraps WordPress rich-text fields ({"rendered": "<p>..."}).
type RenderedField struct {
	Rendered string `json:"rendered"`
}

// WordPressPost is one element of the /posts collection, requested with
// _embed so that featured media and author come inline.
type WordPressPost struct {
	ID            int            `json:"id"`
	Slug          string         `json:"slug"`
	Title         RenderedField  `json:"title"`
	Excerpt       RenderedField  `json:"excerpt"`
	Content       RenderedField  `json:"content"`
	Date          string         `json:"date"`
	Modified      string         `json:"modified"`
	Author        int            `json:"author"`
	FeaturedMedia int            `json:"featured_media"`
	Categories    []int          `json:"categories"`
	Tags          []int          `json:"tags"`
	Embedded      *EmbeddedData  `json:"_embedded,omitempty"`
}

// EmbeddedData carries the _embed expansions the transformer resolves.
type EmbeddedData struct {
	FeaturedMedia []EmbeddedMedia  `json:"wp:featuredmedia"`
	Author        []EmbeddedAuthor `json:"author"`
}

type EmbeddedMedia struct {
	SourceURL string `json:"source_url"`
}

type EmbeddedAuthor struct {
	Name string `json:"name"`
}

// WordPressCategory is one element of the /categories collection.
type WordPressCategory struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description,omitempty"`
}

// WordPressTag is one element of the /tags collection.
type WordPressTag struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description,omitempty"`
}
