package dto

// BlogPost is the stable post shape consumed by the site frontend.
// Every field is total: the transformer substitutes fallbacks so consumers
// never see a missing value. Slug is the routing key.
type BlogPost struct {
	ID       int      `json:"id"`
	Slug     string   `json:"slug"`
	Title    string   `json:"title"`
	Excerpt  string   `json:"excerpt"`
	Content  string   `json:"content"`
	Image    string   `json:"image"`
	Author   string   `json:"author"`
	Date     string   `json:"date"`
	Modified string   `json:"modified"`
	Category string   `json:"category"`
	ReadTime string   `json:"readTime"`
	Tags     []string `json:"tags"`
	Featured bool     `json:"featured"`
}

// CategoryDTO and TagDTO expose taxonomy entries to the frontend.
type CategoryDTO struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type TagDTO struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}
