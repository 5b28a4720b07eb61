package dto

// BlogAPIResponse is the pagination envelope for post listings.
// Totals come from the upstream X-WP-Total / X-WP-TotalPages headers.
// A degraded (upstream failure) response carries an empty Posts slice with
// zero totals and CurrentPage 1.
type BlogAPIResponse struct {
	Posts       []BlogPost `json:"posts"`
	TotalPages  int        `json:"totalPages"`
	TotalPosts  int        `json:"totalPosts"`
	CurrentPage int        `json:"currentPage"`
}

// EmptyBlogAPIResponse is the degraded result returned when the upstream
// call fails; the frontend renders an empty state instead of an error.
func EmptyBlogAPIResponse() BlogAPIResponse {
	return BlogAPIResponse{
		Posts:       []BlogPost{},
		TotalPages:  0,
		TotalPosts:  0,
		CurrentPage: 1,
	}
}
