package dto

// BlogSearchParams are the query options accepted by the post listing.
// Zero values mean "use the upstream default": the client only sends
// parameters that are actually set.
type BlogSearchParams struct {
	Page       int
	PerPage    int
	Search     string
	Categories []int
	Tags       []int
	OrderBy    string
	Order      string
}

// Normalized returns a copy with the documented defaults applied
// (page 1, ten posts per page, newest first).
func (p BlogSearchParams) Normalized() BlogSearchParams {
	if p.Page <= 0 {
		p.Page = 1
	}
	if p.PerPage <= 0 {
		p.PerPage = 10
	}
	if p.OrderBy == "" {
		p.OrderBy = "date"
	}
	if p.Order == "" {
		p.Order = "desc"
	}
	return p
}
