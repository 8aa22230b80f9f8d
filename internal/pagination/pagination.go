package pagination

import "math"

const (
	DefaultBookLimit   = 10
	DefaultReviewLimit = 5
	// MaxLimit bounds the page size a client can request.
	MaxLimit = 100
)

// Params is a requested page before it is resolved against a total count.
type Params struct {
	Page  int
	Limit int
}

// Page describes one resolved page of a result set.
type Page struct {
	Offset      int  `json:"-"`
	Limit       int  `json:"-"`
	CurrentPage int  `json:"currentPage"`
	TotalPages  int  `json:"totalPages"`
	HasNextPage bool `json:"hasNextPage"`
	HasPrevPage bool `json:"hasPrevPage"`
}

// Normalize clamps page to >= 1 and limit to [1, MaxLimit].
func (p Params) Normalize(defaultLimit int) Params {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit < 1 {
		p.Limit = defaultLimit
	}
	if p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}
	p.Page = clampPage(p.Page, p.Limit)
	return p
}

// clampPage bounds page so that (page-1)*limit cannot overflow an int. limit
// must be at least 1.
func clampPage(page, limit int) int {
	if maxPage := math.MaxInt / limit; page > maxPage {
		return maxPage
	}
	return page
}

// Offset is the number of rows to skip for the requested page.
func (p Params) Offset() int {
	if p.Page < 1 || p.Limit < 1 {
		return 0
	}
	return (clampPage(p.Page, p.Limit) - 1) * p.Limit
}

// Paginate resolves page and limit against total. page and limit must already
// be normalized; values below 1 are treated as 1.
func Paginate(page, limit, total int) Page {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 1
	}
	page = clampPage(page, limit)
	totalPages := 0
	if total > 0 {
		totalPages = (total + limit - 1) / limit
	}
	return Page{
		Offset:      (page - 1) * limit,
		Limit:       limit,
		CurrentPage: page,
		TotalPages:  totalPages,
		HasNextPage: page < totalPages,
		HasPrevPage: page > 1,
	}
}
