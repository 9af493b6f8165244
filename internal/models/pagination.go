package models

// Pagination mirrors the metadata the listing and search endpoints
// return alongside every page.
type Pagination struct {
	Total   int  `json:"total"`
	Page    int  `json:"page"`
	Pages   int  `json:"pages"`
	PerPage int  `json:"per_page"`
	HasNext bool `json:"has_next"`
	HasPrev bool `json:"has_prev"`
}

func NewPagination(total, page, perPage int) Pagination {
	if perPage < 1 {
		perPage = 1
	}
	if page < 1 {
		page = 1
	}
	pages := total / perPage
	if total%perPage != 0 {
		pages++
	}
	return Pagination{
		Total:   total,
		Page:    page,
		Pages:   pages,
		PerPage: perPage,
		HasNext: page < pages,
		HasPrev: page > 1 && total > 0,
	}
}
