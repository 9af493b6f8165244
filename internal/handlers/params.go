package handlers

import (
	"net/http"
	"strconv"
)

const (
	defaultListingsPerPage = 9
	defaultPerPage         = 10
	maxPerPage             = 100
)

// parsePagination reads page/per_page query parameters with clamped
// defaults.
func parsePagination(r *http.Request, defaultSize int) (page, perPage int) {
	page, _ = strconv.Atoi(r.URL.Query().Get("page"))
	if page < 1 {
		page = 1
	}
	perPage, _ = strconv.Atoi(r.URL.Query().Get("per_page"))
	if perPage < 1 {
		perPage = defaultSize
	}
	if perPage > maxPerPage {
		perPage = maxPerPage
	}
	return page, perPage
}

// authUser pulls the identity the JWT middleware stored on the request
// context.
func authUser(r *http.Request) (id int, role string, ok bool) {
	id, okID := r.Context().Value("user_id").(int)
	role, okRole := r.Context().Value("role").(string)
	return id, role, okID && okRole
}
