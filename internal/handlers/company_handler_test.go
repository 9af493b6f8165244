package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"promasterBack/internal/models"
	"promasterBack/internal/services"
)

// A blank-after-trim query must short-circuit to an empty page before
// any repository access; the zero-value service makes a repository hit
// fail loudly.
func TestSearchCompaniesWhitespaceQuery(t *testing.T) {
	h := &CompanyHandler{Service: &services.CompanyService{}}

	for _, q := range []string{"", "%20%20", "+++"} {
		r := httptest.NewRequest("GET", "/api/search?q="+q, nil)
		w := httptest.NewRecorder()

		h.SearchCompanies(w, r)

		if w.Code != http.StatusOK {
			t.Fatalf("q=%q: expected status 200, got %d", q, w.Code)
		}

		var resp models.CompanyListResponse
		if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
			t.Fatalf("q=%q: decode response: %v", q, err)
		}
		if len(resp.Companies) != 0 {
			t.Errorf("q=%q: expected no companies, got %d", q, len(resp.Companies))
		}
		if resp.Pagination.Total != 0 {
			t.Errorf("q=%q: expected zero total, got %d", q, resp.Pagination.Total)
		}
	}
}
