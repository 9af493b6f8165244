package models

import "testing"

func TestNewPagination(t *testing.T) {
	cases := []struct {
		name    string
		total   int
		page    int
		perPage int
		want    Pagination
	}{
		{"empty", 0, 1, 9, Pagination{Total: 0, Page: 1, Pages: 0, PerPage: 9, HasNext: false, HasPrev: false}},
		{"single page", 5, 1, 9, Pagination{Total: 5, Page: 1, Pages: 1, PerPage: 9, HasNext: false, HasPrev: false}},
		{"exact fit", 18, 1, 9, Pagination{Total: 18, Page: 1, Pages: 2, PerPage: 9, HasNext: true, HasPrev: false}},
		{"middle page", 27, 2, 9, Pagination{Total: 27, Page: 2, Pages: 3, PerPage: 9, HasNext: true, HasPrev: true}},
		{"last page", 19, 3, 9, Pagination{Total: 19, Page: 3, Pages: 3, PerPage: 9, HasNext: false, HasPrev: true}},
		{"clamped args", 10, 0, 0, Pagination{Total: 10, Page: 1, Pages: 10, PerPage: 1, HasNext: true, HasPrev: false}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := NewPagination(tc.total, tc.page, tc.perPage)
			if got != tc.want {
				t.Fatalf("NewPagination(%d, %d, %d) = %+v, want %+v", tc.total, tc.page, tc.perPage, got, tc.want)
			}
		})
	}
}
