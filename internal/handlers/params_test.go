package handlers

import (
	"net/http/httptest"
	"testing"
)

func TestParsePagination(t *testing.T) {
	cases := []struct {
		name        string
		url         string
		defaultSize int
		wantPage    int
		wantPerPage int
	}{
		{"no params", "/listings", 9, 1, 9},
		{"explicit", "/listings?page=3&per_page=20", 9, 3, 20},
		{"zero page", "/listings?page=0", 9, 1, 9},
		{"negative per_page", "/listings?per_page=-5", 9, 1, 9},
		{"garbage values", "/listings?page=abc&per_page=xyz", 10, 1, 10},
		{"clamped to max", "/listings?per_page=500", 10, 1, 100},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", tc.url, nil)
			page, perPage := parsePagination(r, tc.defaultSize)
			if page != tc.wantPage || perPage != tc.wantPerPage {
				t.Fatalf("parsePagination(%q) = (%d, %d), want (%d, %d)", tc.url, page, perPage, tc.wantPage, tc.wantPerPage)
			}
		})
	}
}

func TestAllowedImageExt(t *testing.T) {
	for _, ext := range []string{".png", ".jpg", ".JPEG", ".gif"} {
		if !allowedImageExt(ext) {
			t.Errorf("expected %q to be allowed", ext)
		}
	}
	for _, ext := range []string{".svg", ".exe", "", ".pdf"} {
		if allowedImageExt(ext) {
			t.Errorf("expected %q to be rejected", ext)
		}
	}
}

func TestContentTypeForExt(t *testing.T) {
	if ct := contentTypeForExt(".JPG"); ct != "image/jpeg" {
		t.Errorf("expected image/jpeg, got %q", ct)
	}
	if ct := contentTypeForExt(".bin"); ct != "application/octet-stream" {
		t.Errorf("expected fallback content type, got %q", ct)
	}
}
