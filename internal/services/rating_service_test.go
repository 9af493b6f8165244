package services

import (
	"errors"
	"testing"

	"promasterBack/internal/models"
)

func TestValidateRatingValue(t *testing.T) {
	cases := []struct {
		name    string
		value   float64
		wantErr bool
	}{
		{"lower bound", 1.0, false},
		{"upper bound", 5.0, false},
		{"middle", 3.5, false},
		{"below lower bound", 0.9, true},
		{"zero", 0, true},
		{"above upper bound", 5.1, true},
		{"way above", 6, true},
		{"negative", -1, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateRatingValue(tc.value)
			if tc.wantErr {
				if !errors.Is(err, models.ErrInvalidRating) {
					t.Fatalf("ValidateRatingValue(%v) = %v, want ErrInvalidRating", tc.value, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ValidateRatingValue(%v) returned error: %v", tc.value, err)
			}
		})
	}
}
