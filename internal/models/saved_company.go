package models

import "time"

type SavedCompany struct {
	ID        int       `json:"id"`
	ClientID  int       `json:"client_id"`
	CompanyID int       `json:"company_id"`
	SavedAt   time.Time `json:"saved_at"`

	CompanyName        string  `json:"company_name,omitempty"`
	CompanyDescription string  `json:"company_description,omitempty"`
	CompanyPhotoURL    *string `json:"company_photo_url,omitempty"`
	CompanyRating      float64 `json:"company_rating,omitempty"`
	ServiceName        string  `json:"service_name,omitempty"`
}
