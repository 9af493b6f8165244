package models

import "time"

type Rating struct {
	ID        int       `json:"id"`
	ClientID  int       `json:"client_id"`
	CompanyID int       `json:"company_id"`
	Rating    float64   `json:"rating"`
	Review    string    `json:"review"`
	CreatedAt time.Time `json:"created_at"`

	ClientName       string  `json:"client_name,omitempty"`
	ClientAvatarPath *string `json:"client_avatar_path,omitempty"`
}

type RatingListResponse struct {
	Ratings    []Rating   `json:"ratings"`
	Pagination Pagination `json:"pagination"`
}
