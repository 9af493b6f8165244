package models

import "time"

type Company struct {
	ID          int        `json:"id"`
	Name        string     `json:"name"`
	Email       string     `json:"email,omitempty"`
	Password    string     `json:"password,omitempty"`
	Description string     `json:"description"`
	PhotoURL    *string    `json:"photo_url,omitempty"`
	Gallery     []string   `json:"gallery"`
	Rating      float64    `json:"rating"`
	ServiceID   int        `json:"service_id"`
	ServiceName string     `json:"service_name,omitempty"`
	Saved       bool       `json:"saved,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty"`
}

// CompanyUpdateRequest carries the editable profile fields. Every change
// requires the current password, matching the edit form of the product.
type CompanyUpdateRequest struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Description     string `json:"description"`
	ServiceID       int    `json:"service_id"`
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

type CompanyFilterRequest struct {
	Query     string
	ServiceID int
	Page      int
	PerPage   int
}

type CompanyListResponse struct {
	Companies  []Company  `json:"companies"`
	Pagination Pagination `json:"pagination"`
}
