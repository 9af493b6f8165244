package models

type Service struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type ServiceListResponse struct {
	Services   []Service  `json:"services"`
	Pagination Pagination `json:"pagination"`
}
