package api

import "github.com/hyemin916/drip-drop-dev/models"

type ErrorResponse struct {
	Error   string `json:"error"`
	Status  string `json:"status"`
	Field   string `json:"field,omitempty"`
	Details string `json:"details,omitempty"`
}

type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
}

type PostListResponse struct {
	Posts      []models.PostSummary `json:"posts"`
	Pagination Pagination           `json:"pagination"`
}

type AuthCheckResponse struct {
	Authenticated bool `json:"authenticated"`
}
