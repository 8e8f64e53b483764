package transport

import "time"

// SearchQuery filters scored requests for a landlord.
type SearchQuery struct {
	City     string  `form:"city" validate:"omitempty,min=2,max=100"`
	MinScore float64 `form:"minScore" validate:"omitempty,gte=0,lte=100"`
	MaxRent  float64 `form:"maxRent" validate:"omitempty,gt=0"`
}

type SearchResult struct {
	RequestID       string    `json:"requestId"`
	TenantFirstName string    `json:"tenantFirstName"`
	CityName        string    `json:"cityName"`
	DesiredRent     float64   `json:"desiredRent"`
	FinalScore      float64   `json:"finalScore"`
	Status          string    `json:"status"`
	DateCreated     time.Time `json:"dateCreated"`
	Saved           bool      `json:"saved"`
}
