package transport

import "time"

type StatsResponse struct {
	TotalUsers       int64   `json:"totalUsers"`
	TotalRequests    int64   `json:"totalRequests"`
	PendingRequests  int64   `json:"pendingRequests"`
	ApprovedRequests int64   `json:"approvedRequests"`
	RejectedRequests int64   `json:"rejectedRequests"`
	AvgFinalScore    float64 `json:"avgFinalScore"`
}

type UserResponse struct {
	ID         string    `json:"id"`
	FirstName  string    `json:"firstName"`
	LastName   string    `json:"lastName"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone"`
	Roles      []string  `json:"roles"`
	IsActive   bool      `json:"isActive"`
	DateJoined time.Time `json:"dateJoined"`
}

type RequestResponse struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId"`
	TenantEmail string    `json:"tenantEmail"`
	CityName    string    `json:"cityName"`
	DesiredRent float64   `json:"desiredRent"`
	FinalScore  float64   `json:"finalScore"`
	Status      string    `json:"status"`
	DateCreated time.Time `json:"dateCreated"`
}

type SetActiveRequest struct {
	Active *bool `json:"active" validate:"required"`
}

type SetStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending approved rejected"`
}
