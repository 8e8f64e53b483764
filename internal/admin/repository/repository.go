package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Stats aggregates platform-wide counters for the admin dashboard.
type Stats struct {
	TotalUsers       int64
	TotalRequests    int64
	PendingRequests  int64
	ApprovedRequests int64
	RejectedRequests int64
	AvgFinalScore    float64
}

// UserRow is one account with its aggregated roles.
type UserRow struct {
	ID          uuid.UUID
	FirstName   string
	LastName    string
	Email       string
	PhoneNumber string
	Roles       []string
	IsActive    bool
	CreatedAt   time.Time
}

// RequestRow is one scoring request with its tenant's email.
type RequestRow struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	TenantEmail string
	CityName    string
	DesiredRent float64
	FinalScore  float64
	Status      string
	CreatedAt   time.Time
}

type Repository struct {
	pool *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

func (r *Repository) GetStats(ctx context.Context) (Stats, error) {
	var stats Stats
	err := r.pool.QueryRow(ctx, `
		SELECT
			(SELECT COUNT(*) FROM users),
			(SELECT COUNT(*) FROM requests),
			(SELECT COUNT(*) FROM requests WHERE status = 'pending'),
			(SELECT COUNT(*) FROM requests WHERE status = 'approved'),
			(SELECT COUNT(*) FROM requests WHERE status = 'rejected'),
			(SELECT COALESCE(AVG(final_score), 0) FROM requests)
	`).Scan(
		&stats.TotalUsers, &stats.TotalRequests, &stats.PendingRequests,
		&stats.ApprovedRequests, &stats.RejectedRequests, &stats.AvgFinalScore,
	)
	return stats, err
}

func (r *Repository) ListUsers(ctx context.Context) ([]UserRow, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT u.id, u.first_name, u.last_name, u.email, u.phone_number,
		       COALESCE(ARRAY_AGG(ur.role) FILTER (WHERE ur.role IS NOT NULL), '{}'),
		       u.is_active, u.created_at
		FROM users u
		LEFT JOIN user_roles ur ON ur.user_id = u.id
		GROUP BY u.id
		ORDER BY u.created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []UserRow
	for rows.Next() {
		var user UserRow
		if err := rows.Scan(
			&user.ID, &user.FirstName, &user.LastName, &user.Email,
			&user.PhoneNumber, &user.Roles, &user.IsActive, &user.CreatedAt,
		); err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, rows.Err()
}

func (r *Repository) ListRequests(ctx context.Context, status string) ([]RequestRow, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT r.id, r.user_id, u.email, r.city_name, r.desired_rent,
		       r.final_score, r.status, r.created_at
		FROM requests r
		JOIN users u ON u.id = r.user_id
		WHERE $1 = '' OR r.status = $1
		ORDER BY r.created_at DESC
		LIMIT 200
	`, status)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var requests []RequestRow
	for rows.Next() {
		var req RequestRow
		if err := rows.Scan(
			&req.ID, &req.UserID, &req.TenantEmail, &req.CityName,
			&req.DesiredRent, &req.FinalScore, &req.Status, &req.CreatedAt,
		); err != nil {
			return nil, err
		}
		requests = append(requests, req)
	}
	return requests, rows.Err()
}
