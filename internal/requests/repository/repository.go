package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tenant_rating_backend/platform/apperr"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Request represents the request database model
type Request struct {
	ID                uuid.UUID `db:"id"`
	UserID            uuid.UUID `db:"user_id"`
	DesiredRent       float64   `db:"desired_rent"`
	CityName          string    `db:"city_name"`
	TenantIdentityNos string    `db:"tenant_identity_numbers"`
	TempScore         float64   `db:"temp_score"`
	FinalScore        float64   `db:"final_score"`
	Status            string    `db:"status"`
	CreatedAt         time.Time `db:"created_at"`
}

// Repository provides database operations for requests
type Repository struct {
	pool *pgxpool.Pool
}

const requestNotFoundMsg = "request not found"

// New creates a new requests repository
func New(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// Create inserts a new scored request
func (r *Repository) Create(ctx context.Context, req *Request) error {
	query := `
		INSERT INTO requests (
			id, user_id, desired_rent, city_name, tenant_identity_numbers,
			temp_score, final_score, status, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := r.pool.Exec(ctx, query,
		req.ID, req.UserID, req.DesiredRent, req.CityName, req.TenantIdentityNos,
		req.TempScore, req.FinalScore, req.Status, req.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	return nil
}

// GetByID fetches a single request
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*Request, error) {
	query := `
		SELECT id, user_id, desired_rent, city_name, tenant_identity_numbers,
			temp_score, final_score, status, created_at
		FROM requests
		WHERE id = $1`

	var req Request
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&req.ID, &req.UserID, &req.DesiredRent, &req.CityName, &req.TenantIdentityNos,
		&req.TempScore, &req.FinalScore, &req.Status, &req.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.Wrap(apperr.KindNotFound, requestNotFoundMsg, err)
		}
		return nil, fmt.Errorf("failed to get request: %w", err)
	}

	return &req, nil
}

// ListByUser returns all requests submitted by a user, newest first
func (r *Repository) ListByUser(ctx context.Context, userID uuid.UUID) ([]Request, error) {
	query := `
		SELECT id, user_id, desired_rent, city_name, tenant_identity_numbers,
			temp_score, final_score, status, created_at
		FROM requests
		WHERE user_id = $1
		ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list requests: %w", err)
	}
	defer rows.Close()

	var requests []Request
	for rows.Next() {
		var req Request
		if err := rows.Scan(
			&req.ID, &req.UserID, &req.DesiredRent, &req.CityName, &req.TenantIdentityNos,
			&req.TempScore, &req.FinalScore, &req.Status, &req.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan request: %w", err)
		}
		requests = append(requests, req)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate requests: %w", err)
	}

	return requests, nil
}

// UpdateStatus sets the review status of a request
func (r *Repository) UpdateStatus(ctx context.Context, id uuid.UUID, status string, reviewerID uuid.UUID) error {
	query := `
		UPDATE requests
		SET status = $2, reviewer_id = $3
		WHERE id = $1`

	tag, err := r.pool.Exec(ctx, query, id, status, reviewerID)
	if err != nil {
		return fmt.Errorf("failed to update request status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound(requestNotFoundMsg)
	}

	return nil
}
