package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// SearchFilter narrows the scored requests a landlord sees.
type SearchFilter struct {
	City     string
	MinScore float64
	MaxRent  float64
}

// SearchRow is one scored request joined with its tenant.
type SearchRow struct {
	RequestID       uuid.UUID
	TenantFirstName string
	CityName        string
	DesiredRent     float64
	FinalScore      float64
	Status          string
	CreatedAt       time.Time
	Saved           bool
}

type Repository struct {
	pool *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

const searchQuery = `
	SELECT r.id, u.first_name, r.city_name, r.desired_rent, r.final_score,
	       r.status, r.created_at,
	       (s.request_id IS NOT NULL) AS saved
	FROM requests r
	JOIN users u ON u.id = r.user_id
	LEFT JOIN saved_requests s
	       ON s.request_id = r.id AND s.landlord_id = $1
	WHERE r.status <> 'rejected'
	  AND ($2 = '' OR r.city_name ILIKE '%' || $2 || '%')
	  AND r.final_score >= $3
	  AND ($4 <= 0 OR r.desired_rent <= $4)
	ORDER BY r.final_score DESC, r.created_at DESC
	LIMIT 100
`

func (r *Repository) Search(ctx context.Context, landlordID uuid.UUID, filter SearchFilter) ([]SearchRow, error) {
	rows, err := r.pool.Query(ctx, searchQuery,
		landlordID, filter.City, filter.MinScore, filter.MaxRent)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []SearchRow
	for rows.Next() {
		var row SearchRow
		if err := rows.Scan(
			&row.RequestID, &row.TenantFirstName, &row.CityName, &row.DesiredRent,
			&row.FinalScore, &row.Status, &row.CreatedAt, &row.Saved,
		); err != nil {
			return nil, err
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

func (r *Repository) Save(ctx context.Context, landlordID, requestID uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO saved_requests (landlord_id, request_id, created_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (landlord_id, request_id) DO NOTHING
	`, landlordID, requestID, time.Now().UTC())
	return err
}

func (r *Repository) Unsave(ctx context.Context, landlordID, requestID uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `
		DELETE FROM saved_requests WHERE landlord_id = $1 AND request_id = $2
	`, landlordID, requestID)
	return err
}

const savedQuery = `
	SELECT r.id, u.first_name, r.city_name, r.desired_rent, r.final_score,
	       r.status, r.created_at, TRUE AS saved
	FROM saved_requests s
	JOIN requests r ON r.id = s.request_id
	JOIN users u ON u.id = r.user_id
	WHERE s.landlord_id = $1
	ORDER BY s.created_at DESC
`

func (r *Repository) ListSaved(ctx context.Context, landlordID uuid.UUID) ([]SearchRow, error) {
	rows, err := r.pool.Query(ctx, savedQuery, landlordID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []SearchRow
	for rows.Next() {
		var row SearchRow
		if err := rows.Scan(
			&row.RequestID, &row.TenantFirstName, &row.CityName, &row.DesiredRent,
			&row.FinalScore, &row.Status, &row.CreatedAt, &row.Saved,
		); err != nil {
			return nil, err
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// RequestExists reports whether a request row exists at all.
func (r *Repository) RequestExists(ctx context.Context, requestID uuid.UUID) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `
		SELECT EXISTS (SELECT 1 FROM requests WHERE id = $1)
	`, requestID).Scan(&exists)
	return exists, err
}
