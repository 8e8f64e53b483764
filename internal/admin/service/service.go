package service

import (
	"context"

	"tenant_rating_backend/internal/admin/repository"
	"tenant_rating_backend/internal/admin/transport"
	authrepo "tenant_rating_backend/internal/auth/repository"
	requestsrepo "tenant_rating_backend/internal/requests/repository"
	"tenant_rating_backend/platform/apperr"
	"tenant_rating_backend/platform/logger"

	"github.com/google/uuid"
)

type Service struct {
	repo     *repository.Repository
	users    *authrepo.Repository
	requests *requestsrepo.Repository
	log      *logger.Logger
}

func New(repo *repository.Repository, users *authrepo.Repository, requests *requestsrepo.Repository, log *logger.Logger) *Service {
	return &Service{
		repo:     repo,
		users:    users,
		requests: requests,
		log:      log,
	}
}

func (s *Service) GetStats(ctx context.Context) (transport.StatsResponse, error) {
	stats, err := s.repo.GetStats(ctx)
	if err != nil {
		return transport.StatsResponse{}, apperr.Wrap(apperr.KindInternal, "stats failed", err)
	}
	return transport.StatsResponse{
		TotalUsers:       stats.TotalUsers,
		TotalRequests:    stats.TotalRequests,
		PendingRequests:  stats.PendingRequests,
		ApprovedRequests: stats.ApprovedRequests,
		RejectedRequests: stats.RejectedRequests,
		AvgFinalScore:    stats.AvgFinalScore,
	}, nil
}

func (s *Service) ListUsers(ctx context.Context) ([]transport.UserResponse, error) {
	rows, err := s.repo.ListUsers(ctx)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "list users failed", err)
	}

	users := make([]transport.UserResponse, 0, len(rows))
	for _, row := range rows {
		users = append(users, transport.UserResponse{
			ID:         row.ID.String(),
			FirstName:  row.FirstName,
			LastName:   row.LastName,
			Email:      row.Email,
			Phone:      row.PhoneNumber,
			Roles:      row.Roles,
			IsActive:   row.IsActive,
			DateJoined: row.CreatedAt,
		})
	}
	return users, nil
}

func (s *Service) SetUserActive(ctx context.Context, userID uuid.UUID, active bool) error {
	if err := s.users.SetUserActive(ctx, userID, active); err != nil {
		return apperr.Wrap(apperr.KindInternal, "set user active failed", err)
	}
	s.log.Info("user active flag changed", "user_id", userID.String(), "active", active)
	return nil
}

func (s *Service) ListRequests(ctx context.Context, status string) ([]transport.RequestResponse, error) {
	rows, err := s.repo.ListRequests(ctx, status)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "list requests failed", err)
	}

	requests := make([]transport.RequestResponse, 0, len(rows))
	for _, row := range rows {
		requests = append(requests, transport.RequestResponse{
			ID:          row.ID.String(),
			UserID:      row.UserID.String(),
			TenantEmail: row.TenantEmail,
			CityName:    row.CityName,
			DesiredRent: row.DesiredRent,
			FinalScore:  row.FinalScore,
			Status:      row.Status,
			DateCreated: row.CreatedAt,
		})
	}
	return requests, nil
}

func (s *Service) SetRequestStatus(ctx context.Context, requestID, reviewerID uuid.UUID, status string) error {
	if err := s.requests.UpdateStatus(ctx, requestID, status, reviewerID); err != nil {
		return err
	}
	s.log.Info("request status changed", "request_id", requestID.String(), "status", status, "reviewer_id", reviewerID.String())
	return nil
}
