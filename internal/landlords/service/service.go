package service

import (
	"context"

	"tenant_rating_backend/internal/events"
	"tenant_rating_backend/internal/landlords/repository"
	"tenant_rating_backend/internal/landlords/transport"
	"tenant_rating_backend/platform/apperr"
	"tenant_rating_backend/platform/logger"

	"github.com/google/uuid"
)

const requestNotFoundMsg = "request not found"

type Service struct {
	repo *repository.Repository
	bus  events.Bus
	log  *logger.Logger
}

func New(repo *repository.Repository, bus events.Bus, log *logger.Logger) *Service {
	return &Service{
		repo: repo,
		bus:  bus,
		log:  log,
	}
}

func (s *Service) Search(ctx context.Context, landlordID uuid.UUID, query transport.SearchQuery) ([]transport.SearchResult, error) {
	rows, err := s.repo.Search(ctx, landlordID, repository.SearchFilter{
		City:     query.City,
		MinScore: query.MinScore,
		MaxRent:  query.MaxRent,
	})
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "search failed", err)
	}
	return toResults(rows), nil
}

func (s *Service) Save(ctx context.Context, landlordID, requestID uuid.UUID) error {
	exists, err := s.repo.RequestExists(ctx, requestID)
	if err != nil {
		return apperr.Wrap(apperr.KindInternal, "save failed", err)
	}
	if !exists {
		return apperr.NotFound(requestNotFoundMsg)
	}

	if err := s.repo.Save(ctx, landlordID, requestID); err != nil {
		return apperr.Wrap(apperr.KindInternal, "save failed", err)
	}

	if s.bus != nil {
		s.bus.Publish(ctx, events.RequestSaved{
			BaseEvent:      events.NewBaseEvent(),
			RequestID:      requestID,
			LandlordUserID: landlordID,
		})
	}

	return nil
}

func (s *Service) Unsave(ctx context.Context, landlordID, requestID uuid.UUID) error {
	if err := s.repo.Unsave(ctx, landlordID, requestID); err != nil {
		return apperr.Wrap(apperr.KindInternal, "unsave failed", err)
	}
	return nil
}

func (s *Service) ListSaved(ctx context.Context, landlordID uuid.UUID) ([]transport.SearchResult, error) {
	rows, err := s.repo.ListSaved(ctx, landlordID)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "list saved failed", err)
	}
	return toResults(rows), nil
}

func toResults(rows []repository.SearchRow) []transport.SearchResult {
	results := make([]transport.SearchResult, 0, len(rows))
	for _, row := range rows {
		results = append(results, transport.SearchResult{
			RequestID:       row.RequestID.String(),
			TenantFirstName: row.TenantFirstName,
			CityName:        row.CityName,
			DesiredRent:     row.DesiredRent,
			FinalScore:      row.FinalScore,
			Status:          row.Status,
			DateCreated:     row.CreatedAt,
			Saved:           row.Saved,
		})
	}
	return results
}
