package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"tenant_rating_backend/internal/auth/password"
	"tenant_rating_backend/internal/auth/repository"
	"tenant_rating_backend/internal/auth/token"
	"tenant_rating_backend/internal/auth/transport"
	"tenant_rating_backend/internal/events"
	"tenant_rating_backend/platform/apperr"
	"tenant_rating_backend/platform/config"
	"tenant_rating_backend/platform/logger"
	"tenant_rating_backend/platform/phone"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	accessTokenType  = "access"
	refreshTokenType = "refresh"

	msgInvalidCredentials = "invalid credentials"
	msgAccountDisabled    = "account is disabled"
	msgEmailTaken         = "email is already registered"
)

type Service struct {
	repo *repository.Repository
	cfg  config.AuthServiceConfig
	bus  events.Bus
	log  *logger.Logger
}

func New(repo *repository.Repository, cfg config.AuthServiceConfig, bus events.Bus, log *logger.Logger) *Service {
	return &Service{repo: repo, cfg: cfg, bus: bus, log: log}
}

func (s *Service) Register(ctx context.Context, req transport.RegisterRequest) error {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if _, err := s.repo.GetUserByEmail(ctx, email); err == nil {
		return apperr.Conflict(msgEmailTaken)
	}

	normalizedPhone := phone.NormalizeE164(req.Phone)

	hash, err := password.Hash(req.Password)
	if err != nil {
		return err
	}

	user := &repository.User{
		ID:           uuid.New(),
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        email,
		PhoneNumber:  normalizedPhone,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.repo.CreateUser(ctx, user, req.Role); err != nil {
		return err
	}

	s.log.AuthEvent("register", user.Email, true, "")
	if s.bus != nil {
		s.bus.Publish(ctx, events.UserSignedUp{
			BaseEvent: events.NewBaseEvent(),
			UserID:    user.ID,
			Email:     user.Email,
			FirstName: user.FirstName,
			Role:      req.Role,
		})
	}

	return nil
}

func (s *Service) Login(ctx context.Context, email, plainPassword string) (transport.AuthResponse, error) {
	user, err := s.repo.GetUserByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return transport.AuthResponse{}, apperr.Unauthorized(msgInvalidCredentials)
	}

	if err := password.Compare(user.PasswordHash, plainPassword); err != nil {
		return transport.AuthResponse{}, apperr.Unauthorized(msgInvalidCredentials)
	}

	if !user.IsActive {
		return transport.AuthResponse{}, apperr.Forbidden(msgAccountDisabled)
	}

	s.log.AuthEvent("login", user.Email, true, "")
	return s.issueTokens(ctx, user.ID)
}

func (s *Service) Refresh(ctx context.Context, refreshToken string) (transport.AuthResponse, error) {
	hash := token.HashSHA256(refreshToken)
	userID, expiresAt, err := s.repo.GetRefreshToken(ctx, hash)
	if err != nil {
		return transport.AuthResponse{}, apperr.Unauthorized(msgInvalidCredentials)
	}

	if time.Now().After(expiresAt) {
		_ = s.repo.RevokeRefreshToken(ctx, hash)
		return transport.AuthResponse{}, apperr.Unauthorized("token expired")
	}

	// Rotate: a refresh token is single-use.
	_ = s.repo.RevokeRefreshToken(ctx, hash)
	return s.issueTokens(ctx, userID)
}

func (s *Service) Logout(ctx context.Context, refreshToken string) error {
	return s.repo.RevokeRefreshToken(ctx, token.HashSHA256(refreshToken))
}

// GetUser returns one user's profile with roles.
func (s *Service) GetUser(ctx context.Context, userID uuid.UUID) (transport.UserResponse, error) {
	user, err := s.repo.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return transport.UserResponse{}, apperr.NotFound("user not found")
		}
		return transport.UserResponse{}, err
	}

	roles, err := s.repo.GetUserRoles(ctx, userID)
	if err != nil {
		return transport.UserResponse{}, err
	}

	return transport.UserResponse{
		ID:         user.ID,
		FirstName:  user.FirstName,
		LastName:   user.LastName,
		Email:      user.Email,
		Phone:      user.PhoneNumber,
		Roles:      roles,
		IsActive:   user.IsActive,
		DateJoined: user.CreatedAt,
	}, nil
}

// Repository exposes the repository for cross-module adapters.
func (s *Service) Repository() *repository.Repository {
	return s.repo
}

func (s *Service) issueTokens(ctx context.Context, userID uuid.UUID) (transport.AuthResponse, error) {
	roles, err := s.repo.GetUserRoles(ctx, userID)
	if err != nil {
		return transport.AuthResponse{}, err
	}

	accessToken, err := s.signJWT(userID, roles, s.cfg.GetAccessTokenTTL(), accessTokenType, s.cfg.GetJWTAccessSecret())
	if err != nil {
		return transport.AuthResponse{}, err
	}

	refreshToken, err := token.GenerateRandomToken(48)
	if err != nil {
		return transport.AuthResponse{}, err
	}

	hash := token.HashSHA256(refreshToken)
	expiresAt := time.Now().Add(s.cfg.GetRefreshTokenTTL())
	if err := s.repo.CreateRefreshToken(ctx, userID, hash, expiresAt); err != nil {
		return transport.AuthResponse{}, err
	}

	return transport.AuthResponse{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}

func (s *Service) signJWT(userID uuid.UUID, roles []string, ttl time.Duration, tokenType, secret string) (string, error) {
	claims := jwt.MapClaims{
		"sub":   userID.String(),
		"type":  tokenType,
		"roles": roles,
		"exp":   time.Now().Add(ttl).Unix(),
		"iat":   time.Now().Unix(),
	}

	tokenObj := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tokenObj.SignedString([]byte(secret))
}
