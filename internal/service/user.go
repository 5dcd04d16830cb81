package service

import (
	"errors"
	"strings"

	"go.uber.org/zap"

	"marketbot/internal/domain"
	"marketbot/internal/gateway"
	"marketbot/internal/repository"
)

const minCredentialLength = 10

var (
	// ErrCredentialFormat means the submitted credential is too short
	// to possibly be valid.
	ErrCredentialFormat = errors.New("credential too short")

	// ErrCredentialRejected means the marketplace refused the credential
	ErrCredentialRejected = errors.New("credential rejected by marketplace")
)

// UserService handles user business logic
type UserService struct {
	users   repository.UserRepository
	audit   repository.AuditRepository
	gateway gateway.Factory
	logger  *zap.Logger
}

// NewUserService creates a new user service
func NewUserService(users repository.UserRepository, audit repository.AuditRepository,
	factory gateway.Factory, logger *zap.Logger) *UserService {
	return &UserService{
		users:   users,
		audit:   audit,
		gateway: factory,
		logger:  logger,
	}
}

// EnsureUser registers the user row and refreshes profile fields
func (s *UserService) EnsureUser(userID int64, profile domain.Profile) error {
	return s.users.EnsureUser(userID, profile)
}

// RegisterCredential validates the submitted credential against the
// marketplace and stores it on success.
func (s *UserService) RegisterCredential(userID int64, credential string, profile domain.Profile) error {
	credential = strings.TrimSpace(credential)
	if len(credential) < minCredentialLength {
		return ErrCredentialFormat
	}

	if !s.gateway(credential).Probe() {
		return ErrCredentialRejected
	}

	if err := s.users.UpsertCredential(userID, credential, profile); err != nil {
		return err
	}

	if err := s.audit.LogAction(userID, "register_credential", ""); err != nil {
		s.logger.Warn("log credential registration", zap.Int64("user_id", userID), zap.Error(err))
	}
	return nil
}

// Credential returns the stored credential for the user
func (s *UserService) Credential(userID int64) (string, bool, error) {
	return s.users.Credential(userID)
}

// ClearCredential removes the stored credential
func (s *UserService) ClearCredential(userID int64) error {
	if err := s.users.ClearCredential(userID); err != nil {
		return err
	}
	if err := s.audit.LogAction(userID, "clear_credential", ""); err != nil {
		s.logger.Warn("log credential removal", zap.Int64("user_id", userID), zap.Error(err))
	}
	return nil
}

// IsBlocked reports whether the user is blocked
func (s *UserService) IsBlocked(userID int64) (bool, error) {
	return s.users.IsBlocked(userID)
}

// Block marks the user as blocked
func (s *UserService) Block(userID int64) error {
	return s.users.SetBlocked(userID, true)
}

// Unblock clears the blocked flag
func (s *UserService) Unblock(userID int64) error {
	return s.users.SetBlocked(userID, false)
}

// TouchActivity bumps the activity timestamp, logging failures instead
// of surfacing them.
func (s *UserService) TouchActivity(userID int64) {
	if err := s.users.TouchActivity(userID); err != nil {
		s.logger.Warn("touch activity", zap.Int64("user_id", userID), zap.Error(err))
	}
}

// ListUsers returns up to limit most recent users matching filter
func (s *UserService) ListUsers(limit int, filter domain.UserFilter) ([]domain.User, error) {
	return s.users.ListUsers(limit, filter)
}

// RecipientIDs returns ids of all broadcastable users
func (s *UserService) RecipientIDs() ([]int64, error) {
	return s.users.RecipientIDs()
}

// Stats returns aggregate user counters
func (s *UserService) Stats() (domain.UserStats, error) {
	return s.users.Stats()
}

// ActivityStats counts registrations over trailing windows
func (s *UserService) ActivityStats() (domain.ActivityStats, error) {
	return s.users.ActivityStats()
}
