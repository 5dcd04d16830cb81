package service

import (
	"sync"

	"go.uber.org/zap"

	"marketbot/internal/domain"
	"marketbot/internal/repository"
)

// AdminService keeps the administrator set in memory, backed by the
// repository. Membership checks happen on every update, so the set is
// kept warm rather than queried per event.
type AdminService struct {
	admins repository.AdminRepository
	logger *zap.Logger

	mu  sync.RWMutex
	ids map[int64]struct{}
}

// NewAdminService creates a new admin service
func NewAdminService(admins repository.AdminRepository, logger *zap.Logger) *AdminService {
	return &AdminService{
		admins: admins,
		logger: logger,
		ids:    make(map[int64]struct{}),
	}
}

// Load fills the in-memory set from storage
func (s *AdminService) Load() error {
	ids, err := s.admins.AdminIDs()
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.ids = make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		s.ids[id] = struct{}{}
	}
	return nil
}

// Bootstrap grants the configured default administrator. Failures are
// logged, not fatal, so a broken bootstrap never stops the bot.
func (s *AdminService) Bootstrap(userID int64) {
	if userID == 0 {
		return
	}
	if s.IsAdmin(userID) {
		return
	}

	err := s.Grant(domain.Administrator{
		UserID:      userID,
		FullName:    "Bootstrap admin",
		Permissions: domain.PermissionsAll,
	})
	if err != nil {
		s.logger.Warn("bootstrap default admin", zap.Int64("user_id", userID), zap.Error(err))
	}
}

// IsAdmin reports whether the user is an administrator
func (s *AdminService) IsAdmin(userID int64) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.ids[userID]
	return ok
}

// Grant adds an administrator. Storage is updated first so the
// in-memory set never claims a grant that was not persisted.
func (s *AdminService) Grant(admin domain.Administrator) error {
	if admin.Permissions == "" {
		admin.Permissions = domain.PermissionsAll
	}
	if err := s.admins.Grant(admin); err != nil {
		return err
	}

	s.mu.Lock()
	s.ids[admin.UserID] = struct{}{}
	s.mu.Unlock()
	return nil
}

// Revoke removes an administrator. Takes effect immediately for
// subsequent permission checks.
func (s *AdminService) Revoke(userID int64) error {
	if err := s.admins.Revoke(userID); err != nil {
		return err
	}

	s.mu.Lock()
	delete(s.ids, userID)
	s.mu.Unlock()
	return nil
}

// List returns all administrators from storage
func (s *AdminService) List() ([]domain.Administrator, error) {
	return s.admins.ListAdmins()
}
