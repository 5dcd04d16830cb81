package service

import (
	"go.uber.org/zap"

	"marketbot/internal/domain"
	"marketbot/internal/repository"
)

// Sender delivers one message to one user
type Sender interface {
	Send(userID int64, text string) error
}

// BroadcastService fans one message out to all non-blocked users
type BroadcastService struct {
	users  repository.UserRepository
	audit  repository.AuditRepository
	sender Sender
	logger *zap.Logger
}

// NewBroadcastService creates a new broadcast service
func NewBroadcastService(users repository.UserRepository, audit repository.AuditRepository,
	sender Sender, logger *zap.Logger) *BroadcastService {
	return &BroadcastService{
		users:  users,
		audit:  audit,
		sender: sender,
		logger: logger,
	}
}

// SendToAll delivers text to every non-blocked user. Per-recipient
// failures are counted, never aborting the run.
func (s *BroadcastService) SendToAll(adminID int64, text string) (domain.BroadcastResult, error) {
	ids, err := s.users.RecipientIDs()
	if err != nil {
		return domain.BroadcastResult{}, err
	}

	result := domain.BroadcastResult{Total: len(ids)}
	for _, id := range ids {
		if err := s.sender.Send(id, text); err != nil {
			result.Failed++
			s.logger.Warn("broadcast delivery failed",
				zap.Int64("user_id", id), zap.Error(err))
			continue
		}
		result.Success++
	}

	if err := s.audit.SaveBroadcast(adminID, text, result); err != nil {
		s.logger.Warn("save broadcast history", zap.Int64("admin_id", adminID), zap.Error(err))
	}
	return result, nil
}
