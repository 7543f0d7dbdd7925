// Package activity keeps the bounded admin audit feed.
package activity

import (
	"time"

	"github.com/google/uuid"
	"github.com/msadmin/core/internal/models"
	"github.com/msadmin/core/internal/store"
	"go.uber.org/zap"
)

// MaxEntries caps the feed; the oldest entries fall off the tail.
const MaxEntries = 50

// Service appends to and reads the activity log.
type Service struct {
	store  *store.Store
	logger *zap.Logger
	now    func() time.Time
}

func NewService(st *store.Store, logger *zap.Logger) *Service {
	return &Service{store: st, logger: logger, now: time.Now}
}

// SetClock overrides the timestamp source (tests only).
func (s *Service) SetClock(now func() time.Time) { s.now = now }

// Append records one audit entry, newest first, and truncates the feed
// to MaxEntries.
func (s *Service) Append(action models.ActivityAction, entityType, entityTitle, user string) error {
	s.store.Lock()
	defer s.store.Unlock()
	return s.append(action, entityType, entityTitle, user)
}

// AppendLocked is Append for callers already holding the store lock.
func (s *Service) AppendLocked(action models.ActivityAction, entityType, entityTitle, user string) error {
	return s.append(action, entityType, entityTitle, user)
}

func (s *Service) append(action models.ActivityAction, entityType, entityTitle, user string) error {
	entry := models.ActivityEntry{
		ID:          uuid.New().String(),
		Action:      action,
		EntityType:  entityType,
		EntityTitle: entityTitle,
		Timestamp:   s.now().UTC().Format(time.RFC3339),
		User:        user,
	}

	logs := []models.ActivityEntry{}
	s.store.Get(store.KeyLogs, &logs)
	logs = append([]models.ActivityEntry{entry}, logs...)
	if len(logs) > MaxEntries {
		logs = logs[:MaxEntries]
	}
	if err := s.store.Save(store.KeyLogs, logs); err != nil {
		s.logger.Error("activity append failed", zap.Error(err))
		return err
	}
	return nil
}

// Recent returns the feed, newest first.
func (s *Service) Recent() []models.ActivityEntry {
	logs := []models.ActivityEntry{}
	s.store.Get(store.KeyLogs, &logs)
	return logs
}
