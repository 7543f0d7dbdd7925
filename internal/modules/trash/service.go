// Package trash guarantees deletions stay recoverable until explicitly
// purged. An item is a member of exactly one of {live collection,
// trash} at any time.
package trash

import (
	"time"

	"github.com/msadmin/core/internal/models"
	"github.com/msadmin/core/internal/modules/activity"
	"github.com/msadmin/core/internal/store"
	"go.uber.org/zap"
)

// Service moves items between the live collections and the trash.
type Service struct {
	store  *store.Store
	audit  *activity.Service
	logger *zap.Logger
	now    func() time.Time
}

func NewService(st *store.Store, audit *activity.Service, logger *zap.Logger) *Service {
	return &Service{store: st, audit: audit, logger: logger, now: time.Now}
}

// SetClock overrides the deletion timestamp source (tests only).
func (s *Service) SetClock(now func() time.Time) { s.now = now }

// List returns the trash contents, newest deletion first.
func (s *Service) List() []models.TrashItem {
	items := []models.TrashItem{}
	s.store.Get(store.KeyTrash, &items)
	return items
}

// SoftDelete removes the item from its live collection and prepends it
// to the trash, stamped with its origin and deletion time. A missing id
// is a warning-level no-op so stale references (double-click delete)
// never crash a caller.
func (s *Service) SoftDelete(t models.ContentType, id, user string) error {
	key := liveKey(t)

	s.store.Lock()
	defer s.store.Unlock()

	items := []models.ContentItem{}
	s.store.Get(key, &items)

	idx := -1
	for i, it := range items {
		if it.ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		s.logger.Warn("soft delete target not found",
			zap.String("type", string(t)), zap.String("id", id))
		return nil
	}
	item := items[idx]

	live := append(items[:idx:idx], items[idx+1:]...)
	if err := s.store.Save(key, live); err != nil {
		return err
	}

	deleted := models.TrashItem{
		ContentItem:  item,
		OriginalType: t,
		DeletedAt:    s.now().UTC().Format(time.RFC3339),
	}
	bin := s.List()
	bin = append([]models.TrashItem{deleted}, bin...)
	if err := s.store.Save(store.KeyTrash, bin); err != nil {
		return err
	}

	if err := s.audit.AppendLocked(models.ActionDelete, string(t), item.Title, user); err != nil {
		s.logger.Warn("soft delete audit entry lost", zap.Error(err))
	}
	return nil
}

// Restore moves a trashed item back to the live collection it came
// from, stripping the trash-only fields. Slugs that now collide with a
// newer live item are auto-suffixed, the same rule saves follow. A
// missing id is a no-op.
func (s *Service) Restore(id, user string) error {
	s.store.Lock()
	defer s.store.Unlock()

	bin := s.List()
	idx := -1
	for i, it := range bin {
		if it.ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		s.logger.Warn("restore target not found", zap.String("id", id))
		return nil
	}
	trashed := bin[idx]

	remaining := append(bin[:idx:idx], bin[idx+1:]...)
	if err := s.store.Save(store.KeyTrash, remaining); err != nil {
		return err
	}

	key := liveKey(trashed.OriginalType)
	items := []models.ContentItem{}
	s.store.Get(key, &items)

	restored := trashed.ContentItem
	restored.Slug = models.DedupeSlug(items, restored.Slug, restored.ID)
	items = append([]models.ContentItem{restored}, items...)
	if err := s.store.Save(key, items); err != nil {
		return err
	}

	if err := s.audit.AppendLocked(models.ActionRestore, string(trashed.OriginalType), restored.Title, user); err != nil {
		s.logger.Warn("restore audit entry lost", zap.Error(err))
	}
	return nil
}

// Purge removes a trashed item permanently. Irreversible. A missing id
// is a no-op; a hit is recorded as a SYSTEM audit entry.
func (s *Service) Purge(id, user string) error {
	s.store.Lock()
	defer s.store.Unlock()

	bin := s.List()
	idx := -1
	for i, it := range bin {
		if it.ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil
	}
	title := bin[idx].Title
	entityType := string(bin[idx].OriginalType)

	remaining := append(bin[:idx:idx], bin[idx+1:]...)
	if err := s.store.Save(store.KeyTrash, remaining); err != nil {
		return err
	}

	if err := s.audit.AppendLocked(models.ActionSystem, entityType, title, user); err != nil {
		s.logger.Warn("purge audit entry lost", zap.Error(err))
	}
	return nil
}

func liveKey(t models.ContentType) string {
	if t == models.TypeCaseStudy {
		return store.KeyCaseStudies
	}
	return store.KeyArticles
}
