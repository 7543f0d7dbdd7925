// Package content is the repository for the two live collections.
// Deletion lives in the trash module so every removal stays
// recoverable.
package content

import (
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/msadmin/core/internal/models"
	"github.com/msadmin/core/internal/modules/activity"
	"github.com/msadmin/core/internal/store"
	"go.uber.org/zap"
)

// Service exposes collection-level CRUD over articles and case studies.
type Service struct {
	store  *store.Store
	audit  *activity.Service
	logger *zap.Logger
}

func NewService(st *store.Store, audit *activity.Service, logger *zap.Logger) *Service {
	return &Service{store: st, audit: audit, logger: logger}
}

// ListArticles returns the live article collection, newest first.
// Drafts are included only when includeDrafts is set.
func (s *Service) ListArticles(includeDrafts bool) []models.Article {
	items := s.list(store.KeyArticles, includeDrafts)
	out := make([]models.Article, len(items))
	for i, it := range items {
		out[i] = it.AsArticle()
	}
	return out
}

// ListCaseStudies returns the live case-study collection, newest first.
func (s *Service) ListCaseStudies(includeDrafts bool) []models.CaseStudy {
	items := s.list(store.KeyCaseStudies, includeDrafts)
	out := make([]models.CaseStudy, len(items))
	for i, it := range items {
		out[i] = it.AsCaseStudy()
	}
	return out
}

// GetBySlug finds an item in the given collection by slug. The first
// match wins. Returns nil when absent or when the item is a draft and
// includeDrafts is unset.
func (s *Service) GetBySlug(t models.ContentType, slug string, includeDrafts bool) *models.ContentItem {
	for _, it := range s.list(keyFor(t), includeDrafts) {
		if it.Slug == slug {
			found := it
			return &found
		}
	}
	return nil
}

// GetByID finds an item in the given collection by id.
func (s *Service) GetByID(t models.ContentType, id string) *models.ContentItem {
	for _, it := range s.list(keyFor(t), true) {
		if it.ID == id {
			found := it
			return &found
		}
	}
	return nil
}

// Save inserts or replaces one item in the collection named by t. An
// existing id is replaced in place (UPDATE); otherwise the item gets a
// fresh UUID and is prepended (CREATE). Slugs colliding with a
// different live item are auto-suffixed rather than rejected. Exactly
// one audit entry is written per save.
func (s *Service) Save(t models.ContentType, item models.ContentItem, user string) (models.ContentItem, models.ActivityAction, error) {
	key := keyFor(t)

	s.store.Lock()
	defer s.store.Unlock()

	items := []models.ContentItem{}
	s.store.Get(key, &items)

	action := models.ActionCreate
	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	if item.Slug == "" {
		item.Slug = Slugify(item.Title)
	}
	if item.Date == "" {
		item.Date = time.Now().UTC().Format("2006-01-02")
	}
	item.Slug = models.DedupeSlug(items, item.Slug, item.ID)

	idx := -1
	for i, it := range items {
		if it.ID == item.ID {
			idx = i
			break
		}
	}
	if idx >= 0 {
		items[idx] = item
		action = models.ActionUpdate
	} else {
		items = append([]models.ContentItem{item}, items...)
	}

	if err := s.store.Save(key, items); err != nil {
		return models.ContentItem{}, action, err
	}
	if err := s.audit.AppendLocked(action, string(t), item.Title, user); err != nil {
		s.logger.Warn("content save audit entry lost", zap.Error(err))
	}
	return item, action, nil
}

func (s *Service) list(key string, includeDrafts bool) []models.ContentItem {
	items := []models.ContentItem{}
	s.store.Get(key, &items)
	if includeDrafts {
		return items
	}
	published := items[:0:0]
	for _, it := range items {
		if it.Status == models.StatusPublished {
			published = append(published, it)
		}
	}
	return published
}

func keyFor(t models.ContentType) string {
	if t == models.TypeCaseStudy {
		return store.KeyCaseStudies
	}
	return store.KeyArticles
}

var slugStrip = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify derives a URL-safe identifier from a title.
func Slugify(title string) string {
	slug := slugStrip.ReplaceAllString(strings.ToLower(title), "-")
	return strings.Trim(slug, "-")
}
