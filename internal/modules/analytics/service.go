// Package analytics keeps coarse per-day page-view counters with a
// bounded retention window.
package analytics

import (
	"sort"
	"time"

	"github.com/msadmin/core/internal/models"
	"github.com/msadmin/core/internal/store"
	"go.uber.org/zap"
)

// RetentionDays bounds the day map; the chronologically earliest day is
// dropped once the window overflows.
const RetentionDays = 30

// dayFormat buckets views per UTC calendar day.
const dayFormat = "2006-01-02"

// Service tracks and reads page views.
type Service struct {
	store  *store.Store
	logger *zap.Logger
	now    func() time.Time
}

func NewService(st *store.Store, logger *zap.Logger) *Service {
	return &Service{store: st, logger: logger, now: time.Now}
}

// SetClock overrides the day source (tests only).
func (s *Service) SetClock(now func() time.Time) { s.now = now }

// TrackView increments today's counter, creating the day at 1, then
// prunes beyond the retention window.
func (s *Service) TrackView() error {
	s.store.Lock()
	defer s.store.Unlock()

	days := map[string]int{}
	s.store.Get(store.KeyAnalytics, &days)

	today := s.now().UTC().Format(dayFormat)
	days[today]++

	if len(days) > RetentionDays {
		earliest := ""
		for d := range days {
			if earliest == "" || d < earliest {
				earliest = d
			}
		}
		delete(days, earliest)
	}

	return s.store.Save(store.KeyAnalytics, days)
}

// History returns the retained days in chronological ascending order.
func (s *Service) History() []models.AnalyticsDay {
	days := map[string]int{}
	s.store.Get(store.KeyAnalytics, &days)

	out := make([]models.AnalyticsDay, 0, len(days))
	for d, v := range days {
		out = append(out, models.AnalyticsDay{Date: d, Views: v})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}

// TotalViews sums the counts over all retained days.
func (s *Service) TotalViews() int {
	days := map[string]int{}
	s.store.Get(store.KeyAnalytics, &days)

	total := 0
	for _, v := range days {
		total += v
	}
	return total
}
