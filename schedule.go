// Package invis turns the articles CSV into the blog's article collection
// and derives the listing and single-article views from it.
package invis

import (
	"time"

	"github.com/vimldn/invis/models"
)

// DefaultPerDay is how many articles share one publish date
const DefaultPerDay = 3

// DefaultEpoch is the publish date of the first article
var DefaultEpoch = time.Date(2026, time.February, 10, 0, 0, 0, 0, time.UTC)

// Schedule synthesizes publish dates from an article's position
type Schedule struct {
	Epoch  time.Time // Midnight of the first publish day
	PerDay int       // Articles per day
}

// DefaultSchedule returns the site's publishing cadence
func DefaultSchedule() Schedule {
	return Schedule{Epoch: DefaultEpoch, PerDay: DefaultPerDay}
}

// DateFor returns Epoch + floor(index/PerDay) calendar days
func (s Schedule) DateFor(index int) time.Time {
	perDay := s.PerDay
	if perDay <= 0 {
		perDay = DefaultPerDay
	}
	return s.Epoch.AddDate(0, 0, index/perDay)
}

// Published keeps the articles whose publish date is not after now
func Published(articles []models.Article, now time.Time) []models.Article {
	out := make([]models.Article, 0, len(articles))
	for _, a := range articles {
		if !a.PublishDate.After(now) {
			out = append(out, a)
		}
	}
	return out
}
