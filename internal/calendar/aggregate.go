package calendar

import (
	"time"

	"github.com/photoflow/photoflow/internal/models"
)

// DayDisplayLimit is how many scheduled posts a day cell shows before the
// remainder collapses into a "+N more" indicator.
const DayDisplayLimit = 2

// ItemsOn returns the scheduled posts whose date equals the given day, in the
// order the backend returned them. The source slice is never mutated.
func ItemsOn(items []models.ScheduledPost, day time.Time) []models.ScheduledPost {
	key := DayKey(day)
	var out []models.ScheduledPost
	for _, it := range items {
		if it.ScheduledDate == key {
			out = append(out, it)
		}
	}
	return out
}

// DaySummary is one rendered day cell: the visible posts plus the overflow
// count behind the "+N more" indicator.
type DaySummary struct {
	Date     string                 `json:"date"`
	Visible  []models.ScheduledPost `json:"visible"`
	Overflow int                    `json:"overflow"`
}

// SummarizeDay caps a day's posts at DayDisplayLimit. Overflow is never
// negative.
func SummarizeDay(items []models.ScheduledPost, day time.Time) DaySummary {
	all := ItemsOn(items, day)
	s := DaySummary{Date: DayKey(day), Visible: all}
	if len(all) > DayDisplayLimit {
		s.Visible = all[:DayDisplayLimit]
		s.Overflow = len(all) - DayDisplayLimit
	}
	return s
}
