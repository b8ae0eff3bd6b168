package models

import "time"

type ScheduleStatus string

const (
	SchedulePending   ScheduleStatus = "pending"
	SchedulePublished ScheduleStatus = "published"
	ScheduleCancelled ScheduleStatus = "cancelled"
)

// ScheduledPost binds a content draft to a calendar date and time. It is never
// mutated in place; any change is a cancel followed by a new schedule.
type ScheduledPost struct {
	ID            string         `json:"id"`
	ContentID     string         `json:"content_id"`
	Content       *ContentDraft  `json:"content,omitempty"`
	ScheduledDate string         `json:"scheduled_date"` // YYYY-MM-DD
	ScheduledTime string         `json:"scheduled_time"` // HH:MM, 24-hour
	Status        ScheduleStatus `json:"status"`
	CreatedAt     time.Time      `json:"created_at"`
}

// Title is the display title for a calendar cell.
func (p *ScheduledPost) Title() string {
	if p.Content != nil && p.Content.Title != "" {
		return p.Content.Title
	}
	return "Scheduled"
}
