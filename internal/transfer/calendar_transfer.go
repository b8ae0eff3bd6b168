package transfer

import "github.com/photoflow/photoflow/internal/models"

type CalendarResponse struct {
	Calendar []models.ScheduledPost `json:"calendar"`
}

type ScheduleResponse struct {
	Message       string                `json:"message"`
	ScheduledPost *models.ScheduledPost `json:"scheduled_post,omitempty"`
}
