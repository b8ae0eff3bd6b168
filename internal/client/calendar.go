package client

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/photoflow/photoflow/internal/models"
	"github.com/photoflow/photoflow/internal/transfer"
)

// Calendar fetches every scheduled post of the given month.
func (c *Client) Calendar(ctx context.Context, ref time.Time) ([]models.ScheduledPost, error) {
	query := url.Values{}
	query.Set("month", fmt.Sprintf("%02d", int(ref.Month())))
	query.Set("year", fmt.Sprintf("%04d", ref.Year()))

	var out transfer.CalendarResponse
	if err := c.get(ctx, "/calendar", query, &out); err != nil {
		return nil, err
	}
	return out.Calendar, nil
}

// SchedulePost binds a draft to a date and time. The backend takes these as
// query parameters rather than a body.
func (c *Client) SchedulePost(ctx context.Context, contentID, date, timeOfDay string) (*transfer.ScheduleResponse, error) {
	query := url.Values{}
	query.Set("content_id", contentID)
	query.Set("scheduled_date", date)
	query.Set("scheduled_time", timeOfDay)

	var out transfer.ScheduleResponse
	if err := c.post(ctx, "/calendar/schedule", query, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CancelSchedule removes a scheduled post by id.
func (c *Client) CancelSchedule(ctx context.Context, scheduleID string) error {
	return c.delete(ctx, "/calendar/"+scheduleID)
}
