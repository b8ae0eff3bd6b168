package viewmodel

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/photoflow/photoflow/internal/calendar"
	"github.com/photoflow/photoflow/internal/client"
	"github.com/photoflow/photoflow/internal/models"
	"github.com/photoflow/photoflow/internal/notify"
)

// upcomingLimit caps the upcoming-posts list under the grid.
const upcomingLimit = 6

// DialogState is the scheduling dialog's lifecycle: Closed -> Open(date) ->
// back to Closed when a create succeeds, staying Open with input intact when
// it fails.
type DialogState string

const (
	DialogClosed DialogState = "closed"
	DialogOpen   DialogState = "open"
)

// CalendarView is the calendar page: the displayed month, the last consistent
// (schedule, draft pool) pair, and the scheduling dialog. The two collections
// are always fetched together and swapped atomically; if either fetch fails
// the prior pair stays on screen.
type CalendarView struct {
	api      *client.Client
	notifier *notify.Center

	mu      sync.Mutex
	ref     time.Time
	items   []models.ScheduledPost
	drafts  []models.ContentDraft
	loading bool
	// fetchSeq fences overlapping refreshes: a response whose sequence is no
	// longer current is discarded, so the last initiated navigation wins.
	fetchSeq uint64

	dialog          DialogState
	selectedDate    time.Time
	selectedContent string
	selectedTime    string

	detail *models.ScheduledPost
}

func NewCalendarView(api *client.Client, n *notify.Center, now time.Time) *CalendarView {
	return &CalendarView{
		api:          api,
		notifier:     n,
		ref:          now,
		dialog:       DialogClosed,
		selectedTime: "09:00",
	}
}

// Refresh fetches the displayed month's schedule and the draft pool together.
func (v *CalendarView) Refresh(ctx context.Context) {
	v.mu.Lock()
	v.fetchSeq++
	seq := v.fetchSeq
	ref := v.ref
	v.loading = true
	v.mu.Unlock()

	items, itemsErr := v.api.Calendar(ctx, ref)
	drafts, draftsErr := v.api.ListContent(ctx, models.StatusDraft)

	v.mu.Lock()
	defer v.mu.Unlock()
	if seq != v.fetchSeq {
		return // a newer refresh owns the view now
	}
	v.loading = false
	if itemsErr != nil || draftsErr != nil {
		if itemsErr != nil {
			slog.Info(itemsErr.Error())
		}
		if draftsErr != nil {
			slog.Info(draftsErr.Error())
		}
		return // keep the prior consistent pair
	}
	v.items = items
	v.drafts = drafts
}

func (v *CalendarView) Loading() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.loading
}

func (v *CalendarView) Reference() time.Time {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.ref
}

// Navigate moves the displayed month by delta and refreshes. Day-of-month is
// preserved where the target month has it.
func (v *CalendarView) Navigate(ctx context.Context, delta int) {
	v.mu.Lock()
	v.ref = calendar.AddMonths(v.ref, delta)
	v.mu.Unlock()
	v.Refresh(ctx)
}

// OpenDialog starts scheduling for the clicked day.
func (v *CalendarView) OpenDialog(date time.Time) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.dialog = DialogOpen
	v.selectedDate = date
}

// CloseDialog dismisses the dialog without scheduling.
func (v *CalendarView) CloseDialog() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.dialog = DialogClosed
}

// Select records the dialog's draft and time choices.
func (v *CalendarView) Select(contentID, timeOfDay string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if contentID != "" {
		v.selectedContent = contentID
	}
	if timeOfDay != "" {
		v.selectedTime = timeOfDay
	}
}

func (v *CalendarView) Dialog() (DialogState, time.Time, string, string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.dialog, v.selectedDate, v.selectedContent, v.selectedTime
}

// Schedule creates a ScheduledPost from the dialog's selections. Validation
// failures raise a notification without any network call and leave the dialog
// open with input intact; so does an API failure. Success closes the dialog,
// clears the draft selection and refreshes the whole month.
func (v *CalendarView) Schedule(ctx context.Context) {
	v.mu.Lock()
	if v.dialog != DialogOpen || v.selectedContent == "" || v.selectedDate.IsZero() {
		v.mu.Unlock()
		v.notifier.Error("Please select content to schedule")
		return
	}
	contentID := v.selectedContent
	date := calendar.DayKey(v.selectedDate)
	timeOfDay := v.selectedTime
	known := false
	for _, d := range v.drafts {
		if d.ID == contentID {
			known = true
			break
		}
	}
	v.mu.Unlock()

	if !known {
		v.notifier.Error("Please select content to schedule")
		return
	}
	if _, err := time.Parse("15:04", timeOfDay); err != nil {
		v.notifier.Error("Please enter a valid time")
		return
	}

	if _, err := v.api.SchedulePost(ctx, contentID, date, timeOfDay); err != nil {
		slog.Info(err.Error())
		v.notifier.Error("Failed to schedule post")
		return
	}

	v.mu.Lock()
	v.dialog = DialogClosed
	v.selectedContent = ""
	v.mu.Unlock()

	v.notifier.Success("Post scheduled successfully!")
	v.Refresh(ctx)
}

// Cancel removes a scheduled post. No optimistic removal: the item stays
// visible until the refresh after a successful cancel.
func (v *CalendarView) Cancel(ctx context.Context, scheduleID string) {
	if err := v.api.CancelSchedule(ctx, scheduleID); err != nil {
		slog.Info(err.Error())
		v.notifier.Error("Failed to cancel scheduled post")
		return
	}
	v.notifier.Success("Scheduled post cancelled")
	v.Refresh(ctx)
}

// View opens the detail of one fetched item. Pure read, no network.
func (v *CalendarView) View(scheduleID string) *models.ScheduledPost {
	v.mu.Lock()
	defer v.mu.Unlock()
	for i := range v.items {
		if v.items[i].ID == scheduleID {
			v.detail = &v.items[i]
			return v.detail
		}
	}
	return nil
}

func (v *CalendarView) Detail() *models.ScheduledPost {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.detail
}

// visibleLocked filters out cancelled schedules; the backend keeps them for
// history, the calendar does not show them.
func (v *CalendarView) visibleLocked() []models.ScheduledPost {
	out := make([]models.ScheduledPost, 0, len(v.items))
	for _, it := range v.items {
		if it.Status != models.ScheduleCancelled {
			out = append(out, it)
		}
	}
	return out
}

// MonthPage is the assembled calendar page state.
type MonthPage struct {
	Month         string                 `json:"month"` // "January 2026"
	LeadingBlanks int                    `json:"leading_blanks"`
	Days          []calendar.DaySummary  `json:"days"`
	Upcoming      []models.ScheduledPost `json:"upcoming"`
	Drafts        []models.ContentDraft  `json:"drafts"`
	Loading       bool                   `json:"loading"`
	Dialog        DialogState            `json:"dialog"`
	SelectedDate  string                 `json:"selected_date,omitempty"`
	SelectedTime  string                 `json:"selected_time"`
}

// Page lays the current state out as a 7-column month grid plus the upcoming
// list (pending schedules only, capped).
func (v *CalendarView) Page() MonthPage {
	v.mu.Lock()
	defer v.mu.Unlock()

	visible := v.visibleLocked()
	days := calendar.Days(v.ref)
	summaries := make([]calendar.DaySummary, 0, len(days))
	for _, day := range days {
		summaries = append(summaries, calendar.SummarizeDay(visible, day))
	}

	var upcoming []models.ScheduledPost
	for _, it := range visible {
		if it.Status == models.SchedulePending {
			upcoming = append(upcoming, it)
			if len(upcoming) == upcomingLimit {
				break
			}
		}
	}

	page := MonthPage{
		Month:         v.ref.Format("January 2006"),
		LeadingBlanks: calendar.LeadingBlanks(v.ref),
		Days:          summaries,
		Upcoming:      upcoming,
		Drafts:        v.drafts,
		Loading:       v.loading,
		Dialog:        v.dialog,
		SelectedTime:  v.selectedTime,
	}
	if v.dialog == DialogOpen {
		page.SelectedDate = calendar.DayKey(v.selectedDate)
	}
	return page
}
