package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/photoflow/photoflow/internal/notify"
	"github.com/photoflow/photoflow/internal/viewmodel"
)

type CalendarHandler struct {
	vm *viewmodel.CalendarView
	n  *notify.Center
}

func NewCalendarHandler(vm *viewmodel.CalendarView, n *notify.Center) *CalendarHandler {
	return &CalendarHandler{vm: vm, n: n}
}

// GetCalendar refreshes and returns the month grid.
func (h *CalendarHandler) GetCalendar(c *fiber.Ctx) error {
	h.vm.Refresh(c.Context())
	return respond(c, h.n, h.vm.Page())
}

// Navigate moves one month back or forward.
func (h *CalendarHandler) Navigate(c *fiber.Ctx) error {
	var in struct {
		Direction string `json:"direction"` // "prev" | "next"
	}
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "Unable to parse form")
	}
	switch in.Direction {
	case "prev":
		h.vm.Navigate(c.Context(), -1)
	case "next":
		h.vm.Navigate(c.Context(), 1)
	default:
		return badRequest(c, "Unknown direction")
	}
	return respond(c, h.n, h.vm.Page())
}

// OpenDialog starts scheduling for a clicked day.
func (h *CalendarHandler) OpenDialog(c *fiber.Ctx) error {
	var in struct {
		Date string `json:"date"` // YYYY-MM-DD
	}
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "Unable to parse form")
	}
	day, err := time.Parse("2006-01-02", in.Date)
	if err != nil {
		return badRequest(c, "Invalid date")
	}
	h.vm.OpenDialog(day)
	return respond(c, h.n, h.vm.Page())
}

func (h *CalendarHandler) CloseDialog(c *fiber.Ctx) error {
	h.vm.CloseDialog()
	return respond(c, h.n, h.vm.Page())
}

// Schedule confirms the dialog.
func (h *CalendarHandler) Schedule(c *fiber.Ctx) error {
	var in struct {
		ContentID string `json:"content_id"`
		Time      string `json:"time"`
	}
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "Unable to parse form")
	}
	h.vm.Select(in.ContentID, in.Time)
	h.vm.Schedule(c.Context())
	return respond(c, h.n, h.vm.Page())
}

// CancelSchedule removes one scheduled post.
func (h *CalendarHandler) CancelSchedule(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return badRequest(c, "Missing schedule id")
	}
	h.vm.Cancel(c.Context(), id)
	return respond(c, h.n, h.vm.Page())
}

// ViewItem opens the detail of one fetched schedule; no network involved.
func (h *CalendarHandler) ViewItem(c *fiber.Ctx) error {
	item := h.vm.View(c.Params("id"))
	if item == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Scheduled post not found",
		})
	}
	return respond(c, h.n, item)
}
