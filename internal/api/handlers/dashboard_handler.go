package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/photoflow/photoflow/internal/notify"
	"github.com/photoflow/photoflow/internal/viewmodel"
)

type DashboardHandler struct {
	vm *viewmodel.DashboardView
	n  *notify.Center
}

func NewDashboardHandler(vm *viewmodel.DashboardView, n *notify.Center) *DashboardHandler {
	return &DashboardHandler{vm: vm, n: n}
}

// GetDashboard refreshes and returns the landing page. A failed fetch keeps
// the previously displayed data.
func (h *DashboardHandler) GetDashboard(c *fiber.Ctx) error {
	h.vm.Load(c.Context())
	return respond(c, h.n, h.vm.Page())
}
