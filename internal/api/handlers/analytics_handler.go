package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/photoflow/photoflow/internal/notify"
	"github.com/photoflow/photoflow/internal/viewmodel"
)

type AnalyticsHandler struct {
	vm *viewmodel.AnalyticsView
	n  *notify.Center
}

func NewAnalyticsHandler(vm *viewmodel.AnalyticsView, n *notify.Center) *AnalyticsHandler {
	return &AnalyticsHandler{vm: vm, n: n}
}

func (h *AnalyticsHandler) GetAnalytics(c *fiber.Ctx) error {
	h.vm.Load(c.Context())
	return respond(c, h.n, h.vm.Page())
}
