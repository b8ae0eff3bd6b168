package handlers

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"github.com/photoflow/photoflow/internal/client"
	"github.com/photoflow/photoflow/internal/models"
	"github.com/photoflow/photoflow/internal/notify"
	"github.com/photoflow/photoflow/internal/viewmodel"
)

// GrowthHandler drives the growth toolkit: viral hooks, reel ideas, client
// magnets and the CTA template library.
type GrowthHandler struct {
	hooks  *viewmodel.Form[viewmodel.HooksParams, []models.ViralHook]
	reels  *viewmodel.Form[viewmodel.ReelsParams, []models.ReelIdea]
	magnet *viewmodel.Form[viewmodel.MagnetParams, *models.ClientMagnet]
	api    *client.Client
	copied *viewmodel.Clipboard
	n      *notify.Center
}

func NewGrowthHandler(
	hooks *viewmodel.Form[viewmodel.HooksParams, []models.ViralHook],
	reels *viewmodel.Form[viewmodel.ReelsParams, []models.ReelIdea],
	magnet *viewmodel.Form[viewmodel.MagnetParams, *models.ClientMagnet],
	api *client.Client,
	n *notify.Center) *GrowthHandler {
	return &GrowthHandler{
		hooks:  hooks,
		reels:  reels,
		magnet: magnet,
		api:    api,
		copied: viewmodel.NewClipboard(),
		n:      n,
	}
}

type growthPage struct {
	Niches      []models.Niche        `json:"niches"`
	HookTypes   []models.HookType     `json:"hook_types"`
	Categories  []models.ReelCategory `json:"reel_categories"`
	MagnetTypes []models.MagnetType   `json:"magnet_types"`
	CTATypes    []models.CTAType      `json:"cta_types"`
	Hooks       []models.Card         `json:"hooks"`
	Reels       []models.Card         `json:"reels"`
	Magnet      *models.Card          `json:"magnet,omitempty"`
	CopiedID    string                `json:"copied_id,omitempty"`
}

func (h *GrowthHandler) page() growthPage {
	p := growthPage{
		Niches:      models.Niches(),
		HookTypes:   models.HookTypes(),
		Categories:  models.ReelCategories(),
		MagnetTypes: models.MagnetTypes(),
		CTATypes:    models.CTATypes(),
		CopiedID:    h.copied.CopiedID(),
	}
	if hooks, ok := h.hooks.Result(); ok {
		p.Hooks = models.Cards(hooks)
	}
	if reels, ok := h.reels.Result(); ok {
		p.Reels = models.Cards(reels)
	}
	if magnet, ok := h.magnet.Result(); ok && magnet != nil {
		card := magnet.Card()
		p.Magnet = &card
	}
	return p
}

func (h *GrowthHandler) GetGrowthPage(c *fiber.Ctx) error {
	return respond(c, h.n, h.page())
}

func (h *GrowthHandler) GenerateHooks(c *fiber.Ctx) error {
	var in struct {
		HookType models.HookType `json:"hook_type"`
		Niche    models.Niche    `json:"niche"`
		Count    float64         `json:"count"`
	}
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "Unable to parse form")
	}
	h.hooks.Update(func(p *viewmodel.HooksParams) {
		p.HookType = in.HookType
		p.Niche = in.Niche
		if in.Count > 0 {
			p.Count = viewmodel.ClampCount(in.Count)
		}
	})
	h.hooks.Generate(c.Context())
	return respond(c, h.n, h.page())
}

func (h *GrowthHandler) GenerateReels(c *fiber.Ctx) error {
	var in struct {
		Category models.ReelCategory `json:"category"`
		Niche    models.Niche        `json:"niche"`
		Count    float64             `json:"count"`
	}
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "Unable to parse form")
	}
	h.reels.Update(func(p *viewmodel.ReelsParams) {
		p.Category = in.Category
		p.Niche = in.Niche
		if in.Count > 0 {
			p.Count = viewmodel.ClampCount(in.Count)
		}
	})
	h.reels.Generate(c.Context())
	return respond(c, h.n, h.page())
}

func (h *GrowthHandler) GenerateMagnet(c *fiber.Ctx) error {
	var in struct {
		TemplateType models.MagnetType `json:"template_type"`
		Niche        models.Niche      `json:"niche"`
		ClientName   string            `json:"client_name"`
	}
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "Unable to parse form")
	}
	h.magnet.Update(func(p *viewmodel.MagnetParams) {
		p.TemplateType = in.TemplateType
		p.Niche = in.Niche
		p.ClientName = in.ClientName
	})
	h.magnet.Generate(c.Context())
	return respond(c, h.n, h.page())
}

// GetCTATemplates loads the ready-made call-to-action library directly; it is
// a static lookup rather than a generation, so no form state is kept.
func (h *GrowthHandler) GetCTATemplates(c *fiber.Ctx) error {
	ctaType := models.CTAType(c.Params("type"))
	templates, err := h.api.CTATemplates(c.Context(), ctaType)
	if err != nil {
		slog.Info("cta templates load failed", "type", ctaType, "error", err)
		h.n.Error("Failed to load CTA templates")
		return respond(c, h.n, h.page())
	}
	return respond(c, h.n, fiber.Map{"type": ctaType, "templates": templates})
}

func (h *GrowthHandler) Copy(c *fiber.Ctx) error {
	var in struct {
		ID string `json:"id"`
	}
	if err := c.BodyParser(&in); err != nil || in.ID == "" {
		return badRequest(c, "Missing card id")
	}
	h.copied.Copy(in.ID)
	h.n.Success("Caption copied to clipboard!")
	return respond(c, h.n, h.page())
}
