package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/photoflow/photoflow/internal/models"
	"github.com/photoflow/photoflow/internal/notify"
	"github.com/photoflow/photoflow/internal/transfer"
	"github.com/photoflow/photoflow/internal/viewmodel"
)

// IdeasHandler drives the ideas hub: AI content ideas plus the tips,
// content-mix and seasonal tabs.
type IdeasHandler struct {
	ideas    *viewmodel.Form[viewmodel.IdeasParams, []models.ContentIdea]
	tips     *viewmodel.Form[viewmodel.TipsParams, []models.Tip]
	mix      *viewmodel.Form[viewmodel.ContentMixParams, []models.MixIdea]
	seasonal *viewmodel.Form[viewmodel.SeasonalParams, []string]
	saver    *viewmodel.DraftSaver
	copied   *viewmodel.Clipboard
	n        *notify.Center
}

func NewIdeasHandler(
	ideas *viewmodel.Form[viewmodel.IdeasParams, []models.ContentIdea],
	tips *viewmodel.Form[viewmodel.TipsParams, []models.Tip],
	mix *viewmodel.Form[viewmodel.ContentMixParams, []models.MixIdea],
	seasonal *viewmodel.Form[viewmodel.SeasonalParams, []string],
	saver *viewmodel.DraftSaver,
	n *notify.Center) *IdeasHandler {
	return &IdeasHandler{
		ideas:    ideas,
		tips:     tips,
		mix:      mix,
		seasonal: seasonal,
		saver:    saver,
		copied:   viewmodel.NewClipboard(),
		n:        n,
	}
}

type ideasPage struct {
	Niches   []models.Niche       `json:"niches"`
	Months   []string             `json:"months"`
	Ideas    []models.ContentIdea `json:"ideas"`
	Cards    []models.Card        `json:"cards"`
	Tips     []models.Card        `json:"tips"`
	Mix      []models.Card        `json:"mix"`
	Seasonal []string             `json:"seasonal"`
	CopiedID string               `json:"copied_id,omitempty"`
	Loading  bool                 `json:"loading"`
}

func (h *IdeasHandler) page() ideasPage {
	p := ideasPage{
		Niches:   models.Niches(),
		Months:   models.MonthNames(),
		CopiedID: h.copied.CopiedID(),
		Loading:  h.ideas.Loading(),
	}
	if ideas, ok := h.ideas.Result(); ok {
		p.Ideas = ideas
		p.Cards = models.Cards(ideas)
	}
	if tips, ok := h.tips.Result(); ok {
		p.Tips = models.Cards(tips)
	}
	if mix, ok := h.mix.Result(); ok {
		p.Mix = models.Cards(mix)
	}
	if seasonal, ok := h.seasonal.Result(); ok {
		p.Seasonal = seasonal
	}
	return p
}

func (h *IdeasHandler) GetIdeasPage(c *fiber.Ctx) error {
	return respond(c, h.n, h.page())
}

func (h *IdeasHandler) GenerateIdeas(c *fiber.Ctx) error {
	var in struct {
		Niche models.Niche `json:"niche"`
		Count float64      `json:"count"`
	}
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "Unable to parse form")
	}
	h.ideas.Update(func(p *viewmodel.IdeasParams) {
		p.Niche = in.Niche
		if in.Count > 0 {
			p.Count = viewmodel.ClampCount(in.Count)
		}
	})
	h.ideas.Generate(c.Context())
	return respond(c, h.n, h.page())
}

func (h *IdeasHandler) GenerateTips(c *fiber.Ctx) error {
	var in struct {
		Category models.TipCategory `json:"category"`
		Count    float64            `json:"count"`
	}
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "Unable to parse form")
	}
	h.tips.Update(func(p *viewmodel.TipsParams) {
		p.Category = in.Category
		if in.Count > 0 {
			p.Count = viewmodel.ClampCount(in.Count)
		}
	})
	h.tips.Generate(c.Context())
	return respond(c, h.n, h.page())
}

func (h *IdeasHandler) GenerateContentMix(c *fiber.Ctx) error {
	var in struct {
		Niche models.Niche `json:"niche"`
		Count float64      `json:"count"`
	}
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "Unable to parse form")
	}
	h.mix.Update(func(p *viewmodel.ContentMixParams) {
		p.Niche = in.Niche
		if in.Count > 0 {
			p.Count = viewmodel.ClampCount(in.Count)
		}
	})
	h.mix.Generate(c.Context())
	return respond(c, h.n, h.page())
}

// GetSeasonal loads the seasonal suggestions for a month name.
func (h *IdeasHandler) GetSeasonal(c *fiber.Ctx) error {
	month := c.Query("month")
	h.seasonal.Update(func(p *viewmodel.SeasonalParams) { p.Month = month })
	h.seasonal.Generate(c.Context())
	return respond(c, h.n, h.page())
}

// SaveIdea converts one displayed idea into a draft, fire-and-forget. The
// idea must be one of the currently displayed results.
func (h *IdeasHandler) SaveIdea(c *fiber.Ctx) error {
	var in struct {
		ID string `json:"id"`
	}
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "Unable to parse form")
	}
	ideas, ok := h.ideas.Result()
	if !ok {
		return badRequest(c, "No ideas to save")
	}
	for _, idea := range ideas {
		if idea.ID == in.ID {
			h.saver.SaveAsync(transfer.ContentCreate{
				Title:    idea.Title,
				Caption:  idea.SuggestedCaption,
				Hashtags: idea.SuggestedHashtags,
				Niche:    idea.Niche,
				Status:   models.StatusDraft,
			})
			return respond(c, h.n, h.page())
		}
	}
	return badRequest(c, "Unknown idea")
}

// Copy marks one card as copied; the affordance self-clears.
func (h *IdeasHandler) Copy(c *fiber.Ctx) error {
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
