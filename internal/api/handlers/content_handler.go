package handlers

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"github.com/photoflow/photoflow/internal/client"
	"github.com/photoflow/photoflow/internal/models"
	"github.com/photoflow/photoflow/internal/notify"
	"github.com/photoflow/photoflow/internal/transfer"
	"github.com/photoflow/photoflow/internal/viewmodel"
)

// ContentHandler drives the create-content page: the caption and image forms
// plus the save-as-draft action and the curated hashtag lookup.
type ContentHandler struct {
	creator *viewmodel.Creator
	api     *client.Client
	n       *notify.Center
}

func NewContentHandler(creator *viewmodel.Creator, api *client.Client, n *notify.Center) *ContentHandler {
	return &ContentHandler{creator: creator, api: api, n: n}
}

type creatorPage struct {
	Title   string                    `json:"title"`
	Niches  []models.Niche            `json:"niches"`
	Tones   []models.Tone             `json:"tones"`
	Caption *transfer.CaptionResponse `json:"caption,omitempty"`
	Image   *viewmodel.GeneratedImage `json:"image,omitempty"`
	Busy    creatorBusy               `json:"busy"`
}

type creatorBusy struct {
	Caption bool `json:"caption"`
	Image   bool `json:"image"`
	Save    bool `json:"save"`
}

func (h *ContentHandler) page() creatorPage {
	p := creatorPage{
		Title:  h.creator.Title(),
		Niches: models.Niches(),
		Tones:  models.Tones(),
		Busy: creatorBusy{
			Caption: h.creator.Caption.Loading(),
			Image:   h.creator.Image.Loading(),
			Save:    h.creator.Saving(),
		},
	}
	if caption, ok := h.creator.Caption.Result(); ok {
		p.Caption = caption
	}
	if image, ok := h.creator.Image.Result(); ok {
		p.Image = image
	}
	return p
}

func (h *ContentHandler) GetCreatePage(c *fiber.Ctx) error {
	return respond(c, h.n, h.page())
}

type captionInput struct {
	Title      string       `json:"title"`
	Niche      models.Niche `json:"niche"`
	Topic      string       `json:"topic"`
	Tone       models.Tone  `json:"tone"`
	IncludeCTA bool         `json:"include_cta"`
}

func (h *ContentHandler) GenerateCaption(c *fiber.Ctx) error {
	var in captionInput
	if err := c.BodyParser(&in); err != nil {
		slog.Error(err.Error())
		return badRequest(c, "Unable to parse form")
	}

	h.creator.SetTitle(in.Title)
	h.creator.Caption.Update(func(p *viewmodel.CaptionParams) {
		p.Niche = in.Niche
		p.Topic = in.Topic
		p.Tone = in.Tone
		p.IncludeCTA = in.IncludeCTA
	})
	h.creator.Caption.Generate(c.Context())
	return respond(c, h.n, h.page())
}

type imageInput struct {
	Prompt   string               `json:"prompt"`
	Niche    models.Niche         `json:"niche"`
	Provider models.ImageProvider `json:"provider"`
}

func (h *ContentHandler) GenerateImage(c *fiber.Ctx) error {
	var in imageInput
	if err := c.BodyParser(&in); err != nil {
		slog.Error(err.Error())
		return badRequest(c, "Unable to parse form")
	}

	h.creator.Image.Update(func(p *viewmodel.ImageParams) {
		p.Prompt = in.Prompt
		if in.Niche != "" {
			p.Niche = in.Niche
		}
		if in.Provider != "" {
			p.Provider = in.Provider
		}
	})
	h.creator.Image.Generate(c.Context())
	return respond(c, h.n, h.page())
}

func (h *ContentHandler) SaveContent(c *fiber.Ctx) error {
	var in struct {
		Title string `json:"title"`
	}
	if err := c.BodyParser(&in); err == nil && in.Title != "" {
		h.creator.SetTitle(in.Title)
	}
	h.creator.Save(c.Context())
	return respond(c, h.n, h.page())
}

func (h *ContentHandler) ClearImage(c *fiber.Ctx) error {
	h.creator.ClearImage()
	return respond(c, h.n, h.page())
}

// GetNicheHashtags returns the curated hashtag set for one niche, used to pad
// a generated caption before saving.
func (h *ContentHandler) GetNicheHashtags(c *fiber.Ctx) error {
	niche := models.Niche(c.Params("niche"))
	if !niche.Valid() {
		return badRequest(c, "Unknown niche")
	}
	hashtags, err := h.api.NicheHashtags(c.Context(), niche)
	if err != nil {
		slog.Info(err.Error())
		h.n.Error("Failed to load hashtags")
		return respond(c, h.n, h.page())
	}
	return respond(c, h.n, fiber.Map{"niche": niche, "hashtags": hashtags})
}
