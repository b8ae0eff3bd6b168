package viewmodel

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"github.com/photoflow/photoflow/internal/client"
	"github.com/photoflow/photoflow/internal/models"
	"github.com/photoflow/photoflow/internal/notify"
	"github.com/photoflow/photoflow/internal/transfer"
)

// Creator is the create-content page: a caption form and an image form side
// by side, plus the title and the save action that turns the pair into a
// draft.
type Creator struct {
	Caption *Form[CaptionParams, *transfer.CaptionResponse]
	Image   *Form[ImageParams, *GeneratedImage]

	mu       sync.Mutex
	title    string
	saving   bool
	api      *client.Client
	notifier *notify.Center
}

func NewCreator(api *client.Client, n *notify.Center) *Creator {
	return &Creator{
		Caption:  NewCaptionForm(api, n),
		Image:    NewImageForm(api, n),
		api:      api,
		notifier: n,
	}
}

func (c *Creator) SetTitle(title string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.title = title
}

func (c *Creator) Title() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.title
}

func (c *Creator) Saving() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.saving
}

// Save persists the generated caption (and image, when present) as a draft.
// Requires a title and a generated caption; on success every field of the
// page resets, on failure everything stays for another attempt.
func (c *Creator) Save(ctx context.Context) {
	caption, hasCaption := c.Caption.Result()

	c.mu.Lock()
	if c.saving {
		c.mu.Unlock()
		return
	}
	title := c.title
	if strings.TrimSpace(title) == "" || !hasCaption {
		c.mu.Unlock()
		c.notifier.Error("Please add a title and generate a caption first")
		return
	}
	c.saving = true
	c.mu.Unlock()

	draft := transfer.ContentCreate{
		Title:    title,
		Caption:  caption.Caption,
		Hashtags: caption.Hashtags,
		Niche:    c.Caption.Params().Niche,
		Status:   models.StatusDraft,
	}
	if img, ok := c.Image.Result(); ok {
		draft.MediaURL = img.DataURL
		draft.MediaType = "ai_generated"
	}

	_, err := c.api.CreateContent(ctx, draft)

	c.mu.Lock()
	c.saving = false
	if err != nil {
		c.mu.Unlock()
		slog.Info(err.Error())
		c.notifier.Error("Failed to save content")
		return
	}
	c.title = ""
	c.mu.Unlock()

	c.Caption.Reset(CaptionParams{Niche: models.NicheWedding, Tone: models.ToneProfessional, IncludeCTA: true})
	c.Image.Reset(ImageParams{
		Niche:    models.NicheWedding,
		Provider: models.ProviderGemini,
		Style:    "professional photography, high quality",
	})
	c.notifier.Success("Content saved as draft!")
}

// ClearImage discards the generated image without touching the caption.
func (c *Creator) ClearImage() {
	params := c.Image.Params()
	params.Prompt = ""
	c.Image.Reset(params)
}
