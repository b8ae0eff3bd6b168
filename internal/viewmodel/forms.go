package viewmodel

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"github.com/h2non/filetype"

	"github.com/photoflow/photoflow/internal/client"
	"github.com/photoflow/photoflow/internal/models"
	"github.com/photoflow/photoflow/internal/notify"
	"github.com/photoflow/photoflow/internal/transfer"
)

// Concrete generation forms, one per page section. Defaults mirror the
// original UI: wedding niche, professional tone, five results, gemini.

type CaptionParams struct {
	Niche      models.Niche `json:"niche"`
	Topic      string       `json:"topic"`
	Tone       models.Tone  `json:"tone"`
	IncludeCTA bool         `json:"include_cta"`
}

func NewCaptionForm(api *client.Client, n *notify.Center) *Form[CaptionParams, *transfer.CaptionResponse] {
	return NewForm(n, FormConfig[CaptionParams, *transfer.CaptionResponse]{
		Initial: CaptionParams{Niche: models.NicheWedding, Tone: models.ToneProfessional, IncludeCTA: true},
		Validate: func(p CaptionParams) error {
			if p.Niche == "" {
				return errors.New("Please select a photography niche")
			}
			return nil
		},
		Run: func(ctx context.Context, p CaptionParams) (*transfer.CaptionResponse, error) {
			return api.GenerateCaption(ctx, transfer.CaptionRequest{
				Niche:      p.Niche,
				Topic:      p.Topic,
				Tone:       p.Tone,
				IncludeCTA: p.IncludeCTA,
			})
		},
		FailMsg:    "Failed to generate caption. Please try again.",
		SuccessMsg: func(*transfer.CaptionResponse) string { return "Caption generated successfully!" },
	})
}

type ImageParams struct {
	Prompt   string               `json:"prompt"`
	Niche    models.Niche         `json:"niche"`
	Provider models.ImageProvider `json:"provider"`
	Style    string               `json:"style"`
}

// GeneratedImage is a decoded image payload with its sniffed media type.
type GeneratedImage struct {
	Provider  string `json:"provider"`
	MediaType string `json:"media_type"`
	DataURL   string `json:"data_url"`
}

func NewImageForm(api *client.Client, n *notify.Center) *Form[ImageParams, *GeneratedImage] {
	return NewForm(n, FormConfig[ImageParams, *GeneratedImage]{
		Initial: ImageParams{
			Niche:    models.NicheWedding,
			Provider: models.ProviderGemini,
			Style:    "professional photography, high quality",
		},
		Validate: func(p ImageParams) error {
			if strings.TrimSpace(p.Prompt) == "" {
				return errors.New("Please enter an image prompt")
			}
			return nil
		},
		Run: func(ctx context.Context, p ImageParams) (*GeneratedImage, error) {
			resp, err := api.GenerateImage(ctx, transfer.ImageRequest{
				Prompt:   p.Prompt,
				Niche:    p.Niche,
				Provider: p.Provider,
				Style:    p.Style,
			})
			if err != nil {
				return nil, err
			}
			return decodeImage(resp)
		},
		FailMsg:    "Failed to generate image. Please try again.",
		SuccessMsg: func(img *GeneratedImage) string { return fmt.Sprintf("Image generated with %s!", img.Provider) },
	})
}

// decodeImage turns the base64 payload into a data URL, sniffing the actual
// media type instead of trusting the provider to always return PNG.
func decodeImage(resp *transfer.ImageResponse) (*GeneratedImage, error) {
	raw, err := base64.StdEncoding.DecodeString(resp.ImageBase64)
	if err != nil {
		return nil, fmt.Errorf("decode image payload: %w", err)
	}
	mime := "image/png"
	if kind, err := filetype.Match(raw); err == nil && kind.MIME.Value != "" {
		mime = kind.MIME.Value
	}
	return &GeneratedImage{
		Provider:  resp.Provider,
		MediaType: mime,
		DataURL:   "data:" + mime + ";base64," + resp.ImageBase64,
	}, nil
}

type IdeasParams struct {
	Niche models.Niche `json:"niche"`
	Count int          `json:"count"`
}

func NewIdeasForm(api *client.Client, n *notify.Center) *Form[IdeasParams, []models.ContentIdea] {
	return NewForm(n, FormConfig[IdeasParams, []models.ContentIdea]{
		Initial: IdeasParams{Niche: models.NicheWedding, Count: 5},
		Validate: func(p IdeasParams) error {
			if p.Niche == "" {
				return errors.New("Please select a photography niche")
			}
			return nil
		},
		Run: func(ctx context.Context, p IdeasParams) ([]models.ContentIdea, error) {
			return api.GenerateIdeas(ctx, transfer.IdeasRequest{Niche: p.Niche, Count: p.Count})
		},
		FailMsg: "Failed to generate ideas. Please try again.",
		SuccessMsg: func(ideas []models.ContentIdea) string {
			return fmt.Sprintf("Generated %d content ideas!", len(ideas))
		},
	})
}

type HooksParams struct {
	HookType models.HookType `json:"hook_type"`
	Niche    models.Niche    `json:"niche"`
	Count    int             `json:"count"`
}

func NewHooksForm(api *client.Client, n *notify.Center) *Form[HooksParams, []models.ViralHook] {
	return NewForm(n, FormConfig[HooksParams, []models.ViralHook]{
		Initial: HooksParams{HookType: models.HookCuriosity, Niche: models.NicheWedding, Count: 5},
		Validate: func(p HooksParams) error {
			if p.Niche == "" {
				return errors.New("Please select a photography niche")
			}
			return nil
		},
		Run: func(ctx context.Context, p HooksParams) ([]models.ViralHook, error) {
			return api.GenerateHooks(ctx, transfer.HooksRequest{HookType: p.HookType, Niche: p.Niche, Count: p.Count})
		},
		FailMsg: "Failed to generate hooks",
		SuccessMsg: func(hooks []models.ViralHook) string {
			return fmt.Sprintf("Generated %d viral hooks!", len(hooks))
		},
	})
}

type ReelsParams struct {
	Category models.ReelCategory `json:"category"`
	Niche    models.Niche        `json:"niche"`
	Count    int                 `json:"count"`
}

func NewReelsForm(api *client.Client, n *notify.Center) *Form[ReelsParams, []models.ReelIdea] {
	return NewForm(n, FormConfig[ReelsParams, []models.ReelIdea]{
		Initial: ReelsParams{Category: models.ReelTrending, Niche: models.NicheWedding, Count: 5},
		Validate: func(p ReelsParams) error {
			if p.Niche == "" {
				return errors.New("Please select a photography niche")
			}
			return nil
		},
		Run: func(ctx context.Context, p ReelsParams) ([]models.ReelIdea, error) {
			return api.GenerateReels(ctx, transfer.ReelsRequest{Category: p.Category, Niche: p.Niche, Count: p.Count})
		},
		FailMsg: "Failed to generate reel ideas",
		SuccessMsg: func(reels []models.ReelIdea) string {
			return fmt.Sprintf("Generated %d reel ideas!", len(reels))
		},
	})
}

type MagnetParams struct {
	TemplateType models.MagnetType `json:"template_type"`
	Niche        models.Niche      `json:"niche"`
	ClientName   string            `json:"client_name"`
}

func NewMagnetForm(api *client.Client, n *notify.Center) *Form[MagnetParams, *models.ClientMagnet] {
	return NewForm(n, FormConfig[MagnetParams, *models.ClientMagnet]{
		Initial: MagnetParams{TemplateType: models.MagnetPortfolio, Niche: models.NicheWedding},
		Validate: func(p MagnetParams) error {
			if p.Niche == "" {
				return errors.New("Please select a photography niche")
			}
			return nil
		},
		Run: func(ctx context.Context, p MagnetParams) (*models.ClientMagnet, error) {
			return api.GenerateMagnet(ctx, transfer.MagnetRequest{
				TemplateType: p.TemplateType,
				Niche:        p.Niche,
				ClientName:   p.ClientName,
			})
		},
		FailMsg:    "Failed to generate client magnet",
		SuccessMsg: func(*models.ClientMagnet) string { return "Client magnet generated!" },
	})
}

type TipsParams struct {
	Category models.TipCategory `json:"category"`
	Count    int                `json:"count"`
}

func NewTipsForm(api *client.Client, n *notify.Center) *Form[TipsParams, []models.Tip] {
	return NewForm(n, FormConfig[TipsParams, []models.Tip]{
		Initial: TipsParams{Category: models.TipLighting, Count: 5},
		Validate: func(p TipsParams) error {
			if p.Category == "" {
				return errors.New("Please select a tip category")
			}
			return nil
		},
		Run: func(ctx context.Context, p TipsParams) ([]models.Tip, error) {
			return api.GenerateTips(ctx, transfer.TipsRequest{Category: p.Category, Count: p.Count})
		},
		FailMsg: "Failed to generate tips",
		SuccessMsg: func(tips []models.Tip) string {
			return fmt.Sprintf("Generated %d photography tips!", len(tips))
		},
	})
}

type ContentMixParams struct {
	Niche models.Niche `json:"niche"`
	Count int          `json:"count"`
}

func NewContentMixForm(api *client.Client, n *notify.Center) *Form[ContentMixParams, []models.MixIdea] {
	return NewForm(n, FormConfig[ContentMixParams, []models.MixIdea]{
		Initial: ContentMixParams{Niche: models.NicheWedding, Count: 5},
		Validate: func(p ContentMixParams) error {
			if p.Niche == "" {
				return errors.New("Please select a photography niche")
			}
			return nil
		},
		Run: func(ctx context.Context, p ContentMixParams) ([]models.MixIdea, error) {
			return api.GenerateContentMix(ctx, transfer.ContentMixRequest{Niche: p.Niche, Count: p.Count})
		},
		FailMsg: "Failed to generate content mix",
		SuccessMsg: func(ideas []models.MixIdea) string {
			return fmt.Sprintf("Generated %d content mix ideas!", len(ideas))
		},
	})
}

type SeasonalParams struct {
	Month string `json:"month"`
}

func NewSeasonalForm(api *client.Client, n *notify.Center) *Form[SeasonalParams, []string] {
	return NewForm(n, FormConfig[SeasonalParams, []string]{
		Validate: func(p SeasonalParams) error {
			if strings.TrimSpace(p.Month) == "" {
				return errors.New("Please select a month")
			}
			return nil
		},
		Run: func(ctx context.Context, p SeasonalParams) ([]string, error) {
			return api.SeasonalIdeas(ctx, p.Month)
		},
		FailMsg: "Failed to load seasonal ideas",
	})
}
