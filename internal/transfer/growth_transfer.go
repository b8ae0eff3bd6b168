package transfer

import "github.com/photoflow/photoflow/internal/models"

type HooksRequest struct {
	HookType models.HookType `json:"hook_type"`
	Niche    models.Niche    `json:"niche"`
	Count    int             `json:"count"`
}

type HooksResponse struct {
	Hooks []models.ViralHook `json:"hooks"`
}

type ReelsRequest struct {
	Category models.ReelCategory `json:"category"`
	Niche    models.Niche        `json:"niche"`
	Count    int                 `json:"count"`
}

type ReelsResponse struct {
	Reels []models.ReelIdea `json:"reels"`
}

type MagnetRequest struct {
	TemplateType models.MagnetType `json:"template_type"`
	Niche        models.Niche      `json:"niche"`
	ClientName   string            `json:"client_name,omitempty"`
}

type MagnetResponse struct {
	Magnet *models.ClientMagnet `json:"magnet"`
}

type TipsRequest struct {
	Category models.TipCategory `json:"category"`
	Count    int                `json:"count"`
}

type TipsResponse struct {
	Tips []models.Tip `json:"tips"`
}

type ContentMixRequest struct {
	Niche models.Niche `json:"niche"`
	Count int          `json:"count"`
}

type ContentMixResponse struct {
	Ideas []models.MixIdea `json:"ideas"`
}

type CTAResponse struct {
	Templates []string `json:"templates"`
}

type SeasonalResponse struct {
	Ideas []string `json:"ideas"`
}
