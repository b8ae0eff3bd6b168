package transfer

import "github.com/photoflow/photoflow/internal/models"

type CaptionRequest struct {
	Niche      models.Niche `json:"niche"`
	Topic      string       `json:"topic,omitempty"`
	Tone       models.Tone  `json:"tone"`
	IncludeCTA bool         `json:"include_cta"`
}

type CaptionResponse struct {
	Caption        string   `json:"caption"`
	Hashtags       []string `json:"hashtags"`
	EngagementTips []string `json:"engagement_tips"`
}

type ImageRequest struct {
	Prompt   string               `json:"prompt"`
	Niche    models.Niche         `json:"niche"`
	Provider models.ImageProvider `json:"provider"`
	Style    string               `json:"style,omitempty"`
}

type ImageResponse struct {
	Provider    string `json:"provider"`
	ImageBase64 string `json:"image_base64"`
	Prompt      string `json:"prompt"`
}

type IdeasRequest struct {
	Niche models.Niche `json:"niche"`
	Count int          `json:"count"`
}

type IdeasResponse struct {
	Ideas []models.ContentIdea `json:"ideas"`
}

// ContentCreate is the body for POST /content.
type ContentCreate struct {
	Title     string               `json:"title"`
	Caption   string               `json:"caption"`
	Hashtags  []string             `json:"hashtags"`
	Niche     models.Niche         `json:"niche"`
	MediaURL  string               `json:"media_url,omitempty"`
	MediaType string               `json:"media_type,omitempty"`
	Status    models.ContentStatus `json:"status"`
}

type ContentListResponse struct {
	Content []models.ContentDraft `json:"content"`
}

type HashtagsResponse struct {
	Niche    models.Niche `json:"niche"`
	Hashtags []string     `json:"hashtags"`
}

type NichesResponse struct {
	Niches []models.Niche `json:"niches"`
}
