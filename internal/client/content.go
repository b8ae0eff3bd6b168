package client

import (
	"context"
	"net/url"

	"github.com/photoflow/photoflow/internal/models"
	"github.com/photoflow/photoflow/internal/transfer"
)

// GenerateCaption asks the backend for an AI-written caption package.
func (c *Client) GenerateCaption(ctx context.Context, req transfer.CaptionRequest) (*transfer.CaptionResponse, error) {
	var out transfer.CaptionResponse
	if err := c.post(ctx, "/content/generate-caption", nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GenerateImage asks the backend to synthesize an image, returned as base64.
func (c *Client) GenerateImage(ctx context.Context, req transfer.ImageRequest) (*transfer.ImageResponse, error) {
	var out transfer.ImageResponse
	if err := c.post(ctx, "/content/generate-image", nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GenerateIdeas asks the backend for content ideas for a niche.
func (c *Client) GenerateIdeas(ctx context.Context, req transfer.IdeasRequest) ([]models.ContentIdea, error) {
	var out transfer.IdeasResponse
	if err := c.post(ctx, "/content/generate-ideas", nil, req, &out); err != nil {
		return nil, err
	}
	return out.Ideas, nil
}

// CreateContent persists a new draft.
func (c *Client) CreateContent(ctx context.Context, req transfer.ContentCreate) (*models.ContentDraft, error) {
	var out models.ContentDraft
	if err := c.post(ctx, "/content", nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListContent fetches drafts filtered by status; empty status returns all.
func (c *Client) ListContent(ctx context.Context, status models.ContentStatus) ([]models.ContentDraft, error) {
	query := url.Values{}
	if status != "" {
		query.Set("status", string(status))
	}
	var out transfer.ContentListResponse
	if err := c.get(ctx, "/content", query, &out); err != nil {
		return nil, err
	}
	return out.Content, nil
}

// NicheHashtags fetches the curated hashtag set for one niche.
func (c *Client) NicheHashtags(ctx context.Context, niche models.Niche) ([]string, error) {
	var out transfer.HashtagsResponse
	if err := c.get(ctx, "/hashtags/"+string(niche), nil, &out); err != nil {
		return nil, err
	}
	return out.Hashtags, nil
}

// Niches fetches the niche list the backend supports.
func (c *Client) Niches(ctx context.Context) ([]models.Niche, error) {
	var out transfer.NichesResponse
	if err := c.get(ctx, "/niches", nil, &out); err != nil {
		return nil, err
	}
	return out.Niches, nil
}
