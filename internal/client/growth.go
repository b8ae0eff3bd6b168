package client

import (
	"context"
	"net/url"
	"strings"

	"github.com/photoflow/photoflow/internal/models"
	"github.com/photoflow/photoflow/internal/transfer"
)

func (c *Client) GenerateHooks(ctx context.Context, req transfer.HooksRequest) ([]models.ViralHook, error) {
	var out transfer.HooksResponse
	if err := c.post(ctx, "/viral-hooks/generate", nil, req, &out); err != nil {
		return nil, err
	}
	return out.Hooks, nil
}

func (c *Client) GenerateReels(ctx context.Context, req transfer.ReelsRequest) ([]models.ReelIdea, error) {
	var out transfer.ReelsResponse
	if err := c.post(ctx, "/reel-ideas/generate", nil, req, &out); err != nil {
		return nil, err
	}
	return out.Reels, nil
}

func (c *Client) GenerateMagnet(ctx context.Context, req transfer.MagnetRequest) (*models.ClientMagnet, error) {
	var out transfer.MagnetResponse
	if err := c.post(ctx, "/client-magnets/generate", nil, req, &out); err != nil {
		return nil, err
	}
	return out.Magnet, nil
}

func (c *Client) GenerateTips(ctx context.Context, req transfer.TipsRequest) ([]models.Tip, error) {
	var out transfer.TipsResponse
	if err := c.post(ctx, "/tips/generate", nil, req, &out); err != nil {
		return nil, err
	}
	return out.Tips, nil
}

func (c *Client) GenerateContentMix(ctx context.Context, req transfer.ContentMixRequest) ([]models.MixIdea, error) {
	var out transfer.ContentMixResponse
	if err := c.post(ctx, "/content-mix/generate", nil, req, &out); err != nil {
		return nil, err
	}
	return out.Ideas, nil
}

// CTATemplates fetches the ready-made call-to-action library for one type.
func (c *Client) CTATemplates(ctx context.Context, ctaType models.CTAType) ([]string, error) {
	var out transfer.CTAResponse
	if err := c.get(ctx, "/cta/"+string(ctaType), nil, &out); err != nil {
		return nil, err
	}
	return out.Templates, nil
}

// SeasonalIdeas fetches the seasonal content suggestions for a month name
// ("january" ... "december").
func (c *Client) SeasonalIdeas(ctx context.Context, month string) ([]string, error) {
	query := url.Values{}
	query.Set("month", strings.ToLower(month))

	var out transfer.SeasonalResponse
	if err := c.get(ctx, "/seasonal", query, &out); err != nil {
		return nil, err
	}
	return out.Ideas, nil
}
