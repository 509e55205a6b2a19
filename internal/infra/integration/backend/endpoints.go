package backend

import (
	"context"
	"strconv"

	"github.com/xavierca1/farmareach/internal/entity"
)

func (c *Client) Health(ctx context.Context) (*HealthResponse, error) {
	var out HealthResponse
	if err := c.Get(ctx, healthPath, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Me(ctx context.Context) (*entity.User, error) {
	var out entity.User
	if err := c.Get(ctx, "/auth/me", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Login(ctx context.Context, input LoginRequest) (*AuthResponse, error) {
	var out AuthResponse
	if err := c.Post(ctx, "/auth/login", input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Register(ctx context.Context, input RegisterRequest) (*RegisterResponse, error) {
	var out RegisterResponse
	if err := c.Post(ctx, "/auth/register", input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ListLeads(ctx context.Context, params ListLeadsParams) ([]LeadRow, error) {
	query := map[string]string{"fuente": params.Fuente}
	if params.Limit > 0 {
		query["limit"] = strconv.Itoa(params.Limit)
	}
	if params.Skip > 0 {
		query["skip"] = strconv.Itoa(params.Skip)
	}
	if params.OnlyPending {
		query["only_pending"] = "true"
	}
	if params.RequireEmail {
		query["require_email"] = "true"
	}

	var rows []LeadRow
	if err := c.Get(ctx, "/leads", query, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

func (c *Client) Capture(ctx context.Context, input CaptureRequest) (*CaptureResponse, error) {
	var out CaptureResponse
	if err := c.Post(ctx, "/capture", input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) SendCampaign(ctx context.Context, input CampaignRequest) (*CampaignResponse, error) {
	var out CampaignResponse
	if err := c.Post(ctx, "/campaign/send", input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) EnrichEmails(ctx context.Context) (*EnrichResponse, error) {
	var out EnrichResponse
	if err := c.Post(ctx, "/leads/enrich-emails", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DefaultTemplate(ctx context.Context) (string, error) {
	var out DefaultTemplateResponse
	if err := c.Get(ctx, "/template/default", nil, &out); err != nil {
		return "", err
	}
	return out.Template, nil
}
