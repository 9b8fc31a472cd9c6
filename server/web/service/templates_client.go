package service

import (
	"context"
	"net/url"

	"outreach_web/server/common/infra/outreach"
	"outreach_web/server/web/domain"
)

type TemplatesClient struct {
	client *outreach.Client
}

func NewTemplatesClient(client *outreach.Client) *TemplatesClient {
	return &TemplatesClient{client: client}
}

func (c *TemplatesClient) List(ctx context.Context, token, accountID string) ([]domain.Template, error) {
	query := url.Values{"account_id": {accountID}}
	var items []domain.Template
	if err := c.client.Get(ctx, token, "/api/get_templates", query, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (c *TemplatesClient) Create(ctx context.Context, token, accountID string, tmpl domain.Template) (domain.Template, error) {
	payload := map[string]any{"account_id": accountID, "template": tmpl}
	var created domain.Template
	if err := c.client.Post(ctx, token, "/api/post_templates", payload, &created); err != nil {
		return domain.Template{}, err
	}
	return created, nil
}

func (c *TemplatesClient) Update(ctx context.Context, token, accountID string, tmpl domain.Template) (domain.Template, error) {
	payload := map[string]any{"account_id": accountID, "template": tmpl}
	var updated domain.Template
	if err := c.client.Put(ctx, token, "/api/templates/put_"+tmpl.ID, payload, &updated); err != nil {
		return domain.Template{}, err
	}
	return updated, nil
}

func (c *TemplatesClient) Delete(ctx context.Context, token, accountID, templateID string) error {
	query := url.Values{"account_id": {accountID}}
	path := "/api/templates/delete_" + templateID + "?" + query.Encode()
	return c.client.Delete(ctx, token, path, nil)
}
