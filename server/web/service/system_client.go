package service

import (
	"context"
	"net/url"

	"outreach_web/server/common/infra/outreach"
	"outreach_web/server/web/domain"
)

// SystemClient covers health and reporting reads.
type SystemClient struct {
	client *outreach.Client
}

func NewSystemClient(client *outreach.Client) *SystemClient {
	return &SystemClient{client: client}
}

func (c *SystemClient) Health(ctx context.Context) (string, error) {
	var resp struct {
		Status string `json:"status"`
	}
	if err := c.client.Get(ctx, "", "/api/system/health", nil, &resp); err != nil {
		return "", err
	}
	return resp.Status, nil
}

func (c *SystemClient) GetReport(ctx context.Context, token, accountID string) (domain.Report, error) {
	query := url.Values{"account_id": {accountID}}
	var report domain.Report
	if err := c.client.Get(ctx, token, "/api/get_reports", query, &report); err != nil {
		return domain.Report{}, err
	}
	return report, nil
}
