package service

import (
	"context"
	"net/url"

	"outreach_web/server/common/infra/outreach"
	"outreach_web/server/web/domain"
)

// InboxClient covers threads/messages and the scheduled-email feed the
// calendar windows over.
type InboxClient struct {
	client *outreach.Client
}

func NewInboxClient(client *outreach.Client) *InboxClient {
	return &InboxClient{client: client}
}

func (c *InboxClient) ListThreads(ctx context.Context, token, accountID string) ([]domain.Thread, error) {
	query := url.Values{"account_id": {accountID}}
	var items []domain.Thread
	if err := c.client.Get(ctx, token, "/api/get_messages", query, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (c *InboxClient) SendMessage(ctx context.Context, token, accountID string, msg domain.Message) (domain.Message, error) {
	payload := map[string]any{"account_id": accountID, "message": msg}
	var sent domain.Message
	if err := c.client.Post(ctx, token, "/api/post_messages", payload, &sent); err != nil {
		return domain.Message{}, err
	}
	return sent, nil
}

func (c *InboxClient) ListScheduled(ctx context.Context, token, accountID string) ([]domain.ScheduledEmail, error) {
	query := url.Values{"account_id": {accountID}}
	var items []domain.ScheduledEmail
	if err := c.client.Get(ctx, token, "/api/get_emails", query, &items); err != nil {
		return nil, err
	}
	return items, nil
}
