package service

import (
	"context"
	"net/url"

	"outreach_web/server/common/infra/outreach"
	"outreach_web/server/web/domain"
)

type MeetingsClient struct {
	client *outreach.Client
}

func NewMeetingsClient(client *outreach.Client) *MeetingsClient {
	return &MeetingsClient{client: client}
}

func (c *MeetingsClient) List(ctx context.Context, token, accountID string) ([]domain.Meeting, error) {
	query := url.Values{"account_id": {accountID}}
	var items []domain.Meeting
	if err := c.client.Get(ctx, token, "/api/get_meetings", query, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (c *MeetingsClient) Create(ctx context.Context, token, accountID string, meeting domain.Meeting) (domain.Meeting, error) {
	payload := map[string]any{"account_id": accountID, "meeting": meeting}
	var created domain.Meeting
	if err := c.client.Post(ctx, token, "/api/post_meetings", payload, &created); err != nil {
		return domain.Meeting{}, err
	}
	return created, nil
}
