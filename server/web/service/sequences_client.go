package service

import (
	"context"
	"net/url"

	"outreach_web/server/common/infra/outreach"
	"outreach_web/server/web/domain"
)

type SequencesClient struct {
	client *outreach.Client
}

func NewSequencesClient(client *outreach.Client) *SequencesClient {
	return &SequencesClient{client: client}
}

func (c *SequencesClient) List(ctx context.Context, token, accountID string) ([]domain.Sequence, error) {
	query := url.Values{"account_id": {accountID}}
	var items []domain.Sequence
	if err := c.client.Get(ctx, token, "/api/get_sequences", query, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (c *SequencesClient) Create(ctx context.Context, token, accountID string, seq domain.Sequence) (domain.Sequence, error) {
	payload := map[string]any{"account_id": accountID, "sequence": seq}
	var created domain.Sequence
	if err := c.client.Post(ctx, token, "/api/post_sequences", payload, &created); err != nil {
		return domain.Sequence{}, err
	}
	return created, nil
}

func (c *SequencesClient) Update(ctx context.Context, token, accountID string, seq domain.Sequence) (domain.Sequence, error) {
	payload := map[string]any{"account_id": accountID, "sequence": seq}
	var updated domain.Sequence
	if err := c.client.Put(ctx, token, "/api/sequences/put_"+seq.ID, payload, &updated); err != nil {
		return domain.Sequence{}, err
	}
	return updated, nil
}
