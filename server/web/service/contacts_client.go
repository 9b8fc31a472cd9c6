package service

import (
	"context"
	"net/url"

	"outreach_web/server/common/infra/outreach"
	"outreach_web/server/web/domain"
)

type ContactsClient struct {
	client *outreach.Client
}

func NewContactsClient(client *outreach.Client) *ContactsClient {
	return &ContactsClient{client: client}
}

func (c *ContactsClient) List(ctx context.Context, token, accountID string) ([]domain.Contact, error) {
	query := url.Values{"account_id": {accountID}}
	var items []domain.Contact
	if err := c.client.Get(ctx, token, "/api/get_contacts", query, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (c *ContactsClient) Create(ctx context.Context, token, accountID string, contact domain.Contact) (domain.Contact, error) {
	payload := map[string]any{"account_id": accountID, "contact": contact}
	var created domain.Contact
	if err := c.client.Post(ctx, token, "/api/post_contacts", payload, &created); err != nil {
		return domain.Contact{}, err
	}
	return created, nil
}

func (c *ContactsClient) Update(ctx context.Context, token, accountID string, contact domain.Contact) (domain.Contact, error) {
	payload := map[string]any{"account_id": accountID, "contact": contact}
	var updated domain.Contact
	if err := c.client.Put(ctx, token, "/api/contacts/put_"+contact.ID, payload, &updated); err != nil {
		return domain.Contact{}, err
	}
	return updated, nil
}

func (c *ContactsClient) Delete(ctx context.Context, token, accountID, contactID string) error {
	query := url.Values{"account_id": {accountID}}
	path := "/api/contacts/delete_" + contactID + "?" + query.Encode()
	return c.client.Delete(ctx, token, path, nil)
}
