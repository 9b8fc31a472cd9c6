package service

import (
	"context"

	"outreach_web/server/common/infra/outreach"
	"outreach_web/server/web/domain"
)

// UsersClient wraps the account-level endpoints: email existence, profile
// fetch, email verification, and the marketing contact form.
type UsersClient struct {
	client *outreach.Client
}

func NewUsersClient(client *outreach.Client) *UsersClient {
	return &UsersClient{client: client}
}

// CheckEmail reports whether email is registered and, when it is, the
// backend account id joined to it.
func (c *UsersClient) CheckEmail(ctx context.Context, email string) (bool, string, error) {
	payload := map[string]any{"email": email}
	var resp struct {
		Exists    bool   `json:"exists"`
		AccountID string `json:"account_id"`
	}
	if err := c.client.Post(ctx, "", "/check_email", payload, &resp); err != nil {
		return false, "", err
	}
	return resp.Exists, resp.AccountID, nil
}

func (c *UsersClient) GetProfile(ctx context.Context, token, accountID string) (domain.AccountProfile, error) {
	payload := map[string]any{"account_id": accountID}
	var profile domain.AccountProfile
	if err := c.client.Post(ctx, token, "/get_user", payload, &profile); err != nil {
		return domain.AccountProfile{}, err
	}
	return profile, nil
}

func (c *UsersClient) RequestVerification(ctx context.Context, email string) error {
	payload := map[string]any{"email": email}
	return c.client.Post(ctx, "", "/api/verify/request_code", payload, nil)
}

func (c *UsersClient) ConfirmVerification(ctx context.Context, email, code string) (bool, error) {
	payload := map[string]any{"email": email, "code": code}
	var resp struct {
		Verified bool `json:"verified"`
	}
	if err := c.client.Post(ctx, "", "/api/verify/confirm_code", payload, &resp); err != nil {
		return false, err
	}
	return resp.Verified, nil
}

// SubmitContactRequest forwards the marketing contact form.
func (c *UsersClient) SubmitContactRequest(ctx context.Context, name, email, message string) error {
	payload := map[string]any{"name": name, "email": email, "message": message}
	return c.client.Post(ctx, "", "/api/post_contact_request", payload, nil)
}
