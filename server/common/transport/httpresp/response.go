// Package httpresp defines the wire shapes of the app's own JSON API. Every
// handler answers with one of these: a failure is always
// {"success":false,"error":...}, a success always carries "success":true and
// the payload, so the dashboard scripts can treat all endpoints uniformly.
package httpresp

const (
	ErrUnauthorized       = "unauthorized"
	ErrMissingBearerToken = "bearer token is required"
	ErrInvalidToken       = "invalid or expired session token"
	ErrEmailNotFound      = "no account found for this email"
	ErrEmailExists        = "an account with this email already exists"
	ErrAccountUnresolved  = "account is not resolved for this session"
	ErrBackendUnavailable = "the service is temporarily unavailable, please try again"
)

type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

type OKResponse struct {
	Success bool `json:"success"`
}

type DataResponse struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
}

type TokenResponse struct {
	Success   bool   `json:"success"`
	Token     string `json:"token"`
	AccountID string `json:"account_id"`
	User      any    `json:"user"`
}

type ExistsResponse struct {
	Success bool `json:"success"`
	Exists  bool `json:"exists"`
}

func NewErrorResponse(message string) ErrorResponse {
	if message == "" {
		message = ErrBackendUnavailable
	}
	return ErrorResponse{Success: false, Error: message}
}

func NewOKResponse() OKResponse {
	return OKResponse{Success: true}
}

func NewDataResponse(data any) DataResponse {
	return DataResponse{Success: true, Data: data}
}

func NewTokenResponse(token, accountID string, user any) TokenResponse {
	return TokenResponse{Success: true, Token: token, AccountID: accountID, User: user}
}

func NewExistsResponse(exists bool) ExistsResponse {
	return ExistsResponse{Success: true, Exists: exists}
}
