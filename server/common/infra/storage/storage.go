// Package storage holds the durable per-session key-value state that the
// browser front-end kept in localStorage. A session record is at most the
// four keys below; everything else the app shows is refetched from the
// outreach backend on demand.
package storage

import (
	"context"
	"errors"
)

const (
	KeyToken     = "token"
	KeyUser      = "user"
	KeyAccountID = "accountId"
	KeyUserData  = "userData"
)

// SessionKeys lists every key a session record may hold. Clear and Logout
// iterate this set so a new key cannot be forgotten in teardown.
var SessionKeys = []string{KeyToken, KeyUser, KeyAccountID, KeyUserData}

var ErrNotFound = errors.New("storage: key not found")

// Store is the durable mirror of a session. Writes are last-writer-wins;
// Get must observe the most recent completed Set.
type Store interface {
	Get(ctx context.Context, sessionID, key string) (string, error)
	Set(ctx context.Context, sessionID, key, value string) error
	Delete(ctx context.Context, sessionID string, keys ...string) error
	Clear(ctx context.Context, sessionID string) error
}
