package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"outreach_web/server/common/infra/storage"
	"outreach_web/server/common/retryx"
	"outreach_web/server/web/domain"
)

// ---- fakes ----

type fakeAccountAPI struct {
	checkExists    bool
	checkAccountID string
	checkErr       error
	checkCalls     int

	profile      domain.AccountProfile
	profileErrs  []error // one per call; nil entry means success
	profileCalls int
}

func (f *fakeAccountAPI) CheckEmail(ctx context.Context, email string) (bool, string, error) {
	f.checkCalls++
	return f.checkExists, f.checkAccountID, f.checkErr
}

func (f *fakeAccountAPI) GetProfile(ctx context.Context, token, accountID string) (domain.AccountProfile, error) {
	call := f.profileCalls
	f.profileCalls++
	if call < len(f.profileErrs) && f.profileErrs[call] != nil {
		return domain.AccountProfile{}, f.profileErrs[call]
	}
	return f.profile, nil
}

type fakeTokens struct {
	err error
}

func (f *fakeTokens) GenerateToken(sessionID, email string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return "jwt-" + sessionID, nil
}

// failingStore wraps a MemoryStore and fails selected operations.
type failingStore struct {
	*storage.MemoryStore
	failGet    bool
	failDelete bool
}

func (s *failingStore) Get(ctx context.Context, sessionID, key string) (string, error) {
	if s.failGet {
		return "", errors.New("storage down")
	}
	return s.MemoryStore.Get(ctx, sessionID, key)
}

func (s *failingStore) Delete(ctx context.Context, sessionID string, keys ...string) error {
	if s.failDelete {
		return errors.New("storage down")
	}
	return s.MemoryStore.Delete(ctx, sessionID, keys...)
}

func newTestService(store storage.Store, api *fakeAccountAPI, cfg SessionConfig) *SessionService {
	if cfg.RefreshPolicy == (retryx.Policy{}) {
		cfg.RefreshPolicy = retryx.Policy{Retries: 2, Delay: time.Nanosecond}
	}
	svc := NewSessionService(store, api, &fakeTokens{}, cfg)
	seq := 0
	svc.newID = func() string {
		seq++
		return fmt.Sprintf("id-%d", seq)
	}
	svc.sleep = func(ctx context.Context, d time.Duration) {}
	return svc
}

func storedValue(t *testing.T, store storage.Store, sessionID, key string) string {
	t.Helper()
	v, err := store.Get(context.Background(), sessionID, key)
	require.NoError(t, err)
	return v
}

func requireAbsent(t *testing.T, store storage.Store, sessionID, key string) {
	t.Helper()
	_, err := store.Get(context.Background(), sessionID, key)
	require.ErrorIs(t, err, storage.ErrNotFound)
}

// ---- CheckEmailExists ----

func TestCheckEmailExistsBackendPath(t *testing.T) {
	api := &fakeAccountAPI{checkExists: true, checkAccountID: "acc-42"}
	svc := newTestService(storage.NewMemoryStore(), api, SessionConfig{})

	exists, accountID := svc.CheckEmailExists(context.Background(), "Ana@Example.com")
	require.True(t, exists)
	require.Equal(t, "acc-42", accountID)
}

func TestCheckEmailExistsFailsClosedWithoutDevFallback(t *testing.T) {
	api := &fakeAccountAPI{checkErr: errors.New("network down")}
	svc := newTestService(storage.NewMemoryStore(), api, SessionConfig{
		DevAllowedEmails: []string{"dev@example.com"},
	})

	exists, accountID := svc.CheckEmailExists(context.Background(), "dev@example.com")
	require.False(t, exists)
	require.Empty(t, accountID)
}

func TestCheckEmailExistsDevFallbackAllowList(t *testing.T) {
	api := &fakeAccountAPI{checkErr: errors.New("network down")}
	svc := newTestService(storage.NewMemoryStore(), api, SessionConfig{
		DevFallback:      true,
		DevAllowedEmails: []string{"dev@example.com"},
	})

	exists, accountID := svc.CheckEmailExists(context.Background(), "DEV@example.com")
	require.True(t, exists)
	require.NotEmpty(t, accountID)
	require.Contains(t, accountID, "dev-")

	exists, accountID = svc.CheckEmailExists(context.Background(), "other@example.com")
	require.False(t, exists)
	require.Empty(t, accountID)
}

// ---- Login ----

func TestLoginSucceedsForAnyPasswordWhenEmailExists(t *testing.T) {
	store := storage.NewMemoryStore()
	api := &fakeAccountAPI{checkExists: true, checkAccountID: "acc-1",
		profile: domain.AccountProfile{AccountName: "Ana Torres", AccountEmail: "ana@example.com"}}
	svc := newTestService(store, api, SessionConfig{})

	result, err := svc.Login(context.Background(), "ana@example.com", "whatever")
	require.NoError(t, err)
	require.True(t, result.Session.Authenticated)
	require.Equal(t, "acc-1", result.Session.AccountID)
	require.NotEmpty(t, result.Token)

	// durable storage mirrors the session
	require.NotEmpty(t, storedValue(t, store, result.SessionID, storage.KeyToken))
	require.Equal(t, "acc-1", storedValue(t, store, result.SessionID, storage.KeyAccountID))

	var user domain.User
	require.NoError(t, json.Unmarshal([]byte(storedValue(t, store, result.SessionID, storage.KeyUser)), &user))
	require.Equal(t, "ana@example.com", user.Email)
	// inline profile fetch enriched the display name
	require.Equal(t, "Ana Torres", user.Name)
	require.Equal(t, 1, api.profileCalls)
}

func TestLoginFailsWithEmailNotFound(t *testing.T) {
	api := &fakeAccountAPI{checkExists: false}
	svc := newTestService(storage.NewMemoryStore(), api, SessionConfig{})

	_, err := svc.Login(context.Background(), "ghost@example.com", "any-password")
	require.ErrorIs(t, err, ErrEmailNotFound)
}

func TestLoginRequiresNonEmptyFields(t *testing.T) {
	svc := newTestService(storage.NewMemoryStore(), &fakeAccountAPI{checkExists: true}, SessionConfig{})

	_, err := svc.Login(context.Background(), "", "pw")
	require.ErrorIs(t, err, ErrMissingFields)
	_, err = svc.Login(context.Background(), "a@b.c", "")
	require.ErrorIs(t, err, ErrMissingFields)
}

func TestLoginSucceedsEvenWhenProfileFetchFails(t *testing.T) {
	store := storage.NewMemoryStore()
	api := &fakeAccountAPI{checkExists: true, checkAccountID: "acc-1",
		profileErrs: []error{errors.New("profile endpoint down")}}
	svc := newTestService(store, api, SessionConfig{})

	result, err := svc.Login(context.Background(), "ana@example.com", "pw")
	require.NoError(t, err)
	require.True(t, result.Session.Authenticated)
	require.Nil(t, result.Session.UserData)

	// token/user/accountId still persisted
	require.NotEmpty(t, storedValue(t, store, result.SessionID, storage.KeyToken))
	require.Equal(t, "acc-1", storedValue(t, store, result.SessionID, storage.KeyAccountID))
	requireAbsent(t, store, result.SessionID, storage.KeyUserData)
}

func TestLoginDerivesDisplayNameFromEmail(t *testing.T) {
	api := &fakeAccountAPI{checkExists: true, checkAccountID: "acc-1",
		profileErrs: []error{errors.New("down")}}
	svc := newTestService(storage.NewMemoryStore(), api, SessionConfig{})

	result, err := svc.Login(context.Background(), "john.doe@example.com", "pw")
	require.NoError(t, err)
	require.Equal(t, "John Doe", result.Session.User.Name)
}

// ---- Signup ----

func TestSignupRejectsExistingEmail(t *testing.T) {
	api := &fakeAccountAPI{checkExists: true, checkAccountID: "acc-1"}
	svc := newTestService(storage.NewMemoryStore(), api, SessionConfig{})

	_, err := svc.Signup(context.Background(), SignupRequest{Name: "Ana", Email: "ana@example.com", Password: "pw"})
	require.ErrorIs(t, err, ErrEmailAlreadyExists)
}

func TestSignupReturnsConstructedUserAndPersistsNothing(t *testing.T) {
	store := storage.NewMemoryStore()
	api := &fakeAccountAPI{checkExists: false}
	svc := newTestService(store, api, SessionConfig{})

	user, err := svc.Signup(context.Background(), SignupRequest{Name: "Ana", Email: "Ana@Example.com", Password: "pw"})
	require.NoError(t, err)
	require.Equal(t, domain.User{Name: "Ana", Email: "ana@example.com", Role: "user"}, user)
}

func TestSignupValidatesRequiredFields(t *testing.T) {
	svc := newTestService(storage.NewMemoryStore(), &fakeAccountAPI{}, SessionConfig{})

	_, err := svc.Signup(context.Background(), SignupRequest{Email: "a@b.c", Password: "pw"})
	require.ErrorIs(t, err, ErrMissingFields)
}

// ---- Logout ----

func TestLogoutClearsAllKeysAndIsIdempotent(t *testing.T) {
	store := storage.NewMemoryStore()
	api := &fakeAccountAPI{checkExists: true, checkAccountID: "acc-1"}
	svc := newTestService(store, api, SessionConfig{})

	result, err := svc.Login(context.Background(), "ana@example.com", "pw")
	require.NoError(t, err)

	svc.Logout(context.Background(), result.SessionID)
	for _, key := range storage.SessionKeys {
		requireAbsent(t, store, result.SessionID, key)
	}
	require.False(t, svc.Hydrate(context.Background(), result.SessionID).Authenticated)

	// calling again must not panic or error
	svc.Logout(context.Background(), result.SessionID)
	svc.Logout(context.Background(), "never-existed")
}

func TestLogoutSwallowsStorageErrors(t *testing.T) {
	store := &failingStore{MemoryStore: storage.NewMemoryStore(), failDelete: true}
	svc := newTestService(store, &fakeAccountAPI{}, SessionConfig{})

	require.NotPanics(t, func() {
		svc.Logout(context.Background(), "sess-1")
	})
}

// ---- Hydrate ----

func TestHydrateRestoresPersistedSession(t *testing.T) {
	store := storage.NewMemoryStore()
	api := &fakeAccountAPI{checkExists: true, checkAccountID: "acc-1",
		profile: domain.AccountProfile{AccountName: "Ana Torres", ContactPersonNum: 12}}
	svc := newTestService(store, api, SessionConfig{})

	result, err := svc.Login(context.Background(), "ana@example.com", "pw")
	require.NoError(t, err)

	sess := svc.Hydrate(context.Background(), result.SessionID)
	require.True(t, sess.Authenticated)
	require.Equal(t, "acc-1", sess.AccountID)
	require.NotNil(t, sess.User)
	require.NotNil(t, sess.UserData)
	require.Equal(t, 12, sess.UserData.ContactPersonNum)
}

func TestHydrateUnknownSessionIsUnauthenticated(t *testing.T) {
	svc := newTestService(storage.NewMemoryStore(), &fakeAccountAPI{}, SessionConfig{})

	sess := svc.Hydrate(context.Background(), "missing")
	require.False(t, sess.Authenticated)
	require.Nil(t, sess.User)
}

func TestHydrateCorruptUserForcesLogout(t *testing.T) {
	store := storage.NewMemoryStore()
	ctx := context.Background()
	require.NoError(t, store.Set(ctx, "sess-1", storage.KeyToken, "tok"))
	require.NoError(t, store.Set(ctx, "sess-1", storage.KeyUser, "{not json"))
	require.NoError(t, store.Set(ctx, "sess-1", storage.KeyAccountID, "acc-1"))

	svc := newTestService(store, &fakeAccountAPI{}, SessionConfig{})
	sess := svc.Hydrate(ctx, "sess-1")
	require.False(t, sess.Authenticated)
	for _, key := range storage.SessionKeys {
		requireAbsent(t, store, "sess-1", key)
	}
}

func TestHydrateStorageErrorAssumesUnauthenticated(t *testing.T) {
	store := &failingStore{MemoryStore: storage.NewMemoryStore(), failGet: true}
	svc := newTestService(store, &fakeAccountAPI{}, SessionConfig{})

	sess := svc.Hydrate(context.Background(), "sess-1")
	require.False(t, sess.Authenticated)
}

// ---- RefreshProfile ----

func refreshFixture(t *testing.T, api *fakeAccountAPI) (*SessionService, *storage.MemoryStore, string) {
	t.Helper()
	store := storage.NewMemoryStore()
	api.checkExists = true
	api.checkAccountID = "acc-1"
	svc := newTestService(store, api, SessionConfig{})

	result, err := svc.Login(context.Background(), "ana@example.com", "pw")
	require.NoError(t, err)
	return svc, store, result.SessionID
}

func TestRefreshProfileSucceedsOnThirdAttempt(t *testing.T) {
	api := &fakeAccountAPI{
		profile: domain.AccountProfile{AccountName: "Ana Torres", Plan: "pro"},
		// first entry consumed by the inline fetch during login
		profileErrs: []error{nil, errors.New("one"), errors.New("two"), nil},
	}
	svc, store, sessionID := refreshFixture(t, api)
	require.Equal(t, 1, api.profileCalls)

	svc.RefreshProfile(context.Background(), sessionID)
	require.Equal(t, 4, api.profileCalls) // 1 inline + 3 refresh attempts

	var profile domain.AccountProfile
	require.NoError(t, json.Unmarshal([]byte(storedValue(t, store, sessionID, storage.KeyUserData)), &profile))
	require.Equal(t, "pro", profile.Plan)
}

func TestRefreshProfileAllAttemptsFailLeavesStateUntouched(t *testing.T) {
	boom := errors.New("boom")
	api := &fakeAccountAPI{
		profile:     domain.AccountProfile{AccountName: "Ana Torres"},
		profileErrs: []error{nil, boom, boom, boom},
	}
	svc, store, sessionID := refreshFixture(t, api)

	before := storedValue(t, store, sessionID, storage.KeyUserData)
	userBefore := storedValue(t, store, sessionID, storage.KeyUser)

	require.NotPanics(t, func() {
		svc.RefreshProfile(context.Background(), sessionID)
	})
	require.Equal(t, 4, api.profileCalls)
	require.Equal(t, before, storedValue(t, store, sessionID, storage.KeyUserData))
	require.Equal(t, userBefore, storedValue(t, store, sessionID, storage.KeyUser))
}

func TestRefreshProfileRequiresResolvedAccount(t *testing.T) {
	api := &fakeAccountAPI{}
	svc := newTestService(storage.NewMemoryStore(), api, SessionConfig{})

	svc.RefreshProfile(context.Background(), "no-such-session")
	require.Equal(t, 0, api.profileCalls)
}

// ---- AccountContext ----

func TestAccountContextResolution(t *testing.T) {
	store := storage.NewMemoryStore()
	api := &fakeAccountAPI{checkExists: true, checkAccountID: "acc-1"}
	svc := newTestService(store, api, SessionConfig{})

	_, _, err := svc.AccountContext(context.Background(), "missing")
	require.ErrorIs(t, err, ErrUnauthenticated)

	result, err := svc.Login(context.Background(), "ana@example.com", "pw")
	require.NoError(t, err)

	token, accountID, err := svc.AccountContext(context.Background(), result.SessionID)
	require.NoError(t, err)
	require.NotEmpty(t, token)
	require.Equal(t, "acc-1", accountID)

	// a session whose account id was never established is terminal
	require.NoError(t, store.Delete(context.Background(), result.SessionID, storage.KeyAccountID))
	_, _, err = svc.AccountContext(context.Background(), result.SessionID)
	require.ErrorIs(t, err, ErrAccountNotResolved)
}
