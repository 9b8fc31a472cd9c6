// Package service contains the application services of the web app: the
// session/account lifecycle, the per-resource REST wrappers over the
// outreach client, bulk import, and calendar windowing.
//
// This file is the one stateful piece of the app: it owns the durable
// session record (token, user, accountId, userData), the
// login/signup/logout transitions, and the background profile refresh.
package service

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"

	"outreach_web/server/common/infra/storage"
	"outreach_web/server/common/log"
	"outreach_web/server/common/retryx"
	"outreach_web/server/web/domain"
)

// accountAPI is the slice of the users client the session service needs.
type accountAPI interface {
	CheckEmail(ctx context.Context, email string) (exists bool, accountID string, err error)
	GetProfile(ctx context.Context, token, accountID string) (domain.AccountProfile, error)
}

type sessionTokens interface {
	GenerateToken(sessionID, email string) (string, error)
}

// SessionConfig carries the gated dev behaviors and the refresh policy.
//
// DevFallback enables the development-only path inside CheckEmailExists:
// when the backend is unreachable, emails on the allow-list are treated as
// registered and get a synthesized mock account id. It must stay off in
// production; the default is fail-closed.
type SessionConfig struct {
	DevFallback      bool
	DevAllowedEmails []string
	SignupDelay      time.Duration
	RefreshPolicy    retryx.Policy
}

type SessionService struct {
	store   storage.Store
	api     accountAPI
	tokens  sessionTokens
	cfg     SessionConfig
	allowed map[string]struct{}

	// injected for tests
	newID func() string
	sleep func(ctx context.Context, d time.Duration)
}

func NewSessionService(store storage.Store, api accountAPI, tokens sessionTokens, cfg SessionConfig) *SessionService {
	allowed := make(map[string]struct{}, len(cfg.DevAllowedEmails))
	for _, email := range cfg.DevAllowedEmails {
		allowed[normalizeEmail(email)] = struct{}{}
	}
	if cfg.RefreshPolicy == (retryx.Policy{}) {
		cfg.RefreshPolicy = retryx.DefaultProfileRefresh
	}
	return &SessionService{
		store:   store,
		api:     api,
		tokens:  tokens,
		cfg:     cfg,
		allowed: allowed,
		newID:   uuid.NewString,
		sleep:   sleepCtx,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func sleepCtx(ctx context.Context, d time.Duration) {
	if d <= 0 {
		return
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}

// Hydrate rebuilds the in-memory session snapshot from durable storage.
// A session is authenticated iff both token and user are present; accountId
// and userData ride along when persisted. Any malformed record forces a
// logout and reports unauthenticated. Hydration never fails open, and every
// path returns a settled snapshot.
func (s *SessionService) Hydrate(ctx context.Context, sessionID string) domain.Session {
	if sessionID == "" {
		return domain.Session{}
	}

	token, errToken := s.store.Get(ctx, sessionID, storage.KeyToken)
	rawUser, errUser := s.store.Get(ctx, sessionID, storage.KeyUser)
	if errToken != nil || errUser != nil || token == "" {
		if storageFailed(errToken) || storageFailed(errUser) {
			log.Warnf("session %s: storage error during hydrate, forcing logout", sessionID)
			s.Logout(ctx, sessionID)
		}
		return domain.Session{}
	}

	var user domain.User
	if err := json.Unmarshal([]byte(rawUser), &user); err != nil {
		log.Warnf("session %s: corrupt user record, forcing logout", sessionID)
		s.Logout(ctx, sessionID)
		return domain.Session{}
	}

	sess := domain.Session{Authenticated: true, User: &user}
	if accountID, err := s.store.Get(ctx, sessionID, storage.KeyAccountID); err == nil {
		sess.AccountID = accountID
	}
	if rawData, err := s.store.Get(ctx, sessionID, storage.KeyUserData); err == nil {
		var profile domain.AccountProfile
		if err := json.Unmarshal([]byte(rawData), &profile); err == nil {
			sess.UserData = &profile
		}
	}
	return sess
}

func storageFailed(err error) bool {
	return err != nil && err != storage.ErrNotFound
}

// CheckEmailExists asks the backend whether email is registered, returning
// the account id joined to it. On transport failure the behavior is gated:
// with DevFallback off the check fails closed; with it on, allow-listed
// emails are treated as registered under a synthesized mock account id.
func (s *SessionService) CheckEmailExists(ctx context.Context, email string) (bool, string) {
	exists, accountID, err := s.api.CheckEmail(ctx, normalizeEmail(email))
	if err == nil {
		return exists, accountID
	}

	if !s.cfg.DevFallback {
		log.Warnf("check_email failed, failing closed: %v", err)
		return false, ""
	}
	if _, ok := s.allowed[normalizeEmail(email)]; !ok {
		log.Warnf("check_email failed and %q is not allow-listed: %v", email, err)
		return false, ""
	}
	mockID := "dev-" + s.newID()
	log.Warnf("check_email failed, dev fallback matched %q, mock account %s", email, mockID)
	return true, mockID
}

// LoginResult is what a successful login hands back to the API layer.
type LoginResult struct {
	SessionID string
	Token     string
	Session   domain.Session
}

// Login authenticates by email existence alone. The password must be
// non-empty but is never verified against the backend; this mirrors the
// current product behavior and must not be changed without product
// confirmation of the intended auth semantics.
//
// On success a fresh session is persisted (token, user, accountId) and one
// inline, non-retrying profile fetch runs to enrich the user record. The
// fetch failing does not fail the login.
func (s *SessionService) Login(ctx context.Context, email, password string) (LoginResult, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return LoginResult{}, ErrMissingFields
	}

	exists, accountID := s.CheckEmailExists(ctx, email)
	if !exists {
		return LoginResult{}, ErrEmailNotFound
	}

	sessionID := s.newID()
	backendToken := "tok-" + s.newID()
	user := domain.User{Name: displayNameFromEmail(email), Email: email, Role: "user"}

	if err := s.persistSession(ctx, sessionID, backendToken, user, accountID); err != nil {
		// storage is the source of truth on reload; a login that cannot
		// persist is not a login
		log.Errorf("session %s: persisting login state: %v", sessionID, err)
		s.Logout(ctx, sessionID)
		return LoginResult{}, err
	}

	sess := domain.Session{Authenticated: true, User: &user, AccountID: accountID}

	// single inline attempt, no retry; failure is logged only
	if profile, err := s.api.GetProfile(ctx, backendToken, accountID); err != nil {
		log.Warnf("session %s: profile fetch after login failed: %v", sessionID, err)
	} else if err := s.applyProfile(ctx, sessionID, &user, profile); err != nil {
		log.Warnf("session %s: persisting profile after login failed: %v", sessionID, err)
	} else {
		sess.User = &user
		sess.UserData = &profile
	}

	token, err := s.tokens.GenerateToken(sessionID, email)
	if err != nil {
		log.Errorf("session %s: minting session token: %v", sessionID, err)
		s.Logout(ctx, sessionID)
		return LoginResult{}, err
	}
	return LoginResult{SessionID: sessionID, Token: token, Session: sess}, nil
}

func displayNameFromEmail(email string) string {
	local := email
	if at := strings.IndexByte(email, '@'); at > 0 {
		local = email[:at]
	}
	local = strings.NewReplacer(".", " ", "_", " ", "-", " ").Replace(local)
	words := strings.Fields(local)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

func (s *SessionService) persistSession(ctx context.Context, sessionID, token string, user domain.User, accountID string) error {
	rawUser, err := json.Marshal(user)
	if err != nil {
		return err
	}
	if err := s.store.Set(ctx, sessionID, storage.KeyToken, token); err != nil {
		return err
	}
	if err := s.store.Set(ctx, sessionID, storage.KeyUser, string(rawUser)); err != nil {
		return err
	}
	return s.store.Set(ctx, sessionID, storage.KeyAccountID, accountID)
}

// applyProfile persists the fetched profile and merges its display fields
// into the stored user record. user is updated in place.
func (s *SessionService) applyProfile(ctx context.Context, sessionID string, user *domain.User, profile domain.AccountProfile) error {
	if profile.AccountName != "" {
		user.Name = profile.AccountName
	}
	if profile.AccountEmail != "" {
		user.Email = profile.AccountEmail
	}
	rawUser, err := json.Marshal(*user)
	if err != nil {
		return err
	}
	rawProfile, err := json.Marshal(profile)
	if err != nil {
		return err
	}
	if err := s.store.Set(ctx, sessionID, storage.KeyUserData, string(rawProfile)); err != nil {
		return err
	}
	return s.store.Set(ctx, sessionID, storage.KeyUser, string(rawUser))
}

// SignupRequest is the validated signup form.
type SignupRequest struct {
	Name     string
	Email    string
	Password string
	Company  string
}

// Signup checks the email is unclaimed and returns the constructed user.
// It persists no session state; the caller decides whether to log in.
// The configurable delay stands in for the account-provisioning round trip
// the backend does not yet expose.
func (s *SessionService) Signup(ctx context.Context, req SignupRequest) (domain.User, error) {
	email := normalizeEmail(req.Email)
	if req.Name == "" || email == "" || req.Password == "" {
		return domain.User{}, ErrMissingFields
	}

	exists, _ := s.CheckEmailExists(ctx, email)
	if exists {
		return domain.User{}, ErrEmailAlreadyExists
	}

	s.sleep(ctx, s.cfg.SignupDelay)
	return domain.User{Name: req.Name, Email: email, Role: "user"}, nil
}

// Logout clears every durable session key best-effort and is idempotent.
// Storage failures are logged and swallowed; the session is considered
// cleared regardless.
func (s *SessionService) Logout(ctx context.Context, sessionID string) {
	if sessionID == "" {
		return
	}
	if err := s.store.Delete(ctx, sessionID, storage.SessionKeys...); err != nil {
		log.Warnf("session %s: clearing durable keys: %v", sessionID, err)
	}
	if err := s.store.Clear(ctx, sessionID); err != nil {
		log.Warnf("session %s: dropping session record: %v", sessionID, err)
	}
}

// RefreshProfile is the retrying background variant of the profile fetch:
// up to two retries a fixed delay apart, then give up silently. State is
// only written on success, so failed attempts leave nothing partial behind.
// Callers fire-and-forget; there is no result to await.
func (s *SessionService) RefreshProfile(ctx context.Context, sessionID string) {
	accountID, err := s.store.Get(ctx, sessionID, storage.KeyAccountID)
	if err != nil || accountID == "" {
		log.Warnf("session %s: profile refresh without resolved account: %v", sessionID, ErrAccountNotResolved)
		return
	}
	token, err := s.store.Get(ctx, sessionID, storage.KeyToken)
	if err != nil {
		log.Warnf("session %s: profile refresh without token: %v", sessionID, err)
		return
	}

	var profile domain.AccountProfile
	err = retryx.Do(ctx, s.cfg.RefreshPolicy, func(ctx context.Context) error {
		fetched, err := s.api.GetProfile(ctx, token, accountID)
		if err != nil {
			return err
		}
		profile = fetched
		return nil
	})
	if err != nil {
		log.Warnf("session %s: profile refresh gave up: %v", sessionID, err)
		return
	}

	user := domain.User{}
	if rawUser, err := s.store.Get(ctx, sessionID, storage.KeyUser); err == nil {
		_ = json.Unmarshal([]byte(rawUser), &user)
	}
	if err := s.applyProfile(ctx, sessionID, &user, profile); err != nil {
		log.Warnf("session %s: persisting refreshed profile: %v", sessionID, err)
	}
}

// AccountContext resolves the backend token and account id a dashboard
// fetch needs. A missing account id is terminal for the fetch, never a
// silent default.
func (s *SessionService) AccountContext(ctx context.Context, sessionID string) (token, accountID string, err error) {
	token, err = s.store.Get(ctx, sessionID, storage.KeyToken)
	if err != nil || token == "" {
		return "", "", ErrUnauthenticated
	}
	accountID, err = s.store.Get(ctx, sessionID, storage.KeyAccountID)
	if err != nil || accountID == "" {
		return "", "", ErrAccountNotResolved
	}
	return token, accountID, nil
}
