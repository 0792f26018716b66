package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/dmitrijs2005/blogctl/internal/client/api"
	"github.com/dmitrijs2005/blogctl/internal/client/models"
	"github.com/dmitrijs2005/blogctl/internal/client/repositories/state"
	"github.com/dmitrijs2005/blogctl/internal/logging"
)

const tokenStateKey = "token"

// Session is an immutable snapshot of the authentication state handed
// to listeners and accessors.
type Session struct {
	User      *models.User
	Token     string
	AuthKnown bool
}

// SessionService owns the authenticated user and the bearer token. The
// token is persisted in the local state store so a restart keeps the
// login; the user itself is resolved from the server on startup.
//
// Invariants: Token absent implies User absent. AuthKnown becomes true
// exactly once, after the first resolution attempt (or immediately when
// no token was stored), and never goes back to false. Consumers must
// not present identity-dependent output before AuthKnown is true.
type SessionService struct {
	client api.Client
	states state.Repository
	log    logging.Logger

	mu        sync.Mutex
	user      *models.User
	token     string
	authKnown bool
	listeners []func(Session)
}

// NewSessionService constructs a SessionService bound to the given API
// client and local state store.
func NewSessionService(client api.Client, states state.Repository, log logging.Logger) *SessionService {
	return &SessionService{
		client: client,
		states: states,
		log:    log.With("component", "session"),
	}
}

// Subscribe registers fn to be called after every session mutation.
// Listeners run synchronously on the mutating call, with a snapshot of
// the new state.
func (s *SessionService) Subscribe(fn func(Session)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}

func (s *SessionService) commit(user *models.User, token string) {
	s.mu.Lock()
	s.user = user
	s.token = token
	s.authKnown = true
	snap := Session{User: s.user, Token: s.token, AuthKnown: s.authKnown}
	listeners := append(([]func(Session))(nil), s.listeners...)
	s.mu.Unlock()

	for _, fn := range listeners {
		fn(snap)
	}
}

// Initialize loads the persisted token and resolves the current user
// from it. Resolution failure of any kind clears the stored token
// (fail-closed): a stale identity is never reported. The failure itself
// is not returned, the session simply comes up logged out; only local
// storage errors propagate. After Initialize returns, AuthKnown is true.
func (s *SessionService) Initialize(ctx context.Context) error {
	value, err := s.states.Get(ctx, tokenStateKey)
	if err != nil {
		return fmt.Errorf("load token: %w", err)
	}

	token := string(value)
	if token == "" {
		s.commit(nil, "")
		return nil
	}

	if tokenExpired(token, time.Now()) {
		s.log.Warn(ctx, "stored token is expired, discarding session")
		return s.discard(ctx)
	}

	user, err := s.client.CurrentUser(ctx, token)
	if err != nil {
		s.log.Warn(ctx, "could not resolve stored session", "error", err)
		return s.discard(ctx)
	}

	s.commit(user, token)
	return nil
}

func (s *SessionService) discard(ctx context.Context) error {
	if err := s.states.Delete(ctx, tokenStateKey); err != nil {
		return fmt.Errorf("remove token: %w", err)
	}
	s.commit(nil, "")
	return nil
}

// Login persists the token durably and installs the identity. No server
// round-trip happens here: the caller has already completed
// authentication and holds the server-issued user.
func (s *SessionService) Login(ctx context.Context, user *models.User, token string) error {
	if err := s.states.Set(ctx, tokenStateKey, []byte(token)); err != nil {
		return fmt.Errorf("persist token: %w", err)
	}
	s.commit(user, token)
	return nil
}

// Logout clears the persisted token and the in-memory identity.
// Idempotent.
func (s *SessionService) Logout(ctx context.Context) error {
	return s.discard(ctx)
}

// User returns the resolved identity, or nil when logged out.
func (s *SessionService) User() *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user
}

// Token returns the current credential, or "" when logged out.
func (s *SessionService) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

// AuthKnown reports whether the initial session resolution has finished.
func (s *SessionService) AuthKnown() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.authKnown
}

// IsLoggedIn reports whether an identity is present.
func (s *SessionService) IsLoggedIn() bool {
	return s.User() != nil
}

// tokenExpired reports whether token carries an exp claim in the past.
// The token is parsed without signature verification: the server stays
// the authority on validity, this only avoids a doomed network call on
// startup. Tokens that do not parse or carry no exp are not considered
// expired here.
func tokenExpired(token string, now time.Time) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(now)
}
