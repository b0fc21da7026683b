// Package auth implements the client side of the passwordless magic-link
// flow: the session state machine, the persisted token, and startup
// revalidation.
package auth

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/ami-friedman/budget-compass/internal/api"
	"github.com/ami-friedman/budget-compass/internal/models"
)

// State is the session's position in the magic-link flow.
type State int

const (
	// Anonymous means no valid session: show the login form.
	Anonymous State = iota

	// LinkSent means the backend accepted a login request and emailed a
	// magic link; the client waits for the user to bring the one-time
	// token back.
	LinkSent

	// Authenticated means a session token is held and the current user
	// has been fetched.
	Authenticated
)

func (s State) String() string {
	switch s {
	case Anonymous:
		return "anonymous"
	case LinkSent:
		return "link-sent"
	case Authenticated:
		return "authenticated"
	}
	return "unknown"
}

var (
	// ErrLoginFailed covers a failed magic-link request.
	ErrLoginFailed = errors.New("could not send login link")

	// ErrVerifyFailed covers an invalid or expired one-time token.
	ErrVerifyFailed = errors.New("invalid or expired token")
)

// Session drives the magic-link state machine and owns the persisted
// session token. It implements api.TokenSource so the client attaches the
// bearer token automatically.
type Session struct {
	client *api.Client
	tokens *TokenFile

	mu    sync.Mutex
	state State
	token string
	user  *models.User
	subs  []func(State)
}

// NewSession creates an anonymous session. Call Resume to pick up a
// persisted token from a previous run.
func NewSession(client *api.Client, tokens *TokenFile) *Session {
	return &Session{client: client, tokens: tokens}
}

// Token returns the current session token ("" when anonymous). Satisfies
// api.TokenSource.
func (s *Session) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

// State returns the current machine state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// User returns the authenticated user, or nil.
func (s *Session) User() *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

// Subscribe registers fn to run (synchronously) on every state transition.
func (s *Session) Subscribe(fn func(State)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, fn)
}

// RequestLink asks the backend to email a magic link: anonymous → link-sent.
func (s *Session) RequestLink(ctx context.Context, email string) error {
	if _, err := s.client.Login(ctx, email); err != nil {
		slog.Error("Magic-link request failed", "error", err)
		return ErrLoginFailed
	}
	s.transition(LinkSent, "", nil)
	return nil
}

// Verify exchanges the one-time token for a session token, persists it, and
// fetches the current user: link-sent → authenticated. A failed exchange
// returns to anonymous.
func (s *Session) Verify(ctx context.Context, oneTime string) error {
	resp, err := s.client.Verify(ctx, oneTime)
	if err != nil {
		slog.Warn("Token verification failed", "error", err)
		s.transition(Anonymous, "", nil)
		return ErrVerifyFailed
	}

	if err := s.tokens.Save(resp.AccessToken); err != nil {
		// The session still works for this run; only persistence
		// across restarts is lost.
		slog.Warn("Persisting session token failed", "error", err)
	}

	s.mu.Lock()
	s.token = resp.AccessToken
	s.mu.Unlock()

	user, err := s.client.CurrentUser(ctx)
	if err != nil {
		slog.Warn("Fetching user after verify failed", "error", err)
		s.Logout()
		return ErrVerifyFailed
	}

	s.transition(Authenticated, resp.AccessToken, user)
	return nil
}

// Resume attempts best-effort revalidation of a persisted token on startup.
// Any failure — no token, expired token, rejected user fetch — silently
// lands in anonymous with the stored token cleared; resuming is never a
// user-facing error.
func (s *Session) Resume(ctx context.Context) {
	token, err := s.tokens.Load()
	if err != nil || token == "" {
		s.transition(Anonymous, "", nil)
		return
	}

	if expired(token) {
		slog.Debug("Stored session token already expired")
		s.tokens.Clear()
		s.transition(Anonymous, "", nil)
		return
	}

	s.mu.Lock()
	s.token = token
	s.mu.Unlock()

	user, err := s.client.CurrentUser(ctx)
	if err != nil {
		slog.Debug("Session revalidation failed", "error", err)
		s.tokens.Clear()
		s.transition(Anonymous, "", nil)
		return
	}

	s.transition(Authenticated, token, user)
}

// Logout clears the session and the persisted token: any state → anonymous.
func (s *Session) Logout() {
	s.tokens.Clear()
	s.transition(Anonymous, "", nil)
}

func (s *Session) transition(state State, token string, user *models.User) {
	s.mu.Lock()
	s.state = state
	s.token = token
	s.user = user
	subs := make([]func(State), len(s.subs))
	copy(subs, s.subs)
	s.mu.Unlock()

	slog.Info("Session state changed", "state", state.String())
	for _, fn := range subs {
		fn(state)
	}
}

// expired inspects the token's exp claim without verifying the signature —
// the server is the authority on validity, this only skips a doomed network
// round-trip on startup. Tokens that don't parse as JWTs or carry no exp
// are treated as live and left for the server to judge.
func expired(token string) bool {
	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(time.Now())
}
