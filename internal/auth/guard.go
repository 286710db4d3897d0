package auth

import (
	"crypto/subtle"
	"fmt"
	"math"
	"net/url"
	"portfolio/internal/models"
	"portfolio/internal/navigation"
	"portfolio/internal/providers"
	"portfolio/internal/storage"
	"portfolio/internal/structures"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Persisted auth keys. Values go through the auth store codec.
const (
	KeyAuthToken     = "auth_token"
	KeyLoginAttempts = "login_attempts"
	KeyLockoutTime   = "lockout_time"
	KeyLastActivity  = "last_activity"
	KeyUserSession   = "user_session"
)

var authKeys = []string{KeyAuthToken, KeyLoginAttempts, KeyLockoutTime, KeyLastActivity, KeyUserSession}

const (
	MsgLoginSuccess = "Login successful"
)

type Options struct {
	MaxLoginAttempts int
	LockoutDuration  time.Duration
	SessionTimeout   time.Duration
	LoginPath        string
}

func OptionsFromConfig(conf *structures.Config) Options {
	return Options{
		MaxLoginAttempts: conf.Auth.MaxLoginAttempts,
		LockoutDuration:  conf.Auth.LockoutDuration,
		SessionTimeout:   conf.Auth.SessionTimeout,
		LoginPath:        conf.Auth.LoginPath,
	}
}

func DefaultOptions() Options {
	return Options{
		MaxLoginAttempts: 5,
		LockoutDuration:  15 * time.Minute,
		SessionTimeout:   30 * time.Minute,
		LoginPath:        "/admin/login",
	}
}

type LoginResult struct {
	Success           bool      `json:"success"`
	Message           string    `json:"message"`
	Token             string    `json:"-"`
	RemainingAttempts int       `json:"remainingAttempts"`
	LockedUntil       *time.Time `json:"lockedUntil,omitempty"`
}

type Status struct {
	IsLoggedIn              bool `json:"isLoggedIn"`
	SessionActive           bool `json:"sessionActive"`
	RemainingAttempts       int  `json:"remainingAttempts"`
	LockoutActive           bool `json:"lockoutActive"`
	RemainingLockoutMinutes int  `json:"remainingLockoutMinutes"`
}

type Decision struct {
	Allowed  bool   `json:"allowed"`
	Redirect string `json:"redirect,omitempty"`
}

type GuardInterface interface {
	Login(username, password string) LoginResult
	Logout()
	IsSessionValid() bool
	Authorize(token string) bool
	RouteGuard(path, token string) Decision
	SecurityStatus() Status
	Session() (models.Session, bool)
	OnTransition(fn func(Transition))
}

// Guard owns the single admin session slot and the login throttle. Expiry
// is evaluated lazily on the next call; there is no timer.
type Guard struct {
	mu        sync.Mutex
	store     storage.AuthStore
	verifier  CredentialVerifier
	clock     providers.Clock
	logger    providers.Logger
	routes    navigation.TableInterface
	opts      Options
	newToken  func() string
	listeners []func(Transition)
}

func NewGuard(store storage.AuthStore, verifier CredentialVerifier, clock providers.Clock, logger providers.Logger, routes navigation.TableInterface, opts Options) *Guard {
	return &Guard{
		store:    store,
		verifier: verifier,
		clock:    clock,
		logger:   logger,
		routes:   routes,
		opts:     opts,
		newToken: uuid.NewString,
	}
}

func NewGuardProvider(conf *structures.Config, store storage.AuthStore, verifier CredentialVerifier, clock providers.Clock, logger providers.Logger, routes navigation.TableInterface) GuardInterface {
	return NewGuard(store, verifier, clock, logger, routes, OptionsFromConfig(conf))
}

// Login evaluates lockout, then credentials, against a single reading of the clock.
func (g *Guard) Login(username, password string) LoginResult {
	g.mu.Lock()
	res, events := g.login(g.clock.Now(), username, password)
	g.mu.Unlock()
	g.notify(events)
	return res
}

func (g *Guard) login(now time.Time, username, password string) (LoginResult, []Transition) {
	if until, locked := g.activeLockout(now); locked {
		g.logger.Warnf(providers.TypeAuth, "Login for %q rejected, locked out until %s", username, until.Format(time.RFC3339))
		return lockedResult(now, until), []Transition{{Kind: TransitionRejected, Username: username, At: now}}
	}

	if g.verifier.Verify(username, password) {
		session := models.Session{
			Username:       username,
			LoginTimestamp: now,
			Token:          g.newToken(),
		}
		g.store.Remove(KeyLoginAttempts)
		g.store.Remove(KeyLockoutTime)
		g.store.Save(KeyUserSession, session)
		g.store.Save(KeyAuthToken, session.Token)
		g.store.Save(KeyLastActivity, now)
		g.logger.Infof(providers.TypeAuth, "User %q logged in", username)
		return LoginResult{
				Success:           true,
				Message:           MsgLoginSuccess,
				Token:             session.Token,
				RemainingAttempts: g.opts.MaxLoginAttempts,
			},
			[]Transition{{Kind: TransitionLogin, Username: username, At: now}}
	}

	attempts := g.attempts() + 1
	g.store.Save(KeyLoginAttempts, attempts)
	events := []Transition{{Kind: TransitionLoginFailed, Username: username, At: now}}

	if attempts >= g.opts.MaxLoginAttempts {
		until := now.Add(g.opts.LockoutDuration)
		g.store.Save(KeyLockoutTime, until)
		g.logger.Warnf(providers.TypeAuth, "Too many failed logins (%d), locked out until %s", attempts, until.Format(time.RFC3339))
		events = append(events, Transition{Kind: TransitionLockedOut, Username: username, At: now})
		return lockedResult(now, until), events
	}

	remaining := g.opts.MaxLoginAttempts - attempts
	g.logger.Warnf(providers.TypeAuth, "Failed login for %q, %d attempts remaining", username, remaining)
	return LoginResult{
		Success:           false,
		Message:           invalidMessage(remaining),
		RemainingAttempts: remaining,
	}, events
}

// activeLockout reports a lockout still in force. An elapsed lockout is
// cleared together with the attempt counter.
func (g *Guard) activeLockout(now time.Time) (time.Time, bool) {
	var until time.Time
	if !g.store.Load(KeyLockoutTime, &until) {
		return time.Time{}, false
	}
	if now.Before(until) {
		return until, true
	}
	g.store.Remove(KeyLockoutTime)
	g.store.Remove(KeyLoginAttempts)
	return time.Time{}, false
}

func (g *Guard) attempts() int {
	var n int
	if !g.store.Load(KeyLoginAttempts, &n) || n < 0 {
		return 0
	}
	return n
}

// Logout clears the session, the attempt counter and any lockout.
func (g *Guard) Logout() {
	g.mu.Lock()
	now := g.clock.Now()
	var session models.Session
	hadSession := g.store.Load(KeyUserSession, &session)
	for _, k := range authKeys {
		g.store.Remove(k)
	}
	g.mu.Unlock()

	if hadSession {
		g.logger.Infof(providers.TypeAuth, "User %q logged out", session.Username)
		g.notify([]Transition{{Kind: TransitionLogout, Username: session.Username, At: now}})
	}
}

// IsSessionValid refreshes the session activity or, once the timeout has
// passed, erases the session.
func (g *Guard) IsSessionValid() bool {
	g.mu.Lock()
	ok, events := g.check(g.clock.Now(), nil)
	g.mu.Unlock()
	g.notify(events)
	return ok
}

// Authorize is IsSessionValid for a caller presenting token. A wrong token
// neither refreshes nor ends the session.
func (g *Guard) Authorize(token string) bool {
	g.mu.Lock()
	ok, events := g.check(g.clock.Now(), &token)
	g.mu.Unlock()
	g.notify(events)
	return ok
}

func (g *Guard) check(now time.Time, token *string) (bool, []Transition) {
	var session models.Session
	if !g.store.Load(KeyUserSession, &session) {
		return false, nil
	}

	var last time.Time
	if !g.store.Load(KeyLastActivity, &last) {
		last = session.LoginTimestamp
	}
	if now.Sub(last) >= g.opts.SessionTimeout {
		g.clearSession()
		g.logger.Infof(providers.TypeAuth, "Session of %q expired", session.Username)
		return false, []Transition{{Kind: TransitionSessionExpired, Username: session.Username, At: now}}
	}

	if token != nil && subtle.ConstantTimeCompare([]byte(*token), []byte(session.Token)) != 1 {
		return false, nil
	}

	g.store.Save(KeyLastActivity, now)
	return true, nil
}

func (g *Guard) clearSession() {
	g.store.Remove(KeyUserSession)
	g.store.Remove(KeyAuthToken)
	g.store.Remove(KeyLastActivity)
}

// RouteGuard is re-evaluated on every navigation. Public paths pass; the rest
// need a valid session for token, otherwise the caller is sent to the login page.
func (g *Guard) RouteGuard(path, token string) Decision {
	if !g.routes.RequiresAuth(path) {
		return Decision{Allowed: true}
	}
	if g.Authorize(token) {
		return Decision{Allowed: true}
	}
	return Decision{Allowed: false, Redirect: g.opts.LoginPath + "?redirect=" + url.QueryEscape(path)}
}

// SecurityStatus is a read-only projection; it never refreshes or purges.
func (g *Guard) SecurityStatus() Status {
	g.mu.Lock()
	defer g.mu.Unlock()

	now := g.clock.Now()
	var status Status

	var session models.Session
	if g.store.Load(KeyUserSession, &session) {
		status.IsLoggedIn = true
		var last time.Time
		if !g.store.Load(KeyLastActivity, &last) {
			last = session.LoginTimestamp
		}
		status.SessionActive = now.Sub(last) < g.opts.SessionTimeout
	}

	var until time.Time
	if g.store.Load(KeyLockoutTime, &until) && now.Before(until) {
		status.LockoutActive = true
		status.RemainingLockoutMinutes = minutesLeft(now, until)
		return status
	}

	attempts := g.attempts()
	if g.store.Exists(KeyLockoutTime) {
		// elapsed lockout, not cleared yet
		attempts = 0
	}
	status.RemainingAttempts = max(g.opts.MaxLoginAttempts-attempts, 0)
	return status
}

func (g *Guard) Session() (models.Session, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()

	var session models.Session
	ok := g.store.Load(KeyUserSession, &session)
	return session, ok
}

func lockedResult(now, until time.Time) LoginResult {
	return LoginResult{
		Success:     false,
		Message:     fmt.Sprintf("Too many failed attempts. Try again in %d minutes.", minutesLeft(now, until)),
		LockedUntil: &until,
	}
}

func invalidMessage(remaining int) string {
	if remaining == 1 {
		return "Invalid credentials. 1 attempt remaining."
	}
	return fmt.Sprintf("Invalid credentials. %d attempts remaining.", remaining)
}

// minutesLeft rounds up so that a lockout never reads as 0 minutes.
func minutesLeft(now, until time.Time) int {
	m := int(math.Ceil(until.Sub(now).Minutes()))
	return max(m, 1)
}
