package providers

import (
	"net/http"
	"portfolio/internal/structures"

	"github.com/gorilla/sessions"
)

const (
	SessionCookieName = "portfolio_session"
	sessionTokenKey   = "token"
)

// SessionCookieProviderInterface carries the opaque admin session token
// between the guard and the browser.
type SessionCookieProviderInterface interface {
	Token(r *http.Request) string
	SetToken(w http.ResponseWriter, r *http.Request, token string) error
	Clear(w http.ResponseWriter, r *http.Request) error
}

type SessionCookieProvider struct {
	store *sessions.CookieStore
}

func NewSessionCookieProvider(conf *structures.Config) SessionCookieProviderInterface {
	store := sessions.NewCookieStore([]byte(conf.Auth.CookieSecret))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   int(conf.Auth.SessionTimeout.Seconds()),
		HttpOnly: true,
		Secure:   conf.Auth.SecureCookie,
		SameSite: http.SameSiteStrictMode,
	}
	return &SessionCookieProvider{store: store}
}

func (p *SessionCookieProvider) Token(r *http.Request) string {
	sess, err := p.store.Get(r, SessionCookieName)
	if err != nil {
		return ""
	}
	token, _ := sess.Values[sessionTokenKey].(string)
	return token
}

func (p *SessionCookieProvider) SetToken(w http.ResponseWriter, r *http.Request, token string) error {
	// a stale cookie signed with an old secret still yields a fresh session
	sess, _ := p.store.Get(r, SessionCookieName)
	sess.Values[sessionTokenKey] = token
	return sess.Save(r, w)
}

func (p *SessionCookieProvider) Clear(w http.ResponseWriter, r *http.Request) error {
	sess, _ := p.store.Get(r, SessionCookieName)
	sess.Options.MaxAge = -1
	sess.Values = make(map[interface{}]interface{})
	return sess.Save(r, w)
}
