package auth

import (
	"net/http"
	"net/url"
	"portfolio/internal/providers"

	json "github.com/goccy/go-json"
)

type unauthorizedResponse struct {
	Error    string `json:"error"`
	Redirect string `json:"redirect"`
}

// Protect lets a request through only with a valid admin session cookie.
// The session is refreshed on every admin request, and the cookie is issued
// again so its lifetime slides along with the server-side timeout.
func Protect(guard GuardInterface, cookies providers.SessionCookieProviderInterface, loginPath string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := cookies.Token(r)
		if guard.Authorize(token) {
			// a failed re-issue leaves the current cookie in place
			_ = cookies.SetToken(w, r, token)
			next.ServeHTTP(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(unauthorizedResponse{
			Error:    "authentication required",
			Redirect: loginPath + "?redirect=" + url.QueryEscape(r.URL.Path),
		})
	})
}

// MetricsListener feeds guard transitions into the login counters.
func MetricsListener(metrics providers.MetricsProviderInterface) func(Transition) {
	return func(t Transition) {
		switch t.Kind {
		case TransitionLogin:
			metrics.IncLoginAttempts("success")
		case TransitionLoginFailed:
			metrics.IncLoginAttempts("failure")
		case TransitionRejected:
			metrics.IncLoginAttempts("locked")
		case TransitionLockedOut:
			metrics.IncLockouts()
		}
	}
}
