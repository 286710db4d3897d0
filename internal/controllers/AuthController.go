package controllers

import (
	"net/http"
	"portfolio/internal/auth"
	"portfolio/internal/providers"
)

type AuthController struct {
	logger  providers.Logger
	guard   auth.GuardInterface
	cookies providers.SessionCookieProviderInterface
}

func NewAuthController(logger providers.Logger, guard auth.GuardInterface, cookies providers.SessionCookieProviderInterface) *AuthController {
	return &AuthController{
		logger:  logger,
		guard:   guard,
		cookies: cookies,
	}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login answers 200 on success, 423 while locked out and 401 otherwise. The
// body always carries the guard's LoginResult.
func (ac *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var payload loginRequest
	if !decodeBody(w, r, &payload) {
		return
	}

	res := ac.guard.Login(payload.Username, payload.Password)
	switch {
	case res.Success:
		if err := ac.cookies.SetToken(w, r, res.Token); err != nil {
			ac.logger.Errorf(providers.TypeAuth, "Unable to set session cookie: %s", err)
			writeError(w, http.StatusInternalServerError, "Internal Server Error")
			return
		}
		writeJSON(w, http.StatusOK, res)
	case res.LockedUntil != nil:
		writeJSON(w, http.StatusLocked, res)
	default:
		writeJSON(w, http.StatusUnauthorized, res)
	}
}

// Logout ends the admin session only for the holder of its cookie. Anyone
// else just gets their cookie cleared; the session and a running lockout stay.
func (ac *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	if ac.guard.Authorize(ac.cookies.Token(r)) {
		ac.guard.Logout()
	}
	if err := ac.cookies.Clear(w, r); err != nil {
		ac.logger.Warnf(providers.TypeAuth, "Unable to clear session cookie: %s", err)
	}
	w.WriteHeader(http.StatusNoContent)
}

func (ac *AuthController) Status(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, ac.guard.SecurityStatus())
}

// Guard tells the front end whether it may navigate to ?path=.
func (ac *AuthController) Guard(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Query().Get("path")
	if path == "" {
		writeError(w, http.StatusBadRequest, "path is required")
		return
	}
	writeJSON(w, http.StatusOK, ac.guard.RouteGuard(path, ac.cookies.Token(r)))
}
