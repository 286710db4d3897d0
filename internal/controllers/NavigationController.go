package controllers

import (
	"net/http"
	"portfolio/internal/navigation"
)

type NavigationController struct {
	table navigation.TableInterface
}

func NewNavigationController(table navigation.TableInterface) *NavigationController {
	return &NavigationController{table: table}
}

type navigationResponse struct {
	Visible []navigation.Route `json:"visible"`
	Public  []navigation.Route `json:"public"`
	Admin   []navigation.Route `json:"admin"`
}

func (nc *NavigationController) GetRoutes(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, navigationResponse{
		Visible: nc.table.VisibleRoutes(),
		Public:  nc.table.PublicRoutes(),
		Admin:   nc.table.AdminRoutes(),
	})
}

type matchResponse struct {
	Route        navigation.Route `json:"route"`
	RequiresAuth bool             `json:"requiresAuth"`
}

// Match resolves ?path= against the table, exact paths first, then patterns.
func (nc *NavigationController) Match(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Query().Get("path")
	route, ok := nc.table.MatchByPath(path)
	if !ok {
		route, ok = nc.table.MatchByPattern(path)
	}
	if !ok {
		writeError(w, http.StatusNotFound, "no route matches "+path)
		return
	}
	writeJSON(w, http.StatusOK, matchResponse{Route: route, RequiresAuth: nc.table.RequiresAuth(path)})
}
