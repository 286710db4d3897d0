// Package navigation holds the static route table of the site. It is pure
// data: the front end renders its menus from it and the auth guard uses it to
// decide which paths need a session.
package navigation

import (
	"portfolio/internal/structures"
	"sort"
	"strings"
)

type Route struct {
	Path         string `json:"path"`
	Name         string `json:"name"`
	Component    string `json:"component"`
	IsPublic     bool   `json:"isPublic"`
	IsNavVisible bool   `json:"isNavVisible"`
	Order        int    `json:"order"`
}

// AdminPrefix is the default path prefix of the admin routes.
const AdminPrefix = "/admin"

var defaultRoutes = []Route{
	{Path: "/", Name: "Home", Component: "HomePage", IsPublic: true, IsNavVisible: true, Order: 1},
	{Path: "/about", Name: "About", Component: "AboutPage", IsPublic: true, IsNavVisible: true, Order: 2},
	{Path: "/portfolio", Name: "Portfolio", Component: "PortfolioPage", IsPublic: true, IsNavVisible: true, Order: 3},
	{Path: "/portfolio/:id", Name: "Project", Component: "ProjectDetailPage", IsPublic: true, Order: 4},
	{Path: "/blog", Name: "Blog", Component: "BlogPage", IsPublic: true, IsNavVisible: true, Order: 5},
	{Path: "/blog/:id", Name: "Blog Post", Component: "BlogPostPage", IsPublic: true, Order: 6},
	{Path: "/contact", Name: "Contact", Component: "ContactPage", IsPublic: true, IsNavVisible: true, Order: 7},
	{Path: "/admin/login", Name: "Admin Login", Component: "AdminLoginPage", IsPublic: true, Order: 20},
	{Path: "/admin", Name: "Dashboard", Component: "AdminDashboard", Order: 21},
	{Path: "/admin/profile", Name: "Profile", Component: "AdminProfile", Order: 22},
	{Path: "/admin/projects", Name: "Projects", Component: "AdminProjects", Order: 23},
	{Path: "/admin/projects/:id", Name: "Edit Project", Component: "AdminProjectEditor", Order: 24},
	{Path: "/admin/blog", Name: "Posts", Component: "AdminBlog", Order: 25},
	{Path: "/admin/blog/:id", Name: "Edit Post", Component: "AdminBlogEditor", Order: 26},
	{Path: "/admin/analytics", Name: "Analytics", Component: "AdminAnalytics", Order: 27},
	{Path: "/admin/settings", Name: "Settings", Component: "AdminSettings", Order: 28},
}

type TableInterface interface {
	VisibleRoutes() []Route
	PublicRoutes() []Route
	AdminRoutes() []Route
	MatchByPath(path string) (Route, bool)
	MatchByPattern(path string) (Route, bool)
	RequiresAuth(path string) bool
}

type Table struct {
	routes      []Route
	adminPrefix string
}

func NewTable(routes []Route, adminPrefix string) *Table {
	cp := make([]Route, len(routes))
	copy(cp, routes)
	return &Table{routes: cp, adminPrefix: adminPrefix}
}

func NewDefaultTable() TableInterface {
	return NewTable(defaultRoutes, AdminPrefix)
}

func NewTableProvider(conf *structures.Config) TableInterface {
	prefix := conf.Auth.AdminPrefix
	if prefix == "" {
		prefix = AdminPrefix
	}
	return NewTable(defaultRoutes, strings.TrimSuffix(prefix, "/"))
}

func (t *Table) filter(keep func(Route) bool) []Route {
	out := make([]Route, 0, len(t.routes))
	for _, r := range t.routes {
		if keep(r) {
			out = append(out, r)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out
}

func (t *Table) VisibleRoutes() []Route {
	return t.filter(func(r Route) bool { return r.IsNavVisible })
}

func (t *Table) PublicRoutes() []Route {
	return t.filter(func(r Route) bool { return r.IsPublic })
}

func (t *Table) AdminRoutes() []Route {
	return t.filter(func(r Route) bool { return !r.IsPublic && t.underAdmin(r.Path) })
}

func (t *Table) underAdmin(path string) bool {
	return path == t.adminPrefix || strings.HasPrefix(path, t.adminPrefix+"/")
}

func (t *Table) MatchByPath(path string) (Route, bool) {
	for _, r := range t.routes {
		if r.Path == path {
			return r, true
		}
	}
	return Route{}, false
}

// MatchByPattern tries an exact match first, then the declared patterns in
// order; a ":name" segment matches any single non-empty segment.
func (t *Table) MatchByPattern(path string) (Route, bool) {
	if r, ok := t.MatchByPath(path); ok {
		return r, true
	}
	segments := splitPath(path)
	for _, r := range t.routes {
		if matchSegments(splitPath(r.Path), segments) {
			return r, true
		}
	}
	return Route{}, false
}

// RequiresAuth reports whether path belongs to a non-public route. Unknown
// paths under the admin prefix are protected too.
func (t *Table) RequiresAuth(path string) bool {
	if r, ok := t.MatchByPattern(path); ok {
		return !r.IsPublic
	}
	return t.underAdmin(path)
}

func splitPath(path string) []string {
	trimmed := strings.Trim(path, "/")
	if trimmed == "" {
		return []string{}
	}
	return strings.Split(trimmed, "/")
}

func matchSegments(pattern, segments []string) bool {
	if len(pattern) != len(segments) {
		return false
	}
	for i, p := range pattern {
		if strings.HasPrefix(p, ":") {
			if segments[i] == "" {
				return false
			}
			continue
		}
		if p != segments[i] {
			return false
		}
	}
	return true
}
