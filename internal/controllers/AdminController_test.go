package controllers

import (
	"net/http"
	"portfolio/internal/models"
	"portfolio/internal/repository"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateProject(t *testing.T) {
	e := newEnv(t)
	ac := NewAdminController(e.logger, e.repo, e.cache)
	e.cache.Set("projects", []byte(`[]`))

	rr := call(ac.CreateProject, http.MethodPost, "/api/admin/projects",
		map[string]any{"id": 77, "title": "Budget App", "technologies": []string{"Svelte"}}, nil)

	require.Equal(t, http.StatusCreated, rr.Code)
	created := decode[models.Project](t, rr)
	assert.Equal(t, 4, created.ID, "client ids are ignored")
	assert.Equal(t, "2025-03-14", created.PublishDate)
	assert.Empty(t, e.cache.Data)
	assert.Equal(t, 1, e.cache.Clears)
}

func TestCreateProject_Invalid(t *testing.T) {
	e := newEnv(t)
	ac := NewAdminController(e.logger, e.repo, e.cache)

	rr := call(ac.CreateProject, http.MethodPost, "/api/admin/projects", map[string]any{"description": "no title"}, nil)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, decode[errorResponse](t, rr).Error, "invalid record")

	rr = call(ac.CreateProject, http.MethodPost, "/api/admin/projects", "[", nil)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Zero(t, e.cache.Clears)
}

func TestUpdateProject_MergesPatch(t *testing.T) {
	e := newEnv(t)
	ac := NewAdminController(e.logger, e.repo, e.cache)

	rr := call(ac.UpdateProject, http.MethodPatch, "/api/admin/projects/2", map[string]any{"featured": true}, id("2"))

	require.Equal(t, http.StatusOK, rr.Code)
	updated := decode[models.Project](t, rr)
	assert.True(t, updated.Featured)
	assert.Equal(t, "Weather Dashboard", updated.Title)

	rr = call(ac.UpdateProject, http.MethodPatch, "/api/admin/projects/9", map[string]any{"featured": true}, id("9"))
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestDeleteProject_ReturnsRemaining(t *testing.T) {
	e := newEnv(t)
	ac := NewAdminController(e.logger, e.repo, e.cache)

	rr := call(ac.DeleteProject, http.MethodDelete, "/api/admin/projects/1", nil, id("1"))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Len(t, decode[[]models.Project](t, rr), 2)

	rr = call(ac.DeleteProject, http.MethodDelete, "/api/admin/projects/1", nil, id("1"))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Len(t, decode[[]models.Project](t, rr), 2)
}

func TestBlogPostCRUD(t *testing.T) {
	e := newEnv(t)
	ac := NewAdminController(e.logger, e.repo, e.cache)

	rr := call(ac.CreateBlogPost, http.MethodPost, "/api/admin/blog-posts",
		map[string]any{"title": "Context in Go", "views": 500, "likes": 20}, nil)
	require.Equal(t, http.StatusCreated, rr.Code)
	created := decode[models.BlogPost](t, rr)
	assert.Equal(t, 3, created.ID)
	assert.Zero(t, created.Views)
	assert.Zero(t, created.Likes)
	assert.Equal(t, []string{}, created.Tags)

	rr = call(ac.UpdateBlogPost, http.MethodPatch, "/api/admin/blog-posts/3", map[string]any{"excerpt": "Cancellation done right"}, id("3"))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "Cancellation done right", decode[models.BlogPost](t, rr).Excerpt)

	rr = call(ac.DeleteBlogPost, http.MethodDelete, "/api/admin/blog-posts/3", nil, id("3"))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Len(t, decode[[]models.BlogPost](t, rr), 2)
}

func TestUpdatePersonalInfo(t *testing.T) {
	e := newEnv(t)
	ac := NewAdminController(e.logger, e.repo, e.cache)

	rr := call(ac.UpdatePersonalInfo, http.MethodPatch, "/api/admin/personal-info", map[string]any{"location": "Berlin"}, nil)
	require.Equal(t, http.StatusOK, rr.Code)
	info := decode[models.PersonalInfo](t, rr)
	assert.Equal(t, "Berlin", info.Location)
	assert.Equal(t, "Alex Morgan", info.Name)

	rr = call(ac.UpdatePersonalInfo, http.MethodPatch, "/api/admin/personal-info", map[string]any{"name": ""}, nil)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "Alex Morgan", e.repo.PersonalInfo.Get().Name)
}

func TestUpdateSiteConfig(t *testing.T) {
	e := newEnv(t)
	ac := NewAdminController(e.logger, e.repo, e.cache)

	rr := call(ac.UpdateSiteConfig, http.MethodPatch, "/api/admin/site-config", map[string]any{"theme": "dark"}, nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "dark", e.repo.SiteConfig.Get().Theme)
}

func TestAnalyticsEndpoints(t *testing.T) {
	e := newEnv(t)
	ac := NewAdminController(e.logger, e.repo, e.cache)
	_, err := e.repo.Analytics.IncrementPageView("/")
	require.NoError(t, err)

	rr := call(ac.GetAnalytics, http.MethodGet, "/api/admin/analytics", nil, nil)
	assert.Equal(t, 1, decode[models.Analytics](t, rr).TotalViews)

	rr = call(ac.ResetAnalytics, http.MethodPost, "/api/admin/analytics/reset", nil, nil)
	require.Equal(t, http.StatusOK, rr.Code)
	stats := decode[models.Analytics](t, rr)
	assert.Zero(t, stats.TotalViews)
	assert.Empty(t, stats.PageViews)
}

func TestExportImport(t *testing.T) {
	src := newEnv(t)
	rr := call(NewAdminController(src.logger, src.repo, src.cache).Export, http.MethodGet, "/api/admin/export", nil, nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Header().Get("Content-Disposition"), "portfolio-export.json")
	snapshot := decode[models.Snapshot](t, rr)
	assert.Equal(t, "2025-03-14T09:30:00Z", snapshot.Timestamp)

	dst := newEnv(t)
	ac := NewAdminController(dst.logger, dst.repo, dst.cache)
	rr = call(ac.Import, http.MethodPost, "/api/admin/import", rr.Body.String(), nil)
	require.Equal(t, http.StatusOK, rr.Code)

	report := decode[repository.ImportReport](t, rr)
	assert.ElementsMatch(t, models.CollectionKeys, report.Applied)
	assert.Empty(t, report.Skipped)
	assert.Equal(t, 1, dst.cache.Clears)
}

func TestImport_PartialAndRejected(t *testing.T) {
	e := newEnv(t)
	ac := NewAdminController(e.logger, e.repo, e.cache)

	rr := call(ac.Import, http.MethodPost, "/api/admin/import", `{"siteConfig":{"siteName":"New"},"projects":{"oops":1}}`, nil)
	require.Equal(t, http.StatusOK, rr.Code)
	report := decode[repository.ImportReport](t, rr)
	assert.Equal(t, []string{models.KeySiteConfig}, report.Applied)
	require.Len(t, report.Skipped, 1)
	assert.Equal(t, models.KeyProjects, report.Skipped[0].Key)
	assert.Equal(t, "New", e.repo.SiteConfig.Get().SiteName)

	rr = call(ac.Import, http.MethodPost, "/api/admin/import", `[1,2,3]`, nil)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestResetAll(t *testing.T) {
	e := newEnv(t)
	ac := NewAdminController(e.logger, e.repo, e.cache)
	_, err := e.repo.Projects.Remove(1)
	require.NoError(t, err)

	rr := call(ac.ResetAll, http.MethodPost, "/api/admin/reset", nil, nil)

	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Equal(t, models.DefaultProjects(), e.repo.Projects.GetAll())
	assert.Equal(t, 1, e.cache.Clears)
}

func TestStorageInfo(t *testing.T) {
	e := newEnv(t)
	ac := NewAdminController(e.logger, e.repo, e.cache)
	e.repo.Projects.GetAll()

	rr := call(ac.StorageInfo, http.MethodGet, "/api/admin/storage", nil, nil)

	info := decode[repository.StorageInfo](t, rr)
	assert.Contains(t, info.Keys, models.KeyProjects)
	assert.Equal(t, info.Keys[models.KeyProjects], info.Total)
}

func TestPreferences(t *testing.T) {
	e := newEnv(t)
	ac := NewAdminController(e.logger, e.repo, e.cache)
	theme := map[string]string{"key": models.KeyTheme}

	rr := call(ac.GetPreference, http.MethodGet, "/api/admin/preferences/theme", nil, theme)
	assert.Equal(t, http.StatusNotFound, rr.Code)

	rr = call(ac.PutPreference, http.MethodPut, "/api/admin/preferences/theme", `"dark"`, theme)
	assert.Equal(t, http.StatusNoContent, rr.Code)

	rr = call(ac.GetPreference, http.MethodGet, "/api/admin/preferences/theme", nil, theme)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `"dark"`, rr.Body.String())

	rr = call(ac.PutPreference, http.MethodPut, "/api/admin/preferences/password", `"x"`, map[string]string{"key": "password"})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}
