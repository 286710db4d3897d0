package controllers

import (
	"io"
	"net/http"
	"portfolio/internal/models"
	"portfolio/internal/providers"
	"portfolio/internal/repository"

	json "github.com/goccy/go-json"
	"github.com/gorilla/mux"
)

// AdminController backs the CMS. Every route is mounted behind auth.Protect.
type AdminController struct {
	logger providers.Logger
	repo   *repository.Repository
	cache  providers.CacheProviderInterface
}

func NewAdminController(logger providers.Logger, repo *repository.Repository, cache providers.CacheProviderInterface) *AdminController {
	return &AdminController{
		logger: logger,
		repo:   repo,
		cache:  cache,
	}
}

// written answers a successful write and invalidates cached public reads.
func (ac *AdminController) written(w http.ResponseWriter, status int, v any) {
	ac.cache.Clear()
	writeJSON(w, status, v)
}

func (ac *AdminController) CreateProject(w http.ResponseWriter, r *http.Request) {
	var project models.Project
	if !decodeBody(w, r, &project) {
		return
	}
	created, err := ac.repo.Projects.Add(project)
	if err != nil {
		writeRepoError(w, ac.logger, err)
		return
	}
	ac.logger.Infof(providers.TypePost, "Project %d created", created.ID)
	ac.written(w, http.StatusCreated, created)
}

func (ac *AdminController) UpdateProject(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeRepoError(w, ac.logger, err)
		return
	}
	var patch models.ProjectPatch
	if !decodeBody(w, r, &patch) {
		return
	}
	updated, err := ac.repo.Projects.Update(id, patch)
	if err != nil {
		writeRepoError(w, ac.logger, err)
		return
	}
	ac.written(w, http.StatusOK, updated)
}

// DeleteProject answers the remaining list; an unknown id is not an error.
func (ac *AdminController) DeleteProject(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeRepoError(w, ac.logger, err)
		return
	}
	remaining, err := ac.repo.Projects.Remove(id)
	if err != nil {
		writeRepoError(w, ac.logger, err)
		return
	}
	ac.written(w, http.StatusOK, remaining)
}

func (ac *AdminController) CreateBlogPost(w http.ResponseWriter, r *http.Request) {
	var post models.BlogPost
	if !decodeBody(w, r, &post) {
		return
	}
	created, err := ac.repo.BlogPosts.Add(post)
	if err != nil {
		writeRepoError(w, ac.logger, err)
		return
	}
	ac.logger.Infof(providers.TypePost, "Blog post %d created", created.ID)
	ac.written(w, http.StatusCreated, created)
}

func (ac *AdminController) UpdateBlogPost(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeRepoError(w, ac.logger, err)
		return
	}
	var patch models.BlogPostPatch
	if !decodeBody(w, r, &patch) {
		return
	}
	updated, err := ac.repo.BlogPosts.Update(id, patch)
	if err != nil {
		writeRepoError(w, ac.logger, err)
		return
	}
	ac.written(w, http.StatusOK, updated)
}

func (ac *AdminController) DeleteBlogPost(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeRepoError(w, ac.logger, err)
		return
	}
	remaining, err := ac.repo.BlogPosts.Remove(id)
	if err != nil {
		writeRepoError(w, ac.logger, err)
		return
	}
	ac.written(w, http.StatusOK, remaining)
}

func (ac *AdminController) UpdatePersonalInfo(w http.ResponseWriter, r *http.Request) {
	var patch models.PersonalInfoPatch
	if !decodeBody(w, r, &patch) {
		return
	}
	updated, err := ac.repo.PersonalInfo.Update(patch)
	if err != nil {
		writeRepoError(w, ac.logger, err)
		return
	}
	ac.written(w, http.StatusOK, updated)
}

func (ac *AdminController) UpdateSiteConfig(w http.ResponseWriter, r *http.Request) {
	var patch models.SiteConfigPatch
	if !decodeBody(w, r, &patch) {
		return
	}
	updated, err := ac.repo.SiteConfig.Update(patch)
	if err != nil {
		writeRepoError(w, ac.logger, err)
		return
	}
	ac.written(w, http.StatusOK, updated)
}

func (ac *AdminController) GetAnalytics(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, ac.repo.Analytics.Get())
}

func (ac *AdminController) ResetAnalytics(w http.ResponseWriter, r *http.Request) {
	stats, err := ac.repo.Analytics.Reset()
	if err != nil {
		writeRepoError(w, ac.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

func (ac *AdminController) Export(w http.ResponseWriter, r *http.Request) {
	snapshot := ac.repo.ExportAll()
	w.Header().Set("Content-Disposition", `attachment; filename="portfolio-export.json"`)
	writeJSON(w, http.StatusOK, snapshot)
}

// Import applies every valid collection of the uploaded snapshot and reports
// the rejected ones; partial success still answers 200.
func (ac *AdminController) Import(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxImportBodySize)
	doc, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Bad Request")
		return
	}
	report, err := ac.repo.ImportAll(doc)
	if err != nil {
		writeRepoError(w, ac.logger, err)
		return
	}
	ac.logger.Infof(providers.TypePost, "Import applied %v", report.Applied)
	ac.written(w, http.StatusOK, report)
}

func (ac *AdminController) ResetAll(w http.ResponseWriter, r *http.Request) {
	if err := ac.repo.ResetAll(); err != nil {
		writeRepoError(w, ac.logger, err)
		return
	}
	ac.cache.Clear()
	w.WriteHeader(http.StatusNoContent)
}

func (ac *AdminController) StorageInfo(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, ac.repo.StorageInfo())
}

func (ac *AdminController) GetPreference(w http.ResponseWriter, r *http.Request) {
	value, err := ac.repo.Preferences.Get(mux.Vars(r)["key"])
	if err != nil {
		writeRepoError(w, ac.logger, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(value)
}

func (ac *AdminController) PutPreference(w http.ResponseWriter, r *http.Request) {
	var value json.RawMessage
	if !decodeBody(w, r, &value) {
		return
	}
	if err := ac.repo.Preferences.Set(mux.Vars(r)["key"], value); err != nil {
		writeRepoError(w, ac.logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
