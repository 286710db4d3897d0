package controllers

import (
	"net/http"
	"portfolio/internal/models"
	"portfolio/internal/providers"
	"portfolio/internal/repository"

	json "github.com/goccy/go-json"
)

// ContentController serves the public site. Reads go through the response
// cache; any write drops it.
type ContentController struct {
	logger providers.Logger
	repo   *repository.Repository
	cache  providers.CacheProviderInterface
}

func NewContentController(logger providers.Logger, repo *repository.Repository, cache providers.CacheProviderInterface) *ContentController {
	return &ContentController{
		logger: logger,
		repo:   repo,
		cache:  cache,
	}
}

func (cc *ContentController) serveFromCacheOrCompute(w http.ResponseWriter, cacheKey string, compute func() (any, error)) {
	if data, ok := cc.cache.Get(cacheKey); ok {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(data)
		return
	}

	result, err := compute()
	if err != nil {
		writeRepoError(w, cc.logger, err)
		return
	}

	gson, err := json.Marshal(result)
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	cc.cache.Set(cacheKey, gson)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(gson)
}

func featuredOnly(r *http.Request) bool {
	return r.URL.Query().Get("featured") == "true"
}

func (cc *ContentController) GetPersonalInfo(w http.ResponseWriter, r *http.Request) {
	cc.serveFromCacheOrCompute(w, "personal-info", func() (any, error) {
		return cc.repo.PersonalInfo.Get(), nil
	})
}

func (cc *ContentController) GetSiteConfig(w http.ResponseWriter, r *http.Request) {
	cc.serveFromCacheOrCompute(w, "site-config", func() (any, error) {
		return cc.repo.SiteConfig.Get(), nil
	})
}

func (cc *ContentController) GetProjects(w http.ResponseWriter, r *http.Request) {
	if featuredOnly(r) {
		cc.serveFromCacheOrCompute(w, "projects:featured", func() (any, error) {
			return cc.repo.Projects.Featured(), nil
		})
		return
	}
	cc.serveFromCacheOrCompute(w, "projects", func() (any, error) {
		return cc.repo.Projects.GetAll(), nil
	})
}

func (cc *ContentController) GetProject(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeRepoError(w, cc.logger, err)
		return
	}
	project, err := cc.repo.Projects.Get(id)
	if err != nil {
		writeRepoError(w, cc.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, project)
}

// GetBlogPosts lists posts newest first.
func (cc *ContentController) GetBlogPosts(w http.ResponseWriter, r *http.Request) {
	if featuredOnly(r) {
		cc.serveFromCacheOrCompute(w, "blog-posts:featured", func() (any, error) {
			return cc.repo.BlogPosts.Featured(), nil
		})
		return
	}
	cc.serveFromCacheOrCompute(w, "blog-posts", func() (any, error) {
		return cc.repo.BlogPosts.ByDate(), nil
	})
}

func (cc *ContentController) GetBlogPost(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeRepoError(w, cc.logger, err)
		return
	}
	post, err := cc.repo.BlogPosts.Get(id)
	if err != nil {
		writeRepoError(w, cc.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, post)
}

func (cc *ContentController) ViewBlogPost(w http.ResponseWriter, r *http.Request) {
	cc.bumpBlogPost(w, r, cc.repo.BlogPosts.IncrementView)
}

func (cc *ContentController) LikeBlogPost(w http.ResponseWriter, r *http.Request) {
	cc.bumpBlogPost(w, r, cc.repo.BlogPosts.IncrementLike)
}

func (cc *ContentController) bumpBlogPost(w http.ResponseWriter, r *http.Request, bump func(int) (models.BlogPost, error)) {
	id, err := idParam(r)
	if err != nil {
		writeRepoError(w, cc.logger, err)
		return
	}
	post, err := bump(id)
	if err != nil {
		writeRepoError(w, cc.logger, err)
		return
	}
	cc.cache.Clear()
	writeJSON(w, http.StatusOK, post)
}

type pageViewRequest struct {
	Page string `json:"page"`
}

func (cc *ContentController) TrackPageView(w http.ResponseWriter, r *http.Request) {
	var payload pageViewRequest
	if !decodeBody(w, r, &payload) {
		return
	}
	if payload.Page == "" {
		writeError(w, http.StatusBadRequest, "page is required")
		return
	}
	if _, err := cc.repo.Analytics.IncrementPageView(payload.Page); err != nil {
		writeRepoError(w, cc.logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (cc *ContentController) TrackVisitor(w http.ResponseWriter, r *http.Request) {
	if _, err := cc.repo.Analytics.IncrementUniqueVisitor(); err != nil {
		writeRepoError(w, cc.logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
