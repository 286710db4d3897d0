package repository

import (
	"errors"
	"fmt"
	"portfolio/internal/models"
	"portfolio/internal/providers"
	"portfolio/internal/storage"
	"sync"
	"time"

	"github.com/gookit/validate"
)

var (
	ErrNotFound = errors.New("record not found")
	ErrStorage  = errors.New("storage write failed")
	ErrInvalid  = errors.New("invalid record")
)

const dateLayout = "2006-01-02"

// Repository is the typed view over the content collections. It is built
// once and shared; every operation holds mu for its full read-modify-write.
type Repository struct {
	mu      sync.Mutex
	store   storage.ContentStore
	clock   providers.Clock
	logger  providers.Logger
	metrics providers.MetricsProviderInterface

	Projects     *ProjectRepository
	BlogPosts    *BlogPostRepository
	PersonalInfo *PersonalInfoRepository
	SiteConfig   *SiteConfigRepository
	Analytics    *AnalyticsRepository
	Preferences  *PreferencesRepository
}

func NewRepository(store storage.ContentStore, clock providers.Clock, logger providers.Logger, metrics providers.MetricsProviderInterface) *Repository {
	r := &Repository{
		store:   store,
		clock:   clock,
		logger:  logger,
		metrics: metrics,
	}
	r.Projects = &ProjectRepository{root: r}
	r.BlogPosts = &BlogPostRepository{root: r}
	r.PersonalInfo = &PersonalInfoRepository{root: r}
	r.SiteConfig = &SiteConfigRepository{root: r}
	r.Analytics = &AnalyticsRepository{root: r}
	r.Preferences = &PreferencesRepository{root: r}
	return r
}

// loadOrSeed returns the value stored under key. An absent or unreadable
// value is replaced by the default, which is written back.
func loadOrSeed[T any](r *Repository, key string, seed func() T) T {
	var value T
	if r.store.Load(key, &value) {
		return value
	}
	r.logger.Infof(providers.TypeStorage, "Seeding %s with defaults", key)
	value = seed()
	if !r.store.Save(key, value) {
		r.logger.Errorf(providers.TypeStorage, "Unable to persist default %s", key)
	}
	return value
}

func (r *Repository) persist(key string, value any) error {
	if !r.store.Save(key, value) {
		return fmt.Errorf("%w: %s", ErrStorage, key)
	}
	return nil
}

func (r *Repository) today() string {
	return r.clock.Now().Format(dateLayout)
}

func (r *Repository) now() time.Time {
	return r.clock.Now()
}

func validateRecord(v any) error {
	vd := validate.Struct(v)
	if !vd.Validate() {
		return fmt.Errorf("%w: %s", ErrInvalid, vd.Errors.One())
	}
	return nil
}

type identified interface {
	GetID() int
}

// nextID is one past the highest id in items, or 1 for an empty collection.
func nextID[T identified](items []T) int {
	maxID := 0
	for _, it := range items {
		if it.GetID() > maxID {
			maxID = it.GetID()
		}
	}
	return maxID + 1
}

func indexByID[T identified](items []T, id int) int {
	for i, it := range items {
		if it.GetID() == id {
			return i
		}
	}
	return -1
}

func withoutID[T identified](items []T, id int) []T {
	out := make([]T, 0, len(items))
	for _, it := range items {
		if it.GetID() != id {
			out = append(out, it)
		}
	}
	return out
}

// ResetAll overwrites every collection with its default.
func (r *Repository) ResetAll() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	var errs []error
	errs = append(errs, r.persist(models.KeyPersonalInfo, models.DefaultPersonalInfo()))
	errs = append(errs, r.persist(models.KeyProjects, models.DefaultProjects()))
	errs = append(errs, r.persist(models.KeyBlogPosts, models.DefaultBlogPosts()))
	errs = append(errs, r.persist(models.KeySiteConfig, models.DefaultSiteConfig()))
	errs = append(errs, r.persist(models.KeyAnalytics, models.DefaultAnalytics(now)))
	r.logger.Warnf(providers.TypeStorage, "All collections reset to defaults")
	return errors.Join(errs...)
}

type StorageInfo struct {
	Keys  map[string]int `json:"keys"`
	Total int            `json:"total"`
}

// StorageInfo reports stored bytes per key. Diagnostics only.
func (r *Repository) StorageInfo() StorageInfo {
	r.mu.Lock()
	defer r.mu.Unlock()

	info := StorageInfo{Keys: make(map[string]int)}
	for _, k := range r.store.Keys() {
		info.Keys[k] = r.store.Size(k)
	}
	info.Total = r.store.TotalSize()
	return info
}

// HasContent tells whether the store has been seeded or imported at least once.
func (r *Repository) HasContent() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.store.Exists(models.KeyProjects)
}
