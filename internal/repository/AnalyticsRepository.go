package repository

import "portfolio/internal/models"

type AnalyticsRepository struct {
	root *Repository
}

func (a *AnalyticsRepository) load() models.Analytics {
	stats := loadOrSeed(a.root, models.KeyAnalytics, func() models.Analytics {
		return models.DefaultAnalytics(a.root.now())
	})
	if stats.PageViews == nil {
		stats.PageViews = make(map[string]int)
	}
	return stats
}

func (a *AnalyticsRepository) Get() models.Analytics {
	a.root.mu.Lock()
	defer a.root.mu.Unlock()
	return a.load()
}

// IncrementPageView counts one view of page and one toward the total.
func (a *AnalyticsRepository) IncrementPageView(page string) (models.Analytics, error) {
	a.root.mu.Lock()
	defer a.root.mu.Unlock()

	stats := a.load()
	stats.IncPageView(page, a.root.now())
	if err := a.root.persist(models.KeyAnalytics, stats); err != nil {
		return models.Analytics{}, err
	}
	return stats, nil
}

func (a *AnalyticsRepository) IncrementUniqueVisitor() (models.Analytics, error) {
	a.root.mu.Lock()
	defer a.root.mu.Unlock()

	stats := a.load()
	stats.IncUniqueVisitor(a.root.now())
	if err := a.root.persist(models.KeyAnalytics, stats); err != nil {
		return models.Analytics{}, err
	}
	return stats, nil
}

func (a *AnalyticsRepository) Reset() (models.Analytics, error) {
	a.root.mu.Lock()
	defer a.root.mu.Unlock()

	stats := models.DefaultAnalytics(a.root.now())
	if err := a.root.persist(models.KeyAnalytics, stats); err != nil {
		return models.Analytics{}, err
	}
	return stats, nil
}
