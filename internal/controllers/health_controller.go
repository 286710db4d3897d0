package controllers

import (
	"fmt"
	"net/http"
	"portfolio/internal/providers"
	"portfolio/internal/repository"
	"time"

	json "github.com/goccy/go-json"
)

type HealthController struct {
	repo      *repository.Repository
	cache     providers.CacheProviderInterface
	startTime time.Time
}

type healthResponse struct {
	Status        string  `json:"status"`
	Uptime        string  `json:"uptime"`
	UptimeSeconds float64 `json:"uptime_seconds"`
	Seeded        bool    `json:"seeded"`
	StoredKeys    int     `json:"stored_keys"`
	StoredBytes   int     `json:"stored_bytes"`
	CachedItems   int64   `json:"cached_responses"`
}

func (hc *HealthController) Health(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}

	uptime := time.Since(hc.startTime)
	info := hc.repo.StorageInfo()
	resp := healthResponse{
		Status:        "ok",
		Uptime:        formatDuration(uptime),
		UptimeSeconds: uptime.Seconds(),
		Seeded:        hc.repo.HasContent(),
		StoredKeys:    len(info.Keys),
		StoredBytes:   info.Total,
		CachedItems:   hc.cache.Len(),
	}

	gson, err := json.Marshal(resp)
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(gson)
}

func formatDuration(d time.Duration) string {
	hours := int(d.Hours())
	minutes := int(d.Minutes()) % 60
	seconds := int(d.Seconds()) % 60
	return fmt.Sprintf("%dh%dm%ds", hours, minutes, seconds)
}

func NewHealthController(repo *repository.Repository, cache providers.CacheProviderInterface) *HealthController {
	return &HealthController{
		repo:      repo,
		cache:     cache,
		startTime: time.Now(),
	}
}
