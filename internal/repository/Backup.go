package repository

import (
	"errors"
	"fmt"
	"portfolio/internal/models"
	"portfolio/internal/providers"
	"sort"
	"time"

	json "github.com/goccy/go-json"
)

var ErrSchema = errors.New("snapshot does not match schema")

// ImportIssue describes a snapshot key that was not applied.
type ImportIssue struct {
	Key    string `json:"key"`
	Reason string `json:"reason"`
}

type ImportReport struct {
	Applied []string      `json:"applied"`
	Skipped []ImportIssue `json:"skipped"`
}

// ExportAll captures every collection plus the export time.
func (r *Repository) ExportAll() models.Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()

	info := r.PersonalInfo.load()
	conf := r.SiteConfig.load()
	stats := r.Analytics.load()
	return models.Snapshot{
		PersonalInfo: &info,
		Projects:     r.Projects.load(),
		BlogPosts:    r.BlogPosts.load(),
		SiteConfig:   &conf,
		Analytics:    &stats,
		Timestamp:    r.now().UTC().Format(time.RFC3339),
	}
}

// ImportAll replaces each collection present in doc. Every key is decoded and
// validated on its own; a key that fails is skipped and reported while the
// rest are still applied. Only a doc that is not a JSON object fails as a whole.
func (r *Repository) ImportAll(doc []byte) (ImportReport, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(doc, &raw); err != nil {
		return ImportReport{}, fmt.Errorf("%w: %s", ErrSchema, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	report := ImportReport{Applied: []string{}, Skipped: []ImportIssue{}}
	keys := make([]string, 0, len(raw))
	for k := range raw {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		if key == "timestamp" {
			continue
		}
		value, err := decodeCollection(key, raw[key])
		if err != nil {
			r.logger.Warnf(providers.TypeStorage, "Import skipped %s: %s", key, err)
			report.Skipped = append(report.Skipped, ImportIssue{Key: key, Reason: err.Error()})
			continue
		}
		if err := r.persist(key, value); err != nil {
			report.Skipped = append(report.Skipped, ImportIssue{Key: key, Reason: err.Error()})
			continue
		}
		report.Applied = append(report.Applied, key)
	}
	r.logger.Infof(providers.TypeStorage, "Import applied %d keys, skipped %d", len(report.Applied), len(report.Skipped))
	return report, nil
}

func decodeCollection(key string, data json.RawMessage) (any, error) {
	switch key {
	case models.KeyPersonalInfo:
		var v models.PersonalInfo
		if err := decodeStrict(data, &v); err != nil {
			return nil, err
		}
		return v, schemaCheck(validateRecord(&v))
	case models.KeySiteConfig:
		var v models.SiteConfig
		if err := decodeStrict(data, &v); err != nil {
			return nil, err
		}
		return v, schemaCheck(validateRecord(&v))
	case models.KeyAnalytics:
		var v models.Analytics
		if err := decodeStrict(data, &v); err != nil {
			return nil, err
		}
		if v.PageViews == nil {
			v.PageViews = make(map[string]int)
		}
		if v.TotalViews < 0 || v.UniqueVisitors < 0 {
			return nil, fmt.Errorf("%w: negative counter", ErrSchema)
		}
		return v, nil
	case models.KeyProjects:
		var v []models.Project
		if err := decodeStrict(data, &v); err != nil {
			return nil, err
		}
		return v, checkList(v)
	case models.KeyBlogPosts:
		var v []models.BlogPost
		if err := decodeStrict(data, &v); err != nil {
			return nil, err
		}
		return v, checkList(v)
	default:
		return nil, fmt.Errorf("%w: unknown collection", ErrSchema)
	}
}

func decodeStrict(data json.RawMessage, dst any) error {
	if len(data) == 0 || string(data) == "null" {
		return fmt.Errorf("%w: empty value", ErrSchema)
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("%w: %s", ErrSchema, err)
	}
	return nil
}

func schemaCheck(err error) error {
	if err != nil {
		return fmt.Errorf("%w: %s", ErrSchema, err)
	}
	return nil
}

// checkList validates each record and that ids are unique.
func checkList[T identified](items []T) error {
	seen := make(map[int]struct{}, len(items))
	for i := range items {
		if err := validateRecord(&items[i]); err != nil {
			return fmt.Errorf("%w: item %d: %s", ErrSchema, i, err)
		}
		id := items[i].GetID()
		if _, dup := seen[id]; dup {
			return fmt.Errorf("%w: duplicate id %d", ErrSchema, id)
		}
		seen[id] = struct{}{}
	}
	return nil
}
