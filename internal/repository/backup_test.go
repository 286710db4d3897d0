package repository

import (
	"portfolio/internal/models"
	"testing"
	"time"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportAll_ContainsEveryCollection(t *testing.T) {
	f := newFixture(t)

	snap := f.repo.ExportAll()

	require.NotNil(t, snap.PersonalInfo)
	require.NotNil(t, snap.SiteConfig)
	require.NotNil(t, snap.Analytics)
	assert.Len(t, snap.Projects, 3)
	assert.Len(t, snap.BlogPosts, 2)
	assert.Equal(t, "2025-03-14T09:30:00Z", snap.Timestamp)
}

func TestExportImport_RoundTrip(t *testing.T) {
	src := newFixture(t)
	_, err := src.repo.Projects.Add(models.Project{Title: "Exported"})
	require.NoError(t, err)
	_, err = src.repo.BlogPosts.IncrementView(2)
	require.NoError(t, err)

	doc, err := json.Marshal(src.repo.ExportAll())
	require.NoError(t, err)

	dst := newFixture(t)
	report, err := dst.repo.ImportAll(doc)
	require.NoError(t, err)
	assert.ElementsMatch(t, models.CollectionKeys, report.Applied)
	assert.Empty(t, report.Skipped)

	assert.Equal(t, src.repo.Projects.GetAll(), dst.repo.Projects.GetAll())
	post, err := dst.repo.BlogPosts.Get(2)
	require.NoError(t, err)
	assert.Equal(t, 1, post.Views)
}

func TestImportAll_TimestampAndUnknownKeysNotWritten(t *testing.T) {
	f := newFixture(t)

	report, err := f.repo.ImportAll([]byte(`{"timestamp":"2025-01-01T00:00:00Z","hacker":"x","theme":"\"dark\""}`))
	require.NoError(t, err)

	assert.Empty(t, report.Applied)
	require.Len(t, report.Skipped, 2)
	_, stored := f.backend.Raw("timestamp")
	assert.False(t, stored)
	_, stored = f.backend.Raw("hacker")
	assert.False(t, stored)
}

func TestImportAll_PartialSnapshotKeepsOtherCollections(t *testing.T) {
	f := newFixture(t)
	_, err := f.repo.BlogPosts.IncrementLike(1)
	require.NoError(t, err)

	report, err := f.repo.ImportAll([]byte(`{"projects":[{"id":7,"title":"Only one","technologies":[],"featured":false,"publishDate":"2024-01-01"}]}`))
	require.NoError(t, err)
	assert.Equal(t, []string{models.KeyProjects}, report.Applied)

	projects := f.repo.Projects.GetAll()
	require.Len(t, projects, 1)
	assert.Equal(t, 7, projects[0].ID)

	post, err := f.repo.BlogPosts.Get(1)
	require.NoError(t, err)
	assert.Equal(t, 1, post.Likes)
}

func TestImportAll_CorruptKeysAreSkippedIndividually(t *testing.T) {
	f := newFixture(t)
	before := f.repo.Projects.GetAll()

	doc := `{
		"projects": {"not": "a list"},
		"blogPosts": [{"id":1,"title":"A"},{"id":1,"title":"B"}],
		"siteConfig": {"siteName": ""},
		"analytics": {"pageViews": {}, "totalViews": -3},
		"personalInfo": {"name":"Sam","title":"Engineer","email":"sam@example.com"}
	}`
	report, err := f.repo.ImportAll([]byte(doc))
	require.NoError(t, err)

	assert.Equal(t, []string{models.KeyPersonalInfo}, report.Applied)
	skipped := map[string]string{}
	for _, s := range report.Skipped {
		skipped[s.Key] = s.Reason
	}
	assert.Len(t, skipped, 4)
	assert.Contains(t, skipped[models.KeyBlogPosts], "duplicate id")

	assert.Equal(t, before, f.repo.Projects.GetAll())
	assert.Equal(t, "Sam", f.repo.PersonalInfo.Get().Name)
}

func TestImportAll_NullValueSkipped(t *testing.T) {
	f := newFixture(t)
	report, err := f.repo.ImportAll([]byte(`{"projects": null}`))
	require.NoError(t, err)
	assert.Empty(t, report.Applied)
	require.Len(t, report.Skipped, 1)
	assert.Len(t, f.repo.Projects.GetAll(), 3)
}

func TestImportAll_NotAnObject(t *testing.T) {
	f := newFixture(t)
	for _, doc := range []string{`[]`, `"x"`, `{oops`, ``} {
		_, err := f.repo.ImportAll([]byte(doc))
		assert.ErrorIs(t, err, ErrSchema, doc)
	}
}

func TestImportAll_AnalyticsWithoutPageViews(t *testing.T) {
	f := newFixture(t)
	_, err := f.repo.ImportAll([]byte(`{"analytics":{"totalViews":4,"uniqueVisitors":2,"lastUpdated":"2024-06-01T00:00:00Z"}}`))
	require.NoError(t, err)

	stats := f.repo.Analytics.Get()
	assert.Equal(t, 4, stats.TotalViews)
	assert.NotNil(t, stats.PageViews)
	assert.Equal(t, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), stats.LastUpdated)
}
