package backup

import (
	"os"
	"path/filepath"
	"portfolio/internal/models"
	"portfolio/internal/structures"
	"portfolio/internal/testutil"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func backupConfig(path string, enabled, restore bool) *structures.Config {
	return &structures.Config{
		Backup: structures.BackupConfig{
			Enabled:        enabled,
			FilePath:       path,
			Interval:       time.Hour,
			RestoreOnEmpty: restore,
		},
	}
}

func TestScheduler_Persist_Success(t *testing.T) {
	path := filepath.Join(t.TempDir(), "backup.zst")
	repo, _ := newRepo(t)
	metrics := testutil.NewMockMetrics()
	logger := &testutil.MockLogger{}
	fm := NewFileManager(newZstd(t), repo, logger)
	s := NewScheduler(backupConfig(path, true, true), logger, metrics, repo, fm)

	require.NoError(t, s.Persist())

	_, err := os.Stat(path)
	assert.NoError(t, err)
	assert.Equal(t, 1, metrics.Backups)
}

func TestScheduler_Persist_WriteError(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0o644))

	repo, _ := newRepo(t)
	metrics := testutil.NewMockMetrics()
	logger := &testutil.MockLogger{}
	fm := NewFileManager(newZstd(t), repo, logger)
	s := NewScheduler(backupConfig(filepath.Join(blocker, "backup.zst"), true, false), logger, metrics, repo, fm)

	assert.Error(t, s.Persist())
	assert.Equal(t, 1, logger.Count("error"))
	assert.Equal(t, 1, metrics.Backups)
}

func TestScheduler_Disabled(t *testing.T) {
	path := filepath.Join(t.TempDir(), "backup.zst")
	repo, backend := newRepo(t)
	metrics := testutil.NewMockMetrics()
	logger := &testutil.MockLogger{}
	s := NewScheduler(backupConfig(path, false, true), logger, metrics, repo, NewFileManager(newZstd(t), repo, logger))

	s.Init()
	require.NoError(t, s.Restore())
	require.NoError(t, s.Persist())
	s.Stop()

	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
	assert.Zero(t, metrics.Backups)
	assert.Empty(t, backend.Data)
}

func TestScheduler_Restore_IntoEmptyStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "backup.zst")
	compressor := newZstd(t)

	src, _ := newRepo(t)
	_, err := src.Projects.Add(models.Project{Title: "Restored", Technologies: []string{}})
	require.NoError(t, err)
	require.NoError(t, NewFileManager(compressor, src, &testutil.MockLogger{}).SaveToFile(path))

	dst, _ := newRepo(t)
	logger := &testutil.MockLogger{}
	s := NewScheduler(backupConfig(path, true, true), logger, testutil.NewMockMetrics(), dst, NewFileManager(compressor, dst, logger))

	require.NoError(t, s.Restore())
	assert.Len(t, dst.Projects.GetAll(), 4)
}

func TestScheduler_Restore_NeverOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "backup.zst")
	compressor := newZstd(t)

	src, _ := newRepo(t)
	_, err := src.Projects.Remove(1)
	require.NoError(t, err)
	require.NoError(t, NewFileManager(compressor, src, &testutil.MockLogger{}).SaveToFile(path))

	dst, _ := newRepo(t)
	require.Len(t, dst.Projects.GetAll(), 3)

	logger := &testutil.MockLogger{}
	s := NewScheduler(backupConfig(path, true, true), logger, testutil.NewMockMetrics(), dst, NewFileManager(compressor, dst, logger))

	require.NoError(t, s.Restore())
	assert.Len(t, dst.Projects.GetAll(), 3)
}

func TestScheduler_Restore_OnlyWhenConfigured(t *testing.T) {
	path := filepath.Join(t.TempDir(), "backup.zst")
	src, _ := newRepo(t)
	require.NoError(t, NewFileManager(newZstd(t), src, &testutil.MockLogger{}).SaveToFile(path))

	dst, backend := newRepo(t)
	logger := &testutil.MockLogger{}
	s := NewScheduler(backupConfig(path, true, false), logger, testutil.NewMockMetrics(), dst, NewFileManager(newZstd(t), dst, logger))

	require.NoError(t, s.Restore())
	assert.Empty(t, backend.Data)
}

func TestScheduler_Restore_CorruptedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "backup.zst")
	require.NoError(t, os.WriteFile(path, []byte{0x00, 0x01, 0x02}, 0o644))

	repo, _ := newRepo(t)
	logger := &testutil.MockLogger{}
	s := NewScheduler(backupConfig(path, true, true), logger, testutil.NewMockMetrics(), repo, NewFileManager(newZstd(t), repo, logger))

	assert.Error(t, s.Restore())
	assert.Equal(t, 1, logger.Count("error"))
}

func TestScheduler_StopNilCron(t *testing.T) {
	repo, _ := newRepo(t)
	s := &Scheduler{config: backupConfig("", true, false), repo: repo}
	assert.NotPanics(t, s.Stop)
}

func TestScheduler_InitAndStop(t *testing.T) {
	path := filepath.Join(t.TempDir(), "backup.zst")
	repo, _ := newRepo(t)
	logger := &testutil.MockLogger{}
	s := NewScheduler(backupConfig(path, true, false), logger, testutil.NewMockMetrics(), repo, NewFileManager(newZstd(t), repo, logger))

	s.Init()
	s.Stop()
}
