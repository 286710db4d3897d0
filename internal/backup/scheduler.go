package backup

import (
	"portfolio/internal/backup/interfaces"
	"portfolio/internal/providers"
	"portfolio/internal/structures"
	"sync"
	"time"

	"github.com/roylee0704/gron"
)

type Scheduler struct {
	config      *structures.Config
	logger      providers.Logger
	metrics     providers.MetricsProviderInterface
	repo        SnapshotRepository
	fileManager *FileManager
	cron        *gron.Cron
	opsMu       sync.Mutex
}

func (s *Scheduler) Init() {
	if !s.config.Backup.Enabled {
		s.logger.Infof(providers.TypeApp, "Backups disabled")
		return
	}

	s.cron = gron.New()
	s.cron.AddFunc(gron.Every(s.config.Backup.Interval), func() {
		if err := s.Persist(); err == nil {
			s.logger.Infof(providers.TypeStorage, "Backed up content to %s", s.config.Backup.FilePath)
		}
	})
	s.cron.Start()
}

func (s *Scheduler) Stop() {
	if s.cron != nil {
		s.cron.Stop()
	}
}

// Restore imports the backup file, but only into an empty store when
// backup.restoreOnEmpty is set. Existing content is never overwritten.
func (s *Scheduler) Restore() error {
	if !s.config.Backup.Enabled || !s.config.Backup.RestoreOnEmpty {
		return nil
	}
	if s.repo.HasContent() {
		s.logger.Debugf(providers.TypeStorage, "Store already has content, skipping restore")
		return nil
	}

	s.opsMu.Lock()
	defer s.opsMu.Unlock()

	report, err := s.fileManager.LoadFromFile(s.config.Backup.FilePath)
	if err != nil {
		s.logger.Errorf(providers.TypeStorage, "Error while restoring backup: %s", err)
		return err
	}
	if len(report.Applied) > 0 {
		s.logger.Infof(providers.TypeStorage, "Restored %d collections from %s", len(report.Applied), s.config.Backup.FilePath)
	}
	return nil
}

func (s *Scheduler) Persist() error {
	if !s.config.Backup.Enabled {
		return nil
	}

	s.opsMu.Lock()
	defer s.opsMu.Unlock()

	start := time.Now()
	err := s.fileManager.SaveToFile(s.config.Backup.FilePath)
	s.metrics.ObserveBackupDuration(time.Since(start))
	if err != nil {
		s.logger.Errorf(providers.TypeStorage, "Error while persisting backup: %s", err)
		return err
	}
	return nil
}

func NewScheduler(config *structures.Config, logger providers.Logger, metrics providers.MetricsProviderInterface, repo SnapshotRepository, fileManager *FileManager) interfaces.SchedulerInterface {
	return &Scheduler{
		config:      config,
		logger:      logger,
		metrics:     metrics,
		repo:        repo,
		fileManager: fileManager,
	}
}
