package backup

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"portfolio/internal/backup/interfaces"
	"portfolio/internal/models"
	"portfolio/internal/providers"
	"portfolio/internal/repository"

	json "github.com/goccy/go-json"
)

// SnapshotRepository is the part of the repository a backup needs.
type SnapshotRepository interface {
	ExportAll() models.Snapshot
	ImportAll(doc []byte) (repository.ImportReport, error)
	HasContent() bool
}

type FileManager struct {
	repo       SnapshotRepository
	compressor interfaces.CompressorInterface
	logger     providers.Logger
}

func NewFileManager(compressor interfaces.CompressorInterface, repo SnapshotRepository, logger providers.Logger) *FileManager {
	return &FileManager{
		compressor: compressor,
		repo:       repo,
		logger:     logger,
	}
}

// SaveToFile writes a compressed snapshot of every collection, replacing
// fileName atomically.
func (f *FileManager) SaveToFile(fileName string) error {
	jsonData, err := json.Marshal(f.repo.ExportAll())
	if err != nil {
		return err
	}
	data, err := f.compressor.Compress(jsonData)
	if err != nil {
		return err
	}
	return writeAtomic(fileName, data)
}

// LoadFromFile imports a snapshot written by SaveToFile. A missing file is
// not an error. Uncompressed JSON exports (see the export command) are
// accepted as well.
func (f *FileManager) LoadFromFile(fileName string) (repository.ImportReport, error) {
	data, err := os.ReadFile(fileName)
	if err != nil {
		if os.IsNotExist(err) {
			return repository.ImportReport{}, nil
		}
		return repository.ImportReport{}, err
	}

	doc, err := f.compressor.Decompress(data)
	switch {
	case errors.Is(err, ErrNotCompressed):
		trimmed := bytes.TrimSpace(data)
		if len(trimmed) == 0 || trimmed[0] != '{' {
			return repository.ImportReport{}, fmt.Errorf("unreadable backup %s: neither zstd nor JSON", fileName)
		}
		f.logger.Warnf(providers.TypeStorage, "Backup %s is not compressed, reading as plain JSON", fileName)
		doc = trimmed
	case err != nil:
		return repository.ImportReport{}, fmt.Errorf("unreadable backup %s: %w", fileName, err)
	}

	report, err := f.repo.ImportAll(doc)
	if err != nil {
		return report, err
	}
	for _, issue := range report.Skipped {
		f.logger.Warnf(providers.TypeStorage, "Backup key %s not restored: %s", issue.Key, issue.Reason)
	}
	return report, nil
}

func writeAtomic(fileName string, data []byte) error {
	if dir := filepath.Dir(fileName); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	tmpFile := fileName + ".tmp"
	file, err := os.Create(tmpFile)
	if err != nil {
		return err
	}

	if _, err = file.Write(data); err != nil {
		file.Close()
		os.Remove(tmpFile)
		return err
	}

	if err = file.Sync(); err != nil {
		file.Close()
		os.Remove(tmpFile)
		return err
	}

	if err = file.Close(); err != nil {
		os.Remove(tmpFile)
		return err
	}

	return os.Rename(tmpFile, fileName)
}
