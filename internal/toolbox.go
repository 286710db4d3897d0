package internal

import (
	"portfolio/internal/backup"
	"portfolio/internal/providers"
	"portfolio/internal/repository"
	"portfolio/internal/storage"
)

// Toolbox is what the offline commands (export, import) need: the store and
// the backup codec, without the HTTP server.
type Toolbox struct {
	Repo    *repository.Repository
	Backup  *backup.FileManager
	Backend storage.Backend
	Logger  providers.Logger
}

func NewToolbox(repo *repository.Repository, fm *backup.FileManager, backend storage.Backend, logger providers.Logger) *Toolbox {
	return &Toolbox{Repo: repo, Backup: fm, Backend: backend, Logger: logger}
}

func (t *Toolbox) Close() {
	_ = t.Backend.Close()
	t.Logger.Close()
}
