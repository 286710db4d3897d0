package providers

import (
	"errors"
	"fmt"
	"portfolio/internal/structures"

	"github.com/gookit/validate"
)

type CnfValidatorInterface interface {
	Validate() error
}

type CnfValidator struct {
	conf *structures.Config
}

func NewCnfValidator(conf *structures.Config) CnfValidatorInterface {
	return &CnfValidator{conf: conf}
}

func (c *CnfValidator) Validate() error {
	v := validate.Struct(c.conf)
	if !v.Validate() {
		return fmt.Errorf("invalid config: %s", v.Errors.One())
	}

	switch c.conf.Storage.Driver {
	case "file":
		if c.conf.Storage.Dir == "" {
			return errors.New("invalid config: storage.dir is required for the file driver")
		}
	case "sqlite":
		if c.conf.Storage.SQLitePath == "" {
			return errors.New("invalid config: storage.sqlitePath is required for the sqlite driver")
		}
	}

	if c.conf.Backup.Enabled {
		if c.conf.Backup.FilePath == "" {
			return errors.New("invalid config: backup.filePath is required when backups are enabled")
		}
		if c.conf.Backup.Interval < 1 {
			return errors.New("invalid config: backup.interval must be positive")
		}
	}

	for i, cred := range c.conf.Auth.Credentials {
		if cred.Username == "" {
			return fmt.Errorf("invalid config: auth.credentials[%d].username is required", i)
		}
		if cred.Password == "" && cred.PasswordHash == "" {
			return fmt.Errorf("invalid config: auth.credentials[%d] needs password or passwordHash", i)
		}
	}
	return nil
}
