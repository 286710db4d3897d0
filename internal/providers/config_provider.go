package providers

import (
	"fmt"
	"path/filepath"
	"portfolio/internal/structures"
	"strings"
	"time"

	"github.com/spf13/viper"
)

func setConfigDefaults(v *viper.Viper) {
	v.SetDefault("storage.driver", "file")
	v.SetDefault("auth.maxLoginAttempts", 5)
	v.SetDefault("auth.lockoutDuration", 15*time.Minute)
	v.SetDefault("auth.sessionTimeout", 30*time.Minute)
	v.SetDefault("auth.loginPath", "/admin/login")
	v.SetDefault("auth.adminPrefix", "/admin")
	v.SetDefault("backup.interval", time.Hour)
	v.SetDefault("cache.ttl", 30*time.Second)
	v.SetDefault("logger.maxSize", 10)
	v.SetDefault("logger.maxBackups", 3)
	v.SetDefault("logger.maxAge", 28)
}

func NewConfigProvider(flags *structures.CliFlags) (*structures.Config, error) {
	var conf structures.Config

	v := viper.New()
	filename := filepath.Base(flags.ConfigPath)
	v.AddConfigPath(filepath.Dir(flags.ConfigPath))
	v.SetConfigName(strings.TrimSuffix(filename, filepath.Ext(filename)))
	v.SetConfigType("yaml")
	setConfigDefaults(v)

	v.BindEnv("logger.level", "PORTFOLIO_LOG_LEVEL")
	v.BindEnv("storage.driver", "PORTFOLIO_STORAGE_DRIVER")
	v.BindEnv("storage.dir", "PORTFOLIO_STORAGE_DIR")
	v.BindEnv("auth.cookieSecret", "PORTFOLIO_COOKIE_SECRET")
	v.BindEnv("cache.enabled", "PORTFOLIO_CACHE_ENABLED")
	v.BindEnv("backup.interval", "PORTFOLIO_BACKUP_INTERVAL")

	err := v.ReadInConfig()
	if err != nil {
		return nil, err
	}

	err = v.Unmarshal(&conf)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into config struct: %w", err)
	}

	cnfValidator := NewCnfValidator(&conf)
	err = cnfValidator.Validate()
	if err != nil {
		return nil, err
	}

	conf.AppName = "PortfolioDaemon"
	conf.Path = flags.ConfigPath
	conf.Debug = flags.DebugMode

	return &conf, nil
}
