package structures

import "time"

type Server struct {
	Host string `yaml:"host" validate:"required"`
	Port int    `yaml:"port" validate:"required|uint|min:1"`
}

type StorageConfig struct {
	Driver     string `yaml:"driver" validate:"required|in:file,sqlite"`
	Dir        string `yaml:"dir" validate:"unixPath"`
	SQLitePath string `yaml:"sqlitePath" validate:"unixPath"`
}

type BackupConfig struct {
	Enabled        bool          `yaml:"enabled"`
	FilePath       string        `yaml:"filePath" validate:"unixPath"`
	Interval       time.Duration `yaml:"interval"`
	RestoreOnEmpty bool          `yaml:"restoreOnEmpty"`
}

type Credential struct {
	Username     string `yaml:"username"`
	Password     string `yaml:"password"`
	PasswordHash string `yaml:"passwordHash"`
}

type AuthConfig struct {
	MaxLoginAttempts int           `yaml:"maxLoginAttempts" validate:"required|int|min:1"`
	LockoutDuration  time.Duration `yaml:"lockoutDuration" validate:"required|min:1"`
	SessionTimeout   time.Duration `yaml:"sessionTimeout" validate:"required|min:1"`
	LoginPath        string        `yaml:"loginPath" validate:"required"`
	AdminPrefix      string        `yaml:"adminPrefix" validate:"required"`
	CookieSecret     string        `yaml:"cookieSecret" validate:"required|minLen:16"`
	SecureCookie     bool          `yaml:"secureCookie"`
	Credentials      []Credential  `yaml:"credentials"`
}

type LoggerConfig struct {
	Level      string `yaml:"level" validate:"required|in:trace,debug,info,warn,error,fatal,panic"`
	Mode       uint32 `yaml:"mode" validate:"required|uint"`
	Dir        string `yaml:"dir" validate:"required|unixPath"`
	MaxSize    int    `yaml:"maxSize"`
	MaxBackups int    `yaml:"maxBackups"`
	MaxAge     int    `yaml:"maxAge"`
	Compress   bool   `yaml:"compress"`
}

type CacheConfig struct {
	Enabled bool          `yaml:"enabled"`
	Size    int           `yaml:"size"`
	TTL     time.Duration `yaml:"ttl"`
}

type MetricsConfig struct {
	Enabled bool `yaml:"enabled"`
}

type CorsConfig struct {
	AllowedOrigins []string `yaml:"allowedOrigins"`
}

type ApiConfig struct {
	SimulatedLatency time.Duration `yaml:"simulatedLatency"`
}

type Config struct {
	AppName   string
	Debug     bool
	Path      string
	WebServer Server        `yaml:"webServer"`
	Storage   StorageConfig `yaml:"storage"`
	Backup    BackupConfig  `yaml:"backup"`
	Auth      AuthConfig    `yaml:"auth"`
	Logger    LoggerConfig  `yaml:"logger"`
	Cache     CacheConfig   `yaml:"cache"`
	Metrics   MetricsConfig `yaml:"metrics"`
	Cors      CorsConfig    `yaml:"cors"`
	Api       ApiConfig     `yaml:"api"`
}
