package providers

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"portfolio/internal/structures"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

type TypeEnum int

const (
	TypeApp TypeEnum = iota
	TypeGet
	TypePost
	TypeAuth
	TypeStorage
)

var logFiles = map[TypeEnum]string{
	TypeApp:     "app.log",
	TypeGet:     "http.log",
	TypePost:    "http.log",
	TypeAuth:    "auth.log",
	TypeStorage: "storage.log",
}

func (t TypeEnum) String() string {
	switch t {
	case TypeGet:
		return "get"
	case TypePost:
		return "post"
	case TypeAuth:
		return "auth"
	case TypeStorage:
		return "storage"
	default:
		return "app"
	}
}

type Logger interface {
	Errorf(t TypeEnum, format string, args ...interface{})
	Warnf(t TypeEnum, format string, args ...interface{})
	Debugf(t TypeEnum, format string, args ...interface{})
	Infof(t TypeEnum, format string, args ...interface{})
	Fatalf(t TypeEnum, format string, args ...interface{})
	Close()
}

type LogProvider struct {
	loggers map[TypeEnum]zerolog.Logger
	writers []io.Closer
}

// GetLogTypeByRequestType sends reads to the get channel and every write
// method to the post channel.
func GetLogTypeByRequestType(method string) TypeEnum {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodOptions:
		return TypeGet
	}
	return TypePost
}

func NewLogProvider(conf *structures.Config) (Logger, error) {
	level, err := zerolog.ParseLevel(conf.Logger.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", conf.Logger.Level, err)
	}

	info, err := os.Stat(conf.Logger.Dir)
	if err != nil {
		return nil, fmt.Errorf("log dir: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("log dir %s is not a directory", conf.Logger.Dir)
	}

	lp := &LogProvider{loggers: make(map[TypeEnum]zerolog.Logger)}
	rotators := make(map[string]*lumberjack.Logger)

	for t, name := range logFiles {
		rotator, ok := rotators[name]
		if !ok {
			path := filepath.Join(conf.Logger.Dir, name)
			// lumberjack keeps the mode of an existing file
			f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, os.FileMode(conf.Logger.Mode))
			if err != nil {
				lp.Close()
				return nil, err
			}
			_ = f.Close()

			rotator = &lumberjack.Logger{
				Filename:   path,
				MaxSize:    conf.Logger.MaxSize,
				MaxBackups: conf.Logger.MaxBackups,
				MaxAge:     conf.Logger.MaxAge,
				Compress:   conf.Logger.Compress,
			}
			rotators[name] = rotator
			lp.writers = append(lp.writers, rotator)
		}

		var out io.Writer = rotator
		if conf.Debug {
			out = zerolog.MultiLevelWriter(rotator, zerolog.ConsoleWriter{Out: os.Stderr})
		}
		lp.loggers[t] = zerolog.New(out).Level(level).With().Timestamp().Str("type", t.String()).Logger()
	}

	return lp, nil
}

func (l *LogProvider) logger(t TypeEnum) *zerolog.Logger {
	lg, ok := l.loggers[t]
	if !ok {
		lg = l.loggers[TypeApp]
	}
	return &lg
}

func (l *LogProvider) Errorf(t TypeEnum, format string, args ...interface{}) {
	l.logger(t).Error().Msgf(format, args...)
}

func (l *LogProvider) Warnf(t TypeEnum, format string, args ...interface{}) {
	l.logger(t).Warn().Msgf(format, args...)
}

func (l *LogProvider) Debugf(t TypeEnum, format string, args ...interface{}) {
	l.logger(t).Debug().Msgf(format, args...)
}

func (l *LogProvider) Infof(t TypeEnum, format string, args ...interface{}) {
	l.logger(t).Info().Msgf(format, args...)
}

func (l *LogProvider) Fatalf(t TypeEnum, format string, args ...interface{}) {
	l.logger(t).Fatal().Msgf(format, args...)
}

func (l *LogProvider) Close() {
	for _, w := range l.writers {
		_ = w.Close()
	}
}
