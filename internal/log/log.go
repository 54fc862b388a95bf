package log

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var defaultLogger = zap.NewNop()

func Get() *zap.Logger {
	return defaultLogger
}

// Set replaces the default logger with a development console logger that
// writes to path. An empty path keeps the no-op logger: the terminal UI owns
// stdout and stderr.
func Set(path, level string) error {
	if path == "" {
		return nil
	}

	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return errors.Wrapf(err, "parse log level %q", level)
	}

	cfg := zap.Config{
		Level:            zap.NewAtomicLevelAt(lvl),
		Development:      true,
		Encoding:         "console",
		EncoderConfig:    zap.NewDevelopmentEncoderConfig(),
		OutputPaths:      []string{path},
		ErrorOutputPaths: []string{path},
	}

	logger, err := cfg.Build()
	if err != nil {
		return errors.Wrap(err, "build logger")
	}
	defaultLogger = logger
	return nil
}

func Flush() {
	_ = defaultLogger.Sync()
}
