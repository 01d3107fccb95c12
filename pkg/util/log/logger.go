package log

import (
	"os"
	"time"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	LogLevelInfo  = 0
	LogLevelDebug = 1
)

func timeEncoder(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString(t.Format(time.StampMilli))
}

// buildCore assembles a zapcore.Core writing to stderr, and additionally to
// filepath when one is given.
func buildCore(loglevel int, filepath string) zapcore.Core {
	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = timeEncoder

	level := zapcore.InfoLevel
	if loglevel > 0 {
		level = zapcore.Level(-loglevel)
	}

	writers := []zapcore.WriteSyncer{zapcore.AddSync(os.Stderr)}
	if filepath != "" {
		if logf, err := os.OpenFile(filepath, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0644); err == nil {
			writers = append(writers, zapcore.AddSync(logf))
		}
	}

	return zapcore.NewCore(
		zapcore.NewConsoleEncoder(encCfg),
		zapcore.NewMultiWriteSyncer(writers...),
		level,
	)
}

// CreateLogger builds and configures a logger with common options (log
// level, devmode, optional file output) and returns it as a logr.Logger, the
// interface used throughout the rest of the module. A log file destination
// can be specified via the filepath argument or left empty.
func CreateLogger(name string, loglevel int, filepath string) logr.Logger {
	core := buildCore(loglevel, filepath)

	opts := []zap.Option{}
	if loglevel > 0 {
		opts = append(opts, zap.Development())
	}

	zapLogger := zap.New(core, opts...)
	logger := zapr.NewLogger(zapLogger)
	if name != "" {
		return logger.WithName(name)
	}
	return logger
}
