package logger

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Log struct {
	LogLevel zapcore.Level `yaml:"level" envconfig:"LOG_LEVEL" default:"info"`
	// Sink is a file path; empty means stdout.
	Sink string `yaml:"sink" envconfig:"LOG_SINK"`
}

// NewLogger falls back to stdout when the sink cannot be opened and says so
// on stderr and in the log itself.
func NewLogger(cfg Log, name string) *zap.Logger {
	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encCfg.TimeKey = "time"

	ws, sinkErr := OpenSink(cfg.Sink)
	if sinkErr != nil {
		fmt.Fprintf(os.Stderr, "logger: %v, writing to stdout\n", sinkErr)
		ws = zapcore.Lock(os.Stdout)
	}

	core := zapcore.NewCore(zapcore.NewJSONEncoder(encCfg), ws, zap.NewAtomicLevelAt(cfg.LogLevel))
	log := zap.New(core, zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel)).Named(name)
	if sinkErr != nil {
		log.Warn("log sink unavailable", zap.String("sink", cfg.Sink), zap.Error(sinkErr))
	}
	return log
}

// OpenSink returns stdout for an empty path, otherwise the file opened for append.
func OpenSink(path string) (zapcore.WriteSyncer, error) {
	if path == "" {
		return zapcore.Lock(os.Stdout), nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, errors.Wrap(err, "open log sink")
	}
	return zapcore.Lock(f), nil
}
