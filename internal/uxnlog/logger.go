// Package uxnlog wraps zap with the small dev/prod split used across the
// retrieved examples, so the rest of the module logs through one consistent
// structured logger instead of fmt.Println scattered through the code.
package uxnlog

import (
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is a thin wrapper around zap's sugared logger, giving callers a
// key-value Debug/Info/Warn/Error API without needing a format string.
type Logger struct {
	*zap.SugaredLogger
}

var (
	once   sync.Once
	global *Logger
)

// New builds a Logger: a colored development config when verbose, a
// warn-level production config otherwise.
func New(verbose bool) *Logger {
	var cfg zap.Config
	if verbose {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		cfg = zap.NewProductionConfig()
		cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	}

	l, err := cfg.Build()
	if err != nil {
		l = zap.NewNop()
	}
	return &Logger{SugaredLogger: l.Sugar()}
}

// Init builds the package-global Logger exactly once; later calls are no-ops.
func Init(verbose bool) {
	once.Do(func() {
		global = New(verbose)
	})
}

// L returns the package-global Logger, lazily building a quiet default one
// if Init was never called.
func L() *Logger {
	if global == nil {
		global = New(false)
	}
	return global
}
