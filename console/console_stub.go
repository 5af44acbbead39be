//go:build !wasm
// +build !wasm

package console

import (
	"sync/atomic"

	"go.uber.org/zap"
)

// Native builds have no browser console. Messages go to a zap logger
// instead, which is a no-op until SetLogger is called.

var logger atomic.Pointer[zap.SugaredLogger]

func init() {
	logger.Store(zap.NewNop().Sugar())
}

// SetLogger routes console output to l. Passing nil restores the no-op logger.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	logger.Store(l.Sugar())
}

// Log writes args at info level.
func Log(args ...any) {
	logger.Load().Infoln(args...)
}

// Warn writes args at warn level.
func Warn(args ...any) {
	logger.Load().Warnln(args...)
}

// Error writes args at error level.
func Error(args ...any) {
	logger.Load().Errorln(args...)
}
