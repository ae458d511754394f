// Copyright 2026 The SOL Project Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package log provides the application logging API, backed by zap. Loggers
// carry key/value context and can be attached to a context.Context.
package log

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Level is the log level type used throughout the application.
type Level = zapcore.Level

// The log levels supported by the application.
const (
	DebugLevel = zapcore.DebugLevel
	InfoLevel  = zapcore.InfoLevel
	ErrorLevel = zapcore.ErrorLevel
)

// Logger describes the logger interface.
type Logger interface {
	// New returns a child logger with the given key/value context attached.
	New(ctx ...any) Logger
	Debug(msg string, ctx ...any)
	Info(msg string, ctx ...any)
	Error(msg string, ctx ...any)
	Enabled(lvl Level) bool
}

type logger struct {
	logger *zap.Logger
}

func (l *logger) New(ctx ...any) Logger {
	return &logger{logger: l.logger.With(convertCtx(ctx)...)}
}

func (l *logger) Debug(msg string, ctx ...any) {
	l.logger.Debug(msg, convertCtx(ctx)...)
}

func (l *logger) Info(msg string, ctx ...any) {
	l.logger.Info(msg, convertCtx(ctx)...)
}

func (l *logger) Error(msg string, ctx ...any) {
	l.logger.Error(msg, convertCtx(ctx)...)
}

func (l *logger) Enabled(lvl Level) bool {
	return l.logger.Core().Enabled(lvl)
}

func (l *logger) WithOptions(opts ...zap.Option) Logger {
	return &logger{logger: l.logger.WithOptions(opts...)}
}

func convertCtx(ctx []any) []zap.Field {
	fields := make([]zap.Field, 0, len(ctx)/2)
	for i := 0; i+1 < len(ctx); i += 2 {
		fields = append(fields, zap.Any(fmt.Sprint(ctx[i]), ctx[i+1]))
	}
	return fields
}

// Setup configures the logging backend from the given configuration. It must
// be called exactly once, before the root logger is used.
func Setup(cfg Config) error {
	cfg.InitDefaults()
	zCfg, err := cfg.Console.zapConfig()
	if err != nil {
		return err
	}
	zLogger, err := zCfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		return err
	}
	zap.ReplaceGlobals(zLogger)
	return nil
}

// Root returns the root logger. It is guaranteed to never return nil.
func Root() Logger {
	return &logger{logger: zap.L()}
}

// New creates a logger from the root logger with the given context attached.
func New(ctx ...any) Logger {
	return Root().New(ctx...)
}

// Discard sets the logger up to discard all log entries. Useful for tests.
func Discard() {
	zap.ReplaceGlobals(zap.NewNop())
}

// Flush writes the logs to the underlying buffer.
func Flush() {
	_ = zap.L().Sync()
}

// Debug logs at debug level on the root logger.
func Debug(msg string, ctx ...any) {
	Root().(*logger).logger.Debug(msg, convertCtx(ctx)...)
}

// Info logs at info level on the root logger.
func Info(msg string, ctx ...any) {
	Root().(*logger).logger.Info(msg, convertCtx(ctx)...)
}

// Error logs at error level on the root logger.
func Error(msg string, ctx ...any) {
	Root().(*logger).logger.Error(msg, convertCtx(ctx)...)
}

// SafeDebug logs to the logger if it is non-nil.
func SafeDebug(l Logger, msg string, ctx ...any) {
	if l != nil {
		if inner, ok := l.(*logger); ok {
			inner.logger.Debug(msg, convertCtx(ctx)...)
			return
		}
		l.Debug(msg, ctx...)
	}
}

// SafeInfo logs to the logger if it is non-nil.
func SafeInfo(l Logger, msg string, ctx ...any) {
	if l != nil {
		if inner, ok := l.(*logger); ok {
			inner.logger.Info(msg, convertCtx(ctx)...)
			return
		}
		l.Info(msg, ctx...)
	}
}

// SafeError logs to the logger if it is non-nil.
func SafeError(l Logger, msg string, ctx ...any) {
	if l != nil {
		if inner, ok := l.(*logger); ok {
			inner.logger.Error(msg, convertCtx(ctx)...)
			return
		}
		l.Error(msg, ctx...)
	}
}

// HandlePanic catches panics and logs them. Every goroutine must have this as
// its first deferred call.
func HandlePanic() {
	if msg := recover(); msg != nil {
		zap.L().Error("Panic", zap.Any("msg", msg), zap.Stack("stack"))
		_ = zap.L().Sync()
		os.Exit(255)
	}
}
