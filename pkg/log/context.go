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

package log

import (
	"context"

	"github.com/opentracing/opentracing-go"
	"go.uber.org/zap"
)

type loggerContextKey string

const loggerKey loggerContextKey = "logger"

// CtxWith returns a new context, based on ctx, that embeds argument logger.
// The logger can be recovered using FromCtx. Attaching a logger to a context
// which already contains one will overwrite the existing value.
func CtxWith(ctx context.Context, logger Logger) context.Context {
	if ctx == nil {
		panic("nil context")
	}
	return context.WithValue(ctx, loggerKey, logger)
}

// FromCtx returns the logger embedded in ctx if one exists, or the root
// logger otherwise. FromCtx is guaranteed to never return nil.
func FromCtx(ctx context.Context) Logger {
	if ctx == nil {
		return Root()
	}
	if l := ctx.Value(loggerKey); l != nil {
		if _, ok := l.(Span); ok {
			return l.(Logger)
		}
		return attachSpan(ctx, l.(Logger))
	}
	return attachSpan(ctx, Root())
}

// WithLabels returns context with additional labels added to the logger.
// For convenience it also returns the logger itself.
func WithLabels(ctx context.Context, labels ...any) (context.Context, Logger) {
	l := FromCtx(ctx).New(labels...)
	ctx = CtxWith(ctx, l)
	return ctx, l
}

func attachSpan(ctx context.Context, l Logger) Logger {
	if span := opentracing.SpanFromContext(ctx); span != nil {
		if optioner, ok := l.(interface{ WithOptions(...zap.Option) Logger }); ok {
			return Span{
				Logger: optioner.WithOptions(zap.AddCallerSkip(1)),
				Span:   span,
			}
		}
		// Pessimistic fallback, we don't have access to the underlying zap
		// logger. The caller information might be incorrect.
		return Span{
			Logger: l,
			Span:   span,
		}
	}
	return l
}

// Span is a logger that attaches all entries to the trace span in addition
// to writing them to the wrapped logger.
type Span struct {
	Logger Logger
	Span   opentracing.Span
}

// New creates a child logger keeping the span attached.
func (s Span) New(ctx ...any) Logger {
	return Span{
		Logger: s.Logger.New(ctx...),
		Span:   s.Span,
	}
}

// Debug logs to the logger and span.
func (s Span) Debug(msg string, ctx ...any) {
	s.spanLog("debug", msg, ctx...)
	s.Logger.Debug(msg, ctx...)
}

// Info logs to the logger and span.
func (s Span) Info(msg string, ctx ...any) {
	s.spanLog("info", msg, ctx...)
	s.Logger.Info(msg, ctx...)
}

// Error logs to the logger and span.
func (s Span) Error(msg string, ctx ...any) {
	s.spanLog("error", msg, ctx...)
	s.Logger.Error(msg, ctx...)
}

// Enabled returns whether the wrapped logger is enabled at the given level.
func (s Span) Enabled(lvl Level) bool {
	return s.Logger.Enabled(lvl)
}

func (s Span) spanLog(lvl, msg string, ctx ...any) {
	fields := make([]any, 0, len(ctx)+4)
	fields = append(fields, "level", lvl, "event", msg)
	fields = append(fields, ctx...)
	s.Span.LogKV(fields...)
}
