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

package serrors

import (
	"fmt"
	"runtime"

	"go.uber.org/zap/zapcore"
)

// stack is a snapshot of the program counters of the calling goroutine.
type stack []uintptr

func callers() *stack {
	const depth = 32
	var pcs [depth]uintptr
	// Skip runtime.Callers, this function and the serrors constructor.
	n := runtime.Callers(3, pcs[:])
	st := stack(pcs[0:n])
	return &st
}

// MarshalLogArray implements zapcore.ArrayMarshaler so the stack trace shows
// up as a list of frames in structured logs.
func (s *stack) MarshalLogArray(ae zapcore.ArrayEncoder) error {
	frames := runtime.CallersFrames(*s)
	for {
		frame, more := frames.Next()
		if frame.Function != "" {
			ae.AppendString(fmt.Sprintf("%s %s:%d", frame.Function, frame.File, frame.Line))
		}
		if !more {
			break
		}
	}
	return nil
}
