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
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/solproject/sol/private/config"
)

const (
	// DefaultConsoleLevel is the default log level for the console.
	DefaultConsoleLevel = "info"
	// DefaultConsoleFormat is the default log format for the console.
	DefaultConsoleFormat = "human"
)

// Config is the configuration for the logger.
type Config struct {
	// Console is the configuration for the console logging.
	Console ConsoleConfig `toml:"console,omitempty"`
}

// ConsoleConfig is the configuration for the console logger.
type ConsoleConfig struct {
	// Level of console logging (defaults to info).
	Level string `toml:"level,omitempty"`
	// Format of the console log entries, either "human" or "json".
	Format string `toml:"format,omitempty"`
	// DisableCaller stops annotating logs with the calling function's file
	// name and line number.
	DisableCaller bool `toml:"disable_caller,omitempty"`
}

// InitDefaults populates unset fields in cfg to their default values.
func (c *Config) InitDefaults() {
	if c.Console.Level == "" {
		c.Console.Level = DefaultConsoleLevel
	}
	if c.Console.Format == "" {
		c.Console.Format = DefaultConsoleFormat
	}
}

// Validate validates that the logging levels and format are valid.
func (c *Config) Validate() error {
	var lvl zapcore.Level
	if c.Console.Level != "" {
		if err := lvl.UnmarshalText([]byte(c.Console.Level)); err != nil {
			return fmt.Errorf("unsupported log level: level=%s", c.Console.Level)
		}
	}
	switch strings.ToLower(c.Console.Format) {
	case "", "human", "json":
		return nil
	default:
		return fmt.Errorf("unsupported log format: format=%s", c.Console.Format)
	}
}

// Sample writes the sample configuration to dst.
func (c *Config) Sample(dst io.Writer, _ config.Path, _ config.CtxMap) {
	config.WriteString(dst, loggingConsoleSample)
}

// ConfigName returns the name this config should have in a config file.
func (c *Config) ConfigName() string {
	return "log"
}

func (c ConsoleConfig) zapConfig() (zap.Config, error) {
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(c.Level)); err != nil {
		return zap.Config{}, fmt.Errorf("unsupported log level: level=%s", c.Level)
	}
	encoding := "json"
	encoderConfig := zap.NewProductionEncoderConfig()
	if strings.ToLower(c.Format) != "json" {
		encoding = "console"
		encoderConfig = zap.NewDevelopmentEncoderConfig()
		encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	}
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	return zap.Config{
		Level:             zap.NewAtomicLevelAt(lvl),
		DisableCaller:     c.DisableCaller,
		DisableStacktrace: true,
		Encoding:          encoding,
		EncoderConfig:     encoderConfig,
		OutputPaths:       []string{"stderr"},
		ErrorOutputPaths:  []string{"stderr"},
	}, nil
}

const loggingConsoleSample = `
[log.console]
# Console logging level (debug|info|error) (default info)
level = "info"

# Format of the console log entries (human|json) (default human)
format = "human"

# Annotate log entries with the calling function's file name and line number.
# (default false)
disable_caller = false
`
