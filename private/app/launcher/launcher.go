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

// Package launcher provides the shared scaffolding of server applications:
// config loading, logging setup, signal handling and the standard cobra
// command layout.
package launcher

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/solproject/sol/pkg/log"
	"github.com/solproject/sol/pkg/private/serrors"
	"github.com/solproject/sol/private/config"
)

// Version is the application version. It is set at build time.
var Version = "dev"

// LoggingConfig is implemented by configurations that carry a logging
// section the launcher should apply.
type LoggingConfig interface {
	Logging() log.Config
}

// Application models a server application. Run loads the TOML configuration
// into TOMLConfig, sets up logging and invokes Main with a context that is
// cancelled on SIGINT and SIGTERM.
type Application struct {
	// TOMLConfig holds the Go data structure for the application-specific
	// TOML configuration. It must not be nil.
	TOMLConfig config.Config
	// ShortName is the short name of the application, used in help output.
	ShortName string
	// Main is the custom logic of the application. The exit status of the
	// process is 0 if and only if Main returns nil.
	Main func(ctx context.Context) error
}

// Run sets up the common functionality and runs the application. It exits
// the process on failure.
func (a *Application) Run() {
	if err := a.run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal error: %v\n", err)
		os.Exit(1)
	}
}

func (a *Application) run() error {
	executable := filepath.Base(os.Args[0])
	cmd := a.newCommandTemplate(executable)
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		return a.executeCommand(cmd.Context())
	}
	ctx, cancel := signal.NotifyContext(context.Background(),
		syscall.SIGINT, syscall.SIGTERM)
	defer cancel()
	return cmd.ExecuteContext(ctx)
}

func (a *Application) newCommandTemplate(executable string) *cobra.Command {
	cmd := &cobra.Command{
		Use:           executable,
		Short:         a.ShortName,
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	cmd.AddCommand(
		newVersionCommand(executable),
		newSampleCommand(a.TOMLConfig),
	)
	cmd.Flags().String("config", "", "Configuration file (required)")
	if err := cmd.MarkFlagRequired("config"); err != nil {
		panic(err)
	}
	if err := viper.BindPFlag("config", cmd.Flags().Lookup("config")); err != nil {
		panic(err)
	}
	return cmd
}

func (a *Application) executeCommand(ctx context.Context) error {
	if err := config.LoadFile(viper.GetString("config"), a.TOMLConfig); err != nil {
		return serrors.Wrap("loading config file", err,
			"file", viper.GetString("config"))
	}
	a.TOMLConfig.InitDefaults()
	if lc, ok := a.TOMLConfig.(LoggingConfig); ok {
		if err := log.Setup(lc.Logging()); err != nil {
			return serrors.Wrap("initializing logging", err)
		}
	}
	defer log.Flush()
	defer log.HandlePanic()
	if err := a.TOMLConfig.Validate(); err != nil {
		return serrors.Wrap("validating config", err)
	}
	return a.Main(ctx)
}

func newVersionCommand(executable string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show the application version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", executable, Version)
		},
	}
}

func newSampleCommand(sampler config.Sampler) *cobra.Command {
	return &cobra.Command{
		Use:   "sample",
		Short: "Print a sample configuration file",
		Run: func(cmd *cobra.Command, args []string) {
			config.WriteSample(cmd.OutOrStdout(), nil, config.CtxMap{
				config.ID: "sol",
			}, sampler)
		},
	}
}
