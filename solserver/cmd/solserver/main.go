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

package main

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/cors"
	"github.com/opentracing/opentracing-go"
	"golang.org/x/sync/errgroup"

	"github.com/solproject/sol/pkg/log"
	"github.com/solproject/sol/pkg/private/serrors"
	"github.com/solproject/sol/private/app/launcher"
	"github.com/solproject/sol/private/engine/kspath"
	"github.com/solproject/sol/private/engine/uniform"
	"github.com/solproject/sol/private/env"
	"github.com/solproject/sol/private/store"
	"github.com/solproject/sol/solserver/compose"
	"github.com/solproject/sol/solserver/config"
	"github.com/solproject/sol/solserver/mgmtapi"
)

var globalCfg config.Config

func main() {
	application := launcher.Application{
		TOMLConfig: &globalCfg,
		ShortName:  "SOL traffic-engineering server",
		Main:       realMain,
	}
	application.Run()
}

func realMain(ctx context.Context) error {
	closer, err := initTracer(globalCfg.General.ID)
	if err != nil {
		return serrors.Wrap("initializing tracer", err)
	}
	defer closer()

	topoStore := store.New(kspath.Enumerator{}, globalCfg.Engine.MaxPaths)
	driver := &compose.Driver{Composer: uniform.Composer{}}
	apiServer := &mgmtapi.Server{
		Store:  topoStore,
		Driver: driver,
	}

	corsMiddleware := cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST"},
		AllowedHeaders: []string{"Content-Type"},
	})
	handler := mgmtapi.Handler(apiServer, corsMiddleware)

	server := &http.Server{
		Addr:    globalCfg.API.Addr,
		Handler: handler,
	}

	g, errCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer log.HandlePanic()
		log.Info("API server listening", "addr", server.Addr)
		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return serrors.Wrap("serving API", err)
		}
		return nil
	})
	g.Go(func() error {
		defer log.HandlePanic()
		return globalCfg.Metrics.ServePrometheus(errCtx)
	})
	g.Go(func() error {
		defer log.HandlePanic()
		<-errCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(
			context.Background(), env.ShutdownGraceInterval)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

func initTracer(id string) (func(), error) {
	tracer, closer, err := globalCfg.Tracing.NewTracer(id)
	if err != nil {
		return nil, err
	}
	opentracing.SetGlobalTracer(tracer)
	closeTracer := func() {
		if err := closer.Close(); err != nil {
			log.Error("Closing tracer", "err", err)
		}
	}
	return closeTracer, nil
}
