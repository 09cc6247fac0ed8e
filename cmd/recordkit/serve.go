package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/dmitrymomot/recordkit/pkg/api"
	"github.com/dmitrymomot/recordkit/pkg/httpserver"
	"github.com/dmitrymomot/recordkit/pkg/logger"
	"github.com/dmitrymomot/recordkit/pkg/mcpserver"
	"github.com/dmitrymomot/recordkit/pkg/registry"
)

// app holds what the long-running commands share.
type app struct {
	cfg     appConfig
	log     *slog.Logger
	reg     *registry.Registry
	backend *backend
}

func (rt *app) close() { rt.backend.close() }

// bootstrap loads config, builds the logger to w and opens the registry.
// Failures are reported on w.
func bootstrap(ctx context.Context, w io.Writer) (*app, bool) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(w, "recordkit: config: %v\n", err)
		return nil, false
	}
	log, err := newLogger(cfg, w)
	if err != nil {
		fmt.Fprintf(w, "recordkit: config: %v\n", err)
		return nil, false
	}
	b, err := openStore(ctx, cfg, log)
	if err != nil {
		log.ErrorContext(ctx, "open schema store", logger.Store(cfg.Store), logger.Error(err))
		return nil, false
	}
	reg, err := newRegistry(ctx, cfg, b, log)
	if err != nil {
		b.close()
		log.ErrorContext(ctx, "start registry", logger.Error(err))
		return nil, false
	}
	return &app{cfg: cfg, log: log, reg: reg, backend: b}, true
}

func runServe(ctx context.Context, args []string, stderr io.Writer) int {
	if len(args) > 0 {
		fmt.Fprintf(stderr, "recordkit serve: unexpected arguments %v\n", args)
		return exitUsage
	}
	rt, ok := bootstrap(ctx, stderr)
	if !ok {
		return exitUsage
	}
	defer rt.close()

	opts := []api.Option{api.WithLogger(rt.log)}
	for name, check := range rt.backend.checks {
		opts = append(opts, api.WithReadinessCheck(name, check))
	}
	srv := httpserver.NewFromConfig(rt.cfg.HTTP, httpserver.WithLogger(rt.log))
	if err := srv.Run(ctx, api.NewRouter(rt.reg, opts...)); err != nil {
		rt.log.Error("server stopped", logger.Error(err))
		return exitRejected
	}
	return exitOK
}

// runMCP logs to stderr; stdout carries the protocol.
func runMCP(ctx context.Context, args []string, stderr io.Writer) int {
	if len(args) > 0 {
		fmt.Fprintf(stderr, "recordkit mcp: unexpected arguments %v\n", args)
		return exitUsage
	}
	rt, ok := bootstrap(ctx, stderr)
	if !ok {
		return exitUsage
	}
	defer rt.close()

	if err := mcpserver.New(rt.reg, version, rt.log).ServeStdio(); err != nil {
		rt.log.Error("mcp server stopped", logger.Error(err))
		return exitRejected
	}
	return exitOK
}
