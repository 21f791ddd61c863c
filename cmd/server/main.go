// Package main is the entry point for the geo-index dispatch service.
//
// Go Learning Note — "cmd/" directory convention:
// In idiomatic Go projects, executables live under cmd/<name>/main.go.
// This keeps the project root clean and allows multiple binaries in one repo
// (e.g., cmd/server/, cmd/worker/, cmd/cli/). Each subdirectory under cmd/
// must be package main with a main() function.
//
// Go Learning Note — Dependency Injection:
// Go does not have a built-in DI framework like Java's Spring. Instead,
// dependencies are wired manually in main(). This is intentional — Go favors
// explicit, readable code over "magic." You construct each layer (core →
// adapters) and pass dependencies as constructor arguments, which makes the
// dependency graph visible and easy to test.
package main

import (
	"errors"
	"net/http"

	"geoindex/internal/config"
	"geoindex/internal/geo"
	"geoindex/internal/httpapi"
	"geoindex/internal/logging"
	"geoindex/internal/rpc"
)

func main() {
	cfg := config.Load()
	logging.Init(cfg.Log.Level)

	// The index is the one owned object shared by both adapters — a single
	// *geo.Index handle is concurrency-safe to hand to both servers
	// (spec.md §9, "shared ownership of the two maps across adapters").
	index := geo.NewIndex(cfg.Geo.Precision)

	rpcServer := rpc.NewServer(index)
	httpServer := httpapi.NewServer(index)

	logging.Info().
		Int("precision", cfg.Geo.Precision).
		Str("rpc_addr", cfg.Server.RPCAddr).
		Str("http_addr", cfg.Server.HTTPAddr).
		Msg("starting geo-index service")

	// Go Learning Note — errgroup-free fan-out:
	// Two independent listeners need to run concurrently and either one
	// exiting should bring the process down. A buffered channel sized to the
	// number of goroutines is the simplest way to wait for the first error
	// without pulling in golang.org/x/sync/errgroup for just two goroutines.
	errCh := make(chan error, 2)
	go func() { errCh <- rpcServer.Run(cfg.Server.RPCAddr) }()
	go func() { errCh <- httpServer.Run(cfg.Server.HTTPAddr) }()

	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		logging.Fatal().Err(err).Msg("server exited")
	}
}
