// Package httpserver runs an http.Handler with graceful shutdown.
//
// Run listens on the configured address and blocks until its context is
// cancelled or the process receives SIGINT or SIGTERM, then calls
// http.Server.Shutdown bounded by the shutdown timeout. Ready is closed once
// the listener is bound, and Addr reports the bound address, which makes
// ":0" usable in tests.
//
//	srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, router); err != nil {
//	    log.Error("server failed", logger.Error(err))
//	}
//
// HealthCheckHandler provides liveness and readiness probes.
//
// Errors are joined with ErrStart or ErrShutdown so callers can use errors.Is.
package httpserver
