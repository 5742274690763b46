package httpserver

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/dmitrymomot/uaclass/pkg/logger"
)

// Option configures the HTTP server.
type Option func(*Server)

// WithAddr sets the address the server listens on.
func WithAddr(addr string) Option {
	if addr == "" {
		panic("WithAddr: addr cannot be empty")
	}
	return func(s *Server) { s.addr = addr }
}

// WithTimeouts sets read, write and idle timeouts. Zero values keep net/http defaults.
func WithTimeouts(read, write, idle time.Duration) Option {
	if read < 0 || write < 0 || idle < 0 {
		panic("WithTimeouts: durations must be >= 0")
	}
	return func(s *Server) {
		s.readTimeout = read
		s.writeTimeout = write
		s.idleTimeout = idle
	}
}

// WithShutdownTimeout sets the time allowed for graceful shutdown.
func WithShutdownTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("WithShutdownTimeout: duration must be > 0")
	}
	return func(s *Server) { s.shutdownTimeout = d }
}

// WithLogger supplies the logger for lifecycle events. Nil keeps the discarding default.
func WithLogger(l *slog.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.log = l
		}
	}
}

// Server runs an http.Server until its context is cancelled or the process
// receives SIGINT/SIGTERM, then shuts it down gracefully.
type Server struct {
	addr            string
	readTimeout     time.Duration
	writeTimeout    time.Duration
	idleTimeout     time.Duration
	shutdownTimeout time.Duration
	log             *slog.Logger

	mu       sync.Mutex
	srv      *http.Server
	listener net.Listener
	ready    chan struct{}
	once     sync.Once
}

// New returns a configured Server.
func New(opts ...Option) *Server {
	s := &Server{
		addr:            ":8080",
		shutdownTimeout: 5 * time.Second,
		log:             logger.Discard(),
		ready:           make(chan struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Ready is closed once the server is accepting connections.
func (s *Server) Ready() <-chan struct{} { return s.ready }

// Addr returns the bound listener address, or the configured one before Run.
func (s *Server) Addr() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listener != nil {
		return s.listener.Addr().String()
	}
	return s.addr
}

// Run serves handler and blocks until shutdown.
// Startup failures are returned joined with ErrStart.
func (s *Server) Run(ctx context.Context, handler http.Handler) error {
	if handler == nil {
		handler = http.NotFoundHandler()
	}

	s.mu.Lock()
	if s.srv != nil {
		s.mu.Unlock()
		return errors.Join(ErrStart, ErrAlreadyRunning)
	}
	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		s.mu.Unlock()
		return errors.Join(ErrStart, err)
	}
	s.listener = ln
	s.srv = &http.Server{
		Handler:      handler,
		ReadTimeout:  s.readTimeout,
		WriteTimeout: s.writeTimeout,
		IdleTimeout:  s.idleTimeout,
		BaseContext:  func(net.Listener) context.Context { return ctx },
	}
	srv := s.srv
	s.mu.Unlock()

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Serve(ln) }()

	s.log.InfoContext(ctx, "http server started", slog.String("addr", ln.Addr().String()))
	close(s.ready)

	var runErr error
	select {
	case <-ctx.Done():
		runErr = s.Shutdown(context.Background())
		if serveErr := <-errCh; runErr == nil {
			runErr = serveErr
		}
	case runErr = <-errCh:
	}

	if runErr != nil && !errors.Is(runErr, http.ErrServerClosed) {
		return errors.Join(ErrStart, runErr)
	}
	return nil
}

// Shutdown stops the server gracefully. It is safe for repeated calls.
func (s *Server) Shutdown(ctx context.Context) error {
	var err error
	s.once.Do(func() {
		s.mu.Lock()
		srv := s.srv
		s.mu.Unlock()
		if srv == nil {
			return
		}

		ctx, cancel := context.WithTimeout(ctx, s.shutdownTimeout)
		defer cancel()

		start := time.Now()
		err = srv.Shutdown(ctx)
		s.log.InfoContext(ctx, "http server stopped", logger.Duration(time.Since(start)), logger.Error(err))
	})

	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.Join(ErrShutdown, err)
	}
	return nil
}
