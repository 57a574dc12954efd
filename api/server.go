package api

import (
	"context"
	"errors"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"

	"liveness-probe/api/handlers"
	middlewares "liveness-probe/api/middleware"
	"liveness-probe/types/config"
)

const (
	READ_HEADER_TIMEOUT = 5 * time.Second
	READ_TIMEOUT        = 10 * time.Second
	WRITE_TIMEOUT       = 10 * time.Second
	IDLE_TIMEOUT        = 60 * time.Second
)

type State int

const (
	StateUnbound State = iota
	StateListening
	StateClosed
)

func (s State) String() string {
	switch s {
	case StateUnbound:
		return "unbound"
	case StateListening:
		return "listening"
	case StateClosed:
		return "closed"
	}
	return "unknown"
}

type Server struct {
	sync.Mutex

	host   string
	port   int
	config config.Config

	echo     *echo.Echo
	listener net.Listener
	state    State
	serving  bool
}

func NewServer(_config config.Config) *Server {
	return NewServerWithLogger(_config, config.NewLogger(_config.Log))
}

func NewServerWithLogger(_config config.Config, logger echo.Logger) *Server {
	_echo := echo.New()
	_echo.HideBanner = true
	_echo.HidePort = true
	_echo.Logger = logger

	_echo.Server.ReadHeaderTimeout = READ_HEADER_TIMEOUT
	_echo.Server.ReadTimeout = READ_TIMEOUT
	_echo.Server.WriteTimeout = WRITE_TIMEOUT
	_echo.Server.IdleTimeout = IDLE_TIMEOUT

	var server = &Server{
		host:   _config.HTTPAPIServer.Host,
		port:   _config.HTTPAPIServer.Port,
		echo:   _echo,
		config: _config,
		state:  StateUnbound,
	}
	server.echo.Use(middlewares.RequestID())
	server.echo.Use(middleware.Logger())
	server.echo.Use(middleware.Recover())

	server.AddHTTPAPIRoute(http.MethodGet, "/health", handlers.HealthHandler)
	// echo answers OPTIONS on known paths with 204 unless a route exists.
	server.AddHTTPAPIRoute(http.MethodOptions, "/health", handlers.MethodNotAllowedHandler)

	return server
}

func (s *Server) AddMiddleware(middleware ...echo.MiddlewareFunc) {
	s.echo.Use(middleware...)
}

func (s *Server) AddHTTPAPIRoute(method string, path string, handlerFunc echo.HandlerFunc) {
	s.echo.Add(method, path, handlerFunc)
}

// Bind opens the TCP listener and moves the server to StateListening.
func (s *Server) Bind() error {
	s.Lock()
	defer s.Unlock()

	if s.state != StateUnbound {
		return &StateError{Operation: "bind", State: s.state}
	}

	address := s.config.Address()
	listener, err := net.Listen("tcp", address)
	if err != nil {
		return &BindError{Address: address, Err: err}
	}

	s.listener = listener
	s.echo.Listener = listener
	s.state = StateListening

	s.echo.Logger.Infoj(log.JSON{
		"message": "listener bound",
		"address": listener.Addr().String(),
	})

	return nil
}

// Serve blocks until the server is shut down. A graceful Shutdown makes it
// return nil. Only one Serve may run at a time.
func (s *Server) Serve() error {
	s.Lock()
	switch {
	case s.state == StateClosed:
		s.Unlock()
		return nil
	case s.state == StateUnbound, s.serving:
		s.Unlock()
		return &StateError{Operation: "serve", State: s.state}
	}
	s.serving = true
	s.Unlock()

	// The listener is already set, so the address is ignored.
	err := s.echo.Start("")
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

// Start binds and serves. It blocks until the server is shut down.
func (s *Server) Start() error {
	if err := s.Bind(); err != nil {
		return err
	}
	return s.Serve()
}

// Shutdown drains in-flight requests for at most timeout and closes the
// listener. Connections still open after timeout are closed forcibly and
// the drain error is returned. Calling it more than once is a no-op.
func (s *Server) Shutdown(timeout time.Duration) error {
	s.Lock()
	if s.state == StateClosed {
		s.Unlock()
		return nil
	}
	s.state = StateClosed
	listener := s.listener
	s.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	s.echo.Logger.Infoj(log.JSON{
		"message": "shutting down",
		"timeout": timeout.String(),
	})

	err := s.echo.Shutdown(ctx)
	if err != nil {
		s.echo.Logger.Warnj(log.JSON{
			"message": "drain incomplete, closing connections",
			"error":   err.Error(),
		})
		if closeErr := s.echo.Close(); closeErr != nil && !errors.Is(closeErr, net.ErrClosed) {
			s.echo.Logger.Warnf("close: %v", closeErr)
		}
	}

	// Shutdown only closes listeners that reached Serve.
	if listener != nil {
		if closeErr := listener.Close(); closeErr != nil && !errors.Is(closeErr, net.ErrClosed) && err == nil {
			err = closeErr
		}
	}

	return err
}

func (s *Server) NewContext(request *http.Request, writer http.ResponseWriter) echo.Context {
	return s.echo.NewContext(request, writer)
}

// Addr returns the bound address, nil until Bind succeeds.
func (s *Server) Addr() net.Addr {
	s.Lock()
	defer s.Unlock()

	if s.listener == nil {
		return nil
	}
	return s.listener.Addr()
}

func (s *Server) State() State {
	s.Lock()
	defer s.Unlock()

	return s.state
}

func (s *Server) GetHost() string {
	return s.host
}

func (s *Server) GetPort() int {
	return s.port
}

func (s *Server) GetEcho() *echo.Echo {
	return s.echo
}

func (s *Server) GetConfig() config.Config {
	return s.config
}
