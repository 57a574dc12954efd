package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"liveness-probe/api"
	"liveness-probe/types/config"
)

const SHUTDOWN_TIMEOUT = 5 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], nil); err != nil {
		fmt.Fprintf(os.Stderr, "liveness-probe: %v\n", err)
		os.Exit(1)
	}
}

// run serves until ctx is cancelled. ready, when not nil, is called with the
// bound server once the listener is open.
func run(ctx context.Context, args []string, ready func(*api.Server)) error {
	_config, err := config.NewConfig()
	if err != nil {
		return err
	}
	if err := _config.ApplyFlags(args); err != nil {
		return err
	}

	logger := config.NewLogger(_config.Log)
	server := api.NewServerWithLogger(_config, logger)

	if err := server.Bind(); err != nil {
		return err
	}
	if ready != nil {
		ready(server)
	}

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- server.Serve()
	}()

	select {
	case err := <-serveErr:
		return err
	case <-ctx.Done():
	}

	if err := server.Shutdown(SHUTDOWN_TIMEOUT); err != nil {
		logger.Warnf("shutdown: %v", err)
	}

	return <-serveErr
}
