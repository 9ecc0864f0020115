package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/useraccount/internal/client/client"
	"github.com/dmitrijs2005/useraccount/internal/client/config"
	"github.com/dmitrijs2005/useraccount/internal/client/repositories/accounts"
	"github.com/dmitrijs2005/useraccount/internal/client/services"
	"github.com/dmitrijs2005/useraccount/internal/logging"
	"github.com/dmitrijs2005/useraccount/internal/metrics"
	"github.com/prometheus/client_golang/prometheus"
)

type App struct {
	config     *config.Config
	logger     logging.Logger
	registry   *prometheus.Registry
	remote     io.Closer
	accounts   accounts.Repository
	hashing    *services.HashingService
	validation *services.ValidationService
	reader     *bufio.Reader
	out        io.Writer
}

// NewApp dials the password service named in c and builds the services on
// top of an in-memory store seeded with the demo accounts.
func NewApp(c *config.Config) (*App, error) {
	level, err := logging.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, err
	}
	logger := logging.NewJSONLogger(os.Stderr, level)

	remote, err := client.NewPasswordServiceClient(c.PasswordServiceAddr)
	if err != nil {
		return nil, fmt.Errorf("password service client: %w", err)
	}

	return newApp(c, logger, remote, bufio.NewReader(os.Stdin), os.Stdout), nil
}

func newApp(c *config.Config, logger logging.Logger, remote *client.GRPCClient, in *bufio.Reader, out io.Writer) *App {
	reg := prometheus.NewRegistry()
	m := metrics.NewCollector(reg)
	repo := accounts.NewInMemoryRepository(accounts.DemoAccounts()...)

	return &App{
		config:     c,
		logger:     logger,
		registry:   reg,
		remote:     remote,
		accounts:   repo,
		hashing:    services.NewHashingService(remote, repo, logger, m, c.HashTimeout),
		validation: services.NewValidationService(remote, logger, m, c.ValidateTimeout),
		reader:     in,
		out:        out,
	}
}

func (a *App) initSignalHandler(cancelFunc context.CancelFunc) (stop func()) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	done := make(chan struct{})
	go func() {
		select {
		case <-sigs:
			cancelFunc()
		case <-done:
		}
	}()

	return func() {
		signal.Stop(sigs)
		close(done)
	}
}

// Run blocks until the REPL ends or ctx is cancelled, then shuts down.
func (a *App) Run(ctx context.Context) {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	stop := a.initSignalHandler(cancelFunc)
	defer stop()

	a.logger.Info(ctx, "starting console", "password_service", a.config.PasswordServiceAddr)
	fmt.Fprintln(a.out, "useraccount console (type 'help' for commands)")

	replDone := make(chan struct{})
	go func() {
		defer close(replDone)
		runREPL(ctx, a, a.reader)
	}()

	select {
	case <-replDone:
	case <-ctx.Done():
	}

	a.shutdown()
}

// shutdown drains hash submissions and then closes the channel, in that
// order, so that no accepted submission loses its connection early.
func (a *App) shutdown() {
	ctx, cancel := context.WithTimeout(context.Background(), a.config.ShutdownTimeout)
	defer cancel()

	if err := a.hashing.Shutdown(ctx); err != nil {
		a.logger.Warn(ctx, "hash submissions still in flight at exit", "error", err.Error())
	}
	if err := a.remote.Close(); err != nil {
		a.logger.Error(ctx, "closing password service channel", "error", err.Error())
	}
	a.logger.Info(ctx, "console stopped")
}
