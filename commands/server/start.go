package server

import (
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/iov-one/quorum/errors"
	"github.com/tendermint/tendermint/abci/server"
	abci "github.com/tendermint/tendermint/abci/types"
	"github.com/tendermint/tendermint/libs/log"
)

const (
	flagBind  = "bind"
	flagDebug = "debug"
)

// Options are the settings an application is generated with.
type Options struct {
	// Home is the directory the database is kept in. Empty means
	// an in memory database.
	Home   string
	Logger log.Logger
	// Debug returns full stack traces in error responses.
	Debug bool
}

// parseFlags returns the listen address and the debug switch.
func parseFlags(args []string) (string, bool, error) {
	fs := flag.NewFlagSet("start", flag.ContinueOnError)
	bind := fs.String(flagBind, "tcp://localhost:26658", "ABCI listen address")
	debug := fs.Bool(flagDebug, false, "include stack traces in error logs")
	if err := fs.Parse(args); err != nil {
		return "", false, errors.Wrap(errors.ErrInvalidInput, err.Error())
	}
	return *bind, *debug, nil
}

// AppGenerator builds the application once the flags are known.
type AppGenerator func(*Options) (abci.Application, error)

// StartCmd serves the application on an ABCI socket until SIGINT or
// SIGTERM.
func StartCmd(gen AppGenerator, logger log.Logger, home string, args []string) error {
	addr, debug, err := parseFlags(args)
	if err != nil {
		return err
	}

	app, err := gen(&Options{
		Home:   home,
		Logger: logger,
		Debug:  debug,
	})
	if err != nil {
		return err
	}

	srv, err := server.NewServer(addr, "socket", app)
	if err != nil {
		return errors.Wrapf(errors.ErrInvalidInput, "listen on %s: %s", addr, err)
	}
	srv.SetLogger(logger.With("module", "abci"))
	if err := srv.Start(); err != nil {
		return errors.Wrap(err, "abci server")
	}
	logger.Info("serving", "bind", addr, "debug", debug)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	logger.Info("shutting down", "signal", (<-stop).String())
	return srv.Stop()
}
