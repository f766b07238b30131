// Command pathtutor walks a user through Dijkstra's algorithm.
//
// Usage:
//
//	pathtutor                          interactive prompts
//	pathtutor -graph g.yaml -source A  load the graph from a YAML document
//	pathtutor -serve                   run the HTTP service
//
// Flags:
//
//	-config   path to a TOML config file
//	-graph    YAML graph document to load instead of prompting
//	-save     write the built graph as YAML to this path
//	-source   start node (prompted if empty)
//	-dest     destination node (prompted if empty)
//	-serve    run the HTTP service on [server].addr
//	-no-color disable terminal styling
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/katalvlaran/pathtutor/internal/config"
	"github.com/katalvlaran/pathtutor/internal/logging"
	"github.com/katalvlaran/pathtutor/render"
	"github.com/katalvlaran/pathtutor/server"
)

const shutdownTimeout = 5 * time.Second

type options struct {
	configPath string
	graphPath  string
	savePath   string
	source     string
	dest       string
	serve      bool
	noColor    bool
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run is main without the process globals. It returns the exit code.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("pathtutor", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var opts options
	fs.StringVar(&opts.configPath, "config", "", "path to TOML config file")
	fs.StringVar(&opts.graphPath, "graph", "", "YAML graph document to load")
	fs.StringVar(&opts.savePath, "save", "", "write the built graph as YAML to this path")
	fs.StringVar(&opts.source, "source", "", "start node")
	fs.StringVar(&opts.dest, "dest", "", "destination node")
	fs.BoolVar(&opts.serve, "serve", false, "run the HTTP service")
	fs.BoolVar(&opts.noColor, "no-color", false, "disable terminal styling")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		fmt.Fprintf(stderr, "pathtutor: %v\n", err)
		return 1
	}
	closer, err := logging.Setup(cfg, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "pathtutor: %v\n", err)
		return 1
	}
	defer closer.Close()

	if opts.serve {
		if err = serve(cfg); err != nil {
			log.WithError(err).Error("server stopped")
			return 1
		}
		return 0
	}

	theme := render.DefaultTheme()
	if opts.noColor || !cfg.Tutor.Color {
		theme = render.PlainTheme()
	}
	t := newTutor(stdin, stdout, theme, cfg.Tutor)
	if err = t.session(opts); err != nil {
		if !errors.Is(err, errAborted) {
			log.WithError(err).Debug("session failed")
		}
		return 1
	}

	return 0
}

// serve runs the HTTP service until SIGINT or SIGTERM.
func serve(cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var opts []server.Option
	if cfg.Tutor.StrictNeighbors {
		opts = append(opts, server.WithStrictNeighbors())
	}
	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           server.New(cfg.Server, opts...),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.WithField("addr", cfg.Server.Addr).Info("listening")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	return srv.Shutdown(shutdownCtx)
}
