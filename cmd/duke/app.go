package main

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/urfave/cli/v3"

	"duke/internal/config"
	"duke/internal/logging"
	"duke/internal/session"
	"duke/internal/storage"
	"duke/internal/ui"
)

const version = "0.3.0"

// NewApp creates the root CLI application
func NewApp() *cli.Command {
	return &cli.Command{
		Name:    "duke",
		Usage:   "Duke - keep track of todos, deadlines and events",
		Version: version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Usage: "Path to config.toml (default $" + config.EnvConfigPath + " or ./" + config.DefaultConfigFileName + ")",
			},
		},
		Action: interactiveAction,
		Commands: []*cli.Command{
			execCommand(),
		},
	}
}

func execCommand() *cli.Command {
	return &cli.Command{
		Name:      "exec",
		Usage:     "Run a single command, e.g. duke exec reminder",
		ArgsUsage: "<command> [arguments...]",
		Action:    execAction,
	}
}

func interactiveAction(ctx context.Context, c *cli.Command) error {
	e, err := openEnv(c.String("config"))
	if err != nil {
		return err
	}
	defer e.Close()

	if err := ui.Run(e.session, e.cfg); err != nil {
		return fmt.Errorf("error running program: %w", err)
	}
	return nil
}

func execAction(ctx context.Context, c *cli.Command) error {
	if c.NArg() == 0 {
		return fmt.Errorf("exec needs a command, try: duke exec list")
	}
	e, err := openEnv(c.String("config"))
	if err != nil {
		return err
	}
	defer e.Close()

	reply := e.session.Handle(strings.Join(c.Args().Slice(), " "))
	fmt.Fprintln(c.Root().Writer, reply.Text)
	return nil
}

type env struct {
	cfg     config.Config
	store   *storage.Store
	session *session.Session
	closers []io.Closer
}

func openEnv(configFlag string) (*env, error) {
	cfg, err := config.LoadOrCreate(config.ResolveConfigPath(configFlag))
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	e := &env{cfg: cfg}

	log, logFile, err := logging.New(cfg.LogPath, cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to open log: %w", err)
	}
	e.closers = append(e.closers, logFile)

	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		e.Close()
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	e.store = store
	e.closers = append(e.closers, store)

	e.session, err = session.New(store, log, time.Now)
	if err != nil {
		e.Close()
		return nil, fmt.Errorf("failed to load tasks: %w", err)
	}
	log.WithField("db", cfg.DBPath).Info("session started")
	return e, nil
}

// Close releases resources in reverse order of acquisition.
func (e *env) Close() error {
	var first error
	for i := len(e.closers) - 1; i >= 0; i-- {
		if err := e.closers[i].Close(); err != nil && first == nil {
			first = err
		}
	}
	e.closers = nil
	return first
}
