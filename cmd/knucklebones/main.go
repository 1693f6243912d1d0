package main

import (
	"context"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/kiryu-dev/knucklebones/internal/adapters/dice"
	"github.com/kiryu-dev/knucklebones/internal/config"
	"github.com/kiryu-dev/knucklebones/internal/domain"
	"github.com/kiryu-dev/knucklebones/internal/transport/terminal"
	"github.com/kiryu-dev/knucklebones/internal/usecase/match"
	"github.com/kiryu-dev/knucklebones/internal/usecase/session"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	defaultConfigPath = "./config.yml"
	maxPlayerNames    = 2
)

var errInterrupted = errors.New("interrupted")

type playerNames []string

func (n *playerNames) String() string {
	return strings.Join(*n, ",")
}

func (n *playerNames) Set(name string) error {
	if len(*n) >= maxPlayerNames {
		return errors.Errorf("at most %d player names", maxPlayerNames)
	}
	*n = append(*n, name)
	return nil
}

func main() {
	cfgPath := flag.String("config", defaultConfigPath, "path to config")
	var names playerNames
	flag.Var(&names, "p", "player name (repeat for the second player)")
	flag.Parse()
	cfg, err := loadConfig(*cfgPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
	logger, err := newLogger(cfg.Log)
	if err != nil {
		panic(err)
	}
	defer func() {
		_ = logger.Sync()
	}()
	seed := cfg.Seed
	if seed == 0 {
		if seed, err = dice.NewSeed(); err != nil {
			logger.Fatal(err.Error())
		}
	}
	logger.Debug("config loaded", zap.Any("config", cfg), zap.Uint64("seed", seed))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sigChan := make(chan os.Signal, 2)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	errGroup, ctx := errgroup.WithContext(ctx)
	errGroup.Go(func() error {
		select {
		case s := <-sigChan:
			return errors.WithMessagef(errInterrupted, "captured signal: %v", s)
		case <-ctx.Done():
			return nil
		}
	})
	var (
		renderer = newRenderer(cfg)
		input    = terminal.NewInput(os.Stdin, os.Stdout)
		game     = match.New(dice.New(seed), input, renderer, logger)
		sess     = session.New(game, input, renderer, domain.NameFormat{
			MaxLength: cfg.MaxNameLength,
			Ellipsis:  cfg.NameEllipsis,
		}, logger)
	)
	errGroup.Go(func() error {
		defer cancel()
		_, err := sess.Run(ctx, names)
		if errors.Is(err, domain.ErrCancelled) {
			logger.Info("session ended early", zap.Int("rounds", sess.Rounds()))
			return renderer.Announce(domain.Event{Type: domain.EarlyQuit})
		}
		return err
	})
	err = errGroup.Wait()
	switch {
	case errors.Is(err, errInterrupted):
		logger.Info("shutting down: " + err.Error())
	case err != nil:
		logger.Error(err.Error())
		_ = logger.Sync()
		os.Exit(1)
	}
}

// loadConfig falls back to defaults when the default config file is absent.
func loadConfig(path string) (config.Config, error) {
	cfg, err := config.New(path)
	if errors.Is(err, fs.ErrNotExist) && path == defaultConfigPath {
		return config.Default(), nil
	}
	return cfg, err
}

func newRenderer(cfg config.Config) domain.Renderer {
	if cfg.Render == config.RenderJson {
		return terminal.NewJsonRenderer(os.Stdout)
	}
	return terminal.NewTextRenderer(os.Stdout, cfg.ClearScreen)
}
