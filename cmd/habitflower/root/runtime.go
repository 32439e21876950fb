package root

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/sandeepkv93/habitflower/internal/progress"
	"github.com/sandeepkv93/habitflower/internal/storage"
	"github.com/sandeepkv93/habitflower/internal/update"
)

// runtimeEnv bundles what every command needs: config, logger and the
// history source, plus the handles to release.
type runtimeEnv struct {
	Config  update.RuntimeConfig
	Logger  *slog.Logger
	History progress.HistorySource
	Repo    *storage.SQLiteRepository

	closers []io.Closer
}

func loadRuntime() (*runtimeEnv, error) {
	return loadRuntimeWith(nil)
}

// loadRuntimeWith lets a command override the env-derived config before any
// file is opened.
func loadRuntimeWith(override func(*update.RuntimeConfig)) (*runtimeEnv, error) {
	envErr := godotenv.Load()
	cfg := update.RuntimeConfigFromEnv(update.DefaultRuntimeConfig())
	if override != nil {
		override(&cfg)
	}

	rt := &runtimeEnv{Config: cfg, History: progress.PatternSource{}}
	logger, err := rt.openLogger()
	if err != nil {
		return nil, err
	}
	rt.Logger = logger
	slog.SetDefault(logger)
	if envErr != nil && !errors.Is(envErr, fs.ErrNotExist) {
		logger.Warn("failed to load .env file", "error", envErr)
	}

	if cfg.HistoryDBPath != "" {
		if err := rt.openHistory(cfg.HistoryDBPath); err != nil {
			rt.Close()
			return nil, err
		}
	}
	return rt, nil
}

// openLogger writes text logs to the configured file. Without one, logs are
// discarded since stdout belongs to the TUI.
func (rt *runtimeEnv) openLogger() (*slog.Logger, error) {
	var w io.Writer = io.Discard
	if rt.Config.LogFile != "" {
		f, err := os.OpenFile(rt.Config.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		rt.closers = append(rt.closers, f)
		w = f
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: rt.Config.LogLevel})), nil
}

func (rt *runtimeEnv) openHistory(path string) error {
	repo, err := storage.OpenSQLite(path)
	if err != nil {
		return fmt.Errorf("open history log %s: %w", path, err)
	}
	rt.Repo = repo
	rt.History = storage.NewHistoryLog(repo)
	rt.closers = append(rt.closers, repo)
	rt.Logger.Debug("history log opened", "path", path)
	return nil
}

func (rt *runtimeEnv) Close() {
	for i := len(rt.closers) - 1; i >= 0; i-- {
		_ = rt.closers[i].Close()
	}
	rt.closers = nil
}
