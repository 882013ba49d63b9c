package main

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"tradehall/internal/config"
	"tradehall/internal/logging"
	"tradehall/internal/preflight"
	"tradehall/internal/tradedb"
)

type commandContext struct {
	configFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error

	loggerOnce sync.Once
	logger     *slog.Logger
	loggerErr  error
}

func newCommandContext(configFlag *string) *commandContext {
	return &commandContext{configFlag: configFlag}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

func (c *commandContext) ensureLogger() (*slog.Logger, error) {
	c.loggerOnce.Do(func() {
		cfg, err := c.ensureConfig()
		if err != nil {
			c.loggerErr = err
			return
		}
		logger, err := logging.NewFromConfig(cfg)
		if err != nil {
			c.loggerErr = err
			return
		}
		c.logger = logger
	})
	return c.logger, c.loggerErr
}

// withStore runs the local preflight checks and opens the trading database
// for the duration of fn. A held lock is reported with a hint rather than
// the raw error.
func (c *commandContext) withStore(fn func(*tradedb.Store) error) error {
	cfg, err := c.ensureConfig()
	if err != nil {
		return err
	}
	if err := preflight.FirstFailure(preflight.RunLocal(cfg)); err != nil {
		return err
	}
	store, err := tradedb.Open(cfg)
	if err != nil {
		if errors.Is(err, tradedb.ErrLocked) {
			return fmt.Errorf("database %s is in use by another tradehall session", cfg.DatabasePath())
		}
		return fmt.Errorf("open database: %w", err)
	}
	defer store.Close()
	return fn(store)
}
