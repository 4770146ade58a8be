package main

import (
	"log/slog"
	"strings"
	"sync"

	"dataproj/internal/config"
	"dataproj/internal/logging"
	"dataproj/internal/workspace"
)

type commandContext struct {
	configFlag *string
	dirFlag    *string

	configOnce sync.Once
	config     *config.Config
	configErr  error

	logOnce sync.Once
	log     *slog.Logger
}

func newCommandContext(configFlag, dirFlag *string) *commandContext {
	return &commandContext{
		configFlag: configFlag,
		dirFlag:    dirFlag,
	}
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
		c.config = cfg
	})
	return c.config, c.configErr
}

func (c *commandContext) logger() *slog.Logger {
	c.logOnce.Do(func() {
		cfg, err := c.ensureConfig()
		if err != nil {
			c.log = logging.NewNop()
			return
		}
		logger, err := logging.New(logging.Options{Level: cfg.LogLevel, Format: cfg.LogFormat})
		if err != nil {
			c.log = logging.NewNop()
			return
		}
		c.log = logger
	})
	return c.log
}

// workspace builds the workspace the command operates on: --dir wins over
// the configured workspace_dir.
func (c *commandContext) workspace() (*workspace.Workspace, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}

	dir := cfg.WorkspaceDir
	if c.dirFlag != nil && strings.TrimSpace(*c.dirFlag) != "" {
		dir = strings.TrimSpace(*c.dirFlag)
	}

	opts := []workspace.Option{workspace.WithLogger(c.logger())}
	if cfg.RecursiveSearch {
		opts = append(opts, workspace.WithRecursiveSearch())
	}
	return workspace.New(dir, opts...)
}

// subdirOrDefault applies the configured default when the flag is empty.
func (c *commandContext) subdirOrDefault(subdir string) string {
	if strings.TrimSpace(subdir) != "" {
		return subdir
	}
	if cfg, err := c.ensureConfig(); err == nil {
		return cfg.DefaultSubdir
	}
	return workspace.ResultsSubdir
}
