package config

import (
	"strings"

	"dataproj/internal/fileutil"
)

func (c *Config) normalize() error {
	if strings.TrimSpace(c.WorkspaceDir) == "" {
		c.WorkspaceDir = defaultWorkspaceDir
	}
	expanded, err := fileutil.ExpandHome(c.WorkspaceDir)
	if err != nil {
		return err
	}
	c.WorkspaceDir = expanded

	c.DefaultSubdir = strings.TrimSpace(c.DefaultSubdir)
	if c.DefaultSubdir == "" {
		c.DefaultSubdir = defaultDefaultSubdir
	}

	if c.PreviewRows == 0 {
		c.PreviewRows = defaultPreviewRows
	}

	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	if c.LogLevel == "" {
		c.LogLevel = defaultLogLevel
	}
	c.LogFormat = strings.ToLower(strings.TrimSpace(c.LogFormat))
	if c.LogFormat == "" {
		c.LogFormat = defaultLogFormat
	}
	return nil
}
