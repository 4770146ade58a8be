package config

const (
	defaultWorkspaceDir  = "."
	defaultDefaultSubdir = "results"
	defaultPreviewRows   = 10
	defaultLogLevel      = "info"
	defaultLogFormat     = "console"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		WorkspaceDir:  defaultWorkspaceDir,
		DefaultSubdir: defaultDefaultSubdir,
		PreviewRows:   defaultPreviewRows,
		LogLevel:      defaultLogLevel,
		LogFormat:     defaultLogFormat,
	}
}
