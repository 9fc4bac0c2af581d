package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/temirov/copyctx/internal/utils"
)

// InitTarget identifies where configuration should be initialized.
type InitTarget string

const (
	// InitTargetLocal writes configuration into the working directory.
	InitTargetLocal InitTarget = "local"
	// InitTargetGlobal writes configuration into the global configuration directory.
	InitTargetGlobal InitTarget = "global"

	defaultConfigurationTemplate = `common:
  project_name: ""
  file_count_limit: 30
  set_max_file_count: true
  max_file_size_kb: 500
  use_filename_filters: false
  filename_filters: []
  respect_gitignore: true
  strict_memory_read: true
  show_copy_notification: true
  exclude: []
  include_git: false
  format: raw
  stdout: false
content:
  header_format: "` + "```" + `$FILE_PATH"
  footer_format: "` + "```" + `"
  pre_text: "=====\n$PROJECT_NAME\n=====\n"
  post_text: ""
  add_extra_line_between_files: true
  tokens:
    enabled: false
    model: gpt-4o
structure:
  pre_text: ""
  post_text: ""
`
)

// InitOptions controls how configuration initialization behaves.
type InitOptions struct {
	Target           InitTarget
	Force            bool
	WorkingDirectory string
}

const (
	configurationDirectoryPermissions = 0o755
	configurationFilePermissions      = 0o600

	errorInitWorkingDirectoryFormat  = "determine working directory for configuration: %w"
	errorInitHomeDirectoryFormat     = "resolve home directory for configuration: %w"
	errorInitCreateDirectoryFormat   = "create configuration directory %s: %w"
	errorInitUnsupportedTargetFormat = "unsupported init target %q"
	errorInitExistsFormat            = "configuration file already exists at %s (use --force to overwrite)"
	errorInitInspectFormat           = "inspect configuration path %s: %w"
	errorInitWriteFormat             = "write configuration to %s: %w"
)

// InitializeConfiguration writes the default configuration to the requested target
// and returns the path written. An existing file is replaced only with Force.
func InitializeConfiguration(options InitOptions) (string, error) {
	destinationPath, destinationError := initDestination(options)
	if destinationError != nil {
		return "", destinationError
	}

	_, statError := os.Stat(destinationPath)
	switch {
	case statError == nil && !options.Force:
		return "", fmt.Errorf(errorInitExistsFormat, destinationPath)
	case statError != nil && !os.IsNotExist(statError):
		return "", fmt.Errorf(errorInitInspectFormat, destinationPath, statError)
	}

	if writeError := os.WriteFile(destinationPath, []byte(defaultConfigurationTemplate), configurationFilePermissions); writeError != nil {
		return "", fmt.Errorf(errorInitWriteFormat, destinationPath, writeError)
	}
	return destinationPath, nil
}

// initDestination resolves the configuration path for options.Target, creating the
// global configuration directory when needed.
func initDestination(options InitOptions) (string, error) {
	switch options.Target {
	case "", InitTargetLocal:
		workingDirectory := options.WorkingDirectory
		if workingDirectory == "" {
			currentDirectory, workingDirectoryError := os.Getwd()
			if workingDirectoryError != nil {
				return "", fmt.Errorf(errorInitWorkingDirectoryFormat, workingDirectoryError)
			}
			workingDirectory = currentDirectory
		}
		return filepath.Join(workingDirectory, utils.ConfigFileName), nil
	case InitTargetGlobal:
		homeDirectory, homeError := os.UserHomeDir()
		if homeError != nil {
			return "", fmt.Errorf(errorInitHomeDirectoryFormat, homeError)
		}
		configurationDirectory := filepath.Join(homeDirectory, utils.GlobalConfigDirectoryName)
		if mkdirError := os.MkdirAll(configurationDirectory, configurationDirectoryPermissions); mkdirError != nil {
			return "", fmt.Errorf(errorInitCreateDirectoryFormat, configurationDirectory, mkdirError)
		}
		return filepath.Join(configurationDirectory, utils.ConfigFileName), nil
	default:
		return "", fmt.Errorf(errorInitUnsupportedTargetFormat, options.Target)
	}
}
