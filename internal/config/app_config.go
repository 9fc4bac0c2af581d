package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/temirov/copyctx/internal/types"
	"github.com/temirov/copyctx/internal/utils"
)

// LoadOptions controls how application configuration is discovered.
type LoadOptions struct {
	WorkingDirectory string
	ExplicitFilePath string
}

// ApplicationConfiguration holds the settings shared by both copy actions and the per-action templates.
type ApplicationConfiguration struct {
	Common    CommonConfiguration    `mapstructure:"common"`
	Content   ContentConfiguration   `mapstructure:"content"`
	Structure StructureConfiguration `mapstructure:"structure"`
}

// CommonConfiguration controls file collection for both copy actions.
type CommonConfiguration struct {
	ProjectName          string   `mapstructure:"project_name"`
	FileCountLimit       *int     `mapstructure:"file_count_limit"`
	SetMaxFileCount      *bool    `mapstructure:"set_max_file_count"`
	MaxFileSizeKB        *int     `mapstructure:"max_file_size_kb"`
	UseFilenameFilters   *bool    `mapstructure:"use_filename_filters"`
	FilenameFilters      []string `mapstructure:"filename_filters"`
	RespectGitIgnore     *bool    `mapstructure:"respect_gitignore"`
	StrictMemoryRead     *bool    `mapstructure:"strict_memory_read"`
	ShowCopyNotification *bool    `mapstructure:"show_copy_notification"`
	Exclude              []string `mapstructure:"exclude"`
	IncludeGit           *bool    `mapstructure:"include_git"`
	Format               string   `mapstructure:"format"`
	Stdout               *bool    `mapstructure:"stdout"`
}

// ContentConfiguration holds the templates of the file content copy.
type ContentConfiguration struct {
	HeaderFormat             *string            `mapstructure:"header_format"`
	FooterFormat             *string            `mapstructure:"footer_format"`
	PreText                  *string            `mapstructure:"pre_text"`
	PostText                 *string            `mapstructure:"post_text"`
	AddExtraLineBetweenFiles *bool              `mapstructure:"add_extra_line_between_files"`
	Tokens                   TokenConfiguration `mapstructure:"tokens"`
}

// StructureConfiguration holds the templates of the directory structure copy.
type StructureConfiguration struct {
	PreText  *string `mapstructure:"pre_text"`
	PostText *string `mapstructure:"post_text"`
}

// TokenConfiguration controls model token counting defaults.
type TokenConfiguration struct {
	Enabled *bool  `mapstructure:"enabled"`
	Model   string `mapstructure:"model"`
}

// LoadApplicationConfiguration loads configuration from global and local files.
func LoadApplicationConfiguration(options LoadOptions) (ApplicationConfiguration, error) {
	workingDirectory := options.WorkingDirectory
	if workingDirectory == "" {
		currentDirectory, err := os.Getwd()
		if err != nil {
			return ApplicationConfiguration{}, fmt.Errorf("determine working directory: %w", err)
		}
		workingDirectory = currentDirectory
	}

	var merged ApplicationConfiguration

	if homeDirectory, err := os.UserHomeDir(); err == nil && homeDirectory != "" {
		globalPath := filepath.Join(homeDirectory, utils.GlobalConfigDirectoryName, utils.ConfigFileName)
		globalConfig, loadErr := loadConfigurationFromPath(globalPath)
		if loadErr != nil {
			return ApplicationConfiguration{}, loadErr
		}
		merged = merged.Merge(globalConfig)
	}

	localPath, resolveErr := resolveLocalConfigPath(workingDirectory, options.ExplicitFilePath)
	if resolveErr != nil {
		return ApplicationConfiguration{}, resolveErr
	}
	if localPath != "" {
		localConfig, loadErr := loadConfigurationFromPath(localPath)
		if loadErr != nil {
			return ApplicationConfiguration{}, loadErr
		}
		merged = merged.Merge(localConfig)
	}

	merged.Common.Exclude = utils.DeduplicatePatterns(merged.Common.Exclude)

	return merged, nil
}

func resolveLocalConfigPath(workingDirectory, explicitPath string) (string, error) {
	if explicitPath != "" {
		if filepath.IsAbs(explicitPath) {
			return explicitPath, nil
		}
		if workingDirectory == "" {
			absolute, err := filepath.Abs(explicitPath)
			if err != nil {
				return "", fmt.Errorf("resolve configuration path %s: %w", explicitPath, err)
			}
			return absolute, nil
		}
		return filepath.Join(workingDirectory, explicitPath), nil
	}
	if workingDirectory == "" {
		return "", nil
	}
	return filepath.Join(workingDirectory, utils.ConfigFileName), nil
}

func loadConfigurationFromPath(path string) (ApplicationConfiguration, error) {
	if path == "" {
		return ApplicationConfiguration{}, nil
	}
	info, statErr := os.Stat(path)
	if statErr != nil {
		if os.IsNotExist(statErr) {
			return ApplicationConfiguration{}, nil
		}
		return ApplicationConfiguration{}, fmt.Errorf("stat configuration %s: %w", path, statErr)
	}
	if info.IsDir() {
		return ApplicationConfiguration{}, fmt.Errorf("configuration path %s is a directory", path)
	}

	reader := viper.New()
	reader.SetConfigFile(path)
	reader.SetConfigType("yaml")
	if readErr := reader.ReadInConfig(); readErr != nil {
		return ApplicationConfiguration{}, fmt.Errorf("read configuration from %s: %w", path, readErr)
	}
	var config ApplicationConfiguration
	if decodeErr := reader.Unmarshal(&config); decodeErr != nil {
		return ApplicationConfiguration{}, fmt.Errorf("decode configuration from %s: %w", path, decodeErr)
	}
	return config, nil
}

// Merge overlays override onto the receiver returning the combined configuration.
func (config ApplicationConfiguration) Merge(override ApplicationConfiguration) ApplicationConfiguration {
	result := config
	result.Common = result.Common.merge(override.Common)
	result.Content = result.Content.merge(override.Content)
	result.Structure = result.Structure.merge(override.Structure)
	return result
}

func (config CommonConfiguration) merge(override CommonConfiguration) CommonConfiguration {
	result := config
	if override.ProjectName != "" {
		result.ProjectName = override.ProjectName
	}
	if override.FileCountLimit != nil {
		result.FileCountLimit = cloneInt(override.FileCountLimit)
	}
	if override.SetMaxFileCount != nil {
		result.SetMaxFileCount = cloneBool(override.SetMaxFileCount)
	}
	if override.MaxFileSizeKB != nil {
		result.MaxFileSizeKB = cloneInt(override.MaxFileSizeKB)
	}
	if override.UseFilenameFilters != nil {
		result.UseFilenameFilters = cloneBool(override.UseFilenameFilters)
	}
	if len(override.FilenameFilters) > 0 {
		result.FilenameFilters = append([]string{}, utils.DeduplicatePatterns(override.FilenameFilters)...)
	}
	if override.RespectGitIgnore != nil {
		result.RespectGitIgnore = cloneBool(override.RespectGitIgnore)
	}
	if override.StrictMemoryRead != nil {
		result.StrictMemoryRead = cloneBool(override.StrictMemoryRead)
	}
	if override.ShowCopyNotification != nil {
		result.ShowCopyNotification = cloneBool(override.ShowCopyNotification)
	}
	if len(override.Exclude) > 0 {
		result.Exclude = append([]string{}, utils.DeduplicatePatterns(override.Exclude)...)
	}
	if override.IncludeGit != nil {
		result.IncludeGit = cloneBool(override.IncludeGit)
	}
	if override.Format != "" {
		result.Format = override.Format
	}
	if override.Stdout != nil {
		result.Stdout = cloneBool(override.Stdout)
	}
	return result
}

func (config ContentConfiguration) merge(override ContentConfiguration) ContentConfiguration {
	result := config
	if override.HeaderFormat != nil {
		result.HeaderFormat = cloneString(override.HeaderFormat)
	}
	if override.FooterFormat != nil {
		result.FooterFormat = cloneString(override.FooterFormat)
	}
	if override.PreText != nil {
		result.PreText = cloneString(override.PreText)
	}
	if override.PostText != nil {
		result.PostText = cloneString(override.PostText)
	}
	if override.AddExtraLineBetweenFiles != nil {
		result.AddExtraLineBetweenFiles = cloneBool(override.AddExtraLineBetweenFiles)
	}
	result.Tokens = result.Tokens.merge(override.Tokens)
	return result
}

func (config StructureConfiguration) merge(override StructureConfiguration) StructureConfiguration {
	result := config
	if override.PreText != nil {
		result.PreText = cloneString(override.PreText)
	}
	if override.PostText != nil {
		result.PostText = cloneString(override.PostText)
	}
	return result
}

func (config TokenConfiguration) merge(override TokenConfiguration) TokenConfiguration {
	result := config
	if override.Enabled != nil {
		result.Enabled = cloneBool(override.Enabled)
	}
	if override.Model != "" {
		result.Model = override.Model
	}
	return result
}

// CollectionOptions applies the common settings to the collection defaults and clamps the limits.
func (config CommonConfiguration) CollectionOptions() types.CollectionOptions {
	options := types.DefaultCollectionOptions()
	if config.FileCountLimit != nil {
		options.FileCountLimit = *config.FileCountLimit
	}
	if config.SetMaxFileCount != nil {
		options.EnforceFileCountLimit = *config.SetMaxFileCount
	}
	if config.MaxFileSizeKB != nil {
		options.MaxFileSizeKB = *config.MaxFileSizeKB
	}
	if config.UseFilenameFilters != nil {
		options.EnforceFilenameFilters = *config.UseFilenameFilters
	}
	if len(config.FilenameFilters) > 0 {
		options.FilenameSuffixFilters = append([]string{}, config.FilenameFilters...)
	}
	if config.RespectGitIgnore != nil {
		options.RespectIgnoreRules = *config.RespectGitIgnore
	}
	return options.Normalized()
}

// CopyOptions returns the content copy options described by the configuration.
func (config ApplicationConfiguration) CopyOptions() types.CopyOptions {
	options := types.DefaultCopyOptions()
	options.CollectionOptions = config.Common.CollectionOptions()
	if config.Common.ProjectName != "" {
		options.ProjectName = config.Common.ProjectName
	}
	if config.Common.StrictMemoryRead != nil {
		options.PreferOpenBufferContent = *config.Common.StrictMemoryRead
	}
	if config.Content.HeaderFormat != nil {
		options.HeaderTemplate = *config.Content.HeaderFormat
	}
	if config.Content.FooterFormat != nil {
		options.FooterTemplate = *config.Content.FooterFormat
	}
	if config.Content.PreText != nil {
		options.PreTextTemplate = *config.Content.PreText
	}
	if config.Content.PostText != nil {
		options.PostTextTemplate = *config.Content.PostText
	}
	if config.Content.AddExtraLineBetweenFiles != nil {
		options.InsertBlankLineBetweenFiles = *config.Content.AddExtraLineBetweenFiles
	}
	return options
}

// StructureOptions returns the directory structure copy options described by the configuration.
func (config ApplicationConfiguration) StructureOptions() types.StructureOptions {
	options := types.DefaultStructureOptions()
	options.CollectionOptions = config.Common.CollectionOptions()
	if config.Common.ProjectName != "" {
		options.ProjectName = config.Common.ProjectName
	}
	if config.Structure.PreText != nil {
		options.PreTextTemplate = *config.Structure.PreText
	}
	if config.Structure.PostText != nil {
		options.PostTextTemplate = *config.Structure.PostText
	}
	return options
}

func cloneBool(value *bool) *bool {
	if value == nil {
		return nil
	}
	cloned := *value
	return &cloned
}

func cloneInt(value *int) *int {
	if value == nil {
		return nil
	}
	cloned := *value
	return &cloned
}

func cloneString(value *string) *string {
	if value == nil {
		return nil
	}
	cloned := *value
	return &cloned
}
