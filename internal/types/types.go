// Package types defines every cross‑package data structure used by the copyctx CLI.
package types

import (
	"github.com/temirov/copyctx/internal/tokenizer"
	"github.com/temirov/copyctx/internal/utils"
)

const (
	CommandContent   = "content"
	CommandStructure = "structure"

	// PlaceholderProjectName is replaced with the project name in every template.
	PlaceholderProjectName = "$PROJECT_NAME"
	// PlaceholderFilePath is replaced with the relative path of the current file.
	PlaceholderFilePath = "$FILE_PATH"
	// PlaceholderDirectoryStructure is replaced with the rendered directory tree.
	PlaceholderDirectoryStructure = "$DIRECTORY_STRUCTURE"
)

const (
	DefaultHeaderTemplate    = "```" + PlaceholderFilePath
	DefaultFooterTemplate    = "```"
	DefaultPreTextTemplate   = "=====\n" + PlaceholderProjectName + "\n=====\n"
	DefaultPostTextTemplate  = ""
	DefaultFileCountLimit    = 30
	DefaultMaxFileSizeKB     = 500
	DefaultStructurePreText  = ""
	DefaultStructurePostText = ""
	DefaultProjectName       = "workspace"
	minimumFileCountLimit    = 1
	minimumMaxFileSizeKB     = 1
)

// FileReference is a read-only view of a host file system entry.
type FileReference struct {
	Name        string
	Path        string
	IsDirectory bool
}

// PlannedFile is a reference that passed every collection filter.
type PlannedFile struct {
	Reference    FileReference
	RelativePath string
}

// CollectionOptions controls which files the collector accepts.
type CollectionOptions struct {
	FileCountLimit         int
	EnforceFileCountLimit  bool
	FilenameSuffixFilters  []string
	EnforceFilenameFilters bool
	MaxFileSizeKB          int
	RespectIgnoreRules     bool
}

// MaxFileSizeBytes returns the inclusive size limit in bytes.
func (options CollectionOptions) MaxFileSizeBytes() int64 {
	return int64(options.MaxFileSizeKB) * utils.BytesPerKilobyte
}

// Normalized clamps the numeric limits to their minimum values.
func (options CollectionOptions) Normalized() CollectionOptions {
	result := options
	if result.FileCountLimit < minimumFileCountLimit {
		result.FileCountLimit = minimumFileCountLimit
	}
	if result.MaxFileSizeKB < minimumMaxFileSizeKB {
		result.MaxFileSizeKB = minimumMaxFileSizeKB
	}
	return result
}

// CopyOptions is an immutable snapshot of the settings for copying file contents.
type CopyOptions struct {
	CollectionOptions
	HeaderTemplate              string
	FooterTemplate              string
	PreTextTemplate             string
	PostTextTemplate            string
	InsertBlankLineBetweenFiles bool
	PreferOpenBufferContent     bool
	ProjectName                 string
}

// StructureOptions is an immutable snapshot of the settings for copying the directory structure only.
type StructureOptions struct {
	CollectionOptions
	PreTextTemplate  string
	PostTextTemplate string
	ProjectName      string
}

// DefaultCollectionOptions returns the collection defaults.
func DefaultCollectionOptions() CollectionOptions {
	return CollectionOptions{
		FileCountLimit:        DefaultFileCountLimit,
		EnforceFileCountLimit: true,
		MaxFileSizeKB:         DefaultMaxFileSizeKB,
		RespectIgnoreRules:    true,
	}
}

// DefaultCopyOptions returns the content copy defaults.
func DefaultCopyOptions() CopyOptions {
	return CopyOptions{
		CollectionOptions:           DefaultCollectionOptions(),
		HeaderTemplate:              DefaultHeaderTemplate,
		FooterTemplate:              DefaultFooterTemplate,
		PreTextTemplate:             DefaultPreTextTemplate,
		PostTextTemplate:            DefaultPostTextTemplate,
		InsertBlankLineBetweenFiles: true,
		PreferOpenBufferContent:     true,
		ProjectName:                 DefaultProjectName,
	}
}

// DefaultStructureOptions returns the directory structure copy defaults.
func DefaultStructureOptions() StructureOptions {
	return StructureOptions{
		CollectionOptions: DefaultCollectionOptions(),
		PreTextTemplate:   DefaultStructurePreText,
		PostTextTemplate:  DefaultStructurePostText,
		ProjectName:       DefaultProjectName,
	}
}

// CollectionResult lists the planned files in traversal order.
type CollectionResult struct {
	Files        []PlannedFile
	LimitReached bool
}

// RelativePaths returns the relative path of every planned file in order.
func (result CollectionResult) RelativePaths() []string {
	relativePaths := make([]string, 0, len(result.Files))
	for _, plannedFile := range result.Files {
		relativePaths = append(relativePaths, plannedFile.RelativePath)
	}
	return relativePaths
}

// CopyResult is the outcome of copying file contents.
type CopyResult struct {
	ClipboardText    string
	CopiedFileCount  int
	Stats            tokenizer.Stats
	FileLimitReached bool
	ModelTokens      int
	Model            string
}

// StructureResult is the outcome of copying the directory structure only.
type StructureResult struct {
	ClipboardText    string
	FileLimitReached bool
}
