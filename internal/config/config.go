// Package config loads application configuration and the project's ignore files.
package config

import (
	"bufio"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/temirov/copyctx/internal/utils"
)

const (
	// gitDirectoryPattern represents the pattern that matches the Git directory.
	gitDirectoryPattern = utils.GitDirectoryName + "/"
	commentPrefix       = "#"

	errorLoadIgnoreFileFormat = "loading %s from %s: %w"
)

// LoadIgnoreFilePatterns reads one ignore file and returns its patterns.
// A missing file yields no patterns and no error.
//
// #nosec G304
func LoadIgnoreFilePatterns(ignoreFilePath string) ([]string, error) {
	fileHandle, openFileError := os.Open(ignoreFilePath)
	if openFileError != nil {
		if os.IsNotExist(openFileError) {
			return nil, nil
		}
		return nil, openFileError
	}
	defer func() {
		closeError := fileHandle.Close()
		if closeError != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to close %s: %v\n", ignoreFilePath, closeError)
		}
	}()

	var ignorePatterns []string
	scanner := bufio.NewScanner(fileHandle)
	for scanner.Scan() {
		trimmedLine := strings.TrimSpace(scanner.Text())
		if trimmedLine == "" || strings.HasPrefix(trimmedLine, commentPrefix) {
			continue
		}
		ignorePatterns = append(ignorePatterns, trimmedLine)
	}
	if scanError := scanner.Err(); scanError != nil {
		return nil, scanError
	}
	return ignorePatterns, nil
}

// LoadRecursiveIgnorePatterns walks rootDirectoryPath and aggregates the patterns of every
// utils.IgnoreFileName it finds. Patterns from a nested directory are prefixed with that
// directory's path relative to rootDirectoryPath. The directory named utils.GitDirectoryName
// is ignored unless includeGit is true. The provided exclusionPatterns are appended last.
//
// Git ignore files are not read here; they are evaluated by the file-system gateway
// with a gitignore matcher.
func LoadRecursiveIgnorePatterns(rootDirectoryPath string, exclusionPatterns []string, includeGit bool) ([]string, error) {
	var aggregatedPatterns []string

	walkFunction := func(currentDirectoryPath string, directoryEntry fs.DirEntry, walkError error) error {
		if walkError != nil {
			return walkError
		}
		if !directoryEntry.IsDir() {
			return nil
		}
		if directoryEntry.Name() == utils.GitDirectoryName {
			return filepath.SkipDir
		}

		relativeDirectory := utils.RelativePathOrSelf(currentDirectoryPath, rootDirectoryPath)
		prefix := ""
		if relativeDirectory != "." {
			prefix = relativeDirectory + "/"
		}

		ignoreFilePath := filepath.Join(currentDirectoryPath, utils.IgnoreFileName)
		ignorePatterns, loadError := LoadIgnoreFilePatterns(ignoreFilePath)
		if loadError != nil {
			return fmt.Errorf(errorLoadIgnoreFileFormat, utils.IgnoreFileName, currentDirectoryPath, loadError)
		}
		for _, pattern := range ignorePatterns {
			aggregatedPatterns = append(aggregatedPatterns, prefix+pattern)
		}
		return nil
	}

	if walkError := filepath.WalkDir(rootDirectoryPath, walkFunction); walkError != nil {
		return nil, walkError
	}

	if !includeGit {
		aggregatedPatterns = append(aggregatedPatterns, gitDirectoryPattern)
	}

	deduplicatedPatterns := utils.DeduplicatePatterns(aggregatedPatterns)
	for _, pattern := range exclusionPatterns {
		trimmedPattern := strings.TrimSpace(pattern)
		if trimmedPattern == "" {
			continue
		}
		if !utils.ContainsString(deduplicatedPatterns, trimmedPattern) {
			deduplicatedPatterns = append(deduplicatedPatterns, trimmedPattern)
		}
	}

	return deduplicatedPatterns, nil
}
