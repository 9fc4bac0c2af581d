package gateway

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/go-git/go-git/v5"
)

// ResolveProjectRoot returns the directory relative paths are computed against:
// explicitRoot when set, otherwise the root of the git work tree containing
// workingDirectory, otherwise workingDirectory itself.
func ResolveProjectRoot(workingDirectory string, explicitRoot string) (string, error) {
	if explicitRoot != "" {
		absoluteRoot, absoluteError := filepath.Abs(explicitRoot)
		if absoluteError != nil {
			return "", fmt.Errorf(errorResolveFormat, explicitRoot, absoluteError)
		}
		return absoluteRoot, nil
	}
	absoluteWorkingDirectory, absoluteError := filepath.Abs(workingDirectory)
	if absoluteError != nil {
		return "", fmt.Errorf(errorResolveFormat, workingDirectory, absoluteError)
	}
	repository, openError := git.PlainOpenWithOptions(absoluteWorkingDirectory, &git.PlainOpenOptions{DetectDotGit: true})
	if openError != nil {
		if errors.Is(openError, git.ErrRepositoryNotExists) {
			return absoluteWorkingDirectory, nil
		}
		return "", fmt.Errorf(errorResolveFormat, absoluteWorkingDirectory, openError)
	}
	worktree, worktreeError := repository.Worktree()
	if worktreeError != nil {
		return absoluteWorkingDirectory, nil
	}
	return worktree.Filesystem.Root(), nil
}

// ProjectName returns configuredName, or the base name of projectRoot when it is empty.
func ProjectName(projectRoot string, configuredName string) string {
	if configuredName != "" {
		return configuredName
	}
	return filepath.Base(filepath.Clean(projectRoot))
}
