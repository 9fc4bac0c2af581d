package gateway

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/go-git/go-git/v5"
	gitpatterns "github.com/go-git/go-git/v5/plumbing/format/gitignore"
	gitignore "github.com/monochromegane/go-gitignore"

	"github.com/temirov/copyctx/internal/config"
	"github.com/temirov/copyctx/internal/utils"
)

const (
	errorLoadIgnorePatternsFormat = "load ignore patterns from %s: %w"
	errorReadGitPatternsFormat    = "read git ignore patterns from %s: %w"
	errorParseGitIgnoreFormat     = "parse %s: %w"
)

// IgnoreOptions configures an IgnoreEvaluator.
type IgnoreOptions struct {
	// ExclusionPatterns are added to the patterns of the project's .ignore files.
	ExclusionPatterns []string
	// IncludeGit keeps the .git directory eligible.
	IncludeGit bool
	// DisableGitIgnore skips .gitignore evaluation.
	DisableGitIgnore bool
}

// IgnoreEvaluator decides whether a path is excluded by the project's ignore rules.
//
// Inside a git work tree every nested .gitignore and .git/info/exclude is
// honored. Outside of one only the .gitignore at the project root is read.
// The patterns of .ignore files and explicit exclusions apply in both cases.
type IgnoreEvaluator struct {
	projectRoot    string
	ignorePatterns []string
	gitRoot        string
	gitMatcher     gitpatterns.Matcher
	rootMatcher    gitignore.IgnoreMatcher

	mutex sync.Mutex
	cache map[string]bool
}

// NewIgnoreEvaluator loads the ignore rules that apply below projectRoot.
func NewIgnoreEvaluator(projectRoot string, options IgnoreOptions) (*IgnoreEvaluator, error) {
	absoluteRoot, absoluteError := filepath.Abs(projectRoot)
	if absoluteError != nil {
		return nil, fmt.Errorf(errorResolveFormat, projectRoot, absoluteError)
	}
	ignorePatterns, loadError := config.LoadRecursiveIgnorePatterns(absoluteRoot, options.ExclusionPatterns, options.IncludeGit)
	if loadError != nil {
		return nil, fmt.Errorf(errorLoadIgnorePatternsFormat, absoluteRoot, loadError)
	}
	evaluator := &IgnoreEvaluator{
		projectRoot:    absoluteRoot,
		ignorePatterns: ignorePatterns,
		cache:          map[string]bool{},
	}
	if options.DisableGitIgnore {
		return evaluator, nil
	}

	gitRoot, matcher, gitError := loadGitMatcher(absoluteRoot)
	if gitError != nil {
		return nil, gitError
	}
	if matcher != nil {
		evaluator.gitRoot = gitRoot
		evaluator.gitMatcher = matcher
		return evaluator, nil
	}

	rootGitIgnorePath := filepath.Join(absoluteRoot, utils.GitIgnoreFileName)
	if _, statError := os.Stat(rootGitIgnorePath); statError == nil {
		rootMatcher, parseError := gitignore.NewGitIgnore(rootGitIgnorePath)
		if parseError != nil {
			return nil, fmt.Errorf(errorParseGitIgnoreFormat, rootGitIgnorePath, parseError)
		}
		evaluator.rootMatcher = rootMatcher
	}
	return evaluator, nil
}

// loadGitMatcher returns the work tree root and a matcher over its ignore files.
// Both are empty when projectRoot is not inside a git work tree.
func loadGitMatcher(projectRoot string) (string, gitpatterns.Matcher, error) {
	repository, openError := git.PlainOpenWithOptions(projectRoot, &git.PlainOpenOptions{DetectDotGit: true})
	if errors.Is(openError, git.ErrRepositoryNotExists) {
		return "", nil, nil
	}
	if openError != nil {
		return "", nil, fmt.Errorf(errorReadGitPatternsFormat, projectRoot, openError)
	}
	worktree, worktreeError := repository.Worktree()
	if errors.Is(worktreeError, git.ErrIsBareRepository) {
		return "", nil, nil
	}
	if worktreeError != nil {
		return "", nil, fmt.Errorf(errorReadGitPatternsFormat, projectRoot, worktreeError)
	}
	patterns, readError := gitpatterns.ReadPatterns(worktree.Filesystem, nil)
	if readError != nil {
		return "", nil, fmt.Errorf(errorReadGitPatternsFormat, worktree.Filesystem.Root(), readError)
	}
	return worktree.Filesystem.Root(), gitpatterns.NewMatcher(patterns), nil
}

// IsIgnored reports whether the entry at absolutePath is ignored. Results are cached per path.
func (evaluator *IgnoreEvaluator) IsIgnored(absolutePath string, isDirectory bool) bool {
	cleanPath := filepath.Clean(absolutePath)
	evaluator.mutex.Lock()
	defer evaluator.mutex.Unlock()
	if ignored, cached := evaluator.cache[cleanPath]; cached {
		return ignored
	}
	ignored := evaluator.evaluate(cleanPath, isDirectory)
	evaluator.cache[cleanPath] = ignored
	return ignored
}

func (evaluator *IgnoreEvaluator) evaluate(absolutePath string, isDirectory bool) bool {
	relativePath := utils.RelativePathOrSelf(absolutePath, evaluator.projectRoot)
	if relativePath != "." && !utils.IsOutsideRoot(relativePath) && utils.ShouldIgnoreByPath(relativePath, evaluator.ignorePatterns) {
		return true
	}
	if evaluator.gitMatcher != nil {
		gitRelativePath := utils.RelativePathOrSelf(absolutePath, evaluator.gitRoot)
		if gitRelativePath == "." || utils.IsOutsideRoot(gitRelativePath) {
			return false
		}
		return evaluator.gitMatcher.Match(strings.Split(gitRelativePath, "/"), isDirectory)
	}
	if evaluator.rootMatcher != nil && relativePath != "." && !utils.IsOutsideRoot(relativePath) {
		return evaluator.rootMatcher.Match(absolutePath, isDirectory)
	}
	return false
}
