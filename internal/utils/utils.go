// Package utils contains general helper functions used across copyctx.
package utils

import (
	"path/filepath"
	"strings"
)

// Ignore file constants used across the project.
const (
	// IgnoreFileName is the name of the project's own ignore file.
	IgnoreFileName = ".ignore"
	// GitIgnoreFileName is the name of the Git ignore file.
	GitIgnoreFileName = ".gitignore"
	// ExclusionPrefix marks patterns that exclude directories from processing.
	ExclusionPrefix = "EXCL:"
	// GitDirectoryName is the name of the Git repository directory.
	GitDirectoryName = ".git"
)

const (
	pathSegmentSeparator = "/"
	parentDirectoryName  = ".."
)

// DeduplicatePatterns removes duplicate patterns from a slice while preserving order.
// The first occurrence of each unique pattern is kept.
func DeduplicatePatterns(patterns []string) []string {
	encounteredPatterns := make(map[string]struct{})
	result := make([]string, 0, len(patterns))
	for _, pattern := range patterns {
		if _, exists := encounteredPatterns[pattern]; !exists {
			encounteredPatterns[pattern] = struct{}{}
			result = append(result, pattern)
		}
	}
	return result
}

// ContainsString checks if a slice of strings contains a specific target string.
func ContainsString(stringSlice []string, targetString string) bool {
	for _, currentString := range stringSlice {
		if currentString == targetString {
			return true
		}
	}
	return false
}

// NormalizeSlashes converts back-slashes to forward slashes regardless of the host separator.
func NormalizeSlashes(path string) string {
	return strings.ReplaceAll(filepath.ToSlash(path), "\\", pathSegmentSeparator)
}

// RelativePathOrSelf calculates the forward-slash relative path from root to fullPath.
// Returns the cleaned fullPath if relative calculation fails.
// Returns "." if fullPath and root resolve to the same directory.
func RelativePathOrSelf(fullPath, root string) string {
	cleanPath := filepath.Clean(fullPath)
	absoluteRoot, err := filepath.Abs(root)
	if err != nil {
		return cleanPath
	}
	cleanAbsoluteRoot := filepath.Clean(absoluteRoot)

	if cleanPath == cleanAbsoluteRoot {
		return "."
	}

	relativePath, relErr := filepath.Rel(cleanAbsoluteRoot, cleanPath)
	if relErr != nil {
		return cleanPath
	}
	return filepath.ToSlash(relativePath)
}

// IsOutsideRoot reports whether a forward-slash relative path escapes its root.
func IsOutsideRoot(relativePath string) bool {
	return relativePath == parentDirectoryName || strings.HasPrefix(relativePath, parentDirectoryName+pathSegmentSeparator)
}

// ShouldIgnoreByPath reports whether a path relative to the processing root
// should be excluded from further processing. The candidate path and every
// ignore pattern are converted to forward-slash form before evaluation. Patterns
// are split into hierarchical segments, allowing nested directory prefixes such
// as "subdir/node_modules/" and "subdir/.clasp.json" to match. A pattern ending
// with a trailing slash matches the specified directory and all descendant paths.
// Other patterns match an exact path where each segment is evaluated with
// filepath.Match semantics; single-segment patterns match the last path segment.
func ShouldIgnoreByPath(relativePath string, ignorePatterns []string) bool {
	normalizedPath := NormalizeSlashes(relativePath)
	pathSegments := strings.Split(normalizedPath, pathSegmentSeparator)
	lastSegment := pathSegments[len(pathSegments)-1]

	if lastSegment == IgnoreFileName {
		return true
	}

	for _, patternValue := range ignorePatterns {
		normalizedPattern := NormalizeSlashes(patternValue)

		if strings.HasPrefix(normalizedPattern, ExclusionPrefix) {
			exclusionPattern := strings.TrimPrefix(normalizedPattern, ExclusionPrefix)
			exclusionSegments := strings.Split(exclusionPattern, pathSegmentSeparator)
			if len(pathSegments) >= len(exclusionSegments) && segmentsMatch(pathSegments[:len(exclusionSegments)], exclusionSegments) {
				return true
			}
			continue
		}

		isDirectoryPattern := strings.HasSuffix(normalizedPattern, pathSegmentSeparator)
		trimmedPattern := strings.TrimSuffix(normalizedPattern, pathSegmentSeparator)
		patternSegments := strings.Split(trimmedPattern, pathSegmentSeparator)

		if isDirectoryPattern {
			if len(pathSegments) >= len(patternSegments) && segmentsMatch(pathSegments[:len(patternSegments)], patternSegments) {
				return true
			}
			continue
		}

		if len(patternSegments) == 1 {
			isMatched, matchError := filepath.Match(patternSegments[0], lastSegment)
			if matchError == nil && isMatched {
				return true
			}
			continue
		}

		if len(pathSegments) == len(patternSegments) && segmentsMatch(pathSegments, patternSegments) {
			return true
		}
	}

	return false
}

// segmentsMatch reports whether each pattern segment matches the corresponding
// path segment using filepath.Match semantics.
func segmentsMatch(pathSegments, patternSegments []string) bool {
	for segmentIndex, patternSegment := range patternSegments {
		isMatched, matchError := filepath.Match(patternSegment, pathSegments[segmentIndex])
		if matchError != nil || !isMatched {
			return false
		}
	}
	return true
}
