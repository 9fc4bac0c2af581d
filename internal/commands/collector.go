// Package commands contains the copy use cases: file collection and the
// assembly of clipboard text from the collected files.
package commands

import (
	"fmt"
	"strings"

	"github.com/temirov/copyctx/internal/ports"
	"github.com/temirov/copyctx/internal/types"
	"github.com/temirov/copyctx/internal/utils"
)

const (
	skipFileMessageFormat      = "Skipping file: %s - %s"
	skipDirectoryMessageFormat = "Skipping directory: %s - %s"
	skipDuplicateMessageFormat = "Skipping already copied file: %s"
	acceptFileMessageFormat    = "Adding file: %s"
	limitReachedMessageFormat  = "File count limit of %d reached"

	reasonSuffixMismatch = "Extension does not match any filter"
	reasonBinary         = "Binary file"
	reasonSizeExceeded   = "Size limit exceeded"
	reasonIgnored        = "Ignored by VCS ignore rules"
)

// FileCollector turns root references into the ordered list of files eligible for copying.
type FileCollector struct {
	Gateway ports.ContentGateway
	Logger  ports.Logger
}

// NewFileCollector returns a collector reading through gateway. A nil logger discards messages.
func NewFileCollector(gateway ports.ContentGateway, logger ports.Logger) *FileCollector {
	if logger == nil {
		logger = ports.NopLogger{}
	}
	return &FileCollector{Gateway: gateway, Logger: logger}
}

// collectionRun holds the state of one Collect call.
type collectionRun struct {
	gateway       ports.ContentGateway
	ignoreChecker ports.IgnoreChecker
	logger        ports.Logger
	options       types.CollectionOptions
	acceptedPaths map[string]struct{}
	result        types.CollectionResult
}

// Collect walks roots depth-first in input order and returns the accepted files.
// Once the enforced file count limit is reached the walk stops at the next entry.
func (collector *FileCollector) Collect(roots []types.FileReference, options types.CollectionOptions) types.CollectionResult {
	logger := collector.Logger
	if logger == nil {
		logger = ports.NopLogger{}
	}
	run := &collectionRun{
		gateway:       collector.Gateway,
		logger:        logger,
		options:       options,
		acceptedPaths: map[string]struct{}{},
	}
	if options.RespectIgnoreRules {
		if ignoreChecker, supportsIgnore := collector.Gateway.(ports.IgnoreChecker); supportsIgnore {
			run.ignoreChecker = ignoreChecker
		}
	}

	for _, root := range roots {
		if !run.visit(root) {
			break
		}
	}
	return run.result
}

// visit processes one reference and reports whether the walk should continue.
func (run *collectionRun) visit(reference types.FileReference) bool {
	if run.shouldStop() {
		return false
	}
	if reference.IsDirectory {
		return run.visitDirectory(reference)
	}
	run.visitFile(reference)
	return true
}

func (run *collectionRun) visitDirectory(directory types.FileReference) bool {
	if run.isIgnored(directory) {
		run.logger.Info(fmt.Sprintf(skipDirectoryMessageFormat, directory.Name, reasonIgnored))
		return true
	}
	for _, child := range run.gateway.ChildrenOf(directory) {
		if !run.visit(child) {
			return false
		}
	}
	return true
}

func (run *collectionRun) visitFile(file types.FileReference) {
	if rejection := run.rejectionReason(file); rejection != "" {
		run.logger.Info(fmt.Sprintf(skipFileMessageFormat, file.Name, rejection))
		return
	}
	relativePath := utils.NormalizeSlashes(run.gateway.RelativePath(file))
	if _, alreadyAccepted := run.acceptedPaths[relativePath]; alreadyAccepted {
		run.logger.Info(fmt.Sprintf(skipDuplicateMessageFormat, relativePath))
		return
	}
	run.acceptedPaths[relativePath] = struct{}{}
	run.result.Files = append(run.result.Files, types.PlannedFile{Reference: file, RelativePath: relativePath})
	run.logger.Info(fmt.Sprintf(acceptFileMessageFormat, relativePath))
}

func (run *collectionRun) rejectionReason(file types.FileReference) string {
	if run.options.EnforceFilenameFilters && !matchesAnySuffix(file.Name, run.options.FilenameSuffixFilters) {
		return reasonSuffixMismatch
	}
	if run.gateway.IsBinary(file) {
		return reasonBinary
	}
	if run.gateway.SizeBytes(file) > run.options.MaxFileSizeBytes() {
		return reasonSizeExceeded
	}
	if run.isIgnored(file) {
		return reasonIgnored
	}
	return ""
}

func (run *collectionRun) shouldStop() bool {
	if !run.options.EnforceFileCountLimit || len(run.result.Files) < run.options.FileCountLimit {
		return false
	}
	if !run.result.LimitReached {
		run.result.LimitReached = true
		run.logger.Info(fmt.Sprintf(limitReachedMessageFormat, run.options.FileCountLimit))
	}
	return true
}

func (run *collectionRun) isIgnored(reference types.FileReference) bool {
	return run.ignoreChecker != nil && run.ignoreChecker.IsIgnored(reference)
}

func matchesAnySuffix(fileName string, suffixes []string) bool {
	for _, suffix := range suffixes {
		if strings.HasSuffix(fileName, suffix) {
			return true
		}
	}
	return false
}
