// Package gateway implements the copy engine's host ports on the local file system.
package gateway

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/temirov/copyctx/internal/ports"
	"github.com/temirov/copyctx/internal/types"
	"github.com/temirov/copyctx/internal/utils"
)

const (
	errorListDirectoryFormat = "Failed to list directory %s"
	errorReadFileFormat      = "Failed to read file contents for %s"
	errorProbeBinaryFormat   = "Failed to inspect file %s"
	errorStatFileFormat      = "Failed to read size of %s"
	errorResolveFormat       = "resolve %s: %w"
)

// Options configures a FileSystemGateway.
type Options struct {
	ProjectRoot string
	Logger      ports.Logger
	Buffers     BufferSource
	Ignore      *IgnoreEvaluator
}

// FileSystemGateway serves file references backed by os paths.
// Every host failure is logged and replaced by an empty value. Once ctx is
// done, every call returns an empty value without touching the file system.
type FileSystemGateway struct {
	ctx         context.Context
	projectRoot string
	logger      ports.Logger
	buffers     BufferSource
	ignore      *IgnoreEvaluator
}

// NewFileSystemGateway returns a gateway resolving relative paths against options.ProjectRoot.
func NewFileSystemGateway(ctx context.Context, options Options) (*FileSystemGateway, error) {
	absoluteRoot, absoluteError := filepath.Abs(options.ProjectRoot)
	if absoluteError != nil {
		return nil, fmt.Errorf(errorResolveFormat, options.ProjectRoot, absoluteError)
	}
	logger := options.Logger
	if logger == nil {
		logger = ports.NopLogger{}
	}
	if ctx == nil {
		ctx = context.Background()
	}
	return &FileSystemGateway{
		ctx:         ctx,
		projectRoot: absoluteRoot,
		logger:      logger,
		buffers:     options.Buffers,
		ignore:      options.Ignore,
	}, nil
}

// Reference returns the reference of the entry at path.
func (gateway *FileSystemGateway) Reference(path string) (types.FileReference, error) {
	absolutePath, absoluteError := filepath.Abs(path)
	if absoluteError != nil {
		return types.FileReference{}, fmt.Errorf(errorResolveFormat, path, absoluteError)
	}
	info, statError := os.Stat(absolutePath)
	if statError != nil {
		return types.FileReference{}, fmt.Errorf(errorResolveFormat, path, statError)
	}
	return types.FileReference{
		Name:        filepath.Base(absolutePath),
		Path:        absolutePath,
		IsDirectory: info.IsDir(),
	}, nil
}

// ChildrenOf lists the entries of directory in the order returned by os.ReadDir.
func (gateway *FileSystemGateway) ChildrenOf(directory types.FileReference) []types.FileReference {
	if gateway.ctx.Err() != nil {
		return nil
	}
	directoryEntries, readError := os.ReadDir(directory.Path)
	if readError != nil {
		gateway.logger.Error(fmt.Sprintf(errorListDirectoryFormat, directory.Path), readError)
		return nil
	}
	children := make([]types.FileReference, 0, len(directoryEntries))
	for _, directoryEntry := range directoryEntries {
		childPath := filepath.Join(directory.Path, directoryEntry.Name())
		isDirectory := directoryEntry.IsDir()
		if directoryEntry.Type()&os.ModeSymlink != 0 {
			if info, statError := os.Stat(childPath); statError == nil {
				isDirectory = info.IsDir()
			}
		}
		children = append(children, types.FileReference{
			Name:        directoryEntry.Name(),
			Path:        childPath,
			IsDirectory: isDirectory,
		})
	}
	return children
}

// ReadText returns the content of file. With preferOpenBuffer, buffered content is used only
// for buffers marked open; otherwise any buffered content wins over the file on disk.
func (gateway *FileSystemGateway) ReadText(file types.FileReference, preferOpenBuffer bool) string {
	if gateway.ctx.Err() != nil {
		return ""
	}
	if gateway.buffers != nil {
		if buffer, buffered := gateway.buffers.Buffer(file.Path); buffered && (!preferOpenBuffer || buffer.Open) {
			return buffer.Content
		}
	}
	fileBytes, readError := os.ReadFile(file.Path)
	if readError != nil {
		gateway.logger.Error(fmt.Sprintf(errorReadFileFormat, file.Path), readError)
		return ""
	}
	return string(fileBytes)
}

// IsBinary reports whether the first bytes of file look binary.
func (gateway *FileSystemGateway) IsBinary(file types.FileReference) bool {
	if gateway.ctx.Err() != nil {
		return false
	}
	isBinary, probeError := utils.IsFileBinary(file.Path)
	if probeError != nil {
		gateway.logger.Error(fmt.Sprintf(errorProbeBinaryFormat, file.Path), probeError)
		return false
	}
	return isBinary
}

// SizeBytes returns the size of file on disk.
func (gateway *FileSystemGateway) SizeBytes(file types.FileReference) int64 {
	if gateway.ctx.Err() != nil {
		return 0
	}
	info, statError := os.Stat(file.Path)
	if statError != nil {
		gateway.logger.Error(fmt.Sprintf(errorStatFileFormat, file.Path), statError)
		return 0
	}
	return info.Size()
}

// RelativePath returns the forward-slash path of file below the project root.
// Files outside the project root keep their absolute path.
func (gateway *FileSystemGateway) RelativePath(file types.FileReference) string {
	relativePath := utils.RelativePathOrSelf(file.Path, gateway.projectRoot)
	if relativePath == "." || utils.IsOutsideRoot(relativePath) || filepath.IsAbs(relativePath) {
		return utils.NormalizeSlashes(file.Path)
	}
	return relativePath
}

// IsIgnored reports whether entry is excluded by the project's ignore rules.
// Without an IgnoreEvaluator nothing is ignored.
func (gateway *FileSystemGateway) IsIgnored(entry types.FileReference) bool {
	if gateway.ignore == nil || gateway.ctx.Err() != nil {
		return false
	}
	return gateway.ignore.IsIgnored(entry.Path, entry.IsDirectory)
}

// ProjectRoot returns the absolute project root.
func (gateway *FileSystemGateway) ProjectRoot() string {
	return gateway.projectRoot
}
