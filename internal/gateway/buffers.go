package gateway

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

const (
	bufferAssignmentSeparator   = "="
	errorBufferAssignmentFormat = "buffer assignment %q must have the form path=file"
	errorBufferReadFormat       = "read buffer content for %s: %w"
)

// Buffer is in-memory content that replaces a file on disk.
type Buffer struct {
	Content string
	// Open marks buffers the user is currently editing.
	Open bool
}

// BufferSource looks up in-memory content by absolute file path.
type BufferSource interface {
	Buffer(path string) (Buffer, bool)
}

// MemoryBuffers is a BufferSource backed by a map.
type MemoryBuffers struct {
	mutex   sync.RWMutex
	buffers map[string]Buffer
}

// NewMemoryBuffers returns an empty buffer set.
func NewMemoryBuffers() *MemoryBuffers {
	return &MemoryBuffers{buffers: map[string]Buffer{}}
}

// Set stores buffer for path.
func (memoryBuffers *MemoryBuffers) Set(path string, buffer Buffer) error {
	absolutePath, absoluteError := filepath.Abs(path)
	if absoluteError != nil {
		return fmt.Errorf(errorResolveFormat, path, absoluteError)
	}
	memoryBuffers.mutex.Lock()
	defer memoryBuffers.mutex.Unlock()
	memoryBuffers.buffers[absolutePath] = buffer
	return nil
}

// Buffer returns the buffer stored for path.
func (memoryBuffers *MemoryBuffers) Buffer(path string) (Buffer, bool) {
	memoryBuffers.mutex.RLock()
	defer memoryBuffers.mutex.RUnlock()
	buffer, exists := memoryBuffers.buffers[filepath.Clean(path)]
	return buffer, exists
}

// Len returns the number of stored buffers.
func (memoryBuffers *MemoryBuffers) Len() int {
	memoryBuffers.mutex.RLock()
	defer memoryBuffers.mutex.RUnlock()
	return len(memoryBuffers.buffers)
}

// LoadBufferAssignments reads "path=file" assignments. The content of file becomes an
// open buffer replacing path.
//
// #nosec G304
func LoadBufferAssignments(assignments []string) (*MemoryBuffers, error) {
	memoryBuffers := NewMemoryBuffers()
	for _, assignment := range assignments {
		targetPath, sourcePath, found := strings.Cut(assignment, bufferAssignmentSeparator)
		targetPath = strings.TrimSpace(targetPath)
		sourcePath = strings.TrimSpace(sourcePath)
		if !found || targetPath == "" || sourcePath == "" {
			return nil, fmt.Errorf(errorBufferAssignmentFormat, assignment)
		}
		content, readError := os.ReadFile(sourcePath)
		if readError != nil {
			return nil, fmt.Errorf(errorBufferReadFormat, targetPath, readError)
		}
		if setError := memoryBuffers.Set(targetPath, Buffer{Content: string(content), Open: true}); setError != nil {
			return nil, setError
		}
	}
	return memoryBuffers, nil
}
