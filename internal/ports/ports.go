// Package ports declares the host capabilities the copy engine depends on.
package ports

import "github.com/temirov/copyctx/internal/types"

// ContentGateway exposes the host file system to the copy engine.
// Implementations absorb their own I/O failures and return safe defaults.
type ContentGateway interface {
	// ChildrenOf lists the entries of a directory in host order.
	ChildrenOf(directory types.FileReference) []types.FileReference
	// ReadText returns the text of a file, preferring in-memory buffers as requested.
	ReadText(file types.FileReference, preferOpenBuffer bool) string
	// IsBinary reports whether the file holds binary content.
	IsBinary(file types.FileReference) bool
	// SizeBytes returns the size of the file in bytes.
	SizeBytes(file types.FileReference) int64
	// RelativePath returns the forward-slash path of the file relative to the project root.
	RelativePath(file types.FileReference) string
}

// IgnoreChecker is an optional ContentGateway capability evaluating VCS ignore rules.
type IgnoreChecker interface {
	IsIgnored(entry types.FileReference) bool
}

// Logger receives informational messages and recovered failures.
type Logger interface {
	Info(message string)
	Error(message string, detail error)
}

// ClipboardSink receives the assembled text once per copy action.
type ClipboardSink interface {
	Write(text string) error
}

// NopLogger discards every message.
type NopLogger struct{}

// Info discards message.
func (NopLogger) Info(string) {}

// Error discards message.
func (NopLogger) Error(string, error) {}
