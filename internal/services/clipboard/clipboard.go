// Package clipboard provides the sinks receiving assembled copy text.
package clipboard

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/atotto/clipboard"

	"github.com/temirov/copyctx/internal/ports"
)

const errorClipboardWriteFormat = "write to clipboard: %w"

// ErrClipboardUnsupported reports that no clipboard utility is available on this system.
var ErrClipboardUnsupported = errors.New("system clipboard is not available")

// Service writes text to the system clipboard using github.com/atotto/clipboard.
type Service struct{}

// NewService constructs a clipboard service.
func NewService() *Service {
	return &Service{}
}

// Write replaces the clipboard content with text.
func (service *Service) Write(text string) error {
	if clipboard.Unsupported {
		return ErrClipboardUnsupported
	}
	if writeError := clipboard.WriteAll(text); writeError != nil {
		return fmt.Errorf(errorClipboardWriteFormat, writeError)
	}
	return nil
}

// WriterSink writes text to an io.Writer, terminated by a newline.
type WriterSink struct {
	writer io.Writer
}

// NewWriterSink returns a sink writing to writer.
func NewWriterSink(writer io.Writer) *WriterSink {
	return &WriterSink{writer: writer}
}

// Write prints text followed by a newline unless it already ends with one.
func (sink *WriterSink) Write(text string) error {
	if _, writeError := io.WriteString(sink.writer, text); writeError != nil {
		return writeError
	}
	if text != "" && !strings.HasSuffix(text, "\n") {
		_, writeError := io.WriteString(sink.writer, "\n")
		return writeError
	}
	return nil
}

var (
	_ ports.ClipboardSink = (*Service)(nil)
	_ ports.ClipboardSink = (*WriterSink)(nil)
)
