package cli

import (
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/temirov/copyctx/internal/output"
	"github.com/temirov/copyctx/internal/ports"
	"github.com/temirov/copyctx/internal/types"
)

const (
	logFieldFileCount  = "files"
	logFieldTextLength = "bytes"
	copyCompletedLog   = "copy completed"
	notificationFormat = "%s\n"
)

// copyReporter delivers a finished copy to its sink and tells the user about it.
type copyReporter struct {
	sink           ports.ClipboardSink
	format         string
	notifications  io.Writer
	notify         bool
	logger         *zap.Logger
	fileCountLimit int
}

func (reporter copyReporter) reportContent(result types.CopyResult) error {
	text := result.ClipboardText
	if reporter.format == formatJSON {
		rendered, renderError := output.RenderCopyResultJSON(result)
		if renderError != nil {
			return renderError
		}
		text = rendered
	}
	if writeError := reporter.sink.Write(text); writeError != nil {
		return writeError
	}
	reporter.logger.Debug(copyCompletedLog,
		zap.Int(logFieldFileCount, result.CopiedFileCount),
		zap.Int(logFieldTextLength, len(result.ClipboardText)))

	if result.FileLimitReached {
		reporter.warnLimit()
	}
	if result.CopiedFileCount == 0 {
		reporter.logger.Warn(emptyCopyWarning)
	}
	reporter.printNotification(output.FormatCopySummaryLine(result))
	reporter.printNotification(output.FormatClipboardSize(result.ClipboardText))
	return nil
}

func (reporter copyReporter) reportStructure(result types.StructureResult) error {
	text := result.ClipboardText
	if reporter.format == formatJSON {
		rendered, renderError := output.RenderStructureResultJSON(result)
		if renderError != nil {
			return renderError
		}
		text = rendered
	}
	if writeError := reporter.sink.Write(text); writeError != nil {
		return writeError
	}
	if result.FileLimitReached {
		reporter.warnLimit()
	}
	reporter.printNotification(output.FormatStructureSummaryLine())
	return nil
}

// warnLimit reports truncation regardless of the notification setting.
func (reporter copyReporter) warnLimit() {
	_, _ = fmt.Fprintf(reporter.notifications, notificationFormat, output.FormatFileLimitWarning(reporter.fileCountLimit))
}

func (reporter copyReporter) printNotification(message string) {
	if !reporter.notify {
		return
	}
	_, _ = fmt.Fprintf(reporter.notifications, notificationFormat, message)
}
