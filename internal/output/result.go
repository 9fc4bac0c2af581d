// Package output renders the text that copyctx places on the clipboard
// together with the summaries reported after a copy.
package output

import (
	"encoding/json"
	"fmt"

	"github.com/temirov/copyctx/internal/types"
	"github.com/temirov/copyctx/internal/utils"
)

const (
	indentPrefix = ""
	indentSpacer = "  "

	copySummaryFormat       = "%s copied. Chars %d, lines %d, words %d, tokens %d."
	modelTokensFormat       = " Model tokens %d (model: %s)."
	structureSummaryMessage = "Directory structure copied."
	fileLimitWarningFormat  = "File limit of %d files was reached."
	clipboardSizeFormat     = "Clipboard text: %s."
)

type statsJSON struct {
	TotalChars  int `json:"totalChars"`
	TotalLines  int `json:"totalLines"`
	TotalWords  int `json:"totalWords"`
	TotalTokens int `json:"totalTokens"`
}

type copyResultJSON struct {
	ClipboardText    string    `json:"clipboardText"`
	CopiedFileCount  int       `json:"copiedFileCount"`
	Stats            statsJSON `json:"stats"`
	FileLimitReached bool      `json:"fileLimitReached"`
	ModelTokens      int       `json:"modelTokens,omitempty"`
	Model            string    `json:"model,omitempty"`
}

type structureResultJSON struct {
	ClipboardText    string `json:"clipboardText"`
	FileLimitReached bool   `json:"fileLimitReached"`
}

// RenderCopyResultJSON marshals a content copy result as indented JSON.
func RenderCopyResultJSON(result types.CopyResult) (string, error) {
	encoded, jsonEncodeError := json.MarshalIndent(copyResultJSON{
		ClipboardText:   result.ClipboardText,
		CopiedFileCount: result.CopiedFileCount,
		Stats: statsJSON{
			TotalChars:  result.Stats.TotalChars,
			TotalLines:  result.Stats.TotalLines,
			TotalWords:  result.Stats.TotalWords,
			TotalTokens: result.Stats.TotalTokens,
		},
		FileLimitReached: result.FileLimitReached,
		ModelTokens:      result.ModelTokens,
		Model:            result.Model,
	}, indentPrefix, indentSpacer)
	return string(encoded), jsonEncodeError
}

// RenderStructureResultJSON marshals a directory structure result as indented JSON.
func RenderStructureResultJSON(result types.StructureResult) (string, error) {
	encoded, jsonEncodeError := json.MarshalIndent(structureResultJSON{
		ClipboardText:    result.ClipboardText,
		FileLimitReached: result.FileLimitReached,
	}, indentPrefix, indentSpacer)
	return string(encoded), jsonEncodeError
}

// FormatCopySummaryLine describes a content copy result in one line.
func FormatCopySummaryLine(result types.CopyResult) string {
	label := fmt.Sprintf("%d files", result.CopiedFileCount)
	if result.CopiedFileCount == 1 {
		label = "1 file"
	}
	line := fmt.Sprintf(copySummaryFormat, label, result.Stats.TotalChars, result.Stats.TotalLines, result.Stats.TotalWords, result.Stats.TotalTokens)
	if result.Model != "" {
		line += fmt.Sprintf(modelTokensFormat, result.ModelTokens, result.Model)
	}
	return line
}

// FormatStructureSummaryLine describes a directory structure copy.
func FormatStructureSummaryLine() string {
	return structureSummaryMessage
}

// FormatFileLimitWarning reports that the file count limit truncated the collection.
func FormatFileLimitWarning(fileCountLimit int) string {
	return fmt.Sprintf(fileLimitWarningFormat, fileCountLimit)
}

// FormatClipboardSize reports the size of the assembled text.
func FormatClipboardSize(text string) string {
	return fmt.Sprintf(clipboardSizeFormat, utils.FormatFileSize(int64(len(text))))
}
