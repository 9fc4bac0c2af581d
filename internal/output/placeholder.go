package output

import (
	"strings"

	"github.com/temirov/copyctx/internal/types"
)

// FormatPlaceholders substitutes the template tokens of types.Placeholder*.
//
// The project name is always substituted. The file path token is kept
// verbatim when relativePath is nil so templates can be rendered before a
// file is known. The directory structure token is removed when
// directoryStructure is nil.
func FormatPlaceholders(template string, projectName string, relativePath *string, directoryStructure *string) string {
	formatted := strings.ReplaceAll(template, types.PlaceholderProjectName, projectName)
	if relativePath != nil {
		formatted = strings.ReplaceAll(formatted, types.PlaceholderFilePath, *relativePath)
	}
	structureText := ""
	if directoryStructure != nil {
		structureText = *directoryStructure
	}
	return strings.ReplaceAll(formatted, types.PlaceholderDirectoryStructure, structureText)
}
