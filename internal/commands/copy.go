package commands

import (
	"fmt"

	"github.com/temirov/copyctx/internal/output"
	"github.com/temirov/copyctx/internal/ports"
	"github.com/temirov/copyctx/internal/tokenizer"
	"github.com/temirov/copyctx/internal/types"
)

const warningTokenCountFormat = "Failed to count model tokens for %s"

// CopyOrchestrator composes collection, templating, and text assembly into
// the two copy actions. It never writes to the clipboard itself.
type CopyOrchestrator struct {
	Gateway ports.ContentGateway
	Logger  ports.Logger
	// TokenCounter, when set, counts model tokens over copied content in
	// addition to the heuristic estimate.
	TokenCounter tokenizer.Counter
	TokenModel   string
}

// NewCopyOrchestrator returns an orchestrator reading through gateway.
func NewCopyOrchestrator(gateway ports.ContentGateway, logger ports.Logger) *CopyOrchestrator {
	if logger == nil {
		logger = ports.NopLogger{}
	}
	return &CopyOrchestrator{Gateway: gateway, Logger: logger}
}

// CopyFileContents collects the files below roots and joins their contents into one text.
func (orchestrator *CopyOrchestrator) CopyFileContents(roots []types.FileReference, options types.CopyOptions) types.CopyResult {
	logger := orchestrator.logger()
	collection := NewFileCollector(orchestrator.Gateway, logger).Collect(roots, options.CollectionOptions)
	directoryStructure := output.BuildDirectoryStructure(options.ProjectName, collection.RelativePaths())

	assembler := output.NewClipboardTextAssembler(
		output.FormatPlaceholders(options.PreTextTemplate, options.ProjectName, nil, &directoryStructure),
		output.FormatPlaceholders(options.PostTextTemplate, options.ProjectName, nil, &directoryStructure),
		options.InsertBlankLineBetweenFiles,
	)

	result := types.CopyResult{FileLimitReached: collection.LimitReached}
	for _, plannedFile := range collection.Files {
		relativePath := plannedFile.RelativePath
		header := output.FormatPlaceholders(options.HeaderTemplate, options.ProjectName, &relativePath, &directoryStructure)
		footer := output.FormatPlaceholders(options.FooterTemplate, options.ProjectName, &relativePath, &directoryStructure)
		content := orchestrator.Gateway.ReadText(plannedFile.Reference, options.PreferOpenBufferContent)

		assembler.AddFile(header, content, footer)
		result.Stats = result.Stats.Add(content)
		result.ModelTokens += orchestrator.countModelTokens(relativePath, content)
	}

	result.ClipboardText = assembler.Build()
	result.CopiedFileCount = assembler.FileCount()
	if orchestrator.TokenCounter != nil {
		result.Model = orchestrator.TokenModel
	}
	return result
}

// CopyDirectoryStructure collects the files below roots and renders only their directory tree.
func (orchestrator *CopyOrchestrator) CopyDirectoryStructure(roots []types.FileReference, options types.StructureOptions) types.StructureResult {
	collection := NewFileCollector(orchestrator.Gateway, orchestrator.logger()).Collect(roots, options.CollectionOptions)
	directoryStructure := output.BuildDirectoryStructure(options.ProjectName, collection.RelativePaths())
	preText := output.FormatPlaceholders(options.PreTextTemplate, options.ProjectName, nil, &directoryStructure)
	postText := output.FormatPlaceholders(options.PostTextTemplate, options.ProjectName, nil, &directoryStructure)
	return types.StructureResult{
		ClipboardText:    output.JoinStructureText(preText, directoryStructure, postText),
		FileLimitReached: collection.LimitReached,
	}
}

func (orchestrator *CopyOrchestrator) countModelTokens(relativePath string, content string) int {
	if orchestrator.TokenCounter == nil {
		return 0
	}
	countResult, countError := tokenizer.CountContent(orchestrator.TokenCounter, content)
	if countError != nil {
		orchestrator.logger().Error(fmt.Sprintf(warningTokenCountFormat, relativePath), countError)
		return 0
	}
	return countResult.Tokens
}

func (orchestrator *CopyOrchestrator) logger() ports.Logger {
	if orchestrator.Logger == nil {
		return ports.NopLogger{}
	}
	return orchestrator.Logger
}
