package output

import "strings"

const clipboardPartSeparator = "\n"

// ClipboardTextAssembler joins formatted file blocks into one clipboard text.
//
// Pre-text is emitted together with the first file block, so an assembler
// that never received a file builds an empty string.
type ClipboardTextAssembler struct {
	preText         string
	postText        string
	insertBlankLine bool
	parts           []string
	fileCount       int
}

// NewClipboardTextAssembler returns an assembler with the already formatted pre- and post-text.
func NewClipboardTextAssembler(preText string, postText string, insertBlankLineBetweenFiles bool) *ClipboardTextAssembler {
	return &ClipboardTextAssembler{
		preText:         preText,
		postText:        postText,
		insertBlankLine: insertBlankLineBetweenFiles,
	}
}

// AddFile appends one file block. An empty footer is omitted.
func (assembler *ClipboardTextAssembler) AddFile(header string, content string, footer string) {
	if assembler.fileCount == 0 && assembler.preText != "" {
		assembler.parts = append(assembler.parts, assembler.preText)
	}
	assembler.parts = append(assembler.parts, header, content)
	if footer != "" {
		assembler.parts = append(assembler.parts, footer)
	}
	assembler.fileCount++
	if assembler.insertBlankLine && content != "" {
		assembler.parts = append(assembler.parts, "")
	}
}

// FileCount returns the number of file blocks added so far.
func (assembler *ClipboardTextAssembler) FileCount() int {
	return assembler.fileCount
}

// Build returns the assembled text. Build is terminal: do not add files afterwards.
func (assembler *ClipboardTextAssembler) Build() string {
	if assembler.fileCount == 0 {
		return ""
	}
	if assembler.postText != "" {
		assembler.parts = append(assembler.parts, assembler.postText)
	}
	return strings.Join(assembler.parts, clipboardPartSeparator)
}

// JoinStructureText places the directory structure between the formatted pre- and post-text.
// Blank pre- or post-text is dropped; a pre-text already ending in a newline is not separated again.
func JoinStructureText(preText string, directoryStructure string, postText string) string {
	var builder strings.Builder
	if strings.TrimSpace(preText) != "" {
		builder.WriteString(preText)
		if !strings.HasSuffix(preText, clipboardPartSeparator) {
			builder.WriteString(clipboardPartSeparator)
		}
	}
	builder.WriteString(directoryStructure)
	if strings.TrimSpace(postText) != "" {
		if !strings.HasSuffix(directoryStructure, clipboardPartSeparator) {
			builder.WriteString(clipboardPartSeparator)
		}
		builder.WriteString(postText)
	}
	return builder.String()
}
