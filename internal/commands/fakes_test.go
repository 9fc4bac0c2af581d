package commands_test

import (
	"errors"
	"fmt"
	"path"
	"strings"

	"github.com/temirov/copyctx/internal/types"
)

// fakeEntry is one file or directory of fakeGateway.
type fakeEntry struct {
	content  string
	size     int64
	binary   bool
	ignored  bool
	children []string
}

// fakeGateway serves an in-memory tree keyed by forward-slash paths relative to the project root.
type fakeGateway struct {
	entries   map[string]*fakeEntry
	readCalls []string
}

func newFakeGateway() *fakeGateway {
	return &fakeGateway{entries: map[string]*fakeEntry{"": {children: []string{}}}}
}

func (gateway *fakeGateway) addFile(relativePath string, content string) *fakeEntry {
	entry := &fakeEntry{content: content, size: int64(len(content))}
	gateway.attach(relativePath, entry)
	return entry
}

func (gateway *fakeGateway) addDirectory(relativePath string) *fakeEntry {
	if existing, exists := gateway.entries[relativePath]; exists {
		return existing
	}
	entry := &fakeEntry{children: []string{}}
	gateway.attach(relativePath, entry)
	return entry
}

func (gateway *fakeGateway) attach(relativePath string, entry *fakeEntry) {
	parentPath := path.Dir(relativePath)
	if parentPath == "." {
		parentPath = ""
	}
	parent, exists := gateway.entries[parentPath]
	if !exists {
		parent = gateway.addDirectory(parentPath)
	}
	parent.children = append(parent.children, relativePath)
	gateway.entries[relativePath] = entry
}

func (gateway *fakeGateway) reference(relativePath string) types.FileReference {
	entry, exists := gateway.entries[relativePath]
	if !exists {
		panic(fmt.Sprintf("unknown fake entry %q", relativePath))
	}
	return types.FileReference{
		Name:        path.Base(relativePath),
		Path:        relativePath,
		IsDirectory: entry.children != nil,
	}
}

func (gateway *fakeGateway) ChildrenOf(directory types.FileReference) []types.FileReference {
	entry, exists := gateway.entries[directory.Path]
	if !exists {
		return nil
	}
	references := make([]types.FileReference, 0, len(entry.children))
	for _, childPath := range entry.children {
		references = append(references, gateway.reference(childPath))
	}
	return references
}

func (gateway *fakeGateway) ReadText(file types.FileReference, _ bool) string {
	gateway.readCalls = append(gateway.readCalls, file.Path)
	if entry, exists := gateway.entries[file.Path]; exists {
		return entry.content
	}
	return ""
}

func (gateway *fakeGateway) IsBinary(file types.FileReference) bool {
	entry, exists := gateway.entries[file.Path]
	return exists && entry.binary
}

func (gateway *fakeGateway) SizeBytes(file types.FileReference) int64 {
	if entry, exists := gateway.entries[file.Path]; exists {
		return entry.size
	}
	return 0
}

func (gateway *fakeGateway) RelativePath(file types.FileReference) string {
	return file.Path
}

// ignoringGateway adds the optional ignore capability to fakeGateway.
type ignoringGateway struct {
	*fakeGateway
	ignoreChecks []string
}

func (gateway *ignoringGateway) IsIgnored(entry types.FileReference) bool {
	gateway.ignoreChecks = append(gateway.ignoreChecks, entry.Path)
	fakeEntry, exists := gateway.entries[entry.Path]
	return exists && fakeEntry.ignored
}

// recordingLogger keeps every message for assertions.
type recordingLogger struct {
	infos  []string
	errors []string
}

func (logger *recordingLogger) Info(message string) {
	logger.infos = append(logger.infos, message)
}

func (logger *recordingLogger) Error(message string, detail error) {
	logger.errors = append(logger.errors, message+": "+detail.Error())
}

func (logger *recordingLogger) containsInfo(message string) bool {
	for _, info := range logger.infos {
		if info == message {
			return true
		}
	}
	return false
}

// fakeCounter counts one model token per rune and fails on a marker string.
type fakeCounter struct {
	failOn string
}

func (fakeCounter) Name() string {
	return "fake"
}

func (counter fakeCounter) CountString(input string) (int, error) {
	if counter.failOn != "" && strings.Contains(input, counter.failOn) {
		return 0, errors.New("counter failure")
	}
	return len([]rune(input)), nil
}

func collectedPaths(files []types.PlannedFile) []string {
	relativePaths := make([]string, 0, len(files))
	for _, plannedFile := range files {
		relativePaths = append(relativePaths, plannedFile.RelativePath)
	}
	return relativePaths
}

