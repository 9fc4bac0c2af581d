package commands_test

import (
	"strings"
	"testing"

	"github.com/temirov/copyctx/internal/commands"
	"github.com/temirov/copyctx/internal/output"
	"github.com/temirov/copyctx/internal/tokenizer"
	"github.com/temirov/copyctx/internal/types"
)

const testProjectName = "demo"

func newKotlinProject() *fakeGateway {
	gateway := newFakeGateway()
	gateway.addFile("src/A.kt", "aaa")
	gateway.addFile("src/utils/B.kt", "bbb")
	return gateway
}

func TestCopyFileContentsResolvesEveryPlaceholder(testingHandle *testing.T) {
	gateway := newKotlinProject()
	options := types.DefaultCopyOptions()
	options.ProjectName = testProjectName
	options.HeaderTemplate = "// " + types.PlaceholderFilePath + " in " + types.PlaceholderProjectName + "\n" + types.PlaceholderDirectoryStructure
	options.FooterTemplate = ""
	options.PreTextTemplate = types.PlaceholderDirectoryStructure
	options.PostTextTemplate = types.PlaceholderDirectoryStructure

	result := commands.NewCopyOrchestrator(gateway, nil).CopyFileContents([]types.FileReference{gateway.reference("src")}, options)

	tree := output.BuildDirectoryStructure(testProjectName, []string{"src/A.kt", "src/utils/B.kt"})
	if occurrences := strings.Count(result.ClipboardText, tree); occurrences != 4 {
		testingHandle.Fatalf("expected the tree 4 times, found %d in:\n%s", occurrences, result.ClipboardText)
	}
	for _, token := range []string{types.PlaceholderProjectName, types.PlaceholderFilePath, types.PlaceholderDirectoryStructure} {
		if strings.Contains(result.ClipboardText, token) {
			testingHandle.Fatalf("unresolved token %s in:\n%s", token, result.ClipboardText)
		}
	}
	if !strings.Contains(result.ClipboardText, "// src/A.kt in demo") || !strings.Contains(result.ClipboardText, "// src/utils/B.kt in demo") {
		testingHandle.Fatalf("missing per-file headers in:\n%s", result.ClipboardText)
	}
	if result.CopiedFileCount != 2 {
		testingHandle.Fatalf("expected 2 copied files, got %d", result.CopiedFileCount)
	}
	expectedStats := tokenizer.Stats{TotalChars: 6, TotalLines: 2, TotalWords: 2, TotalTokens: 2}
	if result.Stats != expectedStats {
		testingHandle.Fatalf("stats must count content only: expected %+v, got %+v", expectedStats, result.Stats)
	}
}

func TestCopyFileContentsLayout(testingHandle *testing.T) {
	gateway := newKotlinProject()
	options := types.DefaultCopyOptions()
	options.ProjectName = testProjectName

	result := commands.NewCopyOrchestrator(gateway, nil).CopyFileContents([]types.FileReference{gateway.reference("src")}, options)

	expected := strings.Join([]string{
		"=====",
		"demo",
		"=====",
		"",
		"```src/A.kt",
		"aaa",
		"```",
		"",
		"```src/utils/B.kt",
		"bbb",
		"```",
		"",
	}, "\n")
	if result.ClipboardText != expected {
		testingHandle.Fatalf("expected:\n%q\ngot:\n%q", expected, result.ClipboardText)
	}
	if strings.Join(gateway.readCalls, ",") != "src/A.kt,src/utils/B.kt" {
		testingHandle.Fatalf("contents must be read in collection order, got %v", gateway.readCalls)
	}
}

func TestCopyFileContentsWithoutFiles(testingHandle *testing.T) {
	gateway := newFakeGateway()
	gateway.addDirectory("empty")
	options := types.DefaultCopyOptions()
	options.PostTextTemplate = "END"

	result := commands.NewCopyOrchestrator(gateway, nil).CopyFileContents([]types.FileReference{gateway.reference("empty")}, options)

	if result.ClipboardText != "" || result.CopiedFileCount != 0 {
		testingHandle.Fatalf("expected empty result, got %+v", result)
	}
	if result.Stats != (tokenizer.Stats{}) {
		testingHandle.Fatalf("expected zero stats, got %+v", result.Stats)
	}
}

func TestCopyFileContentsReportsLimit(testingHandle *testing.T) {
	gateway := newKotlinProject()
	options := types.DefaultCopyOptions()
	options.FileCountLimit = 1

	result := commands.NewCopyOrchestrator(gateway, nil).CopyFileContents([]types.FileReference{gateway.reference("src")}, options)

	if result.CopiedFileCount != 1 || !result.FileLimitReached {
		testingHandle.Fatalf("expected one file and a reached limit, got %+v", result)
	}
}

func TestCopyFileContentsModelTokens(testingHandle *testing.T) {
	testCases := []struct {
		name           string
		counter        fakeCounter
		expectedTokens int
		expectedErrors int
	}{
		{name: "counted", counter: fakeCounter{}, expectedTokens: 6},
		{name: "failure_logged", counter: fakeCounter{failOn: "bbb"}, expectedTokens: 3, expectedErrors: 1},
	}
	for _, testCase := range testCases {
		testingHandle.Run(testCase.name, func(t *testing.T) {
			gateway := newKotlinProject()
			logger := &recordingLogger{}
			orchestrator := commands.NewCopyOrchestrator(gateway, logger)
			orchestrator.TokenCounter = testCase.counter
			orchestrator.TokenModel = "fake-model"

			result := orchestrator.CopyFileContents([]types.FileReference{gateway.reference("src")}, types.DefaultCopyOptions())
			if result.ModelTokens != testCase.expectedTokens || result.Model != "fake-model" {
				t.Fatalf("unexpected model tokens %d (%s)", result.ModelTokens, result.Model)
			}
			if len(logger.errors) != testCase.expectedErrors {
				t.Fatalf("expected %d logged errors, got %v", testCase.expectedErrors, logger.errors)
			}
			if result.Stats.TotalTokens != 2 {
				t.Fatalf("heuristic estimate must stay unchanged, got %d", result.Stats.TotalTokens)
			}
		})
	}
}

func TestCopyDirectoryStructure(testingHandle *testing.T) {
	gateway := newKotlinProject()
	options := types.DefaultStructureOptions()
	options.ProjectName = testProjectName
	options.PreTextTemplate = "Project " + types.PlaceholderProjectName
	options.PostTextTemplate = "--"

	result := commands.NewCopyOrchestrator(gateway, nil).CopyDirectoryStructure([]types.FileReference{gateway.reference("src")}, options)

	expected := strings.Join([]string{
		"Project demo",
		"Directory structure:",
		"└── demo/",
		"    └── src/",
		"        ├── utils/",
		"        │   └── B.kt",
		"        └── A.kt",
		"--",
	}, "\n")
	if result.ClipboardText != expected {
		testingHandle.Fatalf("expected:\n%s\ngot:\n%s", expected, result.ClipboardText)
	}
	if result.FileLimitReached {
		testingHandle.Fatalf("limit should not be reached")
	}
	if len(gateway.readCalls) != 0 {
		testingHandle.Fatalf("structure copy must not read contents, read %v", gateway.readCalls)
	}
}
