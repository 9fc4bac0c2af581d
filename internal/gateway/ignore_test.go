package gateway_test

import (
	"path/filepath"
	"testing"

	"github.com/go-git/go-git/v5"

	"github.com/temirov/copyctx/internal/gateway"
)

type ignoreExpectation struct {
	relativePath string
	isDirectory  bool
	ignored      bool
}

func assertIgnored(testingHandle *testing.T, evaluator *gateway.IgnoreEvaluator, rootDirectory string, expectations []ignoreExpectation) {
	testingHandle.Helper()
	for _, expectation := range expectations {
		absolutePath := filepath.Join(rootDirectory, filepath.FromSlash(expectation.relativePath))
		if ignored := evaluator.IsIgnored(absolutePath, expectation.isDirectory); ignored != expectation.ignored {
			testingHandle.Errorf("%s: expected ignored=%v, got %v", expectation.relativePath, expectation.ignored, ignored)
		}
	}
}

func TestIgnoreEvaluatorInsideGitRepository(testingHandle *testing.T) {
	rootDirectory := testingHandle.TempDir()
	if _, initError := git.PlainInit(rootDirectory, false); initError != nil {
		testingHandle.Fatalf("PlainInit error: %v", initError)
	}
	writeTestFile(testingHandle, filepath.Join(rootDirectory, ".gitignore"), "build/\n*.log\n")
	writeTestFile(testingHandle, filepath.Join(rootDirectory, "sub", ".gitignore"), "local.txt\n")
	writeTestFile(testingHandle, filepath.Join(rootDirectory, ".ignore"), "notes.md\n")

	evaluator, evaluatorError := gateway.NewIgnoreEvaluator(rootDirectory, gateway.IgnoreOptions{ExclusionPatterns: []string{"vendor/"}})
	if evaluatorError != nil {
		testingHandle.Fatalf("NewIgnoreEvaluator error: %v", evaluatorError)
	}

	assertIgnored(testingHandle, evaluator, rootDirectory, []ignoreExpectation{
		{relativePath: "build", isDirectory: true, ignored: true},
		{relativePath: "app.log", ignored: true},
		{relativePath: "sub/local.txt", ignored: true},
		{relativePath: "local.txt", ignored: false},
		{relativePath: "notes.md", ignored: true},
		{relativePath: "vendor", isDirectory: true, ignored: true},
		{relativePath: ".git", isDirectory: true, ignored: true},
		{relativePath: "src/main.go", ignored: false},
	})
}

func TestIgnoreEvaluatorWithoutGitRepository(testingHandle *testing.T) {
	rootDirectory := testingHandle.TempDir()
	writeTestFile(testingHandle, filepath.Join(rootDirectory, ".gitignore"), "build/\n*.log\n!keep.log\n")

	evaluator, evaluatorError := gateway.NewIgnoreEvaluator(rootDirectory, gateway.IgnoreOptions{})
	if evaluatorError != nil {
		testingHandle.Fatalf("NewIgnoreEvaluator error: %v", evaluatorError)
	}

	assertIgnored(testingHandle, evaluator, rootDirectory, []ignoreExpectation{
		{relativePath: "build", isDirectory: true, ignored: true},
		{relativePath: "app.log", ignored: true},
		{relativePath: "keep.log", ignored: false},
		{relativePath: "main.go", ignored: false},
	})
}

func TestIgnoreEvaluatorGitIgnoreDisabled(testingHandle *testing.T) {
	rootDirectory := testingHandle.TempDir()
	writeTestFile(testingHandle, filepath.Join(rootDirectory, ".gitignore"), "*.log\n")
	writeTestFile(testingHandle, filepath.Join(rootDirectory, ".ignore"), "tmp/\n")

	evaluator, evaluatorError := gateway.NewIgnoreEvaluator(rootDirectory, gateway.IgnoreOptions{DisableGitIgnore: true})
	if evaluatorError != nil {
		testingHandle.Fatalf("NewIgnoreEvaluator error: %v", evaluatorError)
	}

	assertIgnored(testingHandle, evaluator, rootDirectory, []ignoreExpectation{
		{relativePath: "app.log", ignored: false},
		{relativePath: "tmp", isDirectory: true, ignored: true},
	})
}
