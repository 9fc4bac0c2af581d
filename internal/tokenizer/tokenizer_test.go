package tokenizer

import (
	"os"
	"testing"
)

// networkTestsVariable enables tests that download tiktoken encodings.
const networkTestsVariable = "COPYCTX_NETWORK_TESTS"

func requireEncodingDownload(t *testing.T) {
	t.Helper()
	if testing.Short() || os.Getenv(networkTestsVariable) == "" {
		t.Skipf("tiktoken encodings are downloaded on first use; set %s=1 to run", networkTestsVariable)
	}
}

type testCounter struct{}

func (testCounter) Name() string { return "stub" }

func (testCounter) CountString(input string) (int, error) { return len([]rune(input)), nil }

func TestEstimateTokens(t *testing.T) {
	testCases := []struct {
		name     string
		content  string
		expected int
	}{
		{name: "empty", content: "", expected: 0},
		{name: "whitespace_only", content: " \n\t ", expected: 0},
		{name: "single_word_with_punctuation", content: "a(b){c};", expected: 6},
		{name: "words_only", content: "hello brave world", expected: 3},
		{name: "all_punctuation_classes", content: "; { } ( ) [ ] ,", expected: 16},
		{name: "code_line", content: "fmt.Println(a, b)", expected: 5},
	}
	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			if actual := EstimateTokens(testCase.content); actual != testCase.expected {
				t.Fatalf("EstimateTokens(%q) = %d, want %d", testCase.content, actual, testCase.expected)
			}
		})
	}
}

func TestCountWords(t *testing.T) {
	if words := CountWords("  one\ttwo\n\nthree  "); words != 3 {
		t.Fatalf("expected 3 words, got %d", words)
	}
	if words := CountWords(""); words != 0 {
		t.Fatalf("expected 0 words, got %d", words)
	}
}

func TestCountContentText(t *testing.T) {
	result, err := CountContent(testCounter{}, "hello")
	if err != nil {
		t.Fatalf("CountContent error: %v", err)
	}
	if !result.Counted {
		t.Fatalf("expected counted result")
	}
	if result.Tokens != len([]rune("hello")) {
		t.Fatalf("expected %d tokens, got %d", len([]rune("hello")), result.Tokens)
	}
}

func TestCountContentBinary(t *testing.T) {
	result, err := CountContent(testCounter{}, string([]byte{0x00, 0x01, 0x02}))
	if err != nil {
		t.Fatalf("CountContent error: %v", err)
	}
	if result.Counted {
		t.Fatalf("expected binary data to be skipped")
	}
}

func TestCountContentNilCounter(t *testing.T) {
	if _, err := CountContent(nil, "hello"); err == nil {
		t.Fatalf("expected error for nil counter")
	}
}

func TestNewCounterDefault(t *testing.T) {
	requireEncodingDownload(t)
	counter, model, err := NewCounter(Config{Model: "gpt-4o"})
	if err != nil {
		t.Fatalf("NewCounter error: %v", err)
	}
	if counter == nil {
		t.Fatalf("expected non-nil counter")
	}
	if model != "gpt-4o" {
		t.Fatalf("expected model gpt-4o, got %q", model)
	}
	tokens, err := counter.CountString("hello world")
	if err != nil {
		t.Fatalf("CountString error: %v", err)
	}
	if tokens <= 0 {
		t.Fatalf("expected positive token count, got %d", tokens)
	}
}
