package tokenizer

import "testing"

func TestStatsAdd(t *testing.T) {
	testCases := []struct {
		name     string
		contents []string
		expected Stats
	}{
		{
			name:     "empty_content_adds_nothing",
			contents: []string{""},
			expected: Stats{},
		},
		{
			name:     "single_line_without_newline",
			contents: []string{"aaa"},
			expected: Stats{TotalChars: 3, TotalLines: 1, TotalWords: 1, TotalTokens: 1},
		},
		{
			name:     "trailing_newline_counts_extra_line",
			contents: []string{"a b\n"},
			expected: Stats{TotalChars: 4, TotalLines: 2, TotalWords: 2, TotalTokens: 2},
		},
		{
			name:     "accumulates_across_files",
			contents: []string{"func f() {}", "x;\ny;"},
			expected: Stats{TotalChars: 16, TotalLines: 3, TotalWords: 5, TotalTokens: 11},
		},
		{
			name:     "counts_characters_not_bytes",
			contents: []string{"héllo"},
			expected: Stats{TotalChars: 5, TotalLines: 1, TotalWords: 1, TotalTokens: 1},
		},
	}
	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			stats := Stats{}
			for _, content := range testCase.contents {
				stats = stats.Add(content)
			}
			if stats != testCase.expected {
				t.Fatalf("unexpected stats: got %+v, want %+v", stats, testCase.expected)
			}
		})
	}
}

func TestStatsAddDoesNotMutateReceiver(t *testing.T) {
	original := Stats{TotalChars: 1}
	updated := original.Add("abc")
	if original.TotalChars != 1 {
		t.Fatalf("receiver mutated: %+v", original)
	}
	if updated.TotalChars != 4 {
		t.Fatalf("expected 4 chars, got %d", updated.TotalChars)
	}
}
