package tokenizer

import (
	"strings"
	"unicode/utf8"
)

// Stats holds running totals over copied file content.
type Stats struct {
	TotalChars  int
	TotalLines  int
	TotalWords  int
	TotalTokens int
}

// Add returns the totals extended by content. The receiver is not modified.
func (stats Stats) Add(content string) Stats {
	lines := 0
	if content != "" {
		lines = strings.Count(content, "\n") + 1
	}
	return Stats{
		TotalChars:  stats.TotalChars + utf8.RuneCountInString(content),
		TotalLines:  stats.TotalLines + lines,
		TotalWords:  stats.TotalWords + CountWords(content),
		TotalTokens: stats.TotalTokens + EstimateTokens(content),
	}
}
