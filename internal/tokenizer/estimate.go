package tokenizer

import "strings"

// punctuationCharacters are counted as one token each by EstimateTokens.
const punctuationCharacters = ";{}()[],"

// CountWords returns the number of non-blank pieces of content separated by whitespace.
func CountWords(content string) int {
	return len(strings.Fields(content))
}

// EstimateTokens approximates an LLM token count as the word count plus the
// number of punctuation characters in punctuationCharacters.
func EstimateTokens(content string) int {
	punctuationCount := 0
	for _, character := range content {
		if strings.ContainsRune(punctuationCharacters, character) {
			punctuationCount++
		}
	}
	return CountWords(content) + punctuationCount
}
