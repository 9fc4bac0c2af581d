package tokenizer

import (
	"errors"
	"unicode/utf8"

	"github.com/temirov/copyctx/internal/utils"
)

// CountResult captures the outcome of counting a piece of content.
type CountResult struct {
	Tokens  int
	Counted bool
}

// CountContent counts model tokens for content using counter.
// Content that looks binary or is not valid UTF-8 is reported as not counted.
func CountContent(counter Counter, content string) (CountResult, error) {
	if counter == nil {
		return CountResult{}, errors.New("nil tokenizer counter")
	}
	if content == "" {
		return CountResult{Tokens: 0, Counted: true}, nil
	}
	if !utf8.ValidString(content) || utils.IsBinary([]byte(content)) {
		return CountResult{Counted: false}, nil
	}
	tokens, err := counter.CountString(content)
	if err != nil {
		return CountResult{}, err
	}
	return CountResult{Tokens: tokens, Counted: true}, nil
}
