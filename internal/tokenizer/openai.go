package tokenizer

import (
	"errors"

	"github.com/pkoukk/tiktoken-go"
)

var errEncodingMissing = errors.New("tiktoken encoding is not initialized")

// tiktokenCounter counts tokens with a BPE encoding. name is the resolved model
// or, for unknown models, the encoding that stands in for it.
type tiktokenCounter struct {
	encoding *tiktoken.Tiktoken
	name     string
}

// Name returns the model or encoding the counter resolved to.
func (counter tiktokenCounter) Name() string {
	return counter.name
}

// CountString encodes input without special-token handling and returns the token count.
func (counter tiktokenCounter) CountString(input string) (int, error) {
	if counter.encoding == nil {
		return 0, errEncodingMissing
	}
	return len(counter.encoding.EncodeOrdinary(input)), nil
}
