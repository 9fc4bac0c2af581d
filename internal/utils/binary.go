package utils

import (
	"io"
	"os"
	"unicode/utf8"
)

// BinarySniffLength defines the maximum number of bytes read when detecting binary content.
const BinarySniffLength = 8000

// IsBinary reports whether the provided byte slice appears to contain binary data.
// A NUL byte or an invalid UTF-8 sequence marks the data as binary.
func IsBinary(data []byte) bool {
	if len(data) == 0 {
		return false
	}
	for _, byteValue := range data {
		if byteValue == 0 {
			return true
		}
	}
	if !utf8.Valid(data) {
		// A multi-byte rune may be cut at the sniff boundary.
		if len(data) == BinarySniffLength && utf8.Valid(trimIncompleteRune(data)) {
			return false
		}
		return true
	}
	return false
}

// IsFileBinary reads up to BinarySniffLength bytes from the file at path and determines
// if the content appears to be binary.
func IsFileBinary(path string) (bool, error) {
	fileHandle, openError := os.Open(path)
	if openError != nil {
		return false, openError
	}
	defer fileHandle.Close()

	buffer := make([]byte, BinarySniffLength)
	bytesRead, readError := io.ReadFull(fileHandle, buffer)
	if readError != nil && readError != io.EOF && readError != io.ErrUnexpectedEOF {
		return false, readError
	}
	return IsBinary(buffer[:bytesRead]), nil
}

func trimIncompleteRune(data []byte) []byte {
	for trimmed := 1; trimmed < utf8.UTFMax && trimmed < len(data); trimmed++ {
		candidate := data[:len(data)-trimmed]
		if utf8.Valid(candidate) {
			return candidate
		}
	}
	return data
}
