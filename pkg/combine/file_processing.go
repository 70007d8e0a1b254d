// File: pkg/combine/file_processing.go
package combine

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"
)

const (
	blockSeparator = "\n\n---\n\n"
)

var errInvalidUTF8 = errors.New("content is not valid UTF-8")

// ReadContent returns the full content of the file at path. The content
// must be valid UTF-8.
func ReadContent(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("%w %s: %w", ErrRead, path, err)
	}
	if !utf8.Valid(data) {
		return "", fmt.Errorf("%w %s: %w", ErrRead, path, errInvalidUTF8)
	}
	return string(data), nil
}

// FormatBlock renders one section of the combined document: a blank line,
// the "# stem" heading, a blank line, the raw content and the separator.
func FormatBlock(stem, content string) string {
	var b strings.Builder
	b.Grow(len(stem) + len(content) + len(blockSeparator) + 5)
	b.WriteString("\n# ")
	b.WriteString(stem)
	b.WriteString("\n\n")
	b.WriteString(content)
	b.WriteString(blockSeparator)
	return b.String()
}
