// File: pkg/combine/combine.go
package combine

import (
	"strings"

	"go.uber.org/zap"
)

// Combine reads every fragment in order and concatenates their blocks.
// A fragment that cannot be read is reported as a warning and left out;
// the remaining fragments are still combined.
func Combine(fragments []Fragment, logger *zap.Logger) Document {
	if logger == nil {
		logger = zap.NewNop()
	}

	var (
		doc Document
		b   strings.Builder
	)
	for _, fragment := range fragments {
		content, err := ReadContent(fragment.Path)
		if err != nil {
			logger.Warn(err.Error())
			doc.Skipped = append(doc.Skipped, fragment)
			continue
		}
		b.WriteString(FormatBlock(fragment.Stem, content))
		doc.Included = append(doc.Included, fragment)
	}
	doc.Content = b.String()
	return doc
}
