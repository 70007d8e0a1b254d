// File: pkg/combine/execute.go
package combine

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// Run discovers the fragments in args.InputDir, combines them and writes
// the result to args.OutputFile. Finding no fragments is not an error:
// a notice is logged and nothing is written.
func Run(args Arguments, logger *zap.Logger) (Result, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	log := logger.Sugar()

	var result Result

	log.Debugf("Input directory: %s", args.InputDir)
	log.Debugf("Output file: %s", args.OutputFile)

	fragments, err := Discover(args.InputDir)
	if err != nil {
		return result, err
	}
	result.Discovered = len(fragments)

	if len(fragments) == 0 {
		log.Infof("No %s files found in %s", FragmentExtension, args.InputDir)
		return result, nil
	}

	log.Debugf("Found %d %s files:", len(fragments), FragmentExtension)
	for _, fragment := range fragments {
		log.Debugf("  - %s", fragment.Name)
	}

	doc := Combine(fragments, logger)
	result.Combined = len(doc.Included)
	result.Skipped = len(doc.Skipped)

	if err := WriteOutput(args.OutputFile, doc.Content, logger); err != nil {
		return result, err
	}
	result.OutputFile = args.OutputFile

	log.Infof("Successfully combined %d files into %s", result.Discovered, args.OutputFile)
	return result, nil
}

// WriteOutput writes content to path, creating missing parent directories
// and replacing any existing file.
func WriteOutput(path, content string, logger *zap.Logger) error {
	if logger == nil {
		logger = zap.NewNop()
	}
	if err := ensureDirectory(filepath.Dir(path), logger); err != nil {
		return fmt.Errorf("%w %s: %w", ErrWrite, path, err)
	}
	if err := writeToFile(path, []byte(content), 0o644, logger); err != nil {
		return fmt.Errorf("%w %s: %w", ErrWrite, path, err)
	}
	return nil
}

// ensureDirectory ensures a directory exists, creating it if necessary.
func ensureDirectory(path string, logger *zap.Logger) error {
	if err := os.MkdirAll(path, os.ModePerm); err != nil {
		return err
	}
	logger.Debug("Ensured directory exists: " + path)
	return nil
}

// writeToFile truncates or creates the file at path and writes data to it.
func writeToFile(path string, data []byte, perm os.FileMode, logger *zap.Logger) error {
	if err := os.WriteFile(path, data, perm); err != nil {
		return err
	}
	logger.Debug(fmt.Sprintf("Wrote %d bytes to %s", len(data), path))
	return nil
}
