// Package logging builds the console logger used for all user-facing
// diagnostics.
package logging

import (
	"io"
	"os"

	"github.com/fatih/color"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/term"
)

const (
	warnPrefix  = "Warning:"
	errorPrefix = "Error:"
)

// New returns a logger that writes plain, human-readable lines. Debug and
// info messages go to stdout, debug only when verbose is set. Warnings and
// errors go to stderr prefixed with "Warning:" and "Error:".
func New(stdout, stderr io.Writer, verbose bool) *zap.Logger {
	minLevel := zapcore.InfoLevel
	if verbose {
		minLevel = zapcore.DebugLevel
	}

	outCore := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig(false)),
		writeSyncer(stdout),
		zap.LevelEnablerFunc(func(l zapcore.Level) bool {
			return l >= minLevel && l < zapcore.WarnLevel
		}),
	)
	errCore := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig(isTerminalWriter(stderr) && !color.NoColor)),
		writeSyncer(stderr),
		zap.LevelEnablerFunc(func(l zapcore.Level) bool {
			return l >= zapcore.WarnLevel
		}),
	)

	return zap.New(zapcore.NewTee(outCore, errCore))
}

func encoderConfig(colorize bool) zapcore.EncoderConfig {
	return zapcore.EncoderConfig{
		MessageKey:       "message",
		LevelKey:         "level",
		EncodeLevel:      levelEncoder(colorize),
		ConsoleSeparator: " ",
		LineEnding:       zapcore.DefaultLineEnding,
	}
}

// levelEncoder renders the level as the line prefix. Debug and info lines
// carry no prefix at all.
func levelEncoder(colorize bool) zapcore.LevelEncoder {
	warn, fail := warnPrefix, errorPrefix
	if colorize {
		yellow := color.New(color.FgYellow)
		yellow.EnableColor()
		red := color.New(color.FgRed)
		red.EnableColor()
		warn, fail = yellow.Sprint(warnPrefix), red.Sprint(errorPrefix)
	}
	return func(l zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
		switch {
		case l >= zapcore.ErrorLevel:
			enc.AppendString(fail)
		case l == zapcore.WarnLevel:
			enc.AppendString(warn)
		}
	}
}

// writeSyncer wraps w for zap. Only regular files keep their Sync; fsync on
// a terminal or pipe fails with EINVAL.
func writeSyncer(w io.Writer) zapcore.WriteSyncer {
	if f, ok := w.(*os.File); ok && !isRegularFile(f) {
		return zapcore.AddSync(struct{ io.Writer }{f})
	}
	return zapcore.AddSync(w)
}

func isTerminalWriter(w io.Writer) bool {
	if f, ok := w.(*os.File); ok {
		return term.IsTerminal(int(f.Fd()))
	}
	return false
}

// isRegularFile checks if the given file is a regular file.
func isRegularFile(f *os.File) bool {
	fileInfo, err := f.Stat()
	if err != nil {
		return false
	}
	return fileInfo.Mode().IsRegular()
}
