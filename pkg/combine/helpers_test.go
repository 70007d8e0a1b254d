package combine

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"mdcjoin/pkg/logging"
)

// writeFiles creates each name under dir with the given content.
func writeFiles(t *testing.T, dir string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}
}

// newTestLogger returns a console logger writing into buffers.
func newTestLogger(verbose bool) (*zap.Logger, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer
	return logging.New(&stdout, &stderr, verbose), &stdout, &stderr
}
