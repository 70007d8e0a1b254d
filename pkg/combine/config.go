// File: pkg/combine/config.go
package combine

const (
	// FragmentExtension is the suffix a file name must carry to be combined.
	FragmentExtension = ".mdc"

	DefaultInputDir   = ".cursor/rules"
	DefaultOutputFile = "documents/rules.md"
)

// Arguments holds the configuration options for a combine run.
type Arguments struct {
	InputDir   string // Directory scanned for fragment files.
	OutputFile string // Destination path for the combined document.
	Verbose    bool   // If true, prints the resolved paths and discovered files before processing.
}

// DefaultArguments returns the arguments used when no flags are given.
func DefaultArguments() Arguments {
	return Arguments{
		InputDir:   DefaultInputDir,
		OutputFile: DefaultOutputFile,
	}
}
