package combine

// Fragment is a single file discovered in the input directory.
type Fragment struct {
	Path string // Input directory joined with Name.
	Name string // Base file name, extension included.
	Stem string // Name without its extension; used as the section heading.
}

// Document is the combined output of one run.
type Document struct {
	Content  string     // The concatenated blocks.
	Included []Fragment // Fragments whose block is part of Content, in order.
	Skipped  []Fragment // Fragments that could not be read.
}

// Result summarizes a finished run.
type Result struct {
	Discovered int    // Number of fragment files found.
	Combined   int    // Number of fragments written to the output.
	Skipped    int    // Number of fragments skipped because of read errors.
	OutputFile string // Path that was written; empty when nothing was found.
}
