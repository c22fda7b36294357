package errors

import "slices"

// Entry is the registered description of an error code.
type Entry struct {
	Category Category
	Message  string
	Detail   string
}

// registry maps error codes to their entries. Codes are grouped by
// collaborator in blocks of twenty.
var registry = map[string]Entry{
	// Converter, H001-H019.
	"H001": {
		Category: CategoryConvert,
		Message:  "HTML parse failed",
		Detail:   "The input could not be parsed as HTML. The parser is lenient, so this usually means the input could not be read at all.",
	},
	"H002": {
		Category: CategoryConvert,
		Message:  "Generated source rejected by gofmt",
		Detail:   "The converter produced Go source that go/format could not parse. Nothing was written.",
	},
	"H003": {
		Category: CategoryConvert,
		Message:  "Invalid Go identifier",
		Detail:   "The package and function names for generated code must be valid Go identifiers.",
	},
	"H004": {
		Category: CategoryConvert,
		Message:  "Empty input",
		Detail:   "The input contained no elements or text after whitespace-only text was dropped.",
	},

	// Snapshot, H020-H039.
	"H020": {
		Category: CategoryCodec,
		Message:  "Snapshot decode failed",
		Detail:   "The snapshot is truncated, corrupt, or was not produced by htmf.",
	},
	"H021": {
		Category: CategoryCodec,
		Message:  "Unsupported snapshot version",
		Detail:   "The snapshot was written by a newer or older htmf release with an incompatible layout.",
	},
	"H022": {
		Category: CategoryCodec,
		Message:  "Snapshot encode failed",
		Detail:   "The node tree could not be written as a snapshot.",
	},

	// Configuration, H040-H059.
	"H040": {
		Category: CategoryConfig,
		Message:  "Invalid htmf.yaml",
		Detail:   "The htmf.yaml configuration file is malformed.",
	},
	"H041": {
		Category: CategoryConfig,
		Message:  "Configuration file not found",
		Detail:   "The configuration file passed with --config does not exist.",
	},
	"H042": {
		Category: CategoryConfig,
		Message:  "Invalid configuration value",
		Detail:   "A configuration value is out of range or has the wrong shape.",
	},

	// Preview server, H060-H079.
	"H060": {
		Category: CategoryPreview,
		Message:  "Preview server failed",
		Detail:   "The preview server could not listen on the configured address or stopped unexpectedly.",
	},
	"H061": {
		Category: CategoryPreview,
		Message:  "Preview directory not found",
		Detail:   "The directory to serve does not exist or is not a directory.",
	},

	// CLI, H080-H099.
	"H080": {
		Category: CategoryCLI,
		Message:  "Input file not found",
		Detail:   "The input file does not exist or cannot be read.",
	},
	"H081": {
		Category: CategoryCLI,
		Message:  "Write failed",
		Detail:   "The output could not be written.",
	},
	"H082": {
		Category: CategoryCLI,
		Message:  "Unsupported input type",
		Detail:   "Only .html, .htm, and .msgpack inputs are understood.",
	},
}

// Codes returns every registered code in ascending order.
func Codes() []string {
	codes := make([]string, 0, len(registry))
	for code := range registry {
		codes = append(codes, code)
	}
	slices.Sort(codes)
	return codes
}

// Lookup returns the entry registered for code.
func Lookup(code string) (Entry, bool) {
	e, ok := registry[code]
	return e, ok
}

// Register adds or replaces the entry for code. It is meant for
// initialization and is not safe for concurrent use with New.
func Register(code string, e Entry) {
	registry[code] = e
}
