package types

// Processor is the extensibility unit of the packaging pipeline. A
// processor may rewrite individual files as they stream through,
// accumulates zero or more Asset declarations, and contributes zero or
// more descriptor properties once the whole file stream has been seen.
//
// Accumulated assets and properties may only be read after OnEnd has
// completed; implementations enforce this with phase-tagged state.
type Processor interface {
	// Name returns the unique name of this processor
	Name() string

	// OnFile inspects file and returns either a replacement File with
	// the same logical path (e.g. rewritten content) or the input
	// unchanged. It must be a pure function of the file's content and
	// the manifest captured at construction.
	OnFile(file File) (File, error)

	// OnEnd is invoked exactly once after all files have passed
	// through every processor's OnFile.
	OnEnd() error

	// Assets returns the accumulated asset declarations. Only valid
	// after OnEnd has completed.
	Assets() []Asset

	// Properties returns the accumulated descriptor properties. Only
	// valid after OnEnd has completed.
	Properties() []Property
}
