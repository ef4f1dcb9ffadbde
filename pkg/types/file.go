package types

import "strings"

// File represents a single file destined for the package: a logical
// path inside the archive plus a content source. The two concrete kinds
// are LocalFile (backed by a filesystem path) and MemoryFile (in-memory
// contents, e.g. a rewritten README).
type File interface {
	// Path returns the logical path of the file inside the package,
	// always using forward-slash separators.
	Path() string
}

// LocalFile is a File backed by a path on disk
type LocalFile struct {
	logicalPath string
	SourcePath  string
}

// NewLocalFile creates a File for an on-disk source
func NewLocalFile(logicalPath, sourcePath string) LocalFile {
	return LocalFile{
		logicalPath: NormalizePath(logicalPath),
		SourcePath:  sourcePath,
	}
}

// Path returns the logical path inside the package
func (f LocalFile) Path() string {
	return f.logicalPath
}

// MemoryFile is a File whose contents live in memory
type MemoryFile struct {
	logicalPath string
	Contents    []byte
}

// NewMemoryFile creates a File from in-memory contents
func NewMemoryFile(logicalPath string, contents []byte) MemoryFile {
	return MemoryFile{
		logicalPath: NormalizePath(logicalPath),
		Contents:    contents,
	}
}

// Path returns the logical path inside the package
func (f MemoryFile) Path() string {
	return f.logicalPath
}

// NormalizePath converts backslash separators to forward slashes so
// logical paths are canonical regardless of the host path convention.
func NormalizePath(path string) string {
	return strings.ReplaceAll(path, "\\", "/")
}
