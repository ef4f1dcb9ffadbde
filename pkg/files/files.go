// Package files turns a File record into its byte content, regardless
// of whether the source is a filesystem path or in-memory text.
package files

import (
	"os"

	"github.com/extpack/extpack/pkg/errors"
	"github.com/extpack/extpack/pkg/types"
)

// Read returns the byte content of the given file record
func Read(file types.File) ([]byte, error) {
	switch f := file.(type) {
	case types.MemoryFile:
		return f.Contents, nil
	case *types.MemoryFile:
		return f.Contents, nil
	case types.LocalFile:
		return readLocal(f)
	case *types.LocalFile:
		return readLocal(*f)
	default:
		return nil, errors.Newf(errors.ErrInternal, "unknown file record kind %T", file).
			WithDetail("path", file.Path())
	}
}

// ReadString returns the content of the given file record as a string
func ReadString(file types.File) (string, error) {
	data, err := Read(file)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func readLocal(f types.LocalFile) ([]byte, error) {
	data, err := os.ReadFile(f.SourcePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(err, errors.ErrFileNotFound, "source file does not exist").
				WithDetail("path", f.Path()).
				WithDetail("source", f.SourcePath)
		}
		return nil, errors.Wrap(err, errors.ErrFileRead, "cannot read source file").
			WithDetail("path", f.Path()).
			WithDetail("source", f.SourcePath)
	}
	return data, nil
}
