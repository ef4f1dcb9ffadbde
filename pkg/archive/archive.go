// Package archive writes the final .vsix container: the descriptor,
// the content-types declaration, and every packaged file, zipped in a
// deterministic entry order.
package archive

import (
	"archive/zip"
	"os"
	"path/filepath"

	"github.com/extpack/extpack/pkg/errors"
	"github.com/extpack/extpack/pkg/files"
	"github.com/extpack/extpack/pkg/logging"
	"github.com/extpack/extpack/pkg/types"
)

// Entry names of the two documents accompanying the packaged files
const (
	DescriptorEntry   = "extension.vsixmanifest"
	ContentTypesEntry = "[Content_Types].xml"
)

// Write creates the archive at outPath. The descriptor and
// content-types entries come first, followed by the packaged files in
// list order.
func Write(outPath string, descriptorXML, contentTypesXML []byte, packagedFiles []types.File) error {
	logger := logging.GetLogger("archive")

	if dir := filepath.Dir(outPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return errors.Wrap(err, errors.ErrArchiveWrite, "cannot create output directory").
				WithDetail("path", dir)
		}
	}

	out, err := os.Create(outPath)
	if err != nil {
		return errors.Wrap(err, errors.ErrArchiveWrite, "cannot create archive").
			WithDetail("path", outPath)
	}
	defer func() { _ = out.Close() }()

	writer := zip.NewWriter(out)

	if err := writeEntry(writer, DescriptorEntry, descriptorXML); err != nil {
		return err
	}
	if err := writeEntry(writer, ContentTypesEntry, contentTypesXML); err != nil {
		return err
	}

	for _, file := range packagedFiles {
		contents, err := files.Read(file)
		if err != nil {
			return errors.Wrapf(err, errors.ErrArchiveWrite, "cannot read %s", file.Path())
		}
		if err := writeEntry(writer, file.Path(), contents); err != nil {
			return err
		}
	}

	if err := writer.Close(); err != nil {
		return errors.Wrap(err, errors.ErrArchiveWrite, "cannot finalize archive").
			WithDetail("path", outPath)
	}
	if err := out.Close(); err != nil {
		return errors.Wrap(err, errors.ErrArchiveWrite, "cannot close archive").
			WithDetail("path", outPath)
	}

	logger.Info().
		Str("path", outPath).
		Int("files", len(packagedFiles)).
		Msg("Archive written")
	return nil
}

func writeEntry(writer *zip.Writer, name string, contents []byte) error {
	entry, err := writer.Create(name)
	if err != nil {
		return errors.Wrapf(err, errors.ErrArchiveWrite, "cannot create archive entry %s", name)
	}
	if _, err := entry.Write(contents); err != nil {
		return errors.Wrapf(err, errors.ErrArchiveWrite, "cannot write archive entry %s", name)
	}
	return nil
}
