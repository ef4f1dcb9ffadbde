package descriptor

import (
	"strings"

	"github.com/extpack/extpack/pkg/types"
)

// ContentType declares the default MIME type for one file extension
type ContentType struct {
	Extension string
	MimeType  string
}

// mimeTypes maps known file extensions to their MIME type. Unknown
// extensions get no entry at all: the archive format's own default-type
// semantics decide what happens to them.
var mimeTypes = map[string]string{
	".txt":      "text/plain",
	".md":       "text/x-markdown",
	".markdown": "text/x-markdown",
	".json":     "application/json",
	".yaml":     "text/yaml",
	".yml":      "text/yaml",
	".xml":      "text/xml",
	".html":     "text/html",
	".css":      "text/css",
	".js":       "application/javascript",
	".png":      "image/png",
	".jpg":      "image/jpeg",
	".jpeg":     "image/jpeg",
	".gif":      "image/gif",
	".svg":      "image/svg+xml",
	".ico":      "image/x-icon",
	".bmp":      "image/bmp",
}

// BuildContentTypes derives the declared default content type per file
// extension from the final file set. The result always starts with two
// fixed entries for the descriptor file and JSON manifests, followed by
// one entry per distinct known extension in file order. Extensionless
// files produce no entry.
func BuildContentTypes(packagedFiles []types.File) []ContentType {
	entries := []ContentType{
		{Extension: ".vsixmanifest", MimeType: "text/xml"},
		{Extension: ".json", MimeType: "application/json"},
	}

	seen := map[string]bool{".vsixmanifest": true, ".json": true}
	for _, file := range packagedFiles {
		ext := extensionOf(file.Path())
		if ext == "" || seen[ext] {
			continue
		}
		seen[ext] = true
		if mimeType, known := mimeTypes[ext]; known {
			entries = append(entries, ContentType{Extension: ext, MimeType: mimeType})
		}
	}

	return entries
}

// extensionOf extracts the lower-cased extension of a logical path,
// including the leading dot. A dot that starts the final segment does
// not count as an extension separator, so dotfiles are extensionless.
func extensionOf(path string) string {
	segment := path
	if i := strings.LastIndex(path, "/"); i >= 0 {
		segment = path[i+1:]
	}

	dot := strings.LastIndex(segment, ".")
	if dot <= 0 {
		return ""
	}
	return strings.ToLower(segment[dot:])
}
