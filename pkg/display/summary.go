package display

import (
	"fmt"
	"strings"

	"github.com/extpack/extpack/pkg/types"
)

// PackageSummary is the displayable outcome of a packaging run
type PackageSummary struct {
	Extension  string
	OutputPath string
	FileCount  int
	Assets     []types.Asset
}

// RenderPackageSummary renders a packaging result for the terminal
func RenderPackageSummary(s PackageSummary) string {
	var b strings.Builder

	b.WriteString(GetStyle("Success").Render("Packaged " + s.Extension))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  %s %s\n",
		GetStyle("Muted").Render("archive:"),
		GetStyle("FilePath").Render(s.OutputPath)))
	b.WriteString(fmt.Sprintf("  %s %d\n",
		GetStyle("Muted").Render("files:"),
		s.FileCount))

	if len(s.Assets) > 0 {
		b.WriteString("  " + GetStyle("Muted").Render("assets:") + "\n")
		for _, asset := range s.Assets {
			b.WriteString(fmt.Sprintf("    %s %s\n",
				GetStyle("Asset").Render(string(asset.Type)),
				asset.Path))
		}
	}

	return b.String()
}

// RenderFileList renders the logical paths that would be packaged
func RenderFileList(packagedFiles []types.File) string {
	var b strings.Builder
	for _, file := range packagedFiles {
		b.WriteString(GetStyle("FilePath").Render(file.Path()))
		b.WriteString("\n")
	}
	return b.String()
}
