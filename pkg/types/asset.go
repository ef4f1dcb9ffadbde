package types

// AssetType identifies the role a packaged file plays in the gallery
type AssetType string

// The fixed vocabulary of asset types
const (
	AssetManifest  AssetType = "Microsoft.VisualStudio.Code.Manifest"
	AssetDetails   AssetType = "Microsoft.VisualStudio.Services.Content.Details"
	AssetChangelog AssetType = "Microsoft.VisualStudio.Services.Content.Changelog"
	AssetLicense   AssetType = "Microsoft.VisualStudio.Services.Content.License"
	AssetIcon      AssetType = "Microsoft.VisualStudio.Services.Icons.Default"
)

// Asset declares that a specific packaged file serves a recognized role
type Asset struct {
	Type AssetType
	Path string
}
