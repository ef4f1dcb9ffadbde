package types

// PropertyID identifies a namespaced descriptor property
type PropertyID string

// The fixed vocabulary of property identifiers
const (
	PropertyLinkSource     PropertyID = "Microsoft.VisualStudio.Services.Links.Source"
	PropertyLinkGetStarted PropertyID = "Microsoft.VisualStudio.Services.Links.Getstarted"
	PropertyLinkRepository PropertyID = "Microsoft.VisualStudio.Services.Links.Repository"
	PropertyLinkLearn      PropertyID = "Microsoft.VisualStudio.Services.Links.Learn"
	PropertyLinkSupport    PropertyID = "Microsoft.VisualStudio.Services.Links.Support"
	PropertyBrandingColor  PropertyID = "Microsoft.VisualStudio.Services.Branding.Color"
	PropertyBrandingTheme  PropertyID = "Microsoft.VisualStudio.Services.Branding.Theme"
	PropertyCategory       PropertyID = "Microsoft.VisualStudio.Services.Category"
	PropertyLicense        PropertyID = "Microsoft.VisualStudio.Services.Content.License"
	PropertyIcon           PropertyID = "Microsoft.VisualStudio.Services.Icons.Default"
)

// Property is a namespaced key/value metadata entry attached to the
// package descriptor. A given id legitimately appears at most once; a
// processor contributing a duplicate id is a programming error in that
// processor, not something this core detects at runtime.
type Property struct {
	ID    PropertyID
	Value string
}
