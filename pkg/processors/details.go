package processors

import (
	"strings"

	"github.com/extpack/extpack/pkg/types"
)

// LinksProcessor synthesizes link properties from the manifest's
// repository, homepage and bugs fields. It never touches file content:
// all of its contributions are known at construction time.
type LinksProcessor struct {
	base
}

// NewLinksProcessor creates a links processor for the given manifest
func NewLinksProcessor(m *types.Manifest) *LinksProcessor {
	p := &LinksProcessor{base: newBase("links")}

	if repository := m.RepositoryURL(); repository != "" {
		p.addProperty(types.PropertyLinkSource, repository)
		p.addProperty(types.PropertyLinkGetStarted, repository)
		p.addProperty(types.PropertyLinkRepository, repository)

		learn := repository
		if m.Homepage != "" {
			learn = m.Homepage
		}
		p.addProperty(types.PropertyLinkLearn, learn)
	}

	if bugs := m.BugsURL(); bugs != "" {
		p.addProperty(types.PropertyLinkSupport, bugs)
	}

	return p
}

// BrandingProcessor synthesizes gallery-banner branding properties
type BrandingProcessor struct {
	base
}

// NewBrandingProcessor creates a branding processor for the given manifest
func NewBrandingProcessor(m *types.Manifest) *BrandingProcessor {
	p := &BrandingProcessor{base: newBase("branding")}

	if m.Banner != nil {
		if m.Banner.Color != "" {
			p.addProperty(types.PropertyBrandingColor, m.Banner.Color)
		}
		if m.Banner.Theme != "" {
			p.addProperty(types.PropertyBrandingTheme, m.Banner.Theme)
		}
	}

	return p
}

// CategoriesProcessor synthesizes the comma-joined category property
type CategoriesProcessor struct {
	base
}

// NewCategoriesProcessor creates a categories processor for the given manifest
func NewCategoriesProcessor(m *types.Manifest) *CategoriesProcessor {
	p := &CategoriesProcessor{base: newBase("categories")}

	if len(m.Categories) > 0 {
		p.addProperty(types.PropertyCategory, strings.Join(m.Categories, ","))
	}

	return p
}
