package types

import "encoding/json"

// Manifest is the declarative description of the package, read from the
// extension's package.json. It is immutable once passed into the
// pipeline.
type Manifest struct {
	Name        string   `json:"name"`
	Publisher   string   `json:"publisher"`
	Version     string   `json:"version"`
	DisplayName string   `json:"displayName,omitempty"`
	Description string   `json:"description,omitempty"`
	Categories  []string `json:"categories,omitempty"`
	Keywords    []string `json:"keywords,omitempty"`
	Icon        string   `json:"icon,omitempty"`
	License     string   `json:"license,omitempty"`

	Engines Engines `json:"engines"`

	Repository *Remote        `json:"repository,omitempty"`
	Bugs       *Remote        `json:"bugs,omitempty"`
	Homepage   string         `json:"homepage,omitempty"`
	Banner     *GalleryBanner `json:"galleryBanner,omitempty"`
}

// Engines declares the minimum compatible host version
type Engines struct {
	VSCode *string `json:"vscode"`
}

// GalleryBanner holds the marketplace banner branding fields
type GalleryBanner struct {
	Color string `json:"color,omitempty"`
	Theme string `json:"theme,omitempty"`
}

// Remote is a repository or bug-tracker reference. package.json allows
// either a plain URL string or an object with a "url" key; both decode
// into the URL field.
type Remote struct {
	URL string `json:"url"`
}

// UnmarshalJSON accepts both the string and the object form
func (r *Remote) UnmarshalJSON(data []byte) error {
	var plain string
	if err := json.Unmarshal(data, &plain); err == nil {
		r.URL = plain
		return nil
	}

	type remoteObject struct {
		Type string `json:"type"`
		URL  string `json:"url"`
	}
	var obj remoteObject
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	r.URL = obj.URL
	return nil
}

// RepositoryURL returns the repository URL or the empty string
func (m *Manifest) RepositoryURL() string {
	if m.Repository == nil {
		return ""
	}
	return m.Repository.URL
}

// BugsURL returns the bug-tracker URL or the empty string
func (m *Manifest) BugsURL() string {
	if m.Bugs == nil {
		return ""
	}
	return m.Bugs.URL
}
