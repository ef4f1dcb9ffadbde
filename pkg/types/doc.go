// Package types defines the core types and interfaces used throughout
// extpack. This includes the Processor interface, the File record kinds,
// and data structures like Manifest, Asset, and Property.
package types
