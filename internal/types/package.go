package types

// Artifact points at a downloadable source or binary archive.
type Artifact struct {
	URL  string `yaml:"url,omitempty" json:"url,omitempty"`
	Hash string `yaml:"hash,omitempty" json:"hash,omitempty"`
}

// DeclaredLicenseProcessing is the canonical form of a package's
// declared licenses after applying a declared-license-to-SPDX mapping.
//
// UnmappedLicenses is exactly DeclaredLicenses minus the keys of
// MappedLicenses. SPDXExpression is the AND-conjunction, in stable
// lexicographic order, of the mapped values and the unmapped originals
// (each wrapped as a license reference when not a parseable SPDX
// license id).
type DeclaredLicenseProcessing struct {
	SPDXExpression   string            `yaml:"spdx_expression" json:"spdx_expression"`
	MappedLicenses   map[string]string `yaml:"mapped_licenses,omitempty" json:"mapped_licenses,omitempty"`
	UnmappedLicenses []string          `yaml:"unmapped_licenses,omitempty" json:"unmapped_licenses,omitempty"`
}

// Package is a raw analyzed package as produced by an analysis run.
// Instances are immutable once a run completes; curation adjustments
// always happen on transient copies.
type Package struct {
	ID                Identifier                `yaml:"id" json:"id"`
	Authors           []string                  `yaml:"authors,omitempty" json:"authors,omitempty"`
	DeclaredLicenses  []string                  `yaml:"declared_licenses,omitempty" json:"declared_licenses,omitempty"`
	DeclaredProcessed DeclaredLicenseProcessing `yaml:"declared_processed,omitempty" json:"declared_processed"`
	Description       string                    `yaml:"description,omitempty" json:"description,omitempty"`
	Homepage          string                    `yaml:"homepage,omitempty" json:"homepage,omitempty"`
	BinaryArtifact    Artifact                  `yaml:"binary_artifact,omitempty" json:"binary_artifact,omitempty"`
	SourceArtifact    Artifact                  `yaml:"source_artifact,omitempty" json:"source_artifact,omitempty"`
}

// CurationData is one curation payload: a partial update where every
// field is optional. A nil field means "leave the prior value
// untouched"; a present field overwrites it. Authors, when present,
// fully replaces the author set. DeclaredLicenseMapping is merged
// additively into the mapping handed to the license processor.
type CurationData struct {
	Comment                *string           `yaml:"comment,omitempty" json:"comment,omitempty"`
	ConcludedLicense       *string           `yaml:"concluded_license,omitempty" json:"concluded_license,omitempty"`
	Authors                *[]string         `yaml:"authors,omitempty" json:"authors,omitempty"`
	DeclaredLicenseMapping map[string]string `yaml:"declared_license_mapping,omitempty" json:"declared_license_mapping,omitempty"`
	Description            *string           `yaml:"description,omitempty" json:"description,omitempty"`
	Homepage               *string           `yaml:"homepage,omitempty" json:"homepage,omitempty"`
	BinaryArtifact         *Artifact         `yaml:"binary_artifact,omitempty" json:"binary_artifact,omitempty"`
	SourceArtifact         *Artifact         `yaml:"source_artifact,omitempty" json:"source_artifact,omitempty"`
}

// PackageCuration targets one identifier with one payload. Ordered
// lists of these are supplied per run by the curation-resolution
// collaborator; this engine never re-orders or persists them.
type PackageCuration struct {
	ID   Identifier   `yaml:"id" json:"id"`
	Data CurationData `yaml:"curations" json:"curations"`
}
