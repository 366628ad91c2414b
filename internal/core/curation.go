package core

import (
	"curated-packages/internal/types"
)

// CuratedPackage is the result of folding a run's curation layer into
// one raw package.
type CuratedPackage struct {
	Pkg              types.Package
	ConcludedLicense string
	AppliedCurations []types.CurationData
}

// ApplyCurations folds an ordered curation list into a base package.
//
// Curations targeting other identifiers are skipped. Each present
// field of a matching payload overwrites the running value; absent
// fields leave it untouched. Authors is a full replacement, while
// DeclaredLicenseMapping accumulates additively across curations. The
// declared licenses are reprocessed exactly once at the end against the
// accumulated mapping, so a package without matching curations still
// passes through the empty-mapping processor. ConcludedLicense carries
// the value from the last payload that set one.
func ApplyCurations(base types.Package, curations []types.PackageCuration) CuratedPackage {
	result := CuratedPackage{Pkg: base}
	mapping := map[string]string{}

	for _, curation := range curations {
		if curation.ID != base.ID {
			continue
		}
		data := curation.Data
		result.AppliedCurations = append(result.AppliedCurations, data)

		if data.Authors != nil {
			result.Pkg.Authors = append([]string(nil), (*data.Authors)...)
		}
		if data.ConcludedLicense != nil {
			result.ConcludedLicense = *data.ConcludedLicense
		}
		if data.Description != nil {
			result.Pkg.Description = *data.Description
		}
		if data.Homepage != nil {
			result.Pkg.Homepage = *data.Homepage
		}
		if data.BinaryArtifact != nil {
			result.Pkg.BinaryArtifact = *data.BinaryArtifact
		}
		if data.SourceArtifact != nil {
			result.Pkg.SourceArtifact = *data.SourceArtifact
		}
		for key, value := range data.DeclaredLicenseMapping {
			mapping[key] = value
		}
	}

	result.Pkg.DeclaredProcessed = ProcessDeclaredLicenses(base.DeclaredLicenses, mapping)
	return result
}
