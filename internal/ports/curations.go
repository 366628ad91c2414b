package ports

import "curated-packages/internal/types"

// CurationSourcePort loads an additional ordered curation layer from a
// local file. Records from such a layer are appended after the
// store-resolved curations, so the file layer wins field-by-field under
// the last-value merge rule.
type CurationSourcePort interface {
	LoadCurations(path string) ([]types.PackageCuration, error)
}
