package app

import "curated-packages/internal/types"

type ListPackagesRequest struct {
	RunIDs []int64
	// Sort entries are "field" or "field:direction" specs.
	Sort []string
	// Filter entries are "field:operator:value" specs; the value of an
	// "in" filter is a comma-separated set.
	Filters       []string
	Limit         *int
	Offset        int
	CurationFiles []string
}

type ListPackagesResult struct {
	Items      []types.PackageRunData
	TotalCount int
}

type StatsRequest struct {
	RunIDs        []int64
	CurationFiles []string
	// Versions additionally reports the highest analyzed version per
	// package coordinate.
	Versions bool
}

type StatsResult struct {
	TotalPackages   int
	Ecosystems      []types.EcosystemCount
	HighestVersions []types.CoordinateVersion
}

type LicensesRequest struct {
	RunIDs        []int64
	CurationFiles []string
}

type LicensesResult struct {
	Licenses []string
}
