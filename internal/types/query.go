package types

// QueryField enumerates the fields the query planner can sort and
// filter on. Keeping this a closed enum means unknown field names fail
// query validation instead of surfacing mid-execution.
type QueryField string

const (
	QueryFieldIdentifier       QueryField = "identifier"
	QueryFieldPurl             QueryField = "purl"
	QueryFieldProcessedLicense QueryField = "processed_declared_license"
)

type SortDirection string

const (
	SortAscending  SortDirection = "asc"
	SortDescending SortDirection = "desc"
)

type FilterOperator string

const (
	// FilterOpILike matches when the field contains the filter value,
	// compared case-insensitively.
	FilterOpILike FilterOperator = "ilike"
	// FilterOpIn matches when the field equals one of the filter values.
	FilterOpIn FilterOperator = "in"
)

type SortCriterion struct {
	Field     QueryField
	Direction SortDirection
}

type FilterCriterion struct {
	Field    QueryField
	Operator FilterOperator
	// Value is the pattern for FilterOpILike.
	Value string
	// Values is the membership set for FilterOpIn.
	Values []string
}

// ListParameters describes one query: sort keys applied in order,
// filters combined conjunctively, and pagination. A nil Limit returns
// all matches from Offset onward.
type ListParameters struct {
	Sort    []SortCriterion
	Filters []FilterCriterion
	Limit   *int
	Offset  int
}

// ListResult is one page plus the size of the filtered set before
// pagination was applied.
type ListResult struct {
	Items      []PackageRunData
	TotalCount int
}

// EcosystemCount pairs a package ecosystem (the identifier type) with
// the number of distinct packages in it.
type EcosystemCount struct {
	Ecosystem string `json:"ecosystem"`
	Count     int    `json:"count"`
}

// CoordinateVersion reports the highest analyzed version of one
// package coordinate across the queried runs.
type CoordinateVersion struct {
	Coordinate Coordinate `json:"coordinate"`
	Version    string     `json:"version"`
}
