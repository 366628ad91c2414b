package types

// ShortestDependencyPath records the minimal-length chain from a
// project, through a named dependency scope, to a package. Path holds
// the intermediate identifiers only; PackageID is the implied terminus.
// One package may carry one such path per (project, scope) pair that
// reaches it at minimal depth.
type ShortestDependencyPath struct {
	PackageID Identifier   `yaml:"package" json:"package"`
	ProjectID Identifier   `yaml:"project" json:"project"`
	Scope     string       `yaml:"scope" json:"scope"`
	Path      []Identifier `yaml:"path" json:"path"`
}

// RunPackage binds a raw package to the analysis run that produced it
// together with the run's internal package key.
type RunPackage struct {
	RunID int64   `yaml:"run_id" json:"run_id"`
	Key   int64   `yaml:"key" json:"key"`
	Pkg   Package `yaml:"package" json:"package"`
}

// RunDependencyPath binds a shortest dependency path to its run.
type RunDependencyPath struct {
	RunID int64                  `yaml:"run_id" json:"run_id"`
	Path  ShortestDependencyPath `yaml:"path" json:"path"`
}

// PackageRunData is the merged, transient view of one package in one
// run: the curation-adjusted package, its shortest dependency paths,
// the concluded license from the last curation that set one, and every
// curation payload that matched the package, in application order.
// It is recomputed per query and never stored.
type PackageRunData struct {
	RunID            int64                    `json:"run_id"`
	PackageKey       int64                    `json:"package_key"`
	Pkg              Package                  `json:"package"`
	ConcludedLicense string                   `json:"concluded_license,omitempty"`
	ShortestPaths    []ShortestDependencyPath `json:"shortest_paths,omitempty"`
	AppliedCurations []CurationData           `json:"applied_curations,omitempty"`
}
