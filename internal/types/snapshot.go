package types

// RunSnapshot is the on-disk form of one completed analysis run: the
// raw packages with their internal keys, the shortest dependency paths,
// and the resolved curations the provider ordered for that run. One
// snapshot file holds exactly one run.
type RunSnapshot struct {
	RunID     int64                    `yaml:"run_id"`
	Packages  []SnapshotPackage        `yaml:"packages"`
	Paths     []ShortestDependencyPath `yaml:"shortest_paths,omitempty"`
	Curations []PackageCuration        `yaml:"curations,omitempty"`
}

// SnapshotPackage pairs a raw package with the run's internal key for
// it.
type SnapshotPackage struct {
	Key     int64   `yaml:"key"`
	Package Package `yaml:"package"`
}
