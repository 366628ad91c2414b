package adapters

import (
	"context"
	"fmt"
	"os"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"gopkg.in/yaml.v3"

	"curated-packages/internal/types"
)

// SnapshotFileAdapter serves the package store contract from YAML run
// snapshot files, one run per file. Files are parsed once on first use
// and kept in memory; a snapshot is an immutable record of a completed
// run, so there is nothing to invalidate.
type SnapshotFileAdapter struct {
	paths []string
	runs  map[int64]types.RunSnapshot
}

func NewSnapshotFileAdapter(paths ...string) *SnapshotFileAdapter {
	return &SnapshotFileAdapter{paths: paths}
}

func (a *SnapshotFileAdapter) FetchPackages(_ context.Context, runIDs []int64) ([]types.RunPackage, error) {
	runs, err := a.load()
	if err != nil {
		return nil, err
	}
	var out []types.RunPackage
	for _, runID := range runIDs {
		snapshot, ok := runs[runID]
		if !ok {
			continue
		}
		for _, entry := range snapshot.Packages {
			out = append(out, types.RunPackage{
				RunID: runID,
				Key:   entry.Key,
				Pkg:   entry.Package,
			})
		}
	}
	return out, nil
}

func (a *SnapshotFileAdapter) FetchDependencyPaths(_ context.Context, runIDs []int64) ([]types.RunDependencyPath, error) {
	runs, err := a.load()
	if err != nil {
		return nil, err
	}
	var out []types.RunDependencyPath
	for _, runID := range runIDs {
		snapshot, ok := runs[runID]
		if !ok {
			continue
		}
		for _, path := range snapshot.Paths {
			out = append(out, types.RunDependencyPath{RunID: runID, Path: path})
		}
	}
	return out, nil
}

func (a *SnapshotFileAdapter) FetchResolvedCurations(_ context.Context, runID int64) ([]types.PackageCuration, error) {
	runs, err := a.load()
	if err != nil {
		return nil, err
	}
	snapshot, ok := runs[runID]
	if !ok {
		return nil, nil
	}
	return snapshot.Curations, nil
}

func (a *SnapshotFileAdapter) load() (map[int64]types.RunSnapshot, error) {
	if a.runs != nil {
		return a.runs, nil
	}
	runs := map[int64]types.RunSnapshot{}
	for _, path := range a.paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeNotFound).
				WithMsg("snapshot file not found").
				WithCause(err)
		}
		var snapshot types.RunSnapshot
		if err := yaml.Unmarshal(data, &snapshot); err != nil {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg("failed to parse snapshot yaml").
				WithCause(err)
		}
		if _, exists := runs[snapshot.RunID]; exists {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("duplicate snapshot for run %d", snapshot.RunID))
		}
		runs[snapshot.RunID] = snapshot
	}
	a.runs = runs
	return runs, nil
}
