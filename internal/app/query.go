package app

import (
	"context"
	"sort"

	assert "github.com/ZanzyTHEbar/assert-lib"
	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"curated-packages/internal/core"
	"curated-packages/internal/types"
)

// ListPackages evaluates one filterable, sortable, paginated listing
// over the merged package set of the requested runs.
func (s Service) ListPackages(ctx context.Context, req ListPackagesRequest) (ListPackagesResult, error) {
	sortSpec, err := ParseSortSpecs(req.Sort)
	if err != nil {
		return ListPackagesResult{}, err
	}
	filterSpec, err := ParseFilterSpecs(req.Filters)
	if err != nil {
		return ListPackagesResult{}, err
	}

	data, err := s.assemble(ctx, req.RunIDs, req.CurationFiles)
	if err != nil {
		return ListPackagesResult{}, err
	}

	result, err := core.ListPackages(ctx, data, types.ListParameters{
		Sort:    sortSpec,
		Filters: filterSpec,
		Limit:   req.Limit,
		Offset:  req.Offset,
	})
	if err != nil {
		return ListPackagesResult{}, err
	}
	return ListPackagesResult{Items: result.Items, TotalCount: result.TotalCount}, nil
}

// Stats reports the distinct-package count and per-ecosystem counts,
// optionally with the highest analyzed version per coordinate.
func (s Service) Stats(ctx context.Context, req StatsRequest) (StatsResult, error) {
	data, err := s.assemble(ctx, req.RunIDs, req.CurationFiles)
	if err != nil {
		return StatsResult{}, err
	}
	result := StatsResult{
		TotalPackages: core.CountDistinct(data),
		Ecosystems:    core.CountByEcosystem(data),
	}
	if req.Versions {
		result.HighestVersions = core.HighestVersions(data)
	}
	return result, nil
}

// Licenses reports the distinct processed SPDX expressions across the
// requested runs.
func (s Service) Licenses(ctx context.Context, req LicensesRequest) (LicensesResult, error) {
	data, err := s.assemble(ctx, req.RunIDs, req.CurationFiles)
	if err != nil {
		return LicensesResult{}, err
	}
	return LicensesResult{Licenses: core.DistinctProcessedLicenses(data)}, nil
}

// assemble fetches the run snapshots through the store port, layers
// file-based curations after the store-resolved ones, and builds the
// merged, deduplicated collection the engine operates on. An empty run
// id set is a valid query over nothing.
func (s Service) assemble(ctx context.Context, runIDs []int64, curationFiles []string) ([]types.PackageRunData, error) {
	if s.Store == nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("service requires a package store port")
	}

	runIDs = dedupeRunIDs(runIDs)
	if len(runIDs) == 0 {
		return nil, nil
	}

	started := s.Clock()
	packages, err := s.Store.FetchPackages(ctx, runIDs)
	if err != nil {
		return nil, err
	}
	paths, err := s.Store.FetchDependencyPaths(ctx, runIDs)
	if err != nil {
		return nil, err
	}

	var fileLayer []types.PackageCuration
	for _, path := range curationFiles {
		assert.NotEmpty(ctx, path, "curation file path must be set")
		curations, err := s.Curations.LoadCurations(path)
		if err != nil {
			return nil, err
		}
		fileLayer = append(fileLayer, curations...)
	}

	curationsByRun := map[int64][]types.PackageCuration{}
	for _, runID := range runIDs {
		resolved, err := s.Store.FetchResolvedCurations(ctx, runID)
		if err != nil {
			return nil, err
		}
		layered := make([]types.PackageCuration, 0, len(resolved)+len(fileLayer))
		layered = append(layered, resolved...)
		layered = append(layered, fileLayer...)
		curationsByRun[runID] = layered
	}

	data := core.AssembleRunData(packages, paths, curationsByRun)
	log.Ctx(ctx).Debug().
		Int("runs", len(runIDs)).
		Int("packages", len(data)).
		Dur("fetch", s.Clock().Sub(started)).
		Msg("run data assembled")
	return data, nil
}

// dedupeRunIDs copies the requested run id set into a sorted, unique
// slice so that the lowest-run-id dedup tie-break is deterministic.
func dedupeRunIDs(runIDs []int64) []int64 {
	seen := map[int64]struct{}{}
	out := make([]int64, 0, len(runIDs))
	for _, runID := range runIDs {
		if _, ok := seen[runID]; ok {
			continue
		}
		seen[runID] = struct{}{}
		out = append(out, runID)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
