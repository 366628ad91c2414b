package core

import (
	"sort"

	"curated-packages/internal/types"
)

// CountDistinct returns the number of distinct package identifiers in
// the assembled collection. The assembled data already carries one
// entry per identifier, but counting through a set keeps the guarantee
// independent of how the slice was produced.
func CountDistinct(data []types.PackageRunData) int {
	seen := map[types.Identifier]struct{}{}
	for _, entry := range data {
		seen[entry.Pkg.ID] = struct{}{}
	}
	return len(seen)
}

// CountByEcosystem counts distinct identifiers per ecosystem (the
// identifier type), sorted ascending by ecosystem name.
func CountByEcosystem(data []types.PackageRunData) []types.EcosystemCount {
	seen := map[types.Identifier]struct{}{}
	counts := map[string]int{}
	for _, entry := range data {
		if _, ok := seen[entry.Pkg.ID]; ok {
			continue
		}
		seen[entry.Pkg.ID] = struct{}{}
		counts[entry.Pkg.ID.Type]++
	}

	out := make([]types.EcosystemCount, 0, len(counts))
	for ecosystem, count := range counts {
		out = append(out, types.EcosystemCount{Ecosystem: ecosystem, Count: count})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Ecosystem < out[j].Ecosystem
	})
	return out
}

// DistinctProcessedLicenses returns every distinct processed SPDX
// expression in the collection, sorted lexicographically. Packages
// without declared licenses contribute the empty expression, which is
// skipped.
func DistinctProcessedLicenses(data []types.PackageRunData) []string {
	seen := map[string]struct{}{}
	for _, entry := range data {
		expression := entry.Pkg.DeclaredProcessed.SPDXExpression
		if expression == "" {
			continue
		}
		seen[expression] = struct{}{}
	}
	out := make([]string, 0, len(seen))
	for expression := range seen {
		out = append(out, expression)
	}
	sort.Strings(out)
	return out
}

// HighestVersions reports, per package coordinate, the highest analyzed
// version across the collection using ecosystem-aware version
// semantics. Output is sorted by coordinate.
func HighestVersions(data []types.PackageRunData) []types.CoordinateVersion {
	cache := newVersionCache()
	highest := map[types.Coordinate]string{}
	for _, entry := range data {
		id := entry.Pkg.ID
		coordinate := id.Coordinate()
		current, ok := highest[coordinate]
		if !ok || cache.compare(id.Type, id.Version, current) > 0 {
			highest[coordinate] = id.Version
		}
	}

	out := make([]types.CoordinateVersion, 0, len(highest))
	for coordinate, version := range highest {
		out = append(out, types.CoordinateVersion{Coordinate: coordinate, Version: version})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Coordinate.Compare(out[j].Coordinate) < 0
	})
	return out
}
