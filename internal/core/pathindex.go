package core

import (
	"curated-packages/internal/types"
)

// IndexShortestPaths groups shortest dependency paths by their terminal
// package identifier, preserving input order within each group. Looking
// up a package that never occurs in the input simply yields a nil
// slice.
func IndexShortestPaths(paths []types.ShortestDependencyPath) map[types.Identifier][]types.ShortestDependencyPath {
	index := make(map[types.Identifier][]types.ShortestDependencyPath, len(paths))
	for _, path := range paths {
		index[path.PackageID] = append(index[path.PackageID], path)
	}
	return index
}
