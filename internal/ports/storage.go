package ports

import (
	"context"

	"curated-packages/internal/types"
)

// PackageStorePort supplies the immutable per-run data the engine
// operates on. Implementations own consistency, retries and timeouts;
// the engine treats every returned slice as a consistent snapshot.
type PackageStorePort interface {
	FetchPackages(ctx context.Context, runIDs []int64) ([]types.RunPackage, error)
	FetchDependencyPaths(ctx context.Context, runIDs []int64) ([]types.RunDependencyPath, error)
	// FetchResolvedCurations returns the run's curations already ordered
	// by the provider's precedence policy. The engine never re-orders.
	FetchResolvedCurations(ctx context.Context, runID int64) ([]types.PackageCuration, error)
}
