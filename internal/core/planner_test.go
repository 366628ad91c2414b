package core

import (
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"curated-packages/internal/types"
)

var (
	commonsID  = types.Identifier{Type: "Maven", Namespace: "org.apache.commons", Name: "commons-lang3", Version: "3.12.0"}
	lodashID   = types.Identifier{Type: "NPM", Name: "lodash", Version: "4.17.21"}
	requestsID = types.Identifier{Type: "PyPI", Name: "requests", Version: "2.31.0"}

	appProjectID = types.Identifier{Type: "NPM", Name: "app", Version: "1.0.0"}
	libProjectID = types.Identifier{Type: "NPM", Name: "lib", Version: "2.0.0"}
)

// fixtureRunData mirrors two overlapping analysis runs: run 1 holds
// commons-lang3 and lodash, run 2 holds commons-lang3 (again) and
// requests. The runs carry conflicting curations for commons-lang3 so
// dedup behavior is observable.
func fixtureRunData() []types.PackageRunData {
	packages := []types.RunPackage{
		{RunID: 1, Key: 11, Pkg: types.Package{ID: commonsID, DeclaredLicenses: []string{"Apache License 2.0"}}},
		{RunID: 1, Key: 12, Pkg: types.Package{ID: lodashID, DeclaredLicenses: []string{"MIT"}}},
		{RunID: 2, Key: 21, Pkg: types.Package{ID: commonsID, DeclaredLicenses: []string{"Apache License 2.0"}}},
		{RunID: 2, Key: 22, Pkg: types.Package{ID: requestsID, DeclaredLicenses: []string{"Apache-2.0"}}},
	}
	paths := []types.RunDependencyPath{
		{RunID: 1, Path: types.ShortestDependencyPath{PackageID: lodashID, ProjectID: appProjectID, Scope: "dependencies"}},
		{RunID: 1, Path: types.ShortestDependencyPath{PackageID: lodashID, ProjectID: libProjectID, Scope: "dependencies"}},
		{RunID: 1, Path: types.ShortestDependencyPath{PackageID: commonsID, ProjectID: appProjectID, Scope: "compile", Path: []types.Identifier{lodashID}}},
	}
	curations := map[int64][]types.PackageCuration{
		1: {{
			ID: commonsID,
			Data: types.CurationData{
				DeclaredLicenseMapping: map[string]string{"Apache License 2.0": "Apache-2.0"},
			},
		}},
		2: {{
			ID:   commonsID,
			Data: types.CurationData{ConcludedLicense: stringPtr("BSD-3-Clause")},
		}},
	}
	return AssembleRunData(packages, paths, curations)
}

func TestAssembleRunDataDeduplicatesAcrossRuns(t *testing.T) {
	data := fixtureRunData()
	require.Len(t, data, 3)

	// Baseline order is by identifier: Maven < NPM < PyPI.
	assert.Equal(t, commonsID, data[0].Pkg.ID)
	assert.Equal(t, lodashID, data[1].Pkg.ID)
	assert.Equal(t, requestsID, data[2].Pkg.ID)

	// The identifier analyzed in both runs keeps the lowest run's view:
	// run 1's mapping curation applies, run 2's concluded license does not.
	commons := data[0]
	assert.Equal(t, int64(1), commons.RunID)
	assert.Equal(t, int64(11), commons.PackageKey)
	assert.Equal(t, "Apache-2.0", commons.Pkg.DeclaredProcessed.SPDXExpression)
	assert.Empty(t, commons.ConcludedLicense)
	require.Len(t, commons.AppliedCurations, 1)
	require.Len(t, commons.ShortestPaths, 1)
}

func TestListPackagesSortAndPaginate(t *testing.T) {
	data := fixtureRunData()
	limit := 2
	result, err := ListPackages(t.Context(), data, types.ListParameters{
		Sort:  []types.SortCriterion{{Field: types.QueryFieldPurl, Direction: types.SortDescending}},
		Limit: &limit,
	})
	require.NoError(t, err)

	assert.Equal(t, 3, result.TotalCount)
	var purls []string
	for _, item := range result.Items {
		purls = append(purls, item.Pkg.ID.Purl())
	}
	expected := []string{
		"pkg:pypi/requests@2.31.0",
		"pkg:npm/lodash@4.17.21",
	}
	if diff := cmp.Diff(expected, purls); diff != "" {
		t.Fatalf("unexpected page (-want +got):\n%s", diff)
	}
}

func TestListPackagesOffsetBeyondEnd(t *testing.T) {
	data := fixtureRunData()
	result, err := ListPackages(t.Context(), data, types.ListParameters{Offset: 10})
	require.NoError(t, err)
	assert.Empty(t, result.Items)
	assert.Equal(t, 3, result.TotalCount)
}

func TestListPackagesNilLimitReturnsAllFromOffset(t *testing.T) {
	data := fixtureRunData()
	result, err := ListPackages(t.Context(), data, types.ListParameters{Offset: 1})
	require.NoError(t, err)
	assert.Len(t, result.Items, 2)
	assert.Equal(t, 3, result.TotalCount)
}

func TestListPackagesIdentifierFilterToleratesNamespace(t *testing.T) {
	data := fixtureRunData()

	tests := []struct {
		name   string
		filter types.FilterCriterion
		want   types.Identifier
	}{
		{
			name: "empty namespace package matched without namespace segment",
			filter: types.FilterCriterion{
				Field:    types.QueryFieldIdentifier,
				Operator: types.FilterOpILike,
				Value:    "NPM:lodash@4.17.21",
			},
			want: lodashID,
		},
		{
			name: "namespaced package matched by namespace-free value",
			filter: types.FilterCriterion{
				Field:    types.QueryFieldIdentifier,
				Operator: types.FilterOpILike,
				Value:    "Maven:commons-lang3@3.12.0",
			},
			want: commonsID,
		},
		{
			name: "explicitly empty namespace segment collapses",
			filter: types.FilterCriterion{
				Field:    types.QueryFieldIdentifier,
				Operator: types.FilterOpILike,
				Value:    "NPM::lodash@4.17.21",
			},
			want: lodashID,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ListPackages(t.Context(), data, types.ListParameters{
				Filters: []types.FilterCriterion{tt.filter},
			})
			require.NoError(t, err)
			require.Len(t, result.Items, 1)
			assert.Equal(t, tt.want, result.Items[0].Pkg.ID)
			assert.Equal(t, 1, result.TotalCount)
		})
	}
}

func TestListPackagesFilterOperators(t *testing.T) {
	data := fixtureRunData()

	// Substring matching is case-insensitive.
	result, err := ListPackages(t.Context(), data, types.ListParameters{
		Filters: []types.FilterCriterion{{
			Field:    types.QueryFieldPurl,
			Operator: types.FilterOpILike,
			Value:    "LODASH",
		}},
	})
	require.NoError(t, err)
	require.Len(t, result.Items, 1)
	assert.Equal(t, lodashID, result.Items[0].Pkg.ID)

	// Set membership on the processed license expression.
	result, err = ListPackages(t.Context(), data, types.ListParameters{
		Filters: []types.FilterCriterion{{
			Field:    types.QueryFieldProcessedLicense,
			Operator: types.FilterOpIn,
			Values:   []string{"Apache-2.0"},
		}},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, result.TotalCount)
}

func TestListPackagesInvalidQuery(t *testing.T) {
	data := fixtureRunData()

	tests := []struct {
		name   string
		params types.ListParameters
	}{
		{
			name: "unknown sort field",
			params: types.ListParameters{
				Sort: []types.SortCriterion{{Field: "homepage", Direction: types.SortAscending}},
			},
		},
		{
			name: "unknown sort direction",
			params: types.ListParameters{
				Sort: []types.SortCriterion{{Field: types.QueryFieldPurl, Direction: "sideways"}},
			},
		},
		{
			name: "unknown filter field",
			params: types.ListParameters{
				Filters: []types.FilterCriterion{{Field: "authors", Operator: types.FilterOpILike, Value: "x"}},
			},
		},
		{
			name: "unknown filter operator",
			params: types.ListParameters{
				Filters: []types.FilterCriterion{{Field: types.QueryFieldPurl, Operator: "regex", Value: "x"}},
			},
		},
		{
			name:   "negative offset",
			params: types.ListParameters{Offset: -1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ListPackages(t.Context(), data, tt.params)
			require.Error(t, err)
			assert.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))
		})
	}
}

func TestListPackagesPathAttachmentSurvivesQueryShape(t *testing.T) {
	data := fixtureRunData()

	result, err := ListPackages(t.Context(), data, types.ListParameters{
		Sort: []types.SortCriterion{{Field: types.QueryFieldProcessedLicense, Direction: types.SortDescending}},
		Filters: []types.FilterCriterion{{
			Field:    types.QueryFieldPurl,
			Operator: types.FilterOpILike,
			Value:    "lodash",
		}},
	})
	require.NoError(t, err)
	require.Len(t, result.Items, 1)

	// Reachable from two projects: exactly one path per project.
	paths := result.Items[0].ShortestPaths
	require.Len(t, paths, 2)
	assert.Equal(t, appProjectID, paths[0].ProjectID)
	assert.Equal(t, libProjectID, paths[1].ProjectID)
}

func TestListPackagesEmptyCollection(t *testing.T) {
	result, err := ListPackages(t.Context(), nil, types.ListParameters{})
	require.NoError(t, err)
	assert.Empty(t, result.Items)
	assert.Equal(t, 0, result.TotalCount)
}
