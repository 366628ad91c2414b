package app

import (
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"curated-packages/internal/types"
)

func TestParseSortSpecs(t *testing.T) {
	criteria, err := ParseSortSpecs([]string{"purl", "identifier:desc", " ", "processed_declared_license:ASC"})
	require.NoError(t, err)

	expected := []types.SortCriterion{
		{Field: types.QueryFieldPurl, Direction: types.SortAscending},
		{Field: types.QueryFieldIdentifier, Direction: types.SortDescending},
		{Field: types.QueryFieldProcessedLicense, Direction: types.SortAscending},
	}
	if diff := cmp.Diff(expected, criteria); diff != "" {
		t.Fatalf("unexpected sort criteria (-want +got):\n%s", diff)
	}
}

func TestParseFilterSpecs(t *testing.T) {
	criteria, err := ParseFilterSpecs([]string{
		"purl:ilike:lodash",
		"identifier:in:NPM:lodash@4.17.21, Maven:org.apache.commons:commons-lang3@3.12.0",
	})
	require.NoError(t, err)
	require.Len(t, criteria, 2)

	assert.Equal(t, types.FilterOpILike, criteria[0].Operator)
	assert.Equal(t, "lodash", criteria[0].Value)

	assert.Equal(t, types.FilterOpIn, criteria[1].Operator)
	// The identifier value keeps its own colons; only the set separator
	// splits.
	assert.Equal(t, []string{
		"NPM:lodash@4.17.21",
		"Maven:org.apache.commons:commons-lang3@3.12.0",
	}, criteria[1].Values)
}

func TestParseFilterSpecsRejectsMalformed(t *testing.T) {
	_, err := ParseFilterSpecs([]string{"purl=lodash"})
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))
}
