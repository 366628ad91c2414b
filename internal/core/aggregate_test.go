package core

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"curated-packages/internal/types"
)

func TestCountDistinctAcrossRuns(t *testing.T) {
	// Runs {commons, lodash} and {commons, requests} hold 4 occurrences
	// but only 3 distinct identifiers.
	data := fixtureRunData()
	assert.Equal(t, 3, CountDistinct(data))
	assert.Equal(t, 0, CountDistinct(nil))
}

func TestCountByEcosystem(t *testing.T) {
	mavenB := types.Identifier{Type: "Maven", Namespace: "com.google.guava", Name: "guava", Version: "32.0.0"}
	packages := []types.RunPackage{
		{RunID: 1, Key: 1, Pkg: types.Package{ID: commonsID}},
		{RunID: 1, Key: 2, Pkg: types.Package{ID: mavenB}},
		{RunID: 1, Key: 3, Pkg: types.Package{ID: lodashID}},
		// Second run sees one of the Maven packages again.
		{RunID: 2, Key: 4, Pkg: types.Package{ID: commonsID}},
	}
	data := AssembleRunData(packages, nil, nil)

	expected := []types.EcosystemCount{
		{Ecosystem: "Maven", Count: 2},
		{Ecosystem: "NPM", Count: 1},
	}
	if diff := cmp.Diff(expected, CountByEcosystem(data)); diff != "" {
		t.Fatalf("unexpected ecosystem counts (-want +got):\n%s", diff)
	}
}

func TestDistinctProcessedLicenses(t *testing.T) {
	data := fixtureRunData()
	// commons and requests both process to Apache-2.0; lodash to MIT.
	assert.Equal(t, []string{"Apache-2.0", "MIT"}, DistinctProcessedLicenses(data))
	assert.Empty(t, DistinctProcessedLicenses(nil))
}

func TestHighestVersionsEcosystemAware(t *testing.T) {
	deb9 := types.Identifier{Type: "Deb", Namespace: "debian", Name: "zlib1g", Version: "1.9"}
	deb10 := types.Identifier{Type: "Deb", Namespace: "debian", Name: "zlib1g", Version: "1.10"}
	py29 := types.Identifier{Type: "PyPI", Name: "requests", Version: "2.9.1"}
	py210 := types.Identifier{Type: "PyPI", Name: "requests", Version: "2.10.0"}
	mavenOld := types.Identifier{Type: "Maven", Namespace: "org.apache.commons", Name: "commons-lang3", Version: "3.12.0"}
	mavenNew := types.Identifier{Type: "Maven", Namespace: "org.apache.commons", Name: "commons-lang3", Version: "3.9.0"}

	packages := []types.RunPackage{
		{RunID: 1, Key: 1, Pkg: types.Package{ID: deb9}},
		{RunID: 1, Key: 2, Pkg: types.Package{ID: deb10}},
		{RunID: 1, Key: 3, Pkg: types.Package{ID: py29}},
		{RunID: 2, Key: 4, Pkg: types.Package{ID: py210}},
		{RunID: 2, Key: 5, Pkg: types.Package{ID: mavenOld}},
		{RunID: 2, Key: 6, Pkg: types.Package{ID: mavenNew}},
	}
	data := AssembleRunData(packages, nil, nil)
	result := HighestVersions(data)
	require.Len(t, result, 3)

	byCoordinate := map[string]string{}
	for _, entry := range result {
		byCoordinate[entry.Coordinate.String()] = entry.Version
	}
	// Debian semantics: 1.10 is newer than 1.9 even though it sorts
	// lower lexicographically.
	assert.Equal(t, "1.10", byCoordinate["Deb:debian:zlib1g"])
	// PEP 440 semantics: 2.10.0 is newer than 2.9.1.
	assert.Equal(t, "2.10.0", byCoordinate["PyPI:requests"])
	// Unrecognized ecosystems fall back to lexicographic comparison.
	assert.Equal(t, "3.9.0", byCoordinate["Maven:org.apache.commons:commons-lang3"])

	// Output is sorted by coordinate.
	assert.Equal(t, "Deb:debian:zlib1g", result[0].Coordinate.String())
	assert.Equal(t, "Maven:org.apache.commons:commons-lang3", result[1].Coordinate.String())
	assert.Equal(t, "PyPI:requests", result[2].Coordinate.String())
}
