package core

import (
	"strings"

	pep440 "github.com/aquasecurity/go-pep440-version"
	debversion "github.com/knqyf263/go-deb-version"
)

// versionFamily selects which version grammar applies to an ecosystem.
type versionFamily int

const (
	familyLexicographic versionFamily = iota
	familyDebian
	familyPEP440
)

// familyForEcosystem maps an identifier type onto a version grammar.
// Anything unrecognized falls back to plain lexicographic comparison,
// which is also the order the query planner always uses for listing.
func familyForEcosystem(ecosystem string) versionFamily {
	switch strings.ToLower(ecosystem) {
	case "deb", "debian", "apt", "ubuntu":
		return familyDebian
	case "pypi", "pip", "python":
		return familyPEP440
	default:
		return familyLexicographic
	}
}

// versionCache memoizes parsed version objects so that repeated
// comparisons during aggregation do not re-parse the same strings.
type versionCache struct {
	deb map[string]debversion.Version
	pep map[string]pep440.Version
}

func newVersionCache() *versionCache {
	return &versionCache{
		deb: map[string]debversion.Version{},
		pep: map[string]pep440.Version{},
	}
}

func (c *versionCache) debVersion(value string) (debversion.Version, error) {
	if parsed, ok := c.deb[value]; ok {
		return parsed, nil
	}
	parsed, err := debversion.NewVersion(value)
	if err != nil {
		return debversion.Version{}, err
	}
	c.deb[value] = parsed
	return parsed, nil
}

func (c *versionCache) pepVersion(value string) (pep440.Version, error) {
	if parsed, ok := c.pep[value]; ok {
		return parsed, nil
	}
	parsed, err := pep440.Parse(value)
	if err != nil {
		return pep440.Version{}, err
	}
	c.pep[value] = parsed
	return parsed, nil
}

// compare returns -1, 0, or 1 comparing two version strings under the
// ecosystem's grammar. Unparseable versions fall back to lexicographic
// comparison so aggregation never fails on odd version strings.
func (c *versionCache) compare(ecosystem string, a string, b string) int {
	switch familyForEcosystem(ecosystem) {
	case familyDebian:
		v1, err1 := c.debVersion(a)
		v2, err2 := c.debVersion(b)
		if err1 != nil || err2 != nil {
			return strings.Compare(a, b)
		}
		return v1.Compare(v2)
	case familyPEP440:
		v1, err1 := c.pepVersion(a)
		v2, err2 := c.pepVersion(b)
		if err1 != nil || err2 != nil {
			return strings.Compare(a, b)
		}
		return v1.Compare(v2)
	default:
		return strings.Compare(a, b)
	}
}
