package types

import (
	"fmt"
	"strings"
)

// Identifier uniquely names a package within and across analysis runs.
// Equality over all four fields defines package identity; Compare
// defines the total order used for stable listing.
type Identifier struct {
	Type      string `yaml:"type" json:"type"`
	Namespace string `yaml:"namespace,omitempty" json:"namespace,omitempty"`
	Name      string `yaml:"name" json:"name"`
	Version   string `yaml:"version" json:"version"`
}

// String renders the identifier as "type:namespace:name@version". The
// namespace segment is omitted when empty so that identifiers without a
// namespace read "type:name@version".
func (id Identifier) String() string {
	if id.Namespace == "" {
		return fmt.Sprintf("%s:%s@%s", id.Type, id.Name, id.Version)
	}
	return fmt.Sprintf("%s:%s:%s@%s", id.Type, id.Namespace, id.Name, id.Version)
}

// Purl renders the identifier as a package URL:
// "pkg:type/namespace/name@version", the namespace segment omitted when
// empty.
func (id Identifier) Purl() string {
	purlType := strings.ToLower(id.Type)
	if id.Namespace == "" {
		return fmt.Sprintf("pkg:%s/%s@%s", purlType, id.Name, id.Version)
	}
	return fmt.Sprintf("pkg:%s/%s/%s@%s", purlType, id.Namespace, id.Name, id.Version)
}

// Coordinate is an identifier without its version, used when grouping
// analyzed versions of the same package.
type Coordinate struct {
	Type      string `yaml:"type" json:"type"`
	Namespace string `yaml:"namespace,omitempty" json:"namespace,omitempty"`
	Name      string `yaml:"name" json:"name"`
}

func (id Identifier) Coordinate() Coordinate {
	return Coordinate{Type: id.Type, Namespace: id.Namespace, Name: id.Name}
}

func (c Coordinate) String() string {
	if c.Namespace == "" {
		return fmt.Sprintf("%s:%s", c.Type, c.Name)
	}
	return fmt.Sprintf("%s:%s:%s", c.Type, c.Namespace, c.Name)
}

// Compare orders identifiers by type, namespace, name and version,
// each compared lexicographically and case-sensitively.
func (id Identifier) Compare(other Identifier) int {
	if c := strings.Compare(id.Type, other.Type); c != 0 {
		return c
	}
	if c := strings.Compare(id.Namespace, other.Namespace); c != 0 {
		return c
	}
	if c := strings.Compare(id.Name, other.Name); c != 0 {
		return c
	}
	return strings.Compare(id.Version, other.Version)
}

// Compare orders coordinates by type, namespace and name.
func (c Coordinate) Compare(other Coordinate) int {
	if r := strings.Compare(c.Type, other.Type); r != 0 {
		return r
	}
	if r := strings.Compare(c.Namespace, other.Namespace); r != 0 {
		return r
	}
	return strings.Compare(c.Name, other.Name)
}
