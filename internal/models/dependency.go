package models

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// EcosystemSeparator splits the ecosystem prefix from the package name.
	EcosystemSeparator = "://"
	// VersionSeparator splits the package name from the version.
	VersionSeparator = "@"
)

// ErrMalformedDependency is returned when a dependency specifier string
// cannot be parsed.
var ErrMalformedDependency = errors.New("malformed dependency specifier")

// ErrNoValidDependencies is returned when no specifier from any input
// source could be parsed.
var ErrNoValidDependencies = errors.New("no valid dependencies provided")

// DependencyIdentifier identifies one resolved dependency as a triple of
// ecosystem, package name, and version. It is immutable once parsed.
type DependencyIdentifier struct {
	Ecosystem string
	Name      string
	Version   string
}

// ParseDependency parses a specifier of the form ecosystem://name@version.
//
// The name is split from the version on the last '@' so that names which
// themselves contain version-separator-like characters (maven coordinates,
// scoped npm packages) survive intact; the version is always the final
// segment.
func ParseDependency(raw string) (DependencyIdentifier, error) {
	ecosystem, rest, found := strings.Cut(raw, EcosystemSeparator)
	if !found {
		return DependencyIdentifier{}, fmt.Errorf("%w %q: missing '://'", ErrMalformedDependency, raw)
	}

	idx := strings.LastIndex(rest, VersionSeparator)
	if idx < 0 {
		return DependencyIdentifier{}, fmt.Errorf("%w %q: missing '@' for version", ErrMalformedDependency, raw)
	}

	return DependencyIdentifier{
		Ecosystem: ecosystem,
		Name:      rest[:idx],
		Version:   rest[idx+1:],
	}, nil
}

// FullName returns ecosystem://name, the exact equality key used in query
// filters.
func (d DependencyIdentifier) FullName() string {
	return d.Ecosystem + EcosystemSeparator + d.Name
}

// Label returns the canonical full_name@version label for this identifier.
func (d DependencyIdentifier) Label() string {
	return d.FullName() + VersionSeparator + d.Version
}

// String returns a human-readable representation
func (d DependencyIdentifier) String() string {
	return d.Label()
}
