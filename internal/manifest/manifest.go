// Package manifest turns dependency manifest files (go.mod,
// package-lock.json, package.json, requirements.txt, pyproject.toml) into
// dependency identifiers that can be searched for. Entries without a pinned
// version carry an empty Version; callers decide whether to skip them.
package manifest

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/Endor-Solutions-Architecture/search-dependencies/internal/models"
)

// Parser is the interface for dependency manifest parsers
type Parser interface {
	// CanParse returns true if this parser can handle the given filename
	CanParse(filename string) bool

	// Parse extracts dependency identifiers from the file content
	Parse(path string, content []byte) ([]models.DependencyIdentifier, error)
}

// AllParsers returns all available parsers
func AllParsers() []Parser {
	return []Parser{
		&RequirementsParser{},
		&PyProjectParser{},
		&PackageLockParser{},
		&PackageJSONParser{},
		&GoModParser{},
	}
}

// ParseFile reads a manifest file and parses it with the matching parser.
// An unrecognized filename is an error; the caller treats it like any other
// unusable input source.
func ParseFile(path string) ([]models.DependencyIdentifier, error) {
	filename := filepath.Base(path)

	for _, parser := range AllParsers() {
		if parser.CanParse(filename) {
			content, err := os.ReadFile(path)
			if err != nil {
				return nil, err
			}
			return parser.Parse(path, content)
		}
	}

	return nil, fmt.Errorf("unsupported manifest file %q", filename)
}
