package manifest

import (
	"github.com/Endor-Solutions-Architecture/search-dependencies/internal/models"
	"golang.org/x/mod/modfile"
)

// GoModParser parses go.mod files
type GoModParser struct {
	IncludeIndirect bool // Whether to include indirect dependencies
}

// CanParse returns true for go.mod files
func (p *GoModParser) CanParse(filename string) bool {
	return filename == "go.mod"
}

// Parse extracts dependency identifiers from go.mod content. Module
// versions keep their v prefix; that is how resolved Go versions are
// recorded upstream.
func (p *GoModParser) Parse(path string, content []byte) ([]models.DependencyIdentifier, error) {
	mod, err := modfile.Parse(path, content, nil)
	if err != nil {
		return nil, err
	}

	var deps []models.DependencyIdentifier
	for _, req := range mod.Require {
		if req.Indirect && !p.IncludeIndirect {
			continue
		}
		deps = append(deps, models.DependencyIdentifier{
			Ecosystem: "go",
			Name:      req.Mod.Path,
			Version:   req.Mod.Version,
		})
	}

	return deps, nil
}
