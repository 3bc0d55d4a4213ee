package manifest

import (
	"encoding/json"
	"strings"

	"github.com/Endor-Solutions-Architecture/search-dependencies/internal/models"
)

// PackageLockParser parses package-lock.json files
type PackageLockParser struct{}

// CanParse returns true for package-lock.json files
func (p *PackageLockParser) CanParse(filename string) bool {
	return filename == "package-lock.json"
}

// packageLock represents the structure of package-lock.json (v1/v2/v3)
type packageLock struct {
	LockfileVersion int `json:"lockfileVersion"`
	// V2/V3 format
	Packages map[string]struct {
		Version string `json:"version"`
		Dev     bool   `json:"dev"`
	} `json:"packages"`
	// V1 format
	Dependencies map[string]struct {
		Version string `json:"version"`
		Dev     bool   `json:"dev"`
	} `json:"dependencies"`
}

// Parse extracts pinned dependency identifiers from package-lock.json
// content. Lockfile entries are exact versions by construction.
func (p *PackageLockParser) Parse(path string, content []byte) ([]models.DependencyIdentifier, error) {
	var lock packageLock
	if err := json.Unmarshal(content, &lock); err != nil {
		return nil, err
	}

	var deps []models.DependencyIdentifier
	seen := make(map[string]bool)

	// V2/V3 format (packages map)
	for pkgPath, pkg := range lock.Packages {
		if pkgPath == "" {
			continue // Skip root package
		}

		// Extract package name from path like "node_modules/lodash" or
		// "node_modules/@types/node", handling nested node_modules
		name := strings.TrimPrefix(pkgPath, "node_modules/")
		if idx := strings.LastIndex(name, "node_modules/"); idx >= 0 {
			name = name[idx+len("node_modules/"):]
		}

		if name == "" || seen[name+"@"+pkg.Version] {
			continue
		}
		seen[name+"@"+pkg.Version] = true

		deps = append(deps, models.DependencyIdentifier{
			Ecosystem: "npm",
			Name:      name,
			Version:   pkg.Version,
		})
	}

	// V1 format fallback (if no packages found)
	if len(deps) == 0 {
		for name, pkg := range lock.Dependencies {
			deps = append(deps, models.DependencyIdentifier{
				Ecosystem: "npm",
				Name:      name,
				Version:   pkg.Version,
			})
		}
	}

	return deps, nil
}

// PackageJSONParser parses package.json files (direct dependencies only)
type PackageJSONParser struct{}

// CanParse returns true for package.json files
func (p *PackageJSONParser) CanParse(filename string) bool {
	return filename == "package.json"
}

// packageJSON represents the structure of package.json
type packageJSON struct {
	Dependencies    map[string]string `json:"dependencies"`
	DevDependencies map[string]string `json:"devDependencies"`
}

// Parse extracts dependency identifiers from package.json content. Range
// prefixes are stripped; what remains is only a pin when the manifest
// declared an exact version.
func (p *PackageJSONParser) Parse(path string, content []byte) ([]models.DependencyIdentifier, error) {
	var pkg packageJSON
	if err := json.Unmarshal(content, &pkg); err != nil {
		return nil, err
	}

	var deps []models.DependencyIdentifier
	for name, version := range pkg.Dependencies {
		deps = append(deps, models.DependencyIdentifier{
			Ecosystem: "npm",
			Name:      name,
			Version:   cleanNpmVersion(version),
		})
	}
	for name, version := range pkg.DevDependencies {
		deps = append(deps, models.DependencyIdentifier{
			Ecosystem: "npm",
			Name:      name,
			Version:   cleanNpmVersion(version),
		})
	}

	return deps, nil
}

// cleanNpmVersion removes version range prefixes like ^, ~, etc.
func cleanNpmVersion(version string) string {
	for _, prefix := range []string{"^", "~", ">=", ">", "<=", "<", "="} {
		if strings.HasPrefix(version, prefix) {
			return strings.TrimPrefix(version, prefix)
		}
	}
	return version
}
