package manifest

import (
	"regexp"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/Endor-Solutions-Architecture/search-dependencies/internal/models"
)

// RequirementsParser parses requirements.txt files
type RequirementsParser struct{}

// CanParse returns true for requirements.txt files
func (p *RequirementsParser) CanParse(filename string) bool {
	return filename == "requirements.txt" ||
		strings.HasSuffix(filename, "-requirements.txt") ||
		strings.HasSuffix(filename, "_requirements.txt")
}

// versionPattern matches package version specifiers like ==1.2.3, >=1.2.3, ~=1.2.3
var versionPattern = regexp.MustCompile(`^([a-zA-Z0-9_.-]+)\s*([<>=!~]+)\s*([\d.]+.*)$`)

// simplePattern matches just package names without versions
var simplePattern = regexp.MustCompile(`^([a-zA-Z0-9_.-]+)\s*$`)

// Parse extracts dependency identifiers from requirements.txt content.
// Entries without a version specifier come back with an empty Version.
func (p *RequirementsParser) Parse(path string, content []byte) ([]models.DependencyIdentifier, error) {
	var deps []models.DependencyIdentifier

	for _, line := range strings.Split(string(content), "\n") {
		line = strings.TrimSpace(line)

		// Skip empty lines, comments, and pip options
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "-") {
			continue
		}

		// Remove inline comments
		if idx := strings.Index(line, "#"); idx > 0 {
			line = strings.TrimSpace(line[:idx])
		}

		// Remove extras like [security]
		if idx := strings.Index(line, "["); idx > 0 {
			if bracketEnd := strings.Index(line, "]"); bracketEnd > idx {
				line = strings.TrimSpace(line[:idx] + line[bracketEnd+1:])
			}
		}

		name, version := parseVersionSpec(line)
		if name != "" {
			deps = append(deps, models.DependencyIdentifier{
				Ecosystem: "pypi",
				Name:      strings.ToLower(name), // PyPI is case-insensitive
				Version:   version,
			})
		}
	}

	return deps, nil
}

func parseVersionSpec(line string) (name string, version string) {
	if matches := versionPattern.FindStringSubmatch(line); matches != nil {
		return matches[1], matches[3]
	}
	if matches := simplePattern.FindStringSubmatch(line); matches != nil {
		return matches[1], ""
	}
	return "", ""
}

// PyProjectParser parses pyproject.toml files
type PyProjectParser struct{}

// CanParse returns true for pyproject.toml files
func (p *PyProjectParser) CanParse(filename string) bool {
	return filename == "pyproject.toml"
}

// pyproject represents the structure of pyproject.toml
type pyproject struct {
	Project struct {
		Dependencies []string `toml:"dependencies"`
	} `toml:"project"`
	Tool struct {
		Poetry struct {
			Dependencies map[string]interface{} `toml:"dependencies"`
		} `toml:"poetry"`
	} `toml:"tool"`
}

// Parse extracts dependency identifiers from pyproject.toml content,
// covering both PEP 621 and Poetry dependency tables.
func (p *PyProjectParser) Parse(path string, content []byte) ([]models.DependencyIdentifier, error) {
	var proj pyproject
	if err := toml.Unmarshal(content, &proj); err != nil {
		return nil, err
	}

	var deps []models.DependencyIdentifier

	for _, dep := range proj.Project.Dependencies {
		name, version := parsePEP508(dep)
		if name != "" {
			deps = append(deps, models.DependencyIdentifier{
				Ecosystem: "pypi",
				Name:      strings.ToLower(name),
				Version:   version,
			})
		}
	}

	for name, val := range proj.Tool.Poetry.Dependencies {
		if name == "python" {
			continue
		}
		deps = append(deps, models.DependencyIdentifier{
			Ecosystem: "pypi",
			Name:      strings.ToLower(name),
			Version:   extractPoetryVersion(val),
		})
	}

	return deps, nil
}

// parsePEP508 parses a PEP 508 dependency specification, e.g.
// "requests>=2.28.0", "flask[async]>=2.0", "django==4.2".
func parsePEP508(spec string) (name string, version string) {
	// Remove extras
	if idx := strings.Index(spec, "["); idx > 0 {
		if bracketEnd := strings.Index(spec, "]"); bracketEnd > idx {
			spec = spec[:idx] + spec[bracketEnd+1:]
		}
	}

	// Remove environment markers
	if idx := strings.Index(spec, ";"); idx > 0 {
		spec = spec[:idx]
	}

	return parseVersionSpec(strings.TrimSpace(spec))
}

func extractPoetryVersion(val interface{}) string {
	switch v := val.(type) {
	case string:
		return strings.TrimLeft(v, "^~")
	case map[string]interface{}:
		if ver, ok := v["version"].(string); ok {
			return strings.TrimLeft(ver, "^~")
		}
	}
	return ""
}
