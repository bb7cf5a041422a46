// Package tips holds the static preventive-health tip catalog and the
// lookup behind the get_health_tips tool.
//
// The shipped catalog is embedded at build time and parsed once during
// package init. A catalog is never mutated after construction, so lookups
// are safe from any number of concurrent callers.
package tips

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed tips.yaml
var embedded []byte

// Catalog maps a normalized condition name to its ordered tip list.
type Catalog map[string][]string

var defaultCatalog Catalog

func init() {
	c, err := Parse(embedded)
	if err != nil {
		panic(fmt.Sprintf("tips: embedded catalog: %v", err))
	}
	defaultCatalog = c
}

// Normalize converts a raw condition string into its catalog key form:
// surrounding whitespace trimmed, then lower-cased.
func Normalize(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

// Parse builds a Catalog from YAML of the form:
//
//	stress:
//	  - Take deep breathing breaks
//	  - ...
//
// Keys are normalized, so an override file may use any casing.
func Parse(data []byte) (Catalog, error) {
	var raw map[string][]string
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing tip catalog: %w", err)
	}
	c := make(Catalog, len(raw))
	for key, list := range raw {
		c[Normalize(key)] = list
	}
	return c, nil
}

// LoadFile reads and parses a YAML catalog from disk. Used when
// HEALTH_TIPS_PATH overrides the embedded catalog.
func LoadFile(path string) (Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading tip catalog: %w", err)
	}
	return Parse(data)
}

// Default returns a copy of the embedded catalog. The copy keeps callers
// from mutating the shared data.
func Default() Catalog {
	c := make(Catalog, len(defaultCatalog))
	for key, list := range defaultCatalog {
		c[key] = append([]string(nil), list...)
	}
	return c
}

// Lookup normalizes the condition and formats its tips, one per line,
// each prefixed with "- ", in catalog order with no trailing newline.
// A miss returns "No tips found for: <normalized-condition>".
func (c Catalog) Lookup(condition string) string {
	normalized := Normalize(condition)
	list := c[normalized]
	if len(list) == 0 {
		return fmt.Sprintf("No tips found for: %s", normalized)
	}
	lines := make([]string, len(list))
	for i, tip := range list {
		lines[i] = "- " + tip
	}
	return strings.Join(lines, "\n")
}

// ForCondition looks up a condition in the embedded catalog. This is the
// get_health_tips operation.
func ForCondition(condition string) string {
	return defaultCatalog.Lookup(condition)
}
