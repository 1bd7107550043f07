// Package strain discovers the set of strains under the annotation
// base directory and keeps their order stable.
package strain

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Strain information.
type Strain struct {
	Name    string // annotation directory name, used as column label.
	Path    string // annotation directory path.
	FaaPath string // translated protein (.faa) file, empty if none found.
}

// Directory name prefixes recognized as pipeline outputs
// rather than per-strain annotations.
var outputPrefixes = []string{"roary", "snippy", "core"}

// Collect lists the per-strain annotation directories under base.
// Directories produced by the pan-genome or variant-calling steps are
// skipped. The result is ordered alphabetically by directory name;
// the column order of every downstream table derives from it.
func Collect(base string) ([]Strain, error) {
	entries, err := os.ReadDir(base)
	if err != nil {
		return nil, fmt.Errorf("strain: read %s: %v", base, err)
	}

	// os.ReadDir returns entries sorted by name.
	strains := []Strain{}
	for _, e := range entries {
		if !e.IsDir() || isOutputDir(e.Name()) {
			continue
		}
		s := Strain{
			Name: e.Name(),
			Path: filepath.Join(base, e.Name()),
		}
		s.FaaPath = findFaa(s.Path)
		strains = append(strains, s)
	}

	return strains, nil
}

// Names returns the strain names in collection order.
func Names(strains []Strain) []string {
	names := make([]string, len(strains))
	for i, s := range strains {
		names[i] = s.Name
	}

	return names
}

func isOutputDir(name string) bool {
	lower := strings.ToLower(name)
	for _, p := range outputPrefixes {
		if strings.HasPrefix(lower, p) {
			return true
		}
	}

	return false
}

// findFaa returns the first .faa file in dir, or empty.
func findFaa(dir string) string {
	matches, err := filepath.Glob(filepath.Join(dir, "*.faa"))
	if err != nil || len(matches) == 0 {
		return ""
	}

	return matches[0]
}
