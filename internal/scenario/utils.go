package scenario

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// DefaultDir is where generated scenarios are written.
const DefaultDir = "scenarios"

// GeneratePath creates a timestamped scenario filename in dir
func GeneratePath(dir string) string {
	timestamp := time.Now().Format("2006-01-02_15-04-05")
	return filepath.Join(dir, fmt.Sprintf("scenario_%s.yaml", timestamp))
}

// FindLatest finds the most recent scenario file in dir
func FindLatest(dir string) (string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", fmt.Errorf("failed to read scenarios directory: %w", err)
	}

	type candidate struct {
		path    string
		modTime time.Time
	}
	var scenarios []candidate
	for _, entry := range entries {
		if entry.IsDir() || !isYAML(entry.Name()) {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		scenarios = append(scenarios, candidate{filepath.Join(dir, entry.Name()), info.ModTime()})
	}

	if len(scenarios) == 0 {
		return "", fmt.Errorf("no scenario files found in %s", dir)
	}

	// Newest first
	sort.Slice(scenarios, func(i, j int) bool {
		return scenarios[i].modTime.After(scenarios[j].modTime)
	})

	return scenarios[0].path, nil
}

func isYAML(name string) bool {
	return strings.HasSuffix(name, ".yaml") || strings.HasSuffix(name, ".yml")
}
