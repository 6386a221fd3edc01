package defaults

import (
	"regexp"
	"strings"
)

var (
	projectEqPattern = regexp.MustCompile(`(?i)\bproject\s*=\s*["']?([A-Za-z][A-Za-z0-9_]*)["']?`)
	projectInPattern = regexp.MustCompile(`(?i)\bproject\s+in\s*\(([^)]*)\)`)
)

// ExtractProjectKeys pulls project keys from a JQL filter expression via the
// "project = KEY" and "project IN (KEY, ...)" patterns. Keys absent from the
// known set are dropped silently; duplicates collapse, first occurrence wins.
func ExtractProjectKeys(expr string, known map[string]bool) []string {
	if strings.TrimSpace(expr) == "" {
		return nil
	}

	var raw []string
	for _, m := range projectEqPattern.FindAllStringSubmatch(expr, -1) {
		raw = append(raw, m[1])
	}
	for _, m := range projectInPattern.FindAllStringSubmatch(expr, -1) {
		for _, part := range strings.Split(m[1], ",") {
			raw = append(raw, strings.Trim(strings.TrimSpace(part), `"'`))
		}
	}

	var keys []string
	seen := make(map[string]bool)
	for _, key := range raw {
		upper := strings.ToUpper(key)
		if upper == "" || seen[upper] || !known[upper] {
			continue
		}
		seen[upper] = true
		keys = append(keys, upper)
	}
	return keys
}
