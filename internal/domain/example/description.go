package example

import "strings"

// Describe returns the one-line description of a documentation text:
// its first non-empty line with leading '#' and whitespace stripped.
// A heading marker alone on that line gives an empty description.
func Describe(documentation string) string {
	for _, line := range strings.Split(documentation, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		return strings.TrimSpace(strings.TrimLeft(line, "# \t"))
	}
	return ""
}
