// Package analysis extracts surface lexical signals from script text.
// Extraction is line-based pattern matching; nothing is parsed.
package analysis

import (
	"slices"
	"strings"
)

const (
	importKeyword   = "import "
	functionKeyword = "def "
)

// Report is the analysis of one script.
type Report struct {
	example   string
	script    string
	imports   []string
	functions []string
	concepts  []Concept
	lineCount int
}

// Analyze runs every extraction rule over content.
func Analyze(example, script, content string) Report {
	lines := strings.Split(content, "\n")
	return Report{
		example:   example,
		script:    script,
		imports:   importLines(lines),
		functions: functionLines(lines),
		concepts:  DetectConcepts(content),
		lineCount: len(lines),
	}
}

// Imports returns the trimmed import-like lines of content, in order.
func Imports(content string) []string {
	return importLines(strings.Split(content, "\n"))
}

func importLines(lines []string) []string {
	var out []string
	for _, l := range lines {
		trimmed := strings.TrimSpace(l)
		if strings.HasPrefix(trimmed, importKeyword) {
			out = append(out, trimmed)
		}
	}
	return out
}

// A line is function-like when it holds both markers, in any order.
func functionLines(lines []string) []string {
	var out []string
	for _, l := range lines {
		if strings.Contains(l, functionKeyword) && strings.Contains(l, "(") {
			out = append(out, strings.TrimSpace(l))
		}
	}
	return out
}

// Example returns the analyzed example identifier.
func (r Report) Example() string { return r.example }

// Script returns the analyzed file name.
func (r Report) Script() string { return r.script }

// Imports returns the import-like lines.
func (r Report) Imports() []string { return slices.Clone(r.imports) }

// Functions returns the function-like lines.
func (r Report) Functions() []string { return slices.Clone(r.functions) }

// Concepts returns detected concepts in catalog order.
func (r Report) Concepts() []Concept { return slices.Clone(r.concepts) }

// LineCount is the number of newline-delimited segments, including a trailing empty one.
func (r Report) LineCount() int { return r.lineCount }

// ImportCount returns len(Imports()).
func (r Report) ImportCount() int { return len(r.imports) }

// FunctionCount returns len(Functions()).
func (r Report) FunctionCount() int { return len(r.functions) }
