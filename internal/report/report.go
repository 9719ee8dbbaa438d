// Package report formats query results as markdown documents.
// Every formatter builds the complete text in memory; output is deterministic for equal input.
package report

import (
	"fmt"
	"strings"

	"github.com/kailas-cloud/scriptdex/internal/domain/analysis"
	"github.com/kailas-cloud/scriptdex/internal/domain/diff"
	"github.com/kailas-cloud/scriptdex/internal/domain/search/match"
	"github.com/kailas-cloud/scriptdex/internal/usecase/catalog"
)

// DefaultTitle heads the example listing.
const DefaultTitle = "SAP CPI Groovy Examples"

// None marks an empty set.
const None = "None"

// Listing renders the example listing. tag is echoed when non-empty.
func Listing(title, tag string, entries []catalog.Entry) string {
	if title == "" {
		title = DefaultTitle
	}
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", title)
	if tag != "" {
		fmt.Fprintf(&b, "Filtered by tag: **%s**\n\n", tag)
	}
	for _, e := range entries {
		fmt.Fprintf(&b, "## %s\n", e.Name)
		if e.Description != "" {
			fmt.Fprintf(&b, "%s\n", e.Description)
		}
		fmt.Fprintf(&b, "- **Author:** %s\n", e.Author)
		if len(e.Tags) > 0 {
			fmt.Fprintf(&b, "- **Tags:** %s\n", strings.Join(e.Tags, ", "))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// Bundle renders one example: documentation, metadata, scripts, then auxiliary files.
func Bundle(bundle catalog.Bundle) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", bundle.Name)

	if bundle.HasDocumentation {
		fmt.Fprintf(&b, "## Documentation\n\n%s\n\n", bundle.Documentation)
	}
	if bundle.Metadata != "" {
		fmt.Fprintf(&b, "## Metadata\n\n```yaml\n%s```\n\n", bundle.Metadata)
	}

	heading := languageTitle(bundle.Language) + " Script"
	for _, s := range bundle.Scripts {
		if s.File == "" {
			fmt.Fprintf(&b, "## %s\n\n", heading)
		} else {
			fmt.Fprintf(&b, "## %s: %s\n\n", heading, s.File)
		}
		fmt.Fprintf(&b, "```%s\n%s\n```\n\n", bundle.Language, s.Content)
	}

	b.WriteString("## Files\n\n")
	if len(bundle.Files) == 0 {
		b.WriteString(None + "\n")
	}
	for _, f := range bundle.Files {
		fmt.Fprintf(&b, "- `%s`\n", f)
	}
	return b.String()
}

// NoMatches is the whole report when a search finds nothing.
func NoMatches(query string) string {
	return fmt.Sprintf("No examples found matching '%s'", query)
}

// Search renders search results, or the NoMatches sentinel.
func Search(query string, matches []match.Match) string {
	if len(matches) == 0 {
		return NoMatches(query)
	}
	var b strings.Builder
	fmt.Fprintf(&b, "# Search Results for '%s'\n\n", query)
	fmt.Fprintf(&b, "Found %d example(s):\n\n", len(matches))
	for _, m := range matches {
		locs := m.Locations()
		names := make([]string, len(locs))
		for i, l := range locs {
			names[i] = string(l)
		}
		fmt.Fprintf(&b, "## %s\n", m.Example())
		fmt.Fprintf(&b, "Matches in: %s\n\n", strings.Join(names, ", "))
	}
	return b.String()
}

// Analysis renders a script analysis.
func Analysis(r analysis.Report) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Script Analysis: %s\n\n", r.Example())

	b.WriteString("## Imports\n\n")
	writeCodeList(&b, r.Imports(), "No imports found.")

	b.WriteString("## Functions\n\n")
	writeCodeList(&b, r.Functions(), "No functions found.")

	b.WriteString("## Key Concepts\n\n")
	concepts := r.Concepts()
	if len(concepts) == 0 {
		b.WriteString("No specific concepts identified.\n")
	}
	for _, c := range concepts {
		fmt.Fprintf(&b, "- %s\n", c)
	}
	b.WriteString("\n")

	b.WriteString("## Statistics\n\n")
	fmt.Fprintf(&b, "- Script file: `%s`\n", r.Script())
	fmt.Fprintf(&b, "- Lines of code: %d\n", r.LineCount())
	fmt.Fprintf(&b, "- Import statements: %d\n", r.ImportCount())
	fmt.Fprintf(&b, "- Functions: %d\n", r.FunctionCount())
	return b.String()
}

// Diff renders a comparison. The imports section is present only when it was computed.
func Diff(r diff.Report) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Comparing Examples: %s vs %s\n\n", r.Left, r.Right)

	b.WriteString("## File Structure\n\n")
	writeSets(&b, r, r.Files, "Common files", "%s")

	if r.HasImports() {
		b.WriteString("## Imports Comparison\n\n")
		writeSets(&b, r, *r.Imports, "Common imports", "`%s`")
	}
	return b.String()
}

func writeSets(b *strings.Builder, r diff.Report, s diff.Sets, commonTitle, itemFormat string) {
	writeSet(b, commonTitle, s.Common, itemFormat)
	writeSet(b, "Only in "+r.Left, s.LeftOnly, itemFormat)
	writeSet(b, "Only in "+r.Right, s.RightOnly, itemFormat)
}

func writeSet(b *strings.Builder, title string, items []string, itemFormat string) {
	fmt.Fprintf(b, "### %s\n", title)
	if len(items) == 0 {
		b.WriteString(None + "\n")
	}
	for _, it := range items {
		fmt.Fprintf(b, "- "+itemFormat+"\n", it)
	}
	b.WriteString("\n")
}

func writeCodeList(b *strings.Builder, items []string, empty string) {
	if len(items) == 0 {
		b.WriteString(empty + "\n")
	}
	for _, it := range items {
		fmt.Fprintf(b, "- `%s`\n", it)
	}
	b.WriteString("\n")
}

func languageTitle(lang string) string {
	if lang == "" {
		return ""
	}
	return strings.ToUpper(lang[:1]) + lang[1:]
}
