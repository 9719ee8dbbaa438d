// Package example models one bundle directory of the corpus.
package example

import (
	"fmt"
	"slices"
	"strings"
)

// Example is a discovered bundle (immutable value object).
// Identity is the directory name; files are the direct regular files, sorted by name.
type Example struct {
	name   string
	files  []string
	layout Layout
}

// ValidateName checks that name can identify a directory directly under the corpus root.
func ValidateName(name string) error {
	if name == "" {
		return fmt.Errorf("example name is required")
	}
	if name == "." || name == ".." {
		return fmt.Errorf("example name %q is not a directory name", name)
	}
	if strings.ContainsAny(name, `/\`) {
		return fmt.Errorf("example name %q must not contain a path separator", name)
	}
	if strings.HasPrefix(name, HiddenPrefix) {
		return fmt.Errorf("example name %q is hidden", name)
	}
	return nil
}

// New validates and creates an Example. files is copied and sorted.
func New(name string, files []string, layout Layout) (Example, error) {
	if err := ValidateName(name); err != nil {
		return Example{}, err
	}
	sorted := slices.Clone(files)
	slices.Sort(sorted)
	return Example{name: name, files: slices.Compact(sorted), layout: layout}, nil
}

// Name returns the example identifier.
func (e Example) Name() string { return e.name }

// Files returns all direct file names, sorted.
func (e Example) Files() []string { return slices.Clone(e.files) }

// Layout returns the layout the example was classified with.
func (e Example) Layout() Layout { return e.layout }

// HasFile reports whether the example directory holds a file called name.
func (e Example) HasFile(name string) bool {
	_, ok := slices.BinarySearch(e.files, name)
	return ok
}

// HasCanonicalScript reports whether the canonical script file is present.
func (e Example) HasCanonicalScript() bool { return e.HasFile(e.layout.ScriptFile) }

// HasDocumentation reports whether the canonical documentation file is present.
func (e Example) HasDocumentation() bool { return e.HasFile(e.layout.DocumentationFile) }

// HasMetadata reports whether the canonical metadata file is present.
func (e Example) HasMetadata() bool { return e.HasFile(e.layout.MetadataFile) }

// ScriptFiles returns every file with the script extension, sorted.
func (e Example) ScriptFiles() []string {
	var out []string
	for _, f := range e.files {
		if e.layout.IsScript(f) {
			out = append(out, f)
		}
	}
	return out
}

// IsBundle reports whether the directory holds any script-like file.
func (e Example) IsBundle() bool { return len(e.ScriptFiles()) > 0 }

// Script resolves the primary script: the canonical file, else the first script-extension file.
// fallback is true when the canonical file was absent.
func (e Example) Script() (name string, fallback bool, ok bool) {
	if e.HasCanonicalScript() {
		return e.layout.ScriptFile, false, true
	}
	scripts := e.ScriptFiles()
	if len(scripts) == 0 {
		return "", false, false
	}
	return scripts[0], true, true
}

// AuxiliaryFiles returns files that are neither script, documentation nor metadata by extension.
func (e Example) AuxiliaryFiles() []string {
	var out []string
	for _, f := range e.files {
		if e.layout.IsAuxiliary(f) {
			out = append(out, f)
		}
	}
	return out
}
