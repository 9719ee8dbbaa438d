package example

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Default canonical file names of an example bundle.
const (
	DefaultScriptFile        = "script.groovy"
	DefaultDocumentationFile = "README.md"
	DefaultMetadataFile      = "meta.yaml"
)

// HiddenPrefix marks directory entries that are never examples.
const HiddenPrefix = "."

// Layout names the canonical files of a bundle. Extensions are derived from the names.
type Layout struct {
	ScriptFile        string
	DocumentationFile string
	MetadataFile      string
}

// DefaultLayout returns the Groovy example layout.
func DefaultLayout() Layout {
	return Layout{
		ScriptFile:        DefaultScriptFile,
		DocumentationFile: DefaultDocumentationFile,
		MetadataFile:      DefaultMetadataFile,
	}
}

// Validate checks that every canonical name is a plain file name with an extension.
func (l Layout) Validate() error {
	names := map[string]string{
		"script":        l.ScriptFile,
		"documentation": l.DocumentationFile,
		"metadata":      l.MetadataFile,
	}
	for kind, name := range names {
		if name == "" {
			return fmt.Errorf("%s file name is required", kind)
		}
		if strings.ContainsAny(name, `/\`) {
			return fmt.Errorf("%s file name %q must not contain a path separator", kind, name)
		}
		if filepath.Ext(name) == "" {
			return fmt.Errorf("%s file name %q must have an extension", kind, name)
		}
	}
	return nil
}

// ScriptExt returns the scripting-language extension, e.g. ".groovy".
func (l Layout) ScriptExt() string { return filepath.Ext(l.ScriptFile) }

// DocumentationExt returns the documentation extension, e.g. ".md".
func (l Layout) DocumentationExt() string { return filepath.Ext(l.DocumentationFile) }

// MetadataExt returns the metadata extension, e.g. ".yaml".
func (l Layout) MetadataExt() string { return filepath.Ext(l.MetadataFile) }

// ScriptLanguage is the fence label used when rendering scripts.
func (l Layout) ScriptLanguage() string { return strings.TrimPrefix(l.ScriptExt(), ".") }

// IsScript reports whether name carries the scripting-language extension.
func (l Layout) IsScript(name string) bool {
	return filepath.Ext(name) == l.ScriptExt()
}

// IsAuxiliary reports whether name is none of script, documentation or metadata by extension.
func (l Layout) IsAuxiliary(name string) bool {
	switch filepath.Ext(name) {
	case l.ScriptExt(), l.DocumentationExt(), l.MetadataExt():
		return false
	}
	return true
}
