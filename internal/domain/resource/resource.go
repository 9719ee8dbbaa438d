// Package resource describes the raw files of an example exposed to catalog consumers.
package resource

import (
	"fmt"
	"strings"

	"github.com/kailas-cloud/scriptdex/internal/domain"
)

// Kind is the artifact type of a resource.
type Kind string

// Resource kinds, in enumeration order.
const (
	Script        Kind = "script"
	Documentation Kind = "documentation"
	Metadata      Kind = "metadata"
)

// DefaultScheme prefixes resource URIs.
const DefaultScheme = "groovy"

// aliases accepts the short kind names used in older resource URIs.
var aliases = map[string]Kind{
	"readme": Documentation,
	"meta":   Metadata,
}

// IsValid checks if the kind is supported.
func (k Kind) IsValid() bool {
	return k == Script || k == Documentation || k == Metadata
}

// ParseKind resolves a kind name or alias.
func ParseKind(s string) (Kind, error) {
	if k := Kind(s); k.IsValid() {
		return k, nil
	}
	if k, ok := aliases[s]; ok {
		return k, nil
	}
	return "", fmt.Errorf("%w: unknown kind %q", domain.ErrInvalidResource, s)
}

// Resource is one catalog entry.
type Resource struct {
	Example     string
	Kind        Kind
	URI         string
	Name        string
	Description string
	MIMEType    string
}

// New builds the catalog entry for kind of example.
func New(scheme, example string, kind Kind, language string) Resource {
	r := Resource{
		Example: example,
		Kind:    kind,
		URI:     URI(scheme, example, kind),
	}
	switch kind {
	case Script:
		r.Name = example + " - Script"
		r.Description = fmt.Sprintf("%s script for %s", titleCase(language), example)
		r.MIMEType = "text/x-" + language
	case Documentation:
		r.Name = example + " - Documentation"
		r.Description = "Documentation for " + example
		r.MIMEType = "text/markdown"
	case Metadata:
		r.Name = example + " - Metadata"
		r.Description = "Metadata for " + example
		r.MIMEType = "application/yaml"
	}
	return r
}

// URI formats <scheme>://examples/<example>/<kind>.
func URI(scheme, example string, kind Kind) string {
	return fmt.Sprintf("%s://examples/%s/%s", scheme, example, kind)
}

// ParseURI splits a resource URI into example and kind.
func ParseURI(scheme, uri string) (string, Kind, error) {
	prefix := scheme + "://examples/"
	rest, ok := strings.CutPrefix(uri, prefix)
	if !ok {
		return "", "", fmt.Errorf("%w: unknown resource %q", domain.ErrInvalidResource, uri)
	}
	parts := strings.Split(rest, "/")
	if len(parts) != 2 || parts[0] == "" {
		return "", "", fmt.Errorf("%w: malformed resource uri %q", domain.ErrInvalidResource, uri)
	}
	kind, err := ParseKind(parts[1])
	if err != nil {
		return "", "", err
	}
	return parts[0], kind, nil
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
