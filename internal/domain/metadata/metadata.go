// Package metadata parses the per-example YAML metadata document.
package metadata

import (
	"bytes"
	"errors"
	"fmt"
	"slices"

	"gopkg.in/yaml.v3"
)

// UnknownAuthor is reported when the document names no author.
const UnknownAuthor = "Unknown"

// ErrInvalidTags signals a tags value that is not a sequence.
var ErrInvalidTags = errors.New("tags must be a sequence")

// Metadata is the parsed metadata document (immutable value object).
type Metadata struct {
	author string
	tags   []string
	fields map[string]any
}

// Result pairs a metadata value with the diagnostic raised while loading it.
// Warning is never an error for the caller: Metadata is always usable.
type Result struct {
	Metadata Metadata
	Warning  error
}

// Default returns metadata with author "Unknown" and no tags.
func Default() Metadata {
	return Metadata{author: UnknownAuthor}
}

// Parse decodes a YAML mapping. On any error it returns Default() alongside the error.
// An empty document yields Default() and no error.
func Parse(data []byte) (Metadata, error) {
	var fields map[string]any
	if err := yaml.Unmarshal(data, &fields); err != nil {
		return Default(), fmt.Errorf("parse metadata: %w", err)
	}
	if len(fields) == 0 {
		return Default(), nil
	}

	m := Metadata{author: UnknownAuthor, fields: fields}

	switch v := fields["author"].(type) {
	case nil:
	case string:
		m.author = v
	default:
		m.author = fmt.Sprint(v)
	}

	switch v := fields["tags"].(type) {
	case nil:
	case []any:
		m.tags = make([]string, 0, len(v))
		for _, t := range v {
			if s, ok := t.(string); ok {
				m.tags = append(m.tags, s)
				continue
			}
			m.tags = append(m.tags, fmt.Sprint(t))
		}
	default:
		return Default(), fmt.Errorf("parse metadata: %w, got %T", ErrInvalidTags, v)
	}

	return m, nil
}

// Author returns the declared author or "Unknown".
func (m Metadata) Author() string { return m.author }

// Tags returns the declared tags in document order.
func (m Metadata) Tags() []string { return slices.Clone(m.tags) }

// HasTag reports exact, case-sensitive membership of tag.
func (m Metadata) HasTag(tag string) bool { return slices.Contains(m.tags, tag) }

// IsEmpty reports whether the document declared no keys at all.
func (m Metadata) IsEmpty() bool { return len(m.fields) == 0 }

// Canonical re-serializes the whole document as YAML with keys in sorted order.
// Returns "" for empty metadata.
func (m Metadata) Canonical() (string, error) {
	if m.IsEmpty() {
		return "", nil
	}
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(m.fields); err != nil {
		return "", fmt.Errorf("encode metadata: %w", err)
	}
	if err := enc.Close(); err != nil {
		return "", fmt.Errorf("encode metadata: %w", err)
	}
	return buf.String(), nil
}
