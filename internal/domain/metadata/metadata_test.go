package metadata

import (
	"errors"
	"slices"
	"testing"
)

func TestParse_AuthorAndTags(t *testing.T) {
	m, err := Parse([]byte("author: Jane Doe\ntags: [beginner, xml]\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.Author() != "Jane Doe" {
		t.Errorf("Author() = %q", m.Author())
	}
	if !slices.Equal(m.Tags(), []string{"beginner", "xml"}) {
		t.Errorf("Tags() = %v", m.Tags())
	}
	if !m.HasTag("beginner") {
		t.Error("expected HasTag(beginner)")
	}
	if m.HasTag("Beginner") {
		t.Error("tag match must be case-sensitive")
	}
	if m.HasTag("begin") {
		t.Error("tag match must be exact")
	}
}

func TestParse_MissingKeysDefault(t *testing.T) {
	m, err := Parse([]byte("title: Payload logging\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.Author() != UnknownAuthor {
		t.Errorf("Author() = %q, want %q", m.Author(), UnknownAuthor)
	}
	if len(m.Tags()) != 0 {
		t.Errorf("Tags() = %v, want empty", m.Tags())
	}
	if m.IsEmpty() {
		t.Error("document with keys must not be empty")
	}
}

func TestParse_Malformed(t *testing.T) {
	m, err := Parse([]byte("author: [unterminated\n  tags: :::\n"))
	if err == nil {
		t.Fatal("expected parse error")
	}
	if m.Author() != UnknownAuthor || len(m.Tags()) != 0 {
		t.Errorf("expected default metadata on error, got author=%q tags=%v", m.Author(), m.Tags())
	}
}

func TestParse_NotAMapping(t *testing.T) {
	_, err := Parse([]byte("- just\n- a list\n"))
	if err == nil {
		t.Fatal("expected error for sequence document")
	}
}

func TestParse_ScalarTags(t *testing.T) {
	m, err := Parse([]byte("author: A\ntags: beginner\n"))
	if !errors.Is(err, ErrInvalidTags) {
		t.Fatalf("err = %v, want ErrInvalidTags", err)
	}
	if m.Author() != UnknownAuthor {
		t.Errorf("expected default on invalid tags, got author %q", m.Author())
	}
}

func TestParse_NonStringValues(t *testing.T) {
	m, err := Parse([]byte("author: 42\ntags: [1, true]\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.Author() != "42" {
		t.Errorf("Author() = %q", m.Author())
	}
	if !slices.Equal(m.Tags(), []string{"1", "true"}) {
		t.Errorf("Tags() = %v", m.Tags())
	}
}

func TestParse_Empty(t *testing.T) {
	m, err := Parse([]byte("   \n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !m.IsEmpty() {
		t.Error("expected empty metadata")
	}
	out, err := m.Canonical()
	if err != nil || out != "" {
		t.Errorf("Canonical() = (%q, %v), want empty", out, err)
	}
}

func TestCanonical_SortedKeys(t *testing.T) {
	m, err := Parse([]byte("tags:\n- beginner\nauthor: Jane\ndescription: Logs payload\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out, err := m.Canonical()
	if err != nil {
		t.Fatalf("Canonical: %v", err)
	}
	want := "author: Jane\ndescription: Logs payload\ntags:\n  - beginner\n"
	if out != want {
		t.Errorf("Canonical() =\n%q\nwant\n%q", out, want)
	}
}
