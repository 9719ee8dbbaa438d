package diff

import (
	"slices"
	"testing"
)

func TestCompute_Partition(t *testing.T) {
	left := []string{"script.groovy", "README.md", "input.xml", "meta.yaml"}
	right := []string{"script.groovy", "README.md", "input.csv"}

	s := Compute(left, right)

	if !slices.Equal(s.Common, []string{"README.md", "script.groovy"}) {
		t.Errorf("Common = %v", s.Common)
	}
	if !slices.Equal(s.LeftOnly, []string{"input.xml", "meta.yaml"}) {
		t.Errorf("LeftOnly = %v", s.LeftOnly)
	}
	if !slices.Equal(s.RightOnly, []string{"input.csv"}) {
		t.Errorf("RightOnly = %v", s.RightOnly)
	}
}

func TestCompute_DisjointAndCovering(t *testing.T) {
	left := []string{"a", "b", "c", "c"}
	right := []string{"c", "d", "a"}

	s := Compute(left, right)

	seen := map[string]int{}
	for _, group := range [][]string{s.Common, s.LeftOnly, s.RightOnly} {
		for _, v := range group {
			seen[v]++
		}
	}
	for v, n := range seen {
		if n != 1 {
			t.Errorf("%q appears in %d groups, want 1", v, n)
		}
	}
	union := []string{"a", "b", "c", "d"}
	for _, v := range union {
		if seen[v] == 0 {
			t.Errorf("%q missing from partition", v)
		}
	}
	if len(seen) != len(union) {
		t.Errorf("partition has %d members, want %d", len(seen), len(union))
	}
}

func TestCompute_Self(t *testing.T) {
	files := []string{"z", "a", "m"}
	s := Compute(files, files)

	if !slices.Equal(s.Common, []string{"a", "m", "z"}) {
		t.Errorf("Common = %v", s.Common)
	}
	if len(s.LeftOnly) != 0 || len(s.RightOnly) != 0 {
		t.Errorf("expected empty directional sets, got %v / %v", s.LeftOnly, s.RightOnly)
	}
}

func TestCompute_Empty(t *testing.T) {
	s := Compute(nil, nil)
	if len(s.Common)+len(s.LeftOnly)+len(s.RightOnly) != 0 {
		t.Errorf("expected empty partition, got %+v", s)
	}
}

func TestReport_HasImports(t *testing.T) {
	if (Report{}).HasImports() {
		t.Error("zero report must not have imports")
	}
	if !(Report{Imports: &Sets{}}).HasImports() {
		t.Error("expected HasImports with non-nil sets")
	}
}
