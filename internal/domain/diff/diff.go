// Package diff computes set differences between two example bundles.
package diff

import (
	"slices"
)

// Sets is the three-way partition of two string sets. Every slice is sorted and duplicate-free.
type Sets struct {
	Common    []string
	LeftOnly  []string
	RightOnly []string
}

// Compute partitions left and right into common, left-only and right-only members.
func Compute(left, right []string) Sets {
	l := toSet(left)
	r := toSet(right)

	var s Sets
	for v := range l {
		if _, ok := r[v]; ok {
			s.Common = append(s.Common, v)
		} else {
			s.LeftOnly = append(s.LeftOnly, v)
		}
	}
	for v := range r {
		if _, ok := l[v]; !ok {
			s.RightOnly = append(s.RightOnly, v)
		}
	}
	slices.Sort(s.Common)
	slices.Sort(s.LeftOnly)
	slices.Sort(s.RightOnly)
	return s
}

func toSet(values []string) map[string]struct{} {
	m := make(map[string]struct{}, len(values))
	for _, v := range values {
		m[v] = struct{}{}
	}
	return m
}

// Report compares two examples. Imports is nil when either side lacks a canonical script.
type Report struct {
	Left    string
	Right   string
	Files   Sets
	Imports *Sets
}

// HasImports reports whether the import comparison was computed.
func (r Report) HasImports() bool { return r.Imports != nil }
