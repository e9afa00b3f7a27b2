package set

import (
	"sort"
	"testing"
)

func sorted(s *Set[string]) []string {
	out := s.ToSlice()
	sort.Strings(out)
	return out
}

func TestFromSliceDeduplicates(t *testing.T) {
	s := FromSlice([]string{"a", "b", "a"})
	if s.Size() != 2 {
		t.Fatalf("Size() = %d, want 2", s.Size())
	}
	if !s.Contains("a") || !s.Contains("b") {
		t.Errorf("expected a and b in %v", sorted(s))
	}
}

func TestDifference(t *testing.T) {
	tests := []struct {
		name  string
		left  []string
		right []string
		want  []string
	}{
		{"disjoint", []string{"a"}, []string{"b"}, []string{"a"}},
		{"overlap", []string{"a", "b"}, []string{"b", "c"}, []string{"a"}},
		{"subset", []string{"a"}, []string{"a", "b"}, []string{}},
		{"empty left", nil, []string{"a"}, []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := sorted(FromSlice(tt.left).Difference(FromSlice(tt.right)))
			if len(got) != len(tt.want) {
				t.Fatalf("Difference() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("Difference() = %v, want %v", got, tt.want)
				}
			}
		})
	}
}

func TestUnionAndIntersection(t *testing.T) {
	a := FromSlice([]string{"a", "b"})
	b := FromSlice([]string{"b", "c"})

	if got := sorted(a.Union(b)); len(got) != 3 {
		t.Errorf("Union() = %v", got)
	}
	if got := sorted(a.Intersection(b)); len(got) != 1 || got[0] != "b" {
		t.Errorf("Intersection() = %v", got)
	}
}

func TestEqual(t *testing.T) {
	if !FromSlice([]string{"a", "b"}).Equal(FromSlice([]string{"b", "a"})) {
		t.Error("expected sets to be equal")
	}
	if FromSlice([]string{"a"}).Equal(FromSlice([]string{"b"})) {
		t.Error("expected sets to differ")
	}
	var empty *Set[string]
	if !empty.Equal(New[string]()) {
		t.Error("nil set should equal empty set")
	}
}
