package imports

import (
	"testing"

	"github.com/onyxlang/hdrgen/internal/testutil"
)

func TestCompareNatives(t *testing.T) {
	tests := []struct {
		a, b string
		want int // sign
	}{
		{"Alpha", "Beta", -1},
		{"Beta", "Alpha", 1},
		{"Alpha", "Alpha", 0},
		{"CoreGraphics", "Foundation", -1},
	}
	for _, tt := range tests {
		got := Compare(Native(tt.a), Native(tt.b))
		if sign(got) != tt.want {
			t.Errorf("Compare(%s, %s) = %d, want sign %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestCompareNativeAgainstForeign(t *testing.T) {
	// The foreign submodule's top-level component decides.
	testutil.Equal(t, -1, sign(Compare(Foreign("Alpha", "Sub"), Native("Zeta"))))
	testutil.Equal(t, 1, sign(Compare(Native("Zeta"), Foreign("Alpha", "Sub"))))
	testutil.Equal(t, 1, sign(Compare(Foreign("Zeta", "Sub"), Native("Alpha"))))

	// Equal top-level names still order strictly: a submodule's full
	// path can never equal a native module's name.
	testutil.Equal(t, 1, sign(Compare(Foreign("Alpha", "Sub"), Native("Alpha"))))
	testutil.Equal(t, -1, sign(Compare(Native("Alpha"), Foreign("Alpha", "Sub"))))
}

func TestCompareForeigns(t *testing.T) {
	tests := []struct {
		a, b []string
		want int
	}{
		{[]string{"Alpha", "Sub"}, []string{"Beta", "Sub"}, -1},
		{[]string{"Alpha", "A"}, []string{"Alpha", "B"}, -1},
		{[]string{"Alpha", "B"}, []string{"Alpha", "A"}, 1},
		{[]string{"Alpha", "Sub"}, []string{"Alpha", "Sub", "Leaf"}, -1},
		{[]string{"Alpha", "Sub", "Leaf"}, []string{"Alpha", "Sub"}, 1},
	}
	for _, tt := range tests {
		got := Compare(Foreign(tt.a...), Foreign(tt.b...))
		if sign(got) != tt.want {
			t.Errorf("Compare(%v, %v) = %d, want sign %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestCompareEqualForeignPathsPanics(t *testing.T) {
	// Distinct foreign submodules sharing a canonical path means the
	// upstream declaration data is inconsistent.
	testutil.Panics(t, func() {
		Compare(Foreign("Alpha", "Sub"), Foreign("Alpha", "Sub"))
	})
}

func TestForeignRequiresSubmodulePath(t *testing.T) {
	testutil.Panics(t, func() { Foreign("TopLevel") })
	testutil.Panics(t, func() { Foreign() })
}

func TestSetDeduplicates(t *testing.T) {
	s := NewSet()
	s.Add(Native("Foundation"))
	s.Add(Native("Foundation"))
	s.Add(Foreign("os", "log"))
	s.Add(Foreign("os", "log"))
	testutil.Equal(t, 2, s.Len())
}

func TestSetForeignDoesNotCollapseIntoNative(t *testing.T) {
	s := NewSet()
	s.Add(Native("os.log")) // pathological native name
	s.Add(Foreign("os", "log"))
	testutil.Equal(t, 2, s.Len())
}

func TestSortedOrdering(t *testing.T) {
	s := NewSet()
	s.Add(Native("Beta"))
	s.Add(Native("Alpha"))
	s.Add(Native("Gamma"))

	got := s.Sorted()
	testutil.Len(t, got, 3)
	testutil.Equal(t, "Alpha", got[0].Name())
	testutil.Equal(t, "Beta", got[1].Name())
	testutil.Equal(t, "Gamma", got[2].Name())
}

func TestSortedMixedOrdering(t *testing.T) {
	s := NewSet()
	s.Add(Native("Zeta"))
	s.Add(Foreign("Alpha", "Sub"))
	s.Add(Native("Middle"))
	s.Add(Foreign("Alpha", "Other"))

	got := s.Sorted()
	testutil.Len(t, got, 4)
	testutil.Equal(t, "Alpha.Other", got[0].CanonicalName())
	testutil.Equal(t, "Alpha.Sub", got[1].CanonicalName())
	testutil.Equal(t, "Middle", got[2].CanonicalName())
	testutil.Equal(t, "Zeta", got[3].CanonicalName())
}

func TestSortedIsDeterministic(t *testing.T) {
	build := func() []Module {
		s := NewSet()
		s.Add(Foreign("B", "x"))
		s.Add(Native("C"))
		s.Add(Native("A"))
		s.Add(Foreign("A", "y"))
		return s.Sorted()
	}
	first := build()
	for i := 0; i < 10; i++ {
		again := build()
		testutil.Len(t, again, len(first))
		for i := range first {
			testutil.Equal(t, first[i].CanonicalName(), again[i].CanonicalName())
		}
	}
}

func TestTopLevelName(t *testing.T) {
	testutil.Equal(t, "Foundation", Native("Foundation").TopLevelName())
	testutil.Equal(t, "os", Foreign("os", "log").TopLevelName())
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	default:
		return 0
	}
}
