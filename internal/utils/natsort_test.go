package utils

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNaturalLess(t *testing.T) {
	cases := []struct {
		a, b string
		want bool
	}{
		{"2", "10A", true},
		{"10A", "2", false},
		{"10A", "10B", true},
		{"1A", "1A", false},
		{"A1", "A2", true},
		{"B1", "A2", false},
		{"1", "1A", true},
		{"RDC", "RDC", false},
		{"e1", "E2", true}, // case-insensitive
		{"7", "007A", true}, // fewer leading zeros first on equal value
		{"007", "7A", false},
	}

	for _, tc := range cases {
		require.Equal(t, tc.want, NaturalLess(tc.a, tc.b), "NaturalLess(%q, %q)", tc.a, tc.b)
	}
}

func TestNaturalLessSortsUnitNumbers(t *testing.T) {
	numbers := []string{"10B", "2", "RDC", "10A", "1A", "E1"}
	sort.Slice(numbers, func(i, j int) bool { return NaturalLess(numbers[i], numbers[j]) })
	require.Equal(t, []string{"1A", "2", "10A", "10B", "E1", "RDC"}, numbers)
}
