package services

import "testing"

func TestOverallQualityScore(t *testing.T) {
	cases := []struct {
		r, g, rel, acc int
		want           int
	}{
		{80, 90, 70, 100, 85},
		{0, 0, 0, 0, 0},
		{100, 100, 100, 100, 100},
		{50, 50, 50, 51, 50},
	}
	for _, tc := range cases {
		if got := overallQualityScore(tc.r, tc.g, tc.rel, tc.acc); got != tc.want {
			t.Fatalf("overallQualityScore(%d, %d, %d, %d) = %d, want %d", tc.r, tc.g, tc.rel, tc.acc, got, tc.want)
		}
	}
}
