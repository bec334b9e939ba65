package testutil

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

// RequireSliceNearlyEqual fails t if got and want differ in length or if
// any element pair exceeds eps (absolute tolerance).
func RequireSliceNearlyEqual(t testing.TB, got, want []float64, eps float64) {
	t.Helper()
	require.Len(t, got, len(want), "length mismatch")
	for i := range got {
		require.InDeltaf(t, want[i], got[i], eps, "index %d", i)
	}
}

// RequireRowsNearlyEqual applies RequireSliceNearlyEqual row by row.
func RequireRowsNearlyEqual(t testing.TB, got, want [][]float64, eps float64) {
	t.Helper()
	require.Len(t, got, len(want), "row count mismatch")
	for r := range got {
		require.Lenf(t, got[r], len(want[r]), "row %d length mismatch", r)
		for i := range got[r] {
			require.InDeltaf(t, want[r][i], got[r][i], eps, "row %d index %d", r, i)
		}
	}
}

// RequireFinite fails t if any element is NaN or Inf.
func RequireFinite(t testing.TB, data []float64) {
	t.Helper()
	for i, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("index %d: non-finite value %v", i, v)
		}
	}
}

// Column extracts column j of a row-major matrix.
func Column(rows [][]float64, j int) []float64 {
	out := make([]float64, len(rows))
	for i, row := range rows {
		out[i] = row[j]
	}
	return out
}
