package xassert

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// ElementsMatch compares want and got in order and reports a diff on mismatch.
func ElementsMatch[T any](t *testing.T, want, got []T, options ...cmp.Option) {
	t.Helper()

	if diff := cmp.Diff(want, got, options...); diff != "" {
		t.Errorf("elements mismatch (-want +got):\n%s", diff)
	}
}
