package testutil

import "testing"

// Given and Then name nested subtests after the scenario step they check.
func Given(t *testing.T, situation string, fn func(t *testing.T)) {
	t.Helper()
	step(t, "Given", situation, fn)
}

func Then(t *testing.T, outcome string, fn func(t *testing.T)) {
	t.Helper()
	step(t, "Then", outcome, fn)
}

func step(t *testing.T, keyword, desc string, fn func(t *testing.T)) {
	t.Helper()
	t.Run(keyword+" "+desc, fn)
}
