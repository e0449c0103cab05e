// Package scoring implements the deterministic computation core: stress
// scoring, finance advice, job matching and chat intent resolution. Every
// function here is pure; callers own all state between invocations.
package scoring

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// floorDiv divides rounding toward negative infinity. Go's / truncates
// toward zero, which would soften the wage penalty below the floor.
func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

func toSet(keys []string) map[string]bool {
	s := make(map[string]bool, len(keys))
	for _, k := range keys {
		s[k] = true
	}
	return s
}
