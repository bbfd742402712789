package stipple

// Reduce down-samples a sample sequence to exactly targetCount elements,
// always keeping the first and last and selecting the remainder at an even
// interval through the input. targetCount values of 1 or less yield just the
// first element; values at or above the input length return the input as-is
// (growing a short set is the pool's job, not the reducer's).
func Reduce(samples []Sample, targetCount int) []Sample {
	return reduceEvenly(samples, targetCount)
}

// reduceEvenly is the shared reduction walk. The pool reuses it to pick an
// evenly distributed subset of existing particles when a transition has
// fewer targets than the pool holds.
func reduceEvenly[T any](in []T, k int) []T {
	if len(in) == 0 {
		return nil
	}
	if k <= 1 {
		return in[:1:1]
	}
	if k >= len(in) {
		return in
	}
	interval := float64(len(in)) / float64(k)
	out := make([]T, 0, k)
	out = append(out, in[0])
	for i := 1; i <= k-2; i++ {
		out = append(out, in[int(float64(i)*interval)])
	}
	return append(out, in[len(in)-1])
}
