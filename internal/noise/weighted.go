package noise

// Weighted pairs a value with a relative weight
type Weighted[T any] struct {
	Value  T
	Weight float64
}

// Choose picks a value proportionally to its weight with a cumulative linear
// scan. Non-positive weights are never chosen; ok is false when nothing has
// weight.
func Choose[T any](src Source, options []Weighted[T]) (T, bool) {
	var zero T
	total := 0.0
	for _, o := range options {
		if o.Weight > 0 {
			total += o.Weight
		}
	}
	if total <= 0 {
		return zero, false
	}

	target := src.Float64() * total
	cumulative := 0.0
	last := -1
	for i, o := range options {
		if o.Weight <= 0 {
			continue
		}
		cumulative += o.Weight
		last = i
		if target < cumulative {
			return o.Value, true
		}
	}

	// float rounding can leave target == total
	return options[last].Value, true
}
