package policy

type firstFit struct{}

func (firstFit) Name() string { return "First-Fit" }

func (firstFit) Place(v View) (Decision, error) {
	ordered := v.Order.Apply(v.Current)
	for i := 0; i < ordered.Len(); i++ {
		if s := ordered.At(i); v.sufficient(s) {
			return Decision{Server: s}, nil
		}
	}

	// A booting or busy server can under-report its capacity; fall back to
	// the initial figures of servers that are running.
	for i := 0; i < v.Initial.Len(); i++ {
		s := v.Initial.At(i)
		if !v.sufficient(s) {
			continue
		}
		if _, active := v.currentlyActive(s); active {
			return Decision{Server: s, Fallback: true}, nil
		}
	}
	return Decision{}, ErrNoCapacity
}
