package policy

import (
	"math"
)

type worstFit struct{}

func (worstFit) Name() string { return "Worst-Fit" }

// Place prefers the most overprovisioned server that can start now, then
// the most overprovisioned one that cannot. Ties keep the first seen.
func (worstFit) Place(v View) (Decision, error) {
	worst, alt := math.MinInt32, math.MinInt32
	var worstD, altD Decision
	foundWorst, foundAlt := false, false
	for i := 0; i < v.Current.Len(); i++ {
		s := v.Current.At(i)
		if !v.sufficient(s) {
			continue
		}
		f := Fitness(s, v.Job)
		if ImmediatelyAvailable(s) {
			if f > worst {
				worst, worstD, foundWorst = f, Decision{Server: s}, true
			}
		} else if f > alt {
			alt, altD, foundAlt = f, Decision{Server: s}, true
		}
	}
	if foundWorst {
		return worstD, nil
	}
	if foundAlt {
		return altD, nil
	}

	worst = math.MinInt32
	for i := 0; i < v.Initial.Len(); i++ {
		s := v.Initial.At(i)
		if !v.sufficient(s) {
			continue
		}
		if _, active := v.currentlyActive(s); !active {
			continue
		}
		if f := Fitness(s, v.Job); f > worst {
			worst, worstD, foundWorst = f, Decision{Server: s, Fallback: true}, true
		}
	}
	if foundWorst {
		return worstD, nil
	}
	return Decision{}, ErrNoCapacity
}
