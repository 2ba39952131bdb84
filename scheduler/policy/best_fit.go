package policy

import (
	"math"
)

type bestFit struct{}

func (bestFit) Name() string { return "Best-Fit" }

// Place picks the least surplus cores, breaking ties on the earliest
// availableAtTime.
func (bestFit) Place(v View) (Decision, error) {
	best, bestAvail := math.MaxInt32, math.MaxInt32
	var d Decision
	found := false
	for i := 0; i < v.Current.Len(); i++ {
		s := v.Current.At(i)
		if !v.sufficient(s) {
			continue
		}
		f := Fitness(s, v.Job)
		if f < best || (f == best && s.AvailableAtTime < bestAvail) {
			best, bestAvail = f, s.AvailableAtTime
			d, found = Decision{Server: s}, true
		}
	}
	if found {
		return d, nil
	}

	// Fitness on initial capacity; availability from the current record.
	best, bestAvail = math.MaxInt32, math.MaxInt32
	for i := 0; i < v.Initial.Len(); i++ {
		s := v.Initial.At(i)
		if !v.sufficient(s) {
			continue
		}
		cur, active := v.currentlyActive(s)
		if !active {
			continue
		}
		f := Fitness(s, v.Job)
		if f < best || (f == best && cur.AvailableAtTime < bestAvail) {
			best, bestAvail = f, cur.AvailableAtTime
			d, found = Decision{Server: s, Fallback: true}, true
		}
	}
	if found {
		return d, nil
	}
	return Decision{}, ErrNoCapacity
}
