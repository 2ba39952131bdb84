package policy

import (
	"github.com/dssim/dsclient/scheduler/domain"
)

type largestAlways struct{}

func (largestAlways) Name() string { return "Largest-Always" }

// Place ignores load: server 0 of the type with the most cores initially.
func (largestAlways) Place(v View) (Decision, error) {
	if v.Initial.Len() == 0 {
		return Decision{}, ErrNoCapacity
	}
	largest := v.Initial.At(0)
	for i := 1; i < v.Initial.Len(); i++ {
		if s := v.Initial.At(i); s.Cores > largest.Cores {
			largest = s
		}
	}
	target, ok := v.Initial.Find(domain.ServerKey{Type: largest.Type, ID: 0})
	if !ok {
		target = largest
		target.ID = 0
	}
	if !v.sufficient(target) {
		return Decision{}, ErrNoCapacity
	}
	return Decision{Server: target}, nil
}
