package policy

import (
	log "github.com/sirupsen/logrus"
)

type bestCost struct{}

func (bestCost) Name() string { return "Best-Cost" }

func (bestCost) Place(v View) (Decision, error) {
	bf, err := bestFit{}.Place(v)
	if err != nil {
		return Decision{}, err
	}
	if !anyImmediatelyAvailable(v) {
		return bf, nil
	}
	if !bf.Fallback && ImmediatelyAvailable(bf.Server) {
		return bf, nil
	}

	// Every server that could start the job now is busy. Queue behind the
	// one whose jobs finish soonest, unless even that wait is Long.
	var chosen Decision
	minClass := Permanent + 1
	for i := 0; i < v.Current.Len(); i++ {
		s := v.Current.At(i)
		if !ImmediatelyAvailable(s) {
			continue
		}
		initial, ok := v.Initial.Find(s.Key())
		if !ok || !v.sufficient(initial) {
			continue
		}
		class, err := ServerWaitClass(s, v.Jobs)
		if err != nil {
			return Decision{}, err
		}
		if class < minClass {
			minClass = class
			chosen = Decision{Server: initial, Fallback: true}
		}
	}
	if minClass < Long {
		log.WithFields(log.Fields{
			"jobID":     v.Job.ID,
			"server":    chosen.Key().String(),
			"waitClass": minClass.String(),
		}).Debug("Queueing behind a busy server")
		return chosen, nil
	}
	return bf, nil
}

func anyImmediatelyAvailable(v View) bool {
	for i := 0; i < v.Current.Len(); i++ {
		if ImmediatelyAvailable(v.Current.At(i)) {
			return true
		}
	}
	return false
}
