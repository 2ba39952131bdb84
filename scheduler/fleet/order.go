package fleet

import (
	"sort"

	log "github.com/sirupsen/logrus"

	"github.com/dssim/dsclient/scheduler/domain"
)

// TypeOrder ranks server types by ascending core count. It is built once
// from the first snapshot of a session, while every server still reports
// its full capacity, and never changes afterwards.
type TypeOrder struct {
	types []string
	rank  map[string]int
}

// BuildTypeOrder ranks each distinct type of snapshot by the core count of
// its first server. Types with equal core counts keep first-seen order.
func BuildTypeOrder(snapshot domain.Snapshot) TypeOrder {
	type typeCores struct {
		name  string
		cores int
	}
	seen := map[string]bool{}
	var found []typeCores
	for i := 0; i < snapshot.Len(); i++ {
		s := snapshot.At(i)
		if seen[s.Type] {
			continue
		}
		seen[s.Type] = true
		found = append(found, typeCores{s.Type, s.Cores})
	}
	sort.SliceStable(found, func(i, j int) bool { return found[i].cores < found[j].cores })

	o := TypeOrder{types: make([]string, len(found)), rank: make(map[string]int, len(found))}
	for i, tc := range found {
		o.types[i] = tc.name
		o.rank[tc.name] = i
	}
	return o
}

// Types returns the type names, smallest first.
func (o TypeOrder) Types() []string {
	out := make([]string, len(o.types))
	copy(out, o.types)
	return out
}

// Rank returns the position of typ, smallest first.
func (o TypeOrder) Rank(typ string) (int, bool) {
	r, ok := o.rank[typ]
	return r, ok
}

// Apply groups snapshot by type in ascending rank, keeping the relative
// order of servers within a type. Servers of a type missing from the order
// are kept, after all ranked types, in their original order.
func (o TypeOrder) Apply(snapshot domain.Snapshot) domain.Snapshot {
	buckets := make([][]domain.Server, len(o.types))
	var unranked []domain.Server
	for i := 0; i < snapshot.Len(); i++ {
		s := snapshot.At(i)
		r, ok := o.rank[s.Type]
		if !ok {
			unranked = append(unranked, s)
			continue
		}
		buckets[r] = append(buckets[r], s)
	}

	ordered := make([]domain.Server, 0, snapshot.Len())
	for _, b := range buckets {
		ordered = append(ordered, b...)
	}
	if len(unranked) > 0 {
		log.WithFields(log.Fields{
			"servers": len(unranked),
			"type":    unranked[0].Type,
		}).Warn("Server types absent from the first fleet query, ordering them last")
		ordered = append(ordered, unranked...)
	}
	return domain.NewSnapshot(ordered)
}
