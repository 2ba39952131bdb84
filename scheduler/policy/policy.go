package policy

import (
	"fmt"
	"sort"
	"strings"

	"github.com/pkg/errors"

	"github.com/dssim/dsclient/scheduler/domain"
	"github.com/dssim/dsclient/scheduler/fleet"
)

// ErrNoCapacity is returned when no server, in either the current or the
// initial view, can run the job.
var ErrNoCapacity = errors.New("no server has sufficient resources for the job")

// JobLister reports the jobs queued or running on a server.
type JobLister interface {
	ListJobs(key domain.ServerKey) ([]domain.QueuedJob, error)
}

// View is everything a policy may look at for one decision.
type View struct {
	Job         domain.Job
	Current     domain.Snapshot
	Initial     domain.Snapshot
	Order       fleet.TypeOrder
	Feasibility Feasibility
	// Only Best-Cost issues queries.
	Jobs JobLister
}

func (v View) sufficient(s domain.Server) bool {
	return v.Feasibility.Sufficient(s, v.Job)
}

// currentlyActive reports whether the server behind an initial record is
// active in the current snapshot.
func (v View) currentlyActive(initial domain.Server) (domain.Server, bool) {
	cur, ok := v.Current.Find(initial.Key())
	return cur, ok && IsActive(cur)
}

// Decision is a policy's answer. Server is the record whose capacity figures
// justified the choice; Fallback is set when those are initial figures.
type Decision struct {
	Server   domain.Server
	Fallback bool
}

func (d Decision) Key() domain.ServerKey {
	return d.Server.Key()
}

type Policy interface {
	Name() string
	Place(v View) (Decision, error)
}

// Algorithm is the placement policy selected for a session.
type Algorithm int

const (
	LargestAlways Algorithm = iota
	FirstFit
	BestFit
	WorstFit
	BestCost
)

var algorithmNames = map[string]Algorithm{
	"largest": LargestAlways,
	"atl":     LargestAlways,
	"ff":      FirstFit,
	"bf":      BestFit,
	"wf":      WorstFit,
	"bfp":     BestCost,
	"bc":      BestCost,
}

var policies = map[Algorithm]Policy{
	LargestAlways: largestAlways{},
	FirstFit:      firstFit{},
	BestFit:       bestFit{},
	WorstFit:      worstFit{},
	BestCost:      bestCost{},
}

// ParseAlgorithm accepts the short names used on the command line.
func ParseAlgorithm(name string) (Algorithm, error) {
	if name == "" {
		return LargestAlways, nil
	}
	a, ok := algorithmNames[strings.ToLower(name)]
	if !ok {
		return LargestAlways, fmt.Errorf("unknown algorithm %q, supported values are %v", name, AlgorithmNames())
	}
	return a, nil
}

func AlgorithmNames() []string {
	names := make([]string, 0, len(algorithmNames))
	for n := range algorithmNames {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

func (a Algorithm) String() string {
	if p, ok := policies[a]; ok {
		return p.Name()
	}
	return fmt.Sprintf("algorithm(%d)", int(a))
}

// New returns the policy for a.
func New(a Algorithm) (Policy, error) {
	p, ok := policies[a]
	if !ok {
		return nil, fmt.Errorf("no policy for %v", a)
	}
	return p, nil
}
