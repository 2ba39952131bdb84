package policy

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/dssim/dsclient/scheduler/domain"
)

// WaitClass buckets how long a server's queue is expected to hold up a new job.
type WaitClass int

const (
	Instant   WaitClass = iota // up to 10 time units
	Short                      // 11 to 300
	Medium                     // 301 to 1800
	Long                       // 1801 to 43200
	Permanent                  // beyond 43200
)

// Inclusive upper bound of each class below Permanent.
var waitClassBounds = []int{10, 300, 1800, 43200}

func (c WaitClass) String() string {
	switch c {
	case Instant:
		return "instant"
	case Short:
		return "short"
	case Medium:
		return "medium"
	case Long:
		return "long"
	case Permanent:
		return "permanent"
	default:
		return fmt.Sprintf("waitclass(%d)", int(c))
	}
}

// ClassifyRuntime buckets an estimated runtime. A boundary value belongs to
// the lower class.
func ClassifyRuntime(runtime int) WaitClass {
	for i, bound := range waitClassBounds {
		if runtime <= bound {
			return WaitClass(i)
		}
	}
	return Permanent
}

// ServerWaitClass is the worst class among the jobs on s. Idle servers are
// Instant without a query.
func ServerWaitClass(s domain.Server, jobs JobLister) (WaitClass, error) {
	if IsIdle(s) {
		return Instant, nil
	}
	if jobs == nil {
		return Instant, errors.Errorf("no job lister to query %s", s.Key())
	}
	queued, err := jobs.ListJobs(s.Key())
	if err != nil {
		return Instant, errors.Wrapf(err, "listing jobs on %s", s.Key())
	}
	class := Instant
	for _, j := range queued {
		if c := ClassifyRuntime(j.EstimatedRuntime); c > class {
			class = c
		}
	}
	return class, nil
}
