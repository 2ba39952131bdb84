package policy

import (
	"fmt"

	"github.com/dssim/dsclient/scheduler/domain"
)

// Feasibility decides whether a server has enough resources for a job.
type Feasibility int

const (
	// Cores, memory and disk must all suffice.
	FullResources Feasibility = iota
	// Only cores are compared. Less strict; the simulator may still refuse.
	CoresOnly
)

func ParseFeasibility(name string) (Feasibility, error) {
	switch name {
	case "", "full":
		return FullResources, nil
	case "cores":
		return CoresOnly, nil
	default:
		return FullResources, fmt.Errorf("unknown feasibility mode %q, supported values are [full cores]", name)
	}
}

func (f Feasibility) String() string {
	if f == CoresOnly {
		return "cores"
	}
	return "full"
}

func (f Feasibility) Sufficient(s domain.Server, j domain.Job) bool {
	if s.Cores < j.Cores {
		return false
	}
	if f == CoresOnly {
		return true
	}
	return s.Memory >= j.Memory && s.Disk >= j.Disk
}

// Fitness is the number of cores s has beyond what j needs. Smaller is tighter.
func Fitness(s domain.Server, j domain.Job) int {
	return s.Cores - j.Cores
}

// ImmediatelyAvailable servers can start a job without booting.
func ImmediatelyAvailable(s domain.Server) bool {
	return s.State == domain.Idle || s.State == domain.Active
}

func IsActive(s domain.Server) bool {
	return s.State == domain.Active
}

func IsIdle(s domain.Server) bool {
	return s.State == domain.Idle
}
