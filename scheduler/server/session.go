package server

//go:generate mockgen -source=session.go -package=server -destination=simulator_mock.go

import (
	"fmt"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/dssim/dsclient/common"
	"github.com/dssim/dsclient/common/stats"
	"github.com/dssim/dsclient/scheduler/domain"
	"github.com/dssim/dsclient/scheduler/fleet"
	"github.com/dssim/dsclient/scheduler/policy"
	"github.com/dssim/dsclient/scheduler/protocol"
)

// Simulator is the part of the protocol client a session drives.
type Simulator interface {
	NextJob() (job domain.Job, ok bool, err error)
	AllServers() ([]domain.Server, error)
	ListJobs(key domain.ServerKey) ([]domain.QueuedJob, error)
	Schedule(p domain.Placement) error
}

var _ Simulator = (*protocol.Client)(nil)

type State int

const (
	AwaitingJob State = iota
	RefreshingFleet
	Deciding
	Submitting
	Done
	Failed
)

func (s State) String() string {
	switch s {
	case AwaitingJob:
		return "AwaitingJob"
	case RefreshingFleet:
		return "RefreshingFleet"
	case Deciding:
		return "Deciding"
	case Submitting:
		return "Submitting"
	case Done:
		return "Done"
	case Failed:
		return "Failed"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Terminal states accept no further steps.
func (s State) Terminal() bool {
	return s == Done || s == Failed
}

type SessionConfig struct {
	Algorithm   policy.Algorithm
	Feasibility policy.Feasibility
}

// Session is one pass over the simulator's job stream. It is not safe for
// concurrent use; every step is a blocking round trip.
type Session struct {
	id     string
	sim    Simulator
	jobs   policy.JobLister
	store  *fleet.Store
	policy policy.Policy
	cfg    SessionConfig
	stat   stats.StatsReceiver

	state     State
	job       domain.Job
	decision  policy.Decision
	scheduled int
	err       error
}

func NewSession(sim Simulator, cfg SessionConfig, stat stats.StatsReceiver) (*Session, error) {
	p, err := policy.New(cfg.Algorithm)
	if err != nil {
		return nil, err
	}
	return &Session{
		id:     common.GenUUID(),
		sim:    sim,
		jobs:   &countingLister{sim, stat},
		store:  fleet.NewStore(sim, stat),
		policy: p,
		cfg:    cfg,
		stat:   stat,
		state:  AwaitingJob,
	}, nil
}

func (s *Session) ID() string { return s.id }

func (s *Session) State() State { return s.state }

// Err is the error that moved the session to Failed, nil otherwise.
func (s *Session) Err() error { return s.err }

// Scheduled is the number of accepted placements.
func (s *Session) Scheduled() int { return s.scheduled }

// Fleet exposes the session's snapshot store.
func (s *Session) Fleet() *fleet.Store { return s.store }

// Run steps the session until it is Done or Failed.
func (s *Session) Run() error {
	log.WithFields(
		log.Fields{
			"sessionID":   s.id,
			"policy":      s.policy.Name(),
			"feasibility": s.cfg.Feasibility.String(),
		}).Info("Starting scheduling session")

	for !s.state.Terminal() {
		s.Step()
	}

	fields := log.Fields{
		"sessionID": s.id,
		"scheduled": s.scheduled,
	}
	if s.err != nil {
		log.WithFields(fields).WithError(s.err).Error("Scheduling session failed")
		return s.err
	}
	log.WithFields(fields).Info("Scheduling session done")
	return nil
}

// Step performs the work of the current state and returns the next one.
func (s *Session) Step() State {
	switch s.state {
	case AwaitingJob:
		s.awaitJob()
	case RefreshingFleet:
		s.refreshFleet()
	case Deciding:
		s.decide()
	case Submitting:
		s.submit()
	}
	return s.state
}

func (s *Session) awaitJob() {
	job, ok, err := s.sim.NextJob()
	if err != nil {
		s.fail(errors.Wrap(err, "waiting for a job"))
		return
	}
	if !ok {
		s.state = Done
		return
	}
	s.stat.Counter(stats.SessionJobsReceivedCounter).Inc(1)
	s.job = job
	s.decision = policy.Decision{}
	log.WithFields(
		log.Fields{
			"sessionID": s.id,
			"job":       job.String(),
		}).Debug("Received job")
	s.state = RefreshingFleet
}

// The first refresh of a session also captures the initial snapshot.
func (s *Session) refreshFleet() {
	var err error
	if !s.store.Initialized() {
		err = s.store.Initialize()
	} else {
		_, err = s.store.Refresh()
	}
	if err != nil {
		s.fail(errors.Wrapf(err, "refreshing fleet for job %d", s.job.ID))
		return
	}
	s.state = Deciding
}

func (s *Session) decide() {
	defer s.stat.Latency(stats.SessionPlacementDecisionLatency_ms).Time().Stop()
	d, err := s.policy.Place(policy.View{
		Job:         s.job,
		Current:     s.store.Current(),
		Initial:     s.store.Initial(),
		Order:       s.store.Order(),
		Feasibility: s.cfg.Feasibility,
		Jobs:        s.jobs,
	})
	if err != nil {
		if errors.Cause(err) == policy.ErrNoCapacity {
			s.stat.Counter(stats.SessionNoCapacityCounter).Inc(1)
		}
		s.fail(errors.Wrapf(err, "%s placing job %d", s.policy.Name(), s.job.ID))
		return
	}
	if d.Fallback {
		s.stat.Counter(stats.SessionFallbackPlacementCounter).Inc(1)
	}
	s.decision = d
	s.state = Submitting
}

func (s *Session) submit() {
	p := domain.Placement{JobID: s.job.ID, Server: s.decision.Key()}
	if err := s.sim.Schedule(p); err != nil {
		if protocol.IsRejectedError(err) {
			s.stat.Counter(stats.SessionPlacementRejectedCounter).Inc(1)
		}
		s.fail(errors.Wrapf(err, "submitting %s", p))
		return
	}
	s.scheduled++
	s.stat.Counter(stats.SessionJobsScheduledCounter).Inc(1)
	log.WithFields(
		log.Fields{
			"sessionID": s.id,
			"placement": p.String(),
			"fallback":  s.decision.Fallback,
		}).Debug("Scheduled job")
	s.state = AwaitingJob
}

func (s *Session) fail(err error) {
	s.err = err
	s.state = Failed
}

// countingLister counts the queue queries Best-Cost makes.
type countingLister struct {
	jobs policy.JobLister
	stat stats.StatsReceiver
}

func (c *countingLister) ListJobs(key domain.ServerKey) ([]domain.QueuedJob, error) {
	c.stat.Counter(stats.FleetQueueQueryCounter).Inc(1)
	return c.jobs.ListJobs(key)
}
