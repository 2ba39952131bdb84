// Package fleet holds the client's view of the simulator's servers: the
// snapshot from the latest query, the first snapshot of the session, and
// the size ranking of server types.
package fleet

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/dssim/dsclient/common/stats"
	"github.com/dssim/dsclient/scheduler/domain"
)

// Source answers a full fleet query.
type Source interface {
	AllServers() ([]domain.Server, error)
}

// Store keeps at most two snapshots. initial is captured once by
// Initialize and is never replaced; current is replaced by every Refresh.
type Store struct {
	source Source
	stat   stats.StatsReceiver

	initialized bool
	initial     domain.Snapshot
	current     domain.Snapshot
	order       TypeOrder
}

func NewStore(source Source, stat stats.StatsReceiver) *Store {
	return &Store{source: source, stat: stat}
}

// Initialize captures the initial snapshot, derives the type order from it,
// then captures current with a second, independent query. Calling it again
// is an error.
func (s *Store) Initialize() error {
	if s.initialized {
		return errors.New("fleet store already initialized")
	}
	initial, err := s.query()
	if err != nil {
		return errors.Wrap(err, "initial fleet query")
	}
	if _, err := s.Refresh(); err != nil {
		return err
	}
	s.initial = initial
	s.order = BuildTypeOrder(initial)
	s.initialized = true
	log.WithFields(log.Fields{
		"servers": initial.Len(),
		"types":   s.order.Types(),
	}).Info("Fleet initialized")
	return nil
}

// Refresh replaces the current snapshot with a new full query.
func (s *Store) Refresh() (domain.Snapshot, error) {
	snap, err := s.query()
	if err != nil {
		return domain.Snapshot{}, errors.Wrap(err, "fleet refresh")
	}
	s.current = snap
	return snap, nil
}

func (s *Store) Initialized() bool {
	return s.initialized
}

func (s *Store) Current() domain.Snapshot {
	return s.current
}

func (s *Store) Initial() domain.Snapshot {
	return s.initial
}

func (s *Store) Order() TypeOrder {
	return s.order
}

func (s *Store) query() (domain.Snapshot, error) {
	servers, err := s.source.AllServers()
	if err != nil {
		return domain.Snapshot{}, err
	}
	s.stat.Counter(stats.FleetRefreshCounter).Inc(1)
	s.stat.Gauge(stats.FleetSizeGauge).Update(int64(len(servers)))
	return domain.NewSnapshot(servers), nil
}
