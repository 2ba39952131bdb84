package policy

import (
	"fmt"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dssim/dsclient/scheduler/domain"
)

type fakeLister struct {
	t      *testing.T
	jobs   map[domain.ServerKey][]domain.QueuedJob
	err    error
	forbid bool
	calls  []domain.ServerKey
}

func (f *fakeLister) ListJobs(key domain.ServerKey) ([]domain.QueuedJob, error) {
	if f.forbid {
		f.t.Fatalf("unexpected job query for %s", key)
	}
	f.calls = append(f.calls, key)
	if f.err != nil {
		return nil, f.err
	}
	return f.jobs[key], nil
}

func queued(runtimes ...int) []domain.QueuedJob {
	out := []domain.QueuedJob{}
	for i, r := range runtimes {
		out = append(out, domain.QueuedJob{ID: i, State: 2, EstimatedRuntime: r, Cores: 1})
	}
	return out
}

func TestClassifyRuntime(t *testing.T) {
	for runtime, want := range map[int]WaitClass{
		-5:     Instant,
		0:      Instant,
		10:     Instant,
		11:     Short,
		300:    Short,
		301:    Medium,
		1800:   Medium,
		1801:   Long,
		43200:  Long,
		43201:  Permanent,
		900000: Permanent,
	} {
		assert.Equal(t, want, ClassifyRuntime(runtime), fmt.Sprintf("runtime %d", runtime))
	}
}

func TestServerWaitClassIdleSkipsQuery(t *testing.T) {
	jobs := &fakeLister{t: t, forbid: true}
	class, err := ServerWaitClass(server("small", 0, domain.Idle, 0, 4, 4096, 40), jobs)
	assert.NoError(t, err)
	assert.Equal(t, Instant, class)
}

func TestServerWaitClassTakesWorstJob(t *testing.T) {
	s := server("small", 2, domain.Active, 0, 0, 0, 0)
	jobs := &fakeLister{t: t, jobs: map[domain.ServerKey][]domain.QueuedJob{
		s.Key(): queued(5, 1801, 200),
	}}
	class, err := ServerWaitClass(s, jobs)
	require.NoError(t, err)
	assert.Equal(t, Long, class)
	assert.Equal(t, []domain.ServerKey{s.Key()}, jobs.calls)

	// nothing queued
	class, err = ServerWaitClass(server("small", 3, domain.Active, 0, 4, 4096, 40), jobs)
	require.NoError(t, err)
	assert.Equal(t, Instant, class)
}

func TestServerWaitClassErrors(t *testing.T) {
	s := server("small", 0, domain.Active, 0, 0, 0, 0)
	_, err := ServerWaitClass(s, nil)
	assert.Error(t, err)

	boom := errors.New("connection reset")
	_, err = ServerWaitClass(s, &fakeLister{t: t, err: boom})
	assert.Equal(t, boom, errors.Cause(err))
}

func contendedView(jobs JobLister) View {
	initial := []domain.Server{
		server("a", 0, domain.Inactive, -1, 4, 4096, 40),
		server("b", 0, domain.Inactive, -1, 4, 4096, 40),
		server("c", 0, domain.Inactive, -1, 4, 4096, 40),
	}
	current := []domain.Server{
		server("a", 0, domain.Active, 100, 0, 0, 0),
		server("b", 0, domain.Active, 400, 0, 0, 0),
		server("c", 0, domain.Inactive, -1, 0, 0, 0),
	}
	v := view(job(2, 1024, 10), initial, current)
	v.Jobs = jobs
	return v
}

func TestBestCostMatchesBestFitWhenAvailable(t *testing.T) {
	servers := []domain.Server{
		server("small", 0, domain.Active, 0, 4, 4096, 40),
		server("large", 0, domain.Idle, 0, 8, 8192, 80),
	}
	v := view(job(2, 1024, 10), servers, nil)
	v.Jobs = &fakeLister{t: t, forbid: true}

	bf := place(t, BestFit, v)
	bc := place(t, BestCost, v)
	assert.Equal(t, bf, bc)
}

func TestBestCostQueuesBehindShortestWait(t *testing.T) {
	jobs := &fakeLister{t: t, jobs: map[domain.ServerKey][]domain.QueuedJob{
		{Type: "a", ID: 0}: queued(2000),
		{Type: "b", ID: 0}: queued(100, 20),
	}}
	d := place(t, BestCost, contendedView(jobs))
	assert.Equal(t, domain.ServerKey{Type: "b", ID: 0}, d.Key())
	assert.True(t, d.Fallback)
	assert.Equal(t, 4, d.Server.Cores)
	assert.Equal(t, []domain.ServerKey{{Type: "a", ID: 0}, {Type: "b", ID: 0}}, jobs.calls)
}

func TestBestCostFirstOfEqualClassWins(t *testing.T) {
	jobs := &fakeLister{t: t, jobs: map[domain.ServerKey][]domain.QueuedJob{
		{Type: "a", ID: 0}: queued(200),
		{Type: "b", ID: 0}: queued(250),
	}}
	d := place(t, BestCost, contendedView(jobs))
	assert.Equal(t, domain.ServerKey{Type: "a", ID: 0}, d.Key())
}

func TestBestCostLongWaitsKeepBestFit(t *testing.T) {
	jobs := &fakeLister{t: t, jobs: map[domain.ServerKey][]domain.QueuedJob{
		{Type: "a", ID: 0}: queued(5000),
		{Type: "b", ID: 0}: queued(50000),
	}}
	v := contendedView(jobs)
	bf := place(t, BestFit, v)
	bc := place(t, BestCost, v)
	assert.Equal(t, bf, bc)
	// best-fit breaks the fitness tie on availableAtTime
	assert.Equal(t, domain.ServerKey{Type: "a", ID: 0}, bc.Key())
}

func TestBestCostNothingAvailable(t *testing.T) {
	servers := []domain.Server{
		server("a", 0, domain.Booting, 60, 4, 4096, 40),
		server("b", 0, domain.Inactive, -1, 8, 8192, 80),
	}
	v := view(job(2, 1024, 10), servers, nil)
	v.Jobs = &fakeLister{t: t, forbid: true}
	d := place(t, BestCost, v)
	assert.Equal(t, domain.ServerKey{Type: "a", ID: 0}, d.Key())
	assert.False(t, d.Fallback)
}

func TestBestCostQueryError(t *testing.T) {
	boom := errors.New("broken pipe")
	_, err := bestCost{}.Place(contendedView(&fakeLister{t: t, err: boom}))
	assert.Equal(t, boom, errors.Cause(err))
}

func TestBestCostNoCapacity(t *testing.T) {
	servers := []domain.Server{server("small", 0, domain.Idle, 0, 1, 4096, 40)}
	v := view(job(2, 1024, 10), servers, nil)
	v.Jobs = &fakeLister{t: t, forbid: true}
	_, err := bestCost{}.Place(v)
	assert.Equal(t, ErrNoCapacity, err)
}
