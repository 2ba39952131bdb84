package policy

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dssim/dsclient/scheduler/domain"
	"github.com/dssim/dsclient/scheduler/fleet"
)

func server(typ string, id int, state domain.ServerState, avail, cores, mem, disk int) domain.Server {
	return domain.Server{Type: typ, ID: id, State: state, AvailableAtTime: avail, Cores: cores, Memory: mem, Disk: disk}
}

func job(cores, mem, disk int) domain.Job {
	return domain.Job{ID: 1, EstimatedRuntime: 100, Cores: cores, Memory: mem, Disk: disk}
}

// view uses initial for both snapshots unless current is given.
func view(j domain.Job, initial []domain.Server, current []domain.Server) View {
	if current == nil {
		current = initial
	}
	first := domain.NewSnapshot(initial)
	return View{
		Job:     j,
		Current: domain.NewSnapshot(current),
		Initial: first,
		Order:   fleet.BuildTypeOrder(first),
	}
}

func place(t *testing.T, a Algorithm, v View) Decision {
	p, err := New(a)
	require.NoError(t, err)
	d, err := p.Place(v)
	require.NoError(t, err, "%s: %s", a, spew.Sdump(v.Current.Servers()))
	return d
}

func TestEndToEndFleet(t *testing.T) {
	fleetServers := []domain.Server{
		server("small", 0, domain.Idle, 0, 4, 4096, 40),
		server("large", 0, domain.Idle, 0, 8, 8192, 80),
	}
	v := view(job(5, 1024, 10), fleetServers, nil)
	for _, a := range []Algorithm{LargestAlways, FirstFit, BestFit, WorstFit, BestCost} {
		d := place(t, a, v)
		assert.Equal(t, domain.ServerKey{Type: "large", ID: 0}, d.Key(), a.String())
		assert.False(t, d.Fallback, a.String())
	}
}

func TestLargestAlwaysUsesInitialFigures(t *testing.T) {
	initial := []domain.Server{
		server("small", 0, domain.Inactive, -1, 4, 4096, 40),
		server("large", 0, domain.Inactive, -1, 8, 8192, 80),
		server("large", 1, domain.Inactive, -1, 8, 8192, 80),
		server("xl", 3, domain.Inactive, -1, 8, 8192, 80),
	}
	current := []domain.Server{
		server("small", 0, domain.Idle, 0, 4, 4096, 40),
		server("large", 0, domain.Active, 0, 0, 0, 0),
		server("large", 1, domain.Active, 0, 0, 0, 0),
		server("xl", 3, domain.Active, 0, 0, 0, 0),
	}
	d := place(t, LargestAlways, view(job(1, 1, 1), initial, current))
	// first type to reach the maximum wins
	assert.Equal(t, domain.ServerKey{Type: "large", ID: 0}, d.Key())
}

func TestLargestAlwaysTooSmall(t *testing.T) {
	v := view(job(16, 1, 1), []domain.Server{server("large", 0, domain.Idle, 0, 8, 8192, 80)}, nil)
	_, err := largestAlways{}.Place(v)
	assert.Equal(t, ErrNoCapacity, errors.Cause(err))

	_, err = largestAlways{}.Place(view(job(1, 1, 1), []domain.Server{}, nil))
	assert.Equal(t, ErrNoCapacity, err)
}

func TestFirstFitFollowsTypeOrder(t *testing.T) {
	small := server("small", 0, domain.Idle, 0, 4, 4096, 40)
	large := server("large", 0, domain.Idle, 0, 8, 8192, 80)
	small1 := server("small", 1, domain.Idle, 0, 4, 4096, 40)

	for _, servers := range [][]domain.Server{
		{small, large, small1},
		{large, small, small1},
		{small1, large, small},
	} {
		d := place(t, FirstFit, view(job(6, 1024, 10), servers, nil))
		assert.Equal(t, "large", d.Server.Type)
	}

	// a small server fits, and small comes first in type order
	d := place(t, FirstFit, view(job(2, 1024, 10), []domain.Server{large, small1, small}, nil))
	assert.Equal(t, domain.ServerKey{Type: "small", ID: 1}, d.Key())
}

func TestFirstFitFallback(t *testing.T) {
	initial := []domain.Server{
		server("small", 0, domain.Inactive, -1, 4, 4096, 40),
		server("large", 0, domain.Inactive, -1, 8, 8192, 80),
		server("large", 1, domain.Inactive, -1, 8, 8192, 80),
	}
	current := []domain.Server{
		server("small", 0, domain.Active, 50, 0, 0, 0),
		server("large", 0, domain.Booting, 70, 0, 0, 0),
		server("large", 1, domain.Active, 90, 1, 100, 0),
	}
	d := place(t, FirstFit, view(job(6, 1024, 10), initial, current))
	assert.Equal(t, domain.ServerKey{Type: "large", ID: 1}, d.Key())
	assert.True(t, d.Fallback)
	assert.Equal(t, 8, d.Server.Cores, "decided on initial figures")

	current[2].State = domain.Booting
	_, err := firstFit{}.Place(view(job(6, 1024, 10), initial, current))
	assert.Equal(t, ErrNoCapacity, err)
}

func TestBestFitTieBreak(t *testing.T) {
	servers := []domain.Server{
		server("a", 0, domain.Active, 20, 4, 4096, 40),
		server("b", 0, domain.Active, 10, 4, 4096, 40),
		server("c", 0, domain.Idle, 0, 8, 8192, 80),
	}
	d := place(t, BestFit, view(job(2, 100, 10), servers, nil))
	assert.Equal(t, domain.ServerKey{Type: "b", ID: 0}, d.Key())
}

func TestBestFitFallback(t *testing.T) {
	initial := []domain.Server{
		server("small", 0, domain.Inactive, -1, 4, 4096, 40),
		server("large", 0, domain.Inactive, -1, 8, 8192, 80),
		server("large", 1, domain.Inactive, -1, 8, 8192, 80),
		server("huge", 0, domain.Inactive, -1, 16, 16384, 160),
	}
	current := []domain.Server{
		server("small", 0, domain.Active, 10, 0, 0, 0),
		server("large", 0, domain.Active, 300, 0, 0, 0),
		server("large", 1, domain.Active, 200, 0, 0, 0),
		server("huge", 0, domain.Active, 5, 0, 0, 0),
	}
	d := place(t, BestFit, view(job(3, 1024, 10), initial, current))
	assert.Equal(t, domain.ServerKey{Type: "small", ID: 0}, d.Key())
	assert.True(t, d.Fallback)

	// small is too small; the two large ones tie and large/1 frees up first
	d = place(t, BestFit, view(job(6, 1024, 10), initial, current))
	assert.Equal(t, domain.ServerKey{Type: "large", ID: 1}, d.Key())
}

func TestBestFitNoCapacity(t *testing.T) {
	servers := []domain.Server{server("small", 0, domain.Active, 0, 4, 4096, 40)}
	_, err := bestFit{}.Place(view(job(5, 1, 1), servers, nil))
	assert.Equal(t, ErrNoCapacity, err)
}

func TestWorstFitPrefersImmediatelyAvailable(t *testing.T) {
	servers := []domain.Server{
		server("tight", 0, domain.Active, 0, 2, 4096, 40),
		server("roomy", 0, domain.Idle, 0, 10, 4096, 40),
		server("huge", 0, domain.Inactive, -1, 32, 4096, 40),
	}
	d := place(t, WorstFit, view(job(1, 100, 10), servers, nil))
	assert.Equal(t, domain.ServerKey{Type: "roomy", ID: 0}, d.Key())
	assert.Equal(t, 9, Fitness(d.Server, job(1, 100, 10)))
}

func TestWorstFitSecondChoice(t *testing.T) {
	servers := []domain.Server{
		server("busy", 0, domain.Active, 0, 0, 0, 0),
		server("small", 0, domain.Inactive, -1, 4, 4096, 40),
		server("large", 0, domain.Booting, 30, 8, 8192, 80),
		server("large", 1, domain.Inactive, -1, 8, 8192, 80),
	}
	d := place(t, WorstFit, view(job(2, 100, 10), servers, nil))
	assert.Equal(t, domain.ServerKey{Type: "large", ID: 0}, d.Key(), "first of equal fitness wins")
	assert.False(t, d.Fallback)
}

func TestWorstFitFallback(t *testing.T) {
	initial := []domain.Server{
		server("small", 0, domain.Inactive, -1, 4, 4096, 40),
		server("large", 0, domain.Inactive, -1, 8, 8192, 80),
	}
	current := []domain.Server{
		server("small", 0, domain.Active, 0, 0, 0, 0),
		server("large", 0, domain.Active, 0, 0, 0, 0),
	}
	d := place(t, WorstFit, view(job(2, 100, 10), initial, current))
	assert.Equal(t, domain.ServerKey{Type: "large", ID: 0}, d.Key())
	assert.True(t, d.Fallback)
}

func TestCoresOnlyFeasibility(t *testing.T) {
	servers := []domain.Server{
		server("lowmem", 0, domain.Idle, 0, 4, 128, 40),
		server("large", 0, domain.Idle, 0, 8, 8192, 80),
	}
	v := view(job(2, 1024, 10), servers, nil)
	d := place(t, BestFit, v)
	assert.Equal(t, "large", d.Server.Type)

	v.Feasibility = CoresOnly
	d = place(t, BestFit, v)
	assert.Equal(t, "lowmem", d.Server.Type)
}

func TestParseAlgorithm(t *testing.T) {
	for name, want := range map[string]Algorithm{
		"": LargestAlways, "largest": LargestAlways, "ff": FirstFit, "BF": BestFit,
		"wf": WorstFit, "bfp": BestCost, "bc": BestCost,
	} {
		got, err := ParseAlgorithm(name)
		assert.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}
	_, err := ParseAlgorithm("random")
	assert.Error(t, err)
	assert.Equal(t, "Best-Cost", BestCost.String())
}

func TestParseFeasibility(t *testing.T) {
	f, err := ParseFeasibility("cores")
	assert.NoError(t, err)
	assert.Equal(t, CoresOnly, f)
	f, err = ParseFeasibility("")
	assert.NoError(t, err)
	assert.Equal(t, FullResources, f)
	_, err = ParseFeasibility("memory")
	assert.Error(t, err)
}
