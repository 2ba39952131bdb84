package fleet

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dssim/dsclient/common/stats"
	"github.com/dssim/dsclient/scheduler/domain"
)

// scriptedSource returns each reply in turn, then repeats the last one.
type scriptedSource struct {
	replies [][]domain.Server
	calls   int
	err     error
}

func (s *scriptedSource) AllServers() ([]domain.Server, error) {
	if s.err != nil {
		return nil, s.err
	}
	i := s.calls
	if i >= len(s.replies) {
		i = len(s.replies) - 1
	}
	s.calls++
	out := make([]domain.Server, len(s.replies[i]))
	copy(out, s.replies[i])
	return out, nil
}

var fullFleet = []domain.Server{
	{Type: "large", ID: 0, State: domain.Inactive, Cores: 8, Memory: 8192, Disk: 80},
	{Type: "small", ID: 0, State: domain.Inactive, Cores: 4, Memory: 4096, Disk: 40},
}

func TestInitializeQueriesTwice(t *testing.T) {
	busy := []domain.Server{
		{Type: "large", ID: 0, State: domain.Active, Cores: 1, Memory: 1024, Disk: 10},
		{Type: "small", ID: 0, State: domain.Idle, Cores: 4, Memory: 4096, Disk: 40},
	}
	src := &scriptedSource{replies: [][]domain.Server{fullFleet, busy}}
	stat, _ := stats.NewCustomStatsReceiver(stats.NewFlatStatsRegistry, 0)
	s := NewStore(src, stat)

	require.NoError(t, s.Initialize())
	assert.Equal(t, 2, src.calls)
	assert.True(t, s.Initialized())
	assert.Equal(t, 8, s.Initial().At(0).Cores)
	assert.Equal(t, 1, s.Current().At(0).Cores)
	assert.Equal(t, []string{"small", "large"}, s.Order().Types())
	assert.Equal(t, int64(2), stat.Counter(stats.FleetRefreshCounter).Count())

	assert.Error(t, s.Initialize(), "second initialize")
}

func TestRefreshIsIdempotentAndNeverTouchesInitial(t *testing.T) {
	src := &scriptedSource{replies: [][]domain.Server{fullFleet}}
	s := NewStore(src, stats.NilStatsReceiver())
	require.NoError(t, s.Initialize())
	order := s.Order().Types()

	first, err := s.Refresh()
	require.NoError(t, err)
	second, err := s.Refresh()
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		_, err = s.Refresh()
		require.NoError(t, err)
	}

	assert.Equal(t, first.Servers(), second.Servers())
	assert.Equal(t, order, s.Order().Types())
	assert.Equal(t, fullFleet, s.Initial().Servers())
	assert.Equal(t, 9, src.calls)
}

func TestRefreshError(t *testing.T) {
	src := &scriptedSource{err: errors.New("no reply")}
	s := NewStore(src, stats.NilStatsReceiver())
	err := s.Initialize()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no reply")
	assert.False(t, s.Initialized())
}
