package protocol

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dssim/dsclient/scheduler/domain"
)

func TestParseJob(t *testing.T) {
	job, err := ParseJob("JOBN 37 1 653 3 700 3800")
	require.NoError(t, err)
	assert.Equal(t, domain.Job{SubmitTime: 37, ID: 1, EstimatedRuntime: 653, Cores: 3, Memory: 700, Disk: 3800}, job)

	for _, bad := range []string{
		"JOBN 37 1 653 3 700",
		"JOBN 37 1 653 3 700 3800 9",
		"JOBX 37 1 653 3 700 3800",
		"JOBN 37 one 653 3 700 3800",
	} {
		_, err := ParseJob(bad)
		assert.Error(t, err, bad)
	}
}

func TestParseServer(t *testing.T) {
	s, err := ParseServer("large 2 3 120 8 16000 64000")
	require.NoError(t, err)
	assert.Equal(t, domain.Server{Type: "large", ID: 2, State: domain.Active, AvailableAtTime: 120,
		Cores: 8, Memory: 16000, Disk: 64000}, s)

	_, err = ParseServer("large 2 9 120 8 16000 64000")
	assert.Error(t, err, "unknown state")
	_, err = ParseServer("large 2 3 120 8 16000")
	assert.Error(t, err, "short record")
	_, err = ParseServer("large 2 3 soon 8 16000 64000")
	assert.Error(t, err, "non numeric")
}

func TestParseQueuedJob(t *testing.T) {
	j, err := ParseQueuedJob("4 2 100 1801 2 500 900")
	require.NoError(t, err)
	assert.Equal(t, 1801, j.EstimatedRuntime)
	assert.Equal(t, 100, j.StartTime)

	j, err = ParseQueuedJob("4 2 37 100 1801 2 500 900")
	require.NoError(t, err)
	assert.Equal(t, 1801, j.EstimatedRuntime)
	assert.Equal(t, 100, j.StartTime)
	assert.Equal(t, 900, j.Disk)

	_, err = ParseQueuedJob("4 2 37")
	assert.Error(t, err)
}

func TestResourceQueryString(t *testing.T) {
	job := domain.Job{Cores: 2, Memory: 1024, Disk: 10}
	assert.Equal(t, "RESC All", AllServers.String())
	assert.Equal(t, "RESC Avail 2 1024 10", QueryFor(QueryAvail, job).String())
	assert.Equal(t, "RESC Capable 2 1024 10", QueryFor(QueryCapable, job).String())
}
