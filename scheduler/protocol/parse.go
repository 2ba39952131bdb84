package protocol

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dssim/dsclient/scheduler/domain"
)

// ParseJob parses "JOBN submitTime jobID estimatedRuntime cores memory disk".
func ParseJob(line string) (domain.Job, error) {
	fields := strings.Fields(line)
	if len(fields) != 7 || fields[0] != ReplyJob {
		return domain.Job{}, fmt.Errorf("want %s and 6 fields, got %d fields", ReplyJob, len(fields))
	}
	v, err := atois(fields[1:])
	if err != nil {
		return domain.Job{}, err
	}
	return domain.Job{
		SubmitTime:       v[0],
		ID:               v[1],
		EstimatedRuntime: v[2],
		Cores:            v[3],
		Memory:           v[4],
		Disk:             v[5],
	}, nil
}

// ParseServer parses "type id state availableAtTime cores memory disk".
func ParseServer(line string) (domain.Server, error) {
	fields := strings.Fields(line)
	if len(fields) != 7 {
		return domain.Server{}, fmt.Errorf("want 7 server fields, got %d", len(fields))
	}
	v, err := atois(fields[1:])
	if err != nil {
		return domain.Server{}, err
	}
	state := domain.ServerState(v[1])
	if !state.Valid() {
		return domain.Server{}, fmt.Errorf("unknown server state %d", v[1])
	}
	return domain.Server{
		Type:            fields[0],
		ID:              v[0],
		State:           state,
		AvailableAtTime: v[2],
		Cores:           v[3],
		Memory:          v[4],
		Disk:            v[5],
	}, nil
}

// ParseQueuedJob parses an LSTJ row. Both the 7 field form
// "id state start est cores memory disk" and the 8 field form
// "id state submit start est cores memory disk" are accepted.
func ParseQueuedJob(line string) (domain.QueuedJob, error) {
	fields := strings.Fields(line)
	v, err := atois(fields)
	if err != nil {
		return domain.QueuedJob{}, err
	}
	switch len(v) {
	case 7:
		return domain.QueuedJob{ID: v[0], State: v[1], StartTime: v[2], EstimatedRuntime: v[3],
			Cores: v[4], Memory: v[5], Disk: v[6]}, nil
	case 8:
		return domain.QueuedJob{ID: v[0], State: v[1], StartTime: v[3], EstimatedRuntime: v[4],
			Cores: v[5], Memory: v[6], Disk: v[7]}, nil
	default:
		return domain.QueuedJob{}, fmt.Errorf("want 7 or 8 job fields, got %d", len(v))
	}
}

func atois(fields []string) ([]int, error) {
	out := make([]int, len(fields))
	for i, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("field %d: %q is not an integer", i, f)
		}
		out[i] = n
	}
	return out, nil
}
