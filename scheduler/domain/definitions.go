// Package domain provides definitions for the jobs and servers the
// simulator reports, and the placements the client sends back.
package domain

import (
	"fmt"
)

// Job is one JOBN notification. It is immutable once parsed.
type Job struct {
	SubmitTime       int
	ID               int
	EstimatedRuntime int
	Cores            int
	Memory           int
	Disk             int
}

func (j Job) String() string {
	return fmt.Sprintf("job:%d submit:%d est:%d cores:%d mem:%d disk:%d",
		j.ID, j.SubmitTime, j.EstimatedRuntime, j.Cores, j.Memory, j.Disk)
}

// ServerState as reported by the simulator.
type ServerState int

const (
	Inactive ServerState = iota
	Booting
	Idle
	Active
)

func (s ServerState) String() string {
	switch s {
	case Inactive:
		return "inactive"
	case Booting:
		return "booting"
	case Idle:
		return "idle"
	case Active:
		return "active"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Valid reports whether s is one of the four known states.
func (s ServerState) Valid() bool {
	return s >= Inactive && s <= Active
}

// ServerKey identifies a physical server across snapshots.
type ServerKey struct {
	Type string
	ID   int
}

func (k ServerKey) String() string {
	return fmt.Sprintf("%s/%d", k.Type, k.ID)
}

// Server is one record of a fleet query. Cores, Memory and Disk are the
// resources the simulator reports as available at query time.
type Server struct {
	Type            string
	ID              int
	State           ServerState
	AvailableAtTime int
	Cores           int
	Memory          int
	Disk            int
}

func (s Server) Key() ServerKey {
	return ServerKey{Type: s.Type, ID: s.ID}
}

func (s Server) String() string {
	return fmt.Sprintf("%s/%d %s avail:%d cores:%d mem:%d disk:%d",
		s.Type, s.ID, s.State, s.AvailableAtTime, s.Cores, s.Memory, s.Disk)
}

// Snapshot is the ordered list of servers captured by one fleet query.
// A Snapshot is never modified after it is built; reorderings produce a
// new Snapshot.
type Snapshot struct {
	servers []Server
	index   map[ServerKey]int
}

// NewSnapshot copies servers so the caller cannot alias the result.
func NewSnapshot(servers []Server) Snapshot {
	s := Snapshot{
		servers: make([]Server, len(servers)),
		index:   make(map[ServerKey]int, len(servers)),
	}
	copy(s.servers, servers)
	for i, srv := range s.servers {
		if _, ok := s.index[srv.Key()]; !ok {
			s.index[srv.Key()] = i
		}
	}
	return s
}

func (s Snapshot) Len() int {
	return len(s.servers)
}

func (s Snapshot) At(i int) Server {
	return s.servers[i]
}

// Servers returns a copy of the records in snapshot order.
func (s Snapshot) Servers() []Server {
	out := make([]Server, len(s.servers))
	copy(out, s.servers)
	return out
}

// Find returns the record for key, if the snapshot has one.
func (s Snapshot) Find(key ServerKey) (Server, bool) {
	i, ok := s.index[key]
	if !ok {
		return Server{}, false
	}
	return s.servers[i], true
}

// QueuedJob is one row of an LSTJ reply: a job waiting or running on a server.
type QueuedJob struct {
	ID               int
	State            int
	StartTime        int
	EstimatedRuntime int
	Cores            int
	Memory           int
	Disk             int
}

// Placement is the decision sent back to the simulator for one job.
type Placement struct {
	JobID  int
	Server ServerKey
}

func (p Placement) String() string {
	return fmt.Sprintf("job:%d -> %s", p.JobID, p.Server)
}
