package protocol

import (
	"fmt"
	"strings"

	"github.com/dssim/dsclient/scheduler/domain"
)

// Commands
const (
	CmdHello    = "HELO"
	CmdAuth     = "AUTH"
	CmdReady    = "REDY"
	CmdResource = "RESC"
	CmdSchedule = "SCHD"
	CmdListJobs = "LSTJ"
	CmdAck      = "OK"
	CmdQuit     = "QUIT"
)

// Replies
const (
	ReplyOK      = "OK"
	ReplyJob     = "JOBN"
	ReplyNone    = "NONE"
	ReplyData    = "DATA"
	ReplyError   = "ERR"
	ReplyQuit    = "QUIT"
	EndOfRecords = "."
)

// ResourceQueryKind selects which servers a RESC command reports.
type ResourceQueryKind int

const (
	// Every server regardless of state.
	QueryAll ResourceQueryKind = iota
	// Servers that can run the given requirements now or after queued jobs finish.
	QueryAvail
	// Servers whose total capacity can run the given requirements.
	QueryCapable
)

// ResourceQuery is the argument of a RESC command.
type ResourceQuery struct {
	Kind   ResourceQueryKind
	Cores  int
	Memory int
	Disk   int
}

// AllServers is the unfiltered fleet query.
var AllServers = ResourceQuery{Kind: QueryAll}

// QueryFor builds a filtered query for the requirements of job.
func QueryFor(kind ResourceQueryKind, job domain.Job) ResourceQuery {
	return ResourceQuery{Kind: kind, Cores: job.Cores, Memory: job.Memory, Disk: job.Disk}
}

func (q ResourceQuery) String() string {
	switch q.Kind {
	case QueryAvail:
		return fmt.Sprintf("%s Avail %d %d %d", CmdResource, q.Cores, q.Memory, q.Disk)
	case QueryCapable:
		return fmt.Sprintf("%s Capable %d %d %d", CmdResource, q.Cores, q.Memory, q.Disk)
	default:
		return CmdResource + " All"
	}
}

func scheduleCommand(p domain.Placement) string {
	return fmt.Sprintf("%s %d %s %d", CmdSchedule, p.JobID, p.Server.Type, p.Server.ID)
}

func listJobsCommand(key domain.ServerKey) string {
	return fmt.Sprintf("%s %s %d", CmdListJobs, key.Type, key.ID)
}

func isErrorReply(reply string) bool {
	return strings.HasPrefix(reply, ReplyError)
}
