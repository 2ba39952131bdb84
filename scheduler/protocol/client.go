package protocol

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/dssim/dsclient/common/stats"
	"github.com/dssim/dsclient/scheduler/domain"
)

// Client issues the simulator's commands over a Conn and turns replies into
// domain values.
type Client struct {
	conn Conn
	stat stats.StatsReceiver
}

func NewClient(conn Conn, stat stats.StatsReceiver) *Client {
	return &Client{conn: conn, stat: stat}
}

// Handshake greets the simulator and authenticates as user.
func (c *Client) Handshake(user string) error {
	if err := c.expect(CmdHello, ReplyOK); err != nil {
		return err
	}
	return c.expect(CmdAuth+" "+user, ReplyOK)
}

// Quit ends the session.
func (c *Client) Quit() error {
	return c.expect(CmdQuit, ReplyQuit)
}

// Send passes command through unchanged. Used for manual sessions.
func (c *Client) Send(command string) (string, error) {
	return c.conn.Send(command)
}

// NextJob asks for the next job. ok is false once the simulator has no more jobs.
func (c *Client) NextJob() (job domain.Job, ok bool, err error) {
	reply, err := c.conn.Send(CmdReady)
	if err != nil {
		return domain.Job{}, false, err
	}
	switch {
	case reply == ReplyNone:
		return domain.Job{}, false, nil
	case strings.HasPrefix(reply, ReplyJob+" "):
		job, err := ParseJob(reply)
		if err != nil {
			return domain.Job{}, false, c.protocolError(CmdReady, reply, err.Error())
		}
		return job, true, nil
	case isErrorReply(reply):
		return domain.Job{}, false, c.protocolError(CmdReady, reply, "simulator returned an error")
	default:
		return domain.Job{}, false, c.protocolError(CmdReady, reply, "want JOBN or NONE")
	}
}

// AllServers returns every server regardless of state.
func (c *Client) AllServers() ([]domain.Server, error) {
	return c.Servers(AllServers)
}

// Servers runs a RESC query and reads server records until ".".
func (c *Client) Servers(query ResourceQuery) ([]domain.Server, error) {
	cmd := query.String()
	servers := []domain.Server{}
	err := c.readRows(cmd, func(row string) error {
		s, err := ParseServer(row)
		if err != nil {
			return err
		}
		servers = append(servers, s)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return servers, nil
}

// ListJobs returns the jobs waiting or running on a server.
func (c *Client) ListJobs(key domain.ServerKey) ([]domain.QueuedJob, error) {
	cmd := listJobsCommand(key)
	jobs := []domain.QueuedJob{}
	err := c.readRows(cmd, func(row string) error {
		j, err := ParseQueuedJob(row)
		if err != nil {
			return err
		}
		jobs = append(jobs, j)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return jobs, nil
}

// Schedule submits a placement. A refusal is returned as *RejectedError.
func (c *Client) Schedule(p domain.Placement) error {
	cmd := scheduleCommand(p)
	reply, err := c.conn.Send(cmd)
	if err != nil {
		return err
	}
	switch {
	case reply == ReplyOK:
		return nil
	case isErrorReply(reply):
		return &RejectedError{Command: cmd, Reply: reply}
	default:
		return c.protocolError(cmd, reply, "want OK or ERR")
	}
}

// readRows sends cmd, expects a DATA header (or an immediate "."), then
// acknowledges each row with OK until the terminator.
func (c *Client) readRows(cmd string, handle func(row string) error) error {
	reply, err := c.conn.Send(cmd)
	if err != nil {
		return err
	}
	if reply == EndOfRecords {
		return nil
	}
	if !strings.HasPrefix(reply, ReplyData) {
		return c.protocolError(cmd, reply, "want DATA")
	}
	for {
		row, err := c.conn.Send(CmdAck)
		if err != nil {
			return errors.Wrapf(err, "reading rows of %q", cmd)
		}
		if row == EndOfRecords {
			return nil
		}
		if isErrorReply(row) {
			return c.protocolError(cmd, row, "simulator returned an error mid-list")
		}
		if err := handle(row); err != nil {
			return c.protocolError(cmd, row, err.Error())
		}
	}
}

func (c *Client) expect(cmd, want string) error {
	reply, err := c.conn.Send(cmd)
	if err != nil {
		return err
	}
	if reply != want {
		return c.protocolError(cmd, reply, "want "+want)
	}
	return nil
}

func (c *Client) protocolError(cmd, reply, reason string) error {
	c.stat.Counter(stats.ProtocolErrorCounter).Inc(1)
	return &ProtocolError{Command: cmd, Reply: reply, Reason: reason}
}
