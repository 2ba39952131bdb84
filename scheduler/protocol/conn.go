package protocol

//go:generate mockgen -source=conn.go -package=protocol -destination=conn_mock.go

import (
	"bufio"
	"io"
	"net"
	"strings"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/dssim/dsclient/common/stats"
)

// Conn is a blocking request/response channel: each Send writes one command
// line and returns exactly one reply line, or a *TransportError.
type Conn interface {
	Send(command string) (string, error)
	Close() error
}

type lineConn struct {
	conn        net.Conn
	in          *bufio.Reader
	readTimeout time.Duration
	stat        stats.StatsReceiver
}

// NewLineConn wraps an established connection. A zero readTimeout waits
// for a reply indefinitely.
func NewLineConn(conn net.Conn, readTimeout time.Duration, stat stats.StatsReceiver) Conn {
	return &lineConn{
		conn:        conn,
		in:          bufio.NewReader(conn),
		readTimeout: readTimeout,
		stat:        stat,
	}
}

func (c *lineConn) Send(command string) (string, error) {
	defer c.stat.Latency(stats.ProtocolRoundTripLatency_ms).Time().Stop()
	log.Debugf("SENT: %s", command)

	if _, err := io.WriteString(c.conn, command+"\n"); err != nil {
		return "", c.transportError(command, errors.Wrap(err, "write"))
	}
	if c.readTimeout > 0 {
		if err := c.conn.SetReadDeadline(time.Now().Add(c.readTimeout)); err != nil {
			return "", c.transportError(command, errors.Wrap(err, "set deadline"))
		}
	}
	reply, err := c.in.ReadString('\n')
	if err != nil && !(err == io.EOF && reply != "") {
		return "", c.transportError(command, errors.Wrap(err, "read"))
	}
	reply = strings.TrimRight(reply, "\r\n")
	log.Debugf("RCVD: %s", reply)
	return reply, nil
}

func (c *lineConn) Close() error {
	return c.conn.Close()
}

func (c *lineConn) transportError(command string, err error) error {
	c.stat.Counter(stats.ProtocolTransportErrorCounter).Inc(1)
	return &TransportError{Command: command, Err: err}
}
