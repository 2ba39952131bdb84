// Package dialer establishes the TCP connection to the simulator.
// Provides the Dialer interface with a backoff based implementation.
package dialer

import (
	"net"
	"time"

	"github.com/cenkalti/backoff"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Dialer opens a connection to addr.
type Dialer interface {
	Dial(addr string) (net.Conn, error)
}

type simpleDialer struct {
	timeout    time.Duration
	maxRetries uint64
	newBackOff func() backoff.BackOff
	dial       func(network, addr string, timeout time.Duration) (net.Conn, error)
}

// NewSimpleDialer creates a Dialer that makes up to maxRetries additional
// attempts, with exponential backoff between them, while the simulator is
// not yet listening.
func NewSimpleDialer(timeout time.Duration, maxRetries uint64) Dialer {
	return &simpleDialer{
		timeout:    timeout,
		maxRetries: maxRetries,
		newBackOff: func() backoff.BackOff { return backoff.NewExponentialBackOff() },
		dial:       net.DialTimeout,
	}
}

func (d *simpleDialer) Dial(addr string) (net.Conn, error) {
	var conn net.Conn
	attempt := 0
	op := func() error {
		attempt++
		log.WithFields(log.Fields{"addr": addr, "attempt": attempt}).Info("Dialing simulator")
		c, err := d.dial("tcp", addr, d.timeout)
		if err != nil {
			log.WithFields(log.Fields{"addr": addr, "err": err}).Info("Dial failed")
			return err
		}
		conn = c
		return nil
	}
	b := backoff.WithMaxRetries(d.newBackOff(), d.maxRetries)
	if err := backoff.Retry(op, b); err != nil {
		return nil, errors.Wrapf(err, "error connecting to %s after %d attempts", addr, attempt)
	}
	return conn, nil
}
