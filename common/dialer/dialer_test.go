package dialer

import (
	"errors"
	"net"
	"testing"
	"time"

	"github.com/cenkalti/backoff"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fakeDialer(failures int, maxRetries uint64) (*simpleDialer, *int) {
	calls := 0
	d := &simpleDialer{
		timeout:    time.Second,
		maxRetries: maxRetries,
		newBackOff: func() backoff.BackOff { return &backoff.ZeroBackOff{} },
		dial: func(network, addr string, timeout time.Duration) (net.Conn, error) {
			calls++
			if calls <= failures {
				return nil, errors.New("connection refused")
			}
			c, _ := net.Pipe()
			return c, nil
		},
	}
	return d, &calls
}

func TestDialRetriesUntilListening(t *testing.T) {
	d, calls := fakeDialer(2, 5)
	conn, err := d.Dial("127.0.0.1:8096")
	require.NoError(t, err)
	defer conn.Close()
	assert.Equal(t, 3, *calls)
}

func TestDialGivesUp(t *testing.T) {
	d, calls := fakeDialer(10, 2)
	_, err := d.Dial("127.0.0.1:8096")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection refused")
	assert.Equal(t, 3, *calls)
}

func TestDialRealListener(t *testing.T) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer l.Close()
	go func() {
		c, err := l.Accept()
		if err == nil {
			c.Close()
		}
	}()

	conn, err := NewSimpleDialer(time.Second, 0).Dial(l.Addr().String())
	require.NoError(t, err)
	conn.Close()
}
