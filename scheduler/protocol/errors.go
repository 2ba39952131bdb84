package protocol

import (
	"fmt"

	"github.com/pkg/errors"
)

// TransportError means a command got no reply line.
type TransportError struct {
	Command string
	Err     error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("no reply to %q: %v", e.Command, e.Err)
}

// ProtocolError means a reply did not have any shape the command allows.
type ProtocolError struct {
	Command string
	Reply   string
	Reason  string
}

func (e *ProtocolError) Error() string {
	return fmt.Sprintf("unexpected reply %q to %q: %s", e.Reply, e.Command, e.Reason)
}

// RejectedError means the simulator refused a placement.
type RejectedError struct {
	Command string
	Reply   string
}

func (e *RejectedError) Error() string {
	return fmt.Sprintf("placement %q rejected: %s", e.Command, e.Reply)
}

func IsTransportError(err error) bool {
	_, ok := errors.Cause(err).(*TransportError)
	return ok
}

func IsProtocolError(err error) bool {
	_, ok := errors.Cause(err).(*ProtocolError)
	return ok
}

func IsRejectedError(err error) bool {
	_, ok := errors.Cause(err).(*RejectedError)
	return ok
}
