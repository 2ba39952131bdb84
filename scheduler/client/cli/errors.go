package cli

import (
	"github.com/pkg/errors"

	dserrors "github.com/dssim/dsclient/common/errors"
	"github.com/dssim/dsclient/scheduler/policy"
	"github.com/dssim/dsclient/scheduler/protocol"
)

// exitError attaches the exit code for err's class.
func exitError(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := err.(*dserrors.ExitCodeError); ok {
		return err
	}
	switch {
	case protocol.IsTransportError(err):
		return dserrors.NewError(err, dserrors.TransportFailureExitCode)
	case protocol.IsProtocolError(err):
		return dserrors.NewError(err, dserrors.ProtocolViolationExitCode)
	case protocol.IsRejectedError(err):
		return dserrors.NewError(err, dserrors.PlacementRejectedExitCode)
	case errors.Cause(err) == policy.ErrNoCapacity:
		return dserrors.NewError(err, dserrors.NoCapacityExitCode)
	default:
		return dserrors.NewError(err, dserrors.GenericFailureExitCode)
	}
}
