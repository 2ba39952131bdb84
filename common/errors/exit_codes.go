package errors

type ExitCode int

const (
	GenericFailureExitCode ExitCode = 1
	UsageExitCode          ExitCode = 2

	// Session failures, one per error class.
	TransportFailureExitCode  ExitCode = 10
	ProtocolViolationExitCode ExitCode = 11
	NoCapacityExitCode        ExitCode = 12
	PlacementRejectedExitCode ExitCode = 13
)
