package stats

/*
Every metric the client records. Keep new names in this file.
*/

const (
	/************************* Session metrics **************************/
	/*
		number of JOBN notifications received from the simulator
	*/
	SessionJobsReceivedCounter = "jobsReceivedCounter"

	/*
		number of SCHD requests acknowledged by the simulator
	*/
	SessionJobsScheduledCounter = "jobsScheduledCounter"

	/*
		number of SCHD requests the simulator refused
	*/
	SessionPlacementRejectedCounter = "placementRejectedCounter"

	/*
		number of jobs for which no server could hold the job in either view
	*/
	SessionNoCapacityCounter = "noCapacityCounter"

	/*
		number of placements decided on initial (rather than current) capacity figures
	*/
	SessionFallbackPlacementCounter = "fallbackPlacementCounter"

	/*
		time spent inside the placement policy for one job, including any queue queries
	*/
	SessionPlacementDecisionLatency_ms = "placementDecisionLatency_ms"

	/************************* Fleet metrics **************************/
	/*
		number of full fleet queries (RESC All)
	*/
	FleetRefreshCounter = "fleetRefreshCounter"

	/*
		number of servers in the most recent snapshot
	*/
	FleetSizeGauge = "fleetSizeGauge"

	/*
		number of per-server job list queries (LSTJ) issued by the wait-time heuristic
	*/
	FleetQueueQueryCounter = "queueQueryCounter"

	/************************* Protocol metrics **************************/
	/*
		time for one command to be written and its reply line read
	*/
	ProtocolRoundTripLatency_ms = "roundTripLatency_ms"

	/*
		number of replies that did not match the expected shape
	*/
	ProtocolErrorCounter = "protocolErrorCounter"

	/*
		number of commands that got no reply line
	*/
	ProtocolTransportErrorCounter = "transportErrorCounter"
)
