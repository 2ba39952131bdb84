package common

import (
	"time"
)

// ds-sim listens here unless told otherwise.
const DefaultSimulatorAddr = "127.0.0.1:8096"

// Overrides the configured simulator address when set.
const SimulatorAddrEnvVar = "DSSIM_ADDR"

const DefaultDialTimeout = 5 * time.Second
const DefaultDialRetries = 5

// Zero means block until the simulator replies.
const DefaultReadTimeout = time.Duration(0)

const DefaultStatsLatch = 15 * time.Second
