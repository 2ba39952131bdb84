// Package server drives a scheduling session against the simulator: it
// waits for a job, refreshes the fleet, asks the configured policy for a
// server and submits the placement, one blocking exchange at a time.
package server
