package client

import (
	"github.com/spf13/cobra"

	"github.com/dssim/dsclient/common/dialer"
	"github.com/dssim/dsclient/common/stats"
	"github.com/dssim/dsclient/scheduler/config"
	"github.com/dssim/dsclient/scheduler/protocol"
)

// Client interface that includes CLI handling
type CLIClient interface {
	Exec() error
}

// SimpleClient includes base fields required for implementing client
type SimpleClient struct {
	RootCmd  *cobra.Command
	Addr     string
	User     string
	Dial     dialer.Dialer
	LogLevel string

	// Resolved by the root command before any subcommand runs.
	Config    *config.SimulatorConfig
	Configs   *config.JSONConfigs
	Stat      stats.StatsReceiver
	Conn      protocol.Conn
	Simulator *protocol.Client
}

// Command interface used to run client commands
type Cmd interface {
	RegisterFlags() *cobra.Command
	Run(cl *SimpleClient, cmd *cobra.Command, args []string) error
}
