package cli

import (
	"fmt"
	"net/http"
	"os"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/dssim/dsclient/common"
	commoncli "github.com/dssim/dsclient/common/client"
	"github.com/dssim/dsclient/common/dialer"
	"github.com/dssim/dsclient/common/endpoints"
	dserrors "github.com/dssim/dsclient/common/errors"
	"github.com/dssim/dsclient/common/log/hooks"
	"github.com/dssim/dsclient/common/stats"
	"github.com/dssim/dsclient/scheduler/config"
	"github.com/dssim/dsclient/scheduler/protocol"
)

// DsCLIClient includes fields required for CLI client handling
type DsCLIClient struct {
	commoncli.SimpleClient

	verbose    bool
	logContext bool
	httpAddr   string
	configName string
	configFile string

	manual    *manualCmd
	stopStats func()
}

func (c *DsCLIClient) Exec() error {
	return c.RootCmd.Execute()
}

// NewSimpleCLIClient builds the command tree. A nil Dialer is replaced by
// one configured from the Simulator config section.
func NewSimpleCLIClient(d dialer.Dialer) (commoncli.CLIClient, error) {
	return newCLIClient(d), nil
}

func newCLIClient(d dialer.Dialer) *DsCLIClient {
	c := &DsCLIClient{}
	c.Dial = d

	c.RootCmd = &cobra.Command{
		Use:                "dsclient",
		Short:              "dsclient schedules ds-sim jobs onto servers",
		PersistentPreRunE:  c.Init,
		Run:                func(*cobra.Command, []string) {},
		PersistentPostRunE: c.Close,
		SilenceUsage:       true,
		SilenceErrors:      true,
	}
	c.RootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return dserrors.NewError(err, dserrors.UsageExitCode)
	})

	flags := c.RootCmd.PersistentFlags()
	flags.StringVar(&c.Addr, "addr", "", fmt.Sprintf("Simulator address. If unset, uses $%s, then the config (default %s)",
		common.SimulatorAddrEnvVar, common.DefaultSimulatorAddr))
	flags.StringVar(&c.User, "user", "", "User name sent with AUTH. If unset, uses the config, then $USER")
	flags.StringVar(&c.LogLevel, "log_level", "info", "Log everything at this level and above (error|warn|info|debug)")
	flags.BoolVarP(&c.verbose, "verbose", "v", false, "Log every protocol line sent and received, same as --log_level=debug")
	flags.BoolVar(&c.logContext, "log_context", false, "Annotate log entries with file:line")
	flags.StringVar(&c.httpAddr, "http_addr", "", "If set, serve /health and /admin/metrics.json on this address")
	flags.StringVar(&c.configName, "config_name", "default", fmt.Sprintf("Named configuration, one of %v", config.Names()))
	flags.StringVar(&c.configFile, "config_file", "", "JSON configuration file, takes precedence over --config_name")

	c.addCmd(&runCmd{})
	c.manual = &manualCmd{in: os.Stdin}
	c.addCmd(c.manual)
	c.addCmd(&policiesCmd{})

	return c
}

// Can only be called from cobra command run or hook
func (c *DsCLIClient) Init(cmd *cobra.Command, args []string) error {
	level, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		log.Error(err)
		return dserrors.NewError(err, dserrors.UsageExitCode)
	}
	if c.verbose {
		level = log.DebugLevel
	}
	log.SetLevel(level)
	if c.logContext {
		log.AddHook(hooks.NewContextHook("dsclient/"))
	}

	if c.configFile != "" {
		c.Configs, err = config.LoadConfigFile(c.configFile)
	} else {
		c.Configs, err = config.GetConfigs(c.configName)
	}
	if err != nil {
		return dserrors.NewError(err, dserrors.UsageExitCode)
	}
	log.Debugf("Using config: %s", c.Configs)

	c.Config, err = c.Configs.Simulator.CreateSimulatorConfig()
	if err != nil {
		return dserrors.NewError(err, dserrors.UsageExitCode)
	}

	resolver := dialer.NewCompositeResolver(
		dialer.NewConstantResolver(c.Addr),
		dialer.NewEnvResolver(common.SimulatorAddrEnvVar),
		dialer.NewConstantResolver(c.Config.Addr),
		dialer.NewConstantResolver(common.DefaultSimulatorAddr),
	)
	if c.Addr, err = resolver.Resolve(); err != nil {
		return dserrors.NewError(err, dserrors.UsageExitCode)
	}
	if c.User == "" {
		c.User = c.Config.User
	}
	if c.User == "" {
		c.User = os.Getenv("USER")
	}

	if c.Dial == nil {
		c.Dial = dialer.NewSimpleDialer(c.Config.DialTimeout, c.Config.DialRetries)
	}

	c.Stat = stats.DefaultStatsReceiver()
	c.stopStats = func() {}
	if c.httpAddr != "" {
		latch, err := c.Configs.Scheduler.StatsLatchDuration()
		if err != nil {
			return dserrors.NewError(err, dserrors.UsageExitCode)
		}
		c.Stat, c.stopStats = stats.NewCustomStatsReceiver(stats.NewFlatStatsRegistry, latch)
		c.serveAdmin(endpoints.NewAdminServer(c.httpAddr, c.Stat))
	}
	c.Stat = c.Stat.Precision(time.Millisecond)
	return nil
}

func (c *DsCLIClient) serveAdmin(s *endpoints.AdminServer) {
	go func() {
		if err := s.Serve(); err != nil && err != http.ErrServerClosed {
			log.WithFields(log.Fields{"addr": s.Addr, "err": err}).Error("Admin server stopped")
		}
	}()
}

// Needs cobra parameters for use from rootCmd
func (c *DsCLIClient) Close(cmd *cobra.Command, args []string) error {
	if c.stopStats != nil {
		c.stopStats()
	}
	if c.Conn != nil {
		return c.Conn.Close()
	}
	return nil
}

func (c *DsCLIClient) addCmd(cmd commoncli.Cmd) {
	cobraCmd := cmd.RegisterFlags()
	cobraCmd.RunE = func(innerCmd *cobra.Command, args []string) error {
		return cmd.Run(&c.SimpleClient, innerCmd, args)
	}
	c.RootCmd.AddCommand(cobraCmd)
}

// connect dials the simulator and wraps the connection. The handshake is
// skipped for manual sessions, where the user types it.
func connect(cl *commoncli.SimpleClient, handshake bool) error {
	netConn, err := cl.Dial.Dial(cl.Addr)
	if err != nil {
		return dserrors.NewError(err, dserrors.TransportFailureExitCode)
	}
	cl.Conn = protocol.NewLineConn(netConn, cl.Config.ReadTimeout, cl.Stat)
	cl.Simulator = protocol.NewClient(cl.Conn, cl.Stat)
	if !handshake {
		return nil
	}
	log.WithFields(log.Fields{"addr": cl.Addr, "user": cl.User}).Info("Connected to simulator")
	if err := cl.Simulator.Handshake(cl.User); err != nil {
		return exitError(err)
	}
	return nil
}
