package cli

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/dssim/dsclient/common/client"
	dserrors "github.com/dssim/dsclient/common/errors"
	"github.com/dssim/dsclient/scheduler/policy"
	"github.com/dssim/dsclient/scheduler/protocol"
	"github.com/dssim/dsclient/scheduler/server"
)

type runCmd struct {
	algorithm   string
	feasibility string
}

func (c *runCmd) RegisterFlags() *cobra.Command {
	r := &cobra.Command{
		Use:   "run",
		Short: "Schedule every job the simulator submits, then quit",
	}
	r.Flags().StringVarP(&c.algorithm, "algorithm", "a", "",
		fmt.Sprintf("Placement policy, one of %v. If unset, uses the config", policy.AlgorithmNames()))
	r.Flags().StringVar(&c.feasibility, "feasibility", "",
		"Resources a server must have for a job: full (cores, memory and disk) or cores. If unset, uses the config")
	return r
}

func (c *runCmd) Run(cl *client.SimpleClient, cmd *cobra.Command, args []string) error {
	jc := cl.Configs.Scheduler
	if c.algorithm != "" {
		jc.Algorithm = c.algorithm
	}
	if c.feasibility != "" {
		jc.Feasibility = c.feasibility
	}
	sessionConfig, err := jc.CreateSessionConfig()
	if err != nil {
		return dserrors.NewError(err, dserrors.UsageExitCode)
	}

	if err := connect(cl, true); err != nil {
		return err
	}
	session, err := server.NewSession(cl.Simulator, sessionConfig, cl.Stat)
	if err != nil {
		return dserrors.NewError(err, dserrors.UsageExitCode)
	}

	if err := session.Run(); err != nil {
		// Still say goodbye unless the connection itself is gone.
		if !protocol.IsTransportError(err) {
			if qerr := cl.Simulator.Quit(); qerr != nil {
				log.WithFields(log.Fields{"sessionID": session.ID(), "err": qerr}).Debug("Quit after failure")
			}
		}
		return exitError(err)
	}
	if err := cl.Simulator.Quit(); err != nil {
		return exitError(err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Scheduled %d jobs with %s\n", session.Scheduled(), sessionConfig.Algorithm)
	return nil
}
