package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dssim/dsclient/common/client"
	"github.com/dssim/dsclient/scheduler/policy"
)

type policiesCmd struct{}

func (c *policiesCmd) RegisterFlags() *cobra.Command {
	return &cobra.Command{
		Use:   "policies",
		Short: "List the placement policies and the names they accept",
	}
}

func (c *policiesCmd) Run(cl *client.SimpleClient, cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	for _, name := range policy.AlgorithmNames() {
		a, _ := policy.ParseAlgorithm(name)
		fmt.Fprintf(out, "%-8s %s\n", name, a)
	}
	return nil
}
