package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dssim/dsclient/common/client"
	"github.com/dssim/dsclient/scheduler/protocol"
)

// manualCmd relays commands typed by the user, one per line.
type manualCmd struct {
	in io.Reader
}

func (c *manualCmd) RegisterFlags() *cobra.Command {
	return &cobra.Command{
		Use:   "manual",
		Short: "Send commands read from stdin and print each reply, until QUIT",
		Long: "Send commands read from stdin and print each reply, until QUIT.\n" +
			"No handshake is made: start with HELO and AUTH <user>. QUIT is sent at end of input.",
	}
}

func (c *manualCmd) Run(cl *client.SimpleClient, cmd *cobra.Command, args []string) error {
	if err := connect(cl, false); err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	scanner := bufio.NewScanner(c.in)
	for scanner.Scan() {
		command := strings.TrimSpace(scanner.Text())
		if command == "" {
			continue
		}
		reply, err := cl.Simulator.Send(command)
		if err != nil {
			return exitError(err)
		}
		fmt.Fprintln(out, reply)
		if command == protocol.CmdQuit {
			return nil
		}
	}
	if err := scanner.Err(); err != nil {
		return err
	}
	return exitError(cl.Simulator.Quit())
}
