package main

import (
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/dssim/dsclient/common/errors"
	"github.com/dssim/dsclient/scheduler/client/cli"
)

// A ds-sim scheduling client
func main() {
	cl, err := cli.NewSimpleCLIClient(nil)
	if err != nil {
		log.Fatal("Cannot initialize dsclient: ", err)
	}
	if err := cl.Exec(); err != nil {
		log.Error(err)
		os.Exit(int(errors.ExitCodeOf(err)))
	}
}
