// The cfgctl command is an operator CLI for the remote config service.
package main

import (
	"os"

	"github.com/mealhub/remote-config/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
