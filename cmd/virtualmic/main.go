// SPDX-License-Identifier: EPL-2.0
package main

import (
	"fmt"
	"os"

	"github.com/bpanahij/virtualmic/internal/cli"
	"github.com/bpanahij/virtualmic/internal/config"
)

func main() {
	if err := config.LoadEnv(); err != nil {
		fmt.Fprintln(os.Stderr, err)
	}

	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
