// SPDX-License-Identifier: MIT

// Command neuronet loads large directed edge lists and answers degree,
// neighbor, criticality and bounded-BFS queries from the command line.
package main

import (
	"os"

	"github.com/katalvlaran/neuronet/cmd/neuronet/commands"
)

func main() {
	os.Exit(commands.Execute())
}
