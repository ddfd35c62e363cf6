// Command carboncomply calculates carbon emissions from activity data and
// analyzes material compliance against substance regulations.
package main

import (
	"fmt"
	"os"

	"github.com/rshade/carboncomply/internal/cli"
	"github.com/rshade/carboncomply/pkg/version"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	return cli.NewRootCmd(version.GetVersion()).Execute()
}
