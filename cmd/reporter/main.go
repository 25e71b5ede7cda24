// Command reporter answers service-status and event queries over a
// snapshot of municipal issue reports.
package main

import (
	"context"
	"os"
)

// Build-time variables set via ldflags.
var version = "0.1.0-dev"

func main() {
	ctx := context.Background()
	if err := newRootCmd(ctx, &Input{}).Execute(); err != nil {
		os.Exit(1)
	}
}
