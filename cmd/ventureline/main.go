// Command ventureline is the admin CLI: it serves the API and manages
// favorites and bookings from the terminal.
package main

import (
	"context"
	"os"

	"github.com/charmbracelet/fang"

	"github.com/pkordes/ventureline/backend/internal/cli"
)

var version = "dev"

func main() {
	if err := fang.Execute(
		context.Background(),
		cli.NewRootCmd(),
		fang.WithVersion(version),
		fang.WithNotifySignal(os.Interrupt, os.Kill),
	); err != nil {
		os.Exit(1)
	}
}
