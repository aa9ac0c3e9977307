// Command gwt plays Given/When/Then sample narratives.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/roach88/scenario/internal/cli"
)

// Version information, injected at build time.
var Version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	rootCmd := cli.NewRootCommand()
	rootCmd.Version = Version
	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
	}
	stop()
	os.Exit(cli.GetExitCode(err))
}
