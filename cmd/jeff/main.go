package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/felixgeelhaar/jeff/internal/cmd"
	"github.com/felixgeelhaar/jeff/internal/exitcode"
	"github.com/felixgeelhaar/jeff/internal/tui"
)

func main() {
	// Cancelled on Ctrl+C so a running gh invocation is interrupted too
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := cmd.ExecuteContext(ctx)
	stop()
	if err == nil {
		exitcode.Exit(exitcode.Success)
	}

	styles := tui.NewStyles(os.Stderr)
	if ctx.Err() == context.Canceled {
		fmt.Fprintln(os.Stderr, "\n"+styles.Warn("Operation cancelled by user"))
		exitcode.Exit(exitcode.Interrupted)
	}

	fmt.Fprintln(os.Stderr, styles.Fail("Error: "+err.Error()))
	exitcode.ExitWithError(err)
}
