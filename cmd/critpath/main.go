// Command critpath schedules projects with the critical path method.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/matzehuels/critpath/internal/cli"
	cperrors "github.com/matzehuels/critpath/pkg/errors"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := cli.New(os.Stderr, cli.LogInfo).RootCommand().ExecuteContext(ctx)
	stop()

	code := cli.ExitCode(err)
	if code != cli.ExitOK && code != cli.ExitCanceled {
		fmt.Fprintln(os.Stderr, "Error:", cperrors.UserMessage(err))
	}
	os.Exit(code)
}
