package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/gabapcia/chainindex/internal/blockproc"

	"github.com/urfave/cli/v3"
)

// waitForShutdown blocks until an interrupt or termination signal arrives or ctx is done.
func waitForShutdown(ctx context.Context) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case <-quit:
	case <-ctx.Done():
	}
}

// startPipelineCommand returns a CLI command that starts the ingestion
// pipeline: the chain stream, block processing and checkpointing. With
// --serve the read API runs alongside it.
//
// Usage example:
//
//	chainindex start --serve
//
// The process runs until it receives an interrupt (SIGINT or SIGTERM).
func startPipelineCommand(bp blockproc.Service, api Server) *cli.Command {
	return &cli.Command{
		Name:        "start",
		Description: "Starts the block ingestion pipeline.",
		Usage:       "Indexes blocks as they are produced. Terminates gracefully on Ctrl+C or termination signals.",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "serve",
				Usage: "Also serve the read API",
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			if c.Bool("serve") {
				if err := api.Start(ctx); err != nil {
					return err
				}
				defer api.Close()
			}

			if err := bp.Start(ctx); err != nil {
				return err
			}
			defer bp.Close()

			waitForShutdown(ctx)
			return nil
		},
	}
}

// serveCommand returns a CLI command that only serves the read API.
//
// Usage example:
//
//	chainindex serve
func serveCommand(api Server) *cli.Command {
	return &cli.Command{
		Name:        "serve",
		Description: "Serves the read API over the indexed data.",
		Usage:       "Serves blocks, transactions and stats over HTTP. Terminates gracefully on Ctrl+C or termination signals.",
		Action: func(ctx context.Context, c *cli.Command) error {
			if err := api.Start(ctx); err != nil {
				return err
			}
			defer api.Close()

			waitForShutdown(ctx)
			return nil
		},
	}
}
