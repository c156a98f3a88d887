package cli

import (
	"context"
	"os"

	"github.com/gabapcia/chainindex/internal/blockproc"

	"github.com/urfave/cli/v3"
)

// Server is a background service with a start/stop lifecycle, such as the read API.
type Server interface {
	Start(ctx context.Context) error
	Close()
}

// FailureLister reads back the blocks the pipeline gave up on, newest first.
type FailureLister interface {
	RecentFailures(ctx context.Context, network string, limit int64) ([]blockproc.BlockProcessingFailure, error)
}

// Services groups what the commands operate on.
type Services struct {
	Network  string
	Pipeline blockproc.Service
	Indexer  blockproc.Indexer
	API      Server
	Failures FailureLister
}

// Run initializes and executes the chainindex CLI application.
//
// It registers all available commands, including:
//
//   - `start`: Runs the ingestion pipeline, optionally with the read API.
//   - `serve`: Runs the read API only.
//   - `index-block`: Indexes one block by hash.
//   - `failures`: Lists blocks the pipeline gave up on.
func Run(ctx context.Context, s Services) error {
	app := &cli.Command{
		EnableShellCompletion: true,
		Name:                  "chainindex",
		Description:           "Command-line interface for running and operating the chainindex pipeline.",
		Usage:                 "chainindex [command] [flags]",
		Commands: []*cli.Command{
			startPipelineCommand(s.Pipeline, s.API),
			serveCommand(s.API),
			indexBlockCommand(s.Indexer),
			listFailuresCommand(s.Network, s.Failures),
		},
	}

	return app.Run(ctx, os.Args)
}
