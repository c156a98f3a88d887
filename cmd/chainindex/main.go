// Command chainindex indexes the blocks and transactions of an EVM chain into
// Postgres and serves them over a read API.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/gabapcia/chainindex/internal/blockproc"
	"github.com/gabapcia/chainindex/internal/chainstream"
	"github.com/gabapcia/chainindex/internal/explorer"
	"github.com/gabapcia/chainindex/internal/handlers/cli"
	apihttp "github.com/gabapcia/chainindex/internal/handlers/http"
	"github.com/gabapcia/chainindex/internal/infra/blockchain/ethereum"
	"github.com/gabapcia/chainindex/internal/infra/storage/postgres"
	"github.com/gabapcia/chainindex/internal/infra/storage/redis"
	"github.com/gabapcia/chainindex/internal/pkg/logger"
	"github.com/gabapcia/chainindex/internal/pkg/resilience/retry"
	"github.com/gabapcia/chainindex/internal/pkg/telemetry"
	transporthttp "github.com/gabapcia/chainindex/internal/pkg/transport/http"
	"github.com/gabapcia/chainindex/internal/pkg/transport/jsonrpc"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	if err := run(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if cfg.OTELEnabled {
		shutdown, err := telemetry.Init(ctx, cfg.ServiceName,
			telemetry.WithServiceVersion(version),
			telemetry.WithNetwork(cfg.Network),
			telemetry.WithSampleRatio(cfg.OTELSampleRatio),
		)
		if err != nil {
			return fmt.Errorf("init telemetry: %w", err)
		}
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 10*time.Second)
			defer cancel()

			_ = shutdown(shutdownCtx)
		}()
	}

	if err := logger.Init(cfg.LogLevel); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() {
		_ = logger.Sync()
	}()

	ctx = logger.Derive(ctx, "network", cfg.Network)

	httpClient := transporthttp.NewClient(
		transporthttp.WithTimeout(cfg.RPCTimeout),
		transporthttp.WithRetryMax(cfg.RPCRetryMax),
		transporthttp.WithHeaders(cfg.RPCHeaders),
	)
	rpc := jsonrpc.NewClient(httpClient, cfg.RPCURL, jsonrpc.WithRateLimit(cfg.RPCRateLimit))
	chain := ethereum.NewClient(rpc,
		ethereum.WithPollInterval(cfg.PollInterval),
		ethereum.WithCallTimeout(cfg.RPCCallTimeout),
	)

	pg, err := postgres.NewClient(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("connect postgres: %w", err)
	}
	defer pg.Close()

	rdb, err := redis.NewClient(ctx, cfg.RedisAddr, cfg.RedisUsername, cfg.RedisPassword, cfg.RedisDB,
		redis.WithMaxFailures(cfg.MaxFailures),
	)
	if err != nil {
		return fmt.Errorf("connect redis: %w", err)
	}
	defer func() {
		_ = rdb.Close()
	}()

	processor := blockproc.NewProcessor(pg, chain,
		blockproc.WithTransactionWorkers(cfg.TxWorkers),
		blockproc.WithCallTimeout(cfg.RPCCallTimeout),
		blockproc.WithOptimisticStatus(cfg.OptimisticStatus),
	)

	streamOpts := []chainstream.Option{chainstream.WithCheckpointStorage(rdb)}
	if height, ok := cfg.startHeight(); ok {
		streamOpts = append(streamOpts, chainstream.WithStartHeight(height))
	}
	stream := chainstream.New(cfg.Network, chain, streamOpts...)

	pipeline := blockproc.NewService(stream, processor,
		blockproc.WithRetry(retry.New(
			retry.WithAttempts(cfg.ProcessAttempts),
			retry.WithDelay(time.Second),
			retry.WithMaxDelay(30*time.Second),
		)),
		blockproc.WithFailureNotifier(rdb),
	)

	api := apihttp.NewServer(cfg.HTTPAddr, explorer.New(pg), apihttp.WithAllowedOrigins(cfg.CORSOrigins...))

	return cli.Run(ctx, cli.Services{
		Network:  cfg.Network,
		Pipeline: pipeline,
		Indexer:  blockproc.NewIndexer(cfg.Network, chain, processor, cfg.RPCCallTimeout),
		API:      api,
		Failures: rdb,
	})
}
