// Package postgres stores indexed blocks and transactions in PostgreSQL.
// It implements blockproc.Store for the ingestion pipeline and
// explorer.Reader for the read API.
package postgres

import (
	"context"
	"fmt"

	"github.com/gabapcia/chainindex/internal/blockproc"
	"github.com/gabapcia/chainindex/internal/explorer"
	"github.com/gabapcia/chainindex/internal/pkg/logger"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/tracelog"
)

type client struct {
	pool *pgxpool.Pool
}

var (
	_ blockproc.Store = (*client)(nil)
	_ explorer.Reader = (*client)(nil)
)

// pgxLogger forwards pgx trace logs to the application logger.
type pgxLogger struct{}

func (pgxLogger) Log(ctx context.Context, level tracelog.LogLevel, msg string, data map[string]any) {
	kv := make([]any, 0, 2*len(data)+2)
	kv = append(kv, "db.system", "postgresql")
	for k, v := range data {
		kv = append(kv, "db."+k, v)
	}

	switch level {
	case tracelog.LogLevelTrace, tracelog.LogLevelDebug:
		logger.Debug(ctx, msg, kv...)
	case tracelog.LogLevelInfo:
		logger.Info(ctx, msg, kv...)
	case tracelog.LogLevelWarn:
		logger.Warn(ctx, msg, kv...)
	default:
		logger.Error(ctx, msg, kv...)
	}
}

// Close releases every pooled connection.
func (c *client) Close() {
	c.pool.Close()
}

// NewClient connects to connString, verifies the connection and creates the
// tables and indexes that do not exist yet.
func NewClient(ctx context.Context, connString string) (*client, error) {
	config, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("parse database url: %w", err)
	}

	// At warn level tracelog reports failed queries and connection errors only.
	config.ConnConfig.Tracer = &tracelog.TraceLog{
		LogLevel: tracelog.LogLevelWarn,
		Logger:   pgxLogger{},
	}

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, err
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	c := &client{
		pool: pool,
	}

	if err := c.bootstrap(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return c, nil
}
