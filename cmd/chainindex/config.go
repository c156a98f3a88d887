package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/gabapcia/chainindex/internal/pkg/validator"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/kelseyhightower/envconfig"
)

const envPrefix = "CHAININDEX"

// config is read from CHAININDEX_* environment variables.
type config struct {
	Network string `envconfig:"NETWORK" validate:"required"`

	RPCURL         string            `envconfig:"RPC_URL" validate:"required,url"`
	RPCTimeout     time.Duration     `envconfig:"RPC_TIMEOUT" default:"5s" validate:"gt=0"`
	RPCRetryMax    int               `envconfig:"RPC_RETRY_MAX" default:"2" validate:"gte=0"`
	RPCRateLimit   int               `envconfig:"RPC_RATE_LIMIT" default:"0" validate:"gte=0"`
	RPCCallTimeout time.Duration     `envconfig:"RPC_CALL_TIMEOUT" default:"10s" validate:"gt=0"`
	RPCHeaders     map[string]string `envconfig:"RPC_HEADERS"`

	DatabaseURL string `envconfig:"DATABASE_URL" validate:"required"`

	RedisAddr     string `envconfig:"REDIS_ADDR" default:"localhost:6379" validate:"required,hostname_port"`
	RedisUsername string `envconfig:"REDIS_USERNAME"`
	RedisPassword string `envconfig:"REDIS_PASSWORD"`
	RedisDB       int    `envconfig:"REDIS_DB" default:"0" validate:"gte=0"`
	MaxFailures   int64  `envconfig:"MAX_FAILURES" default:"1000" validate:"gt=0"`

	StartBlock       string        `envconfig:"START_BLOCK" validate:"omitempty,number|hexqty"`
	PollInterval     time.Duration `envconfig:"POLL_INTERVAL" default:"12s" validate:"gt=0"`
	TxWorkers        int           `envconfig:"TX_WORKERS" default:"1" validate:"gte=1"`
	OptimisticStatus bool          `envconfig:"OPTIMISTIC_STATUS" default:"false"`
	ProcessAttempts  uint          `envconfig:"PROCESS_ATTEMPTS" default:"3" validate:"gte=1,lte=255"`

	HTTPAddr    string   `envconfig:"HTTP_ADDR" default:":8080" validate:"required"`
	CORSOrigins []string `envconfig:"CORS_ORIGINS"`

	LogLevel        string  `envconfig:"LOG_LEVEL" default:"info" validate:"oneof=debug info warn error"`
	OTELEnabled     bool    `envconfig:"OTEL_ENABLED" default:"false"`
	OTELSampleRatio float64 `envconfig:"OTEL_SAMPLE_RATIO" default:"1" validate:"gte=0,lte=1"`
	ServiceName     string  `envconfig:"SERVICE_NAME" default:"chainindex" validate:"required"`
}

// startHeight returns the configured start block, if any. Both decimal and
// 0x-prefixed hex quantities are accepted.
func (c config) startHeight() (uint64, bool) {
	if c.StartBlock == "" {
		return 0, false
	}

	var (
		height uint64
		err    error
	)
	if strings.HasPrefix(c.StartBlock, "0x") {
		height, err = hexutil.DecodeUint64(c.StartBlock)
	} else {
		height, err = strconv.ParseUint(c.StartBlock, 10, 64)
	}
	if err != nil {
		return 0, false
	}

	return height, true
}

func loadConfig() (config, error) {
	var cfg config
	if err := envconfig.Process(envPrefix, &cfg); err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}

	if err := validator.Validate(cfg); err != nil {
		return cfg, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}
