// Copyright (c) 2018 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package main

import (
	cli "gopkg.in/urfave/cli.v1"

	"github.com/vechain/govunlock/log"
)

var (
	networkFlag = cli.StringFlag{
		Name:   "network",
		Value:  "polkadot",
		Usage:  "the network whose lock parameters to estimate with (polkadot|kusama|dev)",
		EnvVar: "GOVUNLOCK_NETWORK",
	}
	configFlag = cli.StringFlag{
		Name:   "config",
		Usage:  "path of a TOML config file",
		EnvVar: "GOVUNLOCK_CONFIG",
	}
	voteLockingPeriodFlag = cli.Uint64Flag{
		Name:  "vote-locking-period",
		Usage: "override the blocks a conviction 1x vote stays locked after its referendum ends",
	}
	undecidingTimeoutFlag = cli.Uint64Flag{
		Name:  "undeciding-timeout",
		Usage: "override the blocks a referendum may wait for a deciding slot",
	}
	outputFlag = cli.StringFlag{
		Name:  "output",
		Value: "text",
		Usage: "estimate output format (text|json)",
	}
	apiAddrFlag = cli.StringFlag{
		Name:   "api-addr",
		Value:  "localhost:8670",
		Usage:  "API service listening address",
		EnvVar: "GOVUNLOCK_API_ADDR",
	}
	apiCorsFlag = cli.StringFlag{
		Name:  "api-cors",
		Value: "",
		Usage: "comma separated list of domains from which to accept cross origin requests to API",
	}
	apiCacheSizeFlag = cli.Uint64Flag{
		Name:  "api-cache-size",
		Value: 4096,
		Usage: "number of estimates kept in cache (0 disables the cache)",
	}
	apiBatchLimitFlag = cli.Uint64Flag{
		Name:  "api-batch-limit",
		Value: 100,
		Usage: "limit the number of requests of one batch estimate",
	}
	apiParallelismFlag = cli.Uint64Flag{
		Name:  "api-parallelism",
		Value: 4,
		Usage: "number of estimates of one batch computed at once",
	}
	apiBodyLimitFlag = cli.Uint64Flag{
		Name:  "api-body-limit",
		Value: 1 << 20,
		Usage: "limit the size in bytes of a request body",
	}
	apiTimeoutFlag = cli.Uint64Flag{
		Name:  "api-timeout",
		Value: 10000,
		Usage: "API request timeout value in milliseconds",
	}
	enableAPILogsFlag = cli.BoolFlag{
		Name:  "enable-api-logs",
		Usage: "enables API requests logging",
	}
	apiSlowQueriesThresholdFlag = cli.Uint64Flag{
		Name:  "api-slow-queries-threshold",
		Usage: "all queries with duration longer than this threshold (ms) will be logged",
	}
	apiLog5xxErrorsFlag = cli.BoolFlag{
		Name:  "api-log-5xx-errors",
		Usage: "log all requests answered with a 5xx status",
	}
	enableMetricsFlag = cli.BoolFlag{
		Name:  "enable-metrics",
		Usage: "enables metrics collection",
	}
	metricsAddrFlag = cli.StringFlag{
		Name:  "metrics-addr",
		Value: "localhost:2112",
		Usage: "metrics service listening address",
	}
	verbosityFlag = cli.Uint64Flag{
		Name:  "verbosity",
		Value: log.LegacyLevelInfo,
		Usage: "log verbosity (0-9)",
	}
	jsonLogsFlag = cli.BoolFlag{
		Name:  "json-logs",
		Usage: "output logs in JSON format",
	}
)
