// Copyright (c) 2018 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// govunlock estimates when governance locked balance becomes transferable.
package main

import (
	"fmt"
	"os"
	"sync/atomic"
	"time"

	"github.com/pkg/errors"
	cli "gopkg.in/urfave/cli.v1"

	"github.com/vechain/govunlock/api"
	"github.com/vechain/govunlock/api/estimates"
	"github.com/vechain/govunlock/cmd/govunlock/httpserver"
	"github.com/vechain/govunlock/gov"
	"github.com/vechain/govunlock/log"
	"github.com/vechain/govunlock/metrics"
	"github.com/vechain/govunlock/snapshot"
)

var (
	version       string
	gitCommit     string
	gitTag        string
	copyrightYear string

	logger = log.WithContext("pkg", "main")
)

func fullVersion() string {
	versionMeta := "release"
	if gitTag == "" {
		versionMeta = "dev"
	}
	return fmt.Sprintf("%s-%s-%s", version, gitCommit, versionMeta)
}

func main() {
	app := cli.App{
		Version:   fullVersion(),
		Name:      "govunlock",
		Usage:     "Unlock schedule estimator of conviction voting locks",
		Copyright: fmt.Sprintf("2025-%s VeChain Foundation <https://vechain.org/>", copyrightYear),
		Commands: []cli.Command{
			{
				Name:      "estimate",
				Usage:     "print the unlock schedule of a snapshot file (json|yaml, - for stdin)",
				ArgsUsage: "<snapshot>",
				Flags: []cli.Flag{
					networkFlag,
					configFlag,
					voteLockingPeriodFlag,
					undecidingTimeoutFlag,
					outputFlag,
					verbosityFlag,
					jsonLogsFlag,
				},
				Action: estimateAction,
			},
			{
				Name:  "serve",
				Usage: "serve unlock estimates over HTTP",
				Flags: []cli.Flag{
					networkFlag,
					configFlag,
					voteLockingPeriodFlag,
					undecidingTimeoutFlag,
					apiAddrFlag,
					apiCorsFlag,
					apiCacheSizeFlag,
					apiBatchLimitFlag,
					apiParallelismFlag,
					apiBodyLimitFlag,
					apiTimeoutFlag,
					enableAPILogsFlag,
					apiSlowQueriesThresholdFlag,
					apiLog5xxErrorsFlag,
					enableMetricsFlag,
					metricsAddrFlag,
					verbosityFlag,
					jsonLogsFlag,
				},
				Action: serveAction,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fatal(err)
	}
}

func estimateAction(ctx *cli.Context) error {
	if err := initLogger(ctx); err != nil {
		return err
	}
	if ctx.NArg() != 1 {
		return errors.New("expected exactly one snapshot file")
	}
	_, network, params, err := loadSettings(ctx)
	if err != nil {
		return err
	}

	snap, err := snapshot.LoadFile(ctx.Args().First())
	if err != nil {
		return err
	}
	logger.Debug("estimating", "network", network, "voteLockingPeriod", params.VoteLockingPeriod, "undecidingTimeout", params.UndecidingTimeout)

	return printEstimate(os.Stdout, estimates.NewEstimate(snap, params), ctx.String(outputFlag.Name))
}

func serveAction(ctx *cli.Context) error {
	defer func() { logger.Info("exited") }()

	if err := initLogger(ctx); err != nil {
		return err
	}
	cfg, network, params, err := loadSettings(ctx)
	if err != nil {
		return err
	}
	exitSignal := handleExitSignal()

	cacheSize, err := intSetting(ctx, apiCacheSizeFlag, cfg.CacheSize)
	if err != nil {
		return err
	}
	batchLimit, err := intSetting(ctx, apiBatchLimitFlag, cfg.BatchLimit)
	if err != nil {
		return err
	}
	parallelism, err := readIntFromUInt64Flag(ctx.Uint64(apiParallelismFlag.Name))
	if err != nil {
		return errors.Wrap(err, "parse api-parallelism flag")
	}

	enableMetrics := ctx.Bool(enableMetricsFlag.Name)
	metricsURL := ""
	if enableMetrics {
		metrics.InitializePrometheusMetrics()
		url, closeFunc, err := httpserver.StartMetricsServer(stringSetting(ctx, metricsAddrFlag, cfg.MetricsAddr))
		if err != nil {
			return errors.WithMessage(err, "start metrics server")
		}
		defer func() { logger.Info("stopping metrics server..."); closeFunc() }()
		metricsURL = url
	}

	var reqLogs atomic.Bool
	reqLogs.Store(ctx.Bool(enableAPILogsFlag.Name))

	handler, err := api.New(api.Options{
		AllowedOrigins: stringSetting(ctx, apiCorsFlag, cfg.APICors),
		Network:        network,
		Params:         params,
		Estimates: estimates.Options{
			CacheSize:   cacheSize,
			BatchLimit:  batchLimit,
			Parallelism: parallelism,
		},
		EnableMetrics:        enableMetrics,
		EnableReqLogger:      &reqLogs,
		SlowQueriesThreshold: time.Duration(ctx.Uint64(apiSlowQueriesThresholdFlag.Name)) * time.Millisecond,
		Log5xxErrors:         ctx.Bool(apiLog5xxErrorsFlag.Name),
	})
	if err != nil {
		return err
	}

	apiURL, closeAPI, err := httpserver.StartAPIServer(stringSetting(ctx, apiAddrFlag, cfg.APIAddr), handler, httpserver.APIServerOptions{
		Timeout:   time.Duration(ctx.Uint64(apiTimeoutFlag.Name)) * time.Millisecond,
		BodyLimit: int64(ctx.Uint64(apiBodyLimitFlag.Name)),
	})
	if err != nil {
		return errors.WithMessage(err, "start API server")
	}
	defer func() { logger.Info("stopping API server..."); closeAPI() }()

	printStartupMessage(network, params, apiURL, metricsURL)

	<-exitSignal.Done()
	return nil
}

func printStartupMessage(network string, params gov.Params, apiURL, metricsURL string) {
	if metricsURL == "" {
		metricsURL = "Disabled"
	}
	fmt.Printf(`Starting %v
    Network      [ %v ]
    Lock period  [ %v blocks ]
    Undeciding   [ %v blocks ]
    API portal   [ %v ]
    Metrics      [ %v ]
`,
		"govunlock "+fullVersion(),
		network, params.VoteLockingPeriod, params.UndecidingTimeout, apiURL, metricsURL)
}
