// Copyright (c) 2018 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
	cli "gopkg.in/urfave/cli.v1"

	"github.com/vechain/govunlock/api/estimates"
	"github.com/vechain/govunlock/gov"
	"github.com/vechain/govunlock/log"
)

func fatal(args ...any) {
	var w io.Writer
	if runtime.GOOS == "windows" {
		// The SameFile check below doesn't work on Windows.
		// stdout is unlikely to get redirected though, so just print there.
		w = os.Stdout
	} else {
		outf, _ := os.Stdout.Stat()
		errf, _ := os.Stderr.Stat()
		if outf != nil && errf != nil && os.SameFile(outf, errf) {
			w = os.Stderr
		} else {
			w = io.MultiWriter(os.Stdout, os.Stderr)
		}
	}
	fmt.Fprint(w, "Fatal: ")
	fmt.Fprintln(w, args...)
	os.Exit(1)
}

func readIntFromUInt64Flag(val uint64) (int, error) {
	if val > math.MaxInt {
		return 0, errors.Errorf("flag value %d exceeds max int", val)
	}
	return int(val), nil
}

func initLogger(ctx *cli.Context) error {
	lvl, err := readIntFromUInt64Flag(ctx.Uint64(verbosityFlag.Name))
	if err != nil {
		return errors.Wrap(err, "parse verbosity flag")
	}
	var level slog.LevelVar
	level.Set(log.FromLegacyLevel(lvl))

	var handler slog.Handler
	switch {
	case ctx.Bool(jsonLogsFlag.Name):
		handler = log.JSONHandlerWithLevel(os.Stderr, &level)
	case isatty.IsTerminal(os.Stderr.Fd()):
		handler = log.TerminalHandlerWithLevel(os.Stderr, &level)
	default:
		handler = log.LogfmtHandlerWithLevel(os.Stderr, &level)
	}
	log.SetDefault(log.NewLogger(handler))
	return nil
}

func handleExitSignal() context.Context {
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		exitSignalCh := make(chan os.Signal, 1)
		signal.Notify(exitSignalCh, os.Interrupt, syscall.SIGTERM)
		sig := <-exitSignalCh
		log.Info("exit signal received", "signal", sig)
		cancel()
	}()
	return ctx
}

// flagParams returns the lock params overrides set on the command line.
func flagParams(ctx *cli.Context) estimates.ParamsOverride {
	var o estimates.ParamsOverride
	if ctx.IsSet(voteLockingPeriodFlag.Name) {
		v := gov.BlockNumber(ctx.Uint64(voteLockingPeriodFlag.Name))
		o.VoteLockingPeriod = &v
	}
	if ctx.IsSet(undecidingTimeoutFlag.Name) {
		v := gov.BlockNumber(ctx.Uint64(undecidingTimeoutFlag.Name))
		o.UndecidingTimeout = &v
	}
	return o
}

// loadSettings loads the config file and resolves the network and its lock params.
func loadSettings(ctx *cli.Context) (*Config, string, gov.Params, error) {
	cfg, err := loadConfig(ctx.String(configFlag.Name))
	if err != nil {
		return nil, "", gov.Params{}, err
	}
	network := ctx.String(networkFlag.Name)
	if !ctx.IsSet(networkFlag.Name) && cfg.Network != "" {
		network = cfg.Network
	}
	params, err := resolveParams(network, cfg, flagParams(ctx))
	if err != nil {
		return nil, "", gov.Params{}, err
	}
	return cfg, network, params, nil
}

// stringSetting returns the flag value unless it is unset and the config has one.
func stringSetting(ctx *cli.Context, flag cli.StringFlag, cfgValue string) string {
	if !ctx.IsSet(flag.Name) && cfgValue != "" {
		return cfgValue
	}
	return ctx.String(flag.Name)
}

// intSetting is like stringSetting for uint64 flags read as int.
func intSetting(ctx *cli.Context, flag cli.Uint64Flag, cfgValue *uint64) (int, error) {
	val := ctx.Uint64(flag.Name)
	if !ctx.IsSet(flag.Name) && cfgValue != nil {
		val = *cfgValue
	}
	n, err := readIntFromUInt64Flag(val)
	if err != nil {
		return 0, errors.Wrapf(err, "parse %s", flag.Name)
	}
	return n, nil
}
