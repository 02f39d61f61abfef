// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package main

import (
	"flag"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	cli "gopkg.in/urfave/cli.v1"

	"github.com/vechain/govunlock/gov"
)

func newContext(t *testing.T, flags []cli.Flag, args ...string) *cli.Context {
	set := flag.NewFlagSet("test", flag.ContinueOnError)
	for _, f := range flags {
		f.Apply(set)
	}
	require.NoError(t, set.Parse(args))
	return cli.NewContext(cli.NewApp(), set, nil)
}

var settingFlags = []cli.Flag{
	networkFlag,
	configFlag,
	voteLockingPeriodFlag,
	undecidingTimeoutFlag,
	apiAddrFlag,
	apiCacheSizeFlag,
}

func TestReadIntFromUInt64Flag(t *testing.T) {
	got, err := readIntFromUInt64Flag(42)
	require.NoError(t, err)
	assert.Equal(t, 42, got)

	got, err = readIntFromUInt64Flag(uint64(math.MaxInt))
	require.NoError(t, err)
	assert.Equal(t, math.MaxInt, got)

	_, err = readIntFromUInt64Flag(uint64(math.MaxInt) + 1)
	assert.Error(t, err)
}

func TestLoadSettingsDefaults(t *testing.T) {
	ctx := newContext(t, settingFlags)
	cfg, network, params, err := loadSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, &Config{}, cfg)
	assert.Equal(t, "polkadot", network)
	assert.Equal(t, gov.PolkadotParams, params)
}

func TestLoadSettingsPrecedence(t *testing.T) {
	path := writeConfig(t, `
Network = "dev"
APIAddr = "0.0.0.0:9000"
CacheSize = 16

[Params]
VoteLockingPeriod = 300
UndecidingTimeout = 400
`)

	ctx := newContext(t, settingFlags, "--config", path, "--undeciding-timeout", "7")
	cfg, network, params, err := loadSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, "dev", network)
	assert.Equal(t, gov.Params{VoteLockingPeriod: 300, UndecidingTimeout: 7}, params)
	assert.Equal(t, "0.0.0.0:9000", stringSetting(ctx, apiAddrFlag, cfg.APIAddr))
	size, err := intSetting(ctx, apiCacheSizeFlag, cfg.CacheSize)
	require.NoError(t, err)
	assert.Equal(t, 16, size)

	ctx = newContext(t, settingFlags, "--config", path, "--network", "kusama", "--api-addr", ":1", "--api-cache-size", "2")
	cfg, network, params, err = loadSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, "kusama", network)
	assert.Equal(t, gov.Params{VoteLockingPeriod: 300, UndecidingTimeout: 400}, params)
	assert.Equal(t, ":1", stringSetting(ctx, apiAddrFlag, cfg.APIAddr))
	size, err = intSetting(ctx, apiCacheSizeFlag, cfg.CacheSize)
	require.NoError(t, err)
	assert.Equal(t, 2, size)
}

func TestLoadSettingsErrors(t *testing.T) {
	_, _, _, err := loadSettings(newContext(t, settingFlags, "--network", "westend"))
	assert.EqualError(t, err, `unknown network "westend"`)

	path := writeConfig(t, "Bogus = 1\n")
	_, _, _, err = loadSettings(newContext(t, settingFlags, "--config", path))
	assert.ErrorContains(t, err, "unknown keys [Bogus]")
}
