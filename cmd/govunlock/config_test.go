// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vechain/govunlock/api/estimates"
	"github.com/vechain/govunlock/gov"
)

func writeConfig(t *testing.T, content string) string {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func blocks(n gov.BlockNumber) *gov.BlockNumber { return &n }

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
Network = "kusama"
APIAddr = "0.0.0.0:9000"
CacheSize = 0

[Params]
VoteLockingPeriod = 300
`)
	cfg, err := loadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "kusama", cfg.Network)
	assert.Equal(t, "0.0.0.0:9000", cfg.APIAddr)
	require.NotNil(t, cfg.CacheSize)
	assert.Equal(t, uint64(0), *cfg.CacheSize)
	assert.Nil(t, cfg.BatchLimit)
	require.NotNil(t, cfg.Params.VoteLockingPeriod)
	assert.Equal(t, gov.BlockNumber(300), *cfg.Params.VoteLockingPeriod)
	assert.Nil(t, cfg.Params.UndecidingTimeout)

	cfg, err = loadConfig("")
	require.NoError(t, err)
	assert.Equal(t, &Config{}, cfg)
}

func TestLoadConfigErrors(t *testing.T) {
	_, err := loadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorContains(t, err, "load config")

	path := writeConfig(t, "Network = ")
	_, err = loadConfig(path)
	assert.ErrorContains(t, err, "load config "+path)

	path = writeConfig(t, "Netwerk = \"dev\"\n[Params]\nPeriod = 3\n")
	_, err = loadConfig(path)
	assert.EqualError(t, err, "load config "+path+": unknown keys [Netwerk, Params.Period]")
}

func TestResolveParams(t *testing.T) {
	params, err := resolveParams("dev", &Config{}, estimates.ParamsOverride{})
	require.NoError(t, err)
	assert.Equal(t, gov.DevParams, params)

	cfg := &Config{Params: estimates.ParamsOverride{
		VoteLockingPeriod: blocks(30),
		UndecidingTimeout: blocks(40),
	}}
	params, err = resolveParams("dev", cfg, estimates.ParamsOverride{UndecidingTimeout: blocks(50)})
	require.NoError(t, err)
	assert.Equal(t, gov.Params{VoteLockingPeriod: 30, UndecidingTimeout: 50}, params)

	_, err = resolveParams("westend", &Config{}, estimates.ParamsOverride{})
	assert.EqualError(t, err, `unknown network "westend"`)

	_, err = resolveParams("dev", &Config{}, estimates.ParamsOverride{VoteLockingPeriod: blocks(0)})
	assert.EqualError(t, err, "vote locking period must be positive")
}
