// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package main

import (
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"

	"github.com/vechain/govunlock/api/estimates"
	"github.com/vechain/govunlock/gov"
)

// Config is the optional TOML configuration. Flags set on the command line
// take precedence over it.
//
//	Network = "kusama"
//	APIAddr = "0.0.0.0:8670"
//	CacheSize = 1024
//
//	[Params]
//	VoteLockingPeriod = 100800
type Config struct {
	Network     string                   `toml:"Network"`
	APIAddr     string                   `toml:"APIAddr"`
	APICors     string                   `toml:"APICors"`
	CacheSize   *uint64                  `toml:"CacheSize"`
	BatchLimit  *uint64                  `toml:"BatchLimit"`
	MetricsAddr string                   `toml:"MetricsAddr"`
	Params      estimates.ParamsOverride `toml:"Params"`
}

// loadConfig decodes the config file at path. An empty path yields the zero config.
func loadConfig(path string) (*Config, error) {
	cfg := &Config{}
	if path == "" {
		return cfg, nil
	}
	meta, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, errors.Wrapf(err, "load config %s", path)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return nil, errors.Errorf("load config %s: unknown keys [%s]", path, strings.Join(keys, ", "))
	}
	return cfg, nil
}

// resolveParams returns the lock params of network with the config file
// overrides applied first and the flag overrides last.
func resolveParams(network string, cfg *Config, flags estimates.ParamsOverride) (gov.Params, error) {
	params, ok := gov.NetworkParams(network)
	if !ok {
		return gov.Params{}, errors.Errorf("unknown network %q", network)
	}
	params = cfg.Params.Apply(params)
	params = flags.Apply(params)
	if params.VoteLockingPeriod == 0 {
		return gov.Params{}, errors.New("vote locking period must be positive")
	}
	return params, nil
}
