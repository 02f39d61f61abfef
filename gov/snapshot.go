// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package gov

import (
	"maps"
	"slices"

	"github.com/vechain/govunlock/bn"
)

// Snapshot is the governance state of a single account at CurrentBlock.
type Snapshot struct {
	CurrentBlock BlockNumber
	Referendums  map[ReferendumID]Referendum
	Tracks       map[TrackID]TrackInfo
	TrackLocks   map[TrackID]bn.Int // raw on-chain lock per track
	Voting       map[TrackID]Voting
}

// VotingTracks returns the ids of tracks with voting state, in ascending order.
func (s *Snapshot) VotingTracks() []TrackID {
	return slices.Sorted(maps.Keys(s.Voting))
}

// SortedVotes returns the referendum ids of the votes in ascending order.
func (c *Casting) SortedVotes() []ReferendumID {
	return slices.Sorted(maps.Keys(c.Votes))
}

// Params are the chain constants of the conviction voting pallet.
type Params struct {
	VoteLockingPeriod BlockNumber `json:"voteLockingPeriod" toml:"VoteLockingPeriod"`
	UndecidingTimeout BlockNumber `json:"undecidingTimeout" toml:"UndecidingTimeout"`
}

const (
	blocksPerDay = 14400 // 6 seconds block time
)

// Known network parameters.
var (
	PolkadotParams = Params{
		VoteLockingPeriod: 7 * blocksPerDay,
		UndecidingTimeout: 14 * blocksPerDay,
	}
	KusamaParams = Params{
		VoteLockingPeriod: 7 * blocksPerDay,
		UndecidingTimeout: 14 * blocksPerDay,
	}
	DevParams = Params{
		VoteLockingPeriod: 10,
		UndecidingTimeout: 20,
	}
)

// NetworkParams returns the parameters of the named network.
func NetworkParams(name string) (Params, bool) {
	switch name {
	case "polkadot":
		return PolkadotParams, true
	case "kusama":
		return KusamaParams, true
	case "dev":
		return DevParams, true
	default:
		return Params{}, false
	}
}
