// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package gov

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vechain/govunlock/bn"
)

func TestConvictionLockPeriods(t *testing.T) {
	expected := map[Conviction]uint64{
		ConvictionNone:     0,
		ConvictionLocked1x: 1,
		ConvictionLocked2x: 2,
		ConvictionLocked3x: 4,
		ConvictionLocked4x: 8,
		ConvictionLocked5x: 16,
		ConvictionLocked6x: 32,
		Conviction(42):     0,
	}
	for c, periods := range expected {
		assert.Equal(t, periods, c.LockPeriods(), c.String())
	}

	var c Conviction
	require.NoError(t, c.UnmarshalText([]byte("locked3x")))
	assert.Equal(t, ConvictionLocked3x, c)
	assert.Error(t, c.UnmarshalText([]byte("locked7x")))
	_, err := Conviction(42).MarshalText()
	assert.Error(t, err)
}

func TestBlockArithmetic(t *testing.T) {
	assert.Equal(t, BlockNumber(3), AddBlocks(1, 2))
	assert.Equal(t, BlockNumber(math.MaxUint64), AddBlocks(math.MaxUint64-1, 2))
	assert.Equal(t, BlockNumber(64), MulBlocks(2, 32))
	assert.Equal(t, BlockNumber(0), MulBlocks(2, 0))
	assert.Equal(t, BlockNumber(math.MaxUint64), MulBlocks(math.MaxUint64/2, 4))
	assert.Equal(t, BlockNumber(5), MaxBlock(5, 3))
}

func TestVoteLocked(t *testing.T) {
	assert.Equal(t, "3", (&StandardVote{Balance: bn.FromUint64(3)}).Locked().String())
	assert.Equal(t, "5", (&SplitVote{Aye: bn.FromUint64(2), Nay: bn.FromUint64(3)}).Locked().String())
	assert.Equal(t, "9", (&SplitAbstainVote{
		Aye:     bn.FromUint64(2),
		Nay:     bn.FromUint64(3),
		Abstain: bn.FromUint64(4),
	}).Locked().String())
}

const snapshotJSONText = `{
	"currentBlock": 1000,
	"referendums": {
		"1": {"type": "ongoing", "submitted": 10, "deciding": {"since": 20, "confirming": 30}},
		"2": {"type": "approved", "since": 100},
		"3": {"type": "timedout", "since": 200}
	},
	"tracks": {"0": {"decisionPeriod": 50, "preparePeriod": 5}},
	"trackLocks": {"0": "10", "1": 7},
	"voting": {
		"0": {
			"type": "casting",
			"prior": {"amount": "2", "unlockAt": 900},
			"votes": {
				"1": {"type": "standard", "direction": "aye", "conviction": "locked2x", "balance": "5"},
				"2": {"type": "split", "aye": "1", "nay": "1"}
			}
		},
		"1": {"type": "delegating", "balance": "7", "target": "bob", "conviction": "locked1x"}
	}
}`

func TestSnapshotJSON(t *testing.T) {
	var snap Snapshot
	require.NoError(t, json.Unmarshal([]byte(snapshotJSONText), &snap))

	assert.Equal(t, BlockNumber(1000), snap.CurrentBlock)
	assert.Equal(t, []TrackID{0, 1}, snap.VotingTracks())

	ongoing, ok := snap.Referendums[1].(*Ongoing)
	require.True(t, ok)
	require.NotNil(t, ongoing.Deciding)
	require.NotNil(t, ongoing.Deciding.Confirming)
	assert.Equal(t, BlockNumber(30), *ongoing.Deciding.Confirming)
	assert.IsType(t, &Approved{}, snap.Referendums[2])
	assert.IsType(t, &TimedOut{}, snap.Referendums[3])

	casting, ok := snap.Voting[0].(*Casting)
	require.True(t, ok)
	assert.Equal(t, []ReferendumID{1, 2}, casting.SortedVotes())
	std, ok := casting.Votes[1].(*StandardVote)
	require.True(t, ok)
	assert.Equal(t, Aye, std.Direction)
	assert.Equal(t, ConvictionLocked2x, std.Conviction)
	assert.Equal(t, "2", casting.Prior.Amount.String())

	delegating, ok := snap.Voting[1].(*Delegating)
	require.True(t, ok)
	assert.Equal(t, "bob", delegating.Target)
	assert.Equal(t, "7", snap.TrackLocks[1].String())

	data, err := json.Marshal(&snap)
	require.NoError(t, err)
	var again Snapshot
	require.NoError(t, json.Unmarshal(data, &again))
	assert.Equal(t, snap.Hash(Params{}), again.Hash(Params{}))
}

func TestSnapshotJSONErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
		err  string
	}{
		{"unknown referendum", `{"referendums": {"1": {"type": "cancelled", "since": 1}}}`, `referendums[1]: unknown referendum type "cancelled"`},
		{"missing since", `{"referendums": {"1": {"type": "approved"}}}`, "referendums[1]: approved: missing since"},
		{"missing submitted", `{"referendums": {"1": {"type": "ongoing"}}}`, "referendums[1]: ongoing: missing submitted"},
		{"unknown voting", `{"voting": {"0": {"type": "abstaining"}}}`, `voting[0]: unknown voting type "abstaining"`},
		{"missing delegation balance", `{"voting": {"0": {"type": "delegating"}}}`, "voting[0]: delegating: missing balance"},
		{"missing direction", `{"voting": {"0": {"type": "casting", "votes": {"4": {"type": "standard", "balance": "1"}}}}}`, "voting[0]: votes[4]: standard: missing direction"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var snap Snapshot
			err := json.Unmarshal([]byte(tt.data), &snap)
			require.Error(t, err)
			assert.Equal(t, tt.err, err.Error())
		})
	}

	var snap Snapshot
	assert.Error(t, json.Unmarshal([]byte(`{"trackLocks": {"0": "-3"}}`), &snap))
}

func TestSnapshotHash(t *testing.T) {
	newSnap := func(lock uint64) *Snapshot {
		return &Snapshot{
			CurrentBlock: 10,
			Referendums:  map[ReferendumID]Referendum{1: &Approved{Since: 5}, 2: &Rejected{Since: 6}},
			TrackLocks:   map[TrackID]bn.Int{0: bn.FromUint64(lock)},
			Voting: map[TrackID]Voting{
				0: &Casting{Votes: map[ReferendumID]AccountVote{
					1: &StandardVote{Balance: bn.FromUint64(1)},
					2: &StandardVote{Direction: Nay, Balance: bn.FromUint64(2)},
				}},
			},
		}
	}

	assert.NotPanics(t, func() { (&Snapshot{}).Hash(Params{}) })
	assert.NotEqual(t, (&Snapshot{}).Hash(Params{}), (&Snapshot{CurrentBlock: 1}).Hash(Params{}))

	a, b := newSnap(3), newSnap(3)
	assert.Equal(t, a.Hash(DevParams), b.Hash(DevParams))
	assert.False(t, a.Hash(DevParams).IsZero())
	assert.NotEqual(t, a.Hash(DevParams), newSnap(4).Hash(DevParams))
	assert.NotEqual(t, a.Hash(DevParams), a.Hash(PolkadotParams))
	assert.Len(t, a.Hash(DevParams).String(), 66)
}

func TestNetworkParams(t *testing.T) {
	p, ok := NetworkParams("polkadot")
	assert.True(t, ok)
	assert.Equal(t, PolkadotParams, p)

	_, ok = NetworkParams("westend")
	assert.False(t, ok)
}
