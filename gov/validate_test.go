// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package gov

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vechain/govunlock/bn"
)

func TestValidate(t *testing.T) {
	confirming := BlockNumber(5)
	tests := []struct {
		name string
		snap Snapshot
		err  string
	}{
		{
			name: "valid",
			snap: Snapshot{
				Referendums: map[ReferendumID]Referendum{1: &Ongoing{Submitted: 1, Deciding: &DecidingStatus{Since: 2}}},
				Voting: map[TrackID]Voting{
					0: &Casting{Votes: map[ReferendumID]AccountVote{1: &StandardVote{Conviction: ConvictionLocked6x, Balance: bn.FromUint64(1)}}},
					1: &Delegating{Balance: bn.FromUint64(1)},
				},
			},
		},
		{
			name: "nil referendum",
			snap: Snapshot{Referendums: map[ReferendumID]Referendum{3: nil}},
			err:  "referendums[3]: nil referendum",
		},
		{
			name: "queued and deciding",
			snap: Snapshot{Referendums: map[ReferendumID]Referendum{1: &Ongoing{InQueue: true, Deciding: &DecidingStatus{}}}},
			err:  "referendums[1]: ongoing: queued while deciding",
		},
		{
			name: "confirming before deciding",
			snap: Snapshot{Referendums: map[ReferendumID]Referendum{1: &Ongoing{Deciding: &DecidingStatus{Since: 9, Confirming: &confirming}}}},
			err:  "referendums[1]: ongoing: confirming at 5 before deciding since 9",
		},
		{
			name: "nil voting",
			snap: Snapshot{Voting: map[TrackID]Voting{2: nil}},
			err:  "voting[2]: nil voting",
		},
		{
			name: "bad conviction",
			snap: Snapshot{Voting: map[TrackID]Voting{0: &Casting{Votes: map[ReferendumID]AccountVote{4: &StandardVote{Conviction: 9}}}}},
			err:  "voting[0]: votes[4]: standard: invalid conviction 9",
		},
		{
			name: "bad direction",
			snap: Snapshot{Voting: map[TrackID]Voting{0: &Casting{Votes: map[ReferendumID]AccountVote{4: &StandardVote{Direction: 2}}}}},
			err:  "voting[0]: votes[4]: standard: invalid direction 2",
		},
		{
			name: "nil vote",
			snap: Snapshot{Voting: map[TrackID]Voting{0: &Casting{Votes: map[ReferendumID]AccountVote{4: nil}}}},
			err:  "voting[0]: votes[4]: nil vote",
		},
		{
			name: "bad delegation conviction",
			snap: Snapshot{Voting: map[TrackID]Voting{0: &Delegating{Conviction: 7}}},
			err:  "voting[0]: delegating: invalid conviction 7",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.snap.Validate()
			if tt.err == "" {
				assert.NoError(t, err)
				return
			}
			assert.EqualError(t, err, tt.err)
		})
	}
}
