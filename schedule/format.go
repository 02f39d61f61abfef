// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package schedule

import (
	"github.com/vechain/govunlock/bn"
	"github.com/vechain/govunlock/gov"
)

// format converts ascending tranches into chunks. Every tranche due at or
// before current is folded into a single claimable chunk placed first.
func format(tranches []*ClaimableLock, current gov.BlockNumber) Schedule {
	var (
		claimable bn.Int
		affects   []ClaimAffect
		pending   []Chunk
	)
	for _, tranche := range tranches {
		block, ok := tranche.ClaimAt.Block()
		switch {
		case !ok:
			pending = append(pending, &PendingDelegationChunk{Amount: tranche.Amount})
		case block <= current:
			claimable = claimable.Add(tranche.Amount)
			affects = unionAffects(affects, tranche.Affected)
		default:
			pending = append(pending, &PendingLockChunk{Amount: tranche.Amount, ClaimableAt: block})
		}
	}

	if claimable.IsZero() {
		return Schedule(pending)
	}
	return append(Schedule{&ClaimableChunk{
		Amount:  claimable,
		Actions: claimActions(affects),
	}}, pending...)
}

// claimActions returns, per track in discovery order, the removal of every
// affected vote followed by the unlock of the track.
func claimActions(affects []ClaimAffect) []ClaimAction {
	var (
		tracks []gov.TrackID
		votes  = make(map[gov.TrackID][]gov.ReferendumID)
		seen   = make(map[gov.TrackID]bool)
	)
	for _, affect := range affects {
		if !seen[affect.Track] {
			seen[affect.Track] = true
			tracks = append(tracks, affect.Track)
		}
		if affect.Kind == AffectVote {
			votes[affect.Track] = append(votes[affect.Track], affect.Referendum)
		}
	}

	actions := make([]ClaimAction, 0, len(affects)+len(tracks))
	for _, track := range tracks {
		for _, ref := range votes[track] {
			actions = append(actions, RemoveVote(track, ref))
		}
		actions = append(actions, Unlock(track))
	}
	return actions
}
