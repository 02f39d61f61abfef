// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package schedule

import (
	"github.com/vechain/govunlock/bn"
	"github.com/vechain/govunlock/gov"
)

// TotalLock returns the lock explained by the voting state of a track.
// Votes and the prior lock hold the same balance, so the total is their max, not the sum.
func TotalLock(voting gov.Voting) bn.Int {
	switch v := voting.(type) {
	case *gov.Casting:
		if v == nil {
			return bn.Int{}
		}
		total := v.Prior.Amount
		for _, vote := range v.Votes {
			total = total.Max(lockedBy(vote))
		}
		return total
	case *gov.Delegating:
		if v == nil {
			return bn.Int{}
		}
		return v.Balance.Max(v.Prior.Amount)
	default:
		return bn.Int{}
	}
}

// lockedBy returns the balance vote locks, zero for a nil vote.
func lockedBy(vote gov.AccountVote) bn.Int {
	switch v := vote.(type) {
	case *gov.StandardVote:
		if v != nil {
			return v.Locked()
		}
	case *gov.SplitVote:
		if v != nil {
			return v.Locked()
		}
	case *gov.SplitAbstainVote:
		if v != nil {
			return v.Locked()
		}
	}
	return bn.Int{}
}

// gapLock returns the part of the raw track lock that no vote or prior explains.
// Such a lock is claimable right away by unlocking the track, together with
// everything explained.
func gapLock(track gov.TrackID, voting gov.Voting, snap *gov.Snapshot) (ClaimableLock, bool) {
	explained := TotalLock(voting)
	gap := snap.TrackLocks[track].Sub(explained)
	if gap.IsZero() {
		return ClaimableLock{}, false
	}
	return ClaimableLock{
		ClaimAt:  At(snap.CurrentBlock),
		Amount:   gap.Add(explained),
		Affected: []ClaimAffect{TrackAffect(track)},
	}, true
}
