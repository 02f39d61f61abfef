// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package schedule

import (
	"github.com/vechain/govunlock/bn"
	"github.com/vechain/govunlock/gov"
)

// claimableLocks lists every lock of the snapshot with its claim time,
// tracks ascending, then per track: gap, prior, votes ascending by referendum.
func (c *Calculator) claimableLocks() []ClaimableLock {
	var locks []ClaimableLock
	for _, track := range c.snap.VotingTracks() {
		locks = c.appendTrackLocks(locks, track, c.snap.Voting[track])
	}
	return locks
}

func (c *Calculator) appendTrackLocks(locks []ClaimableLock, track gov.TrackID, voting gov.Voting) []ClaimableLock {
	if gap, ok := gapLock(track, voting, c.snap); ok {
		locks = append(locks, gap)
	}

	switch v := voting.(type) {
	case *gov.Casting:
		if v == nil {
			break
		}
		locks = appendPriorLock(locks, track, v.Prior)
		for _, ref := range v.SortedVotes() {
			std, ok := v.Votes[ref].(*gov.StandardVote)
			if !ok || std == nil {
				// split votes carry no conviction, they are released with the track
				continue
			}
			locks = append(locks, ClaimableLock{
				ClaimAt:  At(c.voteUnlockAt(track, ref, std, v.Prior)),
				Amount:   std.Balance,
				Affected: []ClaimAffect{VoteAffect(track, ref)},
			})
		}
	case *gov.Delegating:
		if v == nil {
			break
		}
		// undelegating is up to the account, nothing to act on here
		locks = append(locks, ClaimableLock{
			ClaimAt: Until(),
			Amount:  v.Balance,
		})
		locks = appendPriorLock(locks, track, v.Prior)
	}
	return locks
}

func appendPriorLock(locks []ClaimableLock, track gov.TrackID, prior gov.PriorLock) []ClaimableLock {
	if prior.Amount.IsZero() {
		return locks
	}
	return append(locks, ClaimableLock{
		ClaimAt:  At(prior.UnlockAt),
		Amount:   prior.Amount,
		Affected: []ClaimAffect{TrackAffect(track)},
	})
}

// voteUnlockAt returns when the vote can be removed: not before its conviction
// hold ends, nor before the prior lock of the track.
func (c *Calculator) voteUnlockAt(track gov.TrackID, ref gov.ReferendumID, vote gov.AccountVote, prior gov.PriorLock) gov.BlockNumber {
	end := MaxConvictionEnd(
		c.snap.CurrentBlock,
		c.snap.Referendums[ref],
		c.snap.Tracks[track],
		vote,
		c.params,
	)
	return gov.MaxBlock(end, prior.UnlockAt)
}

// VoteUnlockAt returns the block at which the standard vote on referendum in track
// can be removed. ok is false if there is no such vote.
func (c *Calculator) VoteUnlockAt(track gov.TrackID, ref gov.ReferendumID) (block gov.BlockNumber, ok bool) {
	casting, ok := c.snap.Voting[track].(*gov.Casting)
	if !ok || casting == nil {
		return 0, false
	}
	std, ok := casting.Votes[ref].(*gov.StandardVote)
	if !ok || std == nil {
		return 0, false
	}
	return c.voteUnlockAt(track, ref, std, casting.Prior), true
}

// TotalGovernanceLock returns the overall governance lock of the account.
// Locks of different tracks overlap the same balance, so this is the max.
func (c *Calculator) TotalGovernanceLock() bn.Int {
	var total bn.Int
	for _, lock := range c.snap.TrackLocks {
		total = total.Max(lock)
	}
	return total
}
