// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package schedule

import "github.com/vechain/govunlock/gov"

// MaxConvictionEnd estimates the block at which the conviction hold of vote ends.
// A nil referendum, typed or not, is one that no longer exists (cancelled or
// killed), its votes are free right away.
func MaxConvictionEnd(
	current gov.BlockNumber,
	referendum gov.Referendum,
	track gov.TrackInfo,
	vote gov.AccountVote,
	params gov.Params,
) gov.BlockNumber {
	switch r := referendum.(type) {
	case *gov.Ongoing:
		if r != nil {
			return gov.AddBlocks(maxCompletedAt(r, track, params), convictionHold(vote, params))
		}
	case *gov.Approved:
		if r != nil {
			return completedHold(r.Since, vote, gov.Aye, params)
		}
	case *gov.Rejected:
		if r != nil {
			return completedHold(r.Since, vote, gov.Nay, params)
		}
	case *gov.TimedOut:
		if r != nil {
			return r.Since
		}
	}
	return current
}

// maxCompletedAt returns the latest block an ongoing referendum can complete at.
func maxCompletedAt(r *gov.Ongoing, track gov.TrackInfo, params gov.Params) gov.BlockNumber {
	switch {
	case r.InQueue:
		return gov.AddBlocks(gov.AddBlocks(r.Submitted, params.UndecidingTimeout), track.DecisionPeriod)
	case r.Deciding != nil:
		end := gov.AddBlocks(r.Deciding.Since, track.DecisionPeriod)
		if r.Deciding.Confirming != nil {
			return gov.MaxBlock(*r.Deciding.Confirming, end)
		}
		return end
	default:
		// preparing
		wait := gov.MaxBlock(params.UndecidingTimeout, track.PreparePeriod)
		return gov.AddBlocks(gov.AddBlocks(r.Submitted, wait), track.DecisionPeriod)
	}
}

// completedHold keeps the conviction hold only for votes on the winning side.
func completedHold(since gov.BlockNumber, vote gov.AccountVote, winner gov.Direction, params gov.Params) gov.BlockNumber {
	if std, ok := vote.(*gov.StandardVote); ok && std != nil && std.Direction == winner {
		return gov.AddBlocks(since, convictionHold(vote, params))
	}
	return since
}

func convictionHold(vote gov.AccountVote, params gov.Params) gov.BlockNumber {
	std, ok := vote.(*gov.StandardVote)
	if !ok || std == nil {
		return 0
	}
	return gov.MulBlocks(params.VoteLockingPeriod, std.Conviction.LockPeriods())
}
