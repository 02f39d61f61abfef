// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package schedule

import (
	"fmt"

	"github.com/vechain/govunlock/bn"
	"github.com/vechain/govunlock/gov"
)

// ClaimTime is the moment a lock can be claimed, either at a block or
// until an external action (undelegation) happens. Until is later than any block.
type ClaimTime struct {
	block gov.BlockNumber
	until bool
}

// At returns the claim time at block.
func At(block gov.BlockNumber) ClaimTime { return ClaimTime{block: block} }

// Until returns the claim time that never comes by itself.
func Until() ClaimTime { return ClaimTime{until: true} }

// Block returns the block of the claim time, ok is false for Until.
func (t ClaimTime) Block() (block gov.BlockNumber, ok bool) {
	return t.block, !t.until
}

// Cmp compares two claim times.
func (t ClaimTime) Cmp(other ClaimTime) int {
	switch {
	case t.until && other.until:
		return 0
	case t.until:
		return 1
	case other.until:
		return -1
	case t.block < other.block:
		return -1
	case t.block > other.block:
		return 1
	default:
		return 0
	}
}

// String implements fmt.Stringer.
func (t ClaimTime) String() string {
	if t.until {
		return "until"
	}
	return fmt.Sprintf("at %d", t.block)
}

func compareClaimTime(a, b any) int {
	return a.(ClaimTime).Cmp(b.(ClaimTime))
}

// AffectKind tells what a claim affects.
type AffectKind uint8

const (
	AffectTrack AffectKind = iota // the track lock itself
	AffectVote                    // a vote on the track
)

// ClaimAffect is an item that must be cleared to claim a lock.
// It is comparable and used as its own dedup key.
type ClaimAffect struct {
	Kind       AffectKind
	Track      gov.TrackID
	Referendum gov.ReferendumID // only for AffectVote
}

// TrackAffect returns the affect of the track lock.
func TrackAffect(track gov.TrackID) ClaimAffect {
	return ClaimAffect{Kind: AffectTrack, Track: track}
}

// VoteAffect returns the affect of a vote.
func VoteAffect(track gov.TrackID, referendum gov.ReferendumID) ClaimAffect {
	return ClaimAffect{Kind: AffectVote, Track: track, Referendum: referendum}
}

// ClaimableLock is an amount held until ClaimAt.
type ClaimableLock struct {
	ClaimAt  ClaimTime
	Amount   bn.Int
	Affected []ClaimAffect
}

// unionAffects appends the affects of b missing in a, keeping discovery order.
func unionAffects(a, b []ClaimAffect) []ClaimAffect {
	if len(b) == 0 {
		return a
	}
	seen := make(map[ClaimAffect]struct{}, len(a)+len(b))
	out := make([]ClaimAffect, 0, len(a)+len(b))
	for _, list := range [][]ClaimAffect{a, b} {
		for _, affect := range list {
			if _, ok := seen[affect]; ok {
				continue
			}
			seen[affect] = struct{}{}
			out = append(out, affect)
		}
	}
	return out
}

// ActionKind is the kind of the on-chain call to make.
type ActionKind uint8

const (
	ActionRemoveVote ActionKind = iota
	ActionUnlock
)

// ClaimAction is an on-chain call required to claim a lock.
type ClaimAction struct {
	Kind       ActionKind
	Track      gov.TrackID
	Referendum gov.ReferendumID // only for ActionRemoveVote
}

// RemoveVote returns the action removing a vote.
func RemoveVote(track gov.TrackID, referendum gov.ReferendumID) ClaimAction {
	return ClaimAction{Kind: ActionRemoveVote, Track: track, Referendum: referendum}
}

// Unlock returns the action unlocking a track.
func Unlock(track gov.TrackID) ClaimAction {
	return ClaimAction{Kind: ActionUnlock, Track: track}
}

// String implements fmt.Stringer.
func (a ClaimAction) String() string {
	if a.Kind == ActionRemoveVote {
		return fmt.Sprintf("remove_vote(%v, %v)", a.Track, a.Referendum)
	}
	return fmt.Sprintf("unlock(%v)", a.Track)
}
