// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package gov

import (
	"maps"
	"slices"

	"github.com/pkg/errors"
)

// Validate checks the snapshot is well formed. A decoded snapshot already has
// known types and required fields, Validate also covers snapshots built in code.
func (s *Snapshot) Validate() error {
	for _, id := range slices.Sorted(maps.Keys(s.Referendums)) {
		if err := validateReferendum(s.Referendums[id]); err != nil {
			return errors.WithMessagef(err, "referendums[%v]", id)
		}
	}
	for _, track := range s.VotingTracks() {
		if err := validateVoting(s.Voting[track]); err != nil {
			return errors.WithMessagef(err, "voting[%v]", track)
		}
	}
	return nil
}

func validateReferendum(r Referendum) error {
	switch r := r.(type) {
	case *Ongoing:
		if r == nil {
			return errors.New("nil referendum")
		}
		if r.InQueue && r.Deciding != nil {
			return errors.New("ongoing: queued while deciding")
		}
		if d := r.Deciding; d != nil && d.Confirming != nil && *d.Confirming < d.Since {
			return errors.Errorf("ongoing: confirming at %v before deciding since %v", *d.Confirming, d.Since)
		}
	case *Approved:
		if r == nil {
			return errors.New("nil referendum")
		}
	case *Rejected:
		if r == nil {
			return errors.New("nil referendum")
		}
	case *TimedOut:
		if r == nil {
			return errors.New("nil referendum")
		}
	default:
		return errors.New("nil referendum")
	}
	return nil
}

func validateVoting(v Voting) error {
	switch v := v.(type) {
	case *Casting:
		if v == nil {
			return errors.New("nil voting")
		}
		for _, ref := range v.SortedVotes() {
			if err := validateVote(v.Votes[ref]); err != nil {
				return errors.WithMessagef(err, "votes[%v]", ref)
			}
		}
	case *Delegating:
		if v == nil {
			return errors.New("nil voting")
		}
		if !v.Conviction.Valid() {
			return errors.Errorf("delegating: invalid conviction %d", v.Conviction)
		}
	default:
		return errors.New("nil voting")
	}
	return nil
}

func validateVote(v AccountVote) error {
	switch v := v.(type) {
	case *StandardVote:
		if v == nil {
			return errors.New("nil vote")
		}
		if !v.Conviction.Valid() {
			return errors.Errorf("standard: invalid conviction %d", v.Conviction)
		}
		if v.Direction != Aye && v.Direction != Nay {
			return errors.Errorf("standard: invalid direction %d", v.Direction)
		}
	case *SplitVote:
		if v == nil {
			return errors.New("nil vote")
		}
	case *SplitAbstainVote:
		if v == nil {
			return errors.New("nil vote")
		}
	default:
		return errors.New("nil vote")
	}
	return nil
}
