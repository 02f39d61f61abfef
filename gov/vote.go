// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package gov

import "github.com/vechain/govunlock/bn"

// AccountVote is a vote of an account on a single referendum.
// It is one of *StandardVote, *SplitVote or *SplitAbstainVote.
type AccountVote interface {
	// Locked returns the balance the vote keeps locked.
	Locked() bn.Int
	accountVote()
}

// StandardVote is a vote on one side with a conviction.
type StandardVote struct {
	Direction  Direction
	Conviction Conviction
	Balance    bn.Int
}

// SplitVote splits the balance between aye and nay without conviction.
type SplitVote struct {
	Aye bn.Int
	Nay bn.Int
}

// SplitAbstainVote splits the balance between aye, nay and abstain without conviction.
type SplitAbstainVote struct {
	Aye     bn.Int
	Nay     bn.Int
	Abstain bn.Int
}

func (v *StandardVote) Locked() bn.Int     { return v.Balance }
func (v *SplitVote) Locked() bn.Int        { return v.Aye.Add(v.Nay) }
func (v *SplitAbstainVote) Locked() bn.Int { return v.Aye.Add(v.Nay).Add(v.Abstain) }

func (*StandardVote) accountVote()     {}
func (*SplitVote) accountVote()        {}
func (*SplitAbstainVote) accountVote() {}

// Voting is the voting state of an account on one track.
// It is either *Casting or *Delegating.
type Voting interface {
	PriorLock() PriorLock
	voting()
}

// Casting means the account votes directly on referenda of the track.
type Casting struct {
	Prior PriorLock
	Votes map[ReferendumID]AccountVote
}

// Delegating means the account delegated its voting power on the track.
type Delegating struct {
	Prior      PriorLock
	Balance    bn.Int
	Target     string
	Conviction Conviction
}

func (c *Casting) PriorLock() PriorLock    { return c.Prior }
func (d *Delegating) PriorLock() PriorLock { return d.Prior }

func (*Casting) voting()    {}
func (*Delegating) voting() {}
