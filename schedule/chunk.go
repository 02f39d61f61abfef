// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package schedule

import (
	"github.com/vechain/govunlock/bn"
	"github.com/vechain/govunlock/gov"
)

// Chunk is a tranche of the unlock schedule.
// It is one of *ClaimableChunk, *PendingLockChunk or *PendingDelegationChunk.
type Chunk interface {
	amount() bn.Int
}

// ClaimableChunk can be claimed right now by submitting Actions in order.
type ClaimableChunk struct {
	Amount  bn.Int
	Actions []ClaimAction
}

// PendingLockChunk becomes claimable at ClaimableAt.
type PendingLockChunk struct {
	Amount      bn.Int
	ClaimableAt gov.BlockNumber
}

// PendingDelegationChunk stays locked until the account undelegates.
type PendingDelegationChunk struct {
	Amount bn.Int
}

func (c *ClaimableChunk) amount() bn.Int         { return c.Amount }
func (c *PendingLockChunk) amount() bn.Int       { return c.Amount }
func (c *PendingDelegationChunk) amount() bn.Int { return c.Amount }

// Schedule is the list of chunks, the claimable one first, then pending
// chunks ascending by time with delegations last.
type Schedule []Chunk

// Claimable returns the claimable chunk if any.
func (s Schedule) Claimable() (*ClaimableChunk, bool) {
	for _, c := range s {
		if claimable, ok := c.(*ClaimableChunk); ok {
			return claimable, true
		}
	}
	return nil, false
}

// Pending returns chunks that are not claimable yet.
func (s Schedule) Pending() []Chunk {
	var pending []Chunk
	for _, c := range s {
		if _, ok := c.(*ClaimableChunk); !ok {
			pending = append(pending, c)
		}
	}
	return pending
}

// TotalClaimable returns the amount claimable now.
func (s Schedule) TotalClaimable() bn.Int {
	if c, ok := s.Claimable(); ok {
		return c.Amount
	}
	return bn.Int{}
}

// Total returns the sum of all chunks.
func (s Schedule) Total() bn.Int {
	var total bn.Int
	for _, c := range s {
		total = total.Add(c.amount())
	}
	return total
}
