// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package schedule

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vechain/govunlock/bn"
	"github.com/vechain/govunlock/gov"
)

func TestClaimTimeOrder(t *testing.T) {
	assert.Equal(t, -1, At(1).Cmp(At(2)))
	assert.Equal(t, 1, At(2).Cmp(At(1)))
	assert.Equal(t, 0, At(2).Cmp(At(2)))
	assert.Equal(t, 1, Until().Cmp(At(math.MaxUint64)))
	assert.Equal(t, -1, At(math.MaxUint64).Cmp(Until()))
	assert.Equal(t, 0, Until().Cmp(Until()))

	_, ok := Until().Block()
	assert.False(t, ok)
	b, ok := At(7).Block()
	assert.True(t, ok)
	assert.Equal(t, gov.BlockNumber(7), b)

	assert.Equal(t, "until", Until().String())
	assert.Equal(t, "at 7", At(7).String())
}

func TestUnionAffects(t *testing.T) {
	a := []ClaimAffect{TrackAffect(0), VoteAffect(0, 1)}
	b := []ClaimAffect{VoteAffect(0, 1), VoteAffect(1, 2), TrackAffect(0)}

	assert.Equal(t, []ClaimAffect{TrackAffect(0), VoteAffect(0, 1), VoteAffect(1, 2)}, unionAffects(a, b))
	assert.Equal(t, a, unionAffects(a, nil))
	assert.Equal(t, []ClaimAffect{VoteAffect(0, 1), VoteAffect(1, 2), TrackAffect(0)}, unionAffects(nil, b))
}

func TestCombine(t *testing.T) {
	combined := combine([]ClaimableLock{
		{ClaimAt: At(10), Amount: bn.FromUint64(3), Affected: []ClaimAffect{TrackAffect(0)}},
		{ClaimAt: Until(), Amount: bn.FromUint64(1)},
		{ClaimAt: At(10), Amount: bn.FromUint64(5), Affected: []ClaimAffect{VoteAffect(0, 1), TrackAffect(0)}},
		{ClaimAt: At(5), Amount: bn.FromUint64(2), Affected: []ClaimAffect{TrackAffect(1)}},
	})
	require.Equal(t, 3, combined.len())

	locks := combined.ascending()
	assert.Equal(t, At(5), locks[0].ClaimAt)
	assert.Equal(t, At(10), locks[1].ClaimAt)
	assert.Equal(t, "5", locks[1].Amount.String())
	assert.Equal(t, []ClaimAffect{TrackAffect(0), VoteAffect(0, 1)}, locks[1].Affected)
	assert.Equal(t, Until(), locks[2].ClaimAt)
	assert.Empty(t, locks[2].Affected)

	desc := combined.descending()
	require.Len(t, desc, 3)
	assert.Equal(t, Until(), desc[0].ClaimAt)
	assert.Equal(t, At(5), desc[2].ClaimAt)
}

func TestBuild(t *testing.T) {
	combined := combine([]ClaimableLock{
		{ClaimAt: At(100), Amount: bn.FromUint64(10), Affected: []ClaimAffect{VoteAffect(0, 1)}},
		{ClaimAt: At(200), Amount: bn.FromUint64(4), Affected: []ClaimAffect{VoteAffect(0, 2)}},
		{ClaimAt: At(300), Amount: bn.FromUint64(6), Affected: []ClaimAffect{VoteAffect(0, 3)}},
		{ClaimAt: At(400), Amount: bn.FromUint64(1), Affected: []ClaimAffect{TrackAffect(0)}},
	})

	tranches := build(combined)
	require.Len(t, tranches, 3)

	assert.Equal(t, At(100), tranches[0].ClaimAt)
	assert.Equal(t, "4", tranches[0].Amount.String())

	// 200 is shadowed by 300
	assert.Equal(t, At(300), tranches[1].ClaimAt)
	assert.Equal(t, "5", tranches[1].Amount.String())
	assert.Equal(t, []ClaimAffect{VoteAffect(0, 3), VoteAffect(0, 2)}, tranches[1].Affected)

	assert.Equal(t, At(400), tranches[2].ClaimAt)
	assert.Equal(t, "1", tranches[2].Amount.String())
}

func TestBuildEmpty(t *testing.T) {
	assert.Empty(t, build(newLockTree()))
	assert.Empty(t, format(nil, 10))
}

func TestClaimActions(t *testing.T) {
	actions := claimActions([]ClaimAffect{
		VoteAffect(2, 9),
		TrackAffect(1),
		VoteAffect(1, 4),
		TrackAffect(2),
	})
	assert.Equal(t, []ClaimAction{
		RemoveVote(2, 9),
		Unlock(2),
		RemoveVote(1, 4),
		Unlock(1),
	}, actions)
	assert.Equal(t, "remove_vote(2, 9)", actions[0].String())
	assert.Equal(t, "unlock(2)", actions[1].String())
}

func randomSnapshot(r *rand.Rand) *gov.Snapshot {
	current := gov.BlockNumber(1000 + r.IntN(1000))
	s := &gov.Snapshot{
		CurrentBlock: current,
		Referendums:  make(map[gov.ReferendumID]gov.Referendum),
		Tracks:       make(map[gov.TrackID]gov.TrackInfo),
		TrackLocks:   make(map[gov.TrackID]bn.Int),
		Voting:       make(map[gov.TrackID]gov.Voting),
	}
	block := func() gov.BlockNumber { return gov.BlockNumber(r.IntN(3000)) }
	balance := func() bn.Int { return bn.FromUint64(uint64(r.IntN(20))) }

	for ref := range gov.ReferendumID(6) {
		switch r.IntN(5) {
		case 0:
			s.Referendums[ref] = &gov.Ongoing{Submitted: block(), InQueue: r.IntN(2) == 0}
		case 1:
			confirming := block()
			s.Referendums[ref] = &gov.Ongoing{Submitted: block(), Deciding: &gov.DecidingStatus{Since: block(), Confirming: &confirming}}
		case 2:
			s.Referendums[ref] = &gov.Approved{Since: block()}
		case 3:
			s.Referendums[ref] = &gov.Rejected{Since: block()}
		default:
			// missing
		}
	}

	for track := range gov.TrackID(4) {
		s.Tracks[track] = gov.TrackInfo{DecisionPeriod: block() / 10, PreparePeriod: block() / 100}
		prior := gov.PriorLock{Amount: balance(), UnlockAt: block()}
		if r.IntN(3) == 0 {
			s.Voting[track] = &gov.Delegating{Prior: prior, Balance: balance(), Conviction: gov.Conviction(r.IntN(7))}
		} else {
			votes := make(map[gov.ReferendumID]gov.AccountVote)
			for ref := range gov.ReferendumID(6) {
				switch r.IntN(4) {
				case 0:
					votes[ref] = &gov.StandardVote{Direction: gov.Direction(r.IntN(2)), Conviction: gov.Conviction(r.IntN(7)), Balance: balance()}
				case 1:
					votes[ref] = &gov.SplitVote{Aye: balance(), Nay: balance()}
				}
			}
			s.Voting[track] = &gov.Casting{Prior: prior, Votes: votes}
		}
		explained := TotalLock(s.Voting[track])
		s.TrackLocks[track] = explained.Add(bn.FromUint64(uint64(r.IntN(3))))
	}
	return s
}

func TestEstimateProperties(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	params := gov.Params{VoteLockingPeriod: 100, UndecidingTimeout: 300}

	for range 500 {
		snap := randomSnapshot(r)
		calc := New(snap, params)
		sched := calc.Estimate()

		var collected bn.Int
		for _, lock := range calc.claimableLocks() {
			collected = collected.Max(lock.Amount)
		}
		assert.Equal(t, collected.String(), sched.Total().String(), "released total is the max lock")
		assert.Equal(t, sched, calc.Estimate())

		var (
			last      gov.BlockNumber
			sawUntil  bool
			claimable int
		)
		for i, chunk := range sched {
			assert.False(t, chunk.amount().IsZero(), "zero chunk")
			switch c := chunk.(type) {
			case *ClaimableChunk:
				claimable++
				assert.Equal(t, 0, i, "claimable chunk comes first")
				assert.NotEmpty(t, c.Actions)
				seen := make(map[ClaimAction]bool)
				for _, action := range c.Actions {
					assert.False(t, seen[action], "duplicate action %v", action)
					seen[action] = true
				}
			case *PendingLockChunk:
				assert.False(t, sawUntil, "block pending after delegation")
				assert.Greater(t, c.ClaimableAt, snap.CurrentBlock)
				assert.Greater(t, c.ClaimableAt, last)
				last = c.ClaimableAt
			case *PendingDelegationChunk:
				assert.False(t, sawUntil, "one delegation chunk at most")
				sawUntil = true
			}
		}
		assert.LessOrEqual(t, claimable, 1)
	}
}
