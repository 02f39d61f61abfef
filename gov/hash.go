// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package gov

import (
	"encoding/hex"
	"hash"
	"io"
	"maps"
	"slices"
	"sync"

	"github.com/ethereum/go-ethereum/rlp"
	"github.com/pkg/errors"
	"golang.org/x/crypto/blake2b"

	"github.com/vechain/govunlock/bn"
)

// Hash is a blake2b-256 digest.
type Hash [32]byte

// String implements fmt.Stringer.
func (h Hash) String() string {
	return "0x" + hex.EncodeToString(h[:])
}

// IsZero returns if Hash has all zero bytes.
func (h Hash) IsZero() bool {
	return h == Hash{}
}

type blake2bState struct {
	hash.Hash
	b32 Hash
}

var blake2bStatePool = sync.Pool{
	New: func() any {
		h, _ := blake2b.New256(nil)
		return &blake2bState{Hash: h}
	},
}

// Blake2bFn computes blake2b-256 checksum for the provided writer.
func Blake2bFn(fn func(w io.Writer)) (h Hash) {
	w := blake2bStatePool.Get().(*blake2bState)
	fn(w)
	w.Sum(w.b32[:0])
	h = w.b32
	w.Reset()
	blake2bStatePool.Put(w)
	return
}

// canonical RLP form, every map flattened into a slice sorted by key
type (
	rlpSnapshot struct {
		CurrentBlock      uint64
		VoteLockingPeriod uint64
		UndecidingTimeout uint64
		Referendums       []rlpReferendum
		Tracks            []rlpTrack
		Locks             []rlpLock
		Voting            []rlpVoting
	}
	rlpReferendum struct {
		ID       uint32
		Kind     uint8
		Since    uint64 // submitted for ongoing
		InQueue  bool
		Deciding []uint64 // empty, [since] or [since, confirming]
	}
	rlpTrack struct {
		ID             uint32
		DecisionPeriod uint64
		PreparePeriod  uint64
	}
	rlpLock struct {
		ID     uint32
		Amount bn.Int
	}
	rlpVote struct {
		Referendum uint32
		Kind       uint8
		Direction  uint8
		Conviction uint8
		Amounts    []bn.Int
	}
	rlpVoting struct {
		Track       uint32
		Kind        uint8
		PriorAmount bn.Int
		PriorUnlock uint64
		Balance     bn.Int
		Target      string
		Conviction  uint8
		Votes       []rlpVote
	}
)

// Hash returns the digest identifying the snapshot together with params.
// Equal snapshots always have equal hashes, regardless of map iteration order.
func (s *Snapshot) Hash(params Params) Hash {
	obj := rlpSnapshot{
		CurrentBlock:      uint64(s.CurrentBlock),
		VoteLockingPeriod: uint64(params.VoteLockingPeriod),
		UndecidingTimeout: uint64(params.UndecidingTimeout),
	}
	for _, id := range slices.Sorted(maps.Keys(s.Referendums)) {
		obj.Referendums = append(obj.Referendums, canonicalReferendum(id, s.Referendums[id]))
	}
	for _, id := range slices.Sorted(maps.Keys(s.Tracks)) {
		info := s.Tracks[id]
		obj.Tracks = append(obj.Tracks, rlpTrack{uint32(id), uint64(info.DecisionPeriod), uint64(info.PreparePeriod)})
	}
	for _, id := range slices.Sorted(maps.Keys(s.TrackLocks)) {
		obj.Locks = append(obj.Locks, rlpLock{uint32(id), s.TrackLocks[id]})
	}
	for _, id := range s.VotingTracks() {
		obj.Voting = append(obj.Voting, canonicalVoting(id, s.Voting[id]))
	}

	return Blake2bFn(func(w io.Writer) {
		// only fixed shape lists of integers, the hasher never fails a write
		if err := rlp.Encode(w, &obj); err != nil {
			panic(errors.Wrap(err, "encode snapshot"))
		}
	})
}

func canonicalReferendum(id ReferendumID, r Referendum) rlpReferendum {
	out := rlpReferendum{ID: uint32(id)}
	switch r := r.(type) {
	case *Ongoing:
		out.Kind, out.Since, out.InQueue = 1, uint64(r.Submitted), r.InQueue
		if r.Deciding != nil {
			out.Deciding = []uint64{uint64(r.Deciding.Since)}
			if r.Deciding.Confirming != nil {
				out.Deciding = append(out.Deciding, uint64(*r.Deciding.Confirming))
			}
		}
	case *Approved:
		out.Kind, out.Since = 2, uint64(r.Since)
	case *Rejected:
		out.Kind, out.Since = 3, uint64(r.Since)
	case *TimedOut:
		out.Kind, out.Since = 4, uint64(r.Since)
	}
	return out
}

func canonicalVoting(id TrackID, v Voting) rlpVoting {
	out := rlpVoting{Track: uint32(id)}
	prior := v.PriorLock()
	out.PriorAmount, out.PriorUnlock = prior.Amount, uint64(prior.UnlockAt)

	switch v := v.(type) {
	case *Casting:
		out.Kind = 1
		for _, ref := range v.SortedVotes() {
			vote := rlpVote{Referendum: uint32(ref)}
			switch av := v.Votes[ref].(type) {
			case *StandardVote:
				vote.Kind, vote.Direction, vote.Conviction = 1, uint8(av.Direction), uint8(av.Conviction)
				vote.Amounts = []bn.Int{av.Balance}
			case *SplitVote:
				vote.Kind, vote.Amounts = 2, []bn.Int{av.Aye, av.Nay}
			case *SplitAbstainVote:
				vote.Kind, vote.Amounts = 3, []bn.Int{av.Aye, av.Nay, av.Abstain}
			}
			out.Votes = append(out.Votes, vote)
		}
	case *Delegating:
		out.Kind = 2
		out.Balance, out.Target, out.Conviction = v.Balance, v.Target, uint8(v.Conviction)
	}
	return out
}
