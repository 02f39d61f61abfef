// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package estimates

import (
	"github.com/vechain/govunlock/bn"
	"github.com/vechain/govunlock/gov"
	"github.com/vechain/govunlock/schedule"
)

// chunk types
const (
	ChunkClaimable         = "claimable"
	ChunkPendingLock       = "pending_lock"
	ChunkPendingDelegation = "pending_delegation"
)

// action types
const (
	ActionRemoveVote = "remove_vote"
	ActionUnlock     = "unlock"
)

// ParamsOverride replaces some of the server params for one request.
type ParamsOverride struct {
	VoteLockingPeriod *gov.BlockNumber `json:"voteLockingPeriod,omitempty"`
	UndecidingTimeout *gov.BlockNumber `json:"undecidingTimeout,omitempty"`
}

// Apply returns p with the overridden fields replaced.
func (o *ParamsOverride) Apply(p gov.Params) gov.Params {
	if o == nil {
		return p
	}
	if o.VoteLockingPeriod != nil {
		p.VoteLockingPeriod = *o.VoteLockingPeriod
	}
	if o.UndecidingTimeout != nil {
		p.UndecidingTimeout = *o.UndecidingTimeout
	}
	return p
}

// EstimateRequest asks for the unlock schedule of one account snapshot.
type EstimateRequest struct {
	Snapshot *gov.Snapshot  `json:"snapshot"`
	Params   *ParamsOverride `json:"params,omitempty"`
}

// Action is a call to submit to claim the claimable chunk.
type Action struct {
	Type       string            `json:"type"`
	Track      gov.TrackID       `json:"track"`
	Referendum *gov.ReferendumID `json:"referendum,omitempty"`
}

// Chunk is one tranche of the schedule.
type Chunk struct {
	Type        string           `json:"type"`
	Amount      bn.Int           `json:"amount"`
	ClaimableAt *gov.BlockNumber `json:"claimableAt,omitempty"`
	Actions     []Action         `json:"actions,omitempty"`
}

// Estimate is the unlock schedule of a snapshot.
type Estimate struct {
	SnapshotHash   string          `json:"snapshotHash"`
	CurrentBlock   gov.BlockNumber `json:"currentBlock"`
	TotalLocked    bn.Int          `json:"totalLocked"`
	TotalClaimable bn.Int          `json:"totalClaimable"`
	Chunks         []*Chunk        `json:"chunks"`
}

// BatchResult is the outcome of one request of a batch, either an estimate or an error.
type BatchResult struct {
	Estimate *Estimate `json:"estimate,omitempty"`
	Error    string    `json:"error,omitempty"`
}

// Params are the lock parameters an API server estimates with by default.
type Params struct {
	Network string `json:"network"`
	gov.Params
}

func convertAction(a schedule.ClaimAction) Action {
	if a.Kind == schedule.ActionRemoveVote {
		ref := a.Referendum
		return Action{Type: ActionRemoveVote, Track: a.Track, Referendum: &ref}
	}
	return Action{Type: ActionUnlock, Track: a.Track}
}

func convertChunk(c schedule.Chunk) *Chunk {
	switch c := c.(type) {
	case *schedule.ClaimableChunk:
		actions := make([]Action, 0, len(c.Actions))
		for _, a := range c.Actions {
			actions = append(actions, convertAction(a))
		}
		return &Chunk{Type: ChunkClaimable, Amount: c.Amount, Actions: actions}
	case *schedule.PendingLockChunk:
		at := c.ClaimableAt
		return &Chunk{Type: ChunkPendingLock, Amount: c.Amount, ClaimableAt: &at}
	case *schedule.PendingDelegationChunk:
		return &Chunk{Type: ChunkPendingDelegation, Amount: c.Amount}
	default:
		return nil
	}
}

// NewEstimate computes the unlock schedule of snap.
func NewEstimate(snap *gov.Snapshot, params gov.Params) *Estimate {
	return newEstimate(snap, params, snap.Hash(params))
}

func newEstimate(snap *gov.Snapshot, params gov.Params, hash gov.Hash) *Estimate {
	calc := schedule.New(snap, params)
	sched := calc.Estimate()

	chunks := make([]*Chunk, 0, len(sched))
	for _, c := range sched {
		chunks = append(chunks, convertChunk(c))
	}
	return &Estimate{
		SnapshotHash:   hash.String(),
		CurrentBlock:   snap.CurrentBlock,
		TotalLocked:    calc.TotalGovernanceLock(),
		TotalClaimable: sched.TotalClaimable(),
		Chunks:         chunks,
	}
}
