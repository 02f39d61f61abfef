// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package gov

import (
	"encoding/json"

	"github.com/pkg/errors"

	"github.com/vechain/govunlock/bn"
)

// type tags of the JSON form
const (
	typeStandard     = "standard"
	typeSplit        = "split"
	typeSplitAbstain = "split_abstain"

	typeCasting    = "casting"
	typeDelegating = "delegating"

	typeOngoing  = "ongoing"
	typeApproved = "approved"
	typeRejected = "rejected"
	typeTimedOut = "timedout"
)

type snapshotJSON struct {
	CurrentBlock BlockNumber                     `json:"currentBlock"`
	Referendums  map[ReferendumID]referendumJSON `json:"referendums,omitempty"`
	Tracks       map[TrackID]TrackInfo           `json:"tracks,omitempty"`
	TrackLocks   map[TrackID]bn.Int              `json:"trackLocks,omitempty"`
	Voting       map[TrackID]votingJSON          `json:"voting,omitempty"`
}

type decidingJSON struct {
	Since      BlockNumber  `json:"since"`
	Confirming *BlockNumber `json:"confirming,omitempty"`
}

type referendumJSON struct {
	Type      string        `json:"type"`
	Submitted *BlockNumber  `json:"submitted,omitempty"`
	InQueue   bool          `json:"inQueue,omitempty"`
	Deciding  *decidingJSON `json:"deciding,omitempty"`
	Since     *BlockNumber  `json:"since,omitempty"`
}

type voteJSON struct {
	Type       string      `json:"type"`
	Direction  *Direction  `json:"direction,omitempty"`
	Conviction *Conviction `json:"conviction,omitempty"`
	Balance    *bn.Int     `json:"balance,omitempty"`
	Aye        *bn.Int     `json:"aye,omitempty"`
	Nay        *bn.Int     `json:"nay,omitempty"`
	Abstain    *bn.Int     `json:"abstain,omitempty"`
}

type votingJSON struct {
	Type       string                    `json:"type"`
	Prior      *PriorLock                `json:"prior,omitempty"`
	Votes      map[ReferendumID]voteJSON `json:"votes,omitempty"`
	Balance    *bn.Int                   `json:"balance,omitempty"`
	Target     string                    `json:"target,omitempty"`
	Conviction *Conviction               `json:"conviction,omitempty"`
}

// MarshalJSON implements json.Marshaler.
func (s *Snapshot) MarshalJSON() ([]byte, error) {
	obj := snapshotJSON{
		CurrentBlock: s.CurrentBlock,
		Tracks:       s.Tracks,
		TrackLocks:   s.TrackLocks,
	}
	if len(s.Referendums) > 0 {
		obj.Referendums = make(map[ReferendumID]referendumJSON, len(s.Referendums))
		for id, r := range s.Referendums {
			rj, err := encodeReferendum(r)
			if err != nil {
				return nil, errors.WithMessagef(err, "referendums[%v]", id)
			}
			obj.Referendums[id] = rj
		}
	}
	if len(s.Voting) > 0 {
		obj.Voting = make(map[TrackID]votingJSON, len(s.Voting))
		for id, v := range s.Voting {
			vj, err := encodeVoting(v)
			if err != nil {
				return nil, errors.WithMessagef(err, "voting[%v]", id)
			}
			obj.Voting[id] = vj
		}
	}
	return json.Marshal(&obj)
}

// UnmarshalJSON implements json.Unmarshaler.
func (s *Snapshot) UnmarshalJSON(data []byte) error {
	var obj snapshotJSON
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}

	snap := Snapshot{
		CurrentBlock: obj.CurrentBlock,
		Referendums:  make(map[ReferendumID]Referendum, len(obj.Referendums)),
		Tracks:       obj.Tracks,
		TrackLocks:   obj.TrackLocks,
		Voting:       make(map[TrackID]Voting, len(obj.Voting)),
	}
	if snap.Tracks == nil {
		snap.Tracks = make(map[TrackID]TrackInfo)
	}
	if snap.TrackLocks == nil {
		snap.TrackLocks = make(map[TrackID]bn.Int)
	}
	for id, rj := range obj.Referendums {
		r, err := rj.decode()
		if err != nil {
			return errors.WithMessagef(err, "referendums[%v]", id)
		}
		snap.Referendums[id] = r
	}
	for id, vj := range obj.Voting {
		v, err := vj.decode()
		if err != nil {
			return errors.WithMessagef(err, "voting[%v]", id)
		}
		snap.Voting[id] = v
	}
	*s = snap
	return nil
}

func encodeReferendum(r Referendum) (referendumJSON, error) {
	switch r := r.(type) {
	case *Ongoing:
		submitted := r.Submitted
		rj := referendumJSON{Type: typeOngoing, Submitted: &submitted, InQueue: r.InQueue}
		if r.Deciding != nil {
			rj.Deciding = &decidingJSON{Since: r.Deciding.Since, Confirming: r.Deciding.Confirming}
		}
		return rj, nil
	case *Approved:
		return referendumJSON{Type: typeApproved, Since: &r.Since}, nil
	case *Rejected:
		return referendumJSON{Type: typeRejected, Since: &r.Since}, nil
	case *TimedOut:
		return referendumJSON{Type: typeTimedOut, Since: &r.Since}, nil
	default:
		return referendumJSON{}, errors.Errorf("unsupported referendum %T", r)
	}
}

func (rj *referendumJSON) decode() (Referendum, error) {
	switch rj.Type {
	case typeOngoing:
		if rj.Submitted == nil {
			return nil, errors.New("ongoing: missing submitted")
		}
		r := &Ongoing{Submitted: *rj.Submitted, InQueue: rj.InQueue}
		if rj.Deciding != nil {
			r.Deciding = &DecidingStatus{Since: rj.Deciding.Since, Confirming: rj.Deciding.Confirming}
		}
		return r, nil
	case typeApproved, typeRejected, typeTimedOut:
		if rj.Since == nil {
			return nil, errors.Errorf("%v: missing since", rj.Type)
		}
		switch rj.Type {
		case typeApproved:
			return &Approved{Since: *rj.Since}, nil
		case typeRejected:
			return &Rejected{Since: *rj.Since}, nil
		default:
			return &TimedOut{Since: *rj.Since}, nil
		}
	default:
		return nil, errors.Errorf("unknown referendum type %q", rj.Type)
	}
}

func encodeVote(v AccountVote) (voteJSON, error) {
	switch v := v.(type) {
	case *StandardVote:
		return voteJSON{
			Type:       typeStandard,
			Direction:  &v.Direction,
			Conviction: &v.Conviction,
			Balance:    &v.Balance,
		}, nil
	case *SplitVote:
		return voteJSON{Type: typeSplit, Aye: &v.Aye, Nay: &v.Nay}, nil
	case *SplitAbstainVote:
		return voteJSON{Type: typeSplitAbstain, Aye: &v.Aye, Nay: &v.Nay, Abstain: &v.Abstain}, nil
	default:
		return voteJSON{}, errors.Errorf("unsupported vote %T", v)
	}
}

func orZero(i *bn.Int) bn.Int {
	if i == nil {
		return bn.Int{}
	}
	return *i
}

func (vj *voteJSON) decode() (AccountVote, error) {
	switch vj.Type {
	case typeStandard:
		if vj.Direction == nil {
			return nil, errors.New("standard: missing direction")
		}
		if vj.Balance == nil {
			return nil, errors.New("standard: missing balance")
		}
		v := &StandardVote{Direction: *vj.Direction, Balance: *vj.Balance}
		if vj.Conviction != nil {
			v.Conviction = *vj.Conviction
		}
		return v, nil
	case typeSplit:
		return &SplitVote{Aye: orZero(vj.Aye), Nay: orZero(vj.Nay)}, nil
	case typeSplitAbstain:
		return &SplitAbstainVote{Aye: orZero(vj.Aye), Nay: orZero(vj.Nay), Abstain: orZero(vj.Abstain)}, nil
	default:
		return nil, errors.Errorf("unknown vote type %q", vj.Type)
	}
}

func encodeVoting(v Voting) (votingJSON, error) {
	switch v := v.(type) {
	case *Casting:
		vj := votingJSON{Type: typeCasting, Prior: &v.Prior}
		if len(v.Votes) > 0 {
			vj.Votes = make(map[ReferendumID]voteJSON, len(v.Votes))
			for id, vote := range v.Votes {
				encoded, err := encodeVote(vote)
				if err != nil {
					return votingJSON{}, errors.WithMessagef(err, "votes[%v]", id)
				}
				vj.Votes[id] = encoded
			}
		}
		return vj, nil
	case *Delegating:
		return votingJSON{
			Type:       typeDelegating,
			Prior:      &v.Prior,
			Balance:    &v.Balance,
			Target:     v.Target,
			Conviction: &v.Conviction,
		}, nil
	default:
		return votingJSON{}, errors.Errorf("unsupported voting %T", v)
	}
}

func (vj *votingJSON) decode() (Voting, error) {
	var prior PriorLock
	if vj.Prior != nil {
		prior = *vj.Prior
	}
	switch vj.Type {
	case typeCasting:
		c := &Casting{Prior: prior, Votes: make(map[ReferendumID]AccountVote, len(vj.Votes))}
		for id, raw := range vj.Votes {
			vote, err := raw.decode()
			if err != nil {
				return nil, errors.WithMessagef(err, "votes[%v]", id)
			}
			c.Votes[id] = vote
		}
		return c, nil
	case typeDelegating:
		if vj.Balance == nil {
			return nil, errors.New("delegating: missing balance")
		}
		d := &Delegating{Prior: prior, Balance: *vj.Balance, Target: vj.Target}
		if vj.Conviction != nil {
			d.Conviction = *vj.Conviction
		}
		return d, nil
	default:
		return nil, errors.Errorf("unknown voting type %q", vj.Type)
	}
}
