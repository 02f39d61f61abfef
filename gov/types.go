// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package gov defines the governance state snapshot consumed by the unlock
// schedule engine: referenda, tracks, per-track voting and raw track locks.
package gov

import (
	"math"
	"strconv"

	"github.com/pkg/errors"

	"github.com/vechain/govunlock/bn"
)

// TrackID identifies a governance track.
type TrackID uint32

// String implements fmt.Stringer.
func (id TrackID) String() string { return strconv.FormatUint(uint64(id), 10) }

// ReferendumID identifies a referendum.
type ReferendumID uint32

// String implements fmt.Stringer.
func (id ReferendumID) String() string { return strconv.FormatUint(uint64(id), 10) }

// BlockNumber is a block height.
type BlockNumber uint64

// AddBlocks returns a + b, saturating at math.MaxUint64.
func AddBlocks(a, b BlockNumber) BlockNumber {
	if a > math.MaxUint64-b {
		return math.MaxUint64
	}
	return a + b
}

// MulBlocks returns a * n, saturating at math.MaxUint64.
func MulBlocks(a BlockNumber, n uint64) BlockNumber {
	if a == 0 || n == 0 {
		return 0
	}
	if uint64(a) > math.MaxUint64/n {
		return math.MaxUint64
	}
	return a * BlockNumber(n)
}

// MaxBlock returns the greater block number.
func MaxBlock(a, b BlockNumber) BlockNumber {
	if a > b {
		return a
	}
	return b
}

// PriorLock is a lock left behind by votes that were already removed. It keeps
// holding Amount until UnlockAt, regardless of current votes.
type PriorLock struct {
	Amount   bn.Int      `json:"amount"`
	UnlockAt BlockNumber `json:"unlockAt"`
}

// TrackInfo carries the per track periods relevant to vote locking.
type TrackInfo struct {
	DecisionPeriod BlockNumber `json:"decisionPeriod"`
	PreparePeriod  BlockNumber `json:"preparePeriod"`
}

// Direction is the side a standard vote was cast on.
type Direction uint8

const (
	Aye Direction = iota
	Nay
)

// String implements fmt.Stringer.
func (d Direction) String() string {
	switch d {
	case Aye:
		return "aye"
	case Nay:
		return "nay"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (d Direction) MarshalText() ([]byte, error) {
	switch d {
	case Aye, Nay:
		return []byte(d.String()), nil
	default:
		return nil, errors.Errorf("invalid direction %d", d)
	}
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Direction) UnmarshalText(text []byte) error {
	switch string(text) {
	case "aye":
		*d = Aye
	case "nay":
		*d = Nay
	default:
		return errors.Errorf("unknown direction %q", text)
	}
	return nil
}
