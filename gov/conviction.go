// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package gov

import (
	"github.com/pkg/errors"
)

// Conviction is the lock multiplier a voter accepts in exchange for voting weight.
type Conviction uint8

const (
	ConvictionNone Conviction = iota
	ConvictionLocked1x
	ConvictionLocked2x
	ConvictionLocked3x
	ConvictionLocked4x
	ConvictionLocked5x
	ConvictionLocked6x
)

var convictionNames = [...]string{"none", "locked1x", "locked2x", "locked3x", "locked4x", "locked5x", "locked6x"}

// LockPeriods returns how many vote locking periods the conviction holds the balance for.
func (c Conviction) LockPeriods() uint64 {
	switch c {
	case ConvictionNone:
		return 0
	case ConvictionLocked1x, ConvictionLocked2x, ConvictionLocked3x,
		ConvictionLocked4x, ConvictionLocked5x, ConvictionLocked6x:
		return 1 << (c - 1)
	default:
		return 0
	}
}

// Valid reports whether c is a known conviction.
func (c Conviction) Valid() bool {
	return int(c) < len(convictionNames)
}

// String implements fmt.Stringer.
func (c Conviction) String() string {
	if !c.Valid() {
		return "unknown"
	}
	return convictionNames[c]
}

// MarshalText implements encoding.TextMarshaler.
func (c Conviction) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, errors.Errorf("invalid conviction %d", c)
	}
	return []byte(convictionNames[c]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Conviction) UnmarshalText(text []byte) error {
	for i, name := range convictionNames {
		if name == string(text) {
			*c = Conviction(i)
			return nil
		}
	}
	return errors.Errorf("unknown conviction %q", text)
}
