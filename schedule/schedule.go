// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package schedule estimates when governance locked balance of an account
// becomes transferable again, and which calls release it.
//
// The estimation is a pure function of a gov.Snapshot: it performs no I/O,
// keeps no state and is safe for concurrent use on independent snapshots.
// Nil referenda, voting states and votes, typed or not, count as absent.
package schedule

import (
	"github.com/vechain/govunlock/gov"
)

// Calculator computes unlock estimates of one account snapshot.
type Calculator struct {
	snap   *gov.Snapshot
	params gov.Params
}

// New creates a calculator. The snapshot must not be modified while in use.
func New(snap *gov.Snapshot, params gov.Params) *Calculator {
	return &Calculator{
		snap:   snap,
		params: params,
	}
}

// Estimate returns the unlock schedule.
func (c *Calculator) Estimate() Schedule {
	combined := combine(c.claimableLocks())
	return format(build(combined), c.snap.CurrentBlock)
}

// Estimate returns the unlock schedule of snap.
func Estimate(snap *gov.Snapshot, params gov.Params) Schedule {
	return New(snap, params).Estimate()
}
