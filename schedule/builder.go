// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package schedule

import (
	"github.com/vechain/govunlock/bn"
)

// build turns "amount locked until T" facts into tranches: the amount of each
// result lock is what becomes free at its time on top of all earlier tranches.
//
// Locks are swept from the latest to the earliest keeping the running max.
// A lock not exceeding the running max is shadowed by a later lock holding at
// least the same balance, it is dropped and its affects move to the lock that
// set the max, since that one really governs the release.
func build(combined *lockTree) []*ClaimableLock {
	var (
		result    = newLockTree()
		maxLock   bn.Int
		maxLockAt ClaimTime
		hasMax    bool
	)

	for _, lock := range combined.descending() {
		unlocked := lock.Amount.Sub(maxLock)
		if !unlocked.IsZero() {
			result.put(&ClaimableLock{
				ClaimAt:  lock.ClaimAt,
				Amount:   unlocked,
				Affected: lock.Affected,
			})
		} else if hasMax {
			if governing, ok := result.get(maxLockAt); ok {
				governing.Affected = unionAffects(governing.Affected, lock.Affected)
			}
		}

		if maxLock.Cmp(lock.Amount) < 0 {
			maxLock = lock.Amount
			maxLockAt = lock.ClaimAt
			hasMax = true
		}
	}
	return result.ascending()
}
