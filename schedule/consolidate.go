// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package schedule

import (
	"github.com/emirpasic/gods/trees/redblacktree"
)

// lockTree is a set of claimable locks ordered by claim time, one lock per time.
type lockTree struct {
	tree *redblacktree.Tree
}

func newLockTree() *lockTree {
	return &lockTree{tree: redblacktree.NewWith(compareClaimTime)}
}

func (t *lockTree) get(at ClaimTime) (*ClaimableLock, bool) {
	v, ok := t.tree.Get(at)
	if !ok {
		return nil, false
	}
	return v.(*ClaimableLock), true
}

func (t *lockTree) put(lock *ClaimableLock) { t.tree.Put(lock.ClaimAt, lock) }

func (t *lockTree) len() int { return t.tree.Size() }

// ascending returns the locks from the earliest to the latest.
func (t *lockTree) ascending() []*ClaimableLock {
	locks := make([]*ClaimableLock, 0, t.tree.Size())
	it := t.tree.Iterator()
	for it.Next() {
		locks = append(locks, it.Value().(*ClaimableLock))
	}
	return locks
}

// descending returns the locks from the latest to the earliest.
func (t *lockTree) descending() []*ClaimableLock {
	locks := make([]*ClaimableLock, 0, t.tree.Size())
	it := t.tree.Iterator()
	it.End()
	for it.Prev() {
		locks = append(locks, it.Value().(*ClaimableLock))
	}
	return locks
}

// combine merges locks claimable at the same time. Such locks describe the
// same balance, so the amount is their max and the affects are united.
func combine(locks []ClaimableLock) *lockTree {
	combined := newLockTree()
	for _, lock := range locks {
		if existing, ok := combined.get(lock.ClaimAt); ok {
			existing.Amount = existing.Amount.Max(lock.Amount)
			existing.Affected = unionAffects(existing.Affected, lock.Affected)
			continue
		}
		combined.put(&ClaimableLock{
			ClaimAt:  lock.ClaimAt,
			Amount:   lock.Amount,
			Affected: unionAffects(nil, lock.Affected),
		})
	}
	return combined
}
