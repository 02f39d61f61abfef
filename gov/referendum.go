// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package gov

// Referendum is the lifecycle state of a referendum.
// It is one of *Ongoing, *Approved, *Rejected or *TimedOut.
type Referendum interface {
	referendum()
}

// DecidingStatus is present once an ongoing referendum entered its decision period.
type DecidingStatus struct {
	Since      BlockNumber
	Confirming *BlockNumber // the block confirmation ends, nil if not confirming
}

// Ongoing is a referendum that is not yet completed.
type Ongoing struct {
	Submitted BlockNumber
	InQueue   bool
	Deciding  *DecidingStatus
}

// Approved is a referendum that passed at Since.
type Approved struct {
	Since BlockNumber
}

// Rejected is a referendum that failed at Since.
type Rejected struct {
	Since BlockNumber
}

// TimedOut is a referendum that never started deciding before its timeout.
type TimedOut struct {
	Since BlockNumber
}

func (*Ongoing) referendum()  {}
func (*Approved) referendum() {}
func (*Rejected) referendum() {}
func (*TimedOut) referendum() {}
