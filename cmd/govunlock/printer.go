// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/pkg/errors"

	"github.com/vechain/govunlock/api/estimates"
)

func printEstimate(w io.Writer, est *estimates.Estimate, output string) error {
	switch output {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(est)
	case "text":
		printText(w, est)
		return nil
	default:
		return errors.Errorf("unsupported output %q", output)
	}
}

func printText(w io.Writer, est *estimates.Estimate) {
	fmt.Fprintf(w, `Snapshot       [ %v ]
Current block  [ %v ]
Total locked   [ %v ]
Claimable now  [ %v ]
`,
		est.SnapshotHash, est.CurrentBlock, est.TotalLocked, est.TotalClaimable)

	if len(est.Chunks) == 0 {
		fmt.Fprintln(w, "Nothing locked")
		return
	}
	for i, chunk := range est.Chunks {
		switch chunk.Type {
		case estimates.ChunkPendingLock:
			fmt.Fprintf(w, "%d. %v %v at block %v\n", i+1, chunk.Type, chunk.Amount, *chunk.ClaimableAt)
		default:
			fmt.Fprintf(w, "%d. %v %v\n", i+1, chunk.Type, chunk.Amount)
		}
		for _, action := range chunk.Actions {
			if action.Referendum != nil {
				fmt.Fprintf(w, "   %v track=%v referendum=%v\n", action.Type, action.Track, *action.Referendum)
			} else {
				fmt.Fprintf(w, "   %v track=%v\n", action.Type, action.Track)
			}
		}
	}
}
