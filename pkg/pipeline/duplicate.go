package pipeline

import (
	"fmt"

	"github.com/matzehuels/mleader/pkg/mleader"
)

// CheckLeaderIndices reports an error if two roots share a leader index.
// Nil roots are ignored.
func CheckLeaderIndices(roots []*mleader.LeaderRoot) error {
	seen := make(map[int]bool, len(roots))
	for _, r := range roots {
		if r == nil {
			continue
		}
		if seen[r.LeaderIndex] {
			return fmt.Errorf("%w: %d", ErrDuplicateLeaderIndex, r.LeaderIndex)
		}
		seen[r.LeaderIndex] = true
	}
	return nil
}

// NextLeaderIndex returns one more than the largest leader index in roots,
// or 0 when there are none.
func NextLeaderIndex(roots []*mleader.LeaderRoot) int {
	next := 0
	for _, r := range roots {
		if r != nil && r.LeaderIndex >= next {
			next = r.LeaderIndex + 1
		}
	}
	return next
}

// Duplicate deep-clones the root with the given leader index and gives the
// clone the next free index. The clone shares catalog records with its
// source and nothing else. roots is not modified.
func Duplicate(roots []*mleader.LeaderRoot, leaderIndex int) (*mleader.LeaderRoot, error) {
	for _, r := range roots {
		if r != nil && r.LeaderIndex == leaderIndex {
			clone := r.Clone()
			clone.LeaderIndex = NextLeaderIndex(roots)
			return clone, nil
		}
	}
	return nil, Classify(fmt.Errorf("%w: index %d", ErrLeaderNotFound, leaderIndex), "duplicate leader %d", leaderIndex)
}
