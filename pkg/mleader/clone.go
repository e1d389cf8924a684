package mleader

// Cloner is implemented by model values that can produce a copy of themselves
// sharing no mutable state with the original.
type Cloner[T any] interface {
	Clone() T
}

// cloneAll returns a new slice holding a clone of every element of src.
// A nil slice stays nil so that clones compare deep-equal to their source.
func cloneAll[T Cloner[T]](src []T) []T {
	if src == nil {
		return nil
	}
	out := make([]T, len(src))
	for i, v := range src {
		out[i] = v.Clone()
	}
	return out
}

var (
	_ Cloner[StartEndPointPair] = StartEndPointPair{}
	_ Cloner[*LeaderLine]       = (*LeaderLine)(nil)
	_ Cloner[*LeaderRoot]       = (*LeaderRoot)(nil)
)
