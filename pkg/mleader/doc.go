// Package mleader models the leader sub-structure of a multi-leader callout:
// the leader lines radiating from a landing point to the annotated content,
// and the break-point pairs that mark gaps where a leader crosses other
// geometry.
//
// # Ownership
//
// The model is a strict two-level tree:
//
//	LeaderRoot
//	├── BreakPairs []StartEndPointPair
//	└── Lines []*LeaderLine
//	    ├── Points []geom.XYZ
//	    └── StartEndPoints []StartEndPointPair
//
// A [LeaderRoot] exclusively owns its lines and pairs; a [LeaderLine]
// exclusively owns its vertices and pairs. Line types and arrowhead blocks are
// catalog records owned elsewhere (see package catalog); lines only hold
// pointers to them.
//
// # Cloning
//
// Every owned type implements [Cloner]. Clone copies scalars by value,
// allocates fresh collections and clones each element into them, and copies
// catalog pointers as-is:
//
//	c := root.Clone()
//	c.Lines[0].AddPoint(geom.New(9, 9, 0)) // root is unaffected
//	c.Lines[0].Arrowhead == root.Lines[0].Arrowhead // true: shared record
//
// # Field Tags
//
// [RootTags], [LineTags] and [PairTags] describe how each persisted field maps
// to numeric group codes. They are consulted only by codecs; the entity types
// themselves carry no serialization concerns.
//
// # Validation
//
// The types accept any value. A negative landing distance or an override bit
// without a matching field assignment is stored as given; policy belongs to
// the codec or the owning annotation context.
//
// None of the types are safe for concurrent use. Clone walks the tree in
// several steps and must not race with mutation of the source.
package mleader
