// Package dxf reads and writes leader geometry as an ASCII tagged stream of
// group-code/value pairs, the layout drawing exchange files use.
//
// Each pair occupies two lines: the integer group code, right-aligned in three
// columns, and the value. A [mleader.LeaderRoot] is framed by
//
//	302
//	LEADER{
//	...
//	303
//	}
//
// and each of its lines by 304 "LEADER_LINE{" / 305 "}". Which codes carry
// which field is defined by [mleader.RootTags], [mleader.LineTags] and
// [mleader.PairTags]; the [Encoder] writes fields in table order and the
// [Decoder] accepts them in any order within an entity, appending repeated
// values in the order they appear.
//
// Line type and arrowhead references are written as hexadecimal handles.
// Decoding resolves them through a [catalog.Resolver]. Handle 0 means "no
// reference"; any other handle that does not resolve fails with
// [ErrUnresolvedHandle].
package dxf
