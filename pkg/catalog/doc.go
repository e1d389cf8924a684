// Package catalog holds the shared drawing resources that leader lines refer
// to: line types and block records (arrowheads), plus the colour and line
// weight value types.
//
// Catalog entries are owned here, not by the leaders that reference them. A
// [github.com/matzehuels/mleader/pkg/mleader.LeaderLine] stores a plain
// pointer to a [LineType] or [BlockRecord]; cloning the line copies the
// pointer, never the record.
//
// # Resolution
//
// Persisted files identify records by [Handle]. Codecs turn handles back into
// instances through the [Resolver] interface, which [Catalog] implements:
//
//	cat := catalog.New()
//	_ = cat.AddBlockRecord(&catalog.BlockRecord{Handle: 0x1F, Name: "_ClosedFilled"})
//	arrow, ok := cat.BlockRecord(0x1F)
//
// # Catalog Files
//
// Catalogs can be loaded from TOML:
//
//	[[linetype]]
//	handle = "14"
//	name = "DASHED"
//	pattern = [0.5, -0.25]
//
//	[[block]]
//	handle = "1F"
//	name = "_ClosedFilled"
package catalog
