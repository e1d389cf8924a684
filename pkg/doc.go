// Package pkg holds the mleader libraries for multi-leader annotation data.
//
// # Overview
//
// A multi-leader annotation points at a drawing feature with one or more
// leader lines. The packages are layered:
//
//  1. [geom] - 3D points and vectors
//  2. [catalog] - shared line type and block records, colors, line weights
//  3. [mleader] - leader roots, leader lines and break pairs, with deep clone
//  4. [dxf] - the DXF-style tagged stream codec
//  5. [document] - the JSON/YAML interchange form and format detection
//  6. [cache], [store] - caching (file, Redis) and persistence (file, MongoDB)
//  7. [pipeline] - load, convert and duplicate with caching and error codes
//
// # Data flow
//
//	DXF / JSON / YAML
//	         ↓
//	    [pipeline] Load (decode, resolve catalog handles)
//	         ↓
//	    []*mleader.LeaderRoot
//	         ↓
//	    Convert / Duplicate / treeviz / store
//
// # Quick Start
//
//	cat, _ := catalog.LoadFile("drawing.toml")
//	f, _ := os.Open("detail.dxf")
//	roots, err := dxf.NewDecoder(f, cat).DecodeRoots()
//
//	copy := roots[0].Clone()          // shares catalog records, nothing else
//	copy.LeaderIndex = pipeline.NextLeaderIndex(roots)
//
//	doc := document.New("detail", append(roots, copy))
//	err = document.WriteFile("detail.json", doc)
package pkg
