// Package document defines the canonical interchange form of leader geometry
// and reads and writes it as JSON, YAML or a DXF-style tagged stream.
//
// A [Document] wraps a list of roots with an ID, a name and a creation time.
// It is the form used by the store, the cache and the command line. Unlike
// the core types it holds no pointers: catalog references are written as
// hexadecimal handles and resolved again by [Document.ToRoots].
//
// # JSON Format
//
//	{
//	  "id": "7c0f5c2e-...",
//	  "name": "detail-a",
//	  "created_at": "2026-10-18T09:12:44.123Z",
//	  "roots": [
//	    {
//	      "content_valid": true,
//	      "connection_point": [4, 1, 0],
//	      "direction": [1, 0, 0],
//	      "leader_index": 0,
//	      "landing_distance": 2.5,
//	      "lines": [
//	        {
//	          "index": 0,
//	          "points": [[0, 0, 0], [2, 0, 0], [4, 1, 0]],
//	          "path_type": "Straight",
//	          "arrowhead": "1F",
//	          "overrides": "Arrowhead"
//	        }
//	      ],
//	      "text_attachment": "Horizontal"
//	    }
//	  ]
//	}
//
// YAML uses the same field names. The DXF format carries roots only; reading
// it yields a document with a fresh ID and no name.
package document
