// Package geom provides the 3D value types shared by the leader model and its
// codecs.
//
// [XYZ] is a plain value: it is copied on assignment, compared with ==, and
// never aliased. Nothing in this package renormalizes or validates
// coordinates; NaN and infinities pass through unchanged.
package geom
