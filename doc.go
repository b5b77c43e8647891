// Package gg tessellates 2D vector paths into triangles.
//
// # Overview
//
// gg converts a Path built from move/line/quad/conic/cubic/close segments
// into a triangle mesh, ready to hand to a rasterizer or GPU vertex buffer.
// Filling follows the NonZero, EvenOdd, InverseNonZero, or InverseEvenOdd
// rule. An optional analytic-antialiasing mode emits a feathered boundary
// mesh with per-vertex coverage alpha instead of relying on MSAA or a
// coverage buffer.
//
// # Quick Start
//
//	import "github.com/jafenix/tessellate"
//
//	p := gg.NewPath()
//	p.MoveTo(0, 0)
//	p.LineTo(100, 0)
//	p.LineTo(100, 100)
//	p.Close()
//
//	verts, err := gg.PathToVertices(p, gg.Options{Tolerance: 0.25}, nil)
//
// # Architecture
//
// The public surface is Path, FillRule, Options, and the PathToTriangles /
// PathToVertices entry points. The tessellation pipeline itself lives in
// internal/tess and runs in six stages: flatten curves to polylines, build
// a mesh of directed edges per contour, sort all vertices into one global
// sweep order, run a Bentley-Ottmann-style sweep to remove self-intersections,
// walk the cleaned mesh to assign winding numbers and group edges into
// monotone polygons, and finally ear-clip each monotone polygon into
// triangles.
// package raster holds a classic scanline active-edge-table rasterizer,
// kept as an independent oracle for testing the tessellator's winding-number
// output against.
//
// # Coordinate System
//
// Standard computer graphics coordinates: origin at top-left, X increases
// right, Y increases down.
package gg

// Version information.
const (
	Version           = "0.1.0-alpha.1"
	VersionMajor      = 0
	VersionMinor      = 1
	VersionPatch      = 0
	VersionPrerelease = "alpha.1"
)
