package gg

import (
	"context"
	"log/slog"

	"github.com/jafenix/tessellate/internal/tess"
)

// maxTessellationVertices is the vertex budget of a single tessellation
// call, matching the reference algorithm's overflow guard. PathToTriangles
// compares the arena's vertex count against it after Simplify, so the
// flattened, merged and intersection vertices are already allocated by
// then. Paths over the budget fail soft: PathToTriangles logs a warning
// and returns zero vertices instead of triangulating and emitting them.
const maxTessellationVertices = 1 << 16

// Vertex is one output vertex of a tessellated path: a 2D position plus
// an 8-bit coverage value used by antialiased output modes.
type Vertex struct {
	Point Point
	Alpha uint8
}

// VertexAllocator lets a caller supply its own backing storage for
// tessellation output — e.g. a region of a GPU-mapped vertex buffer —
// instead of always receiving a freshly allocated []Vertex. Lock
// reserves room for up to n vertices and returns a slice to write into;
// Unlock reports how many were actually used once tessellation finishes,
// and Stride reports the caller's element size in case the allocator
// interleaves attributes.
type VertexAllocator interface {
	Lock(n int) ([]Vertex, error)
	Unlock(actual int)
	Stride() int
}

// sliceAllocator is the default [VertexAllocator]: a plain growable
// slice, used whenever the caller does not provide one.
type sliceAllocator struct {
	buf []Vertex
}

func (a *sliceAllocator) Lock(n int) ([]Vertex, error) {
	a.buf = make([]Vertex, n)
	return a.buf, nil
}
func (a *sliceAllocator) Unlock(actual int) { a.buf = a.buf[:actual] }
func (a *sliceAllocator) Stride() int       { return 1 }

// Options configures a tessellation call.
type Options struct {
	// Tolerance is the chordal flattening tolerance, in path coordinates.
	// Zero selects a small default appropriate to typical screen scales.
	Tolerance float64

	// ClipBounds is the rectangle that bounds the complement region of
	// InverseNonZero and InverseEvenOdd, which is unbounded otherwise; it
	// is required for those rules. It also sets the sweep comparator's
	// axis (the path's bounding box is used when it is zero). Geometry of
	// the path outside the rectangle is not clipped.
	ClipBounds Rect

	// Antialias enables the screen-space coverage pipeline: quarter-pixel
	// vertex snapping and per-vertex alpha derived from the AEL sweep,
	// intended for a renderer that blends using per-vertex alpha
	// (CanTweakAlpha) or a separate coverage channel (linear AA).
	Antialias bool

	// CanTweakAlpha, when Antialias is set, tells the tessellator the
	// renderer will modulate a solid fill color by each vertex's alpha
	// directly rather than reading coverage from a side channel.
	CanTweakAlpha bool

	// Transform, if non-nil, is the matrix mapping the path's own
	// coordinates to the caller's target space (e.g. a CTM). The pipeline
	// flattens and sweeps entirely in the path's local space — dividing
	// Tolerance by the transform's MaxScaleFactor so the flattened curve
	// still looks flat to within Tolerance once transformed — and applies
	// Transform to each output vertex as the very last step. This avoids
	// re-transforming every candidate point generated during recursive
	// curve subdivision, the same tradeoff a rasterizer makes when it
	// defers the matrix multiply past flattening.
	Transform *Matrix
}

// PathToVertices tessellates p into triangles written to out (which may
// be nil; PathToVertices grows it as needed) and returns the extended
// slice. It is a convenience wrapper over [PathToTriangles] for callers
// that do not need a custom [VertexAllocator].
func PathToVertices(p *Path, opts Options, out []Vertex) ([]Vertex, error) {
	alloc := &sliceAllocator{}
	n, err := PathToTriangles(p, opts, alloc)
	if err != nil {
		return out, err
	}
	return append(out, alloc.buf[:n]...), nil
}

// PathToTriangles runs the full six-stage pipeline — flatten, build mesh,
// sweep-sort, simplify, assign monotone polygons, emit — on p and writes
// the resulting triangle list through alloc, returning the number of
// vertices written. Degenerate input (an empty path, or one whose
// contours all sanitize away) returns (0, nil) rather than an error,
// matching the fail-soft behavior the reference algorithm uses for paths
// that simply produce no visible geometry.
func PathToTriangles(p *Path, opts Options, alloc VertexAllocator) (int, error) {
	log := Logger()

	tol := opts.Tolerance
	if opts.Transform != nil {
		if s := opts.Transform.MaxScaleFactor(); s > 1e-12 {
			tol /= s
		}
	}

	contours := flattenPath(p, tol)
	if p.FillRule().IsInverse() {
		contours = append([]flattenContour{clipRectContour(opts.ClipBounds)}, contours...)
	}
	if len(contours) == 0 {
		return 0, nil
	}

	bounds := opts.ClipBounds
	if bounds == (Rect{}) {
		bounds = p.BoundingBox()
	}

	arena := tess.NewArena()
	cmp := tess.NewComparator(bounds.Width(), bounds.Height())

	var heads []tess.VertexID
	for _, c := range contours {
		ring := buildContourRing(arena, c)
		ring, n := sanitizeRing(arena, ring, opts.Antialias)
		if n < 3 {
			continue
		}
		buildMeshEdges(arena, cmp, ring)
		heads = append(heads, ring)
	}
	if len(heads) == 0 {
		log.LogAttrs(context.Background(), slog.LevelDebug, "tessellate: all contours degenerate")
		return 0, nil
	}

	listHead := flattenRingsToList(arena, heads)
	listHead = mergeSortVertices(arena, cmp, listHead)
	listHead = mergeCoincidentVertices(arena, listHead)

	listHead = tess.Simplify(arena, cmp, listHead, opts.Antialias)

	if arena.VertexCount() > maxTessellationVertices {
		log.LogAttrs(context.Background(), slog.LevelWarn, "tessellate: path exceeds vertex budget",
			slog.Int("vertices", arena.VertexCount()))
		return 0, nil
	}

	fillRule := p.FillRule()
	passes := func(w int32) bool { return fillRule.Fills(int(w)) }
	polyHead := tess.Tessellate(arena, listHead, passes)

	if opts.Antialias {
		boundary := tess.ExtractBoundary(arena, polyHead, passes)
		boundary = tess.SimplifyBoundary(boundary)
		aaHead := tess.BoundaryToAAMesh(arena, boundary)
		if aaHead != tess.NilVertex {
			aaHead = mergeSortVertices(arena, cmp, aaHead)
			aaHead = mergeCoincidentVertices(arena, aaHead)
			aaHead = tess.Simplify(arena, cmp, aaHead, true)
			polyHead = tess.Tessellate(arena, aaHead, func(int32) bool { return true })
		}
	}

	emitted := tess.EmitTriangles(arena, polyHead, nil)
	if len(emitted) == 0 {
		return 0, nil
	}

	buf, err := alloc.Lock(len(emitted))
	if err != nil {
		log.LogAttrs(context.Background(), slog.LevelWarn, "tessellate: vertex allocator failed", slog.Any("error", err))
		return 0, nil
	}
	n := min(len(buf), len(emitted))
	for i := 0; i < n; i++ {
		pt := Point{X: emitted[i].Point.X, Y: emitted[i].Point.Y}
		if opts.Transform != nil {
			pt = opts.Transform.TransformPoint(pt)
		}
		buf[i] = Vertex{Point: pt, Alpha: emitted[i].Alpha}
	}
	alloc.Unlock(n)

	log.LogAttrs(context.Background(), slog.LevelDebug, "tessellate: done",
		slog.Int("vertices", arena.VertexCount()), slog.Int("triangleVerts", n),
		slog.Float64("pathArea", p.Area()))

	return n, nil
}
