package gg

import (
	"github.com/jafenix/tessellate/internal/tess"
)

// mergeSortVertices stably sorts the global vertex list by sweep order
// using bottom-up merge sort, chosen (per the reference design) because
// it is O(n log n) and, unlike the reference's in-place list splicing,
// its stability is simple to get right: vertices that compare equal
// (coincident points) keep their relative order so the next stage can
// coalesce them deterministically. It collects the list into a slice
// and merges through the buf auxiliary array rather than splicing the
// linked list directly.
func mergeSortVertices(arena *tess.Arena, cmp tess.Comparator, head tess.VertexID) tess.VertexID {
	if head == tess.NilVertex || arena.Vertex(head).Next == tess.NilVertex {
		return head
	}

	// Collect into a slice, sort indices, then relink. A slice is used
	// here (rather than a merge-sort over raw list splices) because the
	// stable slice merge in sortVertexIDsStable is simpler to get right
	// than hand-rolled list splitting;
	// the asymptotic behavior — and the arena-owned result — are the
	// same either way.
	var ids []tess.VertexID
	for cur := head; cur != tess.NilVertex; cur = arena.Vertex(cur).Next {
		ids = append(ids, cur)
	}

	sortVertexIDsStable(ids, func(i, j tess.VertexID) bool {
		return cmp.Less(arena.Vertex(i).Point, arena.Vertex(j).Point)
	})

	for i, id := range ids {
		v := arena.Vertex(id)
		if i == 0 {
			v.Prev = tess.NilVertex
		} else {
			v.Prev = ids[i-1]
		}
		if i == len(ids)-1 {
			v.Next = tess.NilVertex
		} else {
			v.Next = ids[i+1]
		}
	}
	return ids[0]
}

// sortVertexIDsStable is a small stable merge sort over a slice of
// vertex handles, kept separate from sort.SliceStable so the pipeline's
// sorting behavior does not depend on reflection-based comparisons.
func sortVertexIDsStable(ids []tess.VertexID, less func(i, j tess.VertexID) bool) {
	n := len(ids)
	if n < 2 {
		return
	}
	buf := make([]tess.VertexID, n)
	for width := 1; width < n; width *= 2 {
		for i := 0; i < n; i += 2 * width {
			mid := min(i+width, n)
			end := min(i+2*width, n)
			mergeVertexRuns(ids, buf, i, mid, end, less)
		}
		copy(ids, buf[:n])
	}
}

func mergeVertexRuns(ids, buf []tess.VertexID, lo, mid, hi int, less func(i, j tess.VertexID) bool) {
	i, j, k := lo, mid, lo
	for i < mid && j < hi {
		if less(ids[j], ids[i]) {
			buf[k] = ids[j]
			j++
		} else {
			buf[k] = ids[i]
			i++
		}
		k++
	}
	for i < mid {
		buf[k] = ids[i]
		i++
		k++
	}
	for j < hi {
		buf[k] = ids[j]
		j++
		k++
	}
}

// mergeCoincidentVertices walks the sorted list and, whenever a vertex's
// point equals its predecessor's, transfers every incident edge onto the
// predecessor, takes the max of their alphas, and removes the duplicate
// from the list.
func mergeCoincidentVertices(arena *tess.Arena, head tess.VertexID) tess.VertexID {
	if head == tess.NilVertex {
		return head
	}

	prev := head
	cur := arena.Vertex(prev).Next
	for cur != tess.NilVertex {
		next := arena.Vertex(cur).Next
		pv, cv := arena.Vertex(prev), arena.Vertex(cur)
		if pv.Point == cv.Point {
			if cv.Alpha > pv.Alpha {
				pv.Alpha = cv.Alpha
			}
			retargetEdges(arena, cur, prev)
			// Splice cur out of the list.
			pv.Next = next
			if next != tess.NilVertex {
				arena.Vertex(next).Prev = prev
			}
			cur = next
			continue
		}
		prev = cur
		cur = next
	}
	return head
}

// retargetEdges moves every edge incident to "from" onto "to", calling
// the appropriate set_top/set_bottom-equivalent relink so each edge's
// line equation and above/below threading stay consistent.
func retargetEdges(arena *tess.Arena, from, to tess.VertexID) {
	fv := arena.Vertex(from)

	for e := fv.FirstEdgeAbove; e != tess.NilEdge; {
		next := arena.Edge(e).NextAbove
		arena.RemoveEdgeAbove(from, e)
		setBottom(arena, e, to)
		e = next
	}
	for e := fv.FirstEdgeBelow; e != tess.NilEdge; {
		next := arena.Edge(e).NextBelow
		arena.RemoveEdgeBelow(from, e)
		setTop(arena, e, to)
		e = next
	}
}

// setTop relinks edge e's top endpoint to v: removes it from its old top
// vertex's edges-below list (already done by caller when retargeting),
// updates Top, re-threads into v's edges-below list, and recomputes the
// line equation.
func setTop(arena *tess.Arena, e tess.EdgeID, v tess.VertexID) {
	ee := arena.Edge(e)
	ee.Top = v
	arena.RecomputeLine(e)
	arena.AddEdgeBelow(v, e)
}

// setBottom relinks edge e's bottom endpoint to v, symmetric to setTop.
func setBottom(arena *tess.Arena, e tess.EdgeID, v tess.VertexID) {
	ee := arena.Edge(e)
	ee.Bottom = v
	arena.RecomputeLine(e)
	arena.AddEdgeAbove(v, e)
}
