package gg

import (
	"github.com/jafenix/tessellate/internal/tess"
)

// sanitizeRing snaps every vertex to the nearest quarter-pixel when aa is
// set, then repeatedly removes any vertex coincident with its
// predecessor until the ring has no adjacent duplicates (or becomes
// degenerate). Returns the (possibly new) ring head and the surviving
// vertex count; a count below 3 means the contour should be dropped.
func sanitizeRing(arena *tess.Arena, head tess.VertexID, aa bool) (tess.VertexID, int) {
	if head == tess.NilVertex {
		return tess.NilVertex, 0
	}

	if aa {
		cur := head
		for {
			v := arena.Vertex(cur)
			snapped := snapQuarterPixel(Point{X: v.Point.X, Y: v.Point.Y})
			v.Point = tess.Point{X: snapped.X, Y: snapped.Y}
			cur = v.Next
			if cur == head {
				break
			}
		}
	}

	// Repeatedly drop vertices coincident with their predecessor.
	for {
		removedAny := false
		cur := head
		count := 0
		for {
			v := arena.Vertex(cur)
			count++
			if cur == head && count > 1 {
				break
			}
			next := v.Next
			if next == cur {
				// Single-vertex ring.
				return tess.NilVertex, 0
			}
			nv := arena.Vertex(next)
			if nv.Point == v.Point {
				// Remove next, splicing it out of the ring.
				afterNext := nv.Next
				v.Next = afterNext
				arena.Vertex(afterNext).Prev = cur
				if next == head {
					head = afterNext
				}
				removedAny = true
				if afterNext == cur {
					return tess.NilVertex, 0
				}
				continue
			}
			cur = next
			if cur == head {
				break
			}
		}
		if !removedAny {
			break
		}
	}

	// Count surviving vertices.
	n := 0
	cur := head
	for {
		n++
		cur = arena.Vertex(cur).Next
		if cur == head {
			break
		}
	}
	return head, n
}

// buildMeshEdges creates an Inner edge for each consecutive vertex pair
// in a sanitized contour ring, threading each edge into its top vertex's
// edges-below list and its bottom vertex's edges-above list. The ring's
// traversal direction determines the edge's winding relative to sweep
// order.
func buildMeshEdges(arena *tess.Arena, cmp tess.Comparator, head tess.VertexID) {
	cur := head
	for {
		next := arena.Vertex(cur).Next
		a, b := cur, next
		pa, pb := arena.Vertex(a).Point, arena.Vertex(b).Point

		var top, bottom tess.VertexID
		var winding int32
		if cmp.Less(pa, pb) {
			top, bottom, winding = a, b, 1
		} else {
			top, bottom, winding = b, a, -1
		}

		e := arena.NewEdge(top, bottom, winding, tess.Inner)
		arena.AddEdgeBelow(top, e)
		arena.AddEdgeAbove(bottom, e)

		cur = next
		if cur == head {
			break
		}
	}
}

// flattenRingsToList drops contour-ring topology and re-threads every
// vertex from every surviving ring into one flat, unsorted doubly-linked
// list (Stage 3 sorts it into sweep order). Ring links are broken as
// vertices are consumed, satisfying the invariant that a vertex is on a
// contour ring XOR the global sweep list.
func flattenRingsToList(arena *tess.Arena, heads []tess.VertexID) tess.VertexID {
	var listHead, listTail tess.VertexID

	appendVertex := func(v tess.VertexID) {
		if listHead == tess.NilVertex {
			listHead = v
			listTail = v
			arena.Vertex(v).Prev = tess.NilVertex
			arena.Vertex(v).Next = tess.NilVertex
			return
		}
		arena.Vertex(listTail).Next = v
		arena.Vertex(v).Prev = listTail
		arena.Vertex(v).Next = tess.NilVertex
		listTail = v
	}

	for _, head := range heads {
		if head == tess.NilVertex {
			continue
		}
		// Walk the ring, capturing next before we overwrite Next.
		cur := head
		for {
			v := arena.Vertex(cur)
			next := v.Next
			appendVertex(cur)
			if next == head {
				break
			}
			cur = next
		}
	}

	return listHead
}
