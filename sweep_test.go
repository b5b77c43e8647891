package gg

import (
	"testing"

	"github.com/jafenix/tessellate/internal/tess"
)

func unsortedList(arena *tess.Arena, pts []Point) tess.VertexID {
	ids := make([]tess.VertexID, len(pts))
	for i, p := range pts {
		ids[i] = arena.NewVertex(tess.Point{X: p.X, Y: p.Y}, 255)
	}
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

func TestMergeSortVertices_SortsByComparator(t *testing.T) {
	arena := tess.NewArena()
	cmp := tess.Comparator{Dir: tess.Vertical}
	head := unsortedList(arena, []Point{{5, 5}, {0, 0}, {3, 1}, {0, 10}})

	sorted := mergeSortVertices(arena, cmp, head)

	var ys []float64
	for cur := sorted; cur != tess.NilVertex; cur = arena.Vertex(cur).Next {
		ys = append(ys, arena.Vertex(cur).Point.Y)
	}
	for i := 1; i < len(ys); i++ {
		if ys[i] < ys[i-1] {
			t.Fatalf("mergeSortVertices() not sorted ascending by Y: %v", ys)
		}
	}
	if len(ys) != 4 {
		t.Fatalf("mergeSortVertices() lost vertices: got %d, want 4", len(ys))
	}
}

func TestMergeCoincidentVertices_MergesDuplicates(t *testing.T) {
	arena := tess.NewArena()
	cmp := tess.Comparator{Dir: tess.Vertical}

	a := arena.NewVertex(tess.Point{X: 0, Y: 0}, 100)
	b := arena.NewVertex(tess.Point{X: 0, Y: 0}, 200)
	c := arena.NewVertex(tess.Point{X: 1, Y: 1}, 255)

	head := unsortedList2(arena, a, b, c)
	sorted := mergeSortVertices(arena, cmp, head)
	merged := mergeCoincidentVertices(arena, sorted)

	count := 0
	for cur := merged; cur != tess.NilVertex; cur = arena.Vertex(cur).Next {
		count++
	}
	if count != 2 {
		t.Fatalf("mergeCoincidentVertices() left %d vertices, want 2", count)
	}
	if arena.Vertex(merged).Alpha != 200 {
		t.Errorf("merged vertex alpha = %d, want 200 (max of duplicates)", arena.Vertex(merged).Alpha)
	}
}

func unsortedList2(arena *tess.Arena, ids ...tess.VertexID) tess.VertexID {
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
