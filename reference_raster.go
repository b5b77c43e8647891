package gg

import "github.com/jafenix/tessellate/raster"

// referenceWindingAt rasterizes p's flattened edges with a classic
// scanline active-edge table and returns the winding number at (x, y).
// It serves as an independent oracle, separate from the tessellation
// pipeline, for checking emitted triangles against the path's winding
// map.
func referenceWindingAt(p *Path, x, y float64) int32 {
	contours := flattenPath(p, 0.25)
	el := raster.NewEdgeList()
	for _, c := range contours {
		pts := c.points
		for i := 0; i+1 < len(pts); i++ {
			el.AddLine(float32(pts[i].X), float32(pts[i].Y), float32(pts[i+1].X), float32(pts[i+1].Y))
		}
	}
	return raster.WindingAt(el.Edges(), float32(x), float32(y))
}

// referenceRasterCoverage renders p's fill region into a coverage grid
// using the scanline active-edge-table rasterizer, honoring p's own fill
// rule rather than always assuming NonZero. It returns the grid along with
// the integer (x, y) the grid's (0, 0) cell corresponds to in path space,
// since the grid is sized to the path's own bounds rather than a caller-
// supplied viewport.
func referenceRasterCoverage(p *Path) (cov [][]bool, originX, originY int) {
	contours := flattenPath(p, 0.25)
	el := raster.NewEdgeList()
	for _, c := range contours {
		pts := c.points
		for i := 0; i+1 < len(pts); i++ {
			el.AddLine(float32(pts[i].X), float32(pts[i].Y), float32(pts[i+1].X), float32(pts[i+1].Y))
		}
	}
	rule := p.FillRule()
	return raster.RasterizeAuto(el.Edges(), func(w int32) bool { return rule.Fills(int(w)) })
}
