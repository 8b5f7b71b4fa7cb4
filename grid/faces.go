package grid

// classifyFaces splits the global face numbering into interior faces, whose
// tangential neighborhood is complete, and exterior faces, which touch the
// domain boundary along at least one tangential axis. Reconstruction stencils
// at exterior faces lose candidates and are therefore damped.
func (g *Grid) classifyFaces() {
	for f := 0; f < g.NumFaces; f++ {
		axis, coord := g.FaceCoord(f)
		exterior := false
		for e := 0; e < g.Dim; e++ {
			if e == axis {
				continue
			}
			if coord[e] == 0 || coord[e] == g.Shape[e]-1 {
				exterior = true
				break
			}
		}
		if exterior {
			g.exteriorFaces = append(g.exteriorFaces, f)
		} else {
			g.interiorFaces = append(g.interiorFaces, f)
		}
	}
}

// InteriorFaces returns the ids of all faces with a full tangential
// neighborhood, in ascending order.
func (g *Grid) InteriorFaces() []int {
	return append([]int(nil), g.interiorFaces...)
}

// ExteriorFaces returns the ids of all faces adjacent to the domain boundary
// in at least one tangential direction, in ascending order.
func (g *Grid) ExteriorFaces() []int {
	return append([]int(nil), g.exteriorFaces...)
}
