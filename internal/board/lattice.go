package board

// Generate lays out the triangular peg lattice for the given number of rows.
// Row r holds r+1 pegs centered on the board, each row shifted half a spacing
// from the one above. The second return value is the y of the collection line.
func Generate(rows int, g Geometry) ([]Peg, float64) {
	if rows < 0 {
		rows = 0
	}
	pegs := make([]Peg, 0, rows*(rows+1)/2)
	cx := g.CenterX()
	for r := 0; r < rows; r++ {
		y := g.TopOffset + float64(r)*g.PegSpacing
		for c := 0; c <= r; c++ {
			pegs = append(pegs, Peg{
				X:   cx - float64(r)*(g.PegSpacing/2) + float64(c)*g.PegSpacing,
				Y:   y,
				Row: r,
				Col: c,
			})
		}
	}
	return pegs, g.TopOffset + float64(rows)*g.PegSpacing
}
