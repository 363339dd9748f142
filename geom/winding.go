package geom

// WindingNumber returns the winding number of ps at p by summing signed
// crossings of the horizontal ray from p towards +x: +1 for each upward
// edge with p on its left, -1 for each downward edge with p on its right.
// It gives point-in-polygon-set membership outside of a full scanline
// pass (vcarve's interior clip). Exact via Int128 orientation, not
// floating-point ray casting.
func WindingNumber(ps PolygonSet, p Point) int {
	winding := 0
	for _, path := range ps {
		n := len(path)
		for i := 0; i < n; i++ {
			v1 := path[i]
			v2 := path[(i+1)%n]
			if v1.Y <= p.Y {
				if v2.Y > p.Y && orientation2D(v1, v2, p) > 0 {
					winding++
				}
			} else {
				if v2.Y <= p.Y && orientation2D(v1, v2, p) < 0 {
					winding--
				}
			}
		}
	}
	return winding
}

// Inside reports whether p lies strictly inside ps under the
// positive-winding rule (winding number > 0).
func Inside(ps PolygonSet, p Point) bool {
	return WindingNumber(ps, p) > 0
}
