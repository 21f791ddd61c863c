package geo

// approxCellSizeKm is a rough cell-side lookup table (see the precision table
// in geohash.go's package doc), indexed by precision. It only needs to
// be roughly right — it decides how many rings to expand a search by, not
// any distance used to accept or reject a candidate.
var approxCellSizeKm = map[int]float64{
	1: 5000, 2: 1250, 3: 156, 4: 39, 5: 5, 6: 1.2,
	7: 0.153, 8: 0.019, 9: 0.0048, 10: 0.0012, 11: 0.00015, 12: 0.000019,
}

// maxRingRadius bounds how far search will expand the cell ring, so a caller
// passing an unreasonably large max_radius_km can't make a single query scan
// an unbounded number of cells. The effective maximum radius this lets a
// search actually cover is maxRingRadius * cellSizeKm(precision) — at the
// default precision (7, ~0.153km cells) that's ~30.6km, comfortably above
// spec.md §8 scenario 2's 15km query (which needs a ring radius of ~99).
// Larger radii at coarser precisions hit this cap and may under-scan; finer
// precisions reach their effective max sooner.
const maxRingRadius = 200

func cellSizeKm(precision int) float64 {
	if size, ok := approxCellSizeKm[precision]; ok {
		return size
	}
	if precision < 1 {
		return approxCellSizeKm[1]
	}
	return approxCellSizeKm[12]
}

// searchRingRadius picks how many rings of cells to expand a search by:
// rather than a fixed 3x3 neighborhood, the ring expands until its
// half-width covers radiusKm, so a query radius larger than one cell
// diagonal no longer silently misses candidates beyond the ring.
func searchRingRadius(precision int, radiusKm float64) int {
	size := cellSizeKm(precision)
	radius := 1
	for float64(radius)*size < radiusKm && radius < maxRingRadius {
		radius++
	}
	return radius
}

// cellsInSquare returns every cell within `radius` steps (in both the
// north/south and east/west directions) of center, including center itself.
// radius 1 reduces to the same 9-cell neighborhood as AllNeighbors; larger
// radii generalize the same north/south-then-east/west chaining technique to
// build wider search rings.
func cellsInSquare(center string, radius int) []string {
	if radius <= 1 {
		return AllNeighbors(center)
	}

	rowAnchors := make([]string, 0, 2*radius+1)
	rowAnchors = append(rowAnchors, center)

	north := center
	for i := 0; i < radius; i++ {
		north = Neighbor(north, "n")
		rowAnchors = append([]string{north}, rowAnchors...)
	}
	south := center
	for i := 0; i < radius; i++ {
		south = Neighbor(south, "s")
		rowAnchors = append(rowAnchors, south)
	}

	seen := make(map[string]bool, len(rowAnchors)*(2*radius+1))
	var all []string
	for _, anchor := range rowAnchors {
		row := []string{anchor}
		east := anchor
		for i := 0; i < radius; i++ {
			east = Neighbor(east, "e")
			row = append(row, east)
		}
		west := anchor
		for i := 0; i < radius; i++ {
			west = Neighbor(west, "w")
			row = append(row, west)
		}
		for _, cell := range row {
			if !seen[cell] {
				seen[cell] = true
				all = append(all, cell)
			}
		}
	}
	return all
}
