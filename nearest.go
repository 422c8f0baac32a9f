package thikana

import (
	"math"

	geohash "github.com/TomiHiltunen/geohash-golang"
	"github.com/golang/geo/s2"
)

// s2CellLevel determines the granularity of the S2 spatial index used by
// NearestDistrict.
//
// S2 cells are a hierarchical spatial indexing system (see
// https://s2geometry.io/). Level 6 gives roughly 160km cells. That is
// coarse on purpose: the index holds only the 64 district headquarters, so
// per-cell candidate lists stay tiny, and the searched 3x3 cell
// neighborhood always reaches past the maxNearestDistance cutoff: a
// district seat within range can never sit outside the searched cells.
// Finer levels would shrink the guaranteed reach below the cutoff and
// miss legitimate matches near cell corners.
const s2CellLevel = 6

// maxNearestDistance is ~100km in radians on the unit sphere.
// NearestDistrict returns no match when the closest district seat is
// farther than this. The value is calibrated to the dataset: the remotest
// inhabited point in the country (Saint Martin's Island) lies ~95km from
// its district seat at Cox's Bazar, while coordinates outside the country
// quickly exceed it.
const maxNearestDistance = 0.0157

// districtCellIndex maps an S2 cell to the districts whose headquarters
// fall inside it, as indexes into Gazetteer.districts.
type districtCellIndex map[s2.CellID][]int

func (g *Gazetteer) buildCellIndex() {
	g.cellIndex = make(districtCellIndex)
	for i, d := range g.districts {
		ll := s2.LatLngFromDegrees(d.Lat, d.Lng)
		cell := s2.CellIDFromLatLng(ll).Parent(s2CellLevel)
		g.cellIndex[cell] = append(g.cellIndex[cell], i)
	}
}

// cellAndNeighbors returns the given cell plus its neighboring cells.
func (g *Gazetteer) cellAndNeighbors(cell s2.CellID) []s2.CellID {
	cells := make([]s2.CellID, 0, 9)
	cells = append(cells, cell)

	edgeNeighbors := cell.EdgeNeighbors()
	for i := 0; i < 4; i++ {
		cells = append(cells, edgeNeighbors[i])
	}

	seen := make(map[s2.CellID]bool)
	for _, c := range cells {
		seen[c] = true
	}
	for i := 0; i < 4; i++ {
		for _, corner := range edgeNeighbors[i].EdgeNeighbors() {
			if !seen[corner] {
				cells = append(cells, corner)
				seen[corner] = true
			}
		}
	}
	return cells
}

// NearestDistrict returns the district whose headquarters is closest to
// the given coordinates, if one lies within ~100km. Equidistant seats
// resolve to the first district in dataset order, so repeated calls with
// the same coordinates always agree.
func (g *Gazetteer) NearestDistrict(lat, lng float64) (District, bool) {
	// Reject invalid float values that could cause undefined behavior
	// in S2 geometry calculations.
	if math.IsNaN(lat) || math.IsNaN(lng) ||
		math.IsInf(lat, 0) || math.IsInf(lng, 0) {
		return District{}, false
	}

	queryLL := s2.LatLngFromDegrees(lat, lng)
	queryCell := s2.CellIDFromLatLng(queryLL).Parent(s2CellLevel)

	best := -1
	bestDist := math.MaxFloat64
	for _, cell := range g.cellAndNeighbors(queryCell) {
		for _, i := range g.cellIndex[cell] {
			d := g.districts[i]
			dist := float64(queryLL.Distance(s2.LatLngFromDegrees(d.Lat, d.Lng)))
			if dist < bestDist || (dist == bestDist && best >= 0 && i < best) {
				best = i
				bestDist = dist
			}
		}
	}

	if best < 0 || bestDist > maxNearestDistance {
		return District{}, false
	}
	return g.districts[best], true
}

// NearestDivision returns the division containing the district whose
// headquarters is closest to the given coordinates, if one lies within
// ~100km.
func (g *Gazetteer) NearestDivision(lat, lng float64) (Division, bool) {
	d, ok := g.NearestDistrict(lat, lng)
	if !ok {
		return Division{}, false
	}
	return g.DivisionByID(d.DivisionID)
}

// geohashPrecision is 7 characters, about 150m cells: precise enough to
// pin a headquarters marker on a map, short enough for a cache key.
const geohashPrecision = 7

// Geohash returns the geohash of the division headquarters.
func (d Division) Geohash() string {
	return geohash.EncodeWithPrecision(d.Lat, d.Lng, geohashPrecision)
}

// Geohash returns the geohash of the district headquarters.
func (d District) Geohash() string {
	return geohash.EncodeWithPrecision(d.Lat, d.Lng, geohashPrecision)
}
