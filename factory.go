package geojson

import (
	"fmt"
	"math"

	geom "github.com/twpayne/go-geom"
)

// DefaultSRID is the spatial reference stamped on decoded geometries
// when no factory is supplied.
const DefaultSRID = 4326

// GeometryFactory constructs go-geom geometries from decoded
// coordinate sequences. It infers an XY or XYZ layout from the ordinate
// counts, padding absent z ordinates with NaN, and stamps its SRID on
// every geometry it creates. A factory is stateless and safe for
// concurrent use.
type GeometryFactory struct {
	srid int
}

// NewGeometryFactory returns a factory creating geometries with the
// given SRID.
func NewGeometryFactory(srid int) *GeometryFactory {
	return &GeometryFactory{srid: srid}
}

// SRID returns the spatial reference identifier of created geometries.
func (f *GeometryFactory) SRID() int {
	return f.srid
}

// CreatePoint creates a point from a single coordinate. An empty
// coordinate creates an empty point.
func (f *GeometryFactory) CreatePoint(coord geom.Coord) (*geom.Point, error) {
	if len(coord) == 0 {
		return geom.NewPointEmpty(geom.XY).SetSRID(f.srid), nil
	}
	layout := geom.XY
	if len(coord) > 2 {
		layout = geom.XYZ
	}
	p, err := geom.NewPoint(layout).SetCoords(coord)
	if err != nil {
		return nil, err
	}
	return p.SetSRID(f.srid), nil
}

// CreateLineString creates a line string from an ordered coordinate
// sequence, which may be empty.
func (f *GeometryFactory) CreateLineString(coords []geom.Coord) (*geom.LineString, error) {
	layout, coords := normalizeCoords(coords)
	ls, err := geom.NewLineString(layout).SetCoords(coords)
	if err != nil {
		return nil, err
	}
	return ls.SetSRID(f.srid), nil
}

// CreateLinearRing creates a closed linear ring. Non-empty rings must
// contain at least four positions and end where they start.
func (f *GeometryFactory) CreateLinearRing(coords []geom.Coord) (*geom.LinearRing, error) {
	if err := validateRing(coords); err != nil {
		return nil, err
	}
	layout, coords := normalizeCoords(coords)
	lr, err := geom.NewLinearRing(layout).SetCoords(coords)
	if err != nil {
		return nil, err
	}
	return lr.SetSRID(f.srid), nil
}

// CreatePolygon creates a polygon from ring coordinate sequences: the
// first ring is the shell, the remaining rings are holes. No rings at
// all create an empty polygon.
func (f *GeometryFactory) CreatePolygon(rings [][]geom.Coord) (*geom.Polygon, error) {
	for _, ring := range rings {
		if err := validateRing(ring); err != nil {
			return nil, err
		}
	}
	layout, rings := normalizeRings(rings)
	p, err := geom.NewPolygon(layout).SetCoords(rings)
	if err != nil {
		return nil, err
	}
	return p.SetSRID(f.srid), nil
}

// CreateMultiPoint creates a multi point from one coordinate per child
// point.
func (f *GeometryFactory) CreateMultiPoint(coords []geom.Coord) (*geom.MultiPoint, error) {
	layout, coords := normalizeCoords(coords)
	mp, err := geom.NewMultiPoint(layout).SetCoords(coords)
	if err != nil {
		return nil, err
	}
	return mp.SetSRID(f.srid), nil
}

// CreateMultiLineString creates a multi line string from one coordinate
// sequence per child line string.
func (f *GeometryFactory) CreateMultiLineString(lines [][]geom.Coord) (*geom.MultiLineString, error) {
	layout, lines := normalizeRings(lines)
	mls, err := geom.NewMultiLineString(layout).SetCoords(lines)
	if err != nil {
		return nil, err
	}
	return mls.SetSRID(f.srid), nil
}

// CreateMultiPolygon creates a multi polygon from one ring set per
// child polygon.
func (f *GeometryFactory) CreateMultiPolygon(polygons [][][]geom.Coord) (*geom.MultiPolygon, error) {
	for _, rings := range polygons {
		for _, ring := range rings {
			if err := validateRing(ring); err != nil {
				return nil, err
			}
		}
	}
	layout := geom.XY
	for _, rings := range polygons {
		if ringsLayout(rings) == geom.XYZ {
			layout = geom.XYZ
			break
		}
	}
	if layout == geom.XYZ {
		for _, rings := range polygons {
			for _, ring := range rings {
				padTo3(ring)
			}
		}
	}
	mp, err := geom.NewMultiPolygon(layout).SetCoords(polygons)
	if err != nil {
		return nil, err
	}
	return mp.SetSRID(f.srid), nil
}

// CreateGeometryCollection creates a geometry collection owning the
// given children in order.
func (f *GeometryFactory) CreateGeometryCollection(geoms []geom.T) (*geom.GeometryCollection, error) {
	gc := geom.NewGeometryCollection()
	if err := gc.Push(geoms...); err != nil {
		return nil, err
	}
	return gc.SetSRID(f.srid), nil
}

func validateRing(coords []geom.Coord) error {
	if len(coords) == 0 {
		return nil
	}
	if len(coords) < 4 {
		return fmt.Errorf("invalid number of positions in linear ring: %d (must be 0 or >= 4)", len(coords))
	}
	first, last := coords[0], coords[len(coords)-1]
	if first.X() != last.X() || first.Y() != last.Y() {
		return fmt.Errorf("positions of linear ring do not form a closed ring")
	}
	return nil
}

func normalizeCoords(coords []geom.Coord) (geom.Layout, []geom.Coord) {
	layout := geom.XY
	for _, c := range coords {
		if len(c) > 2 {
			layout = geom.XYZ
			break
		}
	}
	if layout == geom.XYZ {
		padTo3(coords)
	}
	return layout, coords
}

func normalizeRings(rings [][]geom.Coord) (geom.Layout, [][]geom.Coord) {
	layout := ringsLayout(rings)
	if layout == geom.XYZ {
		for _, ring := range rings {
			padTo3(ring)
		}
	}
	return layout, rings
}

func ringsLayout(rings [][]geom.Coord) geom.Layout {
	for _, ring := range rings {
		for _, c := range ring {
			if len(c) > 2 {
				return geom.XYZ
			}
		}
	}
	return geom.XY
}

// padTo3 widens two-ordinate coordinates to three, marking the missing
// z as NaN so it stays absent on encode.
func padTo3(coords []geom.Coord) {
	for i, c := range coords {
		if len(c) < 3 {
			coords[i] = geom.Coord{c.X(), c.Y(), math.NaN()}
		}
	}
}
