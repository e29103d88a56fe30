package geojson

import (
	geom "github.com/twpayne/go-geom"
)

// GeometryType enumerates the seven GeoJSON geometry type tags.
type GeometryType uint8

const (
	// TypePoint is the "Point" geometry type.
	TypePoint GeometryType = iota
	// TypeLineString is the "LineString" geometry type.
	TypeLineString
	// TypePolygon is the "Polygon" geometry type.
	TypePolygon
	// TypeMultiPoint is the "MultiPoint" geometry type.
	TypeMultiPoint
	// TypeMultiLineString is the "MultiLineString" geometry type.
	TypeMultiLineString
	// TypeMultiPolygon is the "MultiPolygon" geometry type.
	TypeMultiPolygon
	// TypeGeometryCollection is the "GeometryCollection" geometry type.
	TypeGeometryCollection
)

var geometryTypeNames = [...]string{
	TypePoint:              "Point",
	TypeLineString:         "LineString",
	TypePolygon:            "Polygon",
	TypeMultiPoint:         "MultiPoint",
	TypeMultiLineString:    "MultiLineString",
	TypeMultiPolygon:       "MultiPolygon",
	TypeGeometryCollection: "GeometryCollection",
}

// String returns the canonical GeoJSON type tag.
func (t GeometryType) String() string {
	if int(t) < len(geometryTypeNames) {
		return geometryTypeNames[t]
	}
	return "Unknown"
}

// mask is the bit of this type within an IncludeBoundingBox mask.
func (t GeometryType) mask() uint8 {
	return 1 << uint(t)
}

// GeometryTypeFromString maps a GeoJSON type tag to its GeometryType.
// The second return value reports whether the tag is known.
func GeometryTypeFromString(s string) (GeometryType, bool) {
	for t, name := range geometryTypeNames {
		if name == s {
			return GeometryType(t), true
		}
	}
	return 0, false
}

// GeometryTypeOf returns the GeometryType for a geometry value. Linear
// rings map to TypeLineString. The second return value reports whether
// the geometry belongs to the closed GeoJSON type set.
func GeometryTypeOf(g geom.T) (GeometryType, bool) {
	switch g.(type) {
	case *geom.Point:
		return TypePoint, true
	case *geom.LineString, *geom.LinearRing:
		return TypeLineString, true
	case *geom.Polygon:
		return TypePolygon, true
	case *geom.MultiPoint:
		return TypeMultiPoint, true
	case *geom.MultiLineString:
		return TypeMultiLineString, true
	case *geom.MultiPolygon:
		return TypeMultiPolygon, true
	case *geom.GeometryCollection:
		return TypeGeometryCollection, true
	default:
		return 0, false
	}
}
