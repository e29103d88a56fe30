package geojson

import (
	geom "github.com/twpayne/go-geom"
)

// IncludeBoundingBox decides, per geometry type, whether an encoded
// geometry carries a bbox field. Values are immutable: every builder
// method returns a new value, so a policy can be shared freely across
// concurrent encode calls. The zero value never includes a bounding box.
type IncludeBoundingBox struct {
	mask uint8
}

// NeverIncludeBoundingBox returns a policy that never includes a bounding box.
func NeverIncludeBoundingBox() IncludeBoundingBox {
	return IncludeBoundingBox{}
}

// AlwaysIncludeBoundingBox returns a policy that includes a bounding box
// for every geometry type.
func AlwaysIncludeBoundingBox() IncludeBoundingBox {
	return NeverIncludeBoundingBox().
		ForGeometryCollection().
		ForMultiPolygon().
		ForMultiLineString().
		ForMultiPoint().
		ForPolygon().
		ForLineString().
		ForPoint()
}

// IncludeBoundingBoxExceptPoints returns a policy that includes a
// bounding box for every geometry type except points.
func IncludeBoundingBoxExceptPoints() IncludeBoundingBox {
	return NeverIncludeBoundingBox().
		ForGeometryCollection().
		ForMultiPolygon().
		ForMultiLineString().
		ForMultiPoint().
		ForPolygon().
		ForLineString()
}

func (b IncludeBoundingBox) include(t GeometryType) IncludeBoundingBox {
	return IncludeBoundingBox{mask: b.mask | t.mask()}
}

// ForPoint includes the bounding box for points.
func (b IncludeBoundingBox) ForPoint() IncludeBoundingBox {
	return b.include(TypePoint)
}

// ForLineString includes the bounding box for line strings.
func (b IncludeBoundingBox) ForLineString() IncludeBoundingBox {
	return b.include(TypeLineString)
}

// ForPolygon includes the bounding box for polygons.
func (b IncludeBoundingBox) ForPolygon() IncludeBoundingBox {
	return b.include(TypePolygon)
}

// ForMultiPoint includes the bounding box for multi points.
func (b IncludeBoundingBox) ForMultiPoint() IncludeBoundingBox {
	return b.include(TypeMultiPoint)
}

// ForMultiLineString includes the bounding box for multi line strings.
func (b IncludeBoundingBox) ForMultiLineString() IncludeBoundingBox {
	return b.include(TypeMultiLineString)
}

// ForMultiPolygon includes the bounding box for multi polygons.
func (b IncludeBoundingBox) ForMultiPolygon() IncludeBoundingBox {
	return b.include(TypeMultiPolygon)
}

// ForGeometryCollection includes the bounding box for geometry collections.
func (b IncludeBoundingBox) ForGeometryCollection() IncludeBoundingBox {
	return b.include(TypeGeometryCollection)
}

// ForMultiGeometry includes the bounding box for multi points, multi
// line strings, multi polygons and geometry collections.
func (b IncludeBoundingBox) ForMultiGeometry() IncludeBoundingBox {
	return b.include(TypeMultiPoint).
		include(TypeMultiLineString).
		include(TypeMultiPolygon).
		include(TypeGeometryCollection)
}

// ShouldIncludeFor reports whether the bounding box should be included
// for the geometry type.
func (b IncludeBoundingBox) ShouldIncludeFor(t GeometryType) bool {
	return b.mask&t.mask() != 0
}

// ShouldIncludeForGeometry reports whether the bounding box should be
// included for the geometry.
func (b IncludeBoundingBox) ShouldIncludeForGeometry(g geom.T) bool {
	t, ok := GeometryTypeOf(g)
	return ok && b.ShouldIncludeFor(t)
}
