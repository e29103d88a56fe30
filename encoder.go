package geojson

import (
	jsoniter "github.com/json-iterator/go"
	geom "github.com/twpayne/go-geom"
)

var jsonAPI = jsoniter.ConfigCompatibleWithStandardLibrary

// GeometryEncoder writes geometries as GeoJSON geometry objects.
//
// The emitted object carries, in order, the type tag, an optional bbox
// and the coordinates or geometries payload. The bounding box is the
// raw, unrounded envelope of the geometry; it is only emitted when the
// configured policy flags the geometry type and the geometry is
// non-empty. Coordinates are rounded by the coordinate codec.
type GeometryEncoder struct {
	includeBoundingBox IncludeBoundingBox
	coordinates        *CoordinateCodec
}

// NewGeometryEncoder returns an encoder with the given bounding box
// policy and coordinate precision. A negative precision fails with
// InvalidConfigurationError.
func NewGeometryEncoder(includeBoundingBox IncludeBoundingBox, decimalPlaces int) (*GeometryEncoder, error) {
	coordinates, err := NewCoordinateCodec(decimalPlaces)
	if err != nil {
		return nil, err
	}
	return &GeometryEncoder{
		includeBoundingBox: includeBoundingBox,
		coordinates:        coordinates,
	}, nil
}

// Encode renders g as a GeoJSON geometry object. A nil geometry
// encodes as the JSON null token.
func (e *GeometryEncoder) Encode(g geom.T) ([]byte, error) {
	stream := jsonAPI.BorrowStream(nil)
	defer jsonAPI.ReturnStream(stream)
	if err := e.EncodeTo(stream, g); err != nil {
		return nil, err
	}
	if stream.Error != nil {
		return nil, stream.Error
	}
	buf := stream.Buffer()
	out := make([]byte, len(buf))
	copy(out, buf)
	return out, nil
}

// EncodeTo writes g to stream. A geometry implementation outside the
// closed GeoJSON type set fails with UnsupportedGeometryError.
func (e *GeometryEncoder) EncodeTo(stream *jsoniter.Stream, g geom.T) error {
	if g == nil {
		stream.WriteNil()
		return stream.Error
	}
	switch g := g.(type) {
	case *geom.Point:
		e.writeHeader(stream, TypePoint, g)
		if g.Empty() {
			stream.WriteEmptyArray()
		} else {
			e.coordinates.EncodeTo(stream, g.Coords())
		}
	case *geom.LineString:
		e.writeHeader(stream, TypeLineString, g)
		e.writeCoords1(stream, g.Coords())
	case *geom.LinearRing:
		// JTS treats a linear ring as a line string; so does GeoJSON.
		e.writeHeader(stream, TypeLineString, g)
		e.writeCoords1(stream, g.Coords())
	case *geom.Polygon:
		e.writeHeader(stream, TypePolygon, g)
		e.writeCoords2(stream, g.Coords())
	case *geom.MultiPoint:
		e.writeHeader(stream, TypeMultiPoint, g)
		e.writeCoords1(stream, g.Coords())
	case *geom.MultiLineString:
		e.writeHeader(stream, TypeMultiLineString, g)
		e.writeCoords2(stream, g.Coords())
	case *geom.MultiPolygon:
		e.writeHeader(stream, TypeMultiPolygon, g)
		e.writeCoords3(stream, g.Coords())
	case *geom.GeometryCollection:
		if err := e.encodeCollection(stream, g); err != nil {
			return err
		}
	default:
		return UnsupportedGeometryError{Geometry: g}
	}
	stream.WriteObjectEnd()
	return stream.Error
}

func (e *GeometryEncoder) encodeCollection(stream *jsoniter.Stream, g *geom.GeometryCollection) error {
	stream.WriteObjectStart()
	e.writeTypeAndBBox(stream, TypeGeometryCollection, g)
	stream.WriteMore()
	stream.WriteObjectField(fieldGeometries)
	stream.WriteArrayStart()
	for i, child := range g.Geoms() {
		if i > 0 {
			stream.WriteMore()
		}
		if err := e.EncodeTo(stream, child); err != nil {
			return err
		}
	}
	stream.WriteArrayEnd()
	return nil
}

// writeHeader opens the geometry object and positions the stream at
// the coordinates payload.
func (e *GeometryEncoder) writeHeader(stream *jsoniter.Stream, t GeometryType, g geom.T) {
	stream.WriteObjectStart()
	e.writeTypeAndBBox(stream, t, g)
	stream.WriteMore()
	stream.WriteObjectField(fieldCoordinates)
}

func (e *GeometryEncoder) writeTypeAndBBox(stream *jsoniter.Stream, t GeometryType, g geom.T) {
	stream.WriteObjectField(fieldType)
	stream.WriteString(t.String())
	if !e.includeBoundingBox.ShouldIncludeFor(t) || g.Empty() {
		return
	}
	bounds := g.Bounds()
	stream.WriteMore()
	stream.WriteObjectField(fieldBBox)
	stream.WriteArrayStart()
	stream.WriteFloat64(bounds.Min(0))
	stream.WriteMore()
	stream.WriteFloat64(bounds.Min(1))
	stream.WriteMore()
	stream.WriteFloat64(bounds.Max(0))
	stream.WriteMore()
	stream.WriteFloat64(bounds.Max(1))
	stream.WriteArrayEnd()
}

func (e *GeometryEncoder) writeCoords1(stream *jsoniter.Stream, coords []geom.Coord) {
	stream.WriteArrayStart()
	for i, c := range coords {
		if i > 0 {
			stream.WriteMore()
		}
		e.coordinates.EncodeTo(stream, c)
	}
	stream.WriteArrayEnd()
}

func (e *GeometryEncoder) writeCoords2(stream *jsoniter.Stream, coords [][]geom.Coord) {
	stream.WriteArrayStart()
	for i, c := range coords {
		if i > 0 {
			stream.WriteMore()
		}
		e.writeCoords1(stream, c)
	}
	stream.WriteArrayEnd()
}

func (e *GeometryEncoder) writeCoords3(stream *jsoniter.Stream, coords [][][]geom.Coord) {
	stream.WriteArrayStart()
	for i, c := range coords {
		if i > 0 {
			stream.WriteMore()
		}
		e.writeCoords2(stream, c)
	}
	stream.WriteArrayEnd()
}
