package geojson

import (
	"fmt"

	geom "github.com/twpayne/go-geom"
	"github.com/valyala/fastjson"
)

// GeometryDecoder reconstructs geometries from GeoJSON geometry
// objects, dispatching on the type tag and validating structural and
// numeric well-formedness at every level. Construction goes through
// the injected GeometryFactory; the decoder itself performs no ring
// closure or topology checks.
type GeometryDecoder struct {
	factory     *GeometryFactory
	coordinates *CoordinateCodec
	maxDepth    int
	parsers     fastjson.ParserPool
}

// NewGeometryDecoder returns a decoder constructing geometries through
// factory. A nil factory falls back to the default factory with SRID
// 4326.
func NewGeometryDecoder(factory *GeometryFactory) *GeometryDecoder {
	if factory == nil {
		factory = NewGeometryFactory(DefaultSRID)
	}
	return &GeometryDecoder{
		factory:     factory,
		coordinates: &CoordinateCodec{decimalPlaces: DefaultDecimalPlaces},
	}
}

// Decode parses data as JSON and decodes the geometry within.
func (d *GeometryDecoder) Decode(data []byte) (geom.T, error) {
	p := d.parsers.Get()
	defer d.parsers.Put(p)
	v, err := p.ParseBytes(data)
	if err != nil {
		return nil, err
	}
	return d.DecodeValue(v)
}

// DecodeValue decodes a parsed GeoJSON geometry node. A JSON null
// decodes to a nil geometry.
func (d *GeometryDecoder) DecodeValue(v *fastjson.Value) (geom.T, error) {
	return d.decodeValue(v, 0)
}

func (d *GeometryDecoder) decodeValue(v *fastjson.Value, depth int) (geom.T, error) {
	if v == nil || v.Type() == fastjson.TypeNull {
		return nil, nil
	}
	if d.maxDepth > 0 && depth > d.maxDepth {
		return nil, NestingDepthError(d.maxDepth)
	}
	typeName := typeTagOf(v)
	t, ok := GeometryTypeFromString(typeName)
	if !ok {
		return nil, UnknownGeometryTypeError(typeName)
	}
	switch t {
	case TypePoint:
		return d.decodePoint(v)
	case TypeLineString:
		return d.decodeLineString(v)
	case TypePolygon:
		return d.decodePolygon(v)
	case TypeMultiPoint:
		return d.decodeMultiPoint(v)
	case TypeMultiLineString:
		return d.decodeMultiLineString(v)
	case TypeMultiPolygon:
		return d.decodeMultiPolygon(v)
	case TypeGeometryCollection:
		return d.decodeGeometryCollection(v, depth)
	}
	return nil, UnknownGeometryTypeError(typeName)
}

func (d *GeometryDecoder) decodePoint(v *fastjson.Value) (geom.T, error) {
	node := v.Get(fieldCoordinates)
	if node == nil {
		return d.factory.CreatePoint(nil)
	}
	switch node.Type() {
	case fastjson.TypeArray:
		if elems, _ := node.Array(); len(elems) == 0 {
			return d.factory.CreatePoint(nil)
		}
	case fastjson.TypeObject:
	default:
		return nil, errExpectingArray(fieldCoordinates, node)
	}
	coord, err := d.coordinates.DecodeValue(node)
	if err != nil {
		return nil, err
	}
	return d.factory.CreatePoint(coord)
}

func (d *GeometryDecoder) decodeLineString(v *fastjson.Value) (geom.T, error) {
	elems, err := payloadElements(v, fieldCoordinates)
	if err != nil {
		return nil, err
	}
	coords, err := d.decodeCoordinates(elems)
	if err != nil {
		return nil, err
	}
	return d.factory.CreateLineString(coords)
}

func (d *GeometryDecoder) decodeMultiPoint(v *fastjson.Value) (geom.T, error) {
	elems, err := payloadElements(v, fieldCoordinates)
	if err != nil {
		return nil, err
	}
	coords, err := d.decodeCoordinates(elems)
	if err != nil {
		return nil, err
	}
	return d.factory.CreateMultiPoint(coords)
}

func (d *GeometryDecoder) decodePolygon(v *fastjson.Value) (geom.T, error) {
	elems, err := payloadElements(v, fieldCoordinates)
	if err != nil {
		return nil, err
	}
	rings, err := d.decodeRingSet(elems)
	if err != nil {
		return nil, err
	}
	return d.factory.CreatePolygon(rings)
}

func (d *GeometryDecoder) decodeMultiLineString(v *fastjson.Value) (geom.T, error) {
	elems, err := payloadElements(v, fieldCoordinates)
	if err != nil {
		return nil, err
	}
	lines, err := d.decodeRingSet(elems)
	if err != nil {
		return nil, err
	}
	return d.factory.CreateMultiLineString(lines)
}

func (d *GeometryDecoder) decodeMultiPolygon(v *fastjson.Value) (geom.T, error) {
	elems, err := payloadElements(v, fieldCoordinates)
	if err != nil {
		return nil, err
	}
	polygons := make([][][]geom.Coord, len(elems))
	for i, el := range elems {
		ringElems, err := arrayElements(el, fieldCoordinates)
		if err != nil {
			return nil, err
		}
		rings, err := d.decodeRingSet(ringElems)
		if err != nil {
			return nil, err
		}
		polygons[i] = rings
	}
	return d.factory.CreateMultiPolygon(polygons)
}

func (d *GeometryDecoder) decodeGeometryCollection(v *fastjson.Value, depth int) (geom.T, error) {
	elems, err := payloadElements(v, fieldGeometries)
	if err != nil {
		return nil, err
	}
	geoms := make([]geom.T, 0, len(elems))
	for _, el := range elems {
		child, err := d.decodeValue(el, depth+1)
		if err != nil {
			return nil, err
		}
		if child != nil {
			geoms = append(geoms, child)
		}
	}
	return d.factory.CreateGeometryCollection(geoms)
}

// decodeRingSet decodes an array of coordinate arrays: polygon rings
// (shell first, then holes) or the lines of a multi line string.
func (d *GeometryDecoder) decodeRingSet(elems []*fastjson.Value) ([][]geom.Coord, error) {
	rings := make([][]geom.Coord, len(elems))
	for i, el := range elems {
		ringElems, err := arrayElements(el, fieldCoordinates)
		if err != nil {
			return nil, err
		}
		coords, err := d.decodeCoordinates(ringElems)
		if err != nil {
			return nil, err
		}
		rings[i] = coords
	}
	return rings, nil
}

func (d *GeometryDecoder) decodeCoordinates(elems []*fastjson.Value) ([]geom.Coord, error) {
	coords := make([]geom.Coord, len(elems))
	for i, el := range elems {
		c, err := d.coordinates.DecodeValue(el)
		if err != nil {
			return nil, err
		}
		coords[i] = c
	}
	return coords, nil
}

// typeTagOf returns the type tag of a GeoJSON object, or the empty
// string when the field is absent.
func typeTagOf(v *fastjson.Value) string {
	node := v.Get(fieldType)
	if node == nil {
		return ""
	}
	if b, err := node.StringBytes(); err == nil {
		return string(b)
	}
	return node.String()
}

// payloadElements returns the elements of an array-valued payload
// field. An absent field decodes as an empty payload; a present
// non-array node fails with MalformedCoordinatesError.
func payloadElements(v *fastjson.Value, field string) ([]*fastjson.Value, error) {
	node := v.Get(field)
	if node == nil {
		return nil, nil
	}
	return arrayElements(node, field)
}

func arrayElements(node *fastjson.Value, field string) ([]*fastjson.Value, error) {
	if node.Type() != fastjson.TypeArray {
		return nil, errExpectingArray(field, node)
	}
	elems, _ := node.Array()
	return elems, nil
}

func errExpectingArray(field string, node *fastjson.Value) error {
	return MalformedCoordinatesError(fmt.Sprintf("Invalid %s, expecting an array but got: %s", field, nodeKind(node)))
}
