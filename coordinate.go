package geojson

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	jsoniter "github.com/json-iterator/go"
	geom "github.com/twpayne/go-geom"
	"github.com/valyala/fastjson"
)

// DefaultDecimalPlaces is the number of decimal places coordinates are
// rounded to when no precision is configured.
const DefaultDecimalPlaces = 8

// CoordinateCodec encodes a single coordinate to a JSON numeric array
// and decodes a JSON numeric array, or an object with named ordinates,
// back to a coordinate.
//
// Encoded ordinates are rounded half-up to the configured number of
// decimal places, without grouping separators and with a
// locale-invariant decimal point. Trailing zero fraction digits are
// not emitted.
type CoordinateCodec struct {
	decimalPlaces int
}

// NewCoordinateCodec returns a codec rounding to decimalPlaces decimal
// digits. A negative value fails with InvalidConfigurationError.
func NewCoordinateCodec(decimalPlaces int) (*CoordinateCodec, error) {
	if decimalPlaces < 0 {
		return nil, InvalidConfigurationError("decimalPlaces < 0")
	}
	return &CoordinateCodec{decimalPlaces: decimalPlaces}, nil
}

// DecimalPlaces returns the configured number of decimal places.
func (c *CoordinateCodec) DecimalPlaces() int {
	return c.decimalPlaces
}

// EncodeTo writes coord as a JSON array of two rounded ordinates, or
// three when a finite z ordinate is present. An empty coordinate
// writes an empty array.
func (c *CoordinateCodec) EncodeTo(stream *jsoniter.Stream, coord geom.Coord) {
	stream.WriteArrayStart()
	if len(coord) >= 2 {
		stream.WriteRaw(c.format(coord.X()))
		stream.WriteMore()
		stream.WriteRaw(c.format(coord.Y()))
		if len(coord) > 2 && isFinite(coord[2]) {
			stream.WriteMore()
			stream.WriteRaw(c.format(coord[2]))
		}
	}
	stream.WriteArrayEnd()
}

func (c *CoordinateCodec) format(v float64) string {
	return strconv.FormatFloat(c.round(v), 'f', -1, 64)
}

// round applies half-up rounding at the configured decimal place.
func (c *CoordinateCodec) round(v float64) float64 {
	if !isFinite(v) {
		return v
	}
	shift := math.Pow10(c.decimalPlaces)
	scaled := v * shift
	if !isFinite(scaled) {
		return v
	}
	if scaled < 0 {
		return math.Ceil(scaled-0.5) / shift
	}
	return math.Floor(scaled+0.5) / shift
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// DecodeValue reads a coordinate from a JSON array of at least two
// numbers (elements past the third are ignored) or from a JSON object
// with x and y members and an optional z member.
func (c *CoordinateCodec) DecodeValue(v *fastjson.Value) (geom.Coord, error) {
	if v == nil {
		return nil, errUnknownCoordinateFormat(v)
	}
	switch v.Type() {
	case fastjson.TypeArray:
		elems, _ := v.Array()
		if len(elems) < 2 {
			return nil, MalformedCoordinatesError(fmt.Sprintf("Invalid number of ordinates: %d", len(elems)))
		}
		x, err := ordinate(elems[0])
		if err != nil {
			return nil, err
		}
		y, err := ordinate(elems[1])
		if err != nil {
			return nil, err
		}
		if len(elems) < 3 {
			return geom.Coord{x, y}, nil
		}
		z, err := ordinate(elems[2])
		if err != nil {
			return nil, err
		}
		return geom.Coord{x, y, z}, nil
	case fastjson.TypeObject:
		x, err := ordinate(v.Get("x"))
		if err != nil {
			return nil, err
		}
		y, err := ordinate(v.Get("y"))
		if err != nil {
			return nil, err
		}
		zv := v.Get("z")
		if zv == nil {
			return geom.Coord{x, y}, nil
		}
		z, err := ordinate(zv)
		if err != nil {
			return nil, err
		}
		return geom.Coord{x, y, z}, nil
	default:
		return nil, errUnknownCoordinateFormat(v)
	}
}

func ordinate(v *fastjson.Value) (float64, error) {
	if v == nil || v.Type() != fastjson.TypeNumber {
		return 0, MalformedCoordinatesError("Invalid coordinates, expecting numbers but got: " + nodeKind(v))
	}
	return v.Float64()
}

// nodeKind names a JSON node kind the way the decode error contract
// spells them: STRING, ARRAY, OBJECT, NUMBER, BOOLEAN, NULL, MISSING.
func nodeKind(v *fastjson.Value) string {
	if v == nil {
		return "MISSING"
	}
	switch v.Type() {
	case fastjson.TypeTrue, fastjson.TypeFalse:
		return "BOOLEAN"
	default:
		return strings.ToUpper(v.Type().String())
	}
}

func errUnknownCoordinateFormat(v *fastjson.Value) error {
	if v == nil {
		return MalformedCoordinatesError("Unknown coordinates format: null")
	}
	return MalformedCoordinatesError(fmt.Sprintf("Unknown coordinates format: %s", v.String()))
}
