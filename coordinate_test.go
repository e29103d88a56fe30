package geojson

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	geom "github.com/twpayne/go-geom"
	"github.com/valyala/fastjson"
)

func encodeCoordinate(t *testing.T, codec *CoordinateCodec, coord geom.Coord) string {
	t.Helper()

	stream := jsonAPI.BorrowStream(nil)
	defer jsonAPI.ReturnStream(stream)

	codec.EncodeTo(stream, coord)
	require.NoError(t, stream.Error)

	return string(stream.Buffer())
}

func parseJSON(t *testing.T, s string) *fastjson.Value {
	t.Helper()

	v, err := fastjson.Parse(s)
	require.NoError(t, err)

	return v
}

func TestNewCoordinateCodec(t *testing.T) {
	t.Run("OK", func(t *testing.T) {
		codec, err := NewCoordinateCodec(2)
		require.NoError(t, err)
		assert.Equal(t, 2, codec.DecimalPlaces())
	})

	t.Run("NegativePrecision", func(t *testing.T) {
		_, err := NewCoordinateCodec(-1)
		require.Error(t, err)

		var confErr InvalidConfigurationError
		require.ErrorAs(t, err, &confErr)
		assert.EqualError(t, err, "decimalPlaces < 0")
	})
}

func TestCoordinateCodec_EncodeTo(t *testing.T) {
	cc, err := NewCoordinateCodec(DefaultDecimalPlaces)
	require.NoError(t, err)

	t.Run("Precision2", func(t *testing.T) {
		codec, err := NewCoordinateCodec(2)
		require.NoError(t, err)

		assert.Equal(t, "[1.12,2]", encodeCoordinate(t, codec, geom.Coord{1.123456789, 2.0}))
	})

	t.Run("Precision0", func(t *testing.T) {
		codec, err := NewCoordinateCodec(0)
		require.NoError(t, err)

		assert.Equal(t, "[1,2]", encodeCoordinate(t, codec, geom.Coord{1.123456789, 2.0}))
	})

	t.Run("RoundsHalfUp", func(t *testing.T) {
		codec, err := NewCoordinateCodec(0)
		require.NoError(t, err)

		assert.Equal(t, "[3,-3]", encodeCoordinate(t, codec, geom.Coord{2.5, -2.5}))
	})

	t.Run("NaNZOmitted", func(t *testing.T) {
		assert.Equal(t, "[1,2]", encodeCoordinate(t, cc, geom.Coord{1, 2, math.NaN()}))
	})

	t.Run("InfZOmitted", func(t *testing.T) {
		assert.Equal(t, "[1,2]", encodeCoordinate(t, cc, geom.Coord{1, 2, math.Inf(1)}))
	})

	t.Run("FiniteZ", func(t *testing.T) {
		assert.Equal(t, "[1,2,3.5]", encodeCoordinate(t, cc, geom.Coord{1, 2, 3.5}))
	})

	t.Run("Empty", func(t *testing.T) {
		assert.Equal(t, "[]", encodeCoordinate(t, cc, nil))
	})
}

func TestCoordinateCodec_DecodeValue(t *testing.T) {
	codec, err := NewCoordinateCodec(DefaultDecimalPlaces)
	require.NoError(t, err)

	t.Run("Array2D", func(t *testing.T) {
		coord, err := codec.DecodeValue(parseJSON(t, `[1.5,2.5]`))
		require.NoError(t, err)
		assert.Equal(t, geom.Coord{1.5, 2.5}, coord)
	})

	t.Run("Array3D", func(t *testing.T) {
		coord, err := codec.DecodeValue(parseJSON(t, `[1,2,3.5]`))
		require.NoError(t, err)
		assert.Equal(t, geom.Coord{1, 2, 3.5}, coord)
	})

	t.Run("ExtraElementsIgnored", func(t *testing.T) {
		coord, err := codec.DecodeValue(parseJSON(t, `[1,2,3,4,5]`))
		require.NoError(t, err)
		assert.Equal(t, geom.Coord{1, 2, 3}, coord)
	})

	t.Run("Object2D", func(t *testing.T) {
		coord, err := codec.DecodeValue(parseJSON(t, `{"x":1.5,"y":2.5}`))
		require.NoError(t, err)
		assert.Equal(t, geom.Coord{1.5, 2.5}, coord)
	})

	t.Run("Object3D", func(t *testing.T) {
		coord, err := codec.DecodeValue(parseJSON(t, `{"x":1,"y":2,"z":3.5}`))
		require.NoError(t, err)
		assert.Equal(t, geom.Coord{1, 2, 3.5}, coord)
	})

	t.Run("TooFewOrdinates", func(t *testing.T) {
		_, err := codec.DecodeValue(parseJSON(t, `[1]`))
		require.Error(t, err)

		var malformed MalformedCoordinatesError
		require.ErrorAs(t, err, &malformed)
		assert.EqualError(t, err, "Invalid number of ordinates: 1")
	})

	t.Run("NonNumericElement", func(t *testing.T) {
		_, err := codec.DecodeValue(parseJSON(t, `[1,"2"]`))
		require.Error(t, err)
		assert.EqualError(t, err, "Invalid coordinates, expecting numbers but got: STRING")
	})

	t.Run("MissingObjectOrdinate", func(t *testing.T) {
		_, err := codec.DecodeValue(parseJSON(t, `{"x":1}`))
		require.Error(t, err)
		assert.EqualError(t, err, "Invalid coordinates, expecting numbers but got: MISSING")
	})

	t.Run("NonNumericObjectOrdinate", func(t *testing.T) {
		_, err := codec.DecodeValue(parseJSON(t, `{"x":1,"y":true}`))
		require.Error(t, err)
		assert.EqualError(t, err, "Invalid coordinates, expecting numbers but got: BOOLEAN")
	})

	t.Run("UnknownFormat", func(t *testing.T) {
		_, err := codec.DecodeValue(parseJSON(t, `"1,2"`))
		require.Error(t, err)

		var malformed MalformedCoordinatesError
		require.ErrorAs(t, err, &malformed)
		assert.ErrorContains(t, err, "Unknown coordinates format:")
	})
}
