package geojson

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	geom "github.com/twpayne/go-geom"
)

func TestGeometryType_String(t *testing.T) {
	assert.Equal(t, "Point", TypePoint.String())
	assert.Equal(t, "MultiLineString", TypeMultiLineString.String())
	assert.Equal(t, "GeometryCollection", TypeGeometryCollection.String())
	assert.Equal(t, "Unknown", GeometryType(42).String())
}

func TestGeometryTypeFromString(t *testing.T) {
	for _, name := range geometryTypeNames {
		typ, ok := GeometryTypeFromString(name)
		require.True(t, ok, name)
		assert.Equal(t, name, typ.String())
	}

	_, ok := GeometryTypeFromString("Blob")
	assert.False(t, ok)

	_, ok = GeometryTypeFromString("point")
	assert.False(t, ok)
}

func TestGeometryTypeOf(t *testing.T) {
	tests := []struct {
		geometry geom.T
		want     GeometryType
	}{
		{geom.NewPointEmpty(geom.XY), TypePoint},
		{geom.NewLineString(geom.XY), TypeLineString},
		{geom.NewLinearRing(geom.XY), TypeLineString},
		{geom.NewPolygon(geom.XY), TypePolygon},
		{geom.NewMultiPoint(geom.XY), TypeMultiPoint},
		{geom.NewMultiLineString(geom.XY), TypeMultiLineString},
		{geom.NewMultiPolygon(geom.XY), TypeMultiPolygon},
		{geom.NewGeometryCollection(), TypeGeometryCollection},
	}
	for _, tt := range tests {
		typ, ok := GeometryTypeOf(tt.geometry)
		require.True(t, ok)
		assert.Equal(t, tt.want, typ)
	}

	_, ok := GeometryTypeOf(unsupportedGeometry{})
	assert.False(t, ok)
}
