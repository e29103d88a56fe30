package geojson

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	geom "github.com/twpayne/go-geom"
)

func TestTypedDecoder_Decode(t *testing.T) {
	t.Run("MatchingType", func(t *testing.T) {
		d := NewTypedDecoder[*geom.Point](nil)

		p, err := d.Decode([]byte(`{"type":"Point","coordinates":[1.5,2.5]}`))
		require.NoError(t, err)
		assert.Equal(t, geom.Coord{1.5, 2.5}, p.Coords())
	})

	t.Run("TypeMismatch", func(t *testing.T) {
		d := NewTypedDecoder[*geom.Polygon](nil)

		_, err := d.Decode([]byte(`{"type":"Point","coordinates":[1,2]}`))
		require.Error(t, err)

		var mismatch TypeMismatchError
		require.ErrorAs(t, err, &mismatch)
		assert.EqualError(t, err, "Invalid type for *geom.Polygon: *geom.Point")
	})

	t.Run("NullPassesThrough", func(t *testing.T) {
		d := NewTypedDecoder[*geom.Polygon](nil)

		p, err := d.Decode([]byte(`null`))
		require.NoError(t, err)
		assert.Nil(t, p)
	})

	t.Run("DecodeErrorPassesThrough", func(t *testing.T) {
		d := NewTypedDecoder[*geom.Point](nil)

		_, err := d.Decode([]byte(`{"type":"Blob"}`))
		require.Error(t, err)

		var unknown UnknownGeometryTypeError
		assert.ErrorAs(t, err, &unknown)
	})

	t.Run("CustomDecoder", func(t *testing.T) {
		d := NewTypedDecoder[*geom.Point](NewGeometryDecoder(NewGeometryFactory(3857)))

		p, err := d.Decode([]byte(`{"type":"Point","coordinates":[1,2]}`))
		require.NoError(t, err)
		assert.Equal(t, 3857, p.SRID())
	})
}

func TestTypedDecoder_DecodeValue(t *testing.T) {
	d := NewTypedDecoder[*geom.LineString](nil)

	ls, err := d.DecodeValue(parseJSON(t, `{"type":"LineString","coordinates":[[1,2],[3,4]]}`))
	require.NoError(t, err)
	assert.Equal(t, []geom.Coord{{1, 2}, {3, 4}}, ls.Coords())
}
