package geojson

import (
	"fmt"

	geom "github.com/twpayne/go-geom"
	"github.com/valyala/fastjson"
)

// TypedDecoder wraps a GeometryDecoder and additionally asserts that
// the decoded geometry is of type T, failing with TypeMismatchError
// otherwise. A nil decode result passes through unchanged.
type TypedDecoder[T geom.T] struct {
	decoder *GeometryDecoder
}

// NewTypedDecoder returns a typed decoder delegating to decoder. A nil
// decoder falls back to a default GeometryDecoder.
func NewTypedDecoder[T geom.T](decoder *GeometryDecoder) *TypedDecoder[T] {
	if decoder == nil {
		decoder = NewGeometryDecoder(nil)
	}
	return &TypedDecoder[T]{decoder: decoder}
}

// Decode parses data and decodes a geometry of type T.
func (d *TypedDecoder[T]) Decode(data []byte) (T, error) {
	g, err := d.decoder.Decode(data)
	return assertGeometryType[T](g, err)
}

// DecodeValue decodes a parsed GeoJSON node as a geometry of type T.
func (d *TypedDecoder[T]) DecodeValue(v *fastjson.Value) (T, error) {
	g, err := d.decoder.DecodeValue(v)
	return assertGeometryType[T](g, err)
}

func assertGeometryType[T geom.T](g geom.T, err error) (T, error) {
	var zero T
	if err != nil {
		return zero, err
	}
	if g == nil {
		return zero, nil
	}
	typed, ok := g.(T)
	if !ok {
		return zero, TypeMismatchError{
			Expected: fmt.Sprintf("%T", zero),
			Actual:   fmt.Sprintf("%T", g),
		}
	}
	return typed, nil
}
