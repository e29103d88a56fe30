package geojson

import (
	geom "github.com/twpayne/go-geom"
)

// GeometryMarshaler encodes a geometry into its GeoJSON byte
// representation. It is the surface a host data-binding pipeline
// registers for geometry values.
type GeometryMarshaler interface {
	Marshal(g geom.T) ([]byte, error)
}

// GeometryUnmarshaler decodes a GeoJSON byte representation into a
// geometry.
type GeometryUnmarshaler interface {
	Unmarshal(data []byte) (geom.T, error)
}

// GeometryCodec combines [GeometryMarshaler] and [GeometryUnmarshaler].
type GeometryCodec interface {
	GeometryMarshaler
	GeometryUnmarshaler
}

var _ GeometryCodec = (*Codec)(nil)
