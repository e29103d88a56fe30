// Package geojson implements a bidirectional codec between go-geom
// geometries and the GeoJSON geometry encoding.
//
// The codec converts parsed JSON value trees into geometry object
// graphs and back. It performs no I/O of its own: byte-slice entry
// points are thin conveniences over the stream and value level ones,
// which are meant to be plugged into a larger JSON pipeline.
//
// A Codec is configured once and immutable afterwards; it is safe to
// share across concurrent Marshal and Unmarshal calls.
package geojson

import (
	"log/slog"

	jsoniter "github.com/json-iterator/go"
	geom "github.com/twpayne/go-geom"
	"github.com/valyala/fastjson"
)

// GeoJSON object field names.
const (
	fieldType        = "type"
	fieldBBox        = "bbox"
	fieldCoordinates = "coordinates"
	fieldGeometries  = "geometries"
	fieldGeometry    = "geometry"
	fieldProperties  = "properties"
	fieldFeatures    = "features"
	fieldID          = "id"
)

// Codec converts between go-geom geometries and GeoJSON.
type Codec struct {
	factory            *GeometryFactory
	includeBoundingBox IncludeBoundingBox
	decimalPlaces      int
	maxNestingDepth    int
	logger             *slog.Logger

	encoder *GeometryEncoder
	decoder *GeometryDecoder
}

// Option configures a Codec.
type Option interface {
	apply(*Codec)
}

type optionFunc func(*Codec)

func (fn optionFunc) apply(c *Codec) {
	fn(c)
}

// WithGeometryFactory sets the factory used to construct decoded
// geometries. The default is a factory with SRID 4326.
func WithGeometryFactory(f *GeometryFactory) Option {
	return optionFunc(func(c *Codec) {
		c.factory = f
	})
}

// WithIncludeBoundingBox sets the bounding box policy for encoded
// geometries. The default never includes one.
func WithIncludeBoundingBox(b IncludeBoundingBox) Option {
	return optionFunc(func(c *Codec) {
		c.includeBoundingBox = b
	})
}

// WithDecimalPlaces sets the number of decimal places encoded
// coordinates are rounded to. The default is DefaultDecimalPlaces.
func WithDecimalPlaces(decimalPlaces int) Option {
	return optionFunc(func(c *Codec) {
		c.decimalPlaces = decimalPlaces
	})
}

// WithMaxNestingDepth bounds GeometryCollection nesting during decode.
// Zero, the default, leaves nesting unbounded.
func WithMaxNestingDepth(depth int) Option {
	return optionFunc(func(c *Codec) {
		c.maxNestingDepth = depth
	})
}

// New returns a Codec configured by opts.
func New(opts ...Option) (*Codec, error) {
	c := &Codec{
		factory:            NewGeometryFactory(DefaultSRID),
		includeBoundingBox: NeverIncludeBoundingBox(),
		decimalPlaces:      DefaultDecimalPlaces,
		logger:             slog.New(&discardHandler{}),
	}
	for _, opt := range opts {
		opt.apply(c)
	}
	encoder, err := NewGeometryEncoder(c.includeBoundingBox, c.decimalPlaces)
	if err != nil {
		return nil, err
	}
	c.encoder = encoder
	c.decoder = NewGeometryDecoder(c.factory)
	c.decoder.maxDepth = c.maxNestingDepth
	return c, nil
}

// Marshal encodes g as a GeoJSON geometry object. A nil geometry
// encodes as JSON null.
func (c *Codec) Marshal(g geom.T) ([]byte, error) {
	return c.encoder.Encode(g)
}

// MarshalTo writes g to an existing JSON stream.
func (c *Codec) MarshalTo(stream *jsoniter.Stream, g geom.T) error {
	return c.encoder.EncodeTo(stream, g)
}

// Unmarshal decodes a GeoJSON geometry object. JSON null decodes to a
// nil geometry.
func (c *Codec) Unmarshal(data []byte) (geom.T, error) {
	g, err := c.decoder.Decode(data)
	if err != nil {
		c.logger.Debug("failed to decode geometry", "error", err)
		return nil, err
	}
	return g, nil
}

// UnmarshalValue decodes a geometry from an already parsed JSON node.
func (c *Codec) UnmarshalValue(v *fastjson.Value) (geom.T, error) {
	return c.decoder.DecodeValue(v)
}

// UnmarshalAs decodes a GeoJSON geometry object that must be of type
// T, failing with TypeMismatchError otherwise.
func UnmarshalAs[T geom.T](c *Codec, data []byte) (T, error) {
	g, err := c.decoder.Decode(data)
	return assertGeometryType[T](g, err)
}

var defaultCodec, _ = New()

// Marshal encodes g with the default codec configuration.
func Marshal(g geom.T) ([]byte, error) {
	return defaultCodec.Marshal(g)
}

// Unmarshal decodes data with the default codec configuration.
func Unmarshal(data []byte) (geom.T, error) {
	return defaultCodec.Unmarshal(data)
}
