package geojson

import (
	jsoniter "github.com/json-iterator/go"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/cast"
	geom "github.com/twpayne/go-geom"
	"github.com/valyala/fastjson"
)

const (
	typeFeature           = "Feature"
	typeFeatureCollection = "FeatureCollection"
)

// Properties holds the free-form properties of a Feature.
type Properties map[string]any

// GetString returns the property cast to a string.
func (p Properties) GetString(key string) string {
	return cast.ToString(p[key])
}

// GetFloat64 returns the property cast to a float64.
func (p Properties) GetFloat64(key string) float64 {
	return cast.ToFloat64(p[key])
}

// GetInt returns the property cast to an int.
func (p Properties) GetInt(key string) int {
	return cast.ToInt(p[key])
}

// GetBool returns the property cast to a bool.
func (p Properties) GetBool(key string) bool {
	return cast.ToBool(p[key])
}

// Decode binds the properties onto target, which must be a pointer to
// a struct or map.
func (p Properties) Decode(target any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           target,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return err
	}
	return decoder.Decode(map[string]any(p))
}

// Feature is a GeoJSON Feature: a geometry with free-form properties.
type Feature struct {
	ID         string
	Geometry   geom.T
	Properties Properties
}

// FeatureCollection is an ordered collection of features.
type FeatureCollection struct {
	Features []*Feature
}

// MarshalFeature encodes f as a GeoJSON Feature object.
func (c *Codec) MarshalFeature(f *Feature) ([]byte, error) {
	stream := jsonAPI.BorrowStream(nil)
	defer jsonAPI.ReturnStream(stream)
	if err := c.writeFeature(stream, f); err != nil {
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

// MarshalFeatureCollection encodes fc as a GeoJSON FeatureCollection
// object.
func (c *Codec) MarshalFeatureCollection(fc *FeatureCollection) ([]byte, error) {
	stream := jsonAPI.BorrowStream(nil)
	defer jsonAPI.ReturnStream(stream)
	stream.WriteObjectStart()
	stream.WriteObjectField(fieldType)
	stream.WriteString(typeFeatureCollection)
	stream.WriteMore()
	stream.WriteObjectField(fieldFeatures)
	stream.WriteArrayStart()
	for i, f := range fc.Features {
		if i > 0 {
			stream.WriteMore()
		}
		if err := c.writeFeature(stream, f); err != nil {
			return nil, err
		}
	}
	stream.WriteArrayEnd()
	stream.WriteObjectEnd()
	if stream.Error != nil {
		return nil, stream.Error
	}
	buf := stream.Buffer()
	out := make([]byte, len(buf))
	copy(out, buf)
	return out, nil
}

func (c *Codec) writeFeature(stream *jsoniter.Stream, f *Feature) error {
	if f == nil {
		stream.WriteNil()
		return stream.Error
	}
	stream.WriteObjectStart()
	stream.WriteObjectField(fieldType)
	stream.WriteString(typeFeature)
	if f.ID != "" {
		stream.WriteMore()
		stream.WriteObjectField(fieldID)
		stream.WriteString(f.ID)
	}
	stream.WriteMore()
	stream.WriteObjectField(fieldGeometry)
	if err := c.encoder.EncodeTo(stream, f.Geometry); err != nil {
		return err
	}
	stream.WriteMore()
	stream.WriteObjectField(fieldProperties)
	if len(f.Properties) == 0 {
		stream.WriteEmptyObject()
	} else {
		stream.WriteVal(map[string]any(f.Properties))
	}
	stream.WriteObjectEnd()
	return stream.Error
}

// UnmarshalFeature decodes a GeoJSON Feature object. A non-Feature
// type tag fails with TypeMismatchError.
func (c *Codec) UnmarshalFeature(data []byte) (*Feature, error) {
	p := c.decoder.parsers.Get()
	defer c.decoder.parsers.Put(p)
	v, err := p.ParseBytes(data)
	if err != nil {
		return nil, err
	}
	return c.decodeFeature(v)
}

// UnmarshalFeatureCollection decodes a GeoJSON FeatureCollection
// object.
func (c *Codec) UnmarshalFeatureCollection(data []byte) (*FeatureCollection, error) {
	p := c.decoder.parsers.Get()
	defer c.decoder.parsers.Put(p)
	v, err := p.ParseBytes(data)
	if err != nil {
		return nil, err
	}
	if typeName := typeTagOf(v); typeName != typeFeatureCollection {
		return nil, TypeMismatchError{Expected: typeFeatureCollection, Actual: typeName}
	}
	elems, err := payloadElements(v, fieldFeatures)
	if err != nil {
		return nil, err
	}
	fc := &FeatureCollection{Features: make([]*Feature, 0, len(elems))}
	for _, el := range elems {
		f, err := c.decodeFeature(el)
		if err != nil {
			return nil, err
		}
		if f != nil {
			fc.Features = append(fc.Features, f)
		}
	}
	return fc, nil
}

func (c *Codec) decodeFeature(v *fastjson.Value) (*Feature, error) {
	if v == nil || v.Type() == fastjson.TypeNull {
		return nil, nil
	}
	if typeName := typeTagOf(v); typeName != typeFeature {
		return nil, TypeMismatchError{Expected: typeFeature, Actual: typeName}
	}
	g, err := c.decoder.DecodeValue(v.Get(fieldGeometry))
	if err != nil {
		return nil, err
	}
	f := &Feature{Geometry: g}
	if id := v.Get(fieldID); id != nil {
		if b, err := id.StringBytes(); err == nil {
			f.ID = string(b)
		} else {
			f.ID = id.String()
		}
	}
	if props := v.Get(fieldProperties); props != nil && props.Type() == fastjson.TypeObject {
		f.Properties = decodeProperties(props)
	}
	return f, nil
}

func decodeProperties(v *fastjson.Value) Properties {
	obj, _ := v.Object()
	props := make(Properties, obj.Len())
	obj.Visit(func(key []byte, value *fastjson.Value) {
		props[string(key)] = valueToAny(value)
	})
	return props
}

func valueToAny(v *fastjson.Value) any {
	switch v.Type() {
	case fastjson.TypeObject:
		obj, _ := v.Object()
		m := make(map[string]any, obj.Len())
		obj.Visit(func(key []byte, value *fastjson.Value) {
			m[string(key)] = valueToAny(value)
		})
		return m
	case fastjson.TypeArray:
		elems, _ := v.Array()
		s := make([]any, len(elems))
		for i, el := range elems {
			s[i] = valueToAny(el)
		}
		return s
	case fastjson.TypeString:
		b, _ := v.StringBytes()
		return string(b)
	case fastjson.TypeNumber:
		f, _ := v.Float64()
		return f
	case fastjson.TypeTrue:
		return true
	case fastjson.TypeFalse:
		return false
	default:
		return nil
	}
}
