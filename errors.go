package geojson

import (
	"fmt"

	geom "github.com/twpayne/go-geom"
)

// InvalidConfigurationError denotes an invalid codec configuration,
// such as a negative number of decimal places.
type InvalidConfigurationError string

// Error returns the formatted configuration error.
func (e InvalidConfigurationError) Error() string {
	return string(e)
}

// UnsupportedGeometryError denotes a geometry implementation outside
// the closed GeoJSON geometry type set.
type UnsupportedGeometryError struct {
	Geometry geom.T
}

// Error returns the formatted encode error.
func (e UnsupportedGeometryError) Error() string {
	return fmt.Sprintf("Geometry type %T is not supported.", e.Geometry)
}

// UnknownGeometryTypeError denotes a type tag outside the closed
// GeoJSON tag set. The value is the literal unmatched tag.
type UnknownGeometryTypeError string

// Error returns the formatted decode error.
func (e UnknownGeometryTypeError) Error() string {
	return fmt.Sprintf("Invalid geometry type: %s", string(e))
}

// MalformedCoordinatesError denotes a structurally invalid coordinates
// or geometries payload. The message names the offending JSON node
// kind verbatim; consumers match on its prefix.
type MalformedCoordinatesError string

// Error returns the formatted decode error.
func (e MalformedCoordinatesError) Error() string {
	return string(e)
}

// TypeMismatchError denotes a typed decode that produced a geometry of
// a different type than the requested one.
type TypeMismatchError struct {
	Expected string
	Actual   string
}

// Error returns the formatted decode error.
func (e TypeMismatchError) Error() string {
	return fmt.Sprintf("Invalid type for %s: %s", e.Expected, e.Actual)
}

// NestingDepthError denotes a geometry collection nested deeper than
// the configured maximum. The value is the configured bound.
type NestingDepthError int

// Error returns the formatted decode error.
func (e NestingDepthError) Error() string {
	return fmt.Sprintf("Geometry nesting exceeds the maximum depth of %d", int(e))
}
