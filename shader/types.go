package shader

import "fmt"

// Type identifies a shader stage independent of the GL enum values.
type Type int

const (
	Vertex Type = iota
	Geometry
	Fragment
)

// String returns the stage name used in compile diagnostics.
func (t Type) String() string {
	switch t {
	case Vertex:
		return "vertex"
	case Geometry:
		return "geometric"
	case Fragment:
		return "fragment"
	default:
		return fmt.Sprintf("unknown(%d)", int(t))
	}
}

// ParseType maps the names accepted in scene files to a Type.
func ParseType(name string) (Type, error) {
	switch name {
	case "vertex", "vert", "vs":
		return Vertex, nil
	case "geometry", "geometric", "geom", "gs":
		return Geometry, nil
	case "fragment", "frag", "fs":
		return Fragment, nil
	}
	return 0, fmt.Errorf("unknown shader type %q", name)
}

// Info is one entry of a shader table: the stage and the file holding its source.
type Info struct {
	Type     Type
	Filename string
}

// Attribute locations bound on every program before linking.
const (
	PositionLocation = 0
	ColorLocation    = 1
)

var attribLocations = []struct {
	index uint32
	name  string
}{
	{PositionLocation, "in_position"},
	{ColorLocation, "in_color"},
}
