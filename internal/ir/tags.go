package ir

// Op identifies the operation a Command performs.
type Op string

// Known operations.
const (
	OpScale     Op = "scale"
	OpRotateX   Op = "rotate_x"
	OpRotateY   Op = "rotate_y"
	OpRotateZ   Op = "rotate_z"
	OpTranslate Op = "translate"
)

// ValidOps defines allowed command operations.
var ValidOps = map[Op]bool{
	OpScale:     true,
	OpRotateX:   true,
	OpRotateY:   true,
	OpRotateZ:   true,
	OpTranslate: true,
}

// Valid reports whether op is a known operation.
func (op Op) Valid() bool { return ValidOps[op] }

// Geometry identifies the base shape of a Primitive.
type Geometry string

// Known geometries.
const (
	GeometryTetrahedron  Geometry = "TETRAHEDRON"
	GeometryCube         Geometry = "CUBE"
	GeometryOctahedron   Geometry = "OCTAHEDRON"
	GeometryDodecahedron Geometry = "DODECAHEDRON"
	GeometryIcosahedron  Geometry = "ICOSAHEDRON"
)

// ValidGeometries defines allowed primitive geometries.
var ValidGeometries = map[Geometry]bool{
	GeometryTetrahedron:  true,
	GeometryCube:         true,
	GeometryOctahedron:   true,
	GeometryDodecahedron: true,
	GeometryIcosahedron:  true,
}

// Valid reports whether g is a known geometry.
func (g Geometry) Valid() bool { return ValidGeometries[g] }

// AttractorKind classifies an Attractor's value.
type AttractorKind string

// Known attractor kinds.
const (
	KindRatio    AttractorKind = "RATIO"
	KindAngle    AttractorKind = "ANGLE"
	KindConstant AttractorKind = "CONSTANT"
)

// ValidAttractorKinds defines allowed attractor kinds.
var ValidAttractorKinds = map[AttractorKind]bool{
	KindRatio:    true,
	KindAngle:    true,
	KindConstant: true,
}

// Valid reports whether k is a known attractor kind.
func (k AttractorKind) Valid() bool { return ValidAttractorKinds[k] }
