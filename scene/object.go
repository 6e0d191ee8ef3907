package scene

import (
	"github.com/google/uuid"
)

type ObjectType string

const (
	ObjectMesh   ObjectType = "MESH"
	ObjectEmpty  ObjectType = "EMPTY"
	ObjectLight  ObjectType = "LIGHT"
	ObjectCamera ObjectType = "CAMERA"
	ObjectCurve  ObjectType = "CURVE"
)

type Mode string

const (
	ModeObject       Mode = "OBJECT"
	ModeEdit         Mode = "EDIT"
	ModeSculpt       Mode = "SCULPT"
	ModeVertexPaint  Mode = "VERTEX_PAINT"
	ModeWeightPaint  Mode = "WEIGHT_PAINT"
	ModeTexturePaint Mode = "TEXTURE_PAINT"
)

type Object struct {
	ID   uuid.UUID
	Name string
	Type ObjectType
	Mode Mode
	// Mesh is set for ObjectMesh only.
	Mesh *Mesh
}

func NewMeshObject(name string, mesh *Mesh) *Object {
	return &Object{
		ID:   uuid.New(),
		Name: name,
		Type: ObjectMesh,
		Mode: ModeObject,
		Mesh: mesh,
	}
}

func NewObject(name string, typ ObjectType) *Object {
	return &Object{
		ID:   uuid.New(),
		Name: name,
		Type: typ,
		Mode: ModeObject,
	}
}

func (o *Object) IsMesh() bool {
	return o.Type == ObjectMesh && o.Mesh != nil
}

// SetMode switches the interaction mode and reports whether it changed.
func (o *Object) SetMode(mode Mode) bool {
	if o.Mode == mode {
		return false
	}
	o.Mode = mode
	return true
}
