package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLibrary_NewMaterial_UniqueNames(t *testing.T) {
	lib := NewLibrary()

	a := lib.NewMaterial("VCOL_Material")
	b := lib.NewMaterial("VCOL_Material")
	c := lib.NewMaterial("VCOL_Material")

	assert.Equal(t, "VCOL_Material", a.Name)
	assert.Equal(t, "VCOL_Material.001", b.Name)
	assert.Equal(t, "VCOL_Material.002", c.Name)
	assert.NotEqual(t, a.ID, b.ID)
	assert.Same(t, b, lib.Material("VCOL_Material.001"))
	assert.Same(t, c, lib.MaterialByID(c.ID))
	assert.Equal(t, 3, lib.Len())
}

func TestLibrary_RemoveAndOrphans(t *testing.T) {
	lib := NewLibrary()
	used := lib.NewMaterial("Used")
	unused := lib.NewMaterial("Unused")

	mesh := NewMesh("Mesh")
	mesh.AppendMaterial(used)
	mesh.AppendMaterial(nil)
	objects := []*Object{
		NewMeshObject("Cube", mesh),
		NewObject("Lamp", ObjectLight),
	}

	orphans := lib.Orphans(objects)
	assert.Equal(t, []*Material{unused}, orphans)

	assert.True(t, lib.Remove(unused))
	assert.False(t, lib.Remove(unused))
	assert.Nil(t, lib.Material("Unused"))
}

func TestObject_SetMode(t *testing.T) {
	obj := NewMeshObject("Cube", NewMesh("Cube"))
	obj.Mode = ModeEdit

	assert.True(t, obj.SetMode(ModeObject))
	assert.False(t, obj.SetMode(ModeObject))
	assert.True(t, obj.IsMesh())
	assert.False(t, NewObject("Camera", ObjectCamera).IsMesh())
}
