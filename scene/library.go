package scene

import (
	"fmt"
	"slices"

	"github.com/google/uuid"
)

// Library owns every material of a scene. Materials outlive the slots
// that reference them until removed from the library.
type Library struct {
	materials []*Material
}

func NewLibrary() *Library {
	return &Library{}
}

// NewMaterial creates a material. Taken names get a numeric suffix the
// way the editor does it: "Name", "Name.001", "Name.002", ...
func (lib *Library) NewMaterial(name string) *Material {
	mat := &Material{
		ID:   uuid.New(),
		Name: lib.uniqueName(name),
	}
	lib.materials = append(lib.materials, mat)
	return mat
}

func (lib *Library) uniqueName(base string) string {
	name := base
	for i := 1; lib.Material(name) != nil; i++ {
		name = fmt.Sprintf("%s.%03d", base, i)
	}
	return name
}

func (lib *Library) Material(name string) *Material {
	for _, m := range lib.materials {
		if m.Name == name {
			return m
		}
	}
	return nil
}

func (lib *Library) MaterialByID(id uuid.UUID) *Material {
	for _, m := range lib.materials {
		if m.ID == id {
			return m
		}
	}
	return nil
}

func (lib *Library) Materials() []*Material {
	return append([]*Material(nil), lib.materials...)
}

func (lib *Library) Len() int {
	return len(lib.materials)
}

// Remove drops mat from the library. Slots still pointing at it keep
// their reference.
func (lib *Library) Remove(mat *Material) bool {
	idx := slices.Index(lib.materials, mat)
	if idx < 0 {
		return false
	}
	lib.materials = slices.Delete(lib.materials, idx, idx+1)
	return true
}

// Orphans lists materials no mesh of objects uses.
func (lib *Library) Orphans(objects []*Object) []*Material {
	used := make(map[*Material]struct{})
	for _, obj := range objects {
		if obj.Mesh == nil {
			continue
		}
		for _, m := range obj.Mesh.materials {
			if m != nil {
				used[m] = struct{}{}
			}
		}
	}

	var res []*Material
	for _, m := range lib.materials {
		if _, ok := used[m]; !ok {
			res = append(res, m)
		}
	}
	return res
}
