package scene

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// Polygon is a face of a mesh. Its loops are the contiguous range
// [LoopStart, LoopStart+LoopTotal) of the owning mesh's loop array.
type Polygon struct {
	MaterialIndex int
	LoopStart     int
	LoopTotal     int
}

// LoopIndices returns the loop indices of the polygon in winding order.
func (p Polygon) LoopIndices() []int {
	res := make([]int, p.LoopTotal)
	for i := range res {
		res[i] = p.LoopStart + i
	}
	return res
}

type Mesh struct {
	Name     string
	Vertices []mgl32.Vec3
	// Loops maps each loop index to the vertex it uses.
	Loops    []int
	Polygons []Polygon

	materials   []*Material
	colorLayers []*ColorLayer
}

func NewMesh(name string) *Mesh {
	return &Mesh{Name: name}
}

func (m *Mesh) AddVertex(p mgl32.Vec3) int {
	m.Vertices = append(m.Vertices, p)
	return len(m.Vertices) - 1
}

// AddPolygon appends a face using the given vertices and returns its index.
// Existing color layers grow with the new loops, filled with opaque white.
func (m *Mesh) AddPolygon(materialIndex int, vertexIndices ...int) (int, error) {
	if len(vertexIndices) < 3 {
		return -1, ErrDegeneratePolygon
	}
	for _, vi := range vertexIndices {
		if vi < 0 || vi >= len(m.Vertices) {
			return -1, fmt.Errorf("polygon vertex %d: %w", vi, ErrVertexOutOfRange)
		}
	}

	poly := Polygon{
		MaterialIndex: materialIndex,
		LoopStart:     len(m.Loops),
		LoopTotal:     len(vertexIndices),
	}
	m.Loops = append(m.Loops, vertexIndices...)
	m.Polygons = append(m.Polygons, poly)

	for _, layer := range m.colorLayers {
		layer.grow(len(m.Loops))
	}

	return len(m.Polygons) - 1, nil
}

func (m *Mesh) LoopCount() int {
	return len(m.Loops)
}

// MaterialAt returns the material assigned to slot i. The second result is
// false when i is out of range or the slot is empty.
func (m *Mesh) MaterialAt(i int) (*Material, bool) {
	if i < 0 || i >= len(m.materials) {
		return nil, false
	}
	mat := m.materials[i]
	return mat, mat != nil
}

func (m *Mesh) Materials() []*Material {
	return append([]*Material(nil), m.materials...)
}

func (m *Mesh) MaterialCount() int {
	return len(m.materials)
}

// AppendMaterial adds a slot holding mat. A nil mat adds an empty slot.
func (m *Mesh) AppendMaterial(mat *Material) {
	m.materials = append(m.materials, mat)
}

func (m *Mesh) ClearMaterials() {
	m.materials = m.materials[:0]
}

func (m *Mesh) ColorLayers() []*ColorLayer {
	return append([]*ColorLayer(nil), m.colorLayers...)
}

func (m *Mesh) ColorLayer(name string) (*ColorLayer, bool) {
	for _, layer := range m.colorLayers {
		if layer.Name == name {
			return layer, true
		}
	}
	return nil, false
}

// NewColorLayer adds a layer with one opaque white entry per loop.
func (m *Mesh) NewColorLayer(name string) (*ColorLayer, error) {
	if _, ok := m.ColorLayer(name); ok {
		return nil, fmt.Errorf("%q: %w", name, ErrLayerExists)
	}
	layer := newColorLayer(name, len(m.Loops))
	m.colorLayers = append(m.colorLayers, layer)
	return layer, nil
}

// EnsureColorLayer looks a layer up by name and creates it when absent.
// The bool result reports whether a new layer was created.
func (m *Mesh) EnsureColorLayer(name string) (*ColorLayer, bool) {
	if layer, ok := m.ColorLayer(name); ok {
		return layer, false
	}
	layer := newColorLayer(name, len(m.Loops))
	m.colorLayers = append(m.colorLayers, layer)
	return layer, true
}

func (m *Mesh) RemoveColorLayer(name string) error {
	for i, layer := range m.colorLayers {
		if layer.Name == name {
			m.colorLayers = append(m.colorLayers[:i], m.colorLayers[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%q: %w", name, ErrLayerNotFound)
}
