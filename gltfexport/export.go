// Package gltfexport writes baked mesh objects to glTF, carrying the
// vertex color layer as COLOR_0.
package gltfexport

import (
	"errors"
	"fmt"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"

	"github.com/gekko3d/matvcol/bake"
	"github.com/gekko3d/matvcol/scene"
)

var (
	ErrMissingLayer    = errors.New("mesh has no such color layer")
	ErrNothingToExport = errors.New("no mesh objects to export")
)

// Export builds a document with one mesh per mesh object. Loops become
// vertices so per-face colors stay flat; polygons are triangulated as
// fans. Non-mesh objects and meshes without polygons are ignored.
func Export(objects []*scene.Object, layerName string) (*gltf.Document, error) {
	doc := gltf.NewDocument()
	doc.Asset.Generator = "matvcol"

	materials := make(map[string]uint32)

	for _, obj := range objects {
		if obj == nil || !obj.IsMesh() {
			continue
		}
		mesh := obj.Mesh
		if len(mesh.Polygons) == 0 {
			continue
		}

		layer, ok := mesh.ColorLayer(layerName)
		if !ok {
			return nil, fmt.Errorf("object %q layer %q: %w", obj.Name, layerName, ErrMissingLayer)
		}

		positions := make([][3]float32, len(mesh.Loops))
		for loop, vi := range mesh.Loops {
			v := mesh.Vertices[vi]
			positions[loop] = [3]float32{v.X(), v.Y(), v.Z()}
		}

		colors := make([][4]float32, layer.Len())
		for loop, c := range layer.Colors() {
			colors[loop] = [4]float32(c)
		}

		var indices []uint32
		for _, poly := range mesh.Polygons {
			loops := poly.LoopIndices()
			for i := 1; i+1 < len(loops); i++ {
				indices = append(indices, uint32(loops[0]), uint32(loops[i]), uint32(loops[i+1]))
			}
		}
		if len(indices) == 0 {
			continue
		}

		prim := &gltf.Primitive{
			Attributes: map[string]uint32{
				gltf.POSITION: modeler.WritePosition(doc, positions),
				gltf.COLOR_0:  modeler.WriteColor(doc, colors),
			},
			Indices:  gltf.Index(modeler.WriteIndices(doc, indices)),
			Material: gltf.Index(materialIndex(doc, materials, mesh)),
		}

		doc.Meshes = append(doc.Meshes, &gltf.Mesh{
			Name:       mesh.Name,
			Primitives: []*gltf.Primitive{prim},
		})
		doc.Nodes = append(doc.Nodes, &gltf.Node{
			Name: obj.Name,
			Mesh: gltf.Index(uint32(len(doc.Meshes) - 1)),
		})
		doc.Scenes[0].Nodes = append(doc.Scenes[0].Nodes, uint32(len(doc.Nodes)-1))
	}

	if len(doc.Meshes) == 0 {
		return nil, ErrNothingToExport
	}
	return doc, nil
}

// materialIndex returns the glTF material for mesh, named after its last
// slot. Vertex colors carry the albedo, so the factor stays white.
func materialIndex(doc *gltf.Document, known map[string]uint32, mesh *scene.Mesh) uint32 {
	name := bake.DefaultMaterialName
	if n := mesh.MaterialCount(); n > 0 {
		if mat, ok := mesh.MaterialAt(n - 1); ok {
			name = mat.Name
		}
	}
	if idx, ok := known[name]; ok {
		return idx
	}

	doc.Materials = append(doc.Materials, &gltf.Material{
		Name:      name,
		AlphaMode: gltf.AlphaOpaque,
		PBRMetallicRoughness: &gltf.PBRMetallicRoughness{
			BaseColorFactor: &[4]float32{1, 1, 1, 1},
			MetallicFactor:  gltf.Float(0),
			RoughnessFactor: gltf.Float(0.5),
		},
	})
	idx := uint32(len(doc.Materials) - 1)
	known[name] = idx
	return idx
}

// Save exports objects and writes them as a binary glTF file.
func Save(objects []*scene.Object, layerName, path string) error {
	doc, err := Export(objects, layerName)
	if err != nil {
		return err
	}
	if err := gltf.SaveBinary(doc, path); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
