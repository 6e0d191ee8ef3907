// Package bake converts per-face material base colors into a vertex color
// layer and rebuilds a single material that shades from that layer.
package bake

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/gekko3d/matvcol/scene"
)

const (
	// LayerName is the vertex color layer every bake reads and writes.
	LayerName = "Col"
	// DefaultMaterialName is used when no material name is configured.
	DefaultMaterialName = "VCOL_Material"
)

var ErrNoSelection = errors.New("no objects selected")

type Options struct {
	DeletePrevious bool
	MaterialName   string
}

func DefaultOptions() Options {
	return Options{
		DeletePrevious: true,
		MaterialName:   DefaultMaterialName,
	}
}

// EffectiveMaterialName returns the configured name, or the default when
// it is empty.
func (o Options) EffectiveMaterialName() string {
	if o.MaterialName == "" {
		return DefaultMaterialName
	}
	return o.MaterialName
}

// Outcome records what a bake did to one object.
type Outcome struct {
	Object       *scene.Object
	Material     *scene.Material
	LayerCreated bool
	ModeSwitched bool
	Polygons     int
	Loops        int
}

type Result struct {
	MaterialName string
	Outcomes     []Outcome
	Skipped      []*scene.Object
}

// Convert bakes every mesh in targets. Non-mesh targets are skipped and
// left untouched. An empty target list yields ErrNoSelection before
// anything is mutated.
//
// There is no rollback: when an object fails, the objects before it keep
// their changes and the error is returned alongside the partial result.
func Convert(lib *scene.Library, targets []*scene.Object, opts Options) (*Result, error) {
	if len(targets) == 0 {
		return nil, ErrNoSelection
	}

	res := &Result{MaterialName: opts.EffectiveMaterialName()}
	for _, obj := range targets {
		if obj == nil || !obj.IsMesh() {
			res.Skipped = append(res.Skipped, obj)
			continue
		}

		outcome, err := convertObject(lib, obj, res.MaterialName, opts.DeletePrevious)
		if err != nil {
			return res, fmt.Errorf("object %q: %w", obj.Name, err)
		}
		res.Outcomes = append(res.Outcomes, outcome)
	}
	return res, nil
}

func convertObject(lib *scene.Library, obj *scene.Object, materialName string, deletePrevious bool) (Outcome, error) {
	outcome := Outcome{Object: obj}
	mesh := obj.Mesh

	// Mesh data edited outside object mode gets overwritten on mode exit.
	outcome.ModeSwitched = obj.SetMode(scene.ModeObject)

	layer, created := mesh.EnsureColorLayer(LayerName)
	outcome.LayerCreated = created

	for _, poly := range mesh.Polygons {
		mat, _ := mesh.MaterialAt(poly.MaterialIndex)
		color := ResolveBaseColor(mat)
		for _, loop := range poly.LoopIndices() {
			if err := layer.SetColor(loop, color); err != nil {
				return outcome, err
			}
			outcome.Loops++
		}
		outcome.Polygons++
	}

	if deletePrevious {
		mesh.ClearMaterials()
	}

	mat := lib.NewMaterial(materialName)
	mat.SetUseNodes(true)
	mesh.AppendMaterial(mat)
	outcome.Material = mat

	if err := BuildVertexColorGraph(mat.NodeTree(), LayerName); err != nil {
		return outcome, err
	}
	return outcome, nil
}

// ResolveBaseColor returns the Base Color default of the first Principled
// BSDF in mat's node tree, scanning in declaration order. A nil material,
// a material without a tree or a tree without a Principled BSDF yields
// opaque white.
func ResolveBaseColor(mat *scene.Material) mgl32.Vec4 {
	if mat == nil || mat.NodeTree() == nil {
		return scene.White
	}
	node := mat.NodeTree().FindFirst(scene.NodePrincipledBsdf)
	if node == nil {
		return scene.White
	}
	input, err := node.Input("Base Color")
	if err != nil {
		return scene.White
	}
	return input.Default
}
