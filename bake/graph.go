package bake

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/gekko3d/matvcol/scene"
)

// BuildVertexColorGraph replaces everything in tree with
//
//	Color Attribute(layer).Color -> Principled BSDF.Base Color
//	Principled BSDF.BSDF         -> Material Output.Surface
func BuildVertexColorGraph(tree *scene.NodeTree, layer string) error {
	tree.Clear()

	vcol, err := tree.NewNode(scene.NodeVertexColor)
	if err != nil {
		return err
	}
	vcol.Location = mgl32.Vec2{-300, 0}
	vcol.LayerName = layer

	bsdf, err := tree.NewNode(scene.NodePrincipledBsdf)
	if err != nil {
		return err
	}
	bsdf.Location = mgl32.Vec2{0, 0}

	output, err := tree.NewNode(scene.NodeOutputMaterial)
	if err != nil {
		return err
	}
	output.Location = mgl32.Vec2{300, 0}

	if _, err := tree.LinkByName(vcol, "Color", bsdf, "Base Color"); err != nil {
		return err
	}
	if _, err := tree.LinkByName(bsdf, "BSDF", output, "Surface"); err != nil {
		return err
	}
	return nil
}
