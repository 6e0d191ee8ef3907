package scene

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"
)

type Material struct {
	ID   uuid.UUID
	Name string

	useNodes bool
	tree     *NodeTree
}

func (m *Material) UseNodes() bool {
	return m.useNodes
}

// SetUseNodes toggles node based shading. The first time nodes are enabled
// the material receives the default graph: a Principled BSDF feeding a
// Material Output.
func (m *Material) SetUseNodes(enabled bool) {
	m.useNodes = enabled
	if enabled && m.tree == nil {
		m.tree = defaultNodeTree()
	}
}

// NodeTree returns the material's shader graph, nil until nodes were enabled.
func (m *Material) NodeTree() *NodeTree {
	return m.tree
}

func defaultNodeTree() *NodeTree {
	tree := NewNodeTree()

	// The template table always knows these two types.
	bsdf, _ := tree.NewNode(NodePrincipledBsdf)
	bsdf.Location = mgl32.Vec2{10, 300}
	output, _ := tree.NewNode(NodeOutputMaterial)
	output.Location = mgl32.Vec2{300, 300}

	_, _ = tree.LinkByName(bsdf, "BSDF", output, "Surface")
	return tree
}
