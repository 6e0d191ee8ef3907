package scene

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaterial_SetUseNodes_DefaultGraph(t *testing.T) {
	lib := NewLibrary()
	mat := lib.NewMaterial("Material")
	assert.Nil(t, mat.NodeTree())

	mat.SetUseNodes(true)
	tree := mat.NodeTree()
	require.NotNil(t, tree)

	nodes := tree.Nodes()
	require.Len(t, nodes, 2)
	assert.Equal(t, NodePrincipledBsdf, nodes[0].Type)
	assert.Equal(t, NodeOutputMaterial, nodes[1].Type)

	links := tree.Links()
	require.Len(t, links, 1)
	assert.Equal(t, "BSDF", links[0].From.Name)
	assert.Equal(t, "Surface", links[0].To.Name)

	// Toggling again keeps the existing graph.
	mat.SetUseNodes(false)
	mat.SetUseNodes(true)
	assert.Same(t, tree, mat.NodeTree())
}

func TestNodeTree_NewNode(t *testing.T) {
	tree := NewNodeTree()

	bsdf, err := tree.NewNode(NodePrincipledBsdf)
	require.NoError(t, err)
	baseColor, err := bsdf.Input("Base Color")
	require.NoError(t, err)
	assert.Equal(t, mgl32.Vec4{0.8, 0.8, 0.8, 1}, baseColor.Default)
	assert.Equal(t, SocketColor, baseColor.Kind)
	assert.Same(t, bsdf, baseColor.Node())

	second, err := tree.NewNode(NodePrincipledBsdf)
	require.NoError(t, err)
	assert.Equal(t, "Principled BSDF.001", second.Name)

	_, err = tree.NewNode("BSDF_TOON")
	assert.ErrorIs(t, err, ErrUnknownNodeType)

	_, err = bsdf.Input("Colour")
	assert.ErrorIs(t, err, ErrSocketNotFound)
	_, err = bsdf.Output("Base Color")
	assert.ErrorIs(t, err, ErrSocketNotFound)
}

func TestNodeTree_FindFirst_DeclarationOrder(t *testing.T) {
	tree := NewNodeTree()
	_, _ = tree.NewNode(NodeEmission)
	first, _ := tree.NewNode(NodePrincipledBsdf)
	_, _ = tree.NewNode(NodePrincipledBsdf)

	assert.Same(t, first, tree.FindFirst(NodePrincipledBsdf))
	assert.Nil(t, tree.FindFirst(NodeVertexColor))
}

func TestNodeTree_Link(t *testing.T) {
	tree := NewNodeTree()
	vcol, _ := tree.NewNode(NodeVertexColor)
	rgb, _ := tree.NewNode(NodeRGB)
	bsdf, _ := tree.NewNode(NodePrincipledBsdf)

	_, err := tree.LinkByName(vcol, "Color", bsdf, "Base Color")
	require.NoError(t, err)

	// Re-linking the same input replaces the previous link.
	_, err = tree.LinkByName(rgb, "Color", bsdf, "Base Color")
	require.NoError(t, err)
	links := tree.Links()
	require.Len(t, links, 1)
	assert.Same(t, rgb, links[0].From.Node())

	baseColor, _ := bsdf.Input("Base Color")
	from, ok := tree.LinkedFrom(baseColor)
	assert.True(t, ok)
	assert.Equal(t, "Color", from.Name)
}

func TestNodeTree_Link_Invalid(t *testing.T) {
	tree := NewNodeTree()
	vcol, _ := tree.NewNode(NodeVertexColor)
	bsdf, _ := tree.NewNode(NodePrincipledBsdf)

	baseColor, _ := bsdf.Input("Base Color")
	color, _ := vcol.Output("Color")

	_, err := tree.Link(baseColor, color)
	assert.ErrorIs(t, err, ErrInvalidLink)

	other := NewNodeTree()
	stranger, _ := other.NewNode(NodeRGB)
	strangerOut, _ := stranger.Output("Color")
	_, err = tree.Link(strangerOut, baseColor)
	assert.ErrorIs(t, err, ErrNodeNotInTree)
}

func TestNodeTree_RemoveNode(t *testing.T) {
	tree := NewNodeTree()
	bsdf, _ := tree.NewNode(NodePrincipledBsdf)
	output, _ := tree.NewNode(NodeOutputMaterial)
	_, err := tree.LinkByName(bsdf, "BSDF", output, "Surface")
	require.NoError(t, err)

	require.NoError(t, tree.RemoveNode(bsdf))
	assert.Len(t, tree.Nodes(), 1)
	assert.Empty(t, tree.Links())
	assert.ErrorIs(t, tree.RemoveNode(bsdf), ErrNodeNotInTree)

	tree.Clear()
	assert.Empty(t, tree.Nodes())
}
