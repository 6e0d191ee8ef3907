package scene

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"
)

type NodeType string

const (
	NodePrincipledBsdf NodeType = "BSDF_PRINCIPLED"
	NodeOutputMaterial NodeType = "OUTPUT_MATERIAL"
	NodeVertexColor    NodeType = "VERTEX_COLOR"
	NodeDiffuseBsdf    NodeType = "BSDF_DIFFUSE"
	NodeEmission       NodeType = "EMISSION"
	NodeImageTexture   NodeType = "TEX_IMAGE"
	NodeMixShader      NodeType = "MIX_SHADER"
	NodeRGB            NodeType = "RGB"
)

type SocketKind int

const (
	SocketColor SocketKind = iota
	SocketFloat
	SocketVector
	SocketShader
)

func (k SocketKind) String() string {
	switch k {
	case SocketColor:
		return "color"
	case SocketFloat:
		return "float"
	case SocketVector:
		return "vector"
	case SocketShader:
		return "shader"
	}
	return fmt.Sprintf("SocketKind(%d)", int(k))
}

// Socket is a named node input or output. Float sockets keep their value
// in Default[0].
type Socket struct {
	Name     string
	Kind     SocketKind
	Default  mgl32.Vec4
	IsOutput bool

	node *Node
}

func (s *Socket) Node() *Node {
	return s.node
}

type socketTemplate struct {
	name    string
	kind    SocketKind
	deflt   mgl32.Vec4
	isInput bool
}

func in(name string, kind SocketKind, deflt mgl32.Vec4) socketTemplate {
	return socketTemplate{name: name, kind: kind, deflt: deflt, isInput: true}
}

func out(name string, kind SocketKind) socketTemplate {
	return socketTemplate{name: name, kind: kind}
}

func f(v float32) mgl32.Vec4 { return mgl32.Vec4{v, 0, 0, 0} }

type nodeTemplate struct {
	label   string
	sockets []socketTemplate
}

var nodeTemplates = map[NodeType]nodeTemplate{
	NodePrincipledBsdf: {
		label: "Principled BSDF",
		sockets: []socketTemplate{
			in("Base Color", SocketColor, mgl32.Vec4{0.8, 0.8, 0.8, 1}),
			in("Metallic", SocketFloat, f(0)),
			in("Roughness", SocketFloat, f(0.5)),
			in("IOR", SocketFloat, f(1.45)),
			in("Alpha", SocketFloat, f(1)),
			in("Normal", SocketVector, mgl32.Vec4{}),
			in("Emission Color", SocketColor, mgl32.Vec4{1, 1, 1, 1}),
			in("Emission Strength", SocketFloat, f(0)),
			out("BSDF", SocketShader),
		},
	},
	NodeOutputMaterial: {
		label: "Material Output",
		sockets: []socketTemplate{
			in("Surface", SocketShader, mgl32.Vec4{}),
			in("Volume", SocketShader, mgl32.Vec4{}),
			in("Displacement", SocketVector, mgl32.Vec4{}),
		},
	},
	NodeVertexColor: {
		label: "Color Attribute",
		sockets: []socketTemplate{
			out("Color", SocketColor),
			out("Alpha", SocketFloat),
		},
	},
	NodeDiffuseBsdf: {
		label: "Diffuse BSDF",
		sockets: []socketTemplate{
			in("Color", SocketColor, mgl32.Vec4{0.8, 0.8, 0.8, 1}),
			in("Roughness", SocketFloat, f(0)),
			in("Normal", SocketVector, mgl32.Vec4{}),
			out("BSDF", SocketShader),
		},
	},
	NodeEmission: {
		label: "Emission",
		sockets: []socketTemplate{
			in("Color", SocketColor, mgl32.Vec4{1, 1, 1, 1}),
			in("Strength", SocketFloat, f(1)),
			out("Emission", SocketShader),
		},
	},
	NodeImageTexture: {
		label: "Image Texture",
		sockets: []socketTemplate{
			in("Vector", SocketVector, mgl32.Vec4{}),
			out("Color", SocketColor),
			out("Alpha", SocketFloat),
		},
	},
	NodeMixShader: {
		label: "Mix Shader",
		sockets: []socketTemplate{
			in("Fac", SocketFloat, f(0.5)),
			in("Shader", SocketShader, mgl32.Vec4{}),
			in("Shader_001", SocketShader, mgl32.Vec4{}),
			out("Shader", SocketShader),
		},
	},
	NodeRGB: {
		label: "RGB",
		sockets: []socketTemplate{
			out("Color", SocketColor),
		},
	},
}

// Node is a shader node. Location only matters to a graph editor.
type Node struct {
	ID       uuid.UUID
	Type     NodeType
	Name     string
	Label    string
	Location mgl32.Vec2
	// LayerName is read by VERTEX_COLOR nodes.
	LayerName string

	inputs  []*Socket
	outputs []*Socket
}

func newNode(typ NodeType) (*Node, error) {
	tmpl, ok := nodeTemplates[typ]
	if !ok {
		return nil, fmt.Errorf("%q: %w", typ, ErrUnknownNodeType)
	}

	node := &Node{
		ID:    uuid.New(),
		Type:  typ,
		Name:  tmpl.label,
		Label: tmpl.label,
	}
	for _, st := range tmpl.sockets {
		s := &Socket{
			Name:     st.name,
			Kind:     st.kind,
			Default:  st.deflt,
			IsOutput: !st.isInput,
			node:     node,
		}
		if st.isInput {
			node.inputs = append(node.inputs, s)
		} else {
			node.outputs = append(node.outputs, s)
		}
	}
	return node, nil
}

func (n *Node) Inputs() []*Socket {
	return append([]*Socket(nil), n.inputs...)
}

func (n *Node) Outputs() []*Socket {
	return append([]*Socket(nil), n.outputs...)
}

func (n *Node) Input(name string) (*Socket, error) {
	for _, s := range n.inputs {
		if s.Name == name {
			return s, nil
		}
	}
	return nil, fmt.Errorf("%s input %q: %w", n.Name, name, ErrSocketNotFound)
}

func (n *Node) Output(name string) (*Socket, error) {
	for _, s := range n.outputs {
		if s.Name == name {
			return s, nil
		}
	}
	return nil, fmt.Errorf("%s output %q: %w", n.Name, name, ErrSocketNotFound)
}
