package scene

import (
	"fmt"
	"slices"
)

// Link connects an output socket to an input socket of the same tree.
type Link struct {
	From *Socket
	To   *Socket
}

// NodeTree is a shader graph. Nodes keep their declaration order, which
// is the order every scan over the tree follows.
type NodeTree struct {
	nodes []*Node
	links []Link
}

func NewNodeTree() *NodeTree {
	return &NodeTree{}
}

func (t *NodeTree) Nodes() []*Node {
	return append([]*Node(nil), t.nodes...)
}

func (t *NodeTree) Links() []Link {
	return append([]Link(nil), t.links...)
}

func (t *NodeTree) NewNode(typ NodeType) (*Node, error) {
	node, err := newNode(typ)
	if err != nil {
		return nil, err
	}
	node.Name = t.uniqueName(node.Name)
	t.nodes = append(t.nodes, node)
	return node, nil
}

func (t *NodeTree) uniqueName(base string) string {
	name := base
	for i := 1; t.Node(name) != nil; i++ {
		name = fmt.Sprintf("%s.%03d", base, i)
	}
	return name
}

// Node returns the node with the given name, or nil.
func (t *NodeTree) Node(name string) *Node {
	for _, n := range t.nodes {
		if n.Name == name {
			return n
		}
	}
	return nil
}

// FindFirst returns the first node of typ in declaration order, or nil.
func (t *NodeTree) FindFirst(typ NodeType) *Node {
	for _, n := range t.nodes {
		if n.Type == typ {
			return n
		}
	}
	return nil
}

func (t *NodeTree) contains(node *Node) bool {
	return slices.Contains(t.nodes, node)
}

// RemoveNode drops node and every link touching it.
func (t *NodeTree) RemoveNode(node *Node) error {
	idx := slices.Index(t.nodes, node)
	if idx < 0 {
		return ErrNodeNotInTree
	}
	t.nodes = slices.Delete(t.nodes, idx, idx+1)
	t.links = slices.DeleteFunc(t.links, func(l Link) bool {
		return l.From.node == node || l.To.node == node
	})
	return nil
}

// Clear removes all nodes and links.
func (t *NodeTree) Clear() {
	t.nodes = nil
	t.links = nil
}

// Link connects from (an output) to to (an input). An input holds at most
// one link; linking into an already linked input replaces the old link.
func (t *NodeTree) Link(from, to *Socket) (Link, error) {
	if from == nil || to == nil || !from.IsOutput || to.IsOutput {
		return Link{}, ErrInvalidLink
	}
	if !t.contains(from.node) || !t.contains(to.node) {
		return Link{}, ErrNodeNotInTree
	}

	t.links = slices.DeleteFunc(t.links, func(l Link) bool {
		return l.To == to
	})
	link := Link{From: from, To: to}
	t.links = append(t.links, link)
	return link, nil
}

// LinkByName links output outName of from to input inName of to.
func (t *NodeTree) LinkByName(from *Node, outName string, to *Node, inName string) (Link, error) {
	src, err := from.Output(outName)
	if err != nil {
		return Link{}, err
	}
	dst, err := to.Input(inName)
	if err != nil {
		return Link{}, err
	}
	return t.Link(src, dst)
}

// LinkedFrom returns the output socket feeding input, if any.
func (t *NodeTree) LinkedFrom(input *Socket) (*Socket, bool) {
	for _, l := range t.links {
		if l.To == input {
			return l.From, true
		}
	}
	return nil, false
}
