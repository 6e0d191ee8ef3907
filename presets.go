package matvcol

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"

	"github.com/gekko3d/matvcol/scene"
)

type SocketData struct {
	Name    string     `json:"name"`
	Default mgl32.Vec4 `json:"default"`
}

type NodeData struct {
	Name      string       `json:"name"`
	Type      string       `json:"type"`
	Location  mgl32.Vec2   `json:"location"`
	LayerName string       `json:"layer_name,omitempty"`
	Inputs    []SocketData `json:"inputs,omitempty"`
}

type LinkData struct {
	FromNode   string `json:"from_node"`
	FromSocket string `json:"from_socket"`
	ToNode     string `json:"to_node"`
	ToSocket   string `json:"to_socket"`
}

type MaterialData struct {
	ID       uuid.UUID  `json:"id"`
	Name     string     `json:"name"`
	UseNodes bool       `json:"use_nodes"`
	HasTree  bool       `json:"has_tree"`
	Nodes    []NodeData `json:"nodes,omitempty"`
	Links    []LinkData `json:"links,omitempty"`
}

type PolygonData struct {
	MaterialIndex int   `json:"material_index"`
	Vertices      []int `json:"vertices"`
}

type ColorLayerData struct {
	Name   string       `json:"name"`
	Colors []mgl32.Vec4 `json:"colors"`
}

type MeshData struct {
	Name        string           `json:"name"`
	Vertices    []mgl32.Vec3     `json:"vertices"`
	Polygons    []PolygonData    `json:"polygons"`
	ColorLayers []ColorLayerData `json:"color_layers,omitempty"`
	// Materials holds one material id per slot, null for an empty slot.
	Materials []*uuid.UUID `json:"materials,omitempty"`
}

type ObjectData struct {
	Name     string    `json:"name"`
	Type     string    `json:"type"`
	Mode     string    `json:"mode"`
	Selected bool      `json:"selected"`
	Mesh     *MeshData `json:"mesh,omitempty"`
}

type PresetData struct {
	Materials []MaterialData `json:"materials"`
	Objects   []ObjectData   `json:"objects"`
}

// SaveScenePreset writes every object in the world and every material of
// lib as indented JSON.
func SaveScenePreset(cmd *Commands, lib *scene.Library, filename string) error {
	selected := make(map[*scene.Object]bool)
	for _, obj := range SelectedObjects(cmd) {
		selected[obj] = true
	}

	var preset PresetData
	for _, mat := range lib.Materials() {
		preset.Materials = append(preset.Materials, materialData(mat))
	}
	for _, obj := range Objects(cmd) {
		data := ObjectData{
			Name:     obj.Name,
			Type:     string(obj.Type),
			Mode:     string(obj.Mode),
			Selected: selected[obj],
		}
		if obj.Mesh != nil {
			data.Mesh = meshData(obj.Mesh)
		}
		preset.Objects = append(preset.Objects, data)
	}

	bytes, err := json.MarshalIndent(preset, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filename, bytes, 0644)
}

func materialData(mat *scene.Material) MaterialData {
	data := MaterialData{ID: mat.ID, Name: mat.Name, UseNodes: mat.UseNodes()}
	tree := mat.NodeTree()
	if tree == nil {
		return data
	}
	data.HasTree = true

	for _, n := range tree.Nodes() {
		nd := NodeData{
			Name:      n.Name,
			Type:      string(n.Type),
			Location:  n.Location,
			LayerName: n.LayerName,
		}
		for _, s := range n.Inputs() {
			nd.Inputs = append(nd.Inputs, SocketData{Name: s.Name, Default: s.Default})
		}
		data.Nodes = append(data.Nodes, nd)
	}
	for _, l := range tree.Links() {
		data.Links = append(data.Links, LinkData{
			FromNode:   l.From.Node().Name,
			FromSocket: l.From.Name,
			ToNode:     l.To.Node().Name,
			ToSocket:   l.To.Name,
		})
	}
	return data
}

func meshData(mesh *scene.Mesh) *MeshData {
	data := &MeshData{
		Name:     mesh.Name,
		Vertices: append([]mgl32.Vec3(nil), mesh.Vertices...),
	}
	for _, p := range mesh.Polygons {
		data.Polygons = append(data.Polygons, PolygonData{
			MaterialIndex: p.MaterialIndex,
			Vertices:      append([]int(nil), mesh.Loops[p.LoopStart:p.LoopStart+p.LoopTotal]...),
		})
	}
	for _, layer := range mesh.ColorLayers() {
		data.ColorLayers = append(data.ColorLayers, ColorLayerData{Name: layer.Name, Colors: layer.Colors()})
	}
	for _, mat := range mesh.Materials() {
		if mat == nil {
			data.Materials = append(data.Materials, nil)
			continue
		}
		id := mat.ID
		data.Materials = append(data.Materials, &id)
	}
	return data
}

// LoadScenePreset recreates the materials and objects of a preset. Loaded
// materials get fresh ids; slot references are remapped to them.
func LoadScenePreset(cmd *Commands, lib *scene.Library, filename string) ([]EntityId, error) {
	bytes, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	var preset PresetData
	if err := json.Unmarshal(bytes, &preset); err != nil {
		return nil, err
	}

	// First pass: materials, so slots can point at them.
	idMap := make(map[uuid.UUID]*scene.Material)
	for _, md := range preset.Materials {
		mat, err := restoreMaterial(lib, md)
		if err != nil {
			return nil, fmt.Errorf("material %q: %w", md.Name, err)
		}
		idMap[md.ID] = mat
	}

	var newEntities []EntityId
	for _, od := range preset.Objects {
		obj := scene.NewObject(od.Name, scene.ObjectType(od.Type))
		obj.Mode = scene.Mode(od.Mode)
		if od.Mesh != nil {
			mesh, err := restoreMesh(*od.Mesh, idMap)
			if err != nil {
				return nil, fmt.Errorf("object %q: %w", od.Name, err)
			}
			obj.Mesh = mesh
		}

		eid := SpawnObject(cmd, obj)
		if od.Selected {
			Select(cmd, eid)
		}
		newEntities = append(newEntities, eid)
	}

	return newEntities, nil
}

func restoreMaterial(lib *scene.Library, md MaterialData) (*scene.Material, error) {
	mat := lib.NewMaterial(md.Name)
	if !md.HasTree {
		mat.SetUseNodes(md.UseNodes)
		return mat, nil
	}

	mat.SetUseNodes(true)
	tree := mat.NodeTree()
	tree.Clear()

	for _, nd := range md.Nodes {
		node, err := tree.NewNode(scene.NodeType(nd.Type))
		if err != nil {
			return nil, err
		}
		node.Name = nd.Name
		node.Location = nd.Location
		node.LayerName = nd.LayerName
		for _, sd := range nd.Inputs {
			input, err := node.Input(sd.Name)
			if err != nil {
				return nil, err
			}
			input.Default = sd.Default
		}
	}
	for _, ld := range md.Links {
		from, to := tree.Node(ld.FromNode), tree.Node(ld.ToNode)
		if from == nil || to == nil {
			return nil, fmt.Errorf("link %s -> %s: %w", ld.FromNode, ld.ToNode, scene.ErrNodeNotInTree)
		}
		if _, err := tree.LinkByName(from, ld.FromSocket, to, ld.ToSocket); err != nil {
			return nil, err
		}
	}

	mat.SetUseNodes(md.UseNodes)
	return mat, nil
}

func restoreMesh(md MeshData, materials map[uuid.UUID]*scene.Material) (*scene.Mesh, error) {
	mesh := scene.NewMesh(md.Name)
	for _, v := range md.Vertices {
		mesh.AddVertex(v)
	}
	for _, pd := range md.Polygons {
		if _, err := mesh.AddPolygon(pd.MaterialIndex, pd.Vertices...); err != nil {
			return nil, err
		}
	}

	for _, ld := range md.ColorLayers {
		layer, err := mesh.NewColorLayer(ld.Name)
		if err != nil {
			return nil, err
		}
		for loop, c := range ld.Colors {
			if err := layer.SetColor(loop, c); err != nil {
				return nil, err
			}
		}
	}

	for _, id := range md.Materials {
		if id == nil {
			mesh.AppendMaterial(nil)
			continue
		}
		// Unknown ids become empty slots, like a material deleted elsewhere.
		mesh.AppendMaterial(materials[*id])
	}
	return mesh, nil
}
