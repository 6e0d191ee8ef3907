package matvcol

import (
	"slices"

	"github.com/gekko3d/matvcol/scene"
)

// ObjectComponent puts a scene object into the world.
type ObjectComponent struct {
	Object *scene.Object
}

// SelectedComponent marks an object as selected. Order is the position in
// the selection; lower was selected earlier.
type SelectedComponent struct {
	Order int
}

// Selection hands out selection order stamps.
type Selection struct {
	next int
}

func (s *Selection) stamp() int {
	s.next++
	return s.next
}

// SceneModule installs the material library and selection bookkeeping.
type SceneModule struct{}

func (SceneModule) Install(app *App, cmd *Commands) {
	cmd.AddResources(scene.NewLibrary(), &Selection{})
}

func SpawnObject(cmd *Commands, obj *scene.Object) EntityId {
	return cmd.AddEntity(&ObjectComponent{Object: obj})
}

// Select appends eid to the selection. Takes effect on the next flush.
func Select(cmd *Commands, eid EntityId) {
	sel, ok := Resource[Selection](cmd.app)
	if !ok {
		panic("SceneModule is not installed")
	}
	cmd.AddComponents(eid, &SelectedComponent{Order: sel.stamp()})
}

func Deselect(cmd *Commands, eid EntityId) {
	cmd.RemoveComponents(eid, SelectedComponent{})
}

func DeselectAll(cmd *Commands) {
	MakeQuery1[SelectedComponent](cmd).Map(func(eid EntityId, _ *SelectedComponent) bool {
		Deselect(cmd, eid)
		return true
	})
}

// SelectedObjects returns the selected objects in selection order.
func SelectedObjects(cmd *Commands) []*scene.Object {
	type entry struct {
		order int
		obj   *scene.Object
	}
	var entries []entry
	MakeQuery2[ObjectComponent, SelectedComponent](cmd).Map(func(eid EntityId, oc *ObjectComponent, sel *SelectedComponent) bool {
		entries = append(entries, entry{order: sel.Order, obj: oc.Object})
		return true
	})
	slices.SortStableFunc(entries, func(a, b entry) int {
		return a.order - b.order
	})

	res := make([]*scene.Object, 0, len(entries))
	for _, e := range entries {
		res = append(res, e.obj)
	}
	return res
}

// Objects returns every object in the world in spawn order.
func Objects(cmd *Commands) []*scene.Object {
	var res []*scene.Object
	MakeQuery1[ObjectComponent](cmd).Map(func(eid EntityId, oc *ObjectComponent) bool {
		res = append(res, oc.Object)
		return true
	})
	return res
}
